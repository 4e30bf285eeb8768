package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formstate/pkg/list"
	"github.com/goliatone/go-formstate/pkg/model"
)

// Editor walks derived list elements and prompts for every field, sending
// edits back through the descriptors' change handlers.
type Editor struct {
	driver PromptDriver
	theme  Theme
	label  func(name string, index int) string
}

// New constructs an editor with defaults (survey driver).
func New(options ...Option) *Editor {
	e := &Editor{
		driver: newSurveyDriver(),
		theme: Theme{
			ErrorPrefix: "! ",
			DirtyMarker: "*",
		},
		label: defaultLabel,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	return e
}

// EditElement prompts for every field of one element in key order. Fields
// holding maps, slices or other composite values are reported and skipped.
// Each field is blurred once its prompt completes.
func (e *Editor) EditElement(ctx context.Context, name string, index int, fields list.Descriptors) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	if e.driver == nil {
		return ErrNoDriver
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := e.driver.Info(ctx, e.theme.ElementPrefix+e.label(name, index)); err != nil {
		return err
	}
	for key, desc := range fields.All() {
		if err := e.promptField(ctx, key, desc); err != nil {
			return fmt.Errorf("tui: %s: %w", desc.Name, err)
		}
		desc.Blur()
	}
	return nil
}

// Edit prompts for every element in order.
func Edit[R any](ctx context.Context, e *Editor, name string, elements []list.Element[R]) error {
	for _, element := range elements {
		if err := e.EditElement(ctx, name, element.Index, element.Fields); err != nil {
			return err
		}
	}
	return nil
}

func (e *Editor) promptField(ctx context.Context, key string, desc model.Descriptor) error {
	message := key
	if desc.Dirty && e.theme.DirtyMarker != "" {
		message += " " + e.theme.DirtyMarker
	}
	help := e.helpText(desc)

	switch current := desc.Value.(type) {
	case bool:
		answer, err := e.driver.Confirm(ctx, ConfirmConfig{Message: message, Default: current, Help: help})
		if err != nil {
			return err
		}
		if answer != current {
			desc.Change(model.Set(answer))
		}
		return nil
	case nil, string, int, int64, float64:
		parse := parserFor(desc.Value)
		raw, err := e.driver.Input(ctx, InputConfig{
			Message: message,
			Default: formatValue(desc.Value),
			Help:    help,
			Validator: func(text string) error {
				_, err := parse(text)
				return err
			},
		})
		if err != nil {
			return err
		}
		if desc.Value == nil && raw == "" {
			return nil
		}
		next, err := parse(raw)
		if err != nil {
			return err
		}
		if next != desc.Value {
			desc.Change(model.Set(next))
		}
		return nil
	default:
		return e.driver.Info(ctx, fmt.Sprintf("%s: %T values are not editable here", key, desc.Value))
	}
}

func (e *Editor) helpText(desc model.Descriptor) string {
	if len(desc.Error) == 0 {
		return ""
	}
	lines := make([]string, 0, len(desc.Error))
	for _, msg := range desc.Error {
		lines = append(lines, e.theme.ErrorPrefix+msg)
	}
	return strings.Join(lines, "\n")
}

func parserFor(value any) func(string) (any, error) {
	switch value.(type) {
	case int:
		return func(text string) (any, error) {
			n, err := strconv.Atoi(strings.TrimSpace(text))
			if err != nil {
				return nil, fmt.Errorf("expected an integer, got %q", text)
			}
			return n, nil
		}
	case int64:
		return func(text string) (any, error) {
			n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("expected an integer, got %q", text)
			}
			return n, nil
		}
	case float64:
		return func(text string) (any, error) {
			f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
			if err != nil {
				return nil, fmt.Errorf("expected a number, got %q", text)
			}
			return f, nil
		}
	default:
		return func(text string) (any, error) {
			return text, nil
		}
	}
}

func formatValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return ""
	case string:
		return typed
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	default:
		return fmt.Sprint(typed)
	}
}

func defaultLabel(name string, index int) string {
	if name == "" {
		return fmt.Sprintf("#%d", index+1)
	}
	return fmt.Sprintf("%s #%d", name, index+1)
}
