package model

import (
	"errors"
	"testing"
)

func TestUpdate_SetIgnoresPrevious(t *testing.T) {
	update := Set(5)
	if update.IsMapper() {
		t.Fatalf("expected plain value update")
	}
	got, err := update.Apply(1)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
}

func TestUpdate_MapUsesPrevious(t *testing.T) {
	update := Map(func(prev int) int { return prev + 10 })
	if !update.IsMapper() {
		t.Fatalf("expected mapper update")
	}
	got, err := update.Apply(1)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got != 11 {
		t.Fatalf("expected 11, got %v", got)
	}
}

func TestUpdate_MapNilPreviousUsesZero(t *testing.T) {
	got, err := Map(func(prev string) string { return prev + "x" }).Apply(nil)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got != "x" {
		t.Fatalf("expected x, got %v", got)
	}
}

func TestUpdate_MapTypeMismatch(t *testing.T) {
	_, err := Map(func(prev int) int { return prev }).Apply("nope")
	if !errors.Is(err, ErrTypeMismatch) {
		t.Fatalf("expected ErrTypeMismatch, got %v", err)
	}
	var typeErr *TypeError
	if !errors.As(err, &typeErr) || typeErr.Want != "int" {
		t.Fatalf("unexpected error payload: %#v", err)
	}
}

func TestDescriptor_ChangeAndBlurTolerateNil(t *testing.T) {
	var desc Descriptor
	desc.Change(Set(1))
	desc.Blur()

	var got []any
	blurred := 0
	desc = Descriptor{
		OnChange: ChangeHandlerFunc(func(u Update) {
			value, _ := u.Apply(nil)
			got = append(got, value)
		}),
		OnBlur: func() { blurred++ },
	}
	desc.Change(Set("a"))
	desc.Blur()

	if len(got) != 1 || got[0] != "a" || blurred != 1 {
		t.Fatalf("unexpected calls: got=%v blurred=%d", got, blurred)
	}
}

func TestElementErrors_Messages(t *testing.T) {
	var none ElementErrors
	if none.Messages("email") != nil {
		t.Fatalf("expected nil messages from nil map")
	}
	errs := ElementErrors{"email": {"invalid"}}
	if msgs := errs.Messages("email"); len(msgs) != 1 || msgs[0] != "invalid" {
		t.Fatalf("unexpected messages: %v", msgs)
	}
}
