package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/goliatone/go-formstate/pkg/formstate"
	"github.com/goliatone/go-formstate/pkg/list"
	"github.com/goliatone/go-formstate/pkg/renderers/html"
	"github.com/goliatone/go-formstate/pkg/renderers/tui"
	"github.com/goliatone/go-formstate/pkg/snapshot"
)

func main() {
	source := flag.String("snapshot", "", "YAML list snapshot to load")
	mode := flag.String("mode", "html", "html renders the list, edit prompts for every field")
	output := flag.String("output", "", "output file (stdout if empty)")
	childKey := flag.String("key", "", "element field used as render key (index if empty)")
	shared := flag.Bool("shared-handlers", false, "share one change handler per element index")
	flag.Parse()

	if strings.TrimSpace(*source) == "" {
		log.Fatalf("missing -snapshot")
	}

	snap, err := snapshot.Load(*source)
	if err != nil {
		log.Fatalf("Failed to load snapshot: %v", err)
	}

	var editErrs []error
	store := formstate.New(snap.Name, snap.Value,
		formstate.WithInitialValue(snap.InitialValue),
		formstate.WithErrors[list.DynamicRecord](snap.Errors),
		formstate.WithErrorHandler[list.DynamicRecord](func(err error) {
			editErrs = append(editErrs, err)
		}),
	)

	keying := list.KeyByIndexAndField
	if *shared {
		keying = list.KeyByIndex
	}
	view := list.NewView(list.New(list.RecordSchema(), list.WithHandlerKeying(keying)))

	props := list.Props[list.DynamicRecord]{Field: store.Field()}
	if key := strings.TrimSpace(*childKey); key != "" {
		props.ChildKey = func(item list.DynamicRecord) string {
			return fmt.Sprint(item.Value(key))
		}
	}

	elements, _, err := view.Elements(props)
	if err != nil {
		log.Fatalf("Failed to derive %s: %v", snap.Name, err)
	}

	var out bytes.Buffer
	switch *mode {
	case "html":
		renderer, err := html.New()
		if err != nil {
			log.Fatalf("Failed to build renderer: %v", err)
		}
		if err := html.Render(renderer, &out, elements); err != nil {
			log.Fatalf("Failed to render: %v", err)
		}
	case "edit":
		if err := tui.Edit(context.Background(), tui.New(), snap.Name, elements); err != nil {
			log.Fatalf("Failed to edit: %v", err)
		}
		if err := errors.Join(editErrs...); err != nil {
			log.Fatalf("Failed to apply edits: %v", err)
		}
		snap.Value = store.Value()
		snap.Errors = store.Errors()
		if err := snapshot.Encode(&out, snap); err != nil {
			log.Fatalf("Failed to encode snapshot: %v", err)
		}
	default:
		log.Fatalf("unknown mode %q", *mode)
	}

	if err := writeOutput(*output, out.Bytes()); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
}

func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := io.Copy(os.Stdout, bytes.NewReader(data))
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	fmt.Printf("Output written to %s\n", path)
	return nil
}
