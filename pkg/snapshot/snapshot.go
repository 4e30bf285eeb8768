package snapshot

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-formstate/pkg/list"
	"github.com/goliatone/go-formstate/pkg/model"
)

// ErrMissingName is returned when a snapshot does not name its field.
var ErrMissingName = errors.New("snapshot: name is required")

// Snapshot is the on-disk form of a list field: its name, current value,
// optional initial value and optional index-aligned errors. Element key order
// follows the document.
type Snapshot struct {
	Name         string                `yaml:"name"`
	Value        []list.DynamicRecord  `yaml:"value"`
	InitialValue []list.DynamicRecord  `yaml:"initialValue,omitempty"`
	Errors       []model.ElementErrors `yaml:"errors,omitempty"`
}

// Decode reads a YAML snapshot. An omitted initialValue shares the value
// slice, so every field starts clean.
func Decode(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&snap); err != nil {
		if errors.Is(err, io.EOF) {
			return Snapshot{}, fmt.Errorf("snapshot: empty document")
		}
		return Snapshot{}, fmt.Errorf("snapshot: decode: %w", err)
	}
	if snap.Name == "" {
		return Snapshot{}, ErrMissingName
	}
	if snap.InitialValue == nil {
		snap.InitialValue = snap.Value
	}
	return snap, nil
}

// Load reads the snapshot stored at path.
func Load(path string) (Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("snapshot: open %s: %w", path, err)
	}
	defer file.Close()
	return Decode(file)
}

// Encode writes snap as YAML.
func Encode(w io.Writer, snap Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	return enc.Close()
}

// Field turns the snapshot into a list field snapshot wired to onChange and
// onBlur.
func (s Snapshot) Field(onChange func(model.Transform[list.DynamicRecord]), onBlur func()) model.ListField[list.DynamicRecord] {
	return model.ListField[list.DynamicRecord]{
		Name:         s.Name,
		Value:        s.Value,
		InitialValue: s.InitialValue,
		Error:        s.Errors,
		OnBlur:       onBlur,
		OnChange:     onChange,
	}
}
