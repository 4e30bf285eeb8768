package model

// ElementErrors holds validation messages for one list element keyed by the
// element's field key. A nil map means the element has no errors.
type ElementErrors map[string][]string

// Messages returns the messages recorded for key.
func (e ElementErrors) Messages(key string) []string {
	if len(e) == 0 {
		return nil
	}
	return e[key]
}

// Transform computes the next list value from the one the owner holds when the
// transform is applied.
type Transform[R any] func(current []R) ([]R, error)

// ListField is the snapshot of a list-valued field handed down by the form
// tree. Value, InitialValue and Error are index aligned; Error may be nil when
// no element carries errors.
type ListField[R any] struct {
	Name         string
	Value        []R
	InitialValue []R
	Error        []ElementErrors
	OnBlur       func()
	OnChange     func(Transform[R])
}

// Descriptor bundles everything a renderer needs for a single field of a list
// element. Dirty is derived from Value and InitialValue on every pass.
type Descriptor struct {
	Value        any
	InitialValue any
	Error        []string
	Name         string
	Dirty        bool
	OnChange     ChangeHandler
	OnBlur       func()
}

// Change forwards update to the descriptor's change handler.
func (d Descriptor) Change(update Update) {
	if d.OnChange == nil {
		return
	}
	d.OnChange.Change(update)
}

// Blur calls OnBlur when present.
func (d Descriptor) Blur() {
	if d.OnBlur != nil {
		d.OnBlur()
	}
}
