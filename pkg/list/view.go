package list

import "github.com/goliatone/go-formstate/pkg/model"

// View caches the last derivation of a controller and re-derives only when
// ShouldRecompute reports a change.
type View[R any] struct {
	controller *Controller[R]
	last       model.ListField[R]
	elements   []Element[R]
	primed     bool
}

// NewView wraps controller.
func NewView[R any](controller *Controller[R]) *View[R] {
	return &View[R]{controller: controller}
}

// Controller returns the wrapped controller.
func (v *View[R]) Controller() *Controller[R] {
	return v.controller
}

// Elements returns the elements for props and whether they were derived on
// this call. Skipped passes still rebind the snapshot so handlers reach the
// latest OnChange. A failed derivation is not cached.
func (v *View[R]) Elements(props Props[R]) ([]Element[R], bool, error) {
	if v.primed && !ShouldRecompute(v.last, props.Field) {
		if props.Field.OnChange != nil {
			v.controller.bind(props.Field)
		}
		return v.elements, false, nil
	}

	elements, err := v.controller.Derive(props)
	if err != nil {
		v.primed = false
		v.elements = nil
		return nil, true, err
	}
	v.last = props.Field
	v.elements = elements
	v.primed = true
	return elements, true, nil
}
