package list

import (
	"fmt"

	"github.com/goliatone/go-formstate/pkg/model"
	"github.com/goliatone/go-formstate/pkg/structural"
)

// Handler edits one field of one list element. It implements
// model.ChangeHandler.
type Handler[R any] struct {
	controller *Controller[R]
	index      int
	accessor   Accessor[R]
}

// Index reports the element index the handler edits.
func (h *Handler[R]) Index() int {
	return h.index
}

// Key reports the field key the handler edits.
func (h *Handler[R]) Key() string {
	return h.accessor.Name()
}

// Change sends exactly one transform to the OnChange of the latest derived
// snapshot. The transform reads the element from the list it is applied to,
// so updates queued before the owner re-renders compose in dispatch order.
func (h *Handler[R]) Change(update model.Update) {
	onChange := h.controller.field.OnChange
	if onChange == nil {
		return
	}
	onChange(h.transform(update))
}

func (h *Handler[R]) transform(update model.Update) model.Transform[R] {
	index, accessor := h.index, h.accessor
	return func(current []R) ([]R, error) {
		if index < 0 || index >= len(current) {
			return nil, &structural.IndexError{Index: index, Len: len(current)}
		}
		existing := current[index]
		next, err := update.Apply(accessor.Get(existing))
		if err != nil {
			return nil, fmt.Errorf("list: update %s at %d: %w", accessor.Name(), index, err)
		}
		item, err := accessor.Set(existing, next)
		if err != nil {
			return nil, err
		}
		return structural.Replace(current, index, item)
	}
}
