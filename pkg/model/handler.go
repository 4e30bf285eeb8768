package model

// ChangeHandler receives updates for a single field. Implementations returned
// by the list controller are pointers, so two descriptors carrying the same
// handler compare equal with ==.
type ChangeHandler interface {
	Change(Update)
}

// ChangeHandlerFunc adapts a function into a ChangeHandler. Func values are
// not comparable, so prefer a pointer type when identity matters.
type ChangeHandlerFunc func(Update)

// Change calls the underlying function.
func (fn ChangeHandlerFunc) Change(update Update) {
	fn(update)
}
