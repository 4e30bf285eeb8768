package list

import (
	"strconv"

	"github.com/goliatone/go-formstate/pkg/model"
	"github.com/goliatone/go-formstate/pkg/structural"
)

// Descriptors maps every key of one list element to its field descriptor.
type Descriptors = structural.Record[model.Descriptor]

// Props is what the form tree hands the controller on every pass.
type Props[R any] struct {
	Field model.ListField[R]
	// ChildKey, when set, supplies the render key of an element. Keys must be
	// unique across the current elements; duplicates are not detected.
	ChildKey func(item R) string
}

// Element is the derived output for one list element.
type Element[R any] struct {
	Index  int
	Key    string
	Fields Descriptors
}

// Controller derives descriptors for one list field and owns the change
// handler registry of that field.
type Controller[R any] struct {
	schema   Schema[R]
	keying   HandlerKeying
	field    model.ListField[R]
	handlers map[handlerSlot]*Handler[R]
}

type handlerSlot struct {
	index int
	key   string
}

// New constructs a controller for lists whose elements are described by
// schema.
func New[R any](schema Schema[R], options ...Option) *Controller[R] {
	cfg := config{keying: KeyByIndex}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return &Controller[R]{
		schema:   schema,
		keying:   cfg.keying,
		handlers: make(map[handlerSlot]*Handler[R]),
	}
}

// Derive builds the descriptors of every element of props.Field.Value. Names
// follow the dotted "<field>.<index>.<key>" convention. The render key is
// ChildKey(item) when provided, the decimal index otherwise.
func (c *Controller[R]) Derive(props Props[R]) ([]Element[R], error) {
	field := props.Field
	if err := checkField(field); err != nil {
		return nil, err
	}
	c.bind(field)

	elements := make([]Element[R], 0, len(field.Value))
	for index, item := range field.Value {
		fields, err := c.deriveElement(field, index, item)
		if err != nil {
			return nil, err
		}
		key := strconv.Itoa(index)
		if props.ChildKey != nil {
			key = props.ChildKey(item)
		}
		elements = append(elements, Element[R]{Index: index, Key: key, Fields: fields})
	}
	return elements, nil
}

// Each derives the elements and calls fn for each one in order. The first
// error returned by fn stops the walk.
func (c *Controller[R]) Each(props Props[R], fn func(key string, fields Descriptors, index int) error) error {
	elements, err := c.Derive(props)
	if err != nil {
		return err
	}
	for _, element := range elements {
		if err := fn(element.Key, element.Fields, element.Index); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller[R]) deriveElement(field model.ListField[R], index int, item R) (Descriptors, error) {
	initial := field.InitialValue[index]
	var errs model.ElementErrors
	if field.Error != nil {
		errs = field.Error[index]
	}
	prefix := field.Name + "." + strconv.Itoa(index) + "."

	return structural.MapObject(c.schema.Fields(item), func(accessor Accessor[R], key string) (model.Descriptor, error) {
		value := accessor.Get(item)
		initialValue := accessor.Get(initial)
		return model.Descriptor{
			Value:        value,
			InitialValue: initialValue,
			Error:        errs.Messages(key),
			Name:         prefix + key,
			Dirty:        !accessor.Equal(value, initialValue),
			OnChange:     c.handlerFor(index, accessor),
			OnBlur:       field.OnBlur,
		}, nil
	})
}

// HandlerFor returns the memoized change handler of the element at index for
// key. Handlers are created lazily and kept for the controller's lifetime,
// even after the list shrinks. Under KeyByIndex the slot is shared by every
// key of the element. HandlerFor returns nil when no field has been derived
// yet or key is unknown to the schema for the current element.
func (c *Controller[R]) HandlerFor(index int, key string) *Handler[R] {
	if handler, ok := c.handlers[c.slot(index, key)]; ok {
		return handler
	}
	if index < 0 || index >= len(c.field.Value) {
		return nil
	}
	accessor, ok := c.schema.Fields(c.field.Value[index]).Get(key)
	if !ok {
		return nil
	}
	return c.handlerFor(index, accessor)
}

func (c *Controller[R]) handlerFor(index int, accessor Accessor[R]) *Handler[R] {
	slot := c.slot(index, accessor.Name())
	if handler, ok := c.handlers[slot]; ok {
		return handler
	}
	handler := &Handler[R]{controller: c, index: index, accessor: accessor}
	c.handlers[slot] = handler
	return handler
}

func (c *Controller[R]) slot(index int, key string) handlerSlot {
	if c.keying == KeyByIndexAndField {
		return handlerSlot{index: index, key: key}
	}
	return handlerSlot{index: index}
}

// bind records the latest snapshot so handlers reach the current OnChange.
func (c *Controller[R]) bind(field model.ListField[R]) {
	c.field = field
}

func checkField[R any](field model.ListField[R]) error {
	if field.OnChange == nil {
		return ErrMissingOnChange
	}
	if len(field.InitialValue) != len(field.Value) {
		return &ContractError{Field: field.Name, Array: "initial value", Want: len(field.Value), Got: len(field.InitialValue)}
	}
	if field.Error != nil && len(field.Error) != len(field.Value) {
		return &ContractError{Field: field.Name, Array: "error", Want: len(field.Value), Got: len(field.Error)}
	}
	return nil
}
