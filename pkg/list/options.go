package list

// HandlerKeying selects the registry slot used to memoize change handlers.
type HandlerKeying int

const (
	// KeyByIndex shares one slot per element index. The first key requested
	// for an index owns the slot: later keys at that index get the same
	// handler, which edits the first key. This matches the historical
	// behaviour renderers memoize against.
	KeyByIndex HandlerKeying = iota
	// KeyByIndexAndField gives every (index, key) pair its own slot.
	KeyByIndexAndField
)

// Option configures a Controller.
type Option func(*config)

type config struct {
	keying HandlerKeying
}

// WithHandlerKeying selects how change handlers are memoized.
func WithHandlerKeying(keying HandlerKeying) Option {
	return func(cfg *config) {
		cfg.keying = keying
	}
}
