package tui

// Theme captures optional message prefixes. Keep minimal to avoid coupling
// editor logic to ANSI specifics.
type Theme struct {
	ElementPrefix string
	ErrorPrefix   string
	DirtyMarker   string
}

// Option configures the Editor.
type Option func(*Editor)

// WithPromptDriver overrides the prompt driver used by the editor.
func WithPromptDriver(driver PromptDriver) Option {
	return func(e *Editor) {
		if driver != nil {
			e.driver = driver
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(e *Editor) {
		e.theme = theme
	}
}

// WithElementLabel customises the header printed before each element. The
// default is "<field> #<index+1>".
func WithElementLabel(fn func(name string, index int) string) Option {
	return func(e *Editor) {
		if fn != nil {
			e.label = fn
		}
	}
}
