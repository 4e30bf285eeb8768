package html

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Option configures the Renderer.
type Option func(*Renderer)

// WithTemplate replaces the built-in pongo2 template. The template receives
// "elements" ([]ElementView) and "class".
func WithTemplate(source string) Option {
	return func(r *Renderer) {
		if strings.TrimSpace(source) != "" {
			r.source = source
		}
	}
}

// WithClass sets the CSS class applied to every fieldset.
func WithClass(class string) Option {
	return func(r *Renderer) {
		r.class = strings.TrimSpace(class)
	}
}

// WithPolicy overrides the sanitizer applied to error messages. The default
// strips all markup.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		if policy != nil {
			r.policy = policy
		}
	}
}
