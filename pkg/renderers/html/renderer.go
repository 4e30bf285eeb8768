package html

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formstate/pkg/list"
	"github.com/goliatone/go-formstate/pkg/model"
)

const defaultTemplate = `{% for element in elements %}<fieldset class="{{ class }}" data-index="{{ element.Index }}" data-key="{{ element.Key }}">
{% for field in element.Fields %}<div class="field{% if field.Dirty %} field--dirty{% endif %}{% if field.Errors %} field--invalid{% endif %}">
<label for="{{ field.ID }}">{{ field.Label }}</label>
<input id="{{ field.ID }}" name="{{ field.Name }}" type="{{ field.Type }}" value="{{ field.Value }}"{% if field.Checked %} checked{% endif %}{% if field.Disabled %} disabled{% endif %}>
{% for message in field.Errors %}<p class="field__error">{{ message|safe }}</p>
{% endfor %}</div>
{% endfor %}</fieldset>
{% endfor %}`

var (
	defaultPolicyOnce sync.Once
	defaultPolicy     *bluemonday.Policy
)

// ElementView is the template data of one list element.
type ElementView struct {
	Index  int
	Key    string
	Fields []FieldView
}

// FieldView is the template data of one field. Errors are sanitized and safe
// to emit without escaping.
type FieldView struct {
	ID       string
	Name     string
	Label    string
	Type     string
	Value    string
	Checked  bool
	Disabled bool
	Dirty    bool
	Errors   []string
}

// Renderer renders derived list elements as HTML fieldsets.
type Renderer struct {
	template *pongo2.Template
	policy   *bluemonday.Policy
	class    string
	source   string
}

// New compiles the renderer template.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		class:  "list-item",
		source: defaultTemplate,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.policy == nil {
		r.policy = messagePolicy()
	}

	tpl, err := pongo2.FromString(r.source)
	if err != nil {
		return nil, fmt.Errorf("html: compile template: %w", err)
	}
	r.template = tpl
	return r, nil
}

// Render writes the elements to w.
func Render[R any](r *Renderer, w io.Writer, elements []list.Element[R]) error {
	if r == nil || r.template == nil {
		return errors.New("html: renderer is not initialised")
	}
	views := make([]ElementView, 0, len(elements))
	for _, element := range elements {
		views = append(views, r.elementView(element.Index, element.Key, element.Fields))
	}
	if err := r.template.ExecuteWriter(pongo2.Context{
		"class":    r.class,
		"elements": views,
	}, w); err != nil {
		return fmt.Errorf("html: render: %w", err)
	}
	return nil
}

func (r *Renderer) elementView(index int, key string, fields list.Descriptors) ElementView {
	view := ElementView{
		Index:  index,
		Key:    key,
		Fields: make([]FieldView, 0, fields.Len()),
	}
	for fieldKey, desc := range fields.All() {
		view.Fields = append(view.Fields, r.fieldView(fieldKey, desc))
	}
	return view
}

func (r *Renderer) fieldView(key string, desc model.Descriptor) FieldView {
	field := FieldView{
		ID:     fieldID(desc.Name),
		Name:   desc.Name,
		Label:  key,
		Dirty:  desc.Dirty,
		Errors: r.sanitize(desc.Error),
	}
	switch value := desc.Value.(type) {
	case nil:
		field.Type = "text"
	case bool:
		field.Type = "checkbox"
		field.Value = "true"
		field.Checked = value
	case int, int64, float64:
		field.Type = "number"
		field.Value = fmt.Sprint(value)
	case string:
		field.Type = "text"
		field.Value = value
	default:
		field.Type = "text"
		field.Value = fmt.Sprint(value)
		field.Disabled = true
	}
	return field
}

func (r *Renderer) sanitize(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	for _, message := range messages {
		cleaned := strings.TrimSpace(r.policy.Sanitize(message))
		if cleaned == "" {
			continue
		}
		out = append(out, cleaned)
	}
	return out
}

func fieldID(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, ch := range name {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9', ch == '-', ch == '_':
			b.WriteRune(ch)
		default:
			b.WriteByte('-')
		}
	}
	return b.String()
}

func messagePolicy() *bluemonday.Policy {
	defaultPolicyOnce.Do(func() {
		defaultPolicy = bluemonday.StrictPolicy()
	})
	return defaultPolicy
}
