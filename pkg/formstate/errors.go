package formstate

import (
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-formstate/pkg/model"
)

// ErrorMapping splits a server error payload into index-aligned element
// errors and list-level messages.
type ErrorMapping struct {
	Elements []model.ElementErrors
	List     []string
}

// MapErrorPayload maps messages keyed by server paths onto the elements of the
// list field named field, holding length elements. Paths may be dotted
// ("contacts.0.email"), bracketed ("contacts[0].email") or JSON pointers
// ("/body/contacts/0/email"); request wrappers such as body or data are
// skipped. Deeper paths attach to the element's top-level key. Paths that do
// not address an element of the list become list-level messages so nothing
// is lost.
func MapErrorPayload(field string, length int, payload map[string][]string) ErrorMapping {
	var mapping ErrorMapping
	if len(payload) == 0 {
		return mapping
	}

	fieldSegments := parsePathSegments(field)
	paths := make([]string, 0, len(payload))
	for path := range payload {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	for _, rawPath := range paths {
		messages := normalizeMessages(payload[rawPath])
		if len(messages) == 0 {
			continue
		}

		index, key, ok := elementTarget(rawPath, fieldSegments, length)
		if !ok {
			mapping.List = append(mapping.List, messages...)
			continue
		}
		if mapping.Elements == nil {
			mapping.Elements = make([]model.ElementErrors, length)
		}
		if mapping.Elements[index] == nil {
			mapping.Elements[index] = make(model.ElementErrors)
		}
		mapping.Elements[index][key] = normalizeMessages(append(mapping.Elements[index][key], messages...))
	}

	mapping.List = normalizeMessages(mapping.List)
	return mapping
}

func elementTarget(rawPath string, fieldSegments []string, length int) (int, string, bool) {
	if len(fieldSegments) == 0 {
		return 0, "", false
	}
	segments := parsePathSegments(rawPath)
	for _, candidate := range [][]string{segments, dropWrapperSegments(segments)} {
		if index, key, ok := matchElement(candidate, fieldSegments, length); ok {
			return index, key, true
		}
	}
	return 0, "", false
}

func matchElement(segments, fieldSegments []string, length int) (int, string, bool) {
	if len(segments) < len(fieldSegments)+2 {
		return 0, "", false
	}
	for idx, segment := range fieldSegments {
		if segments[idx] != segment {
			return 0, "", false
		}
	}
	rest := segments[len(fieldSegments):]
	index, err := strconv.Atoi(rest[0])
	if err != nil || index < 0 || index >= length {
		return 0, "", false
	}
	return index, rest[1], true
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	if clean == "" {
		return nil
	}

	clean = strings.TrimPrefix(clean, "#/")
	clean = strings.TrimPrefix(clean, "$/")
	clean = strings.TrimPrefix(clean, "$.")
	for strings.HasPrefix(clean, "#") || strings.HasPrefix(clean, "/") || strings.HasPrefix(clean, ".") || strings.HasPrefix(clean, "$") {
		clean = strings.TrimPrefix(clean, "#")
		clean = strings.TrimPrefix(clean, "/")
		clean = strings.TrimPrefix(clean, ".")
		clean = strings.TrimPrefix(clean, "$")
	}

	replacer := strings.NewReplacer("[", ".", "]", "", "//", "/")
	clean = strings.Trim(replacer.Replace(clean), "./")
	if clean == "" {
		return nil
	}

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})

	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

var wrapperSegments = map[string]struct{}{
	"body":       {},
	"request":    {},
	"payload":    {},
	"data":       {},
	"attributes": {},
}

func dropWrapperSegments(segments []string) []string {
	out := segments
	for len(out) > 0 {
		if _, ok := wrapperSegments[strings.ToLower(out[0])]; !ok {
			break
		}
		out = out[1:]
	}
	return out
}
