// Package formstate provides a minimal owner for a list-valued form field: it
// keeps the canonical value, initial value and error trees, applies the
// transforms sent by the list controller in dispatch order and maps server
// error payloads onto list elements.
package formstate
