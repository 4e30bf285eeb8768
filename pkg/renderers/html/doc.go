// Package html renders derived list elements as HTML fieldsets, one input per
// field named by its dotted path, using a pongo2 template. Error messages are
// sanitized with bluemonday before they reach the markup.
package html
