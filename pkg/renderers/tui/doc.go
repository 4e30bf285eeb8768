// Package tui edits list fields from a terminal. The Editor prompts for every
// field of the derived elements through a PromptDriver (survey by default)
// and routes answers back through the field change handlers, so the owning
// form tree applies them like any other edit.
package tui
