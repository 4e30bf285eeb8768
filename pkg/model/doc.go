// Package model defines the contract shared by the list controller and the
// form tree that owns it: the per-field Descriptor handed to renderers, the
// Update value a change handler receives (a plain value or a mapper over the
// previous value) and ListField, the snapshot of a list-valued field with its
// value, initial value and index-aligned error trees. Mutations never touch
// these snapshots; they travel upstream as Transform functions that the owner
// applies to whatever value it holds at apply time.
package model
