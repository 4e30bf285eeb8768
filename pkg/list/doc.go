// Package list derives per-element field descriptors for a list-valued form
// field and routes every edit back to the owning form tree as a Transform.
//
// A Controller is created once per list field and lives as long as the field
// does. Each Derive call reads the snapshot it is given (the controller never
// keeps a copy of the list) and hands out change handlers from an index keyed
// registry so renderers see the same handler pointer across passes. View wraps
// a controller with the recompute gate so hosts can call it on every refresh
// and only pay for derivation when value, initial value or errors changed.
//
// Controllers and views are not safe for concurrent use.
package list
