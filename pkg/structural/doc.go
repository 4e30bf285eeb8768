// Package structural holds the small immutable helpers the list controller is
// built on: an insertion-ordered Record, MapObject for key-preserving
// transforms and Replace for single-slot substitution in a slice.
package structural
