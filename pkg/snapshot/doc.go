// Package snapshot reads and writes list field state as YAML documents:
//
//	name: contacts
//	value:
//	  - name: Ada
//	    email: ada@example.com
//	initialValue:
//	  - name: Ada
//	    email: ada@lovelace.dev
//	errors:
//	  - email: [already registered]
//
// Mapping order inside each element is preserved and becomes the field order
// of the derived descriptors.
package snapshot
