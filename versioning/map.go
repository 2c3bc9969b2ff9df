package versioning

import (
	"github.com/routedoc/routedoc/descriptor"
	"github.com/routedoc/routedoc/docerrors"
)

// Entry pairs a constraint with the descriptor it selects.
type Entry struct {
	// Constraint is the comma-separated clause text, e.g. ">1.3, <=1.6".
	Constraint string
	// Descriptor is the data shape served for matching versions.
	Descriptor *descriptor.Descriptor
}

// Map is an ordered sequence of (constraint, descriptor) entries for one
// versioned endpoint family. Declaration order is part of the contract:
// entries are not assumed mutually exclusive and the first match wins.
//
// A Map is declared once and is immutable for the process lifetime.
// It implements descriptor.Resolver.
type Map struct {
	// Doc documents the whole family; the generator appends it to endpoint
	// descriptions.
	Doc string
	// Entries are evaluated in order.
	Entries []Entry
}

// Resolve returns the descriptor of the first entry whose constraint is
// fully satisfied by the requested version. A malformed constraint or
// request version surfaces a ParseError; no matching entry surfaces a
// NoMatchingVersionError. Neither is silently defaulted.
func (m *Map) Resolve(requested string) (*descriptor.Descriptor, error) {
	for _, entry := range m.Entries {
		constraint, err := ParseConstraint(entry.Constraint)
		if err != nil {
			return nil, err
		}
		ok, err := constraint.Matches(requested)
		if err != nil {
			return nil, err
		}
		if ok {
			return entry.Descriptor, nil
		}
	}
	return nil, &docerrors.NoMatchingVersionError{Requested: requested}
}

// Documentation returns the family-level documentation text.
func (m *Map) Documentation() string {
	return m.Doc
}
