// Package descriptor defines the declarative data-shape model that routedoc
// compiles API documents from.
//
// A Descriptor names a structured payload and lists its fields in declaration
// order. Descriptors are declared once, typically at service startup, and are
// treated as read-only for the process lifetime: the generator never mutates
// them and concurrent document generation may share them freely.
package descriptor

// Kind is the closed set of field kind tags. The generator dispatches on the
// kind tag rather than on open-ended type inspection, so switches over Kind
// stay exhaustive and compiler-checkable.
type Kind int

const (
	// KindString is a plain text field.
	KindString Kind = iota
	// KindInteger is a whole-number field.
	KindInteger
	// KindNumber is a decimal number field.
	KindNumber
	// KindBoolean is a true/false field.
	KindBoolean
	// KindDateTime is an RFC 3339 timestamp field.
	KindDateTime
	// KindURL is a URL-formatted string field.
	KindURL
	// KindList is a homogeneous list field; Elem describes the element shape.
	KindList
	// KindNested is a field whose shape is another Descriptor.
	KindNested
	// KindMap is a free-form mapping field. The generic introspector cannot
	// represent it faithfully, so schema derivation falls back to an
	// empty-properties object.
	KindMap
	// KindJSON is a free-form JSON blob field, with the same fallback
	// treatment as KindMap.
	KindJSON
	// KindHidden is an internal field that never appears in documents.
	KindHidden
)

// String returns the kind tag name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindDateTime:
		return "datetime"
	case KindURL:
		return "url"
	case KindList:
		return "list"
	case KindNested:
		return "nested"
	case KindMap:
		return "map"
	case KindJSON:
		return "json"
	case KindHidden:
		return "hidden"
	}
	return "unknown"
}

// Field is one declared field of a Descriptor. Fields are immutable after
// declaration.
type Field struct {
	// Name is the wire name of the field.
	Name string
	// Kind is the field's kind tag.
	Kind Kind
	// Required marks the field as required on input. The generator clears
	// it for partial-update methods.
	Required bool
	// ReadOnly fields are omitted from request field derivation entirely.
	ReadOnly bool
	// Label is a short human-readable title.
	Label string
	// Help is optional help text. Lazily-localized text is forced to a
	// concrete string exactly once, during field derivation.
	Help Text
	// Nested is the sub-descriptor for KindNested fields.
	Nested *Descriptor
	// Elem describes the element of KindList fields. A nil Elem documents
	// the list as an array of unspecified items.
	Elem *Field
}

// HelpText resolves the field's help text to a concrete string.
// It returns "" when no help text is declared.
func (f Field) HelpText() string {
	if f.Help == nil {
		return ""
	}
	return f.Help.Resolve()
}

// Descriptor is a named, introspectable description of a data structure.
// Field order is part of the contract and is preserved through compilation.
type Descriptor struct {
	// Name identifies the descriptor in errors and logs.
	Name string
	// Doc is descriptor-level documentation, appended to endpoint
	// descriptions when the descriptor participates in version resolution.
	Doc string
	// Fields lists the declared fields in order.
	Fields []Field
	// ErrorStatuses maps declared error status codes to human descriptions.
	ErrorStatuses map[int]string
}

// Resolver selects a concrete Descriptor for a runtime version string.
//
// A bare *Descriptor is a Resolver that ignores the version; *versioning.Map
// resolves through its constraint entries. The generator treats both
// uniformly when compiling links.
type Resolver interface {
	// Resolve returns the descriptor for the requested version.
	Resolve(version string) (*Descriptor, error)
	// Documentation returns resolver-level documentation text, or "".
	Documentation() string
}

// Resolve returns the descriptor itself, regardless of version.
func (d *Descriptor) Resolve(string) (*Descriptor, error) {
	return d, nil
}

// Documentation returns the descriptor's own documentation text.
func (d *Descriptor) Documentation() string {
	return d.Doc
}
