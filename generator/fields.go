package generator

import (
	"net/http"

	"github.com/routedoc/routedoc/descriptor"
	"github.com/routedoc/routedoc/document"
)

// deriveField converts one declared field into a compiled field descriptor.
// The second return value is false when the field is omitted entirely:
// read-only fields and hidden fields never appear in documents, regardless
// of method.
func (g *Generator) deriveField(f descriptor.Field, location document.Location, method string) (document.Field, bool) {
	if f.ReadOnly || f.Kind == descriptor.KindHidden {
		return document.Field{}, false
	}

	// Partial updates never require any field.
	required := f.Required && method != http.MethodPatch

	// Force lazily-localized help text to a concrete string.
	description := f.HelpText()

	schema := fallbackSchema(f)
	if schema == nil {
		schema = g.introspector.FieldSchema(f)
	}

	return document.Field{
		Name:        f.Name,
		Location:    location,
		Required:    required,
		Schema:      schema,
		Description: description,
	}, true
}

// fallbackSchema synthesizes a generic object fragment for the field kinds
// the introspector cannot represent faithfully: free-form maps and free-form
// JSON blobs. It returns nil for every other kind.
func fallbackSchema(f descriptor.Field) *document.Fragment {
	switch f.Kind {
	case descriptor.KindMap, descriptor.KindJSON:
		return &document.Fragment{
			Type:        document.TypeObject,
			Properties:  map[string]*document.Fragment{},
			Title:       f.Label,
			Description: f.HelpText(),
		}
	}
	return nil
}

// defaultIntrospector is the built-in generic field-to-schema introspector.
// It maps primitive kinds to basic fragments and documents composite kinds
// shallowly; deep composition of nested descriptors is the response
// composer's job.
type defaultIntrospector struct{}

// FieldSchema implements Introspector.
func (di defaultIntrospector) FieldSchema(f descriptor.Field) *document.Fragment {
	frag := &document.Fragment{
		Title:       f.Label,
		Description: f.HelpText(),
	}
	switch f.Kind {
	case descriptor.KindInteger:
		frag.Type = document.TypeInteger
	case descriptor.KindNumber:
		frag.Type = document.TypeNumber
	case descriptor.KindBoolean:
		frag.Type = document.TypeBoolean
	case descriptor.KindDateTime:
		frag.Type = document.TypeString
		frag.Format = "date-time"
	case descriptor.KindURL:
		frag.Type = document.TypeString
		frag.Format = "uri"
	case descriptor.KindList:
		frag.Type = document.TypeArray
		if f.Elem != nil {
			frag.Items = di.FieldSchema(*f.Elem)
		}
	case descriptor.KindNested:
		frag.Type = document.TypeObject
		frag.Properties = map[string]*document.Fragment{}
		if frag.Title == "" && f.Nested != nil {
			frag.Title = f.Nested.Name
		}
	default:
		frag.Type = document.TypeString
	}
	return frag
}

// defaultExtractor is the built-in parameter-extraction collaborator: it
// folds an ordered field list into a single object fragment.
type defaultExtractor struct{}

// Extract implements ParamExtractor. It returns nil for an empty field list,
// which the composer treats as the declared empty-response case.
func (defaultExtractor) Extract(fields []document.Field) *document.Fragment {
	if len(fields) == 0 {
		return nil
	}
	obj := &document.Fragment{
		Type:       document.TypeObject,
		Properties: make(map[string]*document.Fragment, len(fields)),
	}
	for _, f := range fields {
		prop := f.Schema.Clone()
		if prop == nil {
			prop = &document.Fragment{Type: document.TypeString}
		}
		if prop.Description == "" {
			prop.Description = f.Description
		}
		obj.Properties[f.Name] = prop
		if f.Required {
			obj.Required = append(obj.Required, f.Name)
		}
	}
	return obj
}
