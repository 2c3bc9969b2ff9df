package generator

import (
	"github.com/routedoc/routedoc/descriptor"
	"github.com/routedoc/routedoc/docerrors"
	"github.com/routedoc/routedoc/document"
)

// composeResponse turns a response descriptor into a schema document fragment
// plus the error-status metadata declared on the descriptor. The description
// flows only into this outermost result; nested schemas carry only the
// field-level description inherited from their parent field.
//
// A descriptor whose fields yield no schema at all is the declared
// empty-response case: the returned response is nil and no error is raised.
// Error-status metadata is collected either way.
func (g *Generator) composeResponse(d *descriptor.Descriptor, description string) (*document.ResponseSchema, map[int]string, error) {
	schema, err := g.composeSchema(d, make(map[*descriptor.Descriptor]bool))
	if err != nil {
		return nil, nil, err
	}

	errorStatuses := make(map[int]string, len(d.ErrorStatuses))
	for code, desc := range d.ErrorStatuses {
		errorStatuses[code] = desc
	}

	if schema == nil {
		return nil, errorStatuses, nil
	}
	return &document.ResponseSchema{Description: description, Schema: schema}, errorStatuses, nil
}

// composeSchema recursively composes the object schema of a descriptor,
// depth-first over its declared fields.
//
// Fields that are themselves nested descriptors are composed recursively and
// spliced into the result's properties after the flat fields, so on a name
// collision the nested-derived entry wins. The visited set guards against
// descriptors that reference themselves transitively; a cycle surfaces a
// CyclicDescriptorError instead of unbounded recursion.
func (g *Generator) composeSchema(d *descriptor.Descriptor, visited map[*descriptor.Descriptor]bool) (*document.Fragment, error) {
	if visited[d] {
		return nil, &docerrors.CyclicDescriptorError{Descriptor: d.Name}
	}
	visited[d] = true
	defer delete(visited, d)

	nested := make(map[string]*document.Fragment)
	var flat []document.Field

	for _, f := range d.Fields {
		if f.Kind == descriptor.KindNested && f.Nested != nil {
			sub, err := g.composeSchema(f.Nested, visited)
			if err != nil {
				return nil, err
			}
			// A non-empty sub-schema is spliced in under the field name,
			// annotated with the field's own description. An empty one
			// falls through to the flat field list.
			if sub != nil {
				sub.Description = f.HelpText()
				nested[f.Name] = sub
				continue
			}
		}

		schema := fallbackSchema(f)
		if schema == nil {
			schema = g.introspector.FieldSchema(f)
		}
		flat = append(flat, document.Field{
			Name:     f.Name,
			Location: document.LocationForm,
			Required: f.Required,
			Schema:   schema,
		})
	}

	obj := g.extractor.Extract(flat)
	if obj == nil {
		if len(nested) == 0 {
			return nil, nil
		}
		return &document.Fragment{Type: document.TypeObject, Properties: nested}, nil
	}

	if obj.Properties == nil {
		obj.Properties = make(map[string]*document.Fragment, len(nested))
	}
	// Nested entries are merged last and win name collisions.
	for name, sub := range nested {
		obj.Properties[name] = sub
	}
	return obj, nil
}
