package generator

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/yosida95/uritemplate/v3"

	"github.com/routedoc/routedoc/descriptor"
	"github.com/routedoc/routedoc/docerrors"
	"github.com/routedoc/routedoc/document"
	"github.com/routedoc/routedoc/internal/textutil"
)

// versionPlaceholder is the reserved path variable carrying the requested
// API version. It never becomes a path field and is substituted with the
// literal version string in compiled URLs.
const versionPlaceholder = "version"

// DefaultEncoding is reported for links with form or body fields when the
// operation does not declare a request media type.
const DefaultEncoding = "application/x-www-form-urlencoded"

// compileLink produces the full description of one route+method pair.
// Version resolution errors propagate to the caller; everything else that
// can fail here is wrapped in a LinkError so document generation can skip
// the single link.
func (g *Generator) compileLink(path, method string, op *Operation, version string) (*document.Link, error) {
	fields, err := g.pathFields(path, op)
	if err != nil {
		return nil, err
	}

	requestFields, err := g.requestFields(method, op, version)
	if err != nil {
		return nil, err
	}
	fields = append(fields, requestFields...)

	if op.Extra != nil {
		fields = append(fields, op.Extra.PaginationFields(path, method)...)
		fields = append(fields, op.Extra.FilterFields(path, method)...)
	}

	encoding := ""
	for _, f := range fields {
		if f.Location == document.LocationForm || f.Location == document.LocationBody {
			encoding = op.Encoding
			if encoding == "" {
				encoding = DefaultEncoding
			}
			break
		}
	}

	description := op.Description
	if op.Request != nil {
		if doc := textutil.CleanDoc(op.Request.Documentation()); doc != "" {
			description += "\n\n**Request Description:**\n" + doc
		}
	}

	var responseShape *descriptor.Descriptor
	if op.Response != nil {
		if doc := textutil.CleanDoc(op.Response.Documentation()); doc != "" {
			description += "\n\n**Response Description:**\n" + doc
		}
		responseShape, err = op.Response.Resolve(version)
		if err != nil {
			return nil, err
		}
	}

	// Without an explicit response shape, read-style actions fall back to
	// the route's generic serializer, paginated for list actions.
	action := op.Action
	if responseShape == nil && (action == "list" || action == "retrieve") && op.Serializer != nil {
		responseShape = op.Serializer
		if action == "list" {
			responseShape = wrapForPagination(responseShape, op.Paginator)
		}
	}

	var response *document.ResponseSchema
	errorStatuses := map[int]string{}
	if responseShape != nil {
		response, errorStatuses, err = g.composeResponse(responseShape, op.Description)
		if err != nil {
			return nil, err
		}
	}

	return &document.Link{
		URL:           strings.ReplaceAll(path, "{"+versionPlaceholder+"}", version),
		Action:        strings.ToLower(method),
		Encoding:      encoding,
		Description:   description,
		Fields:        fields,
		Response:      response,
		ErrorStatuses: errorStatuses,
	}, nil
}

// pathFields compiles the templated path variables of the route, excluding
// the reserved version placeholder. Model metadata, when available, enriches
// the title and description and upgrades auto-increment primary keys to an
// integer schema.
func (g *Generator) pathFields(path string, op *Operation) ([]document.Field, error) {
	tmpl, err := uritemplate.New(path)
	if err != nil {
		return nil, &docerrors.LinkError{Path: path, Message: "invalid URL template", Cause: err}
	}

	var fields []document.Field
	for _, variable := range tmpl.Varnames() {
		if variable == versionPlaceholder {
			continue
		}

		schema := &document.Fragment{Type: document.TypeString}
		if op.Model != nil {
			if info, ok := op.Model.FieldInfo(variable); ok {
				if info.VerboseName != "" {
					schema.Title = textutil.Title(info.VerboseName)
				}
				switch {
				case info.HelpText != "":
					schema.Description = info.HelpText
				case info.PrimaryKey:
					schema.Description = pkDescription(op.Model, info)
				}
				if info.AutoIncrement && !(op.LookupField == variable && op.LookupPattern != "") {
					schema.Type = document.TypeInteger
				}
			}
		}
		if op.LookupField == variable && op.LookupPattern != "" {
			schema.Pattern = op.LookupPattern
		}

		fields = append(fields, document.Field{
			Name:     variable,
			Location: document.LocationPath,
			Required: true,
			Schema:   schema,
		})
	}
	return fields, nil
}

// pkDescription infers a description for an otherwise undocumented
// primary-key path variable.
func pkDescription(model ModelMeta, info FieldInfo) string {
	name := model.VerboseName()
	if name == "" {
		name = "object"
	}
	if info.AutoIncrement {
		return fmt.Sprintf("A unique integer value identifying this %s.", name)
	}
	return fmt.Sprintf("A unique value identifying this %s.", name)
}

// requestFields derives the body or query fields from the resolved request
// descriptor: form-located for mutating methods, query-located otherwise.
func (g *Generator) requestFields(method string, op *Operation, version string) ([]document.Field, error) {
	location := document.LocationQuery
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		location = document.LocationForm
	}

	var (
		shape *descriptor.Descriptor
		err   error
	)
	switch {
	case op.Request != nil:
		shape, err = op.Request.Resolve(version)
		if err != nil {
			return nil, err
		}
	case op.Serializer != nil:
		shape = op.Serializer
	default:
		return nil, nil
	}

	// A bare list payload compiles to a single opaque array field.
	if op.RequestIsList {
		return []document.Field{{
			Name:     "data",
			Location: location,
			Required: true,
			Schema:   &document.Fragment{Type: document.TypeArray},
		}}, nil
	}

	var fields []document.Field
	for _, f := range shape.Fields {
		if compiled, ok := g.deriveField(f, location, method); ok {
			fields = append(fields, compiled)
		}
	}
	return fields, nil
}
