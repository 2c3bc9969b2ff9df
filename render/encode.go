package render

import (
	"encoding/json"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/routedoc/routedoc/document"
)

// Form media types that keep form fields as individual formData parameters.
// Every other encoding collapses them into a single body parameter.
const (
	mediaTypeMultipart  = "multipart/form-data"
	mediaTypeURLEncoded = "application/x-www-form-urlencoded"
	mediaTypeOctet      = "application/octet-stream"
)

// Encode builds the Swagger 2.0 object for a generated document.
func Encode(doc *document.Document) *SwaggerObject {
	obj := &SwaggerObject{
		Swagger: "2.0",
		Info: Info{
			Title:       doc.Title,
			Description: doc.Description,
			Version:     doc.Version,
		},
		Paths: make(map[string]PathItem),
	}

	if parsed, err := url.Parse(doc.BaseURL); err == nil {
		obj.Host = parsed.Host
		if parsed.Scheme != "" {
			obj.Schemes = []string{parsed.Scheme}
		}
	}

	walkLinks(doc.Content, nil, func(keys []string, action string, link *document.Link) {
		item, ok := obj.Paths[link.URL]
		if !ok {
			item = make(PathItem)
			obj.Paths[link.URL] = item
		}
		item[link.Action] = encodeOperation(keys, action, link)
	})
	return obj
}

// EncodeJSON renders the document as Swagger 2.0 JSON.
func EncodeJSON(doc *document.Document) ([]byte, error) {
	return json.MarshalIndent(Encode(doc), "", "  ")
}

// EncodeYAML renders the document as Swagger 2.0 YAML.
func EncodeYAML(doc *document.Document) ([]byte, error) {
	return yaml.Marshal(Encode(doc))
}

// walkLinks visits every link in the content tree, depth-first, in sorted key
// order so rendering is deterministic.
func walkLinks(node *document.Node, keys []string, visit func(keys []string, action string, link *document.Link)) {
	if node == nil {
		return
	}
	for _, action := range sortedKeys(node.Links) {
		visit(keys, action, node.Links[action])
	}
	for _, name := range sortedKeys(node.Children) {
		child := append(append([]string{}, keys...), name)
		walkLinks(node.Children[name], child, visit)
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// encodeOperation builds one Swagger operation from a compiled link. The
// operation id is the joined tree key path; the first key doubles as the tag.
func encodeOperation(keys []string, action string, link *document.Link) *Operation {
	op := &Operation{
		OperationID: strings.Join(append(append([]string{}, keys...), action), "_"),
		Summary:     link.URL,
		Description: strings.TrimSpace(link.Description),
		Parameters:  encodeParameters(link),
		Responses:   encodeResponses(link),
	}
	if len(keys) > 0 {
		op.Tags = []string{keys[0]}
	}
	if link.Encoding != "" {
		op.Consumes = []string{link.Encoding}
	}
	return op
}

// encodeResponses emits the success response plus the declared error
// statuses.
func encodeResponses(link *document.Link) map[string]*Response {
	responses := map[string]*Response{}
	success := &Response{Description: "Success"}
	if link.Response != nil {
		success.Schema = link.Response.Schema
	}
	responses["200"] = success
	for code, description := range link.ErrorStatuses {
		responses[strconv.Itoa(code)] = &Response{Description: description}
	}
	return responses
}

// encodeParameters converts the link's compiled fields into Swagger
// parameter items. Form fields stay individual formData parameters only for
// form media types; otherwise they collapse into a single "data" body
// parameter with an object schema, which is how non-form payloads are
// expressed in Swagger 2.0.
func encodeParameters(link *document.Link) []Parameter {
	var (
		params     []Parameter
		properties map[string]*document.Fragment
		required   []string
	)
	formMedia := link.Encoding == mediaTypeMultipart || link.Encoding == mediaTypeURLEncoded

	for _, field := range link.Fields {
		switch field.Location {
		case document.LocationForm:
			if formMedia {
				p := simpleParameter(field)
				p.In = "formData"
				params = append(params, p)
				continue
			}
			if properties == nil {
				properties = make(map[string]*document.Fragment)
			}
			properties[field.Name] = schemaProperty(field)
			if field.Required {
				required = append(required, field.Name)
			}
		case document.LocationBody:
			params = append(params, bodyParameter(field, link.Encoding))
		default:
			params = append(params, simpleParameter(field))
		}
	}

	if properties != nil {
		params = append(params, Parameter{
			Name: "data",
			In:   "body",
			Schema: &document.Fragment{
				Type:       document.TypeObject,
				Properties: properties,
				Required:   required,
			},
		})
	}
	return params
}

// simpleParameter emits a path, query, or formData parameter.
func simpleParameter(field document.Field) Parameter {
	p := Parameter{
		Name:        field.Name,
		In:          string(field.Location),
		Required:    field.Required,
		Description: fieldDescription(field),
		Type:        fieldType(field),
	}
	if field.Schema != nil {
		p.Pattern = field.Schema.Pattern
		if p.Type == document.TypeArray {
			p.Items = field.Schema.Items
		}
	}
	return p
}

// bodyParameter emits a whole-body parameter. Octet-stream bodies are
// documented as binary strings; anything else carries an empty schema.
func bodyParameter(field document.Field, encoding string) Parameter {
	p := simpleParameter(field)
	p.In = "body"
	if encoding == mediaTypeOctet {
		p.Schema = &document.Fragment{Type: document.TypeString, Format: "binary"}
	} else {
		p.Schema = &document.Fragment{}
	}
	return p
}

// schemaProperty emits a form field as a property of the collapsed body
// object.
func schemaProperty(field document.Field) *document.Fragment {
	if field.Schema != nil {
		prop := field.Schema.Clone()
		if prop.Description == "" {
			prop.Description = field.Description
		}
		if prop.Type == "" {
			prop.Type = document.TypeString
		}
		return prop
	}
	return &document.Fragment{
		Type:        document.TypeString,
		Description: field.Description,
	}
}

func fieldDescription(field document.Field) string {
	if field.Description != "" {
		return field.Description
	}
	if field.Schema != nil {
		return field.Schema.Description
	}
	return ""
}

func fieldType(field document.Field) string {
	if field.Schema != nil && field.Schema.Type != "" {
		return field.Schema.Type
	}
	return document.TypeString
}
