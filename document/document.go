// Package document defines the compiled artifacts of schema generation: the
// schema fragments, fields, links, and the hierarchical content tree that a
// rendering layer turns into a wire format.
//
// All types here are plain data. They are constructed fresh per generation
// request, never mutated afterwards, and carry no references back into the
// route table or descriptor declarations, so concurrent generation requests
// are independent.
package document

// Fragment types, matching the JSON Schema primitive type vocabulary.
const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeObject  = "object"
	TypeArray   = "array"
)

// Fragment is one node of a schema tree: a type tag plus nested properties
// when object-typed. Depth is bounded by descriptor nesting depth.
type Fragment struct {
	Type        string               `yaml:"type,omitempty" json:"type,omitempty"`
	Format      string               `yaml:"format,omitempty" json:"format,omitempty"`
	Title       string               `yaml:"title,omitempty" json:"title,omitempty"`
	Description string               `yaml:"description,omitempty" json:"description,omitempty"`
	Pattern     string               `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Required    []string             `yaml:"required,omitempty" json:"required,omitempty"`
	Properties  map[string]*Fragment `yaml:"properties,omitempty" json:"properties,omitempty"`
	Items       *Fragment            `yaml:"items,omitempty" json:"items,omitempty"`
}

// Clone returns a shallow-copied fragment with its own Properties map, so a
// composed response schema can be annotated without touching the source.
func (f *Fragment) Clone() *Fragment {
	if f == nil {
		return nil
	}
	out := *f
	if f.Properties != nil {
		out.Properties = make(map[string]*Fragment, len(f.Properties))
		for name, prop := range f.Properties {
			out.Properties[name] = prop
		}
	}
	if f.Required != nil {
		out.Required = append([]string(nil), f.Required...)
	}
	return &out
}

// Location tags where a compiled field is supplied in a request.
type Location string

const (
	// LocationPath is a templated path variable.
	LocationPath Location = "path"
	// LocationQuery is a URL query parameter.
	LocationQuery Location = "query"
	// LocationForm is a form or request-body member field.
	LocationForm Location = "form"
	// LocationBody is a whole-request-body field.
	LocationBody Location = "body"
)

// Field is one compiled request parameter. Never mutated after creation.
type Field struct {
	Name        string    `yaml:"name" json:"name"`
	Location    Location  `yaml:"location" json:"location"`
	Required    bool      `yaml:"required,omitempty" json:"required,omitempty"`
	Schema      *Fragment `yaml:"schema,omitempty" json:"schema,omitempty"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
}

// ResponseSchema pairs a composed schema with the response-level description
// that only the outermost composition carries.
type ResponseSchema struct {
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	Schema      *Fragment `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// Link is one endpoint's full description.
type Link struct {
	// URL is the path template with the version placeholder substituted.
	URL string `yaml:"url" json:"url"`
	// Action is the lowercase HTTP method.
	Action string `yaml:"action" json:"action"`
	// Encoding is the request media type, set only when a form or body
	// field exists.
	Encoding string `yaml:"encoding,omitempty" json:"encoding,omitempty"`
	// Description is the endpoint description, including any request and
	// response descriptor documentation blocks.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	// Fields lists the compiled request parameters in derivation order.
	Fields []Field `yaml:"fields,omitempty" json:"fields,omitempty"`
	// Response is the composed response schema, nil when the endpoint
	// declares none.
	Response *ResponseSchema `yaml:"response,omitempty" json:"response,omitempty"`
	// ErrorStatuses maps declared error status codes to descriptions.
	ErrorStatuses map[int]string `yaml:"errorStatuses,omitempty" json:"errorStatuses,omitempty"`
}

// HasBodyFields reports whether any field is supplied in the request body.
func (l *Link) HasBodyFields() bool {
	for _, f := range l.Fields {
		if f.Location == LocationForm || f.Location == LocationBody {
			return true
		}
	}
	return false
}

// Node is one level of the hierarchical document content tree, keyed by
// stripped path segment. Leaves hold links keyed by action; internal nodes
// hold children. Built bottom-up by insertion and read-only afterwards.
type Node struct {
	Links    map[string]*Link `yaml:"links,omitempty" json:"links,omitempty"`
	Children map[string]*Node `yaml:"children,omitempty" json:"children,omitempty"`
}

// NewNode returns an empty tree node.
func NewNode() *Node {
	return &Node{
		Links:    make(map[string]*Link),
		Children: make(map[string]*Node),
	}
}

// IsEmpty reports whether the node holds no links and no children.
func (n *Node) IsEmpty() bool {
	return len(n.Links) == 0 && len(n.Children) == 0
}

// Document is the root of a generated API description.
type Document struct {
	Version     string `yaml:"version" json:"version"`
	Title       string `yaml:"title,omitempty" json:"title,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	BaseURL     string `yaml:"baseUrl,omitempty" json:"baseUrl,omitempty"`
	Content     *Node  `yaml:"content,omitempty" json:"content,omitempty"`
}
