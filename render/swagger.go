// Package render encodes a generated API document into the Swagger 2.0 wire
// format, as JSON or YAML.
//
// The package is a pure consumer of the document data model: it never reaches
// back into route tables or descriptors, so any document the generator emits
// can be rendered repeatedly and concurrently.
package render

import "github.com/routedoc/routedoc/document"

// SwaggerObject is the root of a Swagger 2.0 description.
type SwaggerObject struct {
	Swagger string              `yaml:"swagger" json:"swagger"`
	Info    Info                `yaml:"info" json:"info"`
	Host    string              `yaml:"host,omitempty" json:"host,omitempty"`
	Schemes []string            `yaml:"schemes,omitempty" json:"schemes,omitempty"`
	Paths   map[string]PathItem `yaml:"paths" json:"paths"`
}

// Info carries the document metadata block.
type Info struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Version     string `yaml:"version" json:"version"`
}

// PathItem maps lowercase HTTP methods to their operations.
type PathItem map[string]*Operation

// Operation is one Swagger operation object.
type Operation struct {
	OperationID string               `yaml:"operationId" json:"operationId"`
	Summary     string               `yaml:"summary,omitempty" json:"summary,omitempty"`
	Description string               `yaml:"description,omitempty" json:"description,omitempty"`
	Tags        []string             `yaml:"tags,omitempty" json:"tags,omitempty"`
	Consumes    []string             `yaml:"consumes,omitempty" json:"consumes,omitempty"`
	Parameters  []Parameter          `yaml:"parameters,omitempty" json:"parameters,omitempty"`
	Responses   map[string]*Response `yaml:"responses" json:"responses"`
}

// Parameter is one Swagger parameter item.
type Parameter struct {
	Name        string             `yaml:"name" json:"name"`
	In          string             `yaml:"in" json:"in"`
	Required    bool               `yaml:"required,omitempty" json:"required,omitempty"`
	Description string             `yaml:"description,omitempty" json:"description,omitempty"`
	Type        string             `yaml:"type,omitempty" json:"type,omitempty"`
	Pattern     string             `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Items       *document.Fragment `yaml:"items,omitempty" json:"items,omitempty"`
	Schema      *document.Fragment `yaml:"schema,omitempty" json:"schema,omitempty"`
}

// Response is one Swagger response object.
type Response struct {
	Description string             `yaml:"description" json:"description"`
	Schema      *document.Fragment `yaml:"schema,omitempty" json:"schema,omitempty"`
}
