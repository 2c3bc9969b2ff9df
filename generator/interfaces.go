package generator

import (
	"github.com/routedoc/routedoc/descriptor"
	"github.com/routedoc/routedoc/document"
)

// Endpoint is one registered route: a path template, an HTTP method, and the
// operation metadata declared for the pair.
type Endpoint struct {
	// Path is the URL template, e.g. "/api/{version}/users/{id}".
	Path string
	// Method is the HTTP method, uppercase.
	Method string
	// Operation carries the declared metadata for this route.
	Operation *Operation
}

// RouteProvider supplies the route table. The generator calls it once per
// generation request and treats the result as read-only.
type RouteProvider interface {
	// Endpoints returns the registered (path, method, operation) triples.
	Endpoints() []Endpoint
}

// RouteProviderFunc adapts a function to the RouteProvider interface.
type RouteProviderFunc func() []Endpoint

// Endpoints implements RouteProvider.
func (f RouteProviderFunc) Endpoints() []Endpoint { return f() }

// Operation is the declared metadata of one route handler. All fields are
// optional unless noted; absent collaborators degrade gracefully.
type Operation struct {
	// Action names the handler semantics, e.g. "list", "retrieve",
	// "create". When empty the lowercase HTTP method is used.
	Action string
	// Description is the handler's declared description text.
	Description string
	// Exclude removes the endpoint from document generation entirely.
	Exclude bool

	// Request resolves the request data-shape descriptor. It may be a bare
	// *descriptor.Descriptor or a *versioning.Map.
	Request descriptor.Resolver
	// Response resolves the response data-shape descriptor. When nil,
	// list/retrieve actions fall back to Serializer.
	Response descriptor.Resolver
	// Serializer is the route's generic descriptor, used as the request
	// shape when Request is nil and as the response fallback for
	// list/retrieve actions.
	Serializer *descriptor.Descriptor
	// RequestIsList marks the request payload as a bare list of
	// Serializer-shaped items, compiled to a single required "data" array
	// field.
	RequestIsList bool

	// Paginator declares the route's pagination strategy; nil means the
	// route is not paginated.
	Paginator Paginator

	// LookupField is the path variable used for object lookup.
	LookupField string
	// LookupPattern is a regex constraining LookupField values, emitted as
	// the schema pattern of the matching path field.
	LookupPattern string

	// Model supplies field metadata for path variables; nil degrades to
	// empty titles and string schemas.
	Model ModelMeta
	// Extra supplies pagination and filter parameter fields; nil adds none.
	Extra ExtraFieldsProvider

	// Encoding is the request media type reported when the compiled link
	// carries form or body fields. Defaults to
	// "application/x-www-form-urlencoded".
	Encoding string
}

// PermissionChecker decides whether a route is visible in the generated
// document. Links failing the check are skipped before compilation.
type PermissionChecker interface {
	HasPermission(path, method string, op *Operation) bool
}

// PermissionCheckerFunc adapts a function to the PermissionChecker interface.
type PermissionCheckerFunc func(path, method string, op *Operation) bool

// HasPermission implements PermissionChecker.
func (f PermissionCheckerFunc) HasPermission(path, method string, op *Operation) bool {
	return f(path, method, op)
}

// Introspector turns one non-special declared field into a basic schema
// fragment. The generator overrides it only for the free-form kinds that
// cannot be introspected faithfully.
type Introspector interface {
	FieldSchema(f descriptor.Field) *document.Fragment
}

// ParamExtractor converts an ordered field list into an object-typed schema
// fragment with a properties map, or nil when the list is empty.
type ParamExtractor interface {
	Extract(fields []document.Field) *document.Fragment
}

// FieldInfo is model-level metadata for a single path variable.
type FieldInfo struct {
	// VerboseName is the human name of the model field.
	VerboseName string
	// HelpText is the model field's help text.
	HelpText string
	// PrimaryKey marks the model's primary key field.
	PrimaryKey bool
	// AutoIncrement marks integer auto-increment primary keys, which are
	// documented with an integer schema.
	AutoIncrement bool
}

// ModelMeta optionally supplies verbose names, help text, and primary-key
// metadata for path variables. Lookups that miss degrade to empty titles and
// string schemas.
type ModelMeta interface {
	// FieldInfo returns metadata for the named field and whether the model
	// knows the field at all.
	FieldInfo(name string) (FieldInfo, bool)
	// VerboseName returns the human name of the model itself, used in
	// primary-key descriptions.
	VerboseName() string
}

// ExtraFieldsProvider supplies already-compiled pagination and filter
// parameter fields for a route.
type ExtraFieldsProvider interface {
	PaginationFields(path, method string) []document.Field
	FilterFields(path, method string) []document.Field
}
