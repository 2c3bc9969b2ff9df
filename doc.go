// Package routedoc generates versioned API description documents from
// registered routes and their declared data-shape descriptors.
//
// routedoc lets one API declare its data shapes per version range and render
// the right document for any requested runtime version. A shape is declared
// once per version range with a comparator constraint; at generation time the
// requested version is matched against the ranges and the winning shape flows
// into the emitted document.
//
// # Overview
//
// The library consists of six primary packages:
//
//   - descriptor: Language-neutral data-shape declarations (fields, kinds, nesting)
//   - versioning: Comparator constraint expressions and version-to-descriptor maps
//   - generator: Compiles routes and resolved descriptors into a document tree
//   - document: The compiled document data model shared by all consumers
//   - render: Encodes a document into Swagger 2.0 JSON or YAML
//   - serve: Serves rendered documents over HTTP with per-request versions
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/routedoc/routedoc
//
// # Quick Start
//
// Declare a versioned response shape:
//
//	import (
//		"github.com/routedoc/routedoc/descriptor"
//		"github.com/routedoc/routedoc/versioning"
//	)
//
//	users := &versioning.Map{
//		Entries: []versioning.Entry{
//			{Constraint: ">=1.0,<2.0", Descriptor: userV1},
//			{Constraint: ">=2.0", Descriptor: userV2},
//		},
//	}
//
// Generate a document for a runtime version:
//
//	import "github.com/routedoc/routedoc/generator"
//
//	gen := generator.New(routes, generator.WithTitle("User API"))
//	doc, err := gen.Generate("2.1")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Render it as Swagger 2.0:
//
//	import "github.com/routedoc/routedoc/render"
//
//	data, err := render.EncodeYAML(doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Or serve it over HTTP, with the version taken from the request:
//
//	import "github.com/routedoc/routedoc/serve"
//
//	mux := http.NewServeMux()
//	mux.Handle("GET /docs/{version}", serve.NewHandler(gen))
//
// # Version Constraints
//
// Constraints are comma-separated comparator clauses that must all hold:
//
//	">=1.0,<2.0"   at least 1.0 and below 2.0
//	">1.6"         strictly above 1.6
//	"2.0"          exactly 2.0
//
// Versions are ordered numerically per component, so "1.10" is above "1.9".
// Map entries are checked in declaration order and the first match wins; see
// the versioning package documentation for the full grammar.
//
// # Error Handling
//
// All packages follow consistent error handling patterns:
//
//   - Malformed versions or constraints: wrap docerrors.ErrParse
//   - No map entry matching the requested version: wrap docerrors.ErrNoMatchingVersion
//   - Descriptor cycles during response composition: wrap docerrors.ErrCyclicDescriptor
//   - Per-route compilation failures: wrap docerrors.ErrLink
//
// Version resolution failures abort generation; other per-route failures are
// logged and the route is skipped, so partial metadata problems never fail
// the whole document. Match errors with errors.Is against the docerrors
// sentinels.
//
// # Concurrency
//
// A Generator is safe for concurrent Generate calls as long as the route
// table and descriptor declarations are not mutated: each call builds a fresh
// document tree. Rendering and serving are pure consumers of the document
// data model and are likewise safe to run concurrently.
//
// # Additional Resources
//
//   - OpenAPI Specification 2.0: https://spec.openapis.org/oas/v2.0.html
//   - Go Package Documentation: https://pkg.go.dev/github.com/routedoc/routedoc
package routedoc
