// Package generator assembles versioned API description documents from
// registered routes and their declared data-shape descriptors.
//
// A Generator walks the route table supplied by a RouteProvider, resolves
// version-mapped descriptors for the requested runtime version, compiles one
// link per visible route, and organizes the links into a hierarchical content
// tree keyed by stripped path segments.
//
// Generation is pure computation over already-loaded metadata: a Generator
// is safe for concurrent Generate calls as long as the route table and
// descriptor declarations are not mutated, because each call builds a fresh
// document tree.
package generator

import (
	"errors"
	"strings"

	"github.com/routedoc/routedoc/docerrors"
	"github.com/routedoc/routedoc/document"
)

// Generator builds API description documents on demand.
type Generator struct {
	provider     RouteProvider
	title        string
	description  string
	baseURL      string
	logger       Logger
	permissions  PermissionChecker
	introspector Introspector
	extractor    ParamExtractor
}

// Option configures a Generator.
type Option func(*Generator)

// WithTitle sets the document title.
func WithTitle(title string) Option {
	return func(g *Generator) { g.title = title }
}

// WithDescription sets the document description.
func WithDescription(description string) Option {
	return func(g *Generator) { g.description = description }
}

// WithBaseURL sets the document base URL.
func WithBaseURL(url string) Option {
	return func(g *Generator) { g.baseURL = url }
}

// WithLogger sets the logger. The default discards all output.
func WithLogger(logger Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithPermissionChecker sets the route visibility check. The default makes
// every route visible.
func WithPermissionChecker(pc PermissionChecker) Option {
	return func(g *Generator) {
		if pc != nil {
			g.permissions = pc
		}
	}
}

// WithIntrospector replaces the generic field-to-schema introspector.
func WithIntrospector(in Introspector) Option {
	return func(g *Generator) {
		if in != nil {
			g.introspector = in
		}
	}
}

// WithParamExtractor replaces the parameter-extraction collaborator used by
// response schema composition.
func WithParamExtractor(pe ParamExtractor) Option {
	return func(g *Generator) {
		if pe != nil {
			g.extractor = pe
		}
	}
}

// allowAll is the default permission checker.
type allowAll struct{}

func (allowAll) HasPermission(string, string, *Operation) bool { return true }

// New creates a Generator over the given route provider.
func New(provider RouteProvider, opts ...Option) *Generator {
	g := &Generator{
		provider:     provider,
		logger:       NopLogger{},
		permissions:  allowAll{},
		introspector: defaultIntrospector{},
		extractor:    defaultExtractor{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// candidate is one route surviving the exclusion filter.
type candidate struct {
	path   string
	method string
	op     *Operation
}

// Generate assembles the document for the requested runtime version.
//
// A nil document with a nil error means there is nothing to document: either
// no routes are registered or none passed the permission check. Version
// resolution failures (malformed version strings, no matching version map
// entry) propagate to the caller; any other per-route failure is logged and
// the route is skipped so that partial metadata problems never fail the
// whole document.
func (g *Generator) Generate(version string) (*document.Document, error) {
	if g.provider == nil {
		return nil, &docerrors.ConfigError{Option: "provider", Message: "route provider is required"}
	}

	var (
		candidates []candidate
		paths      []string
	)
	for _, ep := range g.provider.Endpoints() {
		if ep.Operation == nil || ep.Operation.Exclude {
			continue
		}
		path := coercePath(ep.Path)
		candidates = append(candidates, candidate{path: path, method: ep.Method, op: ep.Operation})
		paths = append(paths, path)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	prefix := commonPathPrefix(paths)
	root := document.NewNode()
	inserted := 0

	for _, c := range candidates {
		if !g.permissions.HasPermission(c.path, c.method, c.op) {
			g.logger.Debug("route not visible", "path", c.path, "method", c.method)
			continue
		}

		link, err := g.compileLink(c.path, c.method, c.op, version)
		if err != nil {
			if errors.Is(err, docerrors.ErrParse) || errors.Is(err, docerrors.ErrNoMatchingVersion) {
				return nil, err
			}
			g.logger.Warn("skipping link", "path", c.path, "method", c.method, "error", err)
			continue
		}

		keys := pathKeys(strings.TrimPrefix(c.path, prefix))
		if err := insertLink(root, keys, leafAction(c.method, c.op), link); err != nil {
			g.logger.Warn("skipping link", "path", c.path, "method", c.method, "error", err)
			continue
		}
		inserted++
	}

	if inserted == 0 {
		return nil, nil
	}
	return &document.Document{
		Version:     version,
		Title:       g.title,
		Description: g.description,
		BaseURL:     g.baseURL,
		Content:     root,
	}, nil
}

// leafAction is the key a link is stored under at its tree leaf: the
// operation's declared action name, or the lowercase HTTP method.
func leafAction(method string, op *Operation) string {
	if op.Action != "" {
		return op.Action
	}
	return strings.ToLower(method)
}

// coercePath normalizes the conventional "{pk}" lookup variable to "{id}" so
// documents read uniformly regardless of how routes spell their primary key.
func coercePath(path string) string {
	return strings.ReplaceAll(path, "{pk}", "{id}")
}
