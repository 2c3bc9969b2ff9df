// Package serve exposes generated API description documents over HTTP.
//
// A Handler wraps a generator and renders its output as Swagger 2.0 on each
// request, so the served document always reflects the requested version. The
// requested version is read from the "version" path value when the handler is
// mounted on a templated route, then from the "version" query parameter, then
// from the configured default.
package serve

import (
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/routedoc/routedoc"
	"github.com/routedoc/routedoc/docerrors"
	"github.com/routedoc/routedoc/document"
	"github.com/routedoc/routedoc/generator"
	"github.com/routedoc/routedoc/render"
)

const (
	contentTypeJSON = "application/json"
	contentTypeYAML = "application/yaml"
)

// Handler serves Swagger 2.0 renderings of generated documents.
type Handler struct {
	gen            *generator.Generator
	logger         generator.Logger
	defaultVersion string
}

// Option configures a Handler.
type Option func(*Handler)

// WithDefaultVersion sets the version used when a request names none.
func WithDefaultVersion(version string) Option {
	return func(h *Handler) { h.defaultVersion = version }
}

// WithLogger sets the logger. The default discards all output.
func WithLogger(logger generator.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// NewHandler creates an HTTP handler over the given generator.
func NewHandler(gen *generator.Generator, opts ...Option) *Handler {
	h := &Handler{
		gen:    gen,
		logger: generator.NopLogger{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	version := h.requestVersion(r)
	doc, err := h.gen.Generate(version)
	if err != nil {
		h.writeError(w, version, err)
		return
	}
	if doc == nil {
		http.Error(w, "no document for version "+version, http.StatusNotFound)
		return
	}
	h.writeDocument(w, r, doc)
}

// requestVersion resolves the version a request asks for.
func (h *Handler) requestVersion(r *http.Request) string {
	if v := r.PathValue("version"); v != "" {
		return v
	}
	if v := r.URL.Query().Get("version"); v != "" {
		return v
	}
	return h.defaultVersion
}

// writeError maps generation failures onto HTTP statuses. Malformed and
// unmatchable versions are client errors; everything else is a server fault.
func (h *Handler) writeError(w http.ResponseWriter, version string, err error) {
	if errors.Is(err, docerrors.ErrParse) || errors.Is(err, docerrors.ErrNoMatchingVersion) {
		h.logger.Debug("rejecting document request", "version", version, "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.logger.Error("document generation failed", "version", version, "error", err)
	http.Error(w, "document generation failed", http.StatusInternalServerError)
}

// writeDocument renders the document in the negotiated format. JSON is the
// default; YAML is served only when the Accept header asks for it.
func (h *Handler) writeDocument(w http.ResponseWriter, r *http.Request, doc *document.Document) {
	var (
		data        []byte
		contentType string
		err         error
	)
	if wantsYAML(r.Header.Get("Accept")) {
		data, err = render.EncodeYAML(doc)
		contentType = contentTypeYAML
	} else {
		data, err = render.EncodeJSON(doc)
		contentType = contentTypeJSON
	}
	if err != nil {
		h.logger.Error("document encoding failed", "version", doc.Version, "error", err)
		http.Error(w, "document encoding failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Server", routedoc.UserAgent())
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		h.logger.Warn("writing document response failed", "error", err)
	}
}

// wantsYAML reports whether any Accept media type names a YAML format.
func wantsYAML(accept string) bool {
	for _, part := range strings.Split(accept, ",") {
		mediaType, _, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		switch mediaType {
		case contentTypeYAML, "text/yaml", "application/x-yaml":
			return true
		}
	}
	return false
}
