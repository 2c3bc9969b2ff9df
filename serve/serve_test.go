package serve

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/routedoc/routedoc"
	"github.com/routedoc/routedoc/descriptor"
	"github.com/routedoc/routedoc/generator"
	"github.com/routedoc/routedoc/versioning"
)

func testGenerator() *generator.Generator {
	userV1 := &descriptor.Descriptor{
		Name: "UserV1",
		Fields: []descriptor.Field{
			{Name: "name", Kind: descriptor.KindString, Required: true},
		},
	}
	userV2 := &descriptor.Descriptor{
		Name: "UserV2",
		Fields: []descriptor.Field{
			{Name: "name", Kind: descriptor.KindString, Required: true},
			{Name: "website", Kind: descriptor.KindURL, Required: true},
		},
	}
	provider := generator.RouteProviderFunc(func() []generator.Endpoint {
		return []generator.Endpoint{
			{
				Path:   "/api/{version}/users/",
				Method: http.MethodGet,
				Operation: &generator.Operation{
					Action: "list",
					Response: &versioning.Map{
						Entries: []versioning.Entry{
							{Constraint: "<2.0", Descriptor: userV1},
							{Constraint: ">=2.0", Descriptor: userV2},
						},
					},
				},
			},
		}
	})
	return generator.New(provider, generator.WithTitle("User API"), generator.WithBaseURL("https://api.example.com"))
}

func newTestHandler(opts ...Option) *Handler {
	return NewHandler(testGenerator(), opts...)
}

func TestServeJSONByDefault(t *testing.T) {
	h := newTestHandler()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schema?version=1.0", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, routedoc.UserAgent(), rec.Header().Get("Server"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, "2.0", decoded["swagger"])

	info, ok := decoded["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "User API", info["title"])
	assert.Equal(t, "1.0", info["version"])
}

func TestServeYAMLWhenAccepted(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/schema?version=1.0", nil)
	req.Header.Set("Accept", "application/yaml")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/yaml", rec.Header().Get("Content-Type"))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, "2.0", decoded["swagger"])
}

func TestServeVersionFromPathValue(t *testing.T) {
	mux := http.NewServeMux()
	mux.Handle("GET /schema/{version}", newTestHandler())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schema/2.1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version": "2.1"`)
	assert.Contains(t, rec.Body.String(), "/api/2.1/users/")
}

func TestServeDefaultVersion(t *testing.T) {
	h := newTestHandler(WithDefaultVersion("1.5"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schema", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version": "1.5"`)
}

func TestServeQueryOverridesDefault(t *testing.T) {
	h := newTestHandler(WithDefaultVersion("1.0"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schema?version=2.0", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version": "2.0"`)
}

func TestServeBadVersionIsClientError(t *testing.T) {
	h := newTestHandler()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schema?version=not-a-version", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServeEmptyDocumentIsNotFound(t *testing.T) {
	provider := generator.RouteProviderFunc(func() []generator.Endpoint { return nil })
	h := NewHandler(generator.New(provider))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/schema?version=1.0", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServeRejectsNonGET(t *testing.T) {
	h := newTestHandler()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/schema?version=1.0", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodGet, rec.Header().Get("Allow"))
}

func TestWantsYAML(t *testing.T) {
	cases := []struct {
		accept string
		want   bool
	}{
		{"application/yaml", true},
		{"text/yaml", true},
		{"application/x-yaml; q=0.9", true},
		{"application/json, application/yaml", true},
		{"application/json", false},
		{"", false},
		{"*/*", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, wantsYAML(tc.accept), "accept %q", tc.accept)
	}
}
