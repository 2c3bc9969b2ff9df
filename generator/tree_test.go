package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routedoc/routedoc/docerrors"
	"github.com/routedoc/routedoc/document"
)

func TestCommonPathPrefix(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  string
	}{
		{"no shared segments", []string{"/users", "/pets"}, ""},
		{"last shared segment stays in the tree", []string{"/a/b/{id}", "/a/c"}, ""},
		{"deep shared prefix", []string{"/api/v1/users/{id}", "/api/v1/pets"}, "/api"},
		{"templated segments stop the scan", []string{"/api/{version}/users", "/api/{version}/pets"}, ""},
		{"single path keeps its own endpoint segment", []string{"/api/users/{id}"}, "/api"},
		{"empty input", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, commonPathPrefix(tt.paths))
		})
	}
}

func TestPathKeys(t *testing.T) {
	tests := []struct {
		subpath string
		want    []string
	}{
		{"/a/b/{id}", []string{"a", "b"}},
		{"/a/c", []string{"a", "c"}},
		{"/users/{id}/friends", []string{"users", "friends"}},
		{"/", nil},
		{"", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pathKeys(tt.subpath), "subpath %q", tt.subpath)
	}
}

func TestInsertLink(t *testing.T) {
	t.Run("sibling endpoints share ancestor nodes", func(t *testing.T) {
		root := document.NewNode()
		retrieve := &document.Link{URL: "/a/b/{id}", Action: "get"}
		list := &document.Link{URL: "/a/c", Action: "get"}

		require.NoError(t, insertLink(root, []string{"a", "b"}, "retrieve", retrieve))
		require.NoError(t, insertLink(root, []string{"a", "c"}, "list", list))

		a := root.Children["a"]
		require.NotNil(t, a)
		require.Len(t, a.Children, 2)
		assert.Same(t, retrieve, a.Children["b"].Links["retrieve"])
		assert.Same(t, list, a.Children["c"].Links["list"])
	})

	t.Run("empty keys insert at the root", func(t *testing.T) {
		root := document.NewNode()
		link := &document.Link{URL: "/", Action: "get"}
		require.NoError(t, insertLink(root, nil, "list", link))
		assert.Same(t, link, root.Links["list"])
	})

	t.Run("same slot collides", func(t *testing.T) {
		root := document.NewNode()
		require.NoError(t, insertLink(root, []string{"users"}, "list", &document.Link{URL: "/users"}))
		err := insertLink(root, []string{"users"}, "list", &document.Link{URL: "/users"})
		require.Error(t, err)
		assert.ErrorIs(t, err, docerrors.ErrLink)
	})

	t.Run("links and children may coexist on one node", func(t *testing.T) {
		root := document.NewNode()
		require.NoError(t, insertLink(root, []string{"users"}, "list", &document.Link{URL: "/users"}))
		require.NoError(t, insertLink(root, []string{"users", "roles"}, "list", &document.Link{URL: "/users/{id}/roles"}))

		users := root.Children["users"]
		require.NotNil(t, users)
		assert.Len(t, users.Links, 1)
		assert.Len(t, users.Children, 1)
	})
}
