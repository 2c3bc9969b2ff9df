package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFragmentClone(t *testing.T) {
	t.Run("nil clones to nil", func(t *testing.T) {
		var f *Fragment
		assert.Nil(t, f.Clone())
	})

	t.Run("properties map is independent", func(t *testing.T) {
		orig := &Fragment{
			Type:     TypeObject,
			Required: []string{"id"},
			Properties: map[string]*Fragment{
				"id": {Type: TypeInteger},
			},
		}
		clone := orig.Clone()
		require.NotSame(t, orig, clone)

		clone.Properties["name"] = &Fragment{Type: TypeString}
		clone.Required = append(clone.Required, "name")
		clone.Description = "annotated"

		assert.Len(t, orig.Properties, 1)
		assert.Equal(t, []string{"id"}, orig.Required)
		assert.Empty(t, orig.Description)
	})
}

func TestLinkHasBodyFields(t *testing.T) {
	tests := []struct {
		name   string
		fields []Field
		want   bool
	}{
		{"no fields", nil, false},
		{"only query and path", []Field{
			{Name: "id", Location: LocationPath},
			{Name: "page", Location: LocationQuery},
		}, false},
		{"form field", []Field{{Name: "email", Location: LocationForm}}, true},
		{"body field", []Field{{Name: "data", Location: LocationBody}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Link{Fields: tt.fields}
			assert.Equal(t, tt.want, l.HasBodyFields())
		})
	}
}

func TestNodeIsEmpty(t *testing.T) {
	n := NewNode()
	assert.True(t, n.IsEmpty())

	n.Links["list"] = &Link{URL: "/users"}
	assert.False(t, n.IsEmpty())

	m := NewNode()
	m.Children["users"] = NewNode()
	assert.False(t, m.IsEmpty())
}
