package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanDoc(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"single line", "List users.", "List users."},
		{
			"indented continuation lines are trimmed",
			"List users.\n\n    Supports filtering by email.\n    ",
			"List users.\n\nSupports filtering by email.",
		},
		{"leading blank lines dropped", "\n\n  Summary.", "Summary."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanDoc(tt.input))
		})
	}
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "", Title(""))
	assert.Equal(t, "Date Joined", Title("date joined"))
	assert.Equal(t, "Id", Title("id"))
}
