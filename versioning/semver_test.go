package versioning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantMajor  int
		wantMinor  int
		wantPatch  int
		wantPre    string
		shouldFail bool
	}{
		{
			name:      "major only",
			input:     "1",
			wantMajor: 1,
		},
		{
			name:      "major.minor",
			input:     "1.6",
			wantMajor: 1,
			wantMinor: 6,
		},
		{
			name:      "two-digit minor",
			input:     "1.10",
			wantMajor: 1,
			wantMinor: 10,
		},
		{
			name:      "full triple",
			input:     "2.0.3",
			wantMajor: 2,
			wantPatch: 3,
		},
		{
			name:      "with prerelease",
			input:     "3.1.0-rc1",
			wantMajor: 3,
			wantMinor: 1,
			wantPre:   "rc1",
		},
		{
			name:       "empty string",
			input:      "",
			shouldFail: true,
		},
		{
			name:       "non-numeric component",
			input:      "1.x",
			shouldFail: true,
		},
		{
			name:       "too many components",
			input:      "1.2.3.4",
			shouldFail: true,
		},
		{
			name:       "negative component",
			input:      "-1.0",
			shouldFail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parseVersion(tt.input)
			if tt.shouldFail {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMajor, v.major)
			assert.Equal(t, tt.wantMinor, v.minor)
			assert.Equal(t, tt.wantPatch, v.patch)
			assert.Equal(t, tt.wantPre, v.prerelease)
		})
	}
}

func TestVersionCompare(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want int
	}{
		{"equal doubles", "1.0", "1.0", 0},
		{"missing components default to zero", "1.0", "1.0.0", 0},
		{"numeric not lexicographic", "1.10", "1.9", 1},
		{"major wins", "2.0", "1.99", 1},
		{"patch ordering", "1.0.1", "1.0.2", -1},
		{"prerelease below release", "1.0.0-rc1", "1.0.0", -1},
		{"release above prerelease", "1.0.0", "1.0.0-rc1", 1},
		{"prerelease lexicographic", "1.0.0-rc1", "1.0.0-rc2", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := parseVersion(tt.a)
			require.NoError(t, err)
			b, err := parseVersion(tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.compare(b))
		})
	}
}
