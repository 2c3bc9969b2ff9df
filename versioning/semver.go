package versioning

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// version represents a semantic version with major, minor, and patch
// components. Comparison is numeric per component, so "1.10" sorts after
// "1.9" where lexicographic string comparison would not.
type version struct {
	major      int
	minor      int
	patch      int
	prerelease string
}

// parseVersion parses a version string into a version struct.
// Accepts one to three numeric components with an optional "-prerelease"
// suffix. Examples: "1", "1.10", "2.0.3", "3.1.0-rc1". Missing components
// default to zero, so "1.0" and "1.0.0" compare equal.
func parseVersion(s string) (*version, error) {
	// Split off pre-release suffix if present
	var prerelease string
	if idx := strings.IndexByte(s, '-'); idx >= 0 {
		prerelease = s[idx+1:]
		s = s[:idx]
	}

	parts := strings.Split(s, ".")
	if s == "" || len(parts) > 3 {
		return nil, fmt.Errorf("invalid version format: %q", s)
	}

	// Parse major with bounds checking
	major, err := strconv.Atoi(parts[0])
	if err != nil || major < 0 || major > math.MaxInt32 {
		return nil, fmt.Errorf("invalid major version: %q", parts[0])
	}

	// Parse minor (optional, defaults to 0) with bounds checking
	minor := 0
	if len(parts) >= 2 {
		minor, err = strconv.Atoi(parts[1])
		if err != nil || minor < 0 || minor > math.MaxInt32 {
			return nil, fmt.Errorf("invalid minor version: %q", parts[1])
		}
	}

	// Parse patch (optional, defaults to 0) with bounds checking
	patch := 0
	if len(parts) == 3 {
		patch, err = strconv.Atoi(parts[2])
		if err != nil || patch < 0 || patch > math.MaxInt32 {
			return nil, fmt.Errorf("invalid patch version: %q", parts[2])
		}
	}

	return &version{
		major:      major,
		minor:      minor,
		patch:      patch,
		prerelease: prerelease,
	}, nil
}

// compare returns -1 if v < other, 0 if equal, and 1 if v > other.
// Pre-release versions have lower precedence than the corresponding release
// and are compared lexicographically against each other, which is sufficient
// for the short tags API versions carry (e.g., "1.2.0-rc1" < "1.2.0-rc2").
func (v *version) compare(other *version) int {
	if v.major != other.major {
		return sign(v.major - other.major)
	}
	if v.minor != other.minor {
		return sign(v.minor - other.minor)
	}
	if v.patch != other.patch {
		return sign(v.patch - other.patch)
	}
	if v.prerelease == other.prerelease {
		return 0
	}
	if v.prerelease == "" {
		return 1 // v is release, other is pre-release
	}
	if other.prerelease == "" {
		return -1 // v is pre-release, other is release
	}
	return strings.Compare(v.prerelease, other.prerelease)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
