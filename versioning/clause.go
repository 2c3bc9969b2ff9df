// Package versioning maps runtime-requested API version strings to
// version-specific data-shape descriptors.
//
// A constraint is a comma-separated list of clauses, each clause a comparator
// expression against a semantic version:
//
//  1. "VERSION"
//  2. "==VERSION" (the same as above)
//  3. ">VERSION"
//  4. "<VERSION"
//  5. ">=VERSION"
//  6. "<=VERSION"
//  7. A comma-separated list of 1-6, evaluated as AND
//
// A Map holds ordered (constraint, descriptor) entries; Resolve returns the
// descriptor of the first entry whose whole constraint matches, so earlier
// entries take precedence even when a later entry would also match.
package versioning

import (
	"strings"

	"github.com/routedoc/routedoc/docerrors"
)

// Comparator is one of the five supported comparison operators.
type Comparator string

const (
	// ComparatorGT matches versions strictly above the target.
	ComparatorGT Comparator = ">"
	// ComparatorLT matches versions strictly below the target.
	ComparatorLT Comparator = "<"
	// ComparatorEQ matches the target version exactly.
	ComparatorEQ Comparator = "=="
	// ComparatorGE matches the target version and everything above it.
	ComparatorGE Comparator = ">="
	// ComparatorLE matches the target version and everything below it.
	ComparatorLE Comparator = "<="
)

// twoCharComparators are tried before one-character comparators so that
// ">=1.0" never parses as ">" against "=1.0".
var twoCharComparators = map[string]Comparator{
	"==": ComparatorEQ,
	">=": ComparatorGE,
	"<=": ComparatorLE,
}

var oneCharComparators = map[string]Comparator{
	">": ComparatorGT,
	"<": ComparatorLT,
}

// Clause is a single parsed comparator expression. Immutable once parsed.
type Clause struct {
	// Comparator is the comparison operator.
	Comparator Comparator
	// Target is the parsed target version.
	Target string

	target *version
}

// parseClause splits a clause into comparator and target version.
// Parsing order: two-character comparator, one-character comparator, then
// implicit equality against a bare version string.
func parseClause(text string) (Clause, error) {
	cmp := ComparatorEQ
	target := text
	if len(text) >= 2 {
		if c, ok := twoCharComparators[text[:2]]; ok {
			cmp = c
			target = text[2:]
		} else if c, ok := oneCharComparators[text[:1]]; ok {
			cmp = c
			target = text[1:]
		}
	} else if len(text) == 1 {
		if _, ok := oneCharComparators[text[:1]]; ok {
			return Clause{}, &docerrors.ParseError{Input: text, Message: "missing version after comparator"}
		}
	}

	v, err := parseVersion(target)
	if err != nil {
		return Clause{}, &docerrors.ParseError{Input: text, Message: "invalid target version", Cause: err}
	}
	return Clause{Comparator: cmp, Target: target, target: v}, nil
}

// matches evaluates the clause against an already-parsed runtime version.
func (c Clause) matches(runtime *version) bool {
	cmp := runtime.compare(c.target)
	switch c.Comparator {
	case ComparatorGT:
		return cmp > 0
	case ComparatorLT:
		return cmp < 0
	case ComparatorGE:
		return cmp >= 0
	case ComparatorLE:
		return cmp <= 0
	default:
		return cmp == 0
	}
}

// Matches evaluates the clause against a runtime version string.
// A malformed runtime version surfaces a ParseError.
func (c Clause) Matches(runtimeVersion string) (bool, error) {
	v, err := parseVersion(runtimeVersion)
	if err != nil {
		return false, &docerrors.ParseError{Input: runtimeVersion, Message: "invalid request version", Cause: err}
	}
	return c.matches(v), nil
}

// Constraint is an ordered list of AND-combined clauses. Immutable once
// parsed.
type Constraint struct {
	clauses []Clause
	text    string
}

// ParseConstraint parses comma-separated clause text into a Constraint.
// Whitespace around clauses is ignored.
func ParseConstraint(text string) (Constraint, error) {
	parts := strings.Split(text, ",")
	clauses := make([]Clause, 0, len(parts))
	for _, part := range parts {
		clause, err := parseClause(strings.TrimSpace(part))
		if err != nil {
			return Constraint{}, err
		}
		clauses = append(clauses, clause)
	}
	return Constraint{clauses: clauses, text: text}, nil
}

// String returns the constraint's original text.
func (c Constraint) String() string {
	return c.text
}

// Clauses returns the parsed clauses in declaration order.
func (c Constraint) Clauses() []Clause {
	return c.clauses
}

// Matches reports whether every clause is satisfied by the runtime version.
// The result is a fold with logical AND over all clauses, short-circuiting on
// the first false; a single clause can never be masked by a later true one.
func (c Constraint) Matches(runtimeVersion string) (bool, error) {
	v, err := parseVersion(runtimeVersion)
	if err != nil {
		return false, &docerrors.ParseError{Input: runtimeVersion, Message: "invalid request version", Cause: err}
	}
	for _, clause := range c.clauses {
		if !clause.matches(v) {
			return false, nil
		}
	}
	return true, nil
}
