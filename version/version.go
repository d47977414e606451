// Package version implements parsing, formatting, and ordering of dotted
// version strings such as "1.10.2" or "2.0.beta.3". Identifiers are compared
// naturally, so "1.9" orders before "1.10"; semver pre-release rules are not
// applied.
package version

import (
	"encoding"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/sunsided/utilitybelt/natsort"
)

// Version is an ordered list of dot-separated identifiers. The zero Version
// is empty and orders before every non-empty one.
type Version struct {
	ids []string
}

var (
	_ encoding.TextMarshaler   = Version{}
	_ encoding.TextUnmarshaler = (*Version)(nil)
)

// Parse parses a dotted version string. The string must be non-empty, must
// not contain whitespace, and must not have empty identifiers (no leading,
// trailing, or doubled dots).
func Parse(s string) (Version, error) {
	if s == "" {
		return Version{}, errors.New("version: empty string")
	}
	if strings.ContainsFunc(s, unicode.IsSpace) {
		return Version{}, fmt.Errorf("version: %q contains whitespace", s)
	}
	ids := strings.Split(s, ".")
	if slices.Contains(ids, "") {
		return Version{}, fmt.Errorf("version: %q has an empty identifier", s)
	}
	return Version{ids: ids}, nil
}

// MustParse is Parse for known-good literals; it panics on error.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the canonical dotted form.
func (v Version) String() string {
	return strings.Join(v.ids, ".")
}

// Identifiers returns a copy of the dot-separated identifiers in order.
func (v Version) Identifiers() []string {
	return slices.Clone(v.ids)
}

// Compare orders versions identifier by identifier using natural string
// ordering; a version that is a strict prefix of another orders first.
func (v Version) Compare(other Version) int {
	return slices.CompareFunc(v.ids, other.ids, natsort.Compare)
}

// Less reports whether v orders before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Equal reports whether v and other have identical identifiers.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Compare orders a against b; it is shaped for slices.SortFunc.
func Compare(a, b Version) int {
	return a.Compare(b)
}

// Sort sorts versions in place into ascending order.
func Sort(vs []Version) {
	slices.SortStableFunc(vs, Compare)
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting whatever
// Parse accepts.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
