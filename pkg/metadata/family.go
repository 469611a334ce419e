package metadata

import (
	"github.com/agentstation/webicons/pkg/errors"
)

// Family is the top-level category of a webicon.
type Family string

// Family values. These are the only valid wire encodings.
const (
	Emojis Family = "emojis"
	Icons  Family = "icons"
)

// Families returns every known family in canonical order.
func Families() []Family {
	return []Family{Emojis, Icons}
}

// ParseFamily parses the wire encoding of a family. Matching is exact.
func ParseFamily(s string) (Family, error) {
	switch Family(s) {
	case Emojis, Icons:
		return Family(s), nil
	}
	return "", errors.NewNotFoundError("family", s)
}

// String returns the wire encoding of the family.
func (f Family) String() string {
	return string(f)
}

// IsValid reports whether f is one of the known families.
func (f Family) IsValid() bool {
	return f == Emojis || f == Icons
}

// MarshalText implements encoding.TextMarshaler.
func (f Family) MarshalText() ([]byte, error) {
	if !f.IsValid() {
		return nil, errors.NewNotFoundError("family", string(f))
	}
	return []byte(f), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Family) UnmarshalText(text []byte) error {
	parsed, err := ParseFamily(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
