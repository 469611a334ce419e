// Package emoji converts between canonical hex codepoint IDs, emoji glyphs
// and shortcodes.
//
// Lookups go through a Table. Default returns the built-in table, which pairs
// the github.com/kyokomi/emoji shortcode set with the UTS #51 Emoji property
// from github.com/npillmayer/uax.
package emoji

import (
	"strconv"
	"unicode/utf8"

	"github.com/agentstation/webicons/pkg/errors"
)

// variationSelector16 requests emoji presentation of the preceding scalar.
const variationSelector16 = "\ufe0f"

// Record is a single emoji entry.
type Record struct {
	Glyph      string   `json:"glyph" yaml:"glyph"`
	Shortcodes []string `json:"shortcodes" yaml:"shortcodes"`
}

// Table is the read-only emoji reference dataset.
type Table interface {
	// LookupByGlyph finds the entry whose glyph is exactly s.
	LookupByGlyph(s string) (Record, bool)
	// LookupByShortcode finds the entry with the exact shortcode s, without colons.
	LookupByShortcode(s string) (Record, bool)
	// IsEmojiScalar reports whether r carries the Unicode Emoji property.
	IsEmojiScalar(r rune) bool
}

// ParseID reads a hex codepoint ID as a Unicode scalar.
func ParseID(id string) (rune, error) {
	if id == "" {
		return 0, errors.NewCodepointError(id, errors.New("empty identifier"))
	}
	v, err := strconv.ParseUint(id, 16, 32)
	if err != nil {
		return 0, errors.NewCodepointError(id, err)
	}
	r := rune(v)
	if !utf8.ValidRune(r) {
		return 0, errors.NewCodepointError(id, errors.New("not a Unicode scalar value"))
	}
	return r, nil
}

// FormatID renders r as a canonical ID: lowercase hex without leading zeros.
func FormatID(r rune) string {
	return strconv.FormatInt(int64(r), 16)
}

// FirstScalar returns the first rune of s.
func FirstScalar(s string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError && size == 1 {
		return 0, false
	}
	return r, true
}

// CodepointToGlyph resolves a canonical ID to its emoji glyph.
// Unparseable IDs and non-scalars are InvalidCodepoint failures; valid scalars
// missing from t are UnknownEmoji failures.
func CodepointToGlyph(t Table, id string) (string, error) {
	r, err := ParseID(id)
	if err != nil {
		return "", err
	}

	s := string(r)
	if rec, ok := t.LookupByGlyph(s); ok {
		return rec.Glyph, nil
	}
	if rec, ok := t.LookupByGlyph(s + variationSelector16); ok {
		return rec.Glyph, nil
	}
	return "", errors.NewNotFoundError("emoji", id)
}

// GlyphFromShortcode resolves a shortcode by exact, case-sensitive match.
func GlyphFromShortcode(t Table, code string) (string, error) {
	rec, ok := t.LookupByShortcode(code)
	if !ok {
		return "", errors.NewNotFoundError("shortcode", code)
	}
	return rec.Glyph, nil
}
