// Package token canonicalizes user-supplied webicon identifiers.
package token

import (
	"fmt"
	"unicode/utf8"

	"github.com/agentstation/webicons/pkg/constants"
	"github.com/agentstation/webicons/pkg/emoji"
	"github.com/agentstation/webicons/pkg/errors"
	"github.com/agentstation/webicons/pkg/metadata"
)

// Normalize turns id into the canonical ID for family.
//
// Icon identifiers are returned unchanged. For emojis the first scalar decides:
//   - it has the Emoji property: an all-hex id is canonicalized ("01F600" becomes
//     "1f600"). Any other ASCII id ("110000", "1f600zz") is an invalid codepoint.
//     A non-ASCII id is a literal glyph and becomes the hex of its first scalar.
//   - otherwise id is a shortcode, looked up by exact match in t.
//
// Digits carry the Emoji property, so "1f600" is never mistaken for a shortcode
// while "abc" is always one. A hex ID that starts with a letter can be written
// with a leading zero ("00a9").
func Normalize(t emoji.Table, id string, family metadata.Family) (string, error) {
	if id == "" {
		return "", errors.NewValidationError("id", id, "identifier must not be empty")
	}
	if len(id) > constants.MaxIDLength {
		return "", errors.NewValidationError("id", len(id), fmt.Sprintf("identifier longer than %d bytes", constants.MaxIDLength))
	}
	if family != metadata.Emojis {
		return id, nil
	}

	first, ok := emoji.FirstScalar(id)
	if !ok {
		return "", errors.NewValidationError("id", id, "identifier is not valid UTF-8")
	}

	if t.IsEmojiScalar(first) {
		r, err := emoji.ParseID(id)
		if err == nil {
			return emoji.FormatID(r), nil
		}
		// ASCII-only ids are codepoints, never glyphs; keycap glyphs carry U+20E3
		if isASCII(id) {
			return "", err
		}
		return emoji.FormatID(first), nil
	}

	glyph, err := emoji.GlyphFromShortcode(t, id)
	if err != nil {
		return "", err
	}
	r, ok := emoji.FirstScalar(glyph)
	if !ok {
		return "", errors.NewNotFoundError("shortcode", id)
	}
	return emoji.FormatID(r), nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
