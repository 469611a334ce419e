package emoji

import (
	"slices"
	"strings"
	"sync"

	kyokomi "github.com/kyokomi/emoji/v2"
	"github.com/npillmayer/uax/emoji"
)

var (
	defaultTable     *MemoryTable
	defaultTableOnce sync.Once
)

// Default returns the shared built-in table. It is built on first use.
func Default() Table {
	defaultTableOnce.Do(func() {
		codes := kyokomi.CodeMap()
		records := make(map[string]*Record, len(codes))
		for code, glyph := range codes {
			glyph = strings.TrimSpace(glyph)
			code = strings.Trim(code, ":")
			if glyph == "" || code == "" {
				continue
			}
			rec, ok := records[glyph]
			if !ok {
				rec = &Record{Glyph: glyph}
				records[glyph] = rec
			}
			rec.Shortcodes = append(rec.Shortcodes, code)
		}

		list := make([]Record, 0, len(records))
		for _, rec := range records {
			slices.Sort(rec.Shortcodes)
			list = append(list, *rec)
		}
		defaultTable = NewMemoryTable(list...)
	})
	return defaultTable
}

// IsEmojiRune reports whether r has the UTS #51 Emoji property.
func IsEmojiRune(r rune) bool {
	emoji.SetupEmojisClasses()
	return emoji.EmojisClassForRune(r) == emoji.EmojiClass
}

// MemoryTable is a Table over a fixed set of records.
type MemoryTable struct {
	byGlyph     map[string]Record
	byShortcode map[string]Record
}

// NewMemoryTable indexes records. When two records share a shortcode the
// first one wins.
func NewMemoryTable(records ...Record) *MemoryTable {
	t := &MemoryTable{
		byGlyph:     make(map[string]Record, len(records)),
		byShortcode: make(map[string]Record, len(records)),
	}
	for _, rec := range records {
		rec.Shortcodes = slices.Clone(rec.Shortcodes)
		t.byGlyph[rec.Glyph] = rec
		for _, code := range rec.Shortcodes {
			if _, exists := t.byShortcode[code]; !exists {
				t.byShortcode[code] = rec
			}
		}
	}
	return t
}

// LookupByGlyph implements Table.
func (t *MemoryTable) LookupByGlyph(s string) (Record, bool) {
	rec, ok := t.byGlyph[s]
	return rec, ok
}

// LookupByShortcode implements Table.
func (t *MemoryTable) LookupByShortcode(s string) (Record, bool) {
	rec, ok := t.byShortcode[s]
	return rec, ok
}

// IsEmojiScalar implements Table.
func (t *MemoryTable) IsEmojiScalar(r rune) bool {
	return IsEmojiRune(r)
}

// Glyphs returns every glyph in the table, sorted.
func (t *MemoryTable) Glyphs() []string {
	glyphs := make([]string, 0, len(t.byGlyph))
	for g := range t.byGlyph {
		glyphs = append(glyphs, g)
	}
	slices.Sort(glyphs)
	return glyphs
}

// Len returns the number of glyphs in the table.
func (t *MemoryTable) Len() int {
	return len(t.byGlyph)
}
