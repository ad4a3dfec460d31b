// Package tablerow models one pipe-delimited row of a Markdown table: the
// decomposition of a raw cell into trimmed content and surrounding padding,
// delimiter-row recognition and column alignment, and the offset arithmetic a
// table formatter needs to keep the cursor on the same content position after
// padding is regenerated at a new width.
//
// Everything in this package is a pure value computation with no shared
// state, so it is safe to call from multiple goroutines.
package tablerow

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Alignment is the column alignment a delimiter cell declares.
type Alignment int

const (
	AlignmentNone Alignment = iota
	AlignmentLeft
	AlignmentRight
	AlignmentCenter
)

func (a Alignment) String() string {
	switch a {
	case AlignmentNone:
		return "none"
	case AlignmentLeft:
		return "left"
	case AlignmentRight:
		return "right"
	case AlignmentCenter:
		return "center"
	}
	return "unknown"
}

// Cell is one pipe-delimited segment of a table row, captured exactly as it
// appears in the source line (delimiters excluded). It is an immutable value;
// build a new Cell whenever the source text changes.
//
// All offsets and padding widths are counted in runes.
type Cell struct {
	raw        string
	content    string
	contentLen int // runes
	padLeft    int // runes
	padRight   int // runes
}

// NewCell builds a Cell from the raw text between two pipes. It never fails:
// any string, including the empty string, is a valid cell.
//
// Content is raw with leading and trailing Unicode whitespace removed, and
// padding is the whitespace on either side. An all-whitespace cell is the one
// asymmetric case: its PaddingLeft is 0 and PaddingRight absorbs the full
// width, so an empty cell has a single unambiguous insertion point at its
// start. Formatters rely on that anchor; do not split the whitespace.
func NewCell(raw string) Cell {
	left := strings.TrimLeftFunc(raw, unicode.IsSpace)
	content := strings.TrimRightFunc(left, unicode.IsSpace)
	if content == "" {
		return Cell{raw: raw, padRight: utf8.RuneCountInString(raw)}
	}
	return Cell{
		raw:        raw,
		content:    content,
		contentLen: utf8.RuneCountInString(content),
		padLeft:    utf8.RuneCountInString(raw[:len(raw)-len(left)]),
		padRight:   utf8.RuneCountInString(left[len(content):]),
	}
}

// Text returns the cell's raw text unchanged, so NewCell(c.Text()) reproduces
// an equal cell.
func (c Cell) Text() string { return c.raw }

// Content returns the cell text with surrounding whitespace removed.
func (c Cell) Content() string { return c.content }

// PaddingLeft returns the whitespace width, in runes, before the content.
func (c Cell) PaddingLeft() int { return c.padLeft }

// PaddingRight returns the whitespace width, in runes, after the content.
func (c Cell) PaddingRight() int { return c.padRight }

// IsDelimiter reports whether the cell is a column of a delimiter row:
// ignoring surrounding whitespace, an optional leading colon, one or more
// hyphens, and an optional trailing colon.
func (c Cell) IsDelimiter() bool {
	s := c.content
	if s == "" {
		return false
	}
	i := 0
	if s[i] == ':' {
		i++
	}
	hyphens := 0
	for i < len(s) && s[i] == '-' {
		i++
		hyphens++
	}
	if hyphens == 0 {
		return false
	}
	if i < len(s) && s[i] == ':' {
		i++
	}
	return i == len(s)
}

// Alignment returns the alignment a delimiter cell declares. The second
// result is false when the cell is not a delimiter; alignment is undefined
// for ordinary cells.
func (c Cell) Alignment() (Alignment, bool) {
	if !c.IsDelimiter() {
		return AlignmentNone, false
	}
	return alignmentOf(c.content), true
}

// alignmentOf classifies trimmed delimiter text by its colons. The leading
// colon is claimed first: a lone ":" reads as left-aligned, not centered,
// because the single character cannot count as both ends. Callers depend on
// that ordering; keep it.
func alignmentOf(content string) Alignment {
	rest := content
	leading := strings.HasPrefix(rest, ":")
	if leading {
		rest = rest[1:]
	}
	trailing := strings.HasSuffix(rest, ":")
	switch {
	case leading && trailing:
		return AlignmentCenter
	case leading:
		return AlignmentLeft
	case trailing:
		return AlignmentRight
	}
	return AlignmentNone
}

// ContentOffset maps a rune offset within the raw text to the corresponding
// offset within Content, clamped to [0, len(content)]. Offsets inside the
// left padding map to 0 and offsets inside the right padding (or beyond the
// raw text) map to the content length, so any raw cursor position yields a
// valid content position.
func (c Cell) ContentOffset(rawOffset int) int {
	if c.contentLen == 0 {
		return 0
	}
	if rawOffset < c.padLeft {
		return 0
	}
	if rawOffset < c.padLeft+c.contentLen {
		return rawOffset - c.padLeft
	}
	return c.contentLen
}

// RawOffset maps a rune offset within Content back to an offset within the
// raw text. Unlike ContentOffset it does not clamp: it is used to place the
// cursor after padding has been regenerated at a new width, and the caller is
// responsible for keeping the result inside the newly written line.
func (c Cell) RawOffset(contentOffset int) int {
	return contentOffset + c.padLeft
}
