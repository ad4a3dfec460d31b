package tablerow

import (
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
)

// WidthOptions control display width calculation for cell content.
//
// Currently only relevant for East Asian code points and their locale.
type WidthOptions struct {
	EastAsianWidth   bool // if true, treats ambiguous East Asian code points as 2 wide. Use if the locale is one of CJK.
	TreatEmojiAsWide bool // Only considered if EastAsianWidth. If true, treats emoji as wide (2 columns).
}

// StringWidth returns the text width of s for monospace fonts in terminals.
// If opts is nil, the locale is assumed to be non-East Asian.
func StringWidth(s string, opts *WidthOptions) int {
	return conditionFromOptions(opts).StringWidth(s)
}

// Width returns the display width of the cell's content. A formatter
// aggregates these per column to choose the padded width each cell is
// re-rendered at.
func (c Cell) Width(opts *WidthOptions) int {
	return StringWidth(c.content, opts)
}

// SnapOffset clamps a content rune offset down to the start of the grapheme
// cluster containing it. A cursor relocated with RawOffset after reformatting
// must not land between the runes of a cluster (a combining sequence or an
// emoji ZWJ sequence); snapping first keeps the position renderable.
func (c Cell) SnapOffset(contentOffset int) int {
	if contentOffset <= 0 {
		return 0
	}
	if contentOffset >= c.contentLen {
		return c.contentLen
	}
	iter := graphemes.FromString(c.content)
	pos := 0
	for iter.Next() {
		n := utf8.RuneCountInString(iter.Value())
		if pos+n > contentOffset {
			return pos
		}
		pos += n
	}
	return pos
}

func conditionFromOptions(opts *WidthOptions) *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true

	if opts == nil {
		return cond
	}

	cond.EastAsianWidth = opts.EastAsianWidth
	if opts.EastAsianWidth && opts.TreatEmojiAsWide {
		cond.StrictEmojiNeutral = false
	}

	return cond
}
