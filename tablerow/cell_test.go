package tablerow

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCellPadding(t *testing.T) {
	cases := []struct {
		raw      string
		content  string
		padLeft  int
		padRight int
	}{
		{"", "", 0, 0},
		{"foo", "foo", 0, 0},
		{"  foo  ", "foo", 2, 2},
		{" foo", "foo", 1, 0},
		{"foo ", "foo", 0, 1},
		{"\tfoo\t\t", "foo", 1, 2},
		{"a b", "a b", 0, 0},
		{"  a b ", "a b", 2, 1},
		// All-whitespace cells put the whole width on the right so the
		// insertion point is the cell start.
		{" ", "", 0, 1},
		{"   ", "", 0, 3},
		{"\t \t", "", 0, 3},
		// Padding widths are rune counts, not byte counts.
		{"　foo　", "foo", 1, 1},
		{" 日本語  ", "日本語", 1, 2},
	}
	for _, tc := range cases {
		c := NewCell(tc.raw)
		assert.Equal(t, tc.raw, c.Text(), "raw %q", tc.raw)
		assert.Equal(t, tc.content, c.Content(), "raw %q", tc.raw)
		assert.Equal(t, tc.padLeft, c.PaddingLeft(), "raw %q", tc.raw)
		assert.Equal(t, tc.padRight, c.PaddingRight(), "raw %q", tc.raw)
	}
}

func TestCellPaddingInvariant(t *testing.T) {
	raws := []string{"", " ", "   ", "x", " x", "x ", "  foo  ", "\tfoo", " 日本語 ", "　", "a  b", " :--: "}
	for _, raw := range raws {
		c := NewCell(raw)
		total := utf8.RuneCountInString(raw)
		if c.Content() == "" && raw != "" {
			assert.Equal(t, 0, c.PaddingLeft(), "raw %q", raw)
			assert.Equal(t, total, c.PaddingRight(), "raw %q", raw)
			continue
		}
		contentLen := utf8.RuneCountInString(c.Content())
		assert.Equal(t, total, c.PaddingLeft()+contentLen+c.PaddingRight(), "raw %q", raw)
	}
}

func TestCellRoundTrip(t *testing.T) {
	for _, raw := range []string{"", "  foo  ", "   ", ":--", " 日本語 "} {
		c := NewCell(raw)
		assert.Equal(t, c, NewCell(c.Text()), "raw %q", raw)
	}
}

func TestIsDelimiter(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"--", true},
		{"-", true},
		{":--", true},
		{"--:", true},
		{" :--: ", true},
		{":---------:", true},
		{"\t--\t", true},
		{"abc", false},
		{"", false},
		{"   ", false},
		{":", false},
		{"::", false},
		{"- -", false},
		{":--x", false},
		{"--:-", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NewCell(tc.raw).IsDelimiter(), "raw %q", tc.raw)
	}
}

func TestAlignment(t *testing.T) {
	cases := []struct {
		raw  string
		want Alignment
	}{
		{"--", AlignmentNone},
		{":--", AlignmentLeft},
		{"--:", AlignmentRight},
		{" :--: ", AlignmentCenter},
		{"\t:-\t", AlignmentLeft},
	}
	for _, tc := range cases {
		got, ok := NewCell(tc.raw).Alignment()
		require.True(t, ok, "raw %q", tc.raw)
		assert.Equal(t, tc.want, got, "raw %q", tc.raw)
	}

	for _, raw := range []string{"abc", "", "   ", "::"} {
		_, ok := NewCell(raw).Alignment()
		assert.False(t, ok, "raw %q", raw)
	}
}

func TestAlignmentSingleColonTieBreak(t *testing.T) {
	// The leading colon is claimed before the trailing check, so a lone ":"
	// classifies as left even though its only character is also trailing.
	assert.Equal(t, AlignmentLeft, alignmentOf(":"))
	assert.Equal(t, AlignmentCenter, alignmentOf("::"))
	assert.Equal(t, AlignmentCenter, alignmentOf(":-:"))
}

func TestAlignmentString(t *testing.T) {
	assert.Equal(t, "none", AlignmentNone.String())
	assert.Equal(t, "left", AlignmentLeft.String())
	assert.Equal(t, "right", AlignmentRight.String())
	assert.Equal(t, "center", AlignmentCenter.String())
	assert.Equal(t, "unknown", Alignment(42).String())
}

func TestContentOffset(t *testing.T) {
	c := NewCell("  foo  ")

	assert.Equal(t, 0, c.ContentOffset(0))
	assert.Equal(t, 0, c.ContentOffset(1))
	assert.Equal(t, 0, c.ContentOffset(2))
	assert.Equal(t, 1, c.ContentOffset(3))
	assert.Equal(t, 2, c.ContentOffset(4))
	assert.Equal(t, 3, c.ContentOffset(5))
	assert.Equal(t, 3, c.ContentOffset(6))
	assert.Equal(t, 3, c.ContentOffset(9))

	empty := NewCell("   ")
	for o := 0; o < 5; o++ {
		assert.Equal(t, 0, empty.ContentOffset(o))
	}
}

func TestContentOffsetBounds(t *testing.T) {
	for _, raw := range []string{"  foo  ", "x", " 日本語 ", "   ", ""} {
		c := NewCell(raw)
		contentLen := utf8.RuneCountInString(c.Content())
		prev := 0
		for o := 0; o <= utf8.RuneCountInString(raw)+2; o++ {
			got := c.ContentOffset(o)
			assert.GreaterOrEqual(t, got, 0, "raw %q offset %d", raw, o)
			assert.LessOrEqual(t, got, contentLen, "raw %q offset %d", raw, o)
			assert.GreaterOrEqual(t, got, prev, "raw %q offset %d", raw, o)
			prev = got
		}
		assert.Equal(t, 0, c.ContentOffset(c.PaddingLeft()))
		assert.Equal(t, contentLen, c.ContentOffset(c.PaddingLeft()+contentLen))
	}
}

func TestRawOffset(t *testing.T) {
	c := NewCell("  foo  ")
	assert.Equal(t, 2, c.RawOffset(0))
	assert.Equal(t, 5, c.RawOffset(3))

	// Unclamped on purpose: the caller regenerates padding and bounds the
	// result against the new line.
	assert.Equal(t, 9, c.RawOffset(7))
}

func TestRawOffsetInverse(t *testing.T) {
	for _, raw := range []string{"  foo  ", "x", " 日本語 ", "ab"} {
		c := NewCell(raw)
		contentLen := utf8.RuneCountInString(c.Content())
		for k := 0; k <= contentLen; k++ {
			assert.Equal(t, k, c.ContentOffset(c.RawOffset(k)), "raw %q content offset %d", raw, k)
		}
	}
}
