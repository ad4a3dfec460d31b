package tablerow

import "strings"

// Row is one source line split into cells on unescaped pipes, together with
// whatever blank text sat outside the outermost pipes. It preserves the line
// verbatim: Text returns exactly the input of SplitLine.
type Row struct {
	marginLeft  string
	marginRight string
	hasLeft     bool
	hasRight    bool
	cells       []Cell
}

// SplitLine splits a single line into a Row. The line is cut at every pipe
// not escaped by a backslash; a blank first segment becomes the left margin
// and a blank last segment the right margin, so rows with and without outer
// pipes both parse (`| a | b |` and `a | b`). A line with no pipes at all
// yields a margin-only or single-cell row depending on whether it is blank.
func SplitLine(line string) Row {
	segs := splitPipes(line)
	var r Row
	if isBlank(segs[0]) {
		r.marginLeft = segs[0]
		r.hasLeft = true
		segs = segs[1:]
	}
	if n := len(segs); n > 0 && isBlank(segs[n-1]) {
		r.marginRight = segs[n-1]
		r.hasRight = true
		segs = segs[:n-1]
	}
	for _, s := range segs {
		r.cells = append(r.cells, NewCell(s))
	}
	return r
}

// Text reassembles the original line: margins and cell raw texts joined by
// the pipes that separated them.
func (r Row) Text() string {
	parts := make([]string, 0, len(r.cells)+2)
	if r.hasLeft {
		parts = append(parts, r.marginLeft)
	}
	for _, c := range r.cells {
		parts = append(parts, c.Text())
	}
	if r.hasRight {
		parts = append(parts, r.marginRight)
	}
	return strings.Join(parts, "|")
}

// Cells returns the row's cells in source order.
func (r Row) Cells() []Cell {
	out := make([]Cell, len(r.cells))
	copy(out, r.cells)
	return out
}

// CellCount returns the number of cells in the row.
func (r Row) CellCount() int { return len(r.cells) }

// MarginLeft returns the blank text before the row's first pipe, if any.
func (r Row) MarginLeft() string { return r.marginLeft }

// MarginRight returns the blank text after the row's last pipe, if any.
func (r Row) MarginRight() string { return r.marginRight }

// IsDelimiter reports whether the row is a delimiter row: it has at least one
// cell and every cell declares a column alignment.
func (r Row) IsDelimiter() bool {
	if len(r.cells) == 0 {
		return false
	}
	for _, c := range r.cells {
		if !c.IsDelimiter() {
			return false
		}
	}
	return true
}

// splitPipes cuts line at every unescaped pipe. A backslash escapes the
// character after it, so `\|` stays inside a segment and `\\|` is a literal
// backslash followed by a cut. Always returns at least one segment.
func splitPipes(line string) []string {
	var segs []string
	start := 0
	escaped := false
	for i := 0; i < len(line); i++ {
		switch {
		case escaped:
			escaped = false
		case line[i] == '\\':
			escaped = true
		case line[i] == '|':
			segs = append(segs, line[start:i])
			start = i + 1
		}
	}
	return append(segs, line[start:])
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }
