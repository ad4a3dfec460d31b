package textedit

import "fmt"

// Buffer is an in-memory Editor backed by a slice of lines. It is the
// reference binding: contract tests run against it, and it is usable
// anywhere a real host editor is not (batch reformatting, golden tests).
//
// Buffer resolves the contract's open choice on transaction failure by
// rolling back: if the callback passed to Transact returns an error, the
// buffer is restored to its pre-transaction state.
type Buffer struct {
	lines     []string
	cursor    Position
	selection Range
	readOnly  map[int]bool
	history   []snapshot
	txDepth   int
}

type snapshot struct {
	lines  []string
	cursor Position
}

var _ Editor = (*Buffer)(nil)

// NewBuffer returns a buffer holding the given lines. A buffer always has at
// least one line, so with no arguments it holds a single empty line.
func NewBuffer(lines ...string) *Buffer {
	if len(lines) == 0 {
		lines = []string{""}
	}
	b := &Buffer{
		lines:    make([]string, len(lines)),
		readOnly: make(map[int]bool),
	}
	copy(b.lines, lines)
	return b
}

// Lines returns a copy of the buffer's lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Selection returns the most recently set selection.
func (b *Buffer) Selection() Range { return b.selection }

// SetReadOnly marks or unmarks the line at row as read-only. Read-only lines
// fail the AcceptsTableEdit probe; writes to them error.
func (b *Buffer) SetReadOnly(row int, ro bool) {
	if ro {
		b.readOnly[row] = true
		return
	}
	delete(b.readOnly, row)
}

func (b *Buffer) CursorPosition() (Position, error) { return b.cursor, nil }

func (b *Buffer) SetCursorPosition(pos Position) error {
	if pos.Row < 0 || pos.Row >= len(b.lines) {
		return fmt.Errorf("textedit: cursor row %d out of range [0, %d]", pos.Row, len(b.lines)-1)
	}
	if pos.Column < 0 {
		return fmt.Errorf("textedit: cursor column %d is negative", pos.Column)
	}
	b.cursor = pos
	return nil
}

func (b *Buffer) SetSelection(r Range) error {
	if r.Start.Row < 0 || r.End.Row >= len(b.lines) {
		return fmt.Errorf("textedit: selection rows [%d, %d] out of range [0, %d]", r.Start.Row, r.End.Row, len(b.lines)-1)
	}
	b.selection = r
	return nil
}

func (b *Buffer) LastRow() (int, error) { return len(b.lines) - 1, nil }

func (b *Buffer) AcceptsTableEdit(row int) (bool, error) {
	if row < 0 || row >= len(b.lines) {
		return false, nil
	}
	return !b.readOnly[row], nil
}

func (b *Buffer) Line(row int) (string, error) {
	if row < 0 || row >= len(b.lines) {
		return "", fmt.Errorf("textedit: row %d out of range [0, %d]", row, len(b.lines)-1)
	}
	return b.lines[row], nil
}

func (b *Buffer) InsertLine(row int, text string) error {
	if row < 0 || row > len(b.lines) {
		return fmt.Errorf("textedit: insert row %d out of range [0, %d]", row, len(b.lines))
	}
	b.checkpoint()
	b.lines = append(b.lines, "")
	copy(b.lines[row+1:], b.lines[row:])
	b.lines[row] = text
	return nil
}

func (b *Buffer) DeleteLine(row int) error {
	if row < 0 || row >= len(b.lines) {
		return fmt.Errorf("textedit: delete row %d out of range [0, %d]", row, len(b.lines)-1)
	}
	if b.readOnly[row] {
		return fmt.Errorf("textedit: row %d is read-only", row)
	}
	b.checkpoint()
	b.lines = append(b.lines[:row], b.lines[row+1:]...)
	if len(b.lines) == 0 {
		b.lines = []string{""}
	}
	return nil
}

func (b *Buffer) ReplaceLines(start, end int, lines []string) error {
	if start < 0 || end < start || end > len(b.lines) {
		return fmt.Errorf("textedit: replace range [%d, %d) invalid for %d lines", start, end, len(b.lines))
	}
	for row := start; row < end; row++ {
		if b.readOnly[row] {
			return fmt.Errorf("textedit: row %d is read-only", row)
		}
	}
	b.checkpoint()
	replaced := make([]string, 0, len(b.lines)-(end-start)+len(lines))
	replaced = append(replaced, b.lines[:start]...)
	replaced = append(replaced, lines...)
	replaced = append(replaced, b.lines[end:]...)
	if len(replaced) == 0 {
		replaced = []string{""}
	}
	b.lines = replaced
	return nil
}

// Transact runs edit with all contained mutations grouped into one undo
// step. Nested calls join the outermost transaction. If edit returns an
// error, the buffer is rolled back to its state at the start of the
// outermost transaction and the error is returned unchanged.
func (b *Buffer) Transact(edit func() error) error {
	if edit == nil {
		return nil
	}
	if b.txDepth > 0 {
		b.txDepth++
		err := edit()
		b.txDepth--
		return err
	}
	snap := b.snap()
	b.history = append(b.history, snap)
	b.txDepth++
	err := edit()
	b.txDepth--
	if err != nil {
		b.restore(snap)
		b.history = b.history[:len(b.history)-1]
		return err
	}
	return nil
}

// Undo reverts the most recent edit or transaction. It reports false when
// there is nothing to undo.
func (b *Buffer) Undo() bool {
	if len(b.history) == 0 {
		return false
	}
	snap := b.history[len(b.history)-1]
	b.history = b.history[:len(b.history)-1]
	b.restore(snap)
	return true
}

// checkpoint records an undo snapshot for a standalone mutation. Inside a
// transaction the snapshot taken by Transact already covers it.
func (b *Buffer) checkpoint() {
	if b.txDepth > 0 {
		return
	}
	b.history = append(b.history, b.snap())
}

func (b *Buffer) snap() snapshot {
	lines := make([]string, len(b.lines))
	copy(lines, b.lines)
	return snapshot{lines: lines, cursor: b.cursor}
}

func (b *Buffer) restore(s snapshot) {
	b.lines = make([]string, len(s.lines))
	copy(b.lines, s.lines)
	b.cursor = s.cursor
}
