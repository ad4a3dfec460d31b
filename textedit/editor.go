// Package textedit defines the capability contract a host text-editing
// surface must implement for a table formatter to read and rewrite table
// rows. The formatter owns no buffer state: it reads lines, recomputes them,
// and writes them back through this contract, grouping the writes with
// Transact so they land as a single undoable edit.
//
// The contract is synchronous and not safe for concurrent use against the
// same buffer; Transact exists to keep a batch of reads and writes from
// interleaving with host-originated edits, not to provide locking.
package textedit

// Position is a (row, column) pair in the host buffer's coordinate space.
// Rows are 0-based line indices; columns are 0-based rune offsets within the
// line.
type Position struct {
	Row    int
	Column int
}

// Range is a half-open span [Start, End) between two positions.
type Range struct {
	Start Position
	End   Position
}

// Editor is the minimal capability set a host editing surface provides.
//
// Every operation either performs its effect or returns an error; a binding
// that does not support an operation returns ErrNotImplemented rather than
// silently doing nothing, so an incomplete binding fails loudly during
// development instead of corrupting the buffer. There is no partial-failure
// mode beyond that.
type Editor interface {
	// CursorPosition returns the current cursor position.
	CursorPosition() (Position, error)

	// SetCursorPosition moves the cursor. The move is visible to the host UI.
	SetCursorPosition(pos Position) error

	// SetSelection sets the active selection to the given span.
	SetSelection(r Range) error

	// LastRow returns the 0-based index of the final line in the buffer.
	LastRow() (int, error)

	// AcceptsTableEdit reports whether the line at row may be rewritten by a
	// table formatter (it is not read-only, not inside an excluded region).
	// Callers must consult it before writing and skip the write when it
	// reports false.
	AcceptsTableEdit(row int) (bool, error)

	// Line returns the full text of the line at row, unmodified.
	Line(row int) (string, error)

	// InsertLine inserts text as a new line at row, shifting subsequent
	// lines down by one.
	InsertLine(row int, text string) error

	// DeleteLine removes the line at row, shifting subsequent lines up by
	// one.
	DeleteLine(row int) error

	// ReplaceLines replaces the half-open line range [start, end) with
	// lines, which may differ in length from the replaced range; LastRow
	// reflects the net change afterwards.
	ReplaceLines(start, end int, lines []string) error

	// Transact runs edit, which performs zero or more of the operations
	// above, as one logical unit: the host records the contained edits as a
	// single history step. An error from edit propagates to the caller;
	// whether partially applied edits are rolled back is the binding's
	// documented choice, not a guarantee of this contract.
	Transact(edit func() error) error
}
