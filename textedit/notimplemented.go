package textedit

import "errors"

// ErrNotImplemented is returned by a binding that does not support an
// operation. Check for it with errors.Is.
var ErrNotImplemented = errors.New("textedit: not implemented")

// NotImplemented is an Editor whose every operation returns
// ErrNotImplemented. It documents the contract's failure mode and makes a
// test that forgot to supply a real binding fail on first use instead of
// silently passing.
type NotImplemented struct{}

var _ Editor = NotImplemented{}

func (NotImplemented) CursorPosition() (Position, error) { return Position{}, ErrNotImplemented }

func (NotImplemented) SetCursorPosition(Position) error { return ErrNotImplemented }

func (NotImplemented) SetSelection(Range) error { return ErrNotImplemented }

func (NotImplemented) LastRow() (int, error) { return 0, ErrNotImplemented }

func (NotImplemented) AcceptsTableEdit(int) (bool, error) { return false, ErrNotImplemented }

func (NotImplemented) Line(int) (string, error) { return "", ErrNotImplemented }

func (NotImplemented) InsertLine(int, string) error { return ErrNotImplemented }

func (NotImplemented) DeleteLine(int) error { return ErrNotImplemented }

func (NotImplemented) ReplaceLines(int, int, []string) error { return ErrNotImplemented }

// Transact still invokes edit, with no grouping, so the edits inside run
// against whatever binding they were written for; the error from edit wins,
// and otherwise ErrNotImplemented is returned to flag the missing grouping.
func (NotImplemented) Transact(edit func() error) error {
	if edit != nil {
		if err := edit(); err != nil {
			return err
		}
	}
	return ErrNotImplemented
}
