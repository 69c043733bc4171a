package position

import (
	"errors"
)

const (
	// MaxComponentScalar is the maximum component scalar the coordinate system supports.
	MaxComponentScalar int8 = 8
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Square addresses a board cell by zero-based (row, col). Row 0 is the rank
// rendered at the top of the board ("8" in notation), row 7 the bottom ("1").
// Out-of-range components are representable so boundary scans can shift past
// the edge and test with Valid.
type Square struct {
	Row, Col int8
}

func New(row, col int8) Square {
	return Square{Row: row, Col: col}
}

func NewFromNotation(n string) (Square, error) {
	if len(n) != 2 {
		return Square{}, ErrInvalidNotation
	}
	col, err := notationToCol(n[0])
	if err != nil {
		return Square{}, err
	}
	row, err := notationToRow(n[1])
	if err != nil {
		return Square{}, err
	}
	return Square{Row: row, Col: col}, nil
}

func (s Square) String() string {
	return s.Notation()
}

func (s Square) Notation() string {
	if !s.Valid() {
		return ""
	}
	return string(rune('a'+s.Col)) + string(rune('8'-s.Row))
}

func (s Square) Valid() bool {
	return 0 <= s.Row && s.Row < MaxComponentScalar && 0 <= s.Col && s.Col < MaxComponentScalar
}

// Shift returns the square displaced by (dRow, dCol), without bounds checking.
func (s Square) Shift(dRow, dCol int8) Square {
	return Square{Row: s.Row + dRow, Col: s.Col + dCol}
}

func notationToCol(c byte) (int8, error) {
	col := int8(c) - 'a'
	if col < 0 || MaxComponentScalar <= col {
		return 0, ErrInvalidNotation
	}
	return col, nil
}

func notationToRow(r byte) (int8, error) {
	row := MaxComponentScalar - (int8(r) - '0')
	if row < 0 || MaxComponentScalar <= row {
		return 0, ErrInvalidNotation
	}
	return row, nil
}

// FileLetter returns the notation letter for a column index.
func FileLetter(col int8) string {
	if col < 0 || MaxComponentScalar <= col {
		return ""
	}
	return string(rune('a' + col))
}

// RankDigit returns the notation digit for a row index.
func RankDigit(row int8) string {
	if row < 0 || MaxComponentScalar <= row {
		return ""
	}
	return string(rune('8' - row))
}
