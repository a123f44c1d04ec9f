package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	BoardSide = 3
	CellCount = BoardSide * BoardSide
)

const (
	columnLabels = "ABC"
	rowLabels    = "123"
)

// Cell is a board coordinate. Column and Row are zero-based, so A1 is {0, 0} and C3 is {2, 2}.
type Cell struct {
	Column int
	Row    int
}

// ParseCell - converts a raw token such as " b2 " into a Cell.
func ParseCell(token string) (Cell, error) {
	normalized := strings.ToUpper(strings.TrimSpace(token))
	if len(normalized) != 2 {
		return Cell{}, fmt.Errorf("%w: %q", apperror.ErrInvalidCell, token)
	}

	column := strings.IndexByte(columnLabels, normalized[0])
	row := strings.IndexByte(rowLabels, normalized[1])
	if column < 0 || row < 0 {
		return Cell{}, fmt.Errorf("%w: %q", apperror.ErrInvalidCell, token)
	}

	return Cell{Column: column, Row: row}, nil
}

// AllCells returns the nine coordinates in row-major order.
func AllCells() []Cell {
	cells := make([]Cell, 0, CellCount)
	for row := 0; row < BoardSide; row++ {
		for column := 0; column < BoardSide; column++ {
			cells = append(cells, Cell{Column: column, Row: row})
		}
	}

	return cells
}

func (that Cell) IsValid() bool {
	return that.Column >= 0 && that.Column < BoardSide && that.Row >= 0 && that.Row < BoardSide
}

// Index - row-major position of the cell, 0 for A1 and 8 for C3.
func (that Cell) Index() int {
	return that.Row*BoardSide + that.Column
}

func (that Cell) String() string {
	if !that.IsValid() {
		return "??"
	}

	return string([]byte{columnLabels[that.Column], rowLabels[that.Row]})
}
