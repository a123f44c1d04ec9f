package board

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	ColumnsLabels = "    A   B   C "
	Separator     = "   ---|---|---"

	emptySlot = "   "
)

// Board is the 3x3 grid of marks stored row-major.
type Board struct {
	cells [entity.CellCount]entity.Mark
}

func New() *Board {
	return &Board{}
}

// Place - puts the mark on an empty cell.
func (that *Board) Place(cell entity.Cell, mark entity.Mark) error {
	if !cell.IsValid() {
		return fmt.Errorf("%w: %d,%d", apperror.ErrInvalidCell, cell.Column, cell.Row)
	}

	if that.Get(cell) != entity.MarkEmpty {
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, cell)
	}

	that.cells[cell.Index()] = mark

	return nil
}

func (that *Board) Get(cell entity.Cell) entity.Mark {
	if !cell.IsValid() {
		return entity.MarkEmpty
	}

	return that.cells[cell.Index()]
}

// String renders the header, a blank line and the three rows with separators between them.
func (that *Board) String() string {
	lines := make([]string, 0, 2*entity.BoardSide+1)
	lines = append(lines, ColumnsLabels, "")

	for row := 0; row < entity.BoardSide; row++ {
		if row > 0 {
			lines = append(lines, Separator)
		}
		lines = append(lines, that.renderRow(row))
	}

	return strings.Join(lines, "\n")
}

func (that *Board) renderRow(row int) string {
	slots := make([]string, 0, entity.BoardSide)
	for column := 0; column < entity.BoardSide; column++ {
		slots = append(slots, slot(that.cells[entity.Cell{Column: column, Row: row}.Index()]))
	}

	return fmt.Sprintf("%d  %s", row+1, strings.Join(slots, "|"))
}

func slot(mark entity.Mark) string {
	if mark == entity.MarkEmpty {
		return emptySlot
	}

	return " " + string(mark) + " "
}
