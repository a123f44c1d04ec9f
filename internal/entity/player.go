package entity

// Mark is the symbol a player puts on the board.
type Mark string

const MarkEmpty Mark = ""

// Player holds a participant and the cells it has claimed, counted per column and per row.
type Player struct {
	Name string `json:"name"`
	Mark Mark   `json:"mark"`

	columns [BoardSide]int
	rows    [BoardSide]int
	owned   uint16
}

func NewPlayer(name string, mark Mark) *Player {
	return &Player{
		Name: name,
		Mark: mark,
	}
}

// Claim - records the cell as owned by the player. The caller guarantees the cell is free.
func (that *Player) Claim(cell Cell) {
	that.columns[cell.Column]++
	that.rows[cell.Row]++
	that.owned |= 1 << cell.Index()
}

func (that *Player) Owns(cell Cell) bool {
	return cell.IsValid() && that.owned&(1<<cell.Index()) != 0
}

// Cells returns the claimed cells in row-major order.
func (that *Player) Cells() []Cell {
	var cells []Cell
	for _, cell := range AllCells() {
		if that.Owns(cell) {
			cells = append(cells, cell)
		}
	}

	return cells
}

// HasWinningLine reports whether the player owns a full row, column or diagonal.
func (that *Player) HasWinningLine() bool {
	for i := 0; i < BoardSide; i++ {
		if that.columns[i] == BoardSide || that.rows[i] == BoardSide {
			return true
		}
	}

	// both diagonals run through the center
	if !that.Owns(Cell{Column: 1, Row: 1}) {
		return false
	}

	mainDiagonal := that.Owns(Cell{Column: 0, Row: 0}) && that.Owns(Cell{Column: 2, Row: 2})
	antiDiagonal := that.Owns(Cell{Column: 0, Row: 2}) && that.Owns(Cell{Column: 2, Row: 0})

	return mainDiagonal || antiDiagonal
}
