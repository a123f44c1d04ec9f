package entity

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// State is the turn loop position of a game.
type State int

const (
	StatePlayer1Turn State = iota
	StatePlayer2Turn
	StatePlayer1Won
	StatePlayer2Won
	StateDraw
)

func (s State) String() string {
	switch s {
	case StatePlayer1Turn:
		return "player1_turn"
	case StatePlayer2Turn:
		return "player2_turn"
	case StatePlayer1Won:
		return "player1_won"
	case StatePlayer2Won:
		return "player2_won"
	case StateDraw:
		return "draw"
	default:
		return "unknown"
	}
}

func (s State) IsFinished() bool {
	return s == StatePlayer1Won || s == StatePlayer2Won || s == StateDraw
}

// Game is one session between two players. History is shared by both players and never holds a cell twice.
type Game struct {
	ID      string     `json:"id"`
	Players [2]*Player `json:"players"`
	History []Cell     `json:"history"`
	Moves   int        `json:"moves"`
	State   State      `json:"state"`
}

func NewGame(id string, first, second *Player) *Game {
	return &Game{
		ID:      id,
		Players: [2]*Player{first, second},
		History: make([]Cell, 0, CellCount),
		State:   StatePlayer1Turn,
	}
}

// CurrentPlayer - the player whose mark goes down next, chosen by move counter parity.
func (that *Game) CurrentPlayer() *Player {
	return that.Players[that.Moves%2]
}

func (that *Game) IsClaimed(cell Cell) bool {
	return slices.Contains(that.History, cell)
}

// ValidateMove - parses the raw token and makes sure the cell is still free.
// The format is checked before occupancy; neither check mutates the game.
func (that *Game) ValidateMove(token string) (Cell, error) {
	cell, err := ParseCell(token)
	if err != nil {
		return Cell{}, err
	}

	if that.IsClaimed(cell) {
		return Cell{}, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, cell)
	}

	return cell, nil
}

// MakeTurn - records the cell for the current player and evaluates the terminal conditions.
// It returns the player who made the move.
func (that *Game) MakeTurn(cell Cell) (*Player, error) {
	if err := that.ConfirmOngoingState(); err != nil {
		return nil, err
	}

	if !cell.IsValid() {
		return nil, fmt.Errorf("%w: %d,%d", apperror.ErrInvalidCell, cell.Column, cell.Row)
	}

	if that.IsClaimed(cell) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, cell)
	}

	mover := that.CurrentPlayer()
	moverIndex := that.Moves % 2

	mover.Claim(cell)
	that.History = append(that.History, cell)
	that.Moves++

	that.updateGameState(moverIndex)

	return mover, nil
}

// updateGameState - a win is checked before the draw, so a last move completing a line is a win.
func (that *Game) updateGameState(moverIndex int) {
	switch {
	case that.Players[moverIndex].HasWinningLine():
		that.State = StatePlayer1Won + State(moverIndex)
	case len(that.History) == CellCount:
		that.State = StateDraw
	default:
		that.State = StatePlayer1Turn + State(that.Moves%2)
	}
}

func (that *Game) IsFinished() bool {
	return that.State.IsFinished()
}

func (that *Game) IsDraw() bool {
	return that.State == StateDraw
}

// Winner returns nil while the game is ongoing or ended in a draw.
func (that *Game) Winner() *Player {
	switch that.State {
	case StatePlayer1Won:
		return that.Players[0]
	case StatePlayer2Won:
		return that.Players[1]
	default:
		return nil
	}
}

func (that *Game) ConfirmOngoingState() error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	return nil
}
