package apperror

import "errors"

var (
	ErrInvalidCell    = errors.New("invalid cell, use the column-row notation")
	ErrCellOccupied   = errors.New("cell is already occupied")
	ErrGameFinished   = errors.New("game is already finished")
	ErrInputExhausted = errors.New("no more input available")
	ErrInvalidMarks   = errors.New("player marks must be two distinct single characters")
)
