package board

import (
	"errors"
	"fmt"
)

// Configuration errors returned by New.
var (
	ErrInvalidDimensions  = errors.New("board: rows and columns must be positive")
	ErrInvalidMineCount   = errors.New("board: mine count must not be negative")
	ErrTooManyMines       = errors.New("board: too many mines for a safe first move")
	ErrPlacementExhausted = errors.New("board: mine placement exhausted its attempts")
)

// ContractError is the panic value raised when a caller breaks the board's
// contract, e.g. by passing a position outside the grid.
type ContractError struct {
	Op  string
	Pos Position
	Err error
}

// [ContractError] implements [error]
func (e ContractError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("board: %s %v: %v", e.Op, e.Pos, e.Err)
	}
	return fmt.Sprintf("board: %s %v: position out of range", e.Op, e.Pos)
}

func (e ContractError) Unwrap() error {
	return e.Err
}
