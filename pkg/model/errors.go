package model

import "errors"

var (
	ErrInvalidModeSpec       = errors.New("invalid game mode")
	ErrInvalidConstraintSpec = errors.New("invalid arranged-team constraints")
	ErrNoFeasiblePartition   = errors.New("no partition satisfies the arranged-team constraints")
	ErrDimensionMismatch     = errors.New("ratings and deviations do not match the number of players")
	ErrModeTooLarge          = errors.New("game mode has too many partitions to enumerate")
)
