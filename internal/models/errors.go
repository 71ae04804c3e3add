package models

import "errors"

// Domain errors shared by the board, storage and CLI layers
var (
	// ErrUnknownLane indicates a lane identifier outside the four fixed lanes
	ErrUnknownLane = errors.New("unknown lane")

	// ErrEmptyTitle indicates a card title that is empty after trimming
	ErrEmptyTitle = errors.New("card title cannot be empty")

	// ErrCardNotFound indicates that no card with the given id is on the board
	ErrCardNotFound = errors.New("card not found")
)
