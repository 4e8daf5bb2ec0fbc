package game

import "errors"

var (
	ErrInsufficientResource = errors.New("insufficient resource")

	ErrUnknownDirection = errors.New("unknown direction")
	ErrNoExit           = errors.New("no exit in that direction")
	ErrRoomNotFound     = errors.New("room not found")
	ErrRoomInactive     = errors.New("that passage is blocked")

	ErrContainmentCycle   = errors.New("entity cannot contain an ancestor of itself")
	ErrContainmentTooDeep = errors.New("containment nesting too deep")
	ErrAlreadyContained   = errors.New("entity is already inside a container")
)
