package engine

import "errors"

var (
	ErrNotLoggedIn         = errors.New("not logged in")
	ErrNoCharacterSelected = errors.New("no character selected")
	ErrCharacterNotFound   = errors.New("character not found")
	ErrTargetNotFound      = errors.New("target not found")

	ErrActorDead     = errors.New("you are dead")
	ErrIncapacitated = errors.New("you are in no condition to do that")
)
