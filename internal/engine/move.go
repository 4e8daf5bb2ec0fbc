package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dogmud/dogmud/internal/game"
)

// MoveOutcome reports a completed room transition.
type MoveOutcome struct {
	Direction string
	FromRoom  uint64
	ToRoom    uint64
}

// Move walks the actor one exit in the given direction. Guards, in order:
// valid direction token, live session, living actor, no gating condition,
// exit exists, destination active. Nothing is mutated on any failure.
func (e *Engine) Move(ctx context.Context, token, direction string) (*MoveOutcome, error) {
	// Input shape is checked before any lookup.
	direction = strings.TrimSpace(direction)
	if direction == "" {
		return nil, game.ErrUnknownDirection
	}

	actor, err := e.actor(token)
	if err != nil {
		return nil, err
	}

	if !actor.IsAlive {
		return nil, ErrActorDead
	}
	if game.HasGating(e.ConditionsFor(actor.ID), game.ActionMove) {
		return nil, ErrIncapacitated
	}

	from, ok := e.rooms.Get(actor.RoomID)
	if !ok {
		return nil, game.ErrRoomNotFound
	}

	specials := e.exits.Select(func(x *game.SpecialExit) bool {
		return x.FromRoom == from.ID
	})
	destID, err := game.ResolveExit(from, direction, specials)
	if err != nil {
		return nil, err
	}

	dest, _ := e.rooms.Get(destID)
	if err := game.ValidateDestination(dest); err != nil {
		return nil, err
	}

	// Re-validate against the stored record right before committing: a
	// tick pass may have killed or moved the actor since entry.
	current, ok := e.entities.Get(actor.ID)
	if !ok {
		return nil, ErrCharacterNotFound
	}
	if !current.IsAlive {
		return nil, ErrActorDead
	}
	if current.RoomID != from.ID {
		return nil, fmt.Errorf("actor moved concurrently: %w", game.ErrNoExit)
	}

	now := e.now()
	moved := *current
	moved.RoomID = destID
	moved.LastActionAt = now
	if err := e.entities.Update(&moved); err != nil {
		return nil, fmt.Errorf("persisting move: %w", err)
	}

	e.appendEvent(&game.GameEvent{
		RoomID:    from.ID,
		Timestamp: now,
		Payload: game.MovementPayload{
			EntityID:  moved.ID,
			Direction: direction,
			FromRoom:  from.ID,
			ToRoom:    destID,
		},
		PrimaryActor:  moved.ID,
		RequiresSight: true,
	})

	slog.DebugContext(ctx, "entity moved",
		"entity", moved.ID, "direction", direction,
		"from", from.ID, "to", destID)

	return &MoveOutcome{Direction: direction, FromRoom: from.ID, ToRoom: destID}, nil
}

// Say records a speech event in the actor's room.
func (e *Engine) Say(ctx context.Context, token, text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("nothing to say")
	}

	actor, err := e.actor(token)
	if err != nil {
		return err
	}
	if !actor.IsAlive {
		return ErrActorDead
	}

	e.appendEvent(&game.GameEvent{
		RoomID:          actor.RoomID,
		Timestamp:       e.now(),
		Payload:         game.SpeechPayload{SpeakerID: actor.ID, Text: text},
		PrimaryActor:    actor.ID,
		RequiresHearing: true,
	})
	return nil
}
