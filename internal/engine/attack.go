package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dogmud/dogmud/internal/combat"
	"github.com/dogmud/dogmud/internal/game"
)

// Attack resolves one opposed-roll attack by the session's character
// against the target entity. On any precondition failure nothing is
// mutated; on success both combatant snapshots, the stamina cost, and the
// combat event commit together.
func (e *Engine) Attack(ctx context.Context, token string, targetID uint64) (*combat.Outcome, error) {
	actor, err := e.actor(token)
	if err != nil {
		return nil, err
	}

	target, ok := e.entities.Get(targetID)
	if !ok {
		return nil, ErrTargetNotFound
	}

	if game.HasGating(e.ConditionsFor(actor.ID), game.ActionAttack) {
		return nil, ErrIncapacitated
	}

	room, _ := e.rooms.Get(actor.RoomID)
	if err := combat.CheckPreconditions(actor, target, room); err != nil {
		return nil, err
	}

	return e.resolveAttack(ctx, actor, target, room)
}

// resolveAttack runs the roll and commits the result. Both entities are
// copied first; the stored records are re-validated right before the
// commit so a lost race against a tick pass fails cleanly.
func (e *Engine) resolveAttack(ctx context.Context, attacker, defender *game.Entity, room *game.Room) (*combat.Outcome, error) {
	att := *attacker
	def := *defender

	now := e.now()
	out, err := combat.Resolve(&att, &def, combat.DefaultSkill, combat.DefaultSkill, now, e.sampler)
	if err != nil {
		return nil, err
	}

	// Lost-race re-validation against the stored rows.
	storedAtt, okA := e.entities.Get(attacker.ID)
	storedDef, okD := e.entities.Get(defender.ID)
	if !okA || !okD {
		return nil, ErrTargetNotFound
	}
	if err := combat.CheckPreconditions(storedAtt, storedDef, room); err != nil {
		return nil, err
	}

	if err := e.entities.Update(&att); err != nil {
		return nil, fmt.Errorf("persisting attacker: %w", err)
	}
	if err := e.entities.Update(&def); err != nil {
		return nil, fmt.Errorf("persisting defender: %w", err)
	}

	e.appendEvent(&game.GameEvent{
		RoomID:    room.ID,
		Timestamp: now,
		Payload: game.CombatPayload{
			AttackerID: att.ID,
			TargetID:   def.ID,
			Damage:     out.Damage,
			Hit:        out.Kind == combat.Hit || out.Kind == combat.CriticalHit,
			Critical:   out.Kind == combat.CriticalHit,
			Message:    combat.Describe(out),
		},
		PrimaryActor:    att.ID,
		SecondaryActor:  def.ID,
		RequiresSight:   true,
		RequiresHearing: true,
	})

	slog.DebugContext(ctx, "attack resolved",
		"attacker", att.ID, "defender", def.ID,
		"outcome", out.Kind.String(), "damage", out.Damage)

	return out, nil
}
