package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dogmud/dogmud/internal/combat"
	"github.com/dogmud/dogmud/internal/game"
)

// regionRoomIDs returns the room-id set for a region.
func (e *Engine) regionRoomIDs(regionID uint64) map[uint64]bool {
	ids := make(map[uint64]bool)
	for _, r := range e.rooms.Select(func(r *game.Room) bool { return r.RegionID == regionID }) {
		ids[r.ID] = true
	}
	return ids
}

// TickConditions runs one fast-cadence condition pass for a region: apply
// each condition's per-tick magnitude, decrement durations, and drop
// expired conditions. Per-entity work commits independently, so a repeated
// or overlapping invocation re-applies at most one tick of effect.
func (e *Engine) TickConditions(ctx context.Context, regionID uint64) error {
	rooms := e.regionRoomIDs(regionID)

	residents := e.entities.Select(func(ent *game.Entity) bool {
		return rooms[ent.RoomID] && ent.IsActive
	})

	for _, ent := range residents {
		conds := e.ConditionsFor(ent.ID)
		if len(conds) == 0 {
			continue
		}

		delta := 0
		for _, c := range conds {
			if c.RemainingTicks > 0 {
				delta += c.HPDelta()
			}
		}

		// Decay copies, then commit the partition.
		copies := make([]*game.Condition, len(conds))
		for i, c := range conds {
			dup := *c
			copies[i] = &dup
		}
		remaining, expired := game.DecayTick(copies)

		if delta != 0 && ent.IsAlive {
			mutated := *ent
			mutated.ApplyDamage(-delta)
			if err := e.entities.Update(&mutated); err != nil {
				return fmt.Errorf("persisting condition damage: %w", err)
			}
			if !mutated.IsAlive {
				e.appendEvent(&game.GameEvent{
					RoomID:        mutated.RoomID,
					Timestamp:     e.now(),
					Payload:       game.SystemPayload{Message: fmt.Sprintf("%s succumbs to their wounds", mutated.Name)},
					PrimaryActor:  mutated.ID,
					RequiresSight: true,
				})
			}
		}

		for _, c := range remaining {
			if err := e.conditions.Update(c); err != nil {
				return fmt.Errorf("persisting condition: %w", err)
			}
		}
		for _, c := range expired {
			_ = e.conditions.Delete(c.ID)
			e.appendEvent(&game.GameEvent{
				RoomID:    ent.RoomID,
				Timestamp: e.now(),
				Payload: game.ConditionChangePayload{
					EntityID:  ent.ID,
					Condition: c.Type.String(),
					Applied:   false,
				},
				PrimaryActor:  ent.ID,
				RequiresSight: true,
			})
		}
	}

	return nil
}

// TickNPCs runs one fast-cadence NPC pass: aggressive NPCs pick a living
// player in their room and attack through the same resolution path as
// player attacks.
func (e *Engine) TickNPCs(ctx context.Context, regionID uint64) error {
	rooms := e.regionRoomIDs(regionID)

	for _, b := range e.behaviors.All() {
		npc, ok := e.entities.Get(b.EntityID)
		if !ok || !npc.IsAlive || !npc.IsActive || !rooms[npc.RoomID] {
			continue
		}
		if b.AI != game.AIAggressive && b.AI != game.AIBerserk {
			continue
		}
		if game.HasGating(e.ConditionsFor(npc.ID), game.ActionAttack) {
			continue
		}

		target, ok := e.entities.Find(func(ent *game.Entity) bool {
			return ent.Type == game.EntityPlayer && ent.IsAlive && ent.RoomID == npc.RoomID
		})
		if !ok {
			continue
		}

		room, _ := e.rooms.Get(npc.RoomID)
		if err := combat.CheckPreconditions(npc, target, room); err != nil {
			continue
		}
		if _, err := e.resolveAttack(ctx, npc, target, room); err != nil {
			slog.WarnContext(ctx, "npc attack failed", "npc", npc.ID, "error", err)
		}
	}

	return nil
}

// StepNPCs runs one medium-cadence NPC movement pass: wanderers pick a
// random open exit, patrollers walk their waypoint circuit.
func (e *Engine) StepNPCs(ctx context.Context, regionID uint64) error {
	rooms := e.regionRoomIDs(regionID)

	for _, b := range e.behaviors.All() {
		npc, ok := e.entities.Get(b.EntityID)
		if !ok || !npc.IsAlive || !npc.IsActive || !rooms[npc.RoomID] {
			continue
		}
		if game.HasGating(e.ConditionsFor(npc.ID), game.ActionMove) {
			continue
		}

		room, ok := e.rooms.Get(npc.RoomID)
		if !ok {
			continue
		}

		var destID uint64
		var direction game.Direction

		switch b.Movement {
		case game.MoveWander:
			destID, direction = e.pickWanderExit(room)

		case game.MovePatrol:
			destID, direction = e.nextPatrolStep(b, room)

		default:
			continue
		}

		if destID == 0 {
			continue
		}
		dest, _ := e.rooms.Get(destID)
		if game.ValidateDestination(dest) != nil {
			continue
		}

		moved := *npc
		moved.RoomID = destID
		moved.LastActionAt = e.now()
		if err := e.entities.Update(&moved); err != nil {
			return fmt.Errorf("persisting npc step: %w", err)
		}

		e.appendEvent(&game.GameEvent{
			RoomID:    room.ID,
			Timestamp: moved.LastActionAt,
			Payload: game.MovementPayload{
				EntityID:  moved.ID,
				Direction: direction.String(),
				FromRoom:  room.ID,
				ToRoom:    destID,
			},
			PrimaryActor:  moved.ID,
			RequiresSight: true,
		})
	}

	return nil
}

// pickWanderExit chooses uniformly among the room's open cardinal exits.
func (e *Engine) pickWanderExit(room *game.Room) (uint64, game.Direction) {
	var open []game.Direction
	for d := game.North; d <= game.Down; d++ {
		if room.Exit(d) != 0 {
			open = append(open, d)
		}
	}
	if len(open) == 0 {
		return 0, 0
	}
	dir := open[e.sampler.IntN(len(open))]
	return room.Exit(dir), dir
}

// nextPatrolStep moves a patroller to its next waypoint, which must be
// an exit of the current room; consecutive waypoints are adjacent rooms.
// A patroller whose waypoint is not reachable in one step stays put.
// Reaching the waypoint advances the circuit.
func (e *Engine) nextPatrolStep(b *game.NPCBehavior, room *game.Room) (uint64, game.Direction) {
	if len(b.Waypoints) == 0 {
		return 0, 0
	}

	goal := b.Waypoints[b.NextWaypoint%len(b.Waypoints)]
	if room.ID == goal {
		next := *b
		next.NextWaypoint = (b.NextWaypoint + 1) % len(b.Waypoints)
		_ = e.behaviors.Update(&next)
		goal = next.Waypoints[next.NextWaypoint]
	}

	for d := game.North; d <= game.Down; d++ {
		if room.Exit(d) == goal {
			return goal, d
		}
	}
	return 0, 0
}

// CleanupExpiredEvents runs the slow-cadence sweep: purge expired events
// and despawn dead NPCs. Players are never removed; NPC removal evicts any
// contained items into the room.
func (e *Engine) CleanupExpiredEvents(ctx context.Context) error {
	purged := e.log.PurgeExpired(e.now())

	corpses := e.entities.Select(func(ent *game.Entity) bool {
		return ent.Type == game.EntityNPC && !ent.IsAlive
	})

	for _, npc := range corpses {
		for _, itemID := range e.containment.Evict(npc.ID) {
			if item, ok := e.entities.Get(itemID); ok {
				dropped := *item
				dropped.RoomID = npc.RoomID
				_ = e.entities.Update(&dropped)
			}
		}
		for _, c := range e.ConditionsFor(npc.ID) {
			_ = e.conditions.Delete(c.ID)
		}
		if b, ok := e.behaviors.Find(func(b *game.NPCBehavior) bool { return b.EntityID == npc.ID }); ok {
			_ = e.behaviors.Delete(b.ID)
		}
		_ = e.entities.Delete(npc.ID)
	}

	if purged > 0 || len(corpses) > 0 {
		slog.DebugContext(ctx, "cleanup sweep",
			"events_purged", purged, "npcs_despawned", len(corpses))
	}

	return nil
}
