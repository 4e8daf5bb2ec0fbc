// Package events holds the append-only, time-expiring log of world
// occurrences and the visibility predicate for delivering them.
package events

import (
	"time"

	"github.com/dogmud/dogmud/internal/combat"
	"github.com/dogmud/dogmud/internal/game"
	"github.com/dogmud/dogmud/internal/storage"
)

// DefaultTTL is how long an event stays observable before the cleanup
// sweep may purge it.
const DefaultTTL = 60 * time.Second

// Observer describes what an entity can currently perceive. The engine
// derives the capability flags from conditions (a blinded entity cannot
// see) before consulting the log.
type Observer struct {
	Entity  *game.Entity
	CanSee  bool
	CanHear bool
}

// Log is the append-only event record set.
type Log struct {
	table   *storage.Table[*game.GameEvent]
	ttl     time.Duration
	sampler combat.Sampler
}

func NewLog(sampler combat.Sampler) *Log {
	return &Log{
		table:   storage.NewTable[*game.GameEvent](),
		ttl:     DefaultTTL,
		sampler: sampler,
	}
}

// Append inserts the event, assigning its id and expiry. The event must
// carry its timestamp; expiry is timestamp + TTL.
func (l *Log) Append(ev *game.GameEvent) uint64 {
	ev.ExpiresAt = ev.Timestamp.Add(l.ttl)
	return l.table.Insert(ev)
}

// PurgeExpired removes every event whose expiry is at or before now and
// returns how many were removed. Repeated calls with the same now are
// no-ops after the first.
func (l *Log) PurgeExpired(now time.Time) int {
	expired := l.table.Select(func(ev *game.GameEvent) bool {
		return !ev.ExpiresAt.After(now)
	})
	for _, ev := range expired {
		_ = l.table.Delete(ev.ID)
	}
	return len(expired)
}

// InRoom returns the events for a room that are unexpired as of now.
// Expired events awaiting a purge sweep are never delivered.
func (l *Log) InRoom(roomID uint64, now time.Time) []*game.GameEvent {
	return l.table.Select(func(ev *game.GameEvent) bool {
		return ev.RoomID == roomID && ev.ExpiresAt.After(now)
	})
}

// Len reports the number of events currently held.
func (l *Log) Len() int {
	return l.table.Count()
}

// Observable decides whether an observer perceives the event: they must
// share the event's room, meet its sight/hearing requirements, and clear
// the stealth DC with a perception roll when one is set.
func (l *Log) Observable(ev *game.GameEvent, obs Observer) bool {
	if obs.Entity == nil || obs.Entity.RoomID != ev.RoomID {
		return false
	}
	if ev.RequiresSight && !obs.CanSee {
		return false
	}
	if ev.RequiresHearing && !obs.CanHear {
		return false
	}
	if ev.StealthDC > 0 {
		// Same roll primitives as combat, against a fixed DC rather
		// than an opposed sample.
		base := combat.RollBase(obs.Entity.Perception, combat.DefaultSkill, 1.0)
		if l.sampler.Roll(base) < float64(ev.StealthDC) {
			return false
		}
	}
	return true
}
