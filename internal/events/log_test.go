package events

import (
	"testing"
	"time"

	"github.com/pixil98/go-testutil"

	"github.com/dogmud/dogmud/internal/game"
)

// fixedSampler returns a constant roll, ignoring the base.
type fixedSampler struct {
	roll float64
}

func (s *fixedSampler) Roll(base float64) float64 { return s.roll }
func (s *fixedSampler) IntN(n int) int            { return 0 }

func TestLog_PurgeExpired(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewLog(&fixedSampler{})

	l.Append(&game.GameEvent{RoomID: 1, Timestamp: start})
	l.Append(&game.GameEvent{RoomID: 1, Timestamp: start.Add(30 * time.Second)})

	tests := map[string]struct {
		now       time.Time
		expPurged int
		expLen    int
	}{
		"nothing expired yet": {
			now:       start.Add(DefaultTTL - time.Second),
			expPurged: 0, expLen: 2,
		},
		"first event at exact expiry": {
			now:       start.Add(DefaultTTL),
			expPurged: 1, expLen: 1,
		},
		"purge is idempotent": {
			now:       start.Add(DefaultTTL),
			expPurged: 0, expLen: 1,
		},
		"second event expires later": {
			now:       start.Add(DefaultTTL + 30*time.Second),
			expPurged: 1, expLen: 0,
		},
	}

	// Order matters here: the cases advance one shared log through time.
	for _, name := range []string{"nothing expired yet", "first event at exact expiry", "purge is idempotent", "second event expires later"} {
		tt := tests[name]
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "purged", l.PurgeExpired(tt.now), tt.expPurged)
			testutil.AssertEqual(t, "remaining", l.Len(), tt.expLen)
		})
	}
}

func TestLog_InRoom(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewLog(&fixedSampler{})

	l.Append(&game.GameEvent{RoomID: 1, Timestamp: now})
	l.Append(&game.GameEvent{RoomID: 2, Timestamp: now})
	l.Append(&game.GameEvent{RoomID: 1, Timestamp: now})

	testutil.AssertEqual(t, "room 1 events", len(l.InRoom(1, now)), 2)
	testutil.AssertEqual(t, "room 2 events", len(l.InRoom(2, now)), 1)
	testutil.AssertEqual(t, "empty room", len(l.InRoom(3, now)), 0)
}

func TestLog_InRoom_SkipsExpired(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewLog(&fixedSampler{})

	l.Append(&game.GameEvent{RoomID: 1, Timestamp: start})
	l.Append(&game.GameEvent{RoomID: 1, Timestamp: start.Add(30 * time.Second)})

	// The first event has expired but has not been purged yet.
	now := start.Add(DefaultTTL)
	testutil.AssertEqual(t, "held", l.Len(), 2)
	testutil.AssertEqual(t, "delivered", len(l.InRoom(1, now)), 1)
}

func TestLog_Observable(t *testing.T) {
	tests := map[string]struct {
		event  *game.GameEvent
		obs    Observer
		roll   float64
		expObs bool
	}{
		"same room plain event": {
			event:  &game.GameEvent{RoomID: 1},
			obs:    Observer{Entity: &game.Entity{RoomID: 1}, CanSee: true, CanHear: true},
			expObs: true,
		},
		"different room": {
			event:  &game.GameEvent{RoomID: 2},
			obs:    Observer{Entity: &game.Entity{RoomID: 1}, CanSee: true, CanHear: true},
			expObs: false,
		},
		"blind observer misses visual event": {
			event:  &game.GameEvent{RoomID: 1, RequiresSight: true},
			obs:    Observer{Entity: &game.Entity{RoomID: 1}, CanSee: false, CanHear: true},
			expObs: false,
		},
		"deaf observer misses audible event": {
			event:  &game.GameEvent{RoomID: 1, RequiresHearing: true},
			obs:    Observer{Entity: &game.Entity{RoomID: 1}, CanSee: true, CanHear: false},
			expObs: false,
		},
		"stealth beaten by perception": {
			event:  &game.GameEvent{RoomID: 1, StealthDC: 40},
			obs:    Observer{Entity: &game.Entity{RoomID: 1, Perception: 80}, CanSee: true, CanHear: true},
			roll:   50,
			expObs: true,
		},
		"stealth hides the event": {
			event:  &game.GameEvent{RoomID: 1, StealthDC: 40},
			obs:    Observer{Entity: &game.Entity{RoomID: 1, Perception: 80}, CanSee: true, CanHear: true},
			roll:   30,
			expObs: false,
		},
		"nil observer entity": {
			event:  &game.GameEvent{RoomID: 1},
			obs:    Observer{CanSee: true, CanHear: true},
			expObs: false,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			l := NewLog(&fixedSampler{roll: tt.roll})
			testutil.AssertEqual(t, "observable", l.Observable(tt.event, tt.obs), tt.expObs)
		})
	}
}
