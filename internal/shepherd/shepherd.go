package shepherd

import (
	"context"
	"time"

	"github.com/pixil98/go-errors"

	"github.com/dogmud/dogmud/internal/game"
)

const (
	DefaultFastRate   = time.Second
	DefaultMediumRate = time.Second * 5
	SlowRate          = time.Minute
	DefaultResolution = time.Millisecond * 250
)

// Engine is the set of maintenance passes the scheduler drives.
type Engine interface {
	ActiveRegions() []*game.Region
	TickConditions(ctx context.Context, regionID uint64) error
	TickNPCs(ctx context.Context, regionID uint64) error
	StepNPCs(ctx context.Context, regionID uint64) error
	CleanupExpiredEvents(ctx context.Context) error
}

// entry holds one region's next-fire deadlines. Keeping the schedule
// explicit rather than running per-region timers makes missed ticks and
// re-fires observable in tests.
type entry struct {
	regionID   uint64
	fastRate   time.Duration
	mediumRate time.Duration
	nextFast   time.Time
	nextMedium time.Time
}

type Shepherd struct {
	engine     Engine
	resolution time.Duration
	schedule   map[uint64]*entry
	nextSlow   time.Time
}

type ShepherdOpt func(*Shepherd)

func WithResolution(d time.Duration) ShepherdOpt {
	return func(s *Shepherd) {
		s.resolution = d
	}
}

func NewShepherd(engine Engine, opts ...ShepherdOpt) *Shepherd {
	s := &Shepherd{
		engine:     engine,
		resolution: DefaultResolution,
		schedule:   map[uint64]*entry{},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start drives the schedule until the context is canceled.
func (s *Shepherd) Start(ctx context.Context) error {
	ticker := time.NewTicker(s.resolution)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if err := s.Advance(ctx, now); err != nil {
				return err
			}
		}
	}
}

// Advance fires every cadence whose deadline has passed as of now.
// Regions are processed one at a time, so a cadence never overlaps
// itself. A deadline missed by more than one period fires once and
// reschedules from now rather than bursting to catch up.
func (s *Shepherd) Advance(ctx context.Context, now time.Time) error {
	s.sync(now)

	el := errors.NewErrorList()
	for _, e := range s.schedule {
		if !e.nextFast.After(now) {
			el.Add(s.engine.TickConditions(ctx, e.regionID))
			el.Add(s.engine.TickNPCs(ctx, e.regionID))
			e.nextFast = now.Add(e.fastRate)
		}
		if !e.nextMedium.After(now) {
			el.Add(s.engine.StepNPCs(ctx, e.regionID))
			e.nextMedium = now.Add(e.mediumRate)
		}
	}

	if !s.nextSlow.After(now) {
		el.Add(s.engine.CleanupExpiredEvents(ctx))
		s.nextSlow = now.Add(SlowRate)
	}

	return el.Err()
}

// sync reconciles the schedule against the active region set. Newly
// active regions get deadlines one period out; deactivated regions are
// dropped so they are never driven.
func (s *Shepherd) sync(now time.Time) {
	if s.nextSlow.IsZero() {
		s.nextSlow = now.Add(SlowRate)
	}

	active := map[uint64]bool{}
	for _, r := range s.engine.ActiveRegions() {
		active[r.ID] = true

		e, ok := s.schedule[r.ID]
		if !ok {
			e = &entry{regionID: r.ID}
			s.schedule[r.ID] = e
		}

		e.fastRate = r.TickRateFast
		if e.fastRate <= 0 {
			e.fastRate = DefaultFastRate
		}
		e.mediumRate = r.TickRateMedium
		if e.mediumRate <= 0 {
			e.mediumRate = DefaultMediumRate
		}

		if e.nextFast.IsZero() {
			e.nextFast = now.Add(e.fastRate)
		}
		if e.nextMedium.IsZero() {
			e.nextMedium = now.Add(e.mediumRate)
		}
	}

	for id := range s.schedule {
		if !active[id] {
			delete(s.schedule, id)
		}
	}
}
