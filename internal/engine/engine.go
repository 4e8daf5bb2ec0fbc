// Package engine is the simulation core: it resolves player and NPC
// actions against world state and runs the periodic maintenance passes
// the shepherds drive.
package engine

import (
	"time"

	"github.com/dogmud/dogmud/internal/combat"
	"github.com/dogmud/dogmud/internal/events"
	"github.com/dogmud/dogmud/internal/game"
	"github.com/dogmud/dogmud/internal/storage"
)

// ActorIdentity is the validated caller identity the identity collaborator
// hands the engine, plus the character the identity currently controls.
type ActorIdentity struct {
	Identity    string
	CharacterID uint64
}

// SessionStore resolves a session token to a validated actor identity.
type SessionStore interface {
	Resolve(token string) (ActorIdentity, bool)
}

// Publisher delivers rendered event notifications to room subjects. The
// engine never formats for a terminal; it hands structured events to the
// transport collaborator.
type Publisher interface {
	PublishRoom(roomID uint64, data []byte) error
}

// Engine owns the runtime record tables and exposes the action entry
// points. Each invocation reads, mutates copies, and commits once; the
// tables serialize access per record.
type Engine struct {
	entities    *storage.Table[*game.Entity]
	rooms       *storage.Table[*game.Room]
	regions     *storage.Table[*game.Region]
	conditions  *storage.Table[*game.Condition]
	exits       *storage.Table[*game.SpecialExit]
	behaviors   *storage.Table[*game.NPCBehavior]
	items       *storage.Table[*game.ItemData]
	containment *game.ContainmentForest
	log         *events.Log

	sessions SessionStore
	pub      Publisher
	sampler  combat.Sampler
	now      func() time.Time
}

type Opt func(*Engine)

// WithClock overrides the engine's notion of now, for tests.
func WithClock(now func() time.Time) Opt {
	return func(e *Engine) {
		e.now = now
	}
}

// WithSampler injects a seeded or stubbed roll sampler.
func WithSampler(s combat.Sampler) Opt {
	return func(e *Engine) {
		e.sampler = s
		e.log = events.NewLog(s)
	}
}

func New(sessions SessionStore, pub Publisher, opts ...Opt) *Engine {
	sampler := combat.NewSampler(uint64(time.Now().UnixNano()), uint64(time.Now().Unix()))
	e := &Engine{
		entities:    storage.NewTable[*game.Entity](),
		rooms:       storage.NewTable[*game.Room](),
		regions:     storage.NewTable[*game.Region](),
		conditions:  storage.NewTable[*game.Condition](),
		exits:       storage.NewTable[*game.SpecialExit](),
		behaviors:   storage.NewTable[*game.NPCBehavior](),
		items:       storage.NewTable[*game.ItemData](),
		containment: game.NewContainmentForest(),
		log:         events.NewLog(sampler),
		sessions:    sessions,
		pub:         pub,
		sampler:     sampler,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Entity returns the stored entity, if any. Callers must not mutate it.
func (e *Engine) Entity(id uint64) (*game.Entity, bool) {
	return e.entities.Get(id)
}

// Room returns the stored room, if any.
func (e *Engine) Room(id uint64) (*game.Room, bool) {
	return e.rooms.Get(id)
}

// Region returns the stored region, if any.
func (e *Engine) Region(id uint64) (*game.Region, bool) {
	return e.regions.Get(id)
}

// ActiveRegions lists the regions whose shepherds should run.
func (e *Engine) ActiveRegions() []*game.Region {
	return e.regions.Select(func(r *game.Region) bool {
		return r.IsActive
	})
}

// EventLog exposes the event log for observers and tests.
func (e *Engine) EventLog() *events.Log {
	return e.log
}

// ConditionsFor returns the conditions attached to an entity.
func (e *Engine) ConditionsFor(entityID uint64) []*game.Condition {
	return e.conditions.Select(func(c *game.Condition) bool {
		return c.EntityID == entityID
	})
}

// ApplyCondition attaches a condition to an entity and records the change.
func (e *Engine) ApplyCondition(c *game.Condition) (uint64, error) {
	if _, ok := e.entities.Get(c.EntityID); !ok {
		return 0, ErrTargetNotFound
	}
	c.AppliedAt = e.now()
	id := e.conditions.Insert(c)

	e.appendEvent(&game.GameEvent{
		RoomID:    e.entityRoom(c.EntityID),
		Timestamp: c.AppliedAt,
		Payload: game.ConditionChangePayload{
			EntityID:  c.EntityID,
			Condition: c.Type.String(),
			Applied:   true,
		},
		PrimaryActor:  c.EntityID,
		RequiresSight: true,
	})
	return id, nil
}

// observerFor derives an event-log observer from an entity's conditions.
func (e *Engine) observerFor(ent *game.Entity) events.Observer {
	conds := e.ConditionsFor(ent.ID)
	canSee := true
	for _, c := range conds {
		if c.Type == game.Blinded {
			canSee = false
		}
	}
	return events.Observer{Entity: ent, CanSee: canSee, CanHear: true}
}

// ObservableEvents returns the room events the given entity can perceive.
func (e *Engine) ObservableEvents(entityID uint64) []*game.GameEvent {
	ent, ok := e.entities.Get(entityID)
	if !ok {
		return nil
	}
	obs := e.observerFor(ent)

	var out []*game.GameEvent
	for _, ev := range e.log.InRoom(ent.RoomID, e.now()) {
		if e.log.Observable(ev, obs) {
			out = append(out, ev)
		}
	}
	return out
}

func (e *Engine) entityRoom(entityID uint64) uint64 {
	if ent, ok := e.entities.Get(entityID); ok {
		return ent.RoomID
	}
	return 0
}

// appendEvent stores the event and broadcasts it to the room subject.
func (e *Engine) appendEvent(ev *game.GameEvent) {
	e.log.Append(ev)

	if e.pub == nil {
		return
	}
	data, err := ev.MarshalJSON()
	if err != nil {
		return
	}
	_ = e.pub.PublishRoom(ev.RoomID, data)
}

// actor resolves a session token to the living entity it controls.
func (e *Engine) actor(token string) (*game.Entity, error) {
	identity, ok := e.sessions.Resolve(token)
	if !ok {
		return nil, ErrNotLoggedIn
	}
	if identity.CharacterID == 0 {
		return nil, ErrNoCharacterSelected
	}
	ent, ok := e.entities.Get(identity.CharacterID)
	if !ok {
		return nil, ErrCharacterNotFound
	}
	return ent, nil
}
