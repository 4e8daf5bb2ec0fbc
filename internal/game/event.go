package game

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType classifies a world occurrence.
type EventType int

const (
	EventCombat EventType = iota
	EventMovement
	EventSpeech
	EventEmote
	EventItemInteraction
	EventConditionChange
	EventEnvironmental
	EventSystem
	EventEconomy
)

func (t EventType) String() string {
	switch t {
	case EventCombat:
		return "combat"
	case EventMovement:
		return "movement"
	case EventSpeech:
		return "speech"
	case EventEmote:
		return "emote"
	case EventItemInteraction:
		return "item_interaction"
	case EventConditionChange:
		return "condition_change"
	case EventEnvironmental:
		return "environmental"
	case EventSystem:
		return "system"
	case EventEconomy:
		return "economy"
	default:
		return "unknown"
	}
}

// EventPayload is the typed detail record carried by a GameEvent. Each
// EventType has its own payload variant so that observers never parse
// strings out of an opaque blob.
type EventPayload interface {
	EventType() EventType
}

type CombatPayload struct {
	AttackerID uint64 `json:"attacker"`
	TargetID   uint64 `json:"target"`
	Damage     int    `json:"damage"`
	Hit        bool   `json:"hit"`
	Critical   bool   `json:"critical"`
	Message    string `json:"message,omitempty"`
}

func (CombatPayload) EventType() EventType { return EventCombat }

type MovementPayload struct {
	EntityID  uint64 `json:"entity_id"`
	Direction string `json:"direction"`
	FromRoom  uint64 `json:"from_room"`
	ToRoom    uint64 `json:"to_room"`
}

func (MovementPayload) EventType() EventType { return EventMovement }

type SpeechPayload struct {
	SpeakerID uint64 `json:"speaker_id"`
	Text      string `json:"text"`
}

func (SpeechPayload) EventType() EventType { return EventSpeech }

type EmotePayload struct {
	ActorID uint64 `json:"actor_id"`
	Action  string `json:"action"`
}

func (EmotePayload) EventType() EventType { return EventEmote }

type ConditionChangePayload struct {
	EntityID  uint64 `json:"entity_id"`
	Condition string `json:"condition"`
	Applied   bool   `json:"applied"`
}

func (ConditionChangePayload) EventType() EventType { return EventConditionChange }

type SystemPayload struct {
	Message string `json:"message"`
}

func (SystemPayload) EventType() EventType { return EventSystem }

// GameEvent is an immutable fact record. Events are created by action
// resolution, never mutated, and removed only by the scheduled cleanup
// sweep once expired.
type GameEvent struct {
	ID     uint64
	RoomID uint64

	Timestamp time.Time
	Payload   EventPayload

	PrimaryActor   uint64
	SecondaryActor uint64 // zero when absent

	RequiresSight   bool
	RequiresHearing bool
	StealthDC       uint8 // zero when unstealthed

	ExpiresAt time.Time
}

func (e *GameEvent) RowID() uint64      { return e.ID }
func (e *GameEvent) SetRowID(id uint64) { e.ID = id }

func (e *GameEvent) Type() EventType {
	if e.Payload == nil {
		return EventSystem
	}
	return e.Payload.EventType()
}

type eventWire struct {
	ID             uint64          `json:"id"`
	RoomID         uint64          `json:"room_id"`
	Timestamp      time.Time       `json:"timestamp"`
	Type           string          `json:"type"`
	Payload        json.RawMessage `json:"payload,omitempty"`
	PrimaryActor   uint64          `json:"primary_actor"`
	SecondaryActor uint64          `json:"secondary_actor,omitempty"`
}

// MarshalJSON renders the event for transport, tagging the payload with its
// type name.
func (e *GameEvent) MarshalJSON() ([]byte, error) {
	var raw json.RawMessage
	if e.Payload != nil {
		b, err := json.Marshal(e.Payload)
		if err != nil {
			return nil, fmt.Errorf("marshalling %s payload: %w", e.Type(), err)
		}
		raw = b
	}

	return json.Marshal(&eventWire{
		ID:             e.ID,
		RoomID:         e.RoomID,
		Timestamp:      e.Timestamp,
		Type:           e.Type().String(),
		Payload:        raw,
		PrimaryActor:   e.PrimaryActor,
		SecondaryActor: e.SecondaryActor,
	})
}
