package game

import "time"

// ConditionType enumerates timed status effects.
type ConditionType int

const (
	Burning ConditionType = iota
	Poisoned
	Bleeding
	Regenerating
	Hasted
	Blessed
	Wet
	Muddy
	Frozen
	Oiled
	Blinded
	Stunned
	Comatose
	Encumbered
)

func (t ConditionType) String() string {
	switch t {
	case Burning:
		return "burning"
	case Poisoned:
		return "poisoned"
	case Bleeding:
		return "bleeding"
	case Regenerating:
		return "regenerating"
	case Hasted:
		return "hasted"
	case Blessed:
		return "blessed"
	case Wet:
		return "wet"
	case Muddy:
		return "muddy"
	case Frozen:
		return "frozen"
	case Oiled:
		return "oiled"
	case Blinded:
		return "blinded"
	case Stunned:
		return "stunned"
	case Comatose:
		return "comatose"
	case Encumbered:
		return "encumbered"
	default:
		return "unknown"
	}
}

// Condition is one timed effect instance attached to an entity. Remaining
// ticks are decremented once per fast-cadence decay pass.
type Condition struct {
	ID       uint64 `json:"id"`
	EntityID uint64 `json:"entity_id"`

	Type           ConditionType `json:"type"`
	Magnitude      float64       `json:"magnitude"`
	RemainingTicks int           `json:"remaining_ticks"`

	// SourceID is the entity that inflicted the condition, or zero.
	SourceID  uint64    `json:"source_id,omitempty"`
	AppliedAt time.Time `json:"applied_at"`
}

func (c *Condition) RowID() uint64      { return c.ID }
func (c *Condition) SetRowID(id uint64) { c.ID = id }

// HPDelta is the per-fast-tick hit point change this condition applies.
// The table is fixed so that damage-over-time is deterministic given the
// magnitude and the number of elapsed ticks.
func (c *Condition) HPDelta() int {
	switch c.Type {
	case Burning, Poisoned, Bleeding:
		return -int(c.Magnitude)
	case Regenerating:
		return int(c.Magnitude)
	default:
		return 0
	}
}

// Action identifies a player/NPC action that gating conditions can block.
type Action int

const (
	ActionMove Action = iota
	ActionAttack
)

// gates lists which actions each gating condition blocks. Presence alone
// blocks, regardless of magnitude.
var gates = map[ConditionType][]Action{
	Comatose: {ActionMove, ActionAttack},
	Stunned:  {ActionAttack},
}

// Gates reports whether this condition blocks the given action.
func (c *Condition) Gates(action Action) bool {
	for _, a := range gates[c.Type] {
		if a == action {
			return true
		}
	}
	return false
}

// HasGating reports whether any condition in the list blocks the action.
func HasGating(conditions []*Condition, action Action) bool {
	for _, c := range conditions {
		if c.Gates(action) {
			return true
		}
	}
	return false
}

// DecayTick advances every condition by one fast tick and partitions the
// list into those still running and those to remove. A condition that
// arrives with zero (or negative) remaining ticks expires immediately
// without a decrement.
func DecayTick(conditions []*Condition) (remaining, expired []*Condition) {
	for _, c := range conditions {
		if c.RemainingTicks <= 0 {
			expired = append(expired, c)
			continue
		}
		c.RemainingTicks--
		if c.RemainingTicks == 0 {
			expired = append(expired, c)
		} else {
			remaining = append(remaining, c)
		}
	}
	return remaining, expired
}
