package game

import (
	"time"
)

// EntityType discriminates the universal simulated object.
type EntityType int

const (
	EntityPlayer EntityType = iota
	EntityNPC
	EntityItem
	EntityContainer
	EntityFixture
)

func (t EntityType) String() string {
	switch t {
	case EntityPlayer:
		return "player"
	case EntityNPC:
		return "npc"
	case EntityItem:
		return "item"
	case EntityContainer:
		return "container"
	case EntityFixture:
		return "fixture"
	default:
		return "unknown"
	}
}

// Resource identifies one of an entity's bounded pools.
type Resource int

const (
	ResourceHP Resource = iota
	ResourceStamina
	ResourceMana
)

func (r Resource) String() string {
	switch r {
	case ResourceHP:
		return "hp"
	case ResourceStamina:
		return "stamina"
	case ResourceMana:
		return "mana"
	default:
		return "unknown"
	}
}

// Entity is any simulated object in the world: players, NPCs, items,
// containers, and fixtures all share this shape.
type Entity struct {
	ID uint64 `json:"id"`

	// OwnerIdentity is the controlling account identity. Empty for
	// non-player objects.
	OwnerIdentity string `json:"owner_identity,omitempty"`

	Type        EntityType `json:"type"`
	Name        string     `json:"name"`
	Description string     `json:"description"`

	RoomID uint64 `json:"room_id"`

	// Position within the room, informational only.
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`

	Volume      float64 `json:"volume"`
	Weight      float64 `json:"weight"`
	MaxCapacity float64 `json:"max_capacity"`

	HP         int `json:"hp"`
	MaxHP      int `json:"max_hp"`
	Stamina    int `json:"stamina"`
	MaxStamina int `json:"max_stamina"`
	Mana       int `json:"mana"`
	MaxMana    int `json:"max_mana"`

	Dexterity  uint8 `json:"dexterity"`
	Strength   uint8 `json:"strength"`
	Vitality   uint8 `json:"vitality"`
	Perception uint8 `json:"perception"`
	Willpower  uint8 `json:"willpower"`

	IsAlive  bool `json:"is_alive"`
	IsActive bool `json:"is_active"`

	CreatedAt    time.Time `json:"created_at"`
	LastActionAt time.Time `json:"last_action_at"`
}

func (e *Entity) RowID() uint64      { return e.ID }
func (e *Entity) SetRowID(id uint64) { e.ID = id }

// ApplyDamage reduces hp by amount, clamped to [0, MaxHP]. Reaching zero
// flips IsAlive. Negative amounts heal.
func (e *Entity) ApplyDamage(amount int) {
	e.HP -= amount
	if e.HP <= 0 {
		e.HP = 0
		e.IsAlive = false
	}
	if e.HP > e.MaxHP {
		e.HP = e.MaxHP
	}
}

// SpendResource deducts amount from the given pool. It fails without
// mutating when the pool holds less than amount.
func (e *Entity) SpendResource(pool Resource, amount int) error {
	cur := e.resource(pool)
	if *cur < amount {
		return ErrInsufficientResource
	}
	*cur -= amount
	return nil
}

// DrainResource deducts amount from the pool, clamping at zero. Used where
// the action proceeds regardless of how much is left (e.g. attack stamina).
func (e *Entity) DrainResource(pool Resource, amount int) {
	cur := e.resource(pool)
	*cur -= amount
	if *cur < 0 {
		*cur = 0
	}
}

// RestoreResource adds amount to the pool, clamping at its maximum.
func (e *Entity) RestoreResource(pool Resource, amount int) {
	cur, max := e.resource(pool), e.resourceMax(pool)
	*cur += amount
	if *cur > max {
		*cur = max
	}
	if *cur < 0 {
		*cur = 0
	}
}

func (e *Entity) resource(pool Resource) *int {
	switch pool {
	case ResourceStamina:
		return &e.Stamina
	case ResourceMana:
		return &e.Mana
	default:
		return &e.HP
	}
}

func (e *Entity) resourceMax(pool Resource) int {
	switch pool {
	case ResourceStamina:
		return e.MaxStamina
	case ResourceMana:
		return e.MaxMana
	default:
		return e.MaxHP
	}
}

// AttackStat is the unweighted mean of dexterity and strength.
func (e *Entity) AttackStat() uint8 {
	return uint8((uint16(e.Dexterity) + uint16(e.Strength)) / 2)
}

// DefenseStat is the unweighted mean of dexterity and perception.
func (e *Entity) DefenseStat() uint8 {
	return uint8((uint16(e.Dexterity) + uint16(e.Perception)) / 2)
}
