package game

// AIType controls how an NPC reacts to other entities.
type AIType int

const (
	AIPassive AIType = iota
	AIDefensive
	AIAggressive
	AITerritorial
	AITimid
	AIBerserk
)

// MovementType controls how an NPC moves on medium ticks.
type MovementType int

const (
	MoveStationary MovementType = iota
	MoveWander
	MovePatrol
)

// NPCBehavior attaches AI parameters to an NPC entity. One row per NPC,
// keyed by the entity id.
type NPCBehavior struct {
	ID       uint64 `json:"id"`
	EntityID uint64 `json:"entity_id"`

	AI       AIType       `json:"ai"`
	Movement MovementType `json:"movement"`

	AggroRange  uint8  `json:"aggro_range"`
	WanderRange uint8  `json:"wander_range"`
	HomeRoom    uint64 `json:"home_room"`

	// Waypoints is the patrol circuit; NextWaypoint indexes into it.
	// Consecutive waypoints must be adjacent rooms: there is no
	// pathfinding, and a patroller with a non-adjacent waypoint stalls.
	Waypoints    []uint64 `json:"waypoints,omitempty"`
	NextWaypoint int      `json:"next_waypoint,omitempty"`

	Faction      string `json:"faction,omitempty"`
	AssistAllies bool   `json:"assist_allies,omitempty"`
	CanTalk      bool   `json:"can_talk,omitempty"`
}

func (b *NPCBehavior) RowID() uint64      { return b.ID }
func (b *NPCBehavior) SetRowID(id uint64) { b.ID = id }
