package game

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

var aiNames = map[string]AIType{
	"passive":     AIPassive,
	"defensive":   AIDefensive,
	"aggressive":  AIAggressive,
	"territorial": AITerritorial,
	"timid":       AITimid,
	"berserk":     AIBerserk,
}

var movementNames = map[string]MovementType{
	"stationary": MoveStationary,
	"wander":     MoveWander,
	"patrol":     MovePatrol,
}

// String returns the asset-file name for the AI type.
func (t AIType) String() string {
	for name, v := range aiNames {
		if v == t {
			return name
		}
	}
	return "passive"
}

// String returns the asset-file name for the movement type.
func (t MovementType) String() string {
	for name, v := range movementNames {
		if v == t {
			return name
		}
	}
	return "stationary"
}

// ParseAIType maps an asset-file AI name to its type.
func ParseAIType(s string) (AIType, error) {
	t, ok := aiNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown ai type: %s", s)
	}
	return t, nil
}

// ParseMovementType maps an asset-file movement name to its type.
func ParseMovementType(s string) (MovementType, error) {
	t, ok := movementNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown movement type: %s", s)
	}
	return t, nil
}

// NPCSpawn describes NPCs to place when a region is seeded.
type NPCSpawn struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Count       int    `json:"count"`

	AI       string `json:"ai"`
	Movement string `json:"movement"`

	MaxHP      int   `json:"max_hp"`
	MaxStamina int   `json:"max_stamina"`
	Dexterity  uint8 `json:"dexterity"`
	Strength   uint8 `json:"strength"`
	Vitality   uint8 `json:"vitality"`
	Perception uint8 `json:"perception"`
	Willpower  uint8 `json:"willpower"`
}

func (s *NPCSpawn) Validate() error {
	el := errors.NewErrorList()

	if s.Name == "" {
		el.Add(fmt.Errorf("spawn name is required"))
	}
	if s.Count < 1 {
		el.Add(fmt.Errorf("spawn count must be at least 1"))
	}
	if s.MaxHP < 1 {
		el.Add(fmt.Errorf("spawn max_hp must be at least 1"))
	}
	if _, err := ParseAIType(s.AI); err != nil {
		el.Add(err)
	}
	if _, err := ParseMovementType(s.Movement); err != nil {
		el.Add(err)
	}

	return el.Err()
}

// RegionDef is the on-disk seed definition for one region: its
// environmental defaults, the size of its room grid, and the NPCs to
// scatter through it.
type RegionDef struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	Biome           string `json:"biome"`
	Climate         string `json:"climate"`
	BaseTemperature int    `json:"base_temperature"`
	BaseLightLevel  uint8  `json:"base_light_level"`

	GridSize int `json:"grid_size"`

	TickRateFast   string `json:"tick_rate_fast,omitempty"`
	TickRateMedium string `json:"tick_rate_medium,omitempty"`

	Spawns []NPCSpawn `json:"spawns,omitempty"`
}

func (d *RegionDef) Validate() error {
	el := errors.NewErrorList()

	el.Add(d.Region().Validate())

	if d.GridSize < 1 {
		el.Add(fmt.Errorf("grid_size must be at least 1"))
	}

	if d.TickRateFast != "" {
		if _, err := time.ParseDuration(d.TickRateFast); err != nil {
			el.Add(fmt.Errorf("parsing tick_rate_fast: %w", err))
		}
	}
	if d.TickRateMedium != "" {
		if _, err := time.ParseDuration(d.TickRateMedium); err != nil {
			el.Add(fmt.Errorf("parsing tick_rate_medium: %w", err))
		}
	}

	for i, s := range d.Spawns {
		if err := s.Validate(); err != nil {
			el.Add(fmt.Errorf("spawn %d: %w", i, err))
		}
	}

	return el.Err()
}

// Region builds the runtime region record. Tick rates that fail to
// parse are left zero so the scheduler falls back to its defaults.
func (d *RegionDef) Region() *Region {
	r := &Region{
		Name:            d.Name,
		Description:     d.Description,
		Biome:           d.Biome,
		Climate:         d.Climate,
		BaseTemperature: d.BaseTemperature,
		BaseLightLevel:  d.BaseLightLevel,
		IsActive:        true,
	}
	if d.TickRateFast != "" {
		r.TickRateFast, _ = time.ParseDuration(d.TickRateFast)
	}
	if d.TickRateMedium != "" {
		r.TickRateMedium, _ = time.ParseDuration(d.TickRateMedium)
	}
	return r
}
