package game

import (
	"strings"
)

// Direction is one of the six cardinal/vertical exits a room can have.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// ParseDirection maps a direction token to a Direction. Both full words and
// single-letter aliases are accepted, case-insensitively.
func ParseDirection(token string) (Direction, bool) {
	switch strings.ToLower(token) {
	case "north", "n":
		return North, true
	case "south", "s":
		return South, true
	case "east", "e":
		return East, true
	case "west", "w":
		return West, true
	case "up", "u":
		return Up, true
	case "down", "d":
		return Down, true
	default:
		return 0, false
	}
}

// Room is a node in the world graph. Exit fields hold the destination room
// id, or zero when there is no exit that way.
type Room struct {
	ID       uint64 `json:"id"`
	RegionID uint64 `json:"region_id"`

	Name        string `json:"name"`
	Description string `json:"description"`

	NorthExit uint64 `json:"north_exit,omitempty"`
	SouthExit uint64 `json:"south_exit,omitempty"`
	EastExit  uint64 `json:"east_exit,omitempty"`
	WestExit  uint64 `json:"west_exit,omitempty"`
	UpExit    uint64 `json:"up_exit,omitempty"`
	DownExit  uint64 `json:"down_exit,omitempty"`

	// HasSpecialExits marks rooms with non-cardinal exits (portals,
	// trapdoors) resolved through the SpecialExit side table.
	HasSpecialExits bool `json:"has_special_exits,omitempty"`

	TemperatureModifier int `json:"temperature_modifier"`
	LightModifier       int `json:"light_modifier"`

	IsSafeZone   bool `json:"is_safe_zone"`
	AllowsCombat bool `json:"allows_combat"`
	AllowsMagic  bool `json:"allows_magic"`

	CurrentVolume float64 `json:"current_volume,omitempty"`
	MaxVolume     float64 `json:"max_volume,omitempty"`

	IsActive bool `json:"is_active"`
}

func (r *Room) RowID() uint64      { return r.ID }
func (r *Room) SetRowID(id uint64) { r.ID = id }

// Exit returns the destination room id for a cardinal direction, or zero.
func (r *Room) Exit(d Direction) uint64 {
	switch d {
	case North:
		return r.NorthExit
	case South:
		return r.SouthExit
	case East:
		return r.EastExit
	case West:
		return r.WestExit
	case Up:
		return r.UpExit
	case Down:
		return r.DownExit
	default:
		return 0
	}
}

// SetExit assigns the destination room id for a cardinal direction.
func (r *Room) SetExit(d Direction, roomID uint64) {
	switch d {
	case North:
		r.NorthExit = roomID
	case South:
		r.SouthExit = roomID
	case East:
		r.EastExit = roomID
	case West:
		r.WestExit = roomID
	case Up:
		r.UpExit = roomID
	case Down:
		r.DownExit = roomID
	}
}

// SpecialExit is a named non-cardinal exit (portal, trapdoor) keyed by its
// origin room.
type SpecialExit struct {
	ID       uint64 `json:"id"`
	FromRoom uint64 `json:"from_room"`
	ToRoom   uint64 `json:"to_room"`

	// Direction is the token players use to take the exit (e.g. "portal").
	Direction string `json:"direction"`
	Name      string `json:"name"`

	IsHidden bool `json:"is_hidden,omitempty"`
	IsLocked bool `json:"is_locked,omitempty"`
}

func (e *SpecialExit) RowID() uint64      { return e.ID }
func (e *SpecialExit) SetRowID(id uint64) { e.ID = id }

// ResolveExit maps a direction token to the destination room id. Cardinal
// tokens resolve against the room's exit fields; anything else falls back to
// the special-exit side table when the room has one.
//
// Returns ErrUnknownDirection for a token that is neither cardinal nor a
// special exit name, and ErrNoExit when the direction is understood but the
// room has no exit that way.
func ResolveExit(room *Room, token string, specials []*SpecialExit) (uint64, error) {
	if dir, ok := ParseDirection(token); ok {
		if dest := room.Exit(dir); dest != 0 {
			return dest, nil
		}
		return 0, ErrNoExit
	}

	if room.HasSpecialExits {
		lower := strings.ToLower(token)
		for _, sp := range specials {
			if sp.FromRoom != room.ID || sp.IsLocked {
				continue
			}
			if strings.ToLower(sp.Direction) == lower {
				return sp.ToRoom, nil
			}
		}
		return 0, ErrNoExit
	}

	return 0, ErrUnknownDirection
}

// ValidateDestination rejects movement into a missing or deactivated room.
func ValidateDestination(target *Room) error {
	if target == nil {
		return ErrRoomNotFound
	}
	if !target.IsActive {
		return ErrRoomInactive
	}
	return nil
}
