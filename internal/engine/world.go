package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dogmud/dogmud/internal/game"
	"github.com/dogmud/dogmud/internal/storage"
)

// MaxGridSize bounds CreateRoomGrid.
const MaxGridSize = 20

// CreateRegion validates and stores a region.
func (e *Engine) CreateRegion(region *game.Region) (uint64, error) {
	if err := region.Validate(); err != nil {
		return 0, fmt.Errorf("validating region: %w", err)
	}
	return e.regions.Insert(region), nil
}

// CreateRoom stores a room in the given region.
func (e *Engine) CreateRoom(room *game.Room) (uint64, error) {
	if _, ok := e.regions.Get(room.RegionID); !ok {
		return 0, fmt.Errorf("region %d: %w", room.RegionID, storage.ErrNotFound)
	}
	return e.rooms.Insert(room), nil
}

// CreateSpecialExit adds a named non-cardinal exit and flags its origin.
func (e *Engine) CreateSpecialExit(exit *game.SpecialExit) (uint64, error) {
	from, ok := e.rooms.Get(exit.FromRoom)
	if !ok {
		return 0, game.ErrRoomNotFound
	}
	if _, ok := e.rooms.Get(exit.ToRoom); !ok {
		return 0, game.ErrRoomNotFound
	}

	id := e.exits.Insert(exit)

	if !from.HasSpecialExits {
		flagged := *from
		flagged.HasSpecialExits = true
		if err := e.rooms.Update(&flagged); err != nil {
			return 0, fmt.Errorf("flagging special exits: %w", err)
		}
	}
	return id, nil
}

// CreateRoomGrid seeds a size-by-size grid of interlinked rooms in a
// region and returns their ids. Rooms are created first, then a second
// pass links adjacent rooms with cardinal exits.
func (e *Engine) CreateRoomGrid(ctx context.Context, regionID uint64, size int) ([]uint64, error) {
	if size < 1 || size > MaxGridSize {
		return nil, fmt.Errorf("grid size must be between 1 and %d", MaxGridSize)
	}
	if _, ok := e.regions.Get(regionID); !ok {
		return nil, fmt.Errorf("region %d: %w", regionID, storage.ErrNotFound)
	}

	ids := make(map[[2]int]uint64, size*size)
	var out []uint64

	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			room := &game.Room{
				RegionID:      regionID,
				Name:          fmt.Sprintf("Room [%d, %d]", x, y),
				Description:   fmt.Sprintf("A stone chamber at coordinates (%d, %d).", x, y),
				LightModifier: 50,
				AllowsCombat:  true,
				AllowsMagic:   true,
				IsActive:      true,
			}
			id := e.rooms.Insert(room)
			ids[[2]int{x, y}] = id
			out = append(out, id)
		}
	}

	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			room, _ := e.rooms.Get(ids[[2]int{x, y}])
			linked := *room

			if n, ok := ids[[2]int{x, y + 1}]; ok {
				linked.NorthExit = n
			}
			if s, ok := ids[[2]int{x, y - 1}]; ok {
				linked.SouthExit = s
			}
			if east, ok := ids[[2]int{x + 1, y}]; ok {
				linked.EastExit = east
			}
			if w, ok := ids[[2]int{x - 1, y}]; ok {
				linked.WestExit = w
			}

			if err := e.rooms.Update(&linked); err != nil {
				return nil, fmt.Errorf("linking room grid: %w", err)
			}
		}
	}

	slog.InfoContext(ctx, "room grid created", "region", regionID, "rooms", len(out))
	return out, nil
}

// SpawnEntity places an entity into the world, normalizing its pools and
// stamping creation time. The destination room must exist and be active.
func (e *Engine) SpawnEntity(ent *game.Entity) (uint64, error) {
	room, _ := e.rooms.Get(ent.RoomID)
	if err := game.ValidateDestination(room); err != nil {
		return 0, err
	}

	if ent.HP > ent.MaxHP {
		ent.HP = ent.MaxHP
	}
	if ent.Stamina > ent.MaxStamina {
		ent.Stamina = ent.MaxStamina
	}
	if ent.Mana > ent.MaxMana {
		ent.Mana = ent.MaxMana
	}
	ent.IsAlive = ent.HP > 0
	ent.IsActive = true
	ent.CreatedAt = e.now()
	ent.LastActionAt = ent.CreatedAt

	return e.entities.Insert(ent), nil
}

// SpawnNPC places an NPC entity with its behavior profile.
func (e *Engine) SpawnNPC(ent *game.Entity, behavior *game.NPCBehavior) (uint64, error) {
	ent.Type = game.EntityNPC
	id, err := e.SpawnEntity(ent)
	if err != nil {
		return 0, err
	}

	behavior.EntityID = id
	if behavior.HomeRoom == 0 {
		behavior.HomeRoom = ent.RoomID
	}
	e.behaviors.Insert(behavior)
	return id, nil
}

// SpawnItem places an item entity with its item data.
func (e *Engine) SpawnItem(ent *game.Entity, data *game.ItemData) (uint64, error) {
	if ent.Type != game.EntityContainer {
		ent.Type = game.EntityItem
	}
	id, err := e.SpawnEntity(ent)
	if err != nil {
		return 0, err
	}

	data.EntityID = id
	e.items.Insert(data)
	return id, nil
}

// DeactivatePlayer soft-deactivates a player entity; player records are
// never physically deleted.
func (e *Engine) DeactivatePlayer(entityID uint64) error {
	ent, ok := e.entities.Get(entityID)
	if !ok {
		return ErrCharacterNotFound
	}
	deactivated := *ent
	deactivated.IsActive = false
	return e.entities.Update(&deactivated)
}
