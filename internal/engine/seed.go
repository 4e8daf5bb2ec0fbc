package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/dogmud/dogmud/internal/game"
)

// SeedWorld builds the runtime world from region definitions: one room
// grid per region, NPCs scattered through it. Definitions are applied
// in key order so seeding is deterministic for a given asset set.
func (e *Engine) SeedWorld(ctx context.Context, defs map[string]*game.RegionDef) error {
	keys := make([]string, 0, len(defs))
	for k := range defs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if err := e.seedRegion(ctx, key, defs[key]); err != nil {
			return fmt.Errorf("seeding region %s: %w", key, err)
		}
	}

	return nil
}

func (e *Engine) seedRegion(ctx context.Context, key string, def *game.RegionDef) error {
	region := def.Region()
	regionID, err := e.CreateRegion(region)
	if err != nil {
		return err
	}

	roomIDs, err := e.CreateRoomGrid(ctx, regionID, def.GridSize)
	if err != nil {
		return err
	}

	spawn := *region
	spawn.DefaultSpawnRoom = roomIDs[0]
	if err := e.regions.Update(&spawn); err != nil {
		return fmt.Errorf("setting spawn room: %w", err)
	}

	for i, s := range def.Spawns {
		if err := e.seedSpawn(roomIDs, &s); err != nil {
			return fmt.Errorf("spawn %d (%s): %w", i, s.Name, err)
		}
	}

	slog.InfoContext(ctx, "region seeded",
		"region", key, "rooms", len(roomIDs), "spawns", len(def.Spawns))
	return nil
}

func (e *Engine) seedSpawn(roomIDs []uint64, s *game.NPCSpawn) error {
	ai, err := game.ParseAIType(s.AI)
	if err != nil {
		return err
	}
	movement, err := game.ParseMovementType(s.Movement)
	if err != nil {
		return err
	}

	for i := 0; i < s.Count; i++ {
		roomID := roomIDs[e.sampler.IntN(len(roomIDs))]

		ent := &game.Entity{
			Name:        s.Name,
			Description: s.Description,
			RoomID:      roomID,
			HP:          s.MaxHP,
			MaxHP:       s.MaxHP,
			Stamina:     s.MaxStamina,
			MaxStamina:  s.MaxStamina,
			Dexterity:   s.Dexterity,
			Strength:    s.Strength,
			Vitality:    s.Vitality,
			Perception:  s.Perception,
			Willpower:   s.Willpower,
		}
		behavior := &game.NPCBehavior{
			AI:          ai,
			Movement:    movement,
			AggroRange:  1,
			WanderRange: 2,
		}

		if _, err := e.SpawnNPC(ent, behavior); err != nil {
			return err
		}
	}

	return nil
}
