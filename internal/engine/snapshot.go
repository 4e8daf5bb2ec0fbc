package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/dogmud/dogmud/internal/game"
	"github.com/dogmud/dogmud/internal/storage"
)

// ExportRegions writes each active region back to an asset store as a
// seed definition: environmental defaults straight off the region
// record, the grid size recovered from the room count, and the spawn
// list rebuilt from a census of the living NPCs. Reseeding from the
// exported set produces an equivalent world.
func (e *Engine) ExportRegions(ctx context.Context, store storage.Storer[*game.RegionDef]) error {
	regions := e.regions.Select(func(r *game.Region) bool { return r.IsActive })
	sort.Slice(regions, func(i, j int) bool { return regions[i].ID < regions[j].ID })

	for _, region := range regions {
		def := e.regionDef(region)
		key := assetKey(region.Name)
		if err := store.Save(key, def); err != nil {
			return fmt.Errorf("exporting region %s: %w", region.Name, err)
		}
		slog.InfoContext(ctx, "region exported", "region", key, "spawns", len(def.Spawns))
	}

	return nil
}

func (e *Engine) regionDef(region *game.Region) *game.RegionDef {
	rooms := e.rooms.Select(func(r *game.Room) bool { return r.RegionID == region.ID })

	def := &game.RegionDef{
		Name:            region.Name,
		Description:     region.Description,
		Biome:           region.Biome,
		Climate:         region.Climate,
		BaseTemperature: region.BaseTemperature,
		BaseLightLevel:  region.BaseLightLevel,
		GridSize:        int(math.Round(math.Sqrt(float64(len(rooms))))),
	}
	if region.TickRateFast > 0 {
		def.TickRateFast = region.TickRateFast.String()
	}
	if region.TickRateMedium > 0 {
		def.TickRateMedium = region.TickRateMedium.String()
	}

	inRegion := make(map[uint64]bool, len(rooms))
	for _, r := range rooms {
		inRegion[r.ID] = true
	}

	// Group living NPCs by name. The first of each name contributes the
	// stat block; the rest only bump the count.
	spawns := map[string]*game.NPCSpawn{}
	var names []string
	npcs := e.entities.Select(func(en *game.Entity) bool {
		return en.Type == game.EntityNPC && en.IsAlive && inRegion[en.RoomID]
	})
	for _, ent := range npcs {
		if s, ok := spawns[ent.Name]; ok {
			s.Count++
			continue
		}
		spawn := &game.NPCSpawn{
			Name:        ent.Name,
			Description: ent.Description,
			Count:       1,
			MaxHP:       ent.MaxHP,
			MaxStamina:  ent.MaxStamina,
			Dexterity:   ent.Dexterity,
			Strength:    ent.Strength,
			Vitality:    ent.Vitality,
			Perception:  ent.Perception,
			Willpower:   ent.Willpower,
		}
		entID := ent.ID
		if b, ok := e.behaviors.Find(func(b *game.NPCBehavior) bool { return b.EntityID == entID }); ok {
			spawn.AI = b.AI.String()
			spawn.Movement = b.Movement.String()
		}
		spawns[ent.Name] = spawn
		names = append(names, ent.Name)
	}

	sort.Strings(names)
	for _, n := range names {
		def.Spawns = append(def.Spawns, *spawns[n])
	}

	return def
}

// assetKey slugs a region name into a store id, which doubles as the
// asset filename.
func assetKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
