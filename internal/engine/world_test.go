package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/dogmud/dogmud/internal/game"
)

func TestEngine_CreateRoomGrid(t *testing.T) {
	w := newTestWorld(t, &stubSampler{rolls: []float64{50}})

	ids, err := w.eng.CreateRoomGrid(context.Background(), w.regionID, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "room count", len(ids), 9)

	// Every room is active, belongs to the region, and interior rooms
	// have all four horizontal exits wired both ways.
	linked := 0
	for _, id := range ids {
		room, ok := w.eng.Room(id)
		if !ok {
			t.Fatalf("room %d missing", id)
		}
		testutil.AssertEqual(t, "region", room.RegionID, w.regionID)
		testutil.AssertEqual(t, "active", room.IsActive, true)

		for _, d := range []game.Direction{game.North, game.South, game.East, game.West} {
			dest := room.Exit(d)
			if dest == 0 {
				continue
			}
			linked++

			back, ok := w.eng.Room(dest)
			if !ok {
				t.Fatalf("exit %s of room %d points at missing room %d", d, id, dest)
			}
			opposite := map[game.Direction]game.Direction{
				game.North: game.South, game.South: game.North,
				game.East: game.West, game.West: game.East,
			}[d]
			testutil.AssertEqual(t, "return exit", back.Exit(opposite), id)
		}
	}

	// A 3x3 grid has 12 bidirectional edges, so 24 directed exits.
	testutil.AssertEqual(t, "directed exits", linked, 24)
}

func TestEngine_CreateRoomGrid_Bounds(t *testing.T) {
	w := newTestWorld(t, &stubSampler{rolls: []float64{50}})

	tests := map[string]struct {
		size int
	}{
		"zero":      {size: 0},
		"negative":  {size: -1},
		"oversized": {size: MaxGridSize + 1},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := w.eng.CreateRoomGrid(context.Background(), w.regionID, tt.size); err == nil {
				t.Error("expected size error")
			}
		})
	}
}

func TestEngine_SpawnEntity(t *testing.T) {
	w := newTestWorld(t, &stubSampler{rolls: []float64{50}})

	id, err := w.eng.SpawnEntity(&game.Entity{
		Type: game.EntityPlayer, Name: "Newcomer", RoomID: w.roomA,
		HP: 500, MaxHP: 100,
		Stamina: 80, MaxStamina: 50,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ent, _ := w.eng.Entity(id)
	testutil.AssertEqual(t, "hp normalized", ent.HP, 100)
	testutil.AssertEqual(t, "stamina normalized", ent.Stamina, 50)
	testutil.AssertEqual(t, "alive", ent.IsAlive, true)
	testutil.AssertEqual(t, "active", ent.IsActive, true)
}

func TestEngine_SpawnEntity_BadRoom(t *testing.T) {
	w := newTestWorld(t, &stubSampler{rolls: []float64{50}})

	_, err := w.eng.SpawnEntity(&game.Entity{Name: "Lost", RoomID: 9999, HP: 1, MaxHP: 1})
	if !errors.Is(err, game.ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}

func TestEngine_SeedWorld(t *testing.T) {
	w := newTestWorld(t, &stubSampler{rolls: []float64{50}})

	defs := map[string]*game.RegionDef{
		"crypt": {
			Name:     "The Crypt",
			Biome:    game.BiomeDungeon,
			Climate:  game.ClimateMagical,
			GridSize: 2,
			Spawns: []game.NPCSpawn{
				{
					Name: "Skeleton", Count: 3,
					AI: "aggressive", Movement: "wander",
					MaxHP: 20, MaxStamina: 20,
					Strength: 30, Dexterity: 30,
				},
			},
		},
	}

	if err := w.eng.SeedWorld(context.Background(), defs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	region, ok := w.eng.regions.Find(func(r *game.Region) bool { return r.Name == "The Crypt" })
	if !ok {
		t.Fatal("expected seeded region")
	}
	if region.DefaultSpawnRoom == 0 {
		t.Error("expected a default spawn room")
	}

	rooms := w.eng.rooms.Select(func(r *game.Room) bool { return r.RegionID == region.ID })
	testutil.AssertEqual(t, "rooms", len(rooms), 4)

	skeletons := w.eng.entities.Select(func(ent *game.Entity) bool {
		return ent.Type == game.EntityNPC && ent.Name == "Skeleton"
	})
	testutil.AssertEqual(t, "skeletons", len(skeletons), 3)

	for _, s := range skeletons {
		behavior, ok := w.eng.behaviors.Find(func(b *game.NPCBehavior) bool { return b.EntityID == s.ID })
		if !ok {
			t.Fatalf("skeleton %d has no behavior", s.ID)
		}
		testutil.AssertEqual(t, "ai", behavior.AI, game.AIAggressive)
		testutil.AssertEqual(t, "home room", behavior.HomeRoom, s.RoomID)
	}
}

func TestEngine_SeedWorld_BadSpawn(t *testing.T) {
	w := newTestWorld(t, &stubSampler{rolls: []float64{50}})

	defs := map[string]*game.RegionDef{
		"broken": {
			Name:     "Broken",
			Biome:    game.BiomePlains,
			Climate:  game.ClimateTemperate,
			GridSize: 1,
			Spawns: []game.NPCSpawn{
				{Name: "Glitch", Count: 1, AI: "confused", Movement: "wander", MaxHP: 1},
			},
		},
	}

	if err := w.eng.SeedWorld(context.Background(), defs); err == nil {
		t.Error("expected unknown ai type error")
	}
}
