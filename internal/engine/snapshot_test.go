package engine

import (
	"context"
	"testing"

	"github.com/pixil98/go-testutil"

	"github.com/dogmud/dogmud/internal/game"
	"github.com/dogmud/dogmud/internal/storage"
)

func TestEngine_ExportRegions(t *testing.T) {
	sessions := &stubSessions{identities: map[string]ActorIdentity{}}
	eng := New(sessions, &stubPublisher{}, WithSampler(&stubSampler{rolls: []float64{50}}))

	defs := map[string]*game.RegionDef{
		"old-crypt": {
			Name:           "Old Crypt",
			Description:    "Dust and bones.",
			Biome:          game.BiomeDungeon,
			Climate:        game.ClimateMagical,
			BaseLightLevel: 10,
			GridSize:       3,
			TickRateFast:   "2s",
			Spawns: []game.NPCSpawn{
				{
					Name: "skeleton", Count: 3,
					AI: "aggressive", Movement: "wander",
					MaxHP: 20, MaxStamina: 10,
					Strength: 30, Dexterity: 25,
				},
				{
					Name: "rat", Count: 2,
					AI: "timid", Movement: "wander",
					MaxHP: 5,
				},
			},
		},
	}
	if err := eng.SeedWorld(context.Background(), defs); err != nil {
		t.Fatalf("seeding: %v", err)
	}

	dir := t.TempDir()
	store, err := storage.NewFileStore[*game.RegionDef](dir)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	if err := eng.ExportRegions(context.Background(), store); err != nil {
		t.Fatalf("exporting: %v", err)
	}

	// The exported assets must load and validate like any other seed set.
	reloaded, err := storage.NewFileStore[*game.RegionDef](dir)
	if err != nil {
		t.Fatalf("reloading store: %v", err)
	}

	def := reloaded.Get("old-crypt")
	if def == nil {
		t.Fatal("exported region not found in store")
	}

	testutil.AssertEqual(t, "name", def.Name, "Old Crypt")
	testutil.AssertEqual(t, "biome", def.Biome, game.BiomeDungeon)
	testutil.AssertEqual(t, "climate", def.Climate, game.ClimateMagical)
	testutil.AssertEqual(t, "light", def.BaseLightLevel, uint8(10))
	testutil.AssertEqual(t, "grid", def.GridSize, 3)
	testutil.AssertEqual(t, "fast rate", def.TickRateFast, "2s")

	// Census grouped by name, sorted.
	testutil.AssertEqual(t, "spawn kinds", len(def.Spawns), 2)
	testutil.AssertEqual(t, "rat name", def.Spawns[0].Name, "rat")
	testutil.AssertEqual(t, "rat count", def.Spawns[0].Count, 2)
	testutil.AssertEqual(t, "skeleton name", def.Spawns[1].Name, "skeleton")
	testutil.AssertEqual(t, "skeleton count", def.Spawns[1].Count, 3)
	testutil.AssertEqual(t, "skeleton ai", def.Spawns[1].AI, "aggressive")
	testutil.AssertEqual(t, "skeleton movement", def.Spawns[1].Movement, "wander")
	testutil.AssertEqual(t, "skeleton hp", def.Spawns[1].MaxHP, 20)
	testutil.AssertEqual(t, "skeleton strength", def.Spawns[1].Strength, uint8(30))
}

func TestEngine_ExportRegions_SkipsDead(t *testing.T) {
	w := newTestWorld(t, &stubSampler{rolls: []float64{50}})

	npcID, err := w.eng.SpawnNPC(&game.Entity{
		Name: "bandit", RoomID: w.roomA,
		HP: 10, MaxHP: 10,
	}, &game.NPCBehavior{AI: game.AIAggressive})
	if err != nil {
		t.Fatalf("spawning npc: %v", err)
	}

	npc, _ := w.eng.Entity(npcID)
	dead := *npc
	dead.ApplyDamage(100)
	if err := w.eng.entities.Update(&dead); err != nil {
		t.Fatalf("killing npc: %v", err)
	}

	dir := t.TempDir()
	store, err := storage.NewFileStore[*game.RegionDef](dir)
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	if err := w.eng.ExportRegions(context.Background(), store); err != nil {
		t.Fatalf("exporting: %v", err)
	}

	def := store.Get("test-vale")
	if def == nil {
		t.Fatal("exported region not found in store")
	}
	testutil.AssertEqual(t, "spawns", len(def.Spawns), 0)
}
