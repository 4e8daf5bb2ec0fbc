package command

import (
	"context"
	"fmt"
	"time"

	"github.com/pixil98/go-service"

	"github.com/dogmud/dogmud/internal/combat"
	"github.com/dogmud/dogmud/internal/engine"
	"github.com/dogmud/dogmud/internal/game"
	"github.com/dogmud/dogmud/internal/messaging"
	"github.com/dogmud/dogmud/internal/player"
	"github.com/dogmud/dogmud/internal/shepherd"
	"github.com/dogmud/dogmud/internal/storage"
)

func BuildWorkers(config interface{}) (service.WorkerList, error) {
	cfg, ok := config.(*Config)
	if !ok {
		return nil, fmt.Errorf("unable to cast config")
	}

	// Create the nats server
	natsServer, err := cfg.Nats.buildNatsServer()
	if err != nil {
		return nil, fmt.Errorf("creating nats server: %w", err)
	}

	// Create the simulation engine
	players := player.NewManager()
	publisher := messaging.NewEventPublisher(natsServer)

	var opts []engine.Opt
	if cfg.World.Seed != 0 {
		opts = append(opts, engine.WithSampler(combatSampler(cfg.World.Seed)))
	}
	eng := engine.New(players, publisher, opts...)

	// Seed the world from region definitions
	defs, err := cfg.World.loadRegionDefs()
	if err != nil {
		return nil, fmt.Errorf("loading region definitions: %w", err)
	}
	if err := eng.SeedWorld(context.Background(), defs); err != nil {
		return nil, fmt.Errorf("seeding world: %w", err)
	}

	// Setup the shepherd driver
	var shepherdOpts []shepherd.ShepherdOpt
	if cfg.TickResolution != "" {
		d, err := time.ParseDuration(cfg.TickResolution)
		if err != nil {
			return nil, fmt.Errorf("parsing tick_resolution: %w", err)
		}
		shepherdOpts = append(shepherdOpts, shepherd.WithResolution(d))
	}
	driver := shepherd.NewShepherd(eng, shepherdOpts...)

	// Create a worker list
	workers := service.WorkerList{
		"nats":     natsServer,
		"shepherd": driver,
	}

	if cfg.World.Snapshot.Path != "" {
		store, err := cfg.World.Snapshot.BuildFileStore()
		if err != nil {
			return nil, fmt.Errorf("creating snapshot store: %w", err)
		}
		workers["snapshot"] = &snapshotWorker{eng: eng, store: store}
	}

	return workers, nil
}

// snapshotWorker exports the world to the snapshot store when the
// service shuts down.
type snapshotWorker struct {
	eng   *engine.Engine
	store storage.Storer[*game.RegionDef]
}

func (w *snapshotWorker) Start(ctx context.Context) error {
	<-ctx.Done()
	return w.eng.ExportRegions(context.Background(), w.store)
}

// combatSampler builds a deterministic roll sampler from a config seed
// so a world can be replayed.
func combatSampler(seed uint64) *combat.GaussianSampler {
	return combat.NewSampler(seed, seed^0x9e3779b97f4a7c15)
}
