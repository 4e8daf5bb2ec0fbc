package command

import (
	"fmt"

	"github.com/dogmud/dogmud/internal/game"
	"github.com/pixil98/go-errors"
)

type WorldConfig struct {
	Regions AssetConfig[*game.RegionDef] `json:"regions"`
	Seed    uint64                       `json:"seed,omitempty"`

	// Snapshot, when set, is where the world is exported on shutdown.
	Snapshot AssetConfig[*game.RegionDef] `json:"snapshot,omitempty"`
}

func (c *WorldConfig) validate() error {
	el := errors.NewErrorList()

	el.Add(c.Regions.Validate("regions"))
	if c.Snapshot.Path != "" {
		el.Add(c.Snapshot.Validate("snapshot"))
	}

	return el.Err()
}

func (c *WorldConfig) loadRegionDefs() (map[string]*game.RegionDef, error) {
	store, err := c.Regions.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating region store: %w", err)
	}

	return store.GetAll(), nil
}
