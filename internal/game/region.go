package game

import (
	"fmt"
	"time"

	"github.com/pixil98/go-errors"
)

// Biome and climate defaults a region applies to its rooms.
const (
	BiomeForest      = "forest"
	BiomeDesert      = "desert"
	BiomeTundra      = "tundra"
	BiomeSwamp       = "swamp"
	BiomeMountain    = "mountain"
	BiomePlains      = "plains"
	BiomeOcean       = "ocean"
	BiomeUnderground = "underground"
	BiomeCity        = "city"
	BiomeDungeon     = "dungeon"
)

const (
	ClimateTropical  = "tropical"
	ClimateTemperate = "temperate"
	ClimateArctic    = "arctic"
	ClimateArid      = "arid"
	ClimateMagical   = "magical"
)

var knownBiomes = map[string]bool{
	BiomeForest: true, BiomeDesert: true, BiomeTundra: true,
	BiomeSwamp: true, BiomeMountain: true, BiomePlains: true,
	BiomeOcean: true, BiomeUnderground: true, BiomeCity: true,
	BiomeDungeon: true,
}

var knownClimates = map[string]bool{
	ClimateTropical: true, ClimateTemperate: true, ClimateArctic: true,
	ClimateArid: true, ClimateMagical: true,
}

// Region groups rooms sharing environmental defaults and tick cadences.
type Region struct {
	ID uint64 `json:"id"`

	Name        string `json:"name"`
	Description string `json:"description"`

	Biome           string `json:"biome"`
	Climate         string `json:"climate"`
	BaseTemperature int    `json:"base_temperature"`
	BaseLightLevel  uint8  `json:"base_light_level"`

	DefaultSpawnRoom uint64 `json:"default_spawn_room"`

	// IsActive gates whether a shepherd drives this region at all.
	IsActive bool `json:"is_active"`

	TickRateFast   time.Duration `json:"tick_rate_fast"`
	TickRateMedium time.Duration `json:"tick_rate_medium"`
}

func (r *Region) RowID() uint64      { return r.ID }
func (r *Region) SetRowID(id uint64) { r.ID = id }

func (r *Region) Validate() error {
	el := errors.NewErrorList()

	if r.Name == "" {
		el.Add(fmt.Errorf("region name is required"))
	}
	if !knownBiomes[r.Biome] {
		el.Add(fmt.Errorf("unknown biome: %s", r.Biome))
	}
	if !knownClimates[r.Climate] {
		el.Add(fmt.Errorf("unknown climate: %s", r.Climate))
	}
	if r.TickRateFast < 0 || r.TickRateMedium < 0 {
		el.Add(fmt.Errorf("tick rates must not be negative"))
	}

	return el.Err()
}
