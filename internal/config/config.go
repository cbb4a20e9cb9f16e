package config

import (
	"log"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// BodyTuning holds the per-body simulation parameters exposed to the
// tuning file.
type BodyTuning struct {
	Material        string  `toml:"material"`
	Mass            float32 `toml:"mass"`
	Stiffness       float32 `toml:"stiffness"`
	Damping         float32 `toml:"damping"`
	ConnectDistance float32 `toml:"connect_distance"`
	VoxelSize       float32 `toml:"voxel_size"`
	BreakSpeed      float32 `toml:"break_speed"`
	DentDepth       float32 `toml:"dent_depth"`
	DentRadius      float32 `toml:"dent_radius"`
	ImpulseRadius   float32 `toml:"impulse_radius"`
	MoveSpeed       float32 `toml:"move_speed"`
	LinearDamping   float32 `toml:"linear_damping"`
}

type Config struct {
	ThrowSpeed float32    `toml:"throw_speed"`
	Ball       BodyTuning `toml:"ball"`
	Pin        BodyTuning `toml:"pin"`
}

// Default returns the tuning the game ships with: an elastic ball and tin
// pins, sized to regulation-ish bowling dimensions in meters.
func Default() Config {
	return Config{
		ThrowSpeed: 8,
		Ball: BodyTuning{
			Material:        "elastic",
			Mass:            1,
			Stiffness:       120,
			Damping:         4,
			ConnectDistance: 0.12,
			BreakSpeed:      10,
			ImpulseRadius:   0.15,
			MoveSpeed:       8,
			LinearDamping:   0.1,
		},
		Pin: BodyTuning{
			Material:        "tin",
			Mass:            0.5,
			Stiffness:       80,
			Damping:         3,
			ConnectDistance: 0.08,
			VoxelSize:       0.05,
			DentDepth:       0.02,
			DentRadius:      0.08,
			ImpulseRadius:   0.12,
			MoveSpeed:       4,
			LinearDamping:   0.8,
		},
	}
}

// Load reads a TOML tuning file over the defaults. A missing or malformed
// file is logged and the defaults returned, so the game always starts.
func Load(path string) Config {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("config: %v, using defaults", err)
		return cfg
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		log.Printf("config: parsing %s: %v, using defaults", path, err)
		return Default()
	}
	return cfg
}
