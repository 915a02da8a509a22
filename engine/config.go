package engine

import (
	"time"

	"github.com/lixenwraith/orbit-merge/parameter"
	"github.com/lixenwraith/orbit-merge/physics"
	"github.com/lixenwraith/orbit-merge/system"
)

// LaunchConfig controls how a preview becomes a world body
type LaunchConfig struct {
	Speed       float64          `toml:"speed" env:"SPEED"`
	RefillDelay time.Duration    `toml:"refill_delay" env:"REFILL_DELAY"`
	Material    physics.Material `toml:"material" envPrefix:"MATERIAL_"`
}

func DefaultLaunchConfig() LaunchConfig {
	return LaunchConfig{
		Speed:       parameter.LaunchSpeed,
		RefillDelay: parameter.RefillDelay,
		Material:    physics.DefaultMaterial(),
	}
}

// Config holds every tunable of a session
type Config struct {
	TickInterval time.Duration `toml:"tick_interval" env:"TICK_INTERVAL"`
	// Seed 0 picks a time-based seed
	Seed uint64 `toml:"seed" env:"SEED"`

	Arena      system.ArenaConfig      `toml:"arena" envPrefix:"ARENA_"`
	Gravity    system.GravityConfig    `toml:"gravity" envPrefix:"GRAVITY_"`
	Stabilizer system.StabilizerConfig `toml:"stabilizer" envPrefix:"STABILIZER_"`
	Boundary   system.BoundaryConfig   `toml:"boundary" envPrefix:"BOUNDARY_"`
	Queue      system.QueueConfig      `toml:"queue" envPrefix:"QUEUE_"`
	Launch     LaunchConfig            `toml:"launch" envPrefix:"LAUNCH_"`
	Merge      system.MergeConfig      `toml:"merge" envPrefix:"MERGE_"`
	Difficulty DifficultyConfig        `toml:"difficulty" envPrefix:"DIFFICULTY_"`
}

// DefaultConfig returns the tuned game defaults
func DefaultConfig() Config {
	return Config{
		TickInterval: parameter.TickInterval,
		Arena:        system.DefaultArenaConfig(),
		Gravity:      system.DefaultGravityConfig(),
		Stabilizer:   system.DefaultStabilizerConfig(),
		Boundary:     system.DefaultBoundaryConfig(),
		Queue:        system.DefaultQueueConfig(),
		Launch:       DefaultLaunchConfig(),
		Merge:        system.DefaultMergeConfig(),
		Difficulty:   DefaultDifficultyConfig(),
	}
}

// stepDelta converts the tick interval to the physics step in milliseconds
func (c Config) stepDelta() float64 {
	return float64(c.TickInterval) / float64(time.Millisecond)
}
