// Package config layers defaults, an optional TOML file and environment overrides
package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/orbit-merge/audio"
	"github.com/lixenwraith/orbit-merge/engine"
	"github.com/lixenwraith/orbit-merge/parameter"
	"github.com/lixenwraith/orbit-merge/physics"
)

// PhysicsConfig selects and tunes the rigid-body backend
type PhysicsConfig struct {
	Backend string               `toml:"backend" env:"BACKEND"`
	Solver  physics.SolverConfig `toml:"solver" envPrefix:"SOLVER_"`
}

// Config is the complete runtime configuration
// Session settings are inlined so the file reads [gravity], [merge] and so on
type Config struct {
	engine.Config

	Physics PhysicsConfig `toml:"physics" envPrefix:"PHYSICS_"`
	Audio   audio.Config  `toml:"audio" envPrefix:"AUDIO_"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Config: engine.DefaultConfig(),
		Physics: PhysicsConfig{
			Backend: parameter.BackendCircle,
			Solver:  physics.DefaultSolverConfig(),
		},
		Audio: audio.DefaultConfig(),
	}
}

// Load builds the configuration from defaults, the file at path if not empty, then the process environment
func Load(path string) (Config, error) {
	return load(path, nil)
}

// load takes an explicit environment for tests; nil reads the process environment
func load(path string, environ map[string]string) (Config, error) {
	cfg := Default()

	if path != "" {
		md, err := toml.DecodeFile(path, &cfg)
		if err != nil {
			return cfg, fmt.Errorf("decode config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return cfg, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	}

	opts := env.Options{Prefix: parameter.EnvPrefix, Environment: environ}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints the game relies on
func (c Config) Validate() error {
	switch {
	case c.TickInterval <= 0:
		return fmt.Errorf("tick_interval must be positive, got %s", c.TickInterval)
	case c.Arena.BowlRadius <= 0 || c.Arena.OrbitRadius <= c.Arena.BowlRadius:
		return fmt.Errorf("arena: need 0 < bowl_radius < orbit_radius, got %g and %g", c.Arena.BowlRadius, c.Arena.OrbitRadius)
	case c.Boundary.WarningRadius <= 0 || c.Boundary.GameOverRadius <= c.Boundary.WarningRadius:
		return fmt.Errorf("boundary: need 0 < warning_radius < game_over_radius, got %g and %g", c.Boundary.WarningRadius, c.Boundary.GameOverRadius)
	case c.Boundary.GameOverSpeedGate <= 0 || c.Boundary.WarningSpeedGate <= 0:
		return fmt.Errorf("boundary: speed gates must be positive")
	case c.Gravity.DeadZone < 0 || c.Gravity.NearRadius < c.Gravity.DeadZone:
		return fmt.Errorf("gravity: need 0 <= dead_zone <= near_radius, got %g and %g", c.Gravity.DeadZone, c.Gravity.NearRadius)
	case c.Stabilizer.Damping <= 0 || c.Stabilizer.Damping >= 1:
		return fmt.Errorf("stabilizer: damping must be in (0,1), got %g", c.Stabilizer.Damping)
	case c.Stabilizer.StopSpeed < 0 || c.Stabilizer.StopSpeed > c.Stabilizer.SpeedThreshold:
		return fmt.Errorf("stabilizer: need 0 <= stop_speed <= speed_threshold, got %g and %g", c.Stabilizer.StopSpeed, c.Stabilizer.SpeedThreshold)
	case c.Queue.Lookahead < 1:
		return fmt.Errorf("queue: lookahead must be at least 1, got %d", c.Queue.Lookahead)
	case c.Queue.SpawnMaxRank < 0 || c.Queue.SpawnMaxRank >= parameter.MaxRank:
		return fmt.Errorf("queue: spawn_max_rank must be in [0,%d), got %d", parameter.MaxRank, c.Queue.SpawnMaxRank)
	case c.Launch.Speed <= 0:
		return fmt.Errorf("launch: speed must be positive, got %g", c.Launch.Speed)
	case c.Launch.RefillDelay < 0:
		return fmt.Errorf("launch: refill_delay must not be negative, got %s", c.Launch.RefillDelay)
	case c.Merge.ScoreUnit <= 0:
		return fmt.Errorf("merge: score_unit must be positive, got %d", c.Merge.ScoreUnit)
	case c.Merge.SpawnScale < 1:
		return fmt.Errorf("merge: spawn_scale must be at least 1, got %g", c.Merge.SpawnScale)
	case c.Merge.ShrinkFactor <= 0 || c.Merge.ShrinkFactor >= 1:
		return fmt.Errorf("merge: shrink_factor must be in (0,1), got %g", c.Merge.ShrinkFactor)
	case c.Difficulty.ScoreStep <= 0 || c.Difficulty.MaxTier < 0:
		return fmt.Errorf("difficulty: need score_step > 0 and max_tier >= 0")
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("audio: volume must be in [0,1], got %g", c.Audio.Volume)
	case c.Audio.Enabled && c.Audio.SampleRate <= 0:
		return fmt.Errorf("audio: sample_rate must be positive, got %d", c.Audio.SampleRate)
	}

	if err := validateMaterial("launch.material", c.Launch.Material); err != nil {
		return err
	}
	if err := validateMaterial("merge.material", c.Merge.Material); err != nil {
		return err
	}

	switch c.Physics.Backend {
	case parameter.BackendCircle, parameter.BackendChipmunk:
	default:
		return fmt.Errorf("physics: unknown backend %q", c.Physics.Backend)
	}
	return nil
}

func validateMaterial(name string, m physics.Material) error {
	if m.Density <= 0 {
		return fmt.Errorf("%s: density must be positive, got %g", name, m.Density)
	}
	if m.FrictionAir < 0 || m.FrictionAir >= 1 {
		return fmt.Errorf("%s: friction_air must be in [0,1), got %g", name, m.FrictionAir)
	}
	if m.Restitution < 0 || m.Friction < 0 {
		return fmt.Errorf("%s: restitution and friction must not be negative", name)
	}
	return nil
}
