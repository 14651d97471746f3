// Package config loads game configuration from YAML files with embedded defaults.
package config

import (
	"errors"
	"fmt"
)

// ArkanoidConfig holds all tunables for the brick breaker.
// World units are pixels of the play field; speeds are pixels per second.
type ArkanoidConfig struct {
	Field      ArkanoidField    `yaml:"field"`
	Paddle     ArkanoidPaddle   `yaml:"paddle"`
	Ball       ArkanoidBall     `yaml:"ball"`
	Blocks     ArkanoidBlocks   `yaml:"blocks"`
	Bonus      ArkanoidBonus    `yaml:"bonus"`
	Gameplay   ArkanoidGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArkanoidField is the size of the play field.
type ArkanoidField struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ArkanoidPaddle configures the paddle and the size bonuses.
type ArkanoidPaddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`         // Keyboard movement, px/s
	BottomOffset float64 `yaml:"bottom_offset"` // Distance from paddle top to field bottom
	GrowFactor   float64 `yaml:"grow_factor"`   // Size-up multiplier
	ShrinkFactor float64 `yaml:"shrink_factor"` // Size-down multiplier
}

// ArkanoidBall configures balls and the speed bonuses.
type ArkanoidBall struct {
	Radius    float64 `yaml:"radius"`
	LaunchVX  float64 `yaml:"launch_vx"`
	LaunchVY  float64 `yaml:"launch_vy"`
	SpeedUp   float64 `yaml:"speed_up"`   // Speed-up bonus and SpeedUp block multiplier
	SpeedDown float64 `yaml:"speed_down"` // Speed-down bonus multiplier
}

// ArkanoidBlocks configures the block grid and the generator weights.
type ArkanoidBlocks struct {
	Columns   int     `yaml:"columns"`
	MinRows   int     `yaml:"min_rows"`
	MaxRows   int     `yaml:"max_rows"`
	CellW     float64 `yaml:"cell_w"` // Grid pitch
	CellH     float64 `yaml:"cell_h"`
	Width     float64 `yaml:"width"` // Block size inside a cell
	Height    float64 `yaml:"height"`
	TopOffset float64 `yaml:"top_offset"`

	// Cumulative weights out of 100. Rolls below DestructibleWeight give a
	// Destructible block, below SpeedUpWeight a SpeedUp block, the rest
	// Indestructible. Breakable-only cells use DestructibleWeight alone.
	DestructibleWeight int `yaml:"destructible_weight"`
	SpeedUpWeight      int `yaml:"speed_up_weight"`
}

// ArkanoidBonus configures falling bonuses.
type ArkanoidBonus struct {
	SpawnChance int     `yaml:"spawn_chance"` // Percent per destroyed block
	Size        float64 `yaml:"size"`
	FallSpeed   float64 `yaml:"fall_speed"`
}

// ArkanoidGameplay holds round rules.
type ArkanoidGameplay struct {
	Lives               int `yaml:"lives"`
	PointsPerHit        int `yaml:"points_per_hit"`
	StickyReleaseFrames int `yaml:"sticky_release_frames"`
}

// Validate reports configuration values the simulation cannot run with.
func (c ArkanoidConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}

	positive("field.width", c.Field.Width)
	positive("field.height", c.Field.Height)
	positive("paddle.width", c.Paddle.Width)
	positive("paddle.height", c.Paddle.Height)
	positive("ball.radius", c.Ball.Radius)
	positive("blocks.cell_w", c.Blocks.CellW)
	positive("blocks.cell_h", c.Blocks.CellH)
	positive("blocks.width", c.Blocks.Width)
	positive("blocks.height", c.Blocks.Height)
	positive("bonus.size", c.Bonus.Size)

	if c.Paddle.Width > c.Field.Width {
		errs = append(errs, fmt.Errorf("paddle.width %g exceeds field.width %g", c.Paddle.Width, c.Field.Width))
	}
	if c.Blocks.Columns <= 0 {
		errs = append(errs, fmt.Errorf("blocks.columns must be positive, got %d", c.Blocks.Columns))
	} else if float64(c.Blocks.Columns)*c.Blocks.CellW > c.Field.Width {
		errs = append(errs, fmt.Errorf("block grid is wider than the field"))
	}
	if c.Blocks.MinRows <= 0 || c.Blocks.MaxRows < c.Blocks.MinRows {
		errs = append(errs, fmt.Errorf("blocks.min_rows/max_rows must satisfy 0 < min <= max, got %d/%d",
			c.Blocks.MinRows, c.Blocks.MaxRows))
	}
	if c.Blocks.DestructibleWeight < 0 || c.Blocks.SpeedUpWeight < c.Blocks.DestructibleWeight ||
		c.Blocks.SpeedUpWeight > 100 {
		errs = append(errs, fmt.Errorf("block weights must be cumulative within [0, 100], got %d/%d",
			c.Blocks.DestructibleWeight, c.Blocks.SpeedUpWeight))
	}
	if c.Bonus.SpawnChance < 0 || c.Bonus.SpawnChance > 100 {
		errs = append(errs, fmt.Errorf("bonus.spawn_chance must be a percentage, got %d", c.Bonus.SpawnChance))
	}
	if c.Gameplay.Lives <= 0 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be positive, got %d", c.Gameplay.Lives))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid arkanoid config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to launch speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists every named difficulty preset.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}

// ParsePreset converts a CLI value to a preset. The empty string means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	if s == "" {
		return "", nil
	}
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
