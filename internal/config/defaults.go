package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the hardcoded Arkanoid configuration.
// It matches defaults/arkanoid.yaml and is the last fallback of the loader.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Field: ArkanoidField{
			Width:  800,
			Height: 600,
		},
		Paddle: ArkanoidPaddle{
			Width:        100,
			Height:       20,
			Speed:        500,
			BottomOffset: 30,
			GrowFactor:   1.2,
			ShrinkFactor: 0.8,
		},
		Ball: ArkanoidBall{
			Radius:    10,
			LaunchVX:  200,
			LaunchVY:  -200,
			SpeedUp:   1.2,
			SpeedDown: 0.8,
		},
		Blocks: ArkanoidBlocks{
			Columns:            10,
			MinRows:            4,
			MaxRows:            10,
			CellW:              80,
			CellH:              30,
			Width:              78,
			Height:             28,
			TopOffset:          0,
			DestructibleWeight: 60,
			SpeedUpWeight:      74,
		},
		Bonus: ArkanoidBonus{
			SpawnChance: 37,
			Size:        20,
			FallSpeed:   100,
		},
		Gameplay: ArkanoidGameplay{
			Lives:               3,
			PointsPerHit:        1,
			StickyReleaseFrames: 8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "arkanoid":
		return defaultArkanoidYAML
	default:
		return nil
	}
}
