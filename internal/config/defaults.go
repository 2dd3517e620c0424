package config

import (
	_ "embed"
)

//go:embed defaults/hoppy.yaml
var defaultHoppyYAML []byte

// DefaultHoppyConfig returns the built-in configuration. It mirrors
// defaults/hoppy.yaml and is used when the embedded file cannot be parsed.
func DefaultHoppyConfig() HoppyConfig {
	return HoppyConfig{
		Scene: SceneConfig{
			Width:     320,
			Height:    568,
			Gravity:   -800,
			FixedStep: 1.0 / 60.0,
		},
		Physics: PhysicsConfig{
			ScrollSpeed:      160,
			MaxRiseSpeed:     400,
			FlapImpulse:      250,
			FlapSpin:         1,
			DiveTorque:       -20000,
			DiveDelay:        0.1,
			MinRotation:      -20,
			MaxRotation:      30,
			MaxSpin:          2,
			DeathRotation:    -90,
			ShakeDuration:    0.4,
			ShakeAmplitude:   6,
			FlapFrameSeconds: 0.12,
		},
		Hero: HeroConfig{
			X:      80,
			Y:      360,
			Radius: 12,
			Mass:   1,
			Moment: 1,
		},
		Ground: GroundConfig{
			Tiles:      2,
			TileWidth:  320,
			TileHeight: 90,
		},
		Obstacles: ObstacleConfig{
			SpawnInterval: 1.5,
			SpawnX:        352,
			MinY:          234,
			MaxY:          382,
			Width:         40,
			Gap:           130,
			Length:        420,
			GoalWidth:     8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SpawnReduction:  0.3,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultHoppyYAML
}
