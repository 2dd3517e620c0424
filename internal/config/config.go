// Package config provides YAML-based game configuration loading and
// difficulty management for the hoppy scene.
package config

// HoppyConfig contains all tuning and layout for the hoppy scene.
// Lengths are scene units (the scene is laid out y-up, origin bottom-left),
// times are seconds, angles are degrees.
type HoppyConfig struct {
	Scene      SceneConfig      `yaml:"scene"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Hero       HeroConfig       `yaml:"hero"`
	Ground     GroundConfig     `yaml:"ground"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SceneConfig defines the fixed scene dimensions.
type SceneConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Gravity   float64 `yaml:"gravity"`    // vertical acceleration, negative pulls down
	FixedStep float64 `yaml:"fixed_step"` // simulation timestep
}

// PhysicsConfig defines the hero kinematics tuning.
type PhysicsConfig struct {
	ScrollSpeed      float64 `yaml:"scroll_speed"`
	MaxRiseSpeed     float64 `yaml:"max_rise_speed"`
	FlapImpulse      float64 `yaml:"flap_impulse"`
	FlapSpin         float64 `yaml:"flap_spin"`
	DiveTorque       float64 `yaml:"dive_torque"` // angular impulse per second once diving
	DiveDelay        float64 `yaml:"dive_delay"`  // grace period after a tap
	MinRotation      float64 `yaml:"min_rotation"`
	MaxRotation      float64 `yaml:"max_rotation"`
	MaxSpin          float64 `yaml:"max_spin"` // rad/s, symmetric
	DeathRotation    float64 `yaml:"death_rotation"`
	ShakeDuration    float64 `yaml:"shake_duration"`
	ShakeAmplitude   float64 `yaml:"shake_amplitude"`
	FlapFrameSeconds float64 `yaml:"flap_frame_seconds"`
}

// HeroConfig defines the hero body.
type HeroConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Radius float64 `yaml:"radius"`
	Mass   float64 `yaml:"mass"`
	Moment float64 `yaml:"moment"`
}

// GroundConfig defines the looping ground tiles.
type GroundConfig struct {
	Tiles      int     `yaml:"tiles"`
	TileWidth  float64 `yaml:"tile_width"`
	TileHeight float64 `yaml:"tile_height"`
}

// ObstacleConfig defines obstacle spawning and the obstacle template.
type ObstacleConfig struct {
	SpawnInterval float64 `yaml:"spawn_interval"`
	SpawnX        float64 `yaml:"spawn_x"`
	MinY          float64 `yaml:"min_y"`
	MaxY          float64 `yaml:"max_y"`
	Width         float64 `yaml:"width"`
	Gap           float64 `yaml:"gap"`
	Length        float64 `yaml:"length"` // height of each carrot half
	GoalWidth     float64 `yaml:"goal_width"`
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

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to scroll speed factor
	SpawnReduction  float64 `yaml:"spawn_reduction"`  // fraction removed from the spawn interval
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
