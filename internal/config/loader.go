package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by Validate failures.
var ErrInvalid = errors.New("invalid config")

// Source names where a configuration was read from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadHoppy loads the hoppy configuration.
// Search order: customPath -> ~/.arcade/configs/hoppy.yaml -> ./configs/hoppy.yaml -> embedded default.
// Files are decoded on top of the built-in defaults, so partial files are fine.
func LoadHoppy(customPath string) (HoppyConfig, Source, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return HoppyConfig{}, SourceCustom, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return HoppyConfig{}, SourceCustom, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("hoppy.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "hoppy.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	if cfg, err := Parse(defaultHoppyYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultHoppyConfig(), SourceBuiltin, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (HoppyConfig, error) {
	cfg := DefaultHoppyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return HoppyConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return HoppyConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg HoppyConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate reports configurations the scene cannot be built from.
func (c HoppyConfig) Validate() error {
	switch {
	case c.Scene.Width <= 0 || c.Scene.Height <= 0:
		return fmt.Errorf("%w: scene size must be positive", ErrInvalid)
	case c.Scene.FixedStep <= 0:
		return fmt.Errorf("%w: scene.fixed_step must be positive", ErrInvalid)
	case c.Hero.Radius <= 0 || c.Hero.Mass <= 0 || c.Hero.Moment <= 0:
		return fmt.Errorf("%w: hero radius, mass and moment must be positive", ErrInvalid)
	case c.Ground.Tiles < 1 || c.Ground.TileWidth <= 0 || c.Ground.TileHeight <= 0:
		return fmt.Errorf("%w: ground needs at least one tile with a positive size", ErrInvalid)
	case c.Obstacles.SpawnInterval <= 0:
		return fmt.Errorf("%w: obstacles.spawn_interval must be positive", ErrInvalid)
	case c.Obstacles.MinY > c.Obstacles.MaxY:
		return fmt.Errorf("%w: obstacles.min_y is above obstacles.max_y", ErrInvalid)
	case c.Physics.MinRotation > c.Physics.MaxRotation:
		return fmt.Errorf("%w: physics.min_rotation is above physics.max_rotation", ErrInvalid)
	case c.Physics.MaxSpin < 0:
		return fmt.Errorf("%w: physics.max_spin must not be negative", ErrInvalid)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *HoppyConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
