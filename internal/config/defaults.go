package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/floppy.yaml
var defaultYAML []byte

// Default returns the default configuration, parsed from the embedded YAML.
// Falls back to hardcoded values if the embedded file cannot be parsed.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return hardcodedDefault()
	}
	return cfg
}

// hardcodedDefault mirrors defaults/floppy.yaml for the case where the
// embedded data is unparsable.
func hardcodedDefault() Config {
	return Config{
		Physics: Physics{
			Gravity:     0.35,
			JumpImpulse: -6.0,
		},
		Player: Player{
			X:      60,
			Width:  30,
			Height: 30,
		},
		Obstacles: Obstacles{
			Speed:           2.0,
			SpawnIntervalMs: 1500,
			Width:           50,
			GapHeight:       180,
			MinTopHeight:    50,
			BottomMargin:    50,
		},
		Backdrop: Backdrop{
			ScrollSpeed: 0.5,
		},
	}
}
