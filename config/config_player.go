package config

import (
	"runtime"

	"github.com/adrianliechti/wingman-speak/pkg/otel"
	"github.com/adrianliechti/wingman-speak/pkg/player"
)

type playerConfig struct {
	Disabled bool `yaml:"disabled"`

	// Command overrides the platform player, the file path is appended
	Command string `yaml:"command"`
}

// Player returns the playback strategy, nil when playback is disabled.
func (cfg *Config) Player() player.Player {
	return cfg.player
}

func (cfg *Config) registerPlayer(f *configFile) error {
	if f.Player.Disabled {
		return nil
	}

	p := player.New(runtime.GOOS)

	if f.Player.Command != "" {
		c, err := player.Parse(f.Player.Command)

		if err != nil {
			return err
		}

		p = c
	}

	cfg.player = otel.NewPlayer(p)

	return nil
}
