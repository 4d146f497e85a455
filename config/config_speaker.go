package config

import (
	"errors"
	"strings"

	"github.com/adrianliechti/wingman-speak/pkg/speaker"
	"github.com/adrianliechti/wingman-speak/pkg/storage"
	"github.com/adrianliechti/wingman-speak/pkg/text"
)

type textConfig struct {
	// keep (default) or strip
	Markdown string `yaml:"markdown"`
}

func (cfg *Config) Speaker() *speaker.Speaker {
	return cfg.speaker
}

func (cfg *Config) registerSpeaker(f *configFile) error {
	store, err := storage.New(cfg.dir)

	if err != nil {
		return err
	}

	options := []speaker.Option{
		speaker.WithPlayer(cfg.player),
	}

	switch strings.ToLower(f.Text.Markdown) {
	case "", "keep":

	case "strip":
		options = append(options, speaker.WithTextFilter(text.Speakable))

	default:
		return errors.New("invalid markdown mode: " + f.Text.Markdown)
	}

	s, err := speaker.New(cfg.synthesizer, store, options...)

	if err != nil {
		return err
	}

	cfg.speaker = s

	return nil
}
