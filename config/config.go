package config

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/adrianliechti/wingman-speak/pkg/auth"
	"github.com/adrianliechti/wingman-speak/pkg/mcp"
	"github.com/adrianliechti/wingman-speak/pkg/player"
	"github.com/adrianliechti/wingman-speak/pkg/provider"
	"github.com/adrianliechti/wingman-speak/pkg/speaker"

	"gopkg.in/yaml.v3"
)

const (
	Name = "JapaneseTTS"
)

var (
	Version = "1.0.0"
)

// Config is built once at startup and is read-only afterwards.
type Config struct {
	Address string

	Authorizers []auth.Provider

	dir string

	synthesizer provider.Synthesizer
	player      player.Player

	speaker *speaker.Speaker

	mcp *mcp.Server
}

type Flags struct {
	// Path of an optional YAML config file
	Path string

	// SaveDir overrides BAIDU_TTS_SAVE_DIR and the config file
	SaveDir string

	// Address serves streamable HTTP instead of stdio when set
	Address string
}

func Load(ctx context.Context, flags Flags) (*Config, error) {
	file := &configFile{}

	if flags.Path != "" {
		if err := parseFile(flags.Path, file); err != nil {
			return nil, err
		}
	}

	if file.Synthesizer.Type == "" {
		file.Synthesizer.Type = "baidu"
	}

	file.applyEnv()

	if flags.SaveDir != "" {
		file.Storage.Dir = flags.SaveDir
	}

	c := &Config{
		Address: flags.Address,
	}

	if err := c.registerStorage(file); err != nil {
		return nil, err
	}

	if err := c.registerSynthesizer(file); err != nil {
		return nil, err
	}

	if err := c.registerPlayer(file); err != nil {
		return nil, err
	}

	if err := c.registerSpeaker(file); err != nil {
		return nil, err
	}

	if err := c.registerMCP(file); err != nil {
		return nil, err
	}

	if err := c.registerAuthorizer(ctx, file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Authorizers []authorizerConfig `yaml:"authorizers"`

	Synthesizer synthesizerConfig `yaml:"synthesizer"`

	Storage storageConfig `yaml:"storage"`
	Player  playerConfig  `yaml:"player"`

	Text textConfig `yaml:"text"`
}

func parseFile(path string, config *configFile) error {
	data, err := os.ReadFile(path)

	if err != nil {
		return err
	}

	data = []byte(os.ExpandEnv(string(data)))

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(config); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// applyEnv overlays the BAIDU_TTS_* environment onto the file values.
func (f *configFile) applyEnv() {
	if dir := os.Getenv("BAIDU_TTS_SAVE_DIR"); dir != "" {
		f.Storage.Dir = dir
	}

	if !strings.EqualFold(f.Synthesizer.Type, "baidu") {
		return
	}

	if url := os.Getenv("BAIDU_TTS_API_URL"); url != "" {
		f.Synthesizer.URL = url
	}

	if token := os.Getenv("BAIDU_TTS_API_KEY"); token != "" {
		f.Synthesizer.Token = token
	}

	if model := os.Getenv("BAIDU_TTS_MODEL"); model != "" {
		f.Synthesizer.Model = model
	}
}
