package config

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/adrianliechti/wingman-speak/pkg/otel"
	"github.com/adrianliechti/wingman-speak/pkg/provider"
	"github.com/adrianliechti/wingman-speak/pkg/provider/baidu"
	"github.com/adrianliechti/wingman-speak/pkg/provider/google"
	"github.com/adrianliechti/wingman-speak/pkg/provider/openai"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type synthesizerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Model string `yaml:"model"`
	Voice string `yaml:"voice"`
}

func (cfg *Config) Synthesizer() provider.Synthesizer {
	return cfg.synthesizer
}

func (cfg *Config) registerSynthesizer(f *configFile) error {
	client := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	s, err := createSynthesizer(f.Synthesizer, client)

	if err != nil {
		return err
	}

	cfg.synthesizer = otel.NewSynthesizer(f.Synthesizer.Type, f.Synthesizer.Model, s)

	slog.Info("synthesizer configured", "type", f.Synthesizer.Type, "url", f.Synthesizer.URL, "model", f.Synthesizer.Model)

	return nil
}

func createSynthesizer(cfg synthesizerConfig, client *http.Client) (provider.Synthesizer, error) {
	switch strings.ToLower(cfg.Type) {
	case "", "baidu":
		return baiduSynthesizer(cfg, client)

	case "openai", "openai-compatible":
		return openaiSynthesizer(cfg, client)

	case "google", "gemini":
		return googleSynthesizer(cfg, client)

	default:
		return nil, errors.New("invalid synthesizer type: " + cfg.Type)
	}
}

func baiduSynthesizer(cfg synthesizerConfig, client *http.Client) (provider.Synthesizer, error) {
	var options []baidu.Option

	if cfg.Token != "" {
		options = append(options, baidu.WithToken(cfg.Token))
	}

	if client != nil {
		options = append(options, baidu.WithClient(client))
	}

	return baidu.NewSynthesizer(cfg.URL, cfg.Model, options...)
}

func openaiSynthesizer(cfg synthesizerConfig, client *http.Client) (provider.Synthesizer, error) {
	var options []openai.Option

	if cfg.Token != "" {
		options = append(options, openai.WithToken(cfg.Token))
	}

	if cfg.Voice != "" {
		options = append(options, openai.WithVoice(cfg.Voice))
	}

	if client != nil {
		options = append(options, openai.WithClient(client))
	}

	return openai.NewSynthesizer(cfg.URL, cfg.Model, options...)
}

func googleSynthesizer(cfg synthesizerConfig, client *http.Client) (provider.Synthesizer, error) {
	var options []google.Option

	if cfg.Token != "" {
		options = append(options, google.WithToken(cfg.Token))
	}

	if cfg.Voice != "" {
		options = append(options, google.WithVoice(cfg.Voice))
	}

	if client != nil {
		options = append(options, google.WithClient(client))
	}

	return google.NewSynthesizer(cfg.Model, options...)
}
