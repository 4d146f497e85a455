package google

import (
	"context"
	"strconv"

	"github.com/adrianliechti/wingman-speak/pkg/provider"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

const (
	DefaultModel = "gemini-2.5-flash-preview-tts"
	DefaultVoice = "Zephyr"
)

type Synthesizer struct {
	*Config
}

func NewSynthesizer(model string, options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		model: model,
		voice: DefaultVoice,
	}

	for _, option := range options {
		option(cfg)
	}

	if cfg.model == "" {
		cfg.model = DefaultModel
	}

	return &Synthesizer{
		Config: cfg,
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	client, err := s.newClient(ctx)

	if err != nil {
		return nil, err
	}

	voice := s.voice

	if options.Voice != "" {
		voice = options.Voice
	}

	input := []*genai.Content{
		genai.NewContentFromText(content, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},

		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{
					VoiceName: voice,
				},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, s.model, input, config)

	if err != nil {
		return nil, &provider.RemoteAPIError{
			Body: err.Error(),
		}
	}

	var pcm []byte

	for _, c := range resp.Candidates {
		if c.Content == nil {
			continue
		}

		for _, p := range c.Content.Parts {
			if p.InlineData != nil {
				pcm = append(pcm, p.InlineData.Data...)
			}
		}
	}

	if len(pcm) == 0 {
		return nil, &provider.RemoteAPIError{
			Body: "no audio in response",
		}
	}

	samples := len(pcm) / (bitsPerSample / 8) / channels
	duration := float64(samples) / float64(sampleRate)

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: s.model,

		Content:     encodeWAV(pcm),
		ContentType: "audio/wav",

		Format:   "wav",
		Duration: strconv.FormatFloat(duration, 'f', 2, 64),
	}, nil
}
