package openai

import (
	"context"
	"errors"
	"io"

	"github.com/adrianliechti/wingman-speak/pkg/provider"

	"github.com/google/uuid"
	"github.com/openai/openai-go"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

type Synthesizer struct {
	*Config
	speech openai.AudioSpeechService
}

func NewSynthesizer(url, model string, options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		url:   url,
		model: model,

		voice: string(openai.AudioSpeechNewParamsVoiceAlloy),
	}

	for _, option := range options {
		option(cfg)
	}

	if cfg.model == "" {
		cfg.model = string(openai.SpeechModelTTS1)
	}

	return &Synthesizer{
		Config: cfg,
		speech: openai.NewAudioSpeechService(cfg.Options()...),
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	voice := s.voice

	if options.Voice != "" {
		voice = options.Voice
	}

	params := openai.AudioSpeechNewParams{
		Model: openai.SpeechModel(s.model),
		Input: content,

		Voice: openai.AudioSpeechNewParamsVoice(voice),

		ResponseFormat: openai.AudioSpeechNewParamsResponseFormatMP3,
	}

	// the speech endpoint accepts 0.25 to 4
	if options.Speed != nil && *options.Speed >= 0.25 {
		params.Speed = openai.Float(min(*options.Speed, 4.0))
	}

	result, err := s.speech.New(ctx, params)

	if err != nil {
		return nil, convertError(err)
	}

	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)

	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, &provider.RemoteAPIError{
			StatusCode: result.StatusCode,
		}
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: s.model,

		Content:     data,
		ContentType: "audio/mpeg",

		Format: "mp3",
	}, nil
}

func convertError(err error) error {
	var apierr *openai.Error

	if errors.As(err, &apierr) {
		return &provider.RemoteAPIError{
			StatusCode: apierr.StatusCode,
			Body:       apierr.Error(),
		}
	}

	return err
}
