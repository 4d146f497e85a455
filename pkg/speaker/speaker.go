package speaker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/adrianliechti/wingman-speak/pkg/player"
	"github.com/adrianliechti/wingman-speak/pkg/provider"
	"github.com/adrianliechti/wingman-speak/pkg/storage"
)

const (
	DefaultModelType = 10
	DefaultSpeakerID = 0

	DefaultSpeed  = 1.0
	DefaultVolume = 1.0

	MaxSpeed  = 3.0
	MaxVolume = 3.0

	UnknownDuration = "unknown"
)

var (
	ErrInvalidRequest = errors.New("invalid request")
)

type Request struct {
	Text string

	ModelType int
	SpeakerID int

	Speed  float64
	Volume float64
}

// NewRequest returns a request for text with default voice parameters.
func NewRequest(text string) Request {
	return Request{
		Text: text,

		ModelType: DefaultModelType,
		SpeakerID: DefaultSpeakerID,

		Speed:  DefaultSpeed,
		Volume: DefaultVolume,
	}
}

func (r Request) Validate() error {
	if r.Text == "" {
		return fmt.Errorf("%w: text must not be empty", ErrInvalidRequest)
	}

	if r.Speed < 0 || r.Speed > MaxSpeed {
		return fmt.Errorf("%w: speed %v out of range 0-%v", ErrInvalidRequest, r.Speed, MaxSpeed)
	}

	if r.Volume < 0 || r.Volume > MaxVolume {
		return fmt.Errorf("%w: volume %v out of range 0-%v", ErrInvalidRequest, r.Volume, MaxVolume)
	}

	return nil
}

type Result struct {
	Text string

	Path     string
	Duration string

	Playback player.Result
}

type Speaker struct {
	synthesizer provider.Synthesizer

	storage *storage.Store
	player  player.Player

	filter func(string) string
}

type Option func(*Speaker)

// WithPlayer sets the playback strategy. A nil player disables playback.
func WithPlayer(p player.Player) Option {
	return func(s *Speaker) {
		s.player = p
	}
}

// WithTextFilter transforms the text sent to the synthesizer. The text echoed
// in the result is never filtered.
func WithTextFilter(filter func(string) string) Option {
	return func(s *Speaker) {
		s.filter = filter
	}
}

func New(synthesizer provider.Synthesizer, storage *storage.Store, options ...Option) (*Speaker, error) {
	s := &Speaker{
		synthesizer: synthesizer,
		storage:     storage,
	}

	for _, option := range options {
		option(s)
	}

	if s.synthesizer == nil {
		return nil, errors.New("missing synthesizer")
	}

	if s.storage == nil {
		return nil, errors.New("missing storage")
	}

	return s, nil
}

func (s *Speaker) Speak(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	slog.Info("processing speech request", "text", preview(req.Text, 30), "model_type", req.ModelType, "speaker_id", req.SpeakerID)

	input := req.Text

	if s.filter != nil {
		input = s.filter(input)
	}

	if input == "" {
		return nil, fmt.Errorf("%w: no speakable text", ErrInvalidRequest)
	}

	options := &provider.SynthesizeOptions{
		ModelType: &req.ModelType,
		SpeakerID: &req.SpeakerID,

		Speed:  &req.Speed,
		Volume: &req.Volume,
	}

	synthesis, err := s.synthesizer.Synthesize(ctx, input, options)

	if err != nil {
		return nil, err
	}

	if len(synthesis.Content) == 0 {
		return nil, &provider.RemoteAPIError{Body: "empty audio"}
	}

	path, err := s.storage.Save(synthesis.Content, synthesis.Format)

	if err != nil {
		return nil, err
	}

	playback := player.Start(ctx, s.player, path).Wait()

	duration := synthesis.Duration

	if duration == "" {
		duration = UnknownDuration
	}

	return &Result{
		Text: req.Text,

		Path:     path,
		Duration: duration,

		Playback: playback,
	}, nil
}

func preview(text string, limit int) string {
	runes := []rune(text)

	if len(runes) <= limit {
		return text
	}

	return string(runes[:limit]) + "..."
}
