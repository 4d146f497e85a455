package otel

import (
	"context"
	"errors"
	"testing"

	"github.com/adrianliechti/wingman-speak/pkg/provider"

	"github.com/stretchr/testify/require"
)

type failingSynthesizer struct{}

func (failingSynthesizer) Synthesize(ctx context.Context, input string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	return nil, errors.New("boom")
}

type playerFunc func(ctx context.Context, path string) error

func (f playerFunc) Play(ctx context.Context, path string) error {
	return f(ctx, path)
}

func TestUseGRPC(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_PROTOCOL", "GRPC")

	require.True(t, useGRPC("traces"))
	require.False(t, useGRPC("logs"))

	t.Setenv("OTEL_EXPORTER_OTLP_PROTOCOL", "grpc")
	require.True(t, useGRPC("logs"))
}

func TestObservableSynthesizerPassesErrors(t *testing.T) {
	s := NewSynthesizer("baidu", "tts", failingSynthesizer{})

	_, err := s.Synthesize(context.Background(), "hello", nil)
	require.EqualError(t, err, "boom")
}

func TestObservablePlayer(t *testing.T) {
	var played string

	p := NewPlayer(playerFunc(func(ctx context.Context, path string) error {
		played = path
		return nil
	}))

	require.NoError(t, p.Play(context.Background(), "audio.mp3"))
	require.Equal(t, "audio.mp3", played)
}
