package otel

import (
	"context"

	"github.com/adrianliechti/wingman-speak/pkg/player"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

type Player interface {
	Observable
	player.Player
}

type observablePlayer struct {
	player player.Player
}

func NewPlayer(p player.Player) Player {
	return &observablePlayer{
		player: p,
	}
}

func (p *observablePlayer) otelSetup() {
}

func (p *observablePlayer) Play(ctx context.Context, path string) error {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "play")
	defer span.End()

	span.SetAttributes(String("file.path", path))

	err := p.player.Play(ctx, path)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return err
}
