package otel

import (
	"context"
	"time"

	"github.com/adrianliechti/wingman-speak/pkg/provider"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

type Synthesizer interface {
	Observable
	provider.Synthesizer
}

type observableSynthesizer struct {
	model    string
	provider string

	synthesizer provider.Synthesizer

	durationMetric metric.Float64Histogram
	bytesMetric    metric.Int64Counter
}

func NewSynthesizer(provider, model string, p provider.Synthesizer) Synthesizer {
	meter := otel.Meter(instrumentationName)

	durationMetric, _ := meter.Float64Histogram("speak.synthesis.duration",
		metric.WithDescription("duration of remote speech synthesis calls"),
		metric.WithUnit("s"),
	)

	bytesMetric, _ := meter.Int64Counter("speak.synthesis.audio",
		metric.WithDescription("audio bytes received from the synthesizer"),
		metric.WithUnit("By"),
	)

	return &observableSynthesizer{
		synthesizer: p,

		model:    model,
		provider: provider,

		durationMetric: durationMetric,
		bytesMetric:    bytesMetric,
	}
}

func (p *observableSynthesizer) otelSetup() {
}

func (p *observableSynthesizer) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	ctx, span := otel.Tracer(instrumentationName).Start(ctx, "synthesize "+p.model)
	defer span.End()

	timestamp := time.Now()

	result, err := p.synthesizer.Synthesize(ctx, content, options)

	attrs := KeyValues([]KeyValue{
		String("provider.name", p.provider),
		String("request.model", p.model),
	}, EndUserAttrs(ctx))

	span.SetAttributes(attrs...)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	if p.durationMetric != nil {
		p.durationMetric.Record(ctx, time.Since(timestamp).Seconds(), metric.WithAttributes(attrs...))
	}

	if err == nil && result != nil && p.bytesMetric != nil {
		p.bytesMetric.Add(ctx, int64(len(result.Content)), metric.WithAttributes(attrs...))
	}

	return result, err
}
