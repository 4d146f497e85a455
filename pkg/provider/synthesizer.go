package provider

import (
	"context"
)

type Synthesizer interface {
	Synthesize(ctx context.Context, input string, options *SynthesizeOptions) (*Synthesis, error)
}

type SynthesizeOptions struct {
	Voice string

	ModelType *int
	SpeakerID *int

	Speed  *float64
	Volume *float64
}

type Synthesis struct {
	ID    string
	Model string

	Content     []byte
	ContentType string

	// Format is the file extension of Content, e.g. mp3 or wav
	Format string

	// Duration as reported by the remote service, empty if unknown
	Duration string
}
