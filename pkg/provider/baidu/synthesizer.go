package baidu

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/adrianliechti/wingman-speak/pkg/provider"

	"github.com/google/uuid"
)

var _ provider.Synthesizer = (*Synthesizer)(nil)

const (
	SampleRate = 22050
	AudioType  = "mp3"

	DefaultModelType = 10
	DefaultSpeakerID = 0
)

type Synthesizer struct {
	*Config
}

func NewSynthesizer(url, model string, options ...Option) (*Synthesizer, error) {
	cfg := &Config{
		url:   url,
		model: model,

		client: http.DefaultClient,
	}

	for _, option := range options {
		option(cfg)
	}

	if cfg.url == "" {
		return nil, errors.New("missing synthesizer url")
	}

	return &Synthesizer{
		Config: cfg,
	}, nil
}

func (s *Synthesizer) Synthesize(ctx context.Context, content string, options *provider.SynthesizeOptions) (*provider.Synthesis, error) {
	if options == nil {
		options = new(provider.SynthesizeOptions)
	}

	modelType := DefaultModelType
	speakerID := DefaultSpeakerID

	speed := 1.0
	volume := 1.0

	if options.ModelType != nil {
		modelType = *options.ModelType
	}

	if options.SpeakerID != nil {
		speakerID = *options.SpeakerID
	}

	if options.Speed != nil {
		speed = *options.Speed
	}

	if options.Volume != nil {
		volume = *options.Volume
	}

	var b bytes.Buffer
	w := multipart.NewWriter(&b)

	w.WriteField("text", content)
	w.WriteField("model_type", strconv.Itoa(modelType))
	w.WriteField("spk_id", strconv.Itoa(speakerID))
	w.WriteField("speed", strconv.FormatFloat(speed, 'f', -1, 64))
	w.WriteField("volume", strconv.FormatFloat(volume, 'f', -1, 64))
	w.WriteField("sample_rate", strconv.Itoa(SampleRate))
	w.WriteField("audio_type", AudioType)

	w.Close()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, &b)

	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", w.FormDataContentType())

	req.Header.Set("apikey", s.token)
	req.Header.Set("Model", s.model)

	resp, err := s.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, convertError(resp.StatusCode, body)
	}

	var result SynthesisResponse

	if err := json.Unmarshal(body, &result); err != nil {
		return nil, convertError(resp.StatusCode, body)
	}

	if result.Result == nil || result.Result.Audio == "" {
		return nil, convertError(resp.StatusCode, body)
	}

	data, err := base64.StdEncoding.DecodeString(result.Result.Audio)

	if err != nil {
		return nil, &provider.AudioDecodeError{Err: err}
	}

	if len(data) == 0 {
		return nil, convertError(resp.StatusCode, body)
	}

	return &provider.Synthesis{
		ID:    uuid.NewString(),
		Model: s.model,

		Content:     data,
		ContentType: "audio/mpeg",

		Format:   AudioType,
		Duration: result.Result.duration(),
	}, nil
}

func convertError(code int, body []byte) error {
	return &provider.RemoteAPIError{
		StatusCode: code,
		Body:       string(body),
	}
}
