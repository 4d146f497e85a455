package baidu_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/adrianliechti/wingman-speak/pkg/provider"
	"github.com/adrianliechti/wingman-speak/pkg/provider/baidu"

	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, status int, body string, inspect func(r *http.Request)) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if inspect != nil {
			inspect(r)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))

	t.Cleanup(server.Close)

	return server
}

func TestSynthesizeRequest(t *testing.T) {
	ctx := context.Background()

	audio := []byte{0xff, 0xfb, 0x90, 0x64}

	var form map[string]string
	var method, apikey, model string

	server := newServer(t, http.StatusOK, `{"result":{"audio":"`+base64.StdEncoding.EncodeToString(audio)+`","duration":2.3}}`, func(r *http.Request) {
		method = r.Method
		form = map[string]string{}

		if err := r.ParseMultipartForm(1 << 20); err != nil {
			return
		}

		for k, v := range r.MultipartForm.Value {
			form[k] = v[0]
		}

		apikey = r.Header.Get("apikey")
		model = r.Header.Get("Model")
	})

	s, err := baidu.NewSynthesizer(server.URL, "tts-model", baidu.WithToken("secret"))
	require.NoError(t, err)

	speed := 1.5

	result, err := s.Synthesize(ctx, "こんにちは", &provider.SynthesizeOptions{
		Speed: &speed,
	})

	require.NoError(t, err)

	require.Equal(t, http.MethodPost, method)
	require.Equal(t, "secret", apikey)
	require.Equal(t, "tts-model", model)

	require.Equal(t, map[string]string{
		"text":        "こんにちは",
		"model_type":  "10",
		"spk_id":      "0",
		"speed":       "1.5",
		"volume":      "1",
		"sample_rate": "22050",
		"audio_type":  "mp3",
	}, form)

	require.Equal(t, audio, result.Content)
	require.Equal(t, "mp3", result.Format)
	require.Equal(t, "2.3", result.Duration)
	require.NotEmpty(t, result.ID)
}

func TestSynthesizeDurationString(t *testing.T) {
	server := newServer(t, http.StatusOK, `{"result":{"audio":"AAEC","duration":"1.25"}}`, nil)

	s, err := baidu.NewSynthesizer(server.URL, "")
	require.NoError(t, err)

	result, err := s.Synthesize(context.Background(), "hello", nil)
	require.NoError(t, err)

	require.Equal(t, "1.25", result.Duration)
}

func TestSynthesizeDurationMissing(t *testing.T) {
	server := newServer(t, http.StatusOK, `{"result":{"audio":"AAEC"}}`, nil)

	s, err := baidu.NewSynthesizer(server.URL, "")
	require.NoError(t, err)

	result, err := s.Synthesize(context.Background(), "hello", nil)
	require.NoError(t, err)

	require.Equal(t, "", result.Duration)
	require.Equal(t, []byte{0x00, 0x01, 0x02}, result.Content)
}

func TestSynthesizeRemoteErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"status", http.StatusInternalServerError, `{"error":"boom"}`},
		{"unauthorized", http.StatusUnauthorized, `invalid apikey`},
		{"missing result", http.StatusOK, `{"code":4001}`},
		{"missing audio", http.StatusOK, `{"result":{"duration":1}}`},
		{"empty audio", http.StatusOK, `{"result":{"audio":""}}`},
		{"not json", http.StatusOK, `<html></html>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newServer(t, tt.status, tt.body, nil)

			s, err := baidu.NewSynthesizer(server.URL, "")
			require.NoError(t, err)

			_, err = s.Synthesize(context.Background(), "hello", nil)

			var apierr *provider.RemoteAPIError
			require.ErrorAs(t, err, &apierr)

			require.Equal(t, tt.status, apierr.StatusCode)
			require.Equal(t, tt.body, apierr.Body)
			require.Contains(t, err.Error(), tt.body)
		})
	}
}

func TestSynthesizeDecodeError(t *testing.T) {
	server := newServer(t, http.StatusOK, `{"result":{"audio":"not base64!!"}}`, nil)

	s, err := baidu.NewSynthesizer(server.URL, "")
	require.NoError(t, err)

	_, err = s.Synthesize(context.Background(), "hello", nil)

	var decodeErr *provider.AudioDecodeError
	require.ErrorAs(t, err, &decodeErr)
}

func TestNewSynthesizerRequiresURL(t *testing.T) {
	_, err := baidu.NewSynthesizer("", "model")
	require.Error(t, err)
}
