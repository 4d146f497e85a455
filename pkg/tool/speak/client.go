package speak

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/adrianliechti/wingman-speak/pkg/player"
	"github.com/adrianliechti/wingman-speak/pkg/speaker"
	"github.com/adrianliechti/wingman-speak/pkg/tool"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var _ tool.Provider = (*Client)(nil)

const ToolName = "speak"

type Client struct {
	speaker *speaker.Speaker
}

func New(speaker *speaker.Speaker) (*Client, error) {
	c := &Client{
		speaker: speaker,
	}

	if c.speaker == nil {
		return nil, errors.New("missing speaker")
	}

	return c, nil
}

func (c *Client) Tools(ctx context.Context) ([]tool.Tool, error) {
	return []tool.Tool{
		{
			Name:        ToolName,
			Description: "convert text to speech, save the audio file and play it on the local machine",

			Parameters: map[string]any{
				"type": "object",

				"properties": map[string]any{
					"text": map[string]any{
						"type":        "string",
						"description": "the text to convert to speech",
						"minLength":   1,
					},

					"modelType": map[string]any{
						"type":        "number",
						"description": "model type (8: influencer imma, 9: Kansai dialect, 10: anime, 11: ASMR, 101: English)",
						"default":     speaker.DefaultModelType,
					},

					"speakerId": map[string]any{
						"type":        "number",
						"description": "speaker id",
						"default":     speaker.DefaultSpeakerID,
					},

					"speed": map[string]any{
						"type":        "number",
						"description": "speech speed (0-3)",
						"default":     speaker.DefaultSpeed,
						"minimum":     0,
						"maximum":     speaker.MaxSpeed,
					},

					"volume": map[string]any{
						"type":        "number",
						"description": "volume (0-3)",
						"default":     speaker.DefaultVolume,
						"minimum":     0,
						"maximum":     speaker.MaxVolume,
					},
				},

				"required": []string{"text"},
			},
		},
	}, nil
}

func (c *Client) Execute(ctx context.Context, name string, parameters map[string]any) (any, error) {
	if name != ToolName {
		return nil, tool.ErrInvalidTool
	}

	req, err := parseRequest(parameters)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", speaker.ErrInvalidRequest, err)
	}

	result, err := c.speaker.Speak(ctx, req)

	if err != nil {
		return nil, fmt.Errorf("TTS service error: %w", err)
	}

	echo := encodeEcho(result.Text)

	summary := fmt.Sprintf("Played speech for %q (file: %s, duration: %s)", result.Text, result.Path, result.Duration)

	if result.Playback.Status != player.StatusPlayed {
		summary = fmt.Sprintf("Synthesized speech for %q (file: %s, duration: %s, playback: %s)", result.Text, result.Path, result.Duration, result.Playback.Status)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Text: echo,
			},
			&mcp.TextContent{
				Text: summary,
			},
		},
	}, nil
}

func parseRequest(parameters map[string]any) (speaker.Request, error) {
	req := speaker.NewRequest("")

	var err error

	if req.Text, err = tool.String(parameters, "text", ""); err != nil {
		return req, err
	}

	if req.ModelType, err = tool.Integer(parameters, "modelType", speaker.DefaultModelType); err != nil {
		return req, err
	}

	if req.SpeakerID, err = tool.Integer(parameters, "speakerId", speaker.DefaultSpeakerID); err != nil {
		return req, err
	}

	if req.Speed, err = tool.Number(parameters, "speed", speaker.DefaultSpeed); err != nil {
		return req, err
	}

	if req.Volume, err = tool.Number(parameters, "volume", speaker.DefaultVolume); err != nil {
		return req, err
	}

	return req, nil
}

func encodeEcho(text string) string {
	var b bytes.Buffer

	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	enc.Encode(map[string]string{
		"text": text,
	})

	return strings.TrimSuffix(b.String(), "\n")
}
