package baidu

import (
	"bytes"
	"encoding/json"
)

type SynthesisResponse struct {
	Result *SynthesisResult `json:"result"`
}

type SynthesisResult struct {
	Audio string `json:"audio"`

	// number or string, kept as sent
	Duration json.RawMessage `json:"duration,omitempty"`
}

func (r *SynthesisResult) duration() string {
	data := bytes.TrimSpace(r.Duration)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return ""
	}

	var text string

	if err := json.Unmarshal(data, &text); err == nil {
		return text
	}

	var number json.Number

	if err := json.Unmarshal(data, &number); err == nil {
		return number.String()
	}

	return ""
}
