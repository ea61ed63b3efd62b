package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Synthesizer converts confirmation text into a playable audio handle.
type Synthesizer interface {
	Synthesize(ctx context.Context, req SynthesizeRequest) (Audio, error)
}

// Client is an HTTP client for the text-to-speech service.
type Client struct {
	baseURL      string
	apiKey       string
	defaultVoice string
	httpClient   *http.Client
}

// Ensure Client implements Synthesizer.
var _ Synthesizer = (*Client)(nil)

// NewClient creates a new text-to-speech client.
func NewClient(baseURL, apiKey, defaultVoice string) *Client {
	return &Client{
		baseURL:      baseURL,
		apiKey:       apiKey,
		defaultVoice: defaultVoice,
		httpClient:   &http.Client{Timeout: 15 * time.Second},
	}
}

// SetBaseURL overrides the service URL for testing purposes.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// Synthesize converts text to speech and returns a playable audio handle.
// An empty VoiceID falls back to the client's default voice.
func (c *Client) Synthesize(ctx context.Context, req SynthesizeRequest) (Audio, error) {
	if req.VoiceID == "" {
		req.VoiceID = c.defaultVoice
	}

	body, err := json.Marshal(req)
	if err != nil {
		return Audio{}, fmt.Errorf("failed to encode synthesize request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/synthesize", bytes.NewBuffer(body))
	if err != nil {
		return Audio{}, fmt.Errorf("failed to build synthesize request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Audio{}, fmt.Errorf("synthesize request failed: %w", err)
	}
	defer resp.Body.Close()

	var apiResp apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return Audio{}, fmt.Errorf("failed to decode synthesize response: %w", err)
	}
	if !apiResp.OK {
		return Audio{}, fmt.Errorf("synthesis rejected: %s", apiResp.Description)
	}

	return apiResp.Audio, nil
}
