package speech

// SynthesizeRequest is the input for text-to-speech synthesis.
type SynthesizeRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voice_id,omitempty"`
}

// Audio is a playable handle to synthesized speech.
type Audio struct {
	URL        string `json:"audio_url"`
	DurationMs int    `json:"duration_ms"`
}

// apiResponse is the synthesis service envelope.
type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
	Audio       Audio  `json:"audio"`
}
