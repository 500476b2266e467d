package domain

// ChatMessage is one turn of a coaching conversation. Messages are appended
// and never mutated.
type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
	// Fallback marks an assistant message substituted by the presentation
	// layer after a failed request. It was never produced by the provider.
	Fallback bool `json:"fallback,omitempty"`
}
