package dto

type Result struct {
	JSON      map[string]any `json:"json"`
	Error     string         `json:"error,omitempty"`
	ItemIndex int            `json:"item_index"`
}

// ExecuteResponse carries every result produced before the batch finished
// or aborted; Error is set when the batch aborted early.
type ExecuteResponse struct {
	RequestID string   `json:"request_id"`
	Results   []Result `json:"results"`
	Error     string   `json:"error,omitempty"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
