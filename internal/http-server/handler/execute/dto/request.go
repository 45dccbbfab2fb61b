package dto

import "encoding/json"

type ExecuteRequest struct {
	Resource       string `json:"resource" validate:"required,oneof=image pdf video template other"`
	Operation      string `json:"operation" validate:"required"`
	ContinueOnFail bool   `json:"continue_on_fail"`
	Items          []Item `json:"items" validate:"required,min=1"`
}

type Item struct {
	Params json.RawMessage        `json:"params"`
	Binary map[string]BinaryField `json:"binary,omitempty"`
}

// BinaryField attaches file bytes to an item, either inline
// (base64-encoded) or as a key into the payload object store.
type BinaryField struct {
	Data     []byte `json:"data,omitempty"`
	Object   string `json:"object,omitempty"`
	FileName string `json:"file_name,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
}
