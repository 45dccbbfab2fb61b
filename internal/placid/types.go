package placid

import (
	"fmt"

	"placid-connector/internal/domain"
)

// Job is the remote representation of a generation job (image, PDF or
// video). Responses are kept as raw maps so the final polled body can be
// returned to callers untouched.
type Job map[string]any

func (j Job) stringField(key string) string {
	switch v := j[key].(type) {
	case string:
		return v
	case float64:
		return fmt.Sprintf("%.0f", v)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ID returns the remote job id, or "" when the creation response carried
// none (synchronously completed jobs).
func (j Job) ID() string { return j.stringField("id") }

// Status returns the job status as reported by the API.
func (j Job) Status() string { return j.stringField("status") }

// ErrorMessage returns the job's own error message, if any.
func (j Job) ErrorMessage() string { return j.stringField("error") }

// ImageCreateRequest carries a domain.LayerPayload (simple mode) or a raw
// decoded JSON object (advanced mode) in Layers.
type ImageCreateRequest struct {
	TemplateUUID   string `json:"template_uuid"`
	Layers         any    `json:"layers"`
	WebhookSuccess string `json:"webhook_success,omitempty"`
	Passthrough    string `json:"passthrough,omitempty"`
}

type Page struct {
	TemplateUUID string              `json:"template_uuid"`
	Layers       domain.LayerPayload `json:"layers"`
}

// PDFCreateRequest carries either []Page (simple mode) or a raw JSON array
// (advanced mode) in Pages.
type PDFCreateRequest struct {
	Pages          any    `json:"pages"`
	WebhookSuccess string `json:"webhook_success,omitempty"`
	Passthrough    string `json:"passthrough,omitempty"`
}

type Clip struct {
	TemplateUUID   string              `json:"template_uuid"`
	Layers         domain.LayerPayload `json:"layers"`
	Audio          string              `json:"audio,omitempty"`
	AudioDuration  string              `json:"audio_duration,omitempty"`
	AudioTrimStart string              `json:"audio_trim_start,omitempty"`
	AudioTrimEnd   string              `json:"audio_trim_end,omitempty"`
}

// VideoCreateRequest carries either []Clip or a raw JSON array in Clips.
type VideoCreateRequest struct {
	Clips          any    `json:"clips"`
	WebhookSuccess string `json:"webhook_success,omitempty"`
	Passthrough    string `json:"passthrough,omitempty"`
}

type TemplateCreateRequest struct {
	Title            string   `json:"title"`
	Width            int      `json:"width"`
	Height           int      `json:"height"`
	Tags             []string `json:"tags,omitempty"`
	CustomData       string   `json:"custom_data,omitempty"`
	FromTemplate     string   `json:"from_template,omitempty"`
	AddToCollections []string `json:"add_to_collections,omitempty"`
}

type TemplateUpdateRequest struct {
	Title      string   `json:"title,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	CustomData *string  `json:"custom_data,omitempty"`
}

// IsEmpty reports whether the update carries no fields at all.
func (r TemplateUpdateRequest) IsEmpty() bool {
	return r.Title == "" && len(r.Tags) == 0 && r.CustomData == nil
}

// TemplateList is one page of the template listing.
type TemplateList struct {
	Data  []map[string]any `json:"data"`
	Links struct {
		Next string `json:"next"`
	} `json:"links"`
}

// UploadFile is one part of a multipart media upload.
type UploadFile struct {
	Key         string
	Name        string
	ContentType string
	Data        []byte
}

type MediaFile struct {
	FileKey string `json:"file_key"`
	FileID  string `json:"file_id"`
}

type MediaUploadResponse struct {
	Media []MediaFile `json:"media"`

	// Raw keeps the full response body for callers that want it verbatim.
	Raw map[string]any `json:"-"`
}
