package render

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/wb-go/wbf/zlog"

	"placid-connector/internal/domain"
	"placid-connector/internal/placid"
)

type ConfigMode string

const (
	ModeSimple   ConfigMode = "simple"
	ModeAdvanced ConfigMode = "advanced"
)

// AdditionalFields are optional create-request extras passed through to the
// API verbatim.
type AdditionalFields struct {
	WebhookSuccess string
	Passthrough    string
}

type Usecase struct {
	api    placidAPI
	logger *zlog.Zerolog

	// sleep is the poll-interval wait, replaceable in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

func New(api placidAPI, logger *zlog.Zerolog) *Usecase {
	return &Usecase{
		api:    api,
		logger: logger,
		sleep:  waitInterval,
	}
}

type ImageCreateInput struct {
	TemplateID string
	Mode       ConfigMode
	Edits      []domain.LayerEdit
	LayersJSON json.RawMessage
	Additional AdditionalFields
	Binary     BinarySource
}

// CreateImage submits an image generation request and waits for the job to
// finish.
func (u *Usecase) CreateImage(ctx context.Context, in ImageCreateInput) (map[string]any, error) {
	if in.TemplateID == "" {
		return nil, ErrMissingTemplateID
	}

	body := placid.ImageCreateRequest{
		TemplateUUID:   in.TemplateID,
		Layers:         domain.LayerPayload{},
		WebhookSuccess: in.Additional.WebhookSuccess,
		Passthrough:    in.Additional.Passthrough,
	}

	if in.Mode == ModeAdvanced {
		// Layer values are passed through as-is; only the outer object
		// shape is enforced.
		var layers map[string]any
		if err := json.Unmarshal(in.LayersJSON, &layers); err != nil {
			return nil, fmt.Errorf("invalid JSON in layers configuration: %w", err)
		}
		body.Layers = layers
	} else {
		layers, err := u.buildLayers(ctx, in.Edits, in.Binary)
		if err != nil {
			return nil, err
		}
		body.Layers = layers
	}

	job, err := u.createAndAwait(ctx, domain.ResourceImage, body)
	if err != nil {
		return nil, err
	}
	return job, nil
}

type PageInput struct {
	TemplateID string
	Edits      []domain.LayerEdit
}

type PDFCreateInput struct {
	Mode       ConfigMode
	Pages      []PageInput
	PagesJSON  json.RawMessage
	Additional AdditionalFields
	Binary     BinarySource
}

// CreatePDF submits a multi-page PDF generation request and waits for the
// job to finish.
func (u *Usecase) CreatePDF(ctx context.Context, in PDFCreateInput) (map[string]any, error) {
	body := placid.PDFCreateRequest{
		WebhookSuccess: in.Additional.WebhookSuccess,
		Passthrough:    in.Additional.Passthrough,
	}

	if in.Mode == ModeAdvanced {
		pages, err := decodeJSONArray(in.PagesJSON, "pages")
		if err != nil {
			return nil, err
		}
		body.Pages = pages
	} else {
		if len(in.Pages) == 0 {
			return nil, ErrNoPages
		}

		pages := make([]placid.Page, 0, len(in.Pages))
		for _, page := range in.Pages {
			if page.TemplateID == "" {
				return nil, fmt.Errorf("%w for each page", ErrMissingTemplateID)
			}
			layers, err := u.buildLayers(ctx, page.Edits, in.Binary)
			if err != nil {
				return nil, err
			}
			pages = append(pages, placid.Page{TemplateUUID: page.TemplateID, Layers: layers})
		}
		body.Pages = pages
	}

	job, err := u.createAndAwait(ctx, domain.ResourcePDF, body)
	if err != nil {
		return nil, err
	}
	return job, nil
}

type ClipInput struct {
	TemplateID     string
	Edits          []domain.LayerEdit
	Audio          string
	AudioDuration  string
	AudioTrimStart string
	AudioTrimEnd   string
}

type VideoCreateInput struct {
	Mode       ConfigMode
	Clips      []ClipInput
	ClipsJSON  json.RawMessage
	Additional AdditionalFields
	Binary     BinarySource
}

// CreateVideo submits a multi-clip video generation request and waits for
// the job to finish.
func (u *Usecase) CreateVideo(ctx context.Context, in VideoCreateInput) (map[string]any, error) {
	body := placid.VideoCreateRequest{
		WebhookSuccess: in.Additional.WebhookSuccess,
		Passthrough:    in.Additional.Passthrough,
	}

	if in.Mode == ModeAdvanced {
		clips, err := decodeJSONArray(in.ClipsJSON, "clips")
		if err != nil {
			return nil, err
		}
		body.Clips = clips
	} else {
		if len(in.Clips) == 0 {
			return nil, ErrNoClips
		}

		clips := make([]placid.Clip, 0, len(in.Clips))
		for _, clip := range in.Clips {
			if clip.TemplateID == "" {
				return nil, fmt.Errorf("%w for each clip", ErrMissingTemplateID)
			}
			layers, err := u.buildLayers(ctx, clip.Edits, in.Binary)
			if err != nil {
				return nil, err
			}
			clips = append(clips, placid.Clip{
				TemplateUUID:   clip.TemplateID,
				Layers:         layers,
				Audio:          clip.Audio,
				AudioDuration:  clip.AudioDuration,
				AudioTrimStart: clip.AudioTrimStart,
				AudioTrimEnd:   clip.AudioTrimEnd,
			})
		}
		body.Clips = clips
	}

	job, err := u.createAndAwait(ctx, domain.ResourceVideo, body)
	if err != nil {
		return nil, err
	}
	return job, nil
}

// GetResource fetches the current representation of an image, PDF or video
// job.
func (u *Usecase) GetResource(ctx context.Context, kind domain.ResourceKind, id string) (map[string]any, error) {
	if id == "" {
		return nil, fmt.Errorf("%s %w", strings.ToLower(kindLabel(kind)), ErrMissingResourceID)
	}
	job, err := u.api.Get(ctx, kind, id)
	if err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteResource removes an image, PDF or video. The API answers with no
// body, so a confirmation record is synthesized.
func (u *Usecase) DeleteResource(ctx context.Context, kind domain.ResourceKind, id string) (map[string]any, error) {
	if id == "" {
		return nil, fmt.Errorf("%s %w", strings.ToLower(kindLabel(kind)), ErrMissingResourceID)
	}
	if err := u.api.Delete(ctx, kind, id); err != nil {
		return nil, err
	}

	u.logger.Info().Str("resource", string(kind)).Str("id", id).Msg("Resource deleted")
	return map[string]any{
		"success": true,
		"message": fmt.Sprintf("%s %s deleted successfully", kindLabel(kind), id),
		"id":      id,
	}, nil
}

// decodeJSONArray rejects advanced-mode payloads that are not JSON arrays.
func decodeJSONArray(raw json.RawMessage, what string) ([]any, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s configuration: %w", what, err)
	}
	items, ok := parsed.([]any)
	if !ok {
		return nil, fmt.Errorf("%s JSON must be an array", what)
	}
	return items, nil
}
