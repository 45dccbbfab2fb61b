package execute

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"placid-connector/internal/domain"
	"placid-connector/internal/usecase/render"
)

type Operation string

const (
	OpCreate      Operation = "create"
	OpGet         Operation = "get"
	OpDelete      Operation = "delete"
	OpUpdate      Operation = "update"
	OpGetMany     Operation = "getMany"
	OpUploadMedia Operation = "uploadMedia"
)

// Item is one entry of a batch: its host parameters plus the binary fields
// attached to it.
type Item struct {
	Params json.RawMessage
	Binary render.BinarySource
}

type Request struct {
	Resource       domain.ResourceKind
	Operation      Operation
	ContinueOnFail bool
	Items          []Item
}

// Result is one output record. Failed items re-emit their original
// parameters tagged with the error text.
type Result struct {
	JSON      map[string]any `json:"json"`
	Error     string         `json:"error,omitempty"`
	ItemIndex int            `json:"item_index"`
}

type handler func(ctx context.Context, item Item) ([]map[string]any, error)

// Executor dispatches (resource, operation) pairs to render operations and
// assembles per-item results.
type Executor struct {
	render   renderOps
	logger   *zlog.Zerolog
	handlers map[domain.ResourceKind]map[Operation]handler
}

func New(renderUC renderOps, logger *zlog.Zerolog) *Executor {
	e := &Executor{render: renderUC, logger: logger}
	e.handlers = map[domain.ResourceKind]map[Operation]handler{
		domain.ResourceImage: {
			OpCreate: e.imageCreate,
			OpGet:    e.resourceGet(domain.ResourceImage),
			OpDelete: e.resourceDelete(domain.ResourceImage),
		},
		domain.ResourcePDF: {
			OpCreate: e.pdfCreate,
			OpGet:    e.resourceGet(domain.ResourcePDF),
			OpDelete: e.resourceDelete(domain.ResourcePDF),
		},
		domain.ResourceVideo: {
			OpCreate: e.videoCreate,
			OpGet:    e.resourceGet(domain.ResourceVideo),
			OpDelete: e.resourceDelete(domain.ResourceVideo),
		},
		domain.ResourceTemplate: {
			OpCreate:  e.templateCreate,
			OpGet:     e.templateGet,
			OpGetMany: e.templateGetMany,
			OpUpdate:  e.templateUpdate,
			OpDelete:  e.templateDelete,
		},
		domain.ResourceOther: {
			OpUploadMedia: e.mediaUpload,
		},
	}
	return e
}

// Run processes the batch strictly in item order. With ContinueOnFail a
// failing item becomes an error-tagged record and processing moves on;
// otherwise the first failure aborts the batch, returning the results
// produced so far alongside the error.
func (e *Executor) Run(ctx context.Context, req Request) ([]Result, error) {
	ops, ok := e.handlers[req.Resource]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownResource, req.Resource)
	}
	h, ok := ops[req.Operation]
	if !ok {
		return nil, fmt.Errorf("%w: %q for resource %q", ErrUnknownOperation, req.Operation, req.Resource)
	}

	var results []Result
	for i, item := range req.Items {
		records, err := h(ctx, item)
		if err != nil {
			e.logger.Error().
				Err(err).
				Int("item_index", i).
				Str("resource", string(req.Resource)).
				Str("operation", string(req.Operation)).
				Msg("Item failed")

			if req.ContinueOnFail {
				results = append(results, Result{
					JSON:      originalParams(item),
					Error:     err.Error(),
					ItemIndex: i,
				})
				continue
			}
			return results, fmt.Errorf("item %d: %w", i, err)
		}

		for _, record := range records {
			results = append(results, Result{JSON: record, ItemIndex: i})
		}
	}

	return results, nil
}

func originalParams(item Item) map[string]any {
	var params map[string]any
	if err := json.Unmarshal(item.Params, &params); err != nil || params == nil {
		params = map[string]any{}
	}
	return params
}

func single(record map[string]any, err error) ([]map[string]any, error) {
	if err != nil {
		return nil, err
	}
	return []map[string]any{record}, nil
}

func (e *Executor) imageCreate(ctx context.Context, item Item) ([]map[string]any, error) {
	var p imageCreateParams
	if err := decodeParams(item.Params, &p); err != nil {
		return nil, err
	}
	edits, err := decodeLayerEdits(p.Layers)
	if err != nil {
		return nil, err
	}

	return single(e.render.CreateImage(ctx, render.ImageCreateInput{
		TemplateID: p.TemplateID,
		Mode:       configMode(p.ConfigurationMode),
		Edits:      edits,
		LayersJSON: p.LayersJSON,
		Additional: render.AdditionalFields{
			WebhookSuccess: p.AdditionalFields.WebhookSuccess,
			Passthrough:    p.AdditionalFields.Passthrough,
		},
		Binary: item.Binary,
	}))
}

func (e *Executor) pdfCreate(ctx context.Context, item Item) ([]map[string]any, error) {
	var p pdfCreateParams
	if err := decodeParams(item.Params, &p); err != nil {
		return nil, err
	}

	pages := make([]render.PageInput, 0, len(p.Pages))
	for _, page := range p.Pages {
		edits, err := decodeLayerEdits(page.Layers)
		if err != nil {
			return nil, err
		}
		pages = append(pages, render.PageInput{TemplateID: page.TemplateID, Edits: edits})
	}

	return single(e.render.CreatePDF(ctx, render.PDFCreateInput{
		Mode:      configMode(p.ConfigurationMode),
		Pages:     pages,
		PagesJSON: p.PagesJSON,
		Additional: render.AdditionalFields{
			WebhookSuccess: p.AdditionalFields.WebhookSuccess,
			Passthrough:    p.AdditionalFields.Passthrough,
		},
		Binary: item.Binary,
	}))
}

func (e *Executor) videoCreate(ctx context.Context, item Item) ([]map[string]any, error) {
	var p videoCreateParams
	if err := decodeParams(item.Params, &p); err != nil {
		return nil, err
	}

	clips := make([]render.ClipInput, 0, len(p.Clips))
	for _, clip := range p.Clips {
		edits, err := decodeLayerEdits(clip.Layers)
		if err != nil {
			return nil, err
		}
		clips = append(clips, render.ClipInput{
			TemplateID:     clip.TemplateID,
			Edits:          edits,
			Audio:          clip.AudioSettings.Audio,
			AudioDuration:  clip.AudioSettings.AudioDuration,
			AudioTrimStart: clip.AudioSettings.AudioTrimStart,
			AudioTrimEnd:   clip.AudioSettings.AudioTrimEnd,
		})
	}

	return single(e.render.CreateVideo(ctx, render.VideoCreateInput{
		Mode:      configMode(p.ConfigurationMode),
		Clips:     clips,
		ClipsJSON: p.ClipsJSON,
		Additional: render.AdditionalFields{
			WebhookSuccess: p.AdditionalFields.WebhookSuccess,
			Passthrough:    p.AdditionalFields.Passthrough,
		},
		Binary: item.Binary,
	}))
}

func (e *Executor) resourceGet(kind domain.ResourceKind) handler {
	return func(ctx context.Context, item Item) ([]map[string]any, error) {
		var p resourceIDParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return single(e.render.GetResource(ctx, kind, p.idFor(kind)))
	}
}

func (e *Executor) resourceDelete(kind domain.ResourceKind) handler {
	return func(ctx context.Context, item Item) ([]map[string]any, error) {
		var p resourceIDParams
		if err := decodeParams(item.Params, &p); err != nil {
			return nil, err
		}
		return single(e.render.DeleteResource(ctx, kind, p.idFor(kind)))
	}
}

func (e *Executor) templateCreate(ctx context.Context, item Item) ([]map[string]any, error) {
	var p templateCreateParams
	if err := decodeParams(item.Params, &p); err != nil {
		return nil, err
	}
	return single(e.render.CreateTemplate(ctx, render.TemplateCreateInput{
		Title:            p.Title,
		Width:            p.Width,
		Height:           p.Height,
		Tags:             p.AdditionalFields.Tags,
		CustomData:       p.AdditionalFields.CustomData,
		FromTemplate:     p.AdditionalFields.FromTemplate,
		AddToCollections: p.AdditionalFields.AddToCollections,
	}))
}

func (e *Executor) templateGet(ctx context.Context, item Item) ([]map[string]any, error) {
	var p resourceIDParams
	if err := decodeParams(item.Params, &p); err != nil {
		return nil, err
	}
	return single(e.render.GetTemplate(ctx, p.TemplateID))
}

func (e *Executor) templateGetMany(ctx context.Context, item Item) ([]map[string]any, error) {
	var p templateListParams
	if err := decodeParams(item.Params, &p); err != nil {
		return nil, err
	}
	return e.render.ListTemplates(ctx, render.TemplateListInput{
		ReturnAll:    p.ReturnAll,
		CollectionID: p.AdditionalFields.CollectionID,
		Search:       p.AdditionalFields.Search,
	})
}

func (e *Executor) templateUpdate(ctx context.Context, item Item) ([]map[string]any, error) {
	var p templateUpdateParams
	if err := decodeParams(item.Params, &p); err != nil {
		return nil, err
	}
	return single(e.render.UpdateTemplate(ctx, render.TemplateUpdateInput{
		TemplateID: p.TemplateID,
		Title:      p.UpdateFields.Title,
		Tags:       p.UpdateFields.Tags,
		CustomData: p.UpdateFields.CustomData,
	}))
}

func (e *Executor) templateDelete(ctx context.Context, item Item) ([]map[string]any, error) {
	var p resourceIDParams
	if err := decodeParams(item.Params, &p); err != nil {
		return nil, err
	}
	return single(e.render.DeleteTemplate(ctx, p.TemplateID))
}

func (e *Executor) mediaUpload(ctx context.Context, item Item) ([]map[string]any, error) {
	var p mediaUploadParams
	if err := decodeParams(item.Params, &p); err != nil {
		return nil, err
	}

	files := make([]render.MediaFileInput, 0, len(p.Files))
	for _, f := range p.Files {
		files = append(files, render.MediaFileInput{
			Field:    f.File,
			FileName: f.FileName,
			FileKey:  f.FileKey,
		})
	}

	return single(e.render.UploadMedia(ctx, render.MediaUploadInput{
		Files:              files,
		ReturnFullResponse: p.AdditionalFields.ReturnFullResponse,
		Binary:             item.Binary,
	}))
}
