package execute

import (
	"context"

	"placid-connector/internal/domain"
	"placid-connector/internal/usecase/render"
)

type renderOps interface {
	CreateImage(ctx context.Context, in render.ImageCreateInput) (map[string]any, error)
	CreatePDF(ctx context.Context, in render.PDFCreateInput) (map[string]any, error)
	CreateVideo(ctx context.Context, in render.VideoCreateInput) (map[string]any, error)
	GetResource(ctx context.Context, kind domain.ResourceKind, id string) (map[string]any, error)
	DeleteResource(ctx context.Context, kind domain.ResourceKind, id string) (map[string]any, error)
	CreateTemplate(ctx context.Context, in render.TemplateCreateInput) (map[string]any, error)
	GetTemplate(ctx context.Context, id string) (map[string]any, error)
	UpdateTemplate(ctx context.Context, in render.TemplateUpdateInput) (map[string]any, error)
	DeleteTemplate(ctx context.Context, id string) (map[string]any, error)
	ListTemplates(ctx context.Context, in render.TemplateListInput) ([]map[string]any, error)
	UploadMedia(ctx context.Context, in render.MediaUploadInput) (map[string]any, error)
}
