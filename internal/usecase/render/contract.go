package render

import (
	"context"

	"placid-connector/internal/domain"
	"placid-connector/internal/placid"
)

type placidAPI interface {
	Create(ctx context.Context, kind domain.ResourceKind, body any) (placid.Job, error)
	Get(ctx context.Context, kind domain.ResourceKind, id string) (placid.Job, error)
	Delete(ctx context.Context, kind domain.ResourceKind, id string) error
	CreateTemplate(ctx context.Context, body placid.TemplateCreateRequest) (map[string]any, error)
	GetTemplate(ctx context.Context, id string) (map[string]any, error)
	UpdateTemplate(ctx context.Context, id string, body placid.TemplateUpdateRequest) (map[string]any, error)
	DeleteTemplate(ctx context.Context, id string) error
	ListTemplatesPage(ctx context.Context, pageURL, collectionID, search string) (placid.TemplateList, error)
	UploadMedia(ctx context.Context, files []placid.UploadFile) (placid.MediaUploadResponse, error)
}

// BinarySource resolves named binary fields of the execution item currently
// being processed. Implementations return ErrBinaryNotFound for unknown
// fields.
type BinarySource interface {
	Binary(ctx context.Context, field string) (domain.BinaryPayload, error)
}
