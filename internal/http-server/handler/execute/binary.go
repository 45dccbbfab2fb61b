package execute

import (
	"context"
	"fmt"

	"placid-connector/internal/domain"
	"placid-connector/internal/http-server/handler/execute/dto"
	"placid-connector/internal/usecase/render"
)

// itemBinarySource resolves binary fields attached to a single request
// item. Inline base64 payloads win over object store references.
type itemBinarySource struct {
	fields map[string]dto.BinaryField
	store  ObjectStore
}

func newItemBinarySource(fields map[string]dto.BinaryField, store ObjectStore) *itemBinarySource {
	return &itemBinarySource{
		fields: fields,
		store:  store,
	}
}

func (s *itemBinarySource) Binary(ctx context.Context, field string) (domain.BinaryPayload, error) {
	bf, ok := s.fields[field]
	if !ok {
		return domain.BinaryPayload{}, render.ErrBinaryNotFound
	}

	if len(bf.Data) > 0 {
		return domain.BinaryPayload{
			Data:     bf.Data,
			FileName: bf.FileName,
			MimeType: bf.MimeType,
		}, nil
	}

	if bf.Object != "" {
		if s.store == nil {
			return domain.BinaryPayload{}, fmt.Errorf("object storage is not configured")
		}

		payload, err := s.store.FetchObject(ctx, bf.Object)
		if err != nil {
			return domain.BinaryPayload{}, fmt.Errorf("fetch object %q: %w", bf.Object, err)
		}

		if bf.FileName != "" {
			payload.FileName = bf.FileName
		}
		if bf.MimeType != "" {
			payload.MimeType = bf.MimeType
		}

		return payload, nil
	}

	return domain.BinaryPayload{}, render.ErrBinaryNotFound
}
