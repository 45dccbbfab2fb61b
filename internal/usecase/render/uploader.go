package render

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"placid-connector/internal/domain"
	"placid-connector/internal/placid"
)

// uploadBinary resolves a named binary field of the current item, uploads
// it to the media endpoint and returns the remote file reference. Each call
// is an independent upload; nothing is cached.
func (u *Usecase) uploadBinary(ctx context.Context, source BinarySource, field string) (string, error) {
	payload, err := u.fetchBinary(ctx, source, field)
	if err != nil {
		return "", err
	}

	resp, err := u.api.UploadMedia(ctx, []placid.UploadFile{{
		Key:         "file",
		Name:        uploadFileName(payload),
		ContentType: payload.MimeType,
		Data:        payload.Data,
	}})
	if err != nil {
		if apiErr, ok := placid.AsAPIError(err); ok {
			return "", fmt.Errorf("media upload failed (%d): %s", apiErr.StatusCode, apiErr.Message)
		}
		return "", fmt.Errorf("media upload failed: %w", err)
	}

	if len(resp.Media) == 0 {
		return "", ErrNoMediaInResponse
	}

	u.logger.Debug().Str("field", field).Str("file_id", resp.Media[0].FileID).Msg("Binary payload uploaded")
	return resp.Media[0].FileID, nil
}

func (u *Usecase) fetchBinary(ctx context.Context, source BinarySource, field string) (domain.BinaryPayload, error) {
	if source == nil {
		return domain.BinaryPayload{}, fmt.Errorf("no binary data found for field %q: %w", field, ErrBinaryNotFound)
	}
	payload, err := source.Binary(ctx, field)
	if err != nil {
		if errors.Is(err, ErrBinaryNotFound) {
			return domain.BinaryPayload{}, fmt.Errorf("no binary data found for field %q: %w", field, err)
		}
		return domain.BinaryPayload{}, fmt.Errorf("failed to read binary field %q: %w", field, err)
	}
	return payload, nil
}

// uploadFileName picks the payload's own filename, else derives one from
// the MIME subtype ("upload.bin" when even that is missing).
func uploadFileName(payload domain.BinaryPayload) string {
	if payload.FileName != "" {
		return payload.FileName
	}
	return "upload." + mimeExt(payload.MimeType)
}

func mimeExt(mimeType string) string {
	if _, sub, ok := strings.Cut(mimeType, "/"); ok && sub != "" {
		return sub
	}
	return "bin"
}
