package render

import (
	"context"
	"fmt"

	"placid-connector/internal/placid"
)

type MediaFileInput struct {
	// Field names the input binary field holding the file bytes.
	Field string
	// FileName overrides the payload's own filename.
	FileName string
	// FileKey overrides the multipart form key ("file", "file2", ...).
	FileKey string
}

type MediaUploadInput struct {
	Files              []MediaFileInput
	ReturnFullResponse bool
	Binary             BinarySource
}

// UploadMedia uploads up to five binary files in one multipart request and
// returns either the full API response or a trimmed one listing only the
// stored media entries.
func (u *Usecase) UploadMedia(ctx context.Context, in MediaUploadInput) (map[string]any, error) {
	if len(in.Files) == 0 {
		return nil, ErrNoFiles
	}
	if len(in.Files) > 5 {
		return nil, ErrTooManyFiles
	}

	files := make([]placid.UploadFile, 0, len(in.Files))
	for i, f := range in.Files {
		if f.Field == "" {
			return nil, fmt.Errorf("file field name is required for file %d", i+1)
		}

		payload, err := u.fetchBinary(ctx, in.Binary, f.Field)
		if err != nil {
			return nil, err
		}

		key := f.FileKey
		if key == "" {
			if i == 0 {
				key = "file"
			} else {
				key = fmt.Sprintf("file%d", i+1)
			}
		}

		name := f.FileName
		if name == "" {
			name = payload.FileName
		}
		if name == "" {
			name = fmt.Sprintf("file%d.%s", i+1, mimeExt(payload.MimeType))
		}

		files = append(files, placid.UploadFile{
			Key:         key,
			Name:        name,
			ContentType: payload.MimeType,
			Data:        payload.Data,
		})
	}

	resp, err := u.api.UploadMedia(ctx, files)
	if err != nil {
		if apiErr, ok := placid.AsAPIError(err); ok {
			return nil, fmt.Errorf("media upload failed (%d): %s", apiErr.StatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("media upload failed: %w", err)
	}

	if _, ok := resp.Raw["media"].([]any); !ok {
		return nil, ErrNoMediaInResponse
	}

	if in.ReturnFullResponse {
		return resp.Raw, nil
	}

	// The simplified response keeps only the stored file references.
	media := make([]any, 0, len(resp.Media))
	for _, m := range resp.Media {
		media = append(media, map[string]any{
			"file_key": m.FileKey,
			"file_id":  m.FileID,
		})
	}
	return map[string]any{
		"success":        true,
		"uploaded_files": len(media),
		"media":          media,
	}, nil
}
