package render

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"placid-connector/internal/domain"
	"placid-connector/internal/placid"
)

func mediaUploadFake() *fakeAPI {
	return &fakeAPI{
		uploadResp: placid.MediaUploadResponse{
			Media: []placid.MediaFile{{FileKey: "file", FileID: "media:one"}},
			Raw: map[string]any{
				"media": []any{map[string]any{
					"file_key": "file",
					"file_id":  "media:one",
					"url":      "https://cdn.example/media/one.png",
				}},
				"status": "ok",
			},
		},
	}
}

func TestUploadMediaSimplifiedResponse(t *testing.T) {
	api := mediaUploadFake()
	u, _ := newTestUsecase(api)

	source := &fakeBinarySource{payloads: map[string]domain.BinaryPayload{
		"data": {Data: []byte{1, 2}, FileName: "a.png", MimeType: "image/png"},
	}}

	got, err := u.UploadMedia(context.Background(), MediaUploadInput{
		Files:  []MediaFileInput{{Field: "data"}},
		Binary: source,
	})
	if err != nil {
		t.Fatalf("UploadMedia: %v", err)
	}

	if got["success"] != true {
		t.Errorf("got success %v, want true", got["success"])
	}
	if got["uploaded_files"] != 1 {
		t.Errorf("got uploaded_files %v, want 1", got["uploaded_files"])
	}

	media, ok := got["media"].([]any)
	if !ok || len(media) != 1 {
		t.Fatalf("unexpected media: %v", got["media"])
	}
	want := map[string]any{"file_key": "file", "file_id": "media:one"}
	if !reflect.DeepEqual(media[0], want) {
		t.Errorf("got entry %v, want trimmed %v", media[0], want)
	}
	if _, ok := got["status"]; ok {
		t.Error("simplified response must not carry extra top-level fields")
	}
}

func TestUploadMediaFullResponse(t *testing.T) {
	api := mediaUploadFake()
	u, _ := newTestUsecase(api)

	source := &fakeBinarySource{payloads: map[string]domain.BinaryPayload{
		"data": {Data: []byte{1, 2}, FileName: "a.png", MimeType: "image/png"},
	}}

	got, err := u.UploadMedia(context.Background(), MediaUploadInput{
		Files:              []MediaFileInput{{Field: "data"}},
		ReturnFullResponse: true,
		Binary:             source,
	})
	if err != nil {
		t.Fatalf("UploadMedia: %v", err)
	}

	if got["status"] != "ok" {
		t.Errorf("full response lost fields: %v", got)
	}
}

func TestUploadMediaFormKeysAndNames(t *testing.T) {
	api := mediaUploadFake()
	u, _ := newTestUsecase(api)

	source := &fakeBinarySource{payloads: map[string]domain.BinaryPayload{
		"first":  {Data: []byte{1}, MimeType: "image/png"},
		"second": {Data: []byte{2}, FileName: "named.jpg", MimeType: "image/jpeg"},
	}}

	_, err := u.UploadMedia(context.Background(), MediaUploadInput{
		Files: []MediaFileInput{
			{Field: "first"},
			{Field: "second"},
		},
		Binary: source,
	})
	if err != nil {
		t.Fatalf("UploadMedia: %v", err)
	}

	files := api.uploadCalls[0]
	if files[0].Key != "file" || files[1].Key != "file2" {
		t.Errorf("got keys %q and %q, want file and file2", files[0].Key, files[1].Key)
	}
	// No filename anywhere: derive one from the MIME subtype.
	if files[0].Name != "file1.png" {
		t.Errorf("got name %q, want file1.png", files[0].Name)
	}
	if files[1].Name != "named.jpg" {
		t.Errorf("got name %q, want named.jpg", files[1].Name)
	}
}

func TestUploadMediaLimits(t *testing.T) {
	u, _ := newTestUsecase(&fakeAPI{})

	_, err := u.UploadMedia(context.Background(), MediaUploadInput{})
	if !errors.Is(err, ErrNoFiles) {
		t.Errorf("got %v, want ErrNoFiles", err)
	}

	files := make([]MediaFileInput, 6)
	for i := range files {
		files[i] = MediaFileInput{Field: "data"}
	}
	_, err = u.UploadMedia(context.Background(), MediaUploadInput{Files: files})
	if !errors.Is(err, ErrTooManyFiles) {
		t.Errorf("got %v, want ErrTooManyFiles", err)
	}
}

func TestUploadMediaRequiresFieldName(t *testing.T) {
	u, _ := newTestUsecase(&fakeAPI{})

	_, err := u.UploadMedia(context.Background(), MediaUploadInput{
		Files: []MediaFileInput{{Field: "data"}, {}},
		Binary: &fakeBinarySource{payloads: map[string]domain.BinaryPayload{
			"data": {Data: []byte{1}},
		}},
	})
	if err == nil || !strings.Contains(err.Error(), "file field name is required for file 2") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestUploadMediaMissingBinary(t *testing.T) {
	u, _ := newTestUsecase(&fakeAPI{})

	_, err := u.UploadMedia(context.Background(), MediaUploadInput{
		Files:  []MediaFileInput{{Field: "nope"}},
		Binary: &fakeBinarySource{},
	})
	if !errors.Is(err, ErrBinaryNotFound) {
		t.Errorf("got %v, want ErrBinaryNotFound", err)
	}
	if err == nil || !strings.Contains(err.Error(), `no binary data found for field "nope"`) {
		t.Errorf("unexpected error text: %v", err)
	}
}

func TestUploadMediaMalformedResponse(t *testing.T) {
	api := &fakeAPI{
		uploadResp: placid.MediaUploadResponse{Raw: map[string]any{"status": "ok"}},
	}
	u, _ := newTestUsecase(api)

	_, err := u.UploadMedia(context.Background(), MediaUploadInput{
		Files: []MediaFileInput{{Field: "data"}},
		Binary: &fakeBinarySource{payloads: map[string]domain.BinaryPayload{
			"data": {Data: []byte{1}},
		}},
	})
	if !errors.Is(err, ErrNoMediaInResponse) {
		t.Errorf("got %v, want ErrNoMediaInResponse", err)
	}
}
