package render

import (
	"context"
	"time"

	"github.com/wb-go/wbf/zlog"

	"placid-connector/internal/domain"
	"placid-connector/internal/placid"
)

// fakeAPI implements placidAPI with canned responses and call recording.
type fakeAPI struct {
	createJob    placid.Job
	createErr    error
	createBodies []any

	getJobs  []placid.Job
	getErr   error
	getCalls int

	deleteErr   error
	deletedIDs  []string
	deletedKind domain.ResourceKind

	templateResp map[string]any
	templateErr  error

	pages     []placid.TemplateList
	pageURLs  []string
	pagesErr  error
	pageIndex int

	uploadResp  placid.MediaUploadResponse
	uploadErr   error
	uploadCalls [][]placid.UploadFile
}

func (f *fakeAPI) Create(ctx context.Context, kind domain.ResourceKind, body any) (placid.Job, error) {
	f.createBodies = append(f.createBodies, body)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.createJob, nil
}

func (f *fakeAPI) Get(ctx context.Context, kind domain.ResourceKind, id string) (placid.Job, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	idx := f.getCalls
	if idx >= len(f.getJobs) {
		idx = len(f.getJobs) - 1
	}
	f.getCalls++
	return f.getJobs[idx], nil
}

func (f *fakeAPI) Delete(ctx context.Context, kind domain.ResourceKind, id string) error {
	f.deletedKind = kind
	f.deletedIDs = append(f.deletedIDs, id)
	return f.deleteErr
}

func (f *fakeAPI) CreateTemplate(ctx context.Context, body placid.TemplateCreateRequest) (map[string]any, error) {
	return f.templateResp, f.templateErr
}

func (f *fakeAPI) GetTemplate(ctx context.Context, id string) (map[string]any, error) {
	return f.templateResp, f.templateErr
}

func (f *fakeAPI) UpdateTemplate(ctx context.Context, id string, body placid.TemplateUpdateRequest) (map[string]any, error) {
	return f.templateResp, f.templateErr
}

func (f *fakeAPI) DeleteTemplate(ctx context.Context, id string) error {
	f.deletedIDs = append(f.deletedIDs, id)
	return f.deleteErr
}

func (f *fakeAPI) ListTemplatesPage(ctx context.Context, pageURL, collectionID, search string) (placid.TemplateList, error) {
	f.pageURLs = append(f.pageURLs, pageURL)
	if f.pagesErr != nil {
		return placid.TemplateList{}, f.pagesErr
	}
	page := f.pages[f.pageIndex]
	f.pageIndex++
	return page, nil
}

func (f *fakeAPI) UploadMedia(ctx context.Context, files []placid.UploadFile) (placid.MediaUploadResponse, error) {
	f.uploadCalls = append(f.uploadCalls, files)
	if f.uploadErr != nil {
		return placid.MediaUploadResponse{}, f.uploadErr
	}
	return f.uploadResp, nil
}

// fakeBinarySource serves payloads by field name.
type fakeBinarySource struct {
	payloads map[string]domain.BinaryPayload
}

func (s *fakeBinarySource) Binary(ctx context.Context, field string) (domain.BinaryPayload, error) {
	payload, ok := s.payloads[field]
	if !ok {
		return domain.BinaryPayload{}, ErrBinaryNotFound
	}
	return payload, nil
}

// newTestUsecase wires a usecase whose poll waits return instantly while
// still being counted.
func newTestUsecase(api *fakeAPI) (*Usecase, *int) {
	zlog.Init()
	u := New(api, &zlog.Logger)

	sleeps := 0
	u.sleep = func(ctx context.Context, d time.Duration) error {
		sleeps++
		return nil
	}
	return u, &sleeps
}
