package execute_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/wb-go/wbf/zlog"

	"placid-connector/internal/domain"
	"placid-connector/internal/usecase/execute"
	"placid-connector/internal/usecase/render"
)

type fakeRender struct {
	imageInputs []render.ImageCreateInput
	imageResp   map[string]any
	imageErr    error

	pdfInputs []render.PDFCreateInput

	listResp []map[string]any
	listErr  error

	deleteCalls []string

	mediaInputs []render.MediaUploadInput
}

func (f *fakeRender) CreateImage(ctx context.Context, in render.ImageCreateInput) (map[string]any, error) {
	f.imageInputs = append(f.imageInputs, in)
	if f.imageErr != nil {
		return nil, f.imageErr
	}
	if f.imageResp != nil {
		return f.imageResp, nil
	}
	return map[string]any{"status": "finished"}, nil
}

func (f *fakeRender) CreatePDF(ctx context.Context, in render.PDFCreateInput) (map[string]any, error) {
	f.pdfInputs = append(f.pdfInputs, in)
	return map[string]any{"status": "finished"}, nil
}

func (f *fakeRender) CreateVideo(ctx context.Context, in render.VideoCreateInput) (map[string]any, error) {
	return map[string]any{"status": "finished"}, nil
}

func (f *fakeRender) GetResource(ctx context.Context, kind domain.ResourceKind, id string) (map[string]any, error) {
	return map[string]any{"id": id, "kind": string(kind)}, nil
}

func (f *fakeRender) DeleteResource(ctx context.Context, kind domain.ResourceKind, id string) (map[string]any, error) {
	f.deleteCalls = append(f.deleteCalls, id)
	return map[string]any{"success": true, "id": id}, nil
}

func (f *fakeRender) CreateTemplate(ctx context.Context, in render.TemplateCreateInput) (map[string]any, error) {
	return map[string]any{"title": in.Title}, nil
}

func (f *fakeRender) GetTemplate(ctx context.Context, id string) (map[string]any, error) {
	return map[string]any{"uuid": id}, nil
}

func (f *fakeRender) UpdateTemplate(ctx context.Context, in render.TemplateUpdateInput) (map[string]any, error) {
	return map[string]any{"uuid": in.TemplateID}, nil
}

func (f *fakeRender) DeleteTemplate(ctx context.Context, id string) (map[string]any, error) {
	f.deleteCalls = append(f.deleteCalls, id)
	return map[string]any{"success": true, "id": id}, nil
}

func (f *fakeRender) ListTemplates(ctx context.Context, in render.TemplateListInput) ([]map[string]any, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResp, nil
}

func (f *fakeRender) UploadMedia(ctx context.Context, in render.MediaUploadInput) (map[string]any, error) {
	f.mediaInputs = append(f.mediaInputs, in)
	return map[string]any{"media": []any{}}, nil
}

func newExecutor(f *fakeRender) *execute.Executor {
	zlog.Init()
	return execute.New(f, &zlog.Logger)
}

func TestRunUnknownResource(t *testing.T) {
	e := newExecutor(&fakeRender{})

	_, err := e.Run(context.Background(), execute.Request{
		Resource:  "spreadsheet",
		Operation: execute.OpCreate,
		Items:     []execute.Item{{}},
	})
	if !errors.Is(err, execute.ErrUnknownResource) {
		t.Errorf("got %v, want ErrUnknownResource", err)
	}
}

func TestRunUnknownOperation(t *testing.T) {
	e := newExecutor(&fakeRender{})

	_, err := e.Run(context.Background(), execute.Request{
		Resource:  domain.ResourceImage,
		Operation: "transmogrify",
		Items:     []execute.Item{{}},
	})
	if !errors.Is(err, execute.ErrUnknownOperation) {
		t.Errorf("got %v, want ErrUnknownOperation", err)
	}
}

func TestRunImageCreatePassesParams(t *testing.T) {
	f := &fakeRender{imageResp: map[string]any{"id": "job-1", "status": "finished"}}
	e := newExecutor(f)

	params := json.RawMessage(`{
		"template_id": "tpl-1",
		"layers": [
			{"layerId": "title|text", "property": "text", "textValue": "Hello"}
		],
		"additionalFields": {"passthrough": "order-77"}
	}`)

	results, err := e.Run(context.Background(), execute.Request{
		Resource:  domain.ResourceImage,
		Operation: execute.OpCreate,
		Items:     []execute.Item{{Params: params}},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(results) != 1 || results[0].JSON["id"] != "job-1" {
		t.Fatalf("unexpected results: %v", results)
	}
	in := f.imageInputs[0]
	if in.TemplateID != "tpl-1" || in.Additional.Passthrough != "order-77" {
		t.Errorf("unexpected input: %+v", in)
	}
	if len(in.Edits) != 1 || in.Edits[0].Text != "Hello" || in.Edits[0].Layer.Name != "title" {
		t.Errorf("unexpected edits: %+v", in.Edits)
	}
}

func TestRunContinueOnFailTagsItem(t *testing.T) {
	f := &fakeRender{imageErr: errors.New("template not found")}
	e := newExecutor(f)

	params := json.RawMessage(`{"template_id": "tpl-bad"}`)
	results, err := e.Run(context.Background(), execute.Request{
		Resource:       domain.ResourceImage,
		Operation:      execute.OpCreate,
		ContinueOnFail: true,
		Items:          []execute.Item{{Params: params}, {Params: params}},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for i, res := range results {
		if res.Error != "template not found" {
			t.Errorf("result %d: got error %q", i, res.Error)
		}
		if res.ItemIndex != i {
			t.Errorf("result %d: got ItemIndex %d", i, res.ItemIndex)
		}
		// The failed item's own parameters come back as its record.
		if res.JSON["template_id"] != "tpl-bad" {
			t.Errorf("result %d: original params lost: %v", i, res.JSON)
		}
	}
}

func TestRunAbortsWithoutContinueOnFail(t *testing.T) {
	f := &fakeRender{imageErr: errors.New("boom")}
	e := newExecutor(f)

	results, err := e.Run(context.Background(), execute.Request{
		Resource:  domain.ResourceImage,
		Operation: execute.OpCreate,
		Items: []execute.Item{
			{Params: json.RawMessage(`{"template_id": "tpl-1"}`)},
			{Params: json.RawMessage(`{"template_id": "tpl-2"}`)},
		},
	})
	if err == nil || !strings.Contains(err.Error(), "item 0") {
		t.Errorf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("got %d results before the failure, want 0", len(results))
	}
	if len(f.imageInputs) != 1 {
		t.Errorf("got %d create calls, want processing to stop after the first", len(f.imageInputs))
	}
}

func TestRunGetManySpreadsTemplates(t *testing.T) {
	f := &fakeRender{listResp: []map[string]any{
		{"title": "one"},
		{"title": "two"},
		{"title": "three"},
	}}
	e := newExecutor(f)

	results, err := e.Run(context.Background(), execute.Request{
		Resource:  domain.ResourceTemplate,
		Operation: execute.OpGetMany,
		Items:     []execute.Item{{Params: json.RawMessage(`{"returnAll": true}`)}},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(results) != 3 {
		t.Fatalf("got %d results, want one per template", len(results))
	}
	for _, res := range results {
		if res.ItemIndex != 0 {
			t.Errorf("all records stem from item 0, got index %d", res.ItemIndex)
		}
	}
}

func TestRunResourceIDSelection(t *testing.T) {
	f := &fakeRender{}
	e := newExecutor(f)

	results, err := e.Run(context.Background(), execute.Request{
		Resource:  domain.ResourcePDF,
		Operation: execute.OpGet,
		Items:     []execute.Item{{Params: json.RawMessage(`{"pdfId": "doc-3", "imageId": "wrong"}`)}},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if results[0].JSON["id"] != "doc-3" {
		t.Errorf("got %v, want the pdfId to win for pdf resources", results[0].JSON)
	}
}

func TestRunMediaUploadMapsFiles(t *testing.T) {
	f := &fakeRender{}
	e := newExecutor(f)

	_, err := e.Run(context.Background(), execute.Request{
		Resource:  domain.ResourceOther,
		Operation: execute.OpUploadMedia,
		Items: []execute.Item{{Params: json.RawMessage(`{
			"files": [{"file": "data", "fileName": "cover.png", "fileKey": "artwork"}],
			"additionalFields": {"returnFullResponse": true}
		}`)}},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	in := f.mediaInputs[0]
	if !in.ReturnFullResponse || len(in.Files) != 1 {
		t.Fatalf("unexpected input: %+v", in)
	}
	file := in.Files[0]
	if file.Field != "data" || file.FileName != "cover.png" || file.FileKey != "artwork" {
		t.Errorf("unexpected file mapping: %+v", file)
	}
}
