package placid

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/wb-go/wbf/zlog"

	"placid-connector/internal/domain"
)

const (
	// DefaultBaseURL is the Placid API root; REST resources live under
	// <base>/rest.
	DefaultBaseURL = "https://api.placid.app/api"

	integrationName   = "placid-connector"
	integrationHeader = "x-placid-integration"
)

var resourceEndpoints = map[domain.ResourceKind]string{
	domain.ResourceImage:    "/images",
	domain.ResourcePDF:      "/pdfs",
	domain.ResourceVideo:    "/videos",
	domain.ResourceTemplate: "/templates",
}

// Client talks to the Placid REST API. Every request carries the bearer
// token and the integration identifier header.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zlog.Zerolog
}

func NewClient(baseURL, apiKey string, timeout time.Duration, logger *zlog.Zerolog) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

func (c *Client) restURL(path string) string {
	return c.baseURL + "/rest" + path
}

func (c *Client) do(ctx context.Context, method, rawURL string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set(integrationHeader, integrationName)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c.logger.Debug().Str("method", method).Str("url", rawURL).Msg("Placid API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: readErrorMessage(resp.Body)}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, rawURL string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	return c.do(ctx, method, rawURL, reader, "application/json", out)
}

func readErrorMessage(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, 64<<10))
	if err != nil || len(data) == 0 {
		return "request failed"
	}

	var parsed struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &parsed) == nil && parsed.Message != "" {
		return parsed.Message
	}
	return strings.TrimSpace(string(data))
}

// Create submits a generation request for an image, PDF or video and
// returns the creation response as-is.
func (c *Client) Create(ctx context.Context, kind domain.ResourceKind, body any) (Job, error) {
	endpoint, ok := resourceEndpoints[kind]
	if !ok {
		return nil, fmt.Errorf("no create endpoint for resource %q", kind)
	}

	var job Job
	if err := c.doJSON(ctx, http.MethodPost, c.restURL(endpoint), body, &job); err != nil {
		return nil, err
	}
	return job, nil
}

// Get fetches the current representation of a generation job.
func (c *Client) Get(ctx context.Context, kind domain.ResourceKind, id string) (Job, error) {
	endpoint, ok := resourceEndpoints[kind]
	if !ok {
		return nil, fmt.Errorf("no get endpoint for resource %q", kind)
	}

	var job Job
	if err := c.doJSON(ctx, http.MethodGet, c.restURL(endpoint+"/"+url.PathEscape(id)), nil, &job); err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes a resource. The API answers with no body.
func (c *Client) Delete(ctx context.Context, kind domain.ResourceKind, id string) error {
	endpoint, ok := resourceEndpoints[kind]
	if !ok {
		return fmt.Errorf("no delete endpoint for resource %q", kind)
	}
	return c.doJSON(ctx, http.MethodDelete, c.restURL(endpoint+"/"+url.PathEscape(id)), nil, nil)
}

func (c *Client) CreateTemplate(ctx context.Context, body TemplateCreateRequest) (map[string]any, error) {
	var out map[string]any
	if err := c.doJSON(ctx, http.MethodPost, c.restURL("/templates"), body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetTemplate(ctx context.Context, id string) (map[string]any, error) {
	var out map[string]any
	if err := c.doJSON(ctx, http.MethodGet, c.restURL("/templates/"+url.PathEscape(id)), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UpdateTemplate(ctx context.Context, id string, body TemplateUpdateRequest) (map[string]any, error) {
	var out map[string]any
	if err := c.doJSON(ctx, http.MethodPatch, c.restURL("/templates/"+url.PathEscape(id)), body, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteTemplate(ctx context.Context, id string) error {
	return c.Delete(ctx, domain.ResourceTemplate, id)
}

// ListTemplatesPage fetches one page of the template listing. pageURL is the
// absolute links.next URL of a previous page; when empty, the first page is
// requested with the given filters.
func (c *Client) ListTemplatesPage(ctx context.Context, pageURL, collectionID, search string) (TemplateList, error) {
	if pageURL == "" {
		query := url.Values{}
		if collectionID != "" {
			query.Set("collection_id", collectionID)
		}
		if search != "" {
			query.Set("search", search)
		}
		pageURL = c.restURL("/templates")
		if encoded := query.Encode(); encoded != "" {
			pageURL += "?" + encoded
		}
	}

	var page TemplateList
	if err := c.doJSON(ctx, http.MethodGet, pageURL, nil, &page); err != nil {
		return TemplateList{}, err
	}
	return page, nil
}

// UploadMedia posts files as a multipart form to the media endpoint.
func (c *Client) UploadMedia(ctx context.Context, files []UploadFile) (MediaUploadResponse, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, f := range files {
		header := make(map[string][]string)
		header["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Key, f.Name)}
		contentType := f.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		header["Content-Type"] = []string{contentType}

		part, err := writer.CreatePart(header)
		if err != nil {
			return MediaUploadResponse{}, fmt.Errorf("failed to build multipart form: %w", err)
		}
		if _, err := part.Write(f.Data); err != nil {
			return MediaUploadResponse{}, fmt.Errorf("failed to build multipart form: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return MediaUploadResponse{}, fmt.Errorf("failed to build multipart form: %w", err)
	}

	var raw map[string]any
	if err := c.do(ctx, http.MethodPost, c.restURL("/media"), &buf, writer.FormDataContentType(), &raw); err != nil {
		return MediaUploadResponse{}, err
	}

	resp := MediaUploadResponse{Raw: raw}
	if entries, ok := raw["media"].([]any); ok {
		for _, entry := range entries {
			m, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			fileKey, _ := m["file_key"].(string)
			fileID, _ := m["file_id"].(string)
			resp.Media = append(resp.Media, MediaFile{FileKey: fileKey, FileID: fileID})
		}
	}
	return resp, nil
}

// VerifyAuth checks that the configured API key is accepted.
func (c *Client) VerifyAuth(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodGet, c.baseURL+"/n8n/auth", nil, nil)
}
