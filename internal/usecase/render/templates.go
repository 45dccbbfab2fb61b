package render

import (
	"context"
	"errors"
	"strings"

	"placid-connector/internal/placid"
)

type TemplateCreateInput struct {
	Title            string
	Width            int
	Height           int
	Tags             string
	CustomData       string
	FromTemplate     string
	AddToCollections string
}

func (u *Usecase) CreateTemplate(ctx context.Context, in TemplateCreateInput) (map[string]any, error) {
	if in.Title == "" {
		return nil, errors.New("template title is required")
	}

	body := placid.TemplateCreateRequest{
		Title:        in.Title,
		Width:        in.Width,
		Height:       in.Height,
		Tags:         splitCommaList(in.Tags),
		CustomData:   in.CustomData,
		FromTemplate: in.FromTemplate,
	}
	if in.AddToCollections != "" {
		body.AddToCollections = splitCommaList(in.AddToCollections)
	}

	return u.api.CreateTemplate(ctx, body)
}

func (u *Usecase) GetTemplate(ctx context.Context, id string) (map[string]any, error) {
	if id == "" {
		return nil, ErrMissingTemplateID
	}
	return u.api.GetTemplate(ctx, id)
}

type TemplateUpdateInput struct {
	TemplateID string
	Title      string
	Tags       string

	// CustomData is applied even when empty; nil means "leave unchanged".
	CustomData *string
}

func (u *Usecase) UpdateTemplate(ctx context.Context, in TemplateUpdateInput) (map[string]any, error) {
	if in.TemplateID == "" {
		return nil, ErrMissingTemplateID
	}

	body := placid.TemplateUpdateRequest{
		Title:      in.Title,
		Tags:       splitCommaList(in.Tags),
		CustomData: in.CustomData,
	}
	if body.IsEmpty() {
		return nil, ErrNoUpdateFields
	}

	return u.api.UpdateTemplate(ctx, in.TemplateID, body)
}

func (u *Usecase) DeleteTemplate(ctx context.Context, id string) (map[string]any, error) {
	if id == "" {
		return nil, ErrMissingTemplateID
	}
	if err := u.api.DeleteTemplate(ctx, id); err != nil {
		return nil, err
	}

	u.logger.Info().Str("template_id", id).Msg("Template deleted")
	return map[string]any{
		"success": true,
		"message": "Template " + id + " deleted successfully",
		"id":      id,
	}, nil
}

type TemplateListInput struct {
	ReturnAll    bool
	CollectionID string
	Search       string
}

// ListTemplates fetches the template listing, following links.next across
// pages while ReturnAll is set. Page data arrays are concatenated in
// request order. The search filter is forwarded as a query parameter and
// applied to titles locally as well, since not every deployment filters
// server-side.
func (u *Usecase) ListTemplates(ctx context.Context, in TemplateListInput) ([]map[string]any, error) {
	var all []map[string]any
	pageURL := ""

	for {
		page, err := u.api.ListTemplatesPage(ctx, pageURL, in.CollectionID, in.Search)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Data...)

		if !in.ReturnAll || page.Links.Next == "" {
			break
		}
		pageURL = page.Links.Next
	}

	if in.Search != "" {
		all = filterByTitle(all, in.Search)
	}
	return all, nil
}

func filterByTitle(templates []map[string]any, search string) []map[string]any {
	search = strings.ToLower(search)
	out := make([]map[string]any, 0, len(templates))
	for _, tpl := range templates {
		title, _ := tpl["title"].(string)
		if strings.Contains(strings.ToLower(title), search) {
			out = append(out, tpl)
		}
	}
	return out
}

func splitCommaList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}
