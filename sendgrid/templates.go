package sendgrid

import (
	"context"
	"errors"
	"fmt"

	"github.com/s0up4200/clientele/rest"
)

// maxTemplatePageSize is the largest page_size the templates endpoint
// accepts.
const maxTemplatePageSize = 200

// Template is a transactional template.
type Template struct {
	ID         string             `json:"id"`
	Name       string             `json:"name"`
	Generation TemplateGeneration `json:"generation"`
	UpdatedAt  string             `json:"updated_at,omitempty"`
	Versions   []TemplateVersion  `json:"versions,omitempty"`
}

// TemplateVersion is one version of a template. At most one version of a
// template is active.
type TemplateVersion struct {
	ID                   string `json:"id,omitempty"`
	TemplateID           string `json:"template_id,omitempty"`
	Active               int    `json:"active"`
	Name                 string `json:"name"`
	Subject              string `json:"subject,omitempty"`
	HTMLContent          string `json:"html_content,omitempty"`
	PlainContent         string `json:"plain_content,omitempty"`
	GeneratePlainContent *bool  `json:"generate_plain_content,omitempty"`
	Editor               string `json:"editor,omitempty"`
	TestData             string `json:"test_data,omitempty"`
	ThumbnailURL         string `json:"thumbnail_url,omitempty"`
	UpdatedAt            string `json:"updated_at,omitempty"`
}

// PageMetadata is the cursor block of template listings.
type PageMetadata struct {
	Self  string `json:"self,omitempty"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
	Count int    `json:"count,omitempty"`
}

// TemplateList is one page of templates.
type TemplateList struct {
	Result   []Template   `json:"result"`
	Metadata PageMetadata `json:"_metadata"`
}

// ListTemplatesOptions filters and pages ListTemplates. PageSize is
// required by the API and defaults to 200.
type ListTemplatesOptions struct {
	Generations []TemplateGeneration
	PageSize    int
	PageToken   string
}

func (o *ListTemplatesOptions) query() *rest.Query {
	size := maxTemplatePageSize
	q := rest.NewQuery()
	if o != nil {
		if o.PageSize > 0 {
			size = o.PageSize
		}
		gens := make([]string, 0, len(o.Generations))
		for _, g := range o.Generations {
			gens = append(gens, string(g))
		}
		q.CSV("generations", gens).String("page_token", o.PageToken)
	}
	return q.Int("page_size", size)
}

// ListTemplates returns one page of templates. Metadata.Next links the
// following page; ListAllTemplates follows it.
func (c *Client) ListTemplates(ctx context.Context, opts *ListTemplatesOptions) (*TemplateList, error) {
	var out TemplateList
	if err := c.rest.Get(ctx, "/v3/templates", opts.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListAllTemplates follows the _metadata.next cursor until the last page.
func (c *Client) ListAllTemplates(ctx context.Context, generations ...TemplateGeneration) ([]Template, error) {
	opts := &ListTemplatesOptions{Generations: generations}

	all := []Template{}
	path, q := "/v3/templates", opts.query()
	seen := make(map[string]struct{})
	for {
		var page TemplateList
		if err := c.rest.Get(ctx, path, q, &page); err != nil {
			return nil, err
		}
		all = append(all, page.Result...)

		next := page.Metadata.Next
		if next == "" || len(page.Result) == 0 {
			return all, nil
		}
		if _, ok := seen[next]; ok {
			return nil, fmt.Errorf("template pagination loops at %s", next)
		}
		seen[next] = struct{}{}
		path, q = next, nil
	}
}

func templatePath(id, suffix string, params ...any) (string, error) {
	return rest.Path("/v3/templates/{template_id}"+suffix, append([]any{id}, params...)...)
}

// GetTemplate gets a template with all its versions.
func (c *Client) GetTemplate(ctx context.Context, id string) (*Template, error) {
	path, err := templatePath(id, "")
	if err != nil {
		return nil, err
	}

	var out Template
	if err := c.rest.Get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTemplate creates a template. An empty generation means legacy.
func (c *Client) CreateTemplate(ctx context.Context, name string, generation TemplateGeneration) (*Template, error) {
	if name == "" {
		return nil, errors.New("template name is required")
	}

	body := struct {
		Name       string             `json:"name"`
		Generation TemplateGeneration `json:"generation,omitempty"`
	}{name, generation}

	var out Template
	if err := c.rest.Post(ctx, "/v3/templates", nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTemplate renames a template.
func (c *Client) UpdateTemplate(ctx context.Context, id, name string) (*Template, error) {
	path, err := templatePath(id, "")
	if err != nil {
		return nil, err
	}

	body := struct {
		Name string `json:"name"`
	}{name}

	var out Template
	if err := c.rest.Patch(ctx, path, nil, body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTemplate deletes a template and its versions.
func (c *Client) DeleteTemplate(ctx context.Context, id string) error {
	path, err := templatePath(id, "")
	if err != nil {
		return err
	}
	return c.rest.Delete(ctx, path, nil, nil, nil)
}

// CreateTemplateVersion adds a version to a template. Setting Active to 1
// deactivates the current active version.
func (c *Client) CreateTemplateVersion(ctx context.Context, templateID string, version TemplateVersion) (*TemplateVersion, error) {
	path, err := templatePath(templateID, "/versions")
	if err != nil {
		return nil, err
	}

	version.ID = ""
	version.TemplateID = ""

	var out TemplateVersion
	if err := c.rest.Post(ctx, path, nil, version, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActivateTemplateVersion makes a version the one used for sending.
func (c *Client) ActivateTemplateVersion(ctx context.Context, templateID, versionID string) (*TemplateVersion, error) {
	path, err := templatePath(templateID, "/versions/{version_id}/activate", versionID)
	if err != nil {
		return nil, err
	}

	var out TemplateVersion
	if err := c.rest.Post(ctx, path, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
