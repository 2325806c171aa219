package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/daheemath/mathtutor-backend/internal/config"
)

// GROQ projections for the post document type.
const (
	listQuery = `*[_type == "post" && category == $category] {
		_id, title, slug, excerpt, thumbnail, isPinned, publishedAt
	}`
	detailQuery = `*[_type == "post" && slug.current == $slug][0] {
		_id, title, slug, excerpt, category, thumbnail, body, isPinned, publishedAt
	}`
)

// Client is a read-only client for the Sanity content API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	projectID  string
	dataset    string
	token      string
	log        zerolog.Logger
}

// NewClient creates a CMS client from configuration. When cfg.SanityUseCDN
// is set, queries go through Sanity's CDN host (cached, cheaper); otherwise
// they hit the live API host.
func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	host := "api.sanity.io"
	if cfg.SanityUseCDN {
		host = "apicdn.sanity.io"
	}

	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL: fmt.Sprintf("https://%s.%s/v%s/data/query/%s",
			cfg.SanityProjectID, host, cfg.SanityAPIVersion, cfg.SanityDataset),
		projectID: cfg.SanityProjectID,
		dataset:   cfg.SanityDataset,
		token:     cfg.SanityToken,
		log:       log.With().Str("component", "cms_client").Logger(),
	}
}

// ListByCategory fetches every post of a category in its listing shape.
// No ordering is requested; callers sort.
func (c *Client) ListByCategory(ctx context.Context, category Category) ([]Post, error) {
	var posts []Post
	params := map[string]string{"category": string(category)}
	if err := c.query(ctx, listQuery, params, &posts); err != nil {
		return nil, err
	}

	for i := range posts {
		posts[i].ThumbnailURL = c.ImageURL(posts[i].Thumbnail)
	}
	return posts, nil
}

// GetBySlug fetches a single post with its full body. Returns (nil, nil)
// when no post has the slug.
func (c *Client) GetBySlug(ctx context.Context, slug string) (*PostDetail, error) {
	var detail *PostDetail
	params := map[string]string{"slug": slug}
	if err := c.query(ctx, detailQuery, params, &detail); err != nil {
		return nil, err
	}
	if detail == nil || detail.ID == "" {
		return nil, nil
	}

	detail.ThumbnailURL = c.ImageURL(detail.Thumbnail)
	return detail, nil
}

// ImageURL builds the CDN URL for a Sanity image reference, or "" when the
// reference is absent or malformed. Refs look like
// image-{id}-{width}x{height}-{format}.
func (c *Client) ImageURL(img *Image) string {
	if img == nil || img.Asset.Ref == "" {
		return ""
	}

	parts := strings.Split(img.Asset.Ref, "-")
	if len(parts) != 4 || parts[0] != "image" {
		return ""
	}

	return fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s-%s.%s",
		c.projectID, c.dataset, parts[1], parts[2], parts[3])
}

// queryResponse is the envelope the Sanity query API wraps results in.
type queryResponse struct {
	Result json.RawMessage `json:"result"`
}

// query executes a GROQ query with string parameters and decodes the
// result into out. Parameters are passed the way the HTTP API expects:
// one $name query-string key per parameter, JSON-encoded value.
func (c *Client) query(ctx context.Context, groq string, params map[string]string, out interface{}) error {
	values := url.Values{}
	values.Set("query", groq)
	for name, value := range params {
		values.Set("$"+name, strconv.Quote(value))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+values.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build cms request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("cms request: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read cms response: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		c.log.Error().
			Int("status", res.StatusCode).
			Str("body", string(body)).
			Msg("CMS query failed")
		return fmt.Errorf("cms responded with status %d", res.StatusCode)
	}

	var envelope queryResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("unmarshal cms envelope: %w", err)
	}

	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}

	if err := json.Unmarshal(envelope.Result, out); err != nil {
		return fmt.Errorf("unmarshal cms result: %w", err)
	}
	return nil
}
