// Package client is a typed HTTP client for the blog-crm backend API. It
// covers every route of both deployment forms; admin calls attach the
// configured bearer token.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// APIError is a non-2xx response decoded into its stable error code.
type APIError struct {
	StatusCode int
	Code       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Code)
}

// Post is a full blog article as returned by the single-post routes.
type Post struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"`
	Tags        []string `json:"tags"`
	Status      string   `json:"status"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
	PublishedAt *string  `json:"publishedAt"`
}

// PostSummary is a list entry; admin lists additionally carry status and
// updatedAt.
type PostSummary struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Tags        []string `json:"tags"`
	PublishedAt *string  `json:"publishedAt"`
	Status      string   `json:"status,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// Lead is a stored contact-form submission.
type Lead struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Message   string  `json:"message"`
	Source    *string `json:"source"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
}

// HealthStatus is the health-check response.
type HealthStatus struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Region  string `json:"region"`
}

// ContactInput is a contact-form submission.
type ContactInput struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Message string  `json:"message"`
	Source  *string `json:"source,omitempty"`
}

// CreatePostInput creates a new post; Title and Slug are required by the API.
type CreatePostInput struct {
	Title   string   `json:"title"`
	Slug    string   `json:"slug"`
	Content string   `json:"content,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	Status  string   `json:"status,omitempty"`
}

// UpdatePostInput is a partial update; nil fields keep the stored value.
type UpdatePostInput struct {
	Title   *string  `json:"title,omitempty"`
	Content *string  `json:"content,omitempty"`
	Status  *string  `json:"status,omitempty"`
	Tags    []string `json:"tags,omitempty"`
}

// UploadMediaInput carries one base64-encoded media upload.
type UploadMediaInput struct {
	Base64Data  string `json:"base64Data"`
	ContentType string `json:"contentType,omitempty"`
	Filename    string `json:"filename,omitempty"`
}

// MediaUpload is the stored object key and its public URL.
type MediaUpload struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// Option configures a Client.
type Option func(*Client)

// WithToken sets the bearer token sent on every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// Client talks to one backend deployment.
type Client struct {
	baseURL string
	token   string
	hc      *http.Client
}

// New creates a client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		hc:      &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Health calls GET /health.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	var out HealthStatus
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListPosts returns the published posts, newest first.
func (c *Client) ListPosts(ctx context.Context) ([]PostSummary, error) {
	var out []PostSummary
	if err := c.do(ctx, http.MethodGet, "/posts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPost fetches one published post by slug.
func (c *Client) GetPost(ctx context.Context, slug string) (*Post, error) {
	var out Post
	if err := c.do(ctx, http.MethodGet, "/posts/"+slug, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitContact sends a contact-form submission and returns the new lead id.
func (c *Client) SubmitContact(ctx context.Context, in ContactInput) (string, error) {
	var out struct {
		LeadID string `json:"leadId"`
	}
	if err := c.do(ctx, http.MethodPost, "/contact", in, &out); err != nil {
		return "", err
	}
	return out.LeadID, nil
}

// ListAllPosts returns every post including drafts.
func (c *Client) ListAllPosts(ctx context.Context) ([]PostSummary, error) {
	var out []PostSummary
	if err := c.do(ctx, http.MethodGet, "/admin/posts", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreatePost creates a new post.
func (c *Client) CreatePost(ctx context.Context, in CreatePostInput) (*Post, error) {
	var out Post
	if err := c.do(ctx, http.MethodPost, "/admin/posts", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetPostAdmin fetches one post by slug regardless of status.
func (c *Client) GetPostAdmin(ctx context.Context, slug string) (*Post, error) {
	var out Post
	if err := c.do(ctx, http.MethodGet, "/admin/posts/"+slug, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePost applies a partial update to the post stored under slug.
func (c *Client) UpdatePost(ctx context.Context, slug string, in UpdatePostInput) (*Post, error) {
	var out Post
	if err := c.do(ctx, http.MethodPut, "/admin/posts/"+slug, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListLeads returns every lead, newest first.
func (c *Client) ListLeads(ctx context.Context) ([]Lead, error) {
	var out []Lead
	if err := c.do(ctx, http.MethodGet, "/admin/leads", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UploadMedia uploads a base64-encoded file to the media bucket.
func (c *Client) UploadMedia(ctx context.Context, in UploadMediaInput) (*MediaUpload, error) {
	var out MediaUpload
	if err := c.do(ctx, http.MethodPost, "/admin/media", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Code string `json:"error"`
		}
		_ = json.Unmarshal(raw, &apiErr)
		return &APIError{StatusCode: resp.StatusCode, Code: apiErr.Code}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
