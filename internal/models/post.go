// Package models defines the two entity kinds stored in the blog table and
// the derivation rules shared by every storage driver.
package models

import (
	"regexp"
	"strings"
)

// Post statuses. Anything other than StatusPublished is invisible to the
// public routes.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

const excerptMaxLen = 180

var tagPattern = regexp.MustCompile(`<[^>]+>`)

// Post is a blog article keyed by its slug.
//
// PublishedAt is nil until the status first becomes "published" and is then
// fixed at that moment forever, even if the post later goes back to draft.
type Post struct {
	Slug        string   `json:"slug" dynamodbav:"slug"`
	Title       string   `json:"title" dynamodbav:"title"`
	Excerpt     string   `json:"excerpt" dynamodbav:"excerpt"`
	Content     string   `json:"content" dynamodbav:"content"`
	Tags        []string `json:"tags" dynamodbav:"tags"`
	Status      string   `json:"status" dynamodbav:"status"`
	CreatedAt   string   `json:"createdAt" dynamodbav:"createdAt"`
	UpdatedAt   string   `json:"updatedAt" dynamodbav:"updatedAt"`
	PublishedAt *string  `json:"publishedAt" dynamodbav:"publishedAt"`
}

// PostSummary is the shape returned by the list endpoints; it never carries
// content or storage keys.
type PostSummary struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Tags        []string `json:"tags"`
	PublishedAt *string  `json:"publishedAt"`
	Status      string   `json:"status,omitempty"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
}

// Summary projects the public list fields of a post.
func (p *Post) Summary() PostSummary {
	return PostSummary{
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		Tags:        p.Tags,
		PublishedAt: p.PublishedAt,
	}
}

// AdminSummary projects the admin list fields (public fields plus status and
// updatedAt).
func (p *Post) AdminSummary() PostSummary {
	s := p.Summary()
	s.Status = p.Status
	s.UpdatedAt = p.UpdatedAt
	return s
}

// PublishedAtOrEmpty returns the publish timestamp, or "" when the post has
// never been published. Missing values sort last under descending string
// order.
func (p *Post) PublishedAtOrEmpty() string {
	if p.PublishedAt == nil {
		return ""
	}
	return *p.PublishedAt
}

// Excerpt derives the list preview from raw content: markup tags are
// stripped, the plain text is cut at 180 characters and "..." is appended
// when anything remains. Empty content yields an empty excerpt.
func Excerpt(content string) string {
	if content == "" {
		return ""
	}
	plain := tagPattern.ReplaceAllString(content, "")
	runes := []rune(plain)
	if len(runes) > excerptMaxLen {
		runes = runes[:excerptMaxLen]
	}
	if len(runes) == 0 {
		return ""
	}
	return string(runes) + "..."
}

// NormalizeStatus maps an empty status to draft; any other value is kept
// verbatim, matching the stored free-form field.
func NormalizeStatus(status string) string {
	if strings.TrimSpace(status) == "" {
		return StatusDraft
	}
	return status
}
