// Package services implements the business operations of the backend on top
// of the storage repositories and the AWS service clients.
package services

import (
	"context"
	"sort"

	"github.com/dmitrijs2005/blogcrm/internal/common"
	"github.com/dmitrijs2005/blogcrm/internal/models"
	"github.com/dmitrijs2005/blogcrm/internal/repositories/posts"
)

// PostService owns the post lifecycle: construction of new records,
// merge-updates by slug, and the published/draft visibility split.
type PostService struct {
	repo posts.Repository
}

func NewPostService(repo posts.Repository) *PostService {
	return &PostService{repo: repo}
}

// CreatePostInput carries the caller-supplied fields of a new post.
type CreatePostInput struct {
	Title   string
	Slug    string
	Content string
	Tags    []string
	Status  string
}

// UpdatePostInput carries a partial update; nil fields keep the stored
// value. Key and discriminant fields cannot be supplied at all.
type UpdatePostInput struct {
	Title   *string
	Content *string
	Status  *string
	Tags    []string
}

// Create builds the full post record (derived excerpt, timestamps,
// publishedAt when created already published) and persists it. Returns
// common.ErrAlreadyExists if the slug is taken; the stored record is then
// untouched.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	now := common.NowISO()
	status := models.NormalizeStatus(in.Status)

	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}

	post := &models.Post{
		Slug:      in.Slug,
		Title:     in.Title,
		Excerpt:   models.Excerpt(in.Content),
		Content:   in.Content,
		Tags:      tags,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if status == models.StatusPublished {
		post.PublishedAt = &now
	}

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdateBySlug merges the supplied fields over the stored record and
// persists the result. publishedAt is latched: it is set the first time the
// status becomes "published" and never changes afterwards, even if the post
// is pulled back to draft.
//
// The read-then-write pair carries no concurrency token, so two concurrent
// updates to one slug are last-write-wins; this matches the store's
// documented behavior.
func (s *PostService) UpdateBySlug(ctx context.Context, slug string, in UpdatePostInput) (*models.Post, error) {
	existing, err := s.repo.Get(ctx, slug)
	if err != nil {
		return nil, err
	}

	now := common.NowISO()

	if in.Title != nil {
		existing.Title = *in.Title
	}
	if in.Content != nil {
		existing.Content = *in.Content
	}
	if in.Tags != nil {
		existing.Tags = in.Tags
	}
	if in.Status != nil {
		if *in.Status == models.StatusPublished && existing.PublishedAt == nil {
			existing.PublishedAt = &now
		}
		existing.Status = *in.Status
	}
	existing.UpdatedAt = now

	if err := s.repo.Put(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// GetBySlug returns the post stored under slug regardless of status, or
// common.ErrNotFound. Public visibility is the router's concern.
func (s *PostService) GetBySlug(ctx context.Context, slug string) (*models.Post, error) {
	return s.repo.Get(ctx, slug)
}

// ListPublished returns all published posts, newest first by publishedAt
// (string order; never-published records sort last). The whole matching set
// is materialized.
func (s *PostService) ListPublished(ctx context.Context) ([]*models.Post, error) {
	items, err := s.repo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAtOrEmpty() > items[j].PublishedAtOrEmpty()
	})
	return items, nil
}

// ListAll returns every post regardless of status, in store order.
func (s *PostService) ListAll(ctx context.Context) ([]*models.Post, error) {
	return s.repo.ListAll(ctx)
}
