package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/blogcrm/internal/common"
	"github.com/dmitrijs2005/blogcrm/internal/models"
)

// fakePostRepo is an in-memory posts.Repository for service tests.
type fakePostRepo struct {
	store   map[string]models.Post
	listErr error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{store: map[string]models.Post{}}
}

func (f *fakePostRepo) Create(ctx context.Context, post *models.Post) error {
	if _, ok := f.store[post.Slug]; ok {
		return common.ErrAlreadyExists
	}
	f.store[post.Slug] = *post
	return nil
}

func (f *fakePostRepo) Get(ctx context.Context, slug string) (*models.Post, error) {
	p, ok := f.store[slug]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (f *fakePostRepo) Put(ctx context.Context, post *models.Post) error {
	f.store[post.Slug] = *post
	return nil
}

func (f *fakePostRepo) ListPublished(ctx context.Context) ([]*models.Post, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []*models.Post
	for _, p := range f.store {
		if p.Status == models.StatusPublished {
			cp := p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakePostRepo) ListAll(ctx context.Context) ([]*models.Post, error) {
	var out []*models.Post
	for _, p := range f.store {
		cp := p
		out = append(out, &cp)
	}
	return out, nil
}

func strptr(s string) *string { return &s }

func TestPostCreate_DraftByDefault(t *testing.T) {
	svc := NewPostService(newFakePostRepo())

	post, err := svc.Create(context.Background(), CreatePostInput{Title: "Hi", Slug: "hi", Content: "<p>hello</p>"})
	require.NoError(t, err)

	assert.Equal(t, models.StatusDraft, post.Status)
	assert.Equal(t, "hello...", post.Excerpt)
	assert.Nil(t, post.PublishedAt)
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)
	assert.NotNil(t, post.Tags)
	assert.Empty(t, post.Tags)
}

func TestPostCreate_PublishedSetsPublishedAt(t *testing.T) {
	svc := NewPostService(newFakePostRepo())

	post, err := svc.Create(context.Background(), CreatePostInput{Title: "Hi", Slug: "hi", Status: models.StatusPublished})
	require.NoError(t, err)

	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, post.CreatedAt, *post.PublishedAt)
}

func TestPostCreate_DuplicateSlugConflicts(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, CreatePostInput{Title: "One", Slug: "hi"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, CreatePostInput{Title: "Two", Slug: "hi", Content: "different"})
	assert.ErrorIs(t, err, common.ErrAlreadyExists)

	// Original record is untouched.
	stored, err := svc.GetBySlug(ctx, "hi")
	require.NoError(t, err)
	assert.Equal(t, first.Title, stored.Title)
}

func TestPostUpdate_NotFound(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)

	_, err := svc.UpdateBySlug(context.Background(), "missing", UpdatePostInput{Title: strptr("x")})
	assert.ErrorIs(t, err, common.ErrNotFound)
	assert.Empty(t, repo.store)
}

func TestPostUpdate_MergesOnlySuppliedFields(t *testing.T) {
	svc := NewPostService(newFakePostRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreatePostInput{Title: "Hi", Slug: "hi", Content: "body", Tags: []string{"go"}})
	require.NoError(t, err)

	updated, err := svc.UpdateBySlug(ctx, "hi", UpdatePostInput{Title: strptr("New title")})
	require.NoError(t, err)

	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, "body", updated.Content)
	assert.Equal(t, []string{"go"}, updated.Tags)
	assert.Equal(t, models.StatusDraft, updated.Status)
}

func TestPostUpdate_PublishedAtLatches(t *testing.T) {
	svc := NewPostService(newFakePostRepo())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreatePostInput{Title: "Hi", Slug: "hi"})
	require.NoError(t, err)

	published, err := svc.UpdateBySlug(ctx, "hi", UpdatePostInput{Status: strptr(models.StatusPublished)})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	firstPublishedAt := *published.PublishedAt

	// Back to draft: publishedAt must survive.
	draft, err := svc.UpdateBySlug(ctx, "hi", UpdatePostInput{Status: strptr(models.StatusDraft)})
	require.NoError(t, err)
	require.NotNil(t, draft.PublishedAt)
	assert.Equal(t, firstPublishedAt, *draft.PublishedAt)

	// Re-published: timestamp does not move.
	again, err := svc.UpdateBySlug(ctx, "hi", UpdatePostInput{Status: strptr(models.StatusPublished)})
	require.NoError(t, err)
	assert.Equal(t, firstPublishedAt, *again.PublishedAt)
}

func TestListPublished_SortsNewestFirstAndExcludesDrafts(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	ctx := context.Background()

	old := "2024-01-01T00:00:00.000Z"
	recent := "2024-06-01T00:00:00.000Z"
	repo.store["old"] = models.Post{Slug: "old", Status: models.StatusPublished, PublishedAt: &old}
	repo.store["new"] = models.Post{Slug: "new", Status: models.StatusPublished, PublishedAt: &recent}
	repo.store["draft"] = models.Post{Slug: "draft", Status: models.StatusDraft}

	items, err := svc.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "new", items[0].Slug)
	assert.Equal(t, "old", items[1].Slug)
}

func TestListPublished_MissingPublishedAtSortsLast(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)

	ts := "2024-01-01T00:00:00.000Z"
	repo.store["dated"] = models.Post{Slug: "dated", Status: models.StatusPublished, PublishedAt: &ts}
	repo.store["undated"] = models.Post{Slug: "undated", Status: models.StatusPublished}

	items, err := svc.ListPublished(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "dated", items[0].Slug)
	assert.Equal(t, "undated", items[1].Slug)
}

func TestListAll_IncludesDrafts(t *testing.T) {
	repo := newFakePostRepo()
	svc := NewPostService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreatePostInput{Title: "A", Slug: "a", Status: models.StatusPublished})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreatePostInput{Title: "B", Slug: "b"})
	require.NoError(t, err)

	items, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}
