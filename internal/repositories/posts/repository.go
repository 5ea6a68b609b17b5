package posts

import (
	"context"

	"github.com/dmitrijs2005/blogcrm/internal/models"
)

// Repository is the storage contract for posts. All implementations key a
// post by its slug and must keep post records strictly separated from other
// record kinds sharing the table.
type Repository interface {
	// Create persists a new post and fails with common.ErrAlreadyExists if a
	// record for the same slug is already present. The existing record is
	// left untouched. The underlying conditional write is what makes
	// concurrent creates for one slug race-safe.
	Create(ctx context.Context, post *models.Post) error

	// Get returns the post stored under slug via an exact-key lookup, or
	// common.ErrNotFound when absent.
	Get(ctx context.Context, slug string) (*models.Post, error)

	// Put overwrites the record for post.Slug unconditionally. Used by
	// update-by-slug after a read; the read-then-write pair carries no
	// optimistic-concurrency token, so concurrent updates are last-write-wins.
	Put(ctx context.Context, post *models.Post) error

	// ListPublished returns every post whose status is exactly "published",
	// in no particular order.
	ListPublished(ctx context.Context) ([]*models.Post, error)

	// ListAll returns every post regardless of status, in no particular order.
	ListAll(ctx context.Context) ([]*models.Post, error)
}
