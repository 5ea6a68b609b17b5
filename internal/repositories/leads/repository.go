package leads

import (
	"context"

	"github.com/dmitrijs2005/blogcrm/internal/models"
)

// Repository is the storage contract for contact leads. Leads are write-once:
// there is no update or delete.
type Repository interface {
	// Create persists a new lead unconditionally. The caller supplies a
	// generated id; the scheme treats collisions as negligible, so no
	// existence check is made.
	Create(ctx context.Context, lead *models.Lead) error

	// List returns every lead, in no particular order.
	List(ctx context.Context) ([]*models.Lead, error)
}
