package leads

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/blogcrm/internal/dbx"
	"github.com/dmitrijs2005/blogcrm/internal/models"
)

// PostgresRepository implements Repository over the shared documents table.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a lead document. Ids are generated, so duplicates are not
// expected; a conflicting insert surfaces as a db error rather than being
// silently dropped.
func (r *PostgresRepository) Create(ctx context.Context, lead *models.Lead) error {
	doc, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("marshal lead: %w", err)
	}

	query := `
		INSERT INTO documents (pk, sk, type, doc)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := r.db.ExecContext(ctx, query, pk(lead.ID), skMetadata, typeLead, doc); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// List returns every stored lead.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Lead, error) {
	query := `SELECT doc FROM documents WHERE pk LIKE $1 AND sk = $2`

	rows, err := r.db.QueryContext(ctx, query, keyPrefix+"%", skMetadata)
	if err != nil {
		return nil, fmt.Errorf("failed to select leads: %w", err)
	}
	defer rows.Close()

	var result []*models.Lead
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var lead models.Lead
		if err := json.Unmarshal(doc, &lead); err != nil {
			return nil, fmt.Errorf("unmarshal lead: %w", err)
		}
		result = append(result, &lead)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
