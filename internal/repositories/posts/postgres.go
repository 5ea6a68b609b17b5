package posts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/blogcrm/internal/common"
	"github.com/dmitrijs2005/blogcrm/internal/dbx"
	"github.com/dmitrijs2005/blogcrm/internal/models"
)

// PostgresRepository implements Repository over the shared documents table,
// storing each post as a jsonb document under the same pk/sk/type layout the
// DynamoDB driver uses. The primary-key constraint on (pk, sk) is the
// conditional-write primitive.
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a post document. If a row already exists for the slug,
// no row is written and common.ErrAlreadyExists is returned.
func (r *PostgresRepository) Create(ctx context.Context, post *models.Post) error {
	doc, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("marshal post: %w", err)
	}

	query := `
		INSERT INTO documents (pk, sk, type, doc)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (pk, sk) DO NOTHING;
	`
	res, err := r.db.ExecContext(ctx, query, pk(post.Slug), skMetadata, typePost, doc)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrAlreadyExists
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}

// Get returns the post stored under slug, or common.ErrNotFound.
func (r *PostgresRepository) Get(ctx context.Context, slug string) (*models.Post, error) {
	query := `SELECT doc FROM documents WHERE pk = $1 AND sk = $2`

	var doc []byte
	err := r.db.QueryRowContext(ctx, query, pk(slug), skMetadata).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	var post models.Post
	if err := json.Unmarshal(doc, &post); err != nil {
		return nil, fmt.Errorf("unmarshal post: %w", err)
	}
	return &post, nil
}

// Put overwrites the document for post.Slug, creating it if absent.
func (r *PostgresRepository) Put(ctx context.Context, post *models.Post) error {
	doc, err := json.Marshal(post)
	if err != nil {
		return fmt.Errorf("marshal post: %w", err)
	}

	query := `
		INSERT INTO documents (pk, sk, type, doc)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (pk, sk) DO UPDATE SET doc = EXCLUDED.doc;
	`
	if _, err := r.db.ExecContext(ctx, query, pk(post.Slug), skMetadata, typePost, doc); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListPublished(ctx context.Context) ([]*models.Post, error) {
	query := `
		SELECT doc FROM documents
		WHERE pk LIKE $1 AND sk = $2 AND doc->>'status' = $3
	`
	return r.list(ctx, query, keyPrefix+"%", skMetadata, models.StatusPublished)
}

func (r *PostgresRepository) ListAll(ctx context.Context) ([]*models.Post, error) {
	query := `SELECT doc FROM documents WHERE pk LIKE $1 AND sk = $2`
	return r.list(ctx, query, keyPrefix+"%", skMetadata)
}

func (r *PostgresRepository) list(ctx context.Context, query string, args ...any) ([]*models.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select posts: %w", err)
	}
	defer rows.Close()

	var result []*models.Post
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var post models.Post
		if err := json.Unmarshal(doc, &post); err != nil {
			return nil, fmt.Errorf("unmarshal post: %w", err)
		}
		result = append(result, &post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
