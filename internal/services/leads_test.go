package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/blogcrm/internal/models"
)

type fakeLeadRepo struct {
	created   []*models.Lead
	createErr error
}

func (f *fakeLeadRepo) Create(ctx context.Context, lead *models.Lead) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, lead)
	return nil
}

func (f *fakeLeadRepo) List(ctx context.Context) ([]*models.Lead, error) {
	return f.created, nil
}

func TestLeadCreate_StampsRecord(t *testing.T) {
	repo := &fakeLeadRepo{}
	svc := NewLeadService(repo)

	lead, err := svc.Create(context.Background(), CreateLeadInput{
		Name:    "Alice",
		Email:   "alice@example.com",
		Message: "hello",
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^\d+-[0-9a-f]+$`), lead.ID)
	assert.Equal(t, models.LeadStatusNew, lead.Status)
	assert.NotEmpty(t, lead.CreatedAt)
	assert.Nil(t, lead.Source)
	require.Len(t, repo.created, 1)
	assert.Same(t, lead, repo.created[0])
}

func TestLeadCreate_KeepsSource(t *testing.T) {
	repo := &fakeLeadRepo{}
	svc := NewLeadService(repo)

	src := "landing-page"
	lead, err := svc.Create(context.Background(), CreateLeadInput{
		Name:    "Bob",
		Email:   "bob@example.com",
		Message: "hi",
		Source:  &src,
	})
	require.NoError(t, err)
	require.NotNil(t, lead.Source)
	assert.Equal(t, "landing-page", *lead.Source)
}

func TestLeadCreate_RepoErrorPropagates(t *testing.T) {
	repo := &fakeLeadRepo{createErr: errors.New("db down")}
	svc := NewLeadService(repo)

	_, err := svc.Create(context.Background(), CreateLeadInput{Name: "A", Email: "a@b.c", Message: "m"})
	assert.Error(t, err)
}

func TestLeadCreate_IDsAreUnique(t *testing.T) {
	repo := &fakeLeadRepo{}
	svc := NewLeadService(repo)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		lead, err := svc.Create(ctx, CreateLeadInput{Name: "A", Email: "a@b.c", Message: "m"})
		require.NoError(t, err)
		assert.False(t, seen[lead.ID], "duplicate id %s", lead.ID)
		seen[lead.ID] = true
	}
}
