package services

import (
	"context"

	"github.com/dmitrijs2005/blogcrm/internal/common"
	"github.com/dmitrijs2005/blogcrm/internal/models"
	"github.com/dmitrijs2005/blogcrm/internal/repositories/leads"
)

// LeadService owns lead creation and listing. Leads are immutable after
// creation.
type LeadService struct {
	repo leads.Repository
}

func NewLeadService(repo leads.Repository) *LeadService {
	return &LeadService{repo: repo}
}

// CreateLeadInput carries a contact-form submission. Field presence is
// validated by the HTTP layer; the service persists what it is given.
type CreateLeadInput struct {
	Name    string
	Email   string
	Message string
	Source  *string
}

// Create generates an id, stamps the lead and persists it unconditionally.
func (s *LeadService) Create(ctx context.Context, in CreateLeadInput) (*models.Lead, error) {
	id, err := common.NewLeadID()
	if err != nil {
		return nil, err
	}

	lead := &models.Lead{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		Source:    in.Source,
		Status:    models.LeadStatusNew,
		CreatedAt: common.NowISO(),
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

// List returns every lead in store order; ordering for display is the
// caller's concern.
func (s *LeadService) List(ctx context.Context) ([]*models.Lead, error) {
	return s.repo.List(ctx)
}
