package httpapi

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/blogcrm/internal/services"
)

type contactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Message string  `json:"message"`
	Source  *string `json:"source"`
}

// CreateLead handles POST /contact. On success the lead notification is
// fired best-effort; its outcome never affects the response.
func (h *Handlers) CreateLead(c *gin.Context) {
	var req contactRequest
	h.bindBody(c, &req)

	if req.Name == "" || req.Email == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "NAME_EMAIL_MESSAGE_REQUIRED"})
		return
	}

	lead, err := h.leads.Create(c.Request.Context(), services.CreateLeadInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Source:  req.Source,
	})
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to create lead", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "FAILED_TO_CREATE_LEAD"})
		return
	}

	h.notifier.LeadCreated(c.Request.Context(), lead)

	c.JSON(http.StatusCreated, gin.H{"ok": true, "leadId": lead.ID})
}

// ListLeads handles GET /admin/leads, newest first by createdAt.
func (h *Handlers) ListLeads(c *gin.Context) {
	items, err := h.leads.List(c.Request.Context())
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to list leads", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "FAILED_TO_LIST_LEADS"})
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt > items[j].CreatedAt
	})
	c.JSON(http.StatusOK, items)
}
