package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/blogcrm/internal/common"
	"github.com/dmitrijs2005/blogcrm/internal/models"
	"github.com/dmitrijs2005/blogcrm/internal/services"
)

type createPostRequest struct {
	Title   string   `json:"title"`
	Slug    string   `json:"slug"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	Status  string   `json:"status"`
}

type updatePostRequest struct {
	Title   *string  `json:"title"`
	Content *string  `json:"content"`
	Status  *string  `json:"status"`
	Tags    []string `json:"tags"`
}

// ListPublishedPosts handles GET /posts: the public list, newest first,
// projected to the public fields only.
func (h *Handlers) ListPublishedPosts(c *gin.Context) {
	items, err := h.posts.ListPublished(c.Request.Context())
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to list posts", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "FAILED_TO_LIST_POSTS"})
		return
	}

	mapped := make([]models.PostSummary, 0, len(items))
	for _, p := range items {
		mapped = append(mapped, p.Summary())
	}
	c.JSON(http.StatusOK, mapped)
}

// GetPublishedPost handles GET /posts/:slug. Draft and missing slugs are
// indistinguishable to the public: both answer 404.
func (h *Handlers) GetPublishedPost(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "SLUG_REQUIRED"})
		return
	}

	post, err := h.posts.GetBySlug(c.Request.Context(), slug)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		h.logger.Error(c.Request.Context(), "failed to get post", "error", err.Error(), "slug", slug)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "FAILED_TO_GET_POST"})
		return
	}
	if err != nil || post.Status != models.StatusPublished {
		c.JSON(http.StatusNotFound, gin.H{"error": "POST_NOT_FOUND"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// ListAllPosts handles GET /admin/posts: drafts included, projected to the
// admin list fields.
func (h *Handlers) ListAllPosts(c *gin.Context) {
	items, err := h.posts.ListAll(c.Request.Context())
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to list posts", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "FAILED_TO_LIST_POSTS"})
		return
	}

	mapped := make([]models.PostSummary, 0, len(items))
	for _, p := range items {
		mapped = append(mapped, p.AdminSummary())
	}
	c.JSON(http.StatusOK, mapped)
}

// CreatePost handles POST /admin/posts.
func (h *Handlers) CreatePost(c *gin.Context) {
	var req createPostRequest
	h.bindBody(c, &req)

	if req.Title == "" || req.Slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "TITLE_AND_SLUG_REQUIRED"})
		return
	}

	post, err := h.posts.Create(c.Request.Context(), services.CreatePostInput{
		Title:   req.Title,
		Slug:    req.Slug,
		Content: req.Content,
		Tags:    req.Tags,
		Status:  req.Status,
	})
	if errors.Is(err, common.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "SLUG_ALREADY_EXISTS"})
		return
	}
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to create post", "error", err.Error(), "slug", req.Slug)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "FAILED_TO_CREATE_POST"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

// GetPost handles GET /admin/posts/:slug, returning the post in any status.
func (h *Handlers) GetPost(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "SLUG_REQUIRED"})
		return
	}

	post, err := h.posts.GetBySlug(c.Request.Context(), slug)
	if errors.Is(err, common.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "NOT_FOUND"})
		return
	}
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to fetch post", "error", err.Error(), "slug", slug)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "FAILED_TO_FETCH_POST"})
		return
	}

	c.JSON(http.StatusOK, post)
}

// UpdatePost handles PUT /admin/posts/:slug.
func (h *Handlers) UpdatePost(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "SLUG_REQUIRED"})
		return
	}

	var req updatePostRequest
	h.bindBody(c, &req)

	post, err := h.posts.UpdateBySlug(c.Request.Context(), slug, services.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
		Status:  req.Status,
		Tags:    req.Tags,
	})
	if errors.Is(err, common.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "NOT_FOUND"})
		return
	}
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to update post", "error", err.Error(), "slug", slug)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "FAILED_TO_UPDATE_POST"})
		return
	}

	c.JSON(http.StatusOK, post)
}
