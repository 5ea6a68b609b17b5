package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/blogcrm/internal/common"
	"github.com/dmitrijs2005/blogcrm/internal/services"
)

type mediaUploadRequest struct {
	Base64Data  string `json:"base64Data"`
	ContentType string `json:"contentType"`
	Filename    string `json:"filename"`
}

// UploadMedia handles POST /admin/media.
func (h *Handlers) UploadMedia(c *gin.Context) {
	var req mediaUploadRequest
	h.bindBody(c, &req)

	if req.Base64Data == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "BASE64_REQUIRED"})
		return
	}

	res, err := h.media.UploadFromBase64(c.Request.Context(), services.UploadInput{
		Base64Data:   req.Base64Data,
		ContentType:  req.ContentType,
		OriginalName: req.Filename,
	})
	if errors.Is(err, common.ErrValidation) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "INVALID_BASE64"})
		return
	}
	if errors.Is(err, common.ErrNotConfigured) {
		h.logger.Error(c.Request.Context(), "media upload attempted without configuration")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "MEDIA_NOT_CONFIGURED"})
		return
	}
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to upload media", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "MEDIA_UPLOAD_FAILED"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "url": res.URL, "key": res.Key})
}
