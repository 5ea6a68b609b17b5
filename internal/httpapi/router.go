// Package httpapi is the shared router core: one gin engine mapping
// (method, path) to the service operations, used unchanged by both
// deployment forms. The always-on server mounts it directly; the lambda
// adapter proxies API Gateway events into it.
//
// The router is stateless. Every response, success or error, carries the
// CORS headers computed from the request's Origin. Error translation is the
// router's sole responsibility: services raise sentinel errors, handlers map
// them to HTTP statuses and stable JSON error codes.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/blogcrm/internal/logging"
	"github.com/dmitrijs2005/blogcrm/internal/services"
)

const serviceName = "blog-crm-backend"

// maxBodyBytes caps request bodies at 10 MiB; media uploads arrive
// base64-encoded in the JSON body.
const maxBodyBytes = 10 << 20

// Handlers bundles the service dependencies of the HTTP layer.
type Handlers struct {
	posts    *services.PostService
	leads    *services.LeadService
	media    *services.MediaService
	notifier *services.LeadNotifier
	logger   logging.Logger
	region   string
}

// NewHandlers creates a handlers instance bound to the given services.
func NewHandlers(posts *services.PostService, leads *services.LeadService, media *services.MediaService, notifier *services.LeadNotifier, logger logging.Logger, region string) *Handlers {
	return &Handlers{
		posts:    posts,
		leads:    leads,
		media:    media,
		notifier: notifier,
		logger:   logger,
		region:   region,
	}
}

// RouterOptions carries router-level settings.
type RouterOptions struct {
	// AllowedOrigins is used as the CORS fallback when a request carries no
	// Origin header; the first entry wins.
	AllowedOrigins []string

	// AdminJWTSecret, when non-empty, turns on HS256 bearer-token checks for
	// the /admin group. Leave empty behind an authenticating gateway.
	AdminJWTSecret string
}

// NewRouter assembles the gin engine with all routes and middleware.
func NewRouter(h *Handlers, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(
		corsMiddleware(opts.AllowedOrigins),
		requestLogger(h.logger),
		recoveryMiddleware(h.logger),
		bodyLimit(maxBodyBytes),
	)

	r.GET("/health", h.Health)

	r.GET("/posts", h.ListPublishedPosts)
	r.GET("/posts/:slug", h.GetPublishedPost)
	r.POST("/contact", h.CreateLead)

	admin := r.Group("/admin")
	if opts.AdminJWTSecret != "" {
		admin.Use(requireAuth(opts.AdminJWTSecret))
	}
	admin.GET("/posts", h.ListAllPosts)
	admin.POST("/posts", h.CreatePost)
	admin.GET("/posts/:slug", h.GetPost)
	admin.PUT("/posts/:slug", h.UpdatePost)
	admin.GET("/leads", h.ListLeads)
	admin.POST("/media", h.UploadMedia)

	r.NoRoute(h.NotFound)

	return r
}

// Health handles GET /health.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": serviceName,
		"region":  h.region,
	})
}

// NotFound answers any unmatched route, naming the unresolved method and
// path.
func (h *Handlers) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":  "NOT_FOUND",
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	})
}

// bindBody decodes the JSON request body into dst. A missing or malformed
// body is not an error: dst keeps its zero value and the route's own field
// validation reports what is missing.
func (h *Handlers) bindBody(c *gin.Context, dst any) {
	if err := c.ShouldBindJSON(dst); err != nil {
		h.logger.Debug(c.Request.Context(), "ignoring malformed request body", "error", err.Error())
	}
}
