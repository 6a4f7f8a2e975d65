package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lepinkainen/calliope/internal/metadata"
	"github.com/lepinkainen/calliope/internal/resolve"
)

// Handler holds the route handlers for the resolver API.
type Handler struct {
	resolver *resolve.Resolver
}

// NewHandler creates a Handler over the given resolver.
func NewHandler(resolver *resolve.Resolver) *Handler {
	return &Handler{resolver: resolver}
}

// Register wires the API routes onto the engine.
func (h *Handler) Register(engine *gin.Engine) {
	engine.GET("/healthz", h.health)
	api := engine.Group("/api")
	{
		api.GET("/lookup", h.lookup)
		api.GET("/search", h.search)
		api.GET("/barcode/:code", h.barcode)
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"providers": h.resolver.EnabledProviders(),
	})
}

// lookup resolves any identifier: ISBN, IMDb ID, UPC, EAN, or a free-text
// title. An optional type parameter narrows the providers queried.
func (h *Handler) lookup(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required parameter: id"})
		return
	}

	hint, ok := parseHint(c.Query("type"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media type: " + c.Query("type")})
		return
	}

	agg, err := h.resolver.Lookup(c.Request.Context(), id, hint)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, agg)
}

func (h *Handler) search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required parameter: q"})
		return
	}

	mediaType, err := metadata.ParseMediaType(c.Query("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.resolver.SearchByTitle(c.Request.Context(), mediaType, query)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// No match is a normal outcome, not an error.
	results := []metadata.Item{}
	if item != nil {
		results = append(results, *item)
	}
	c.JSON(http.StatusOK, gin.H{
		"query":      query,
		"media_type": mediaType,
		"results":    results,
	})
}

// barcode is a convenience route for scanner integrations: the code rides in
// the path and the lookup envelope is nested under data.
func (h *Handler) barcode(c *gin.Context) {
	code := c.Param("code")

	hint, ok := parseHint(c.Query("type"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid media type: " + c.Query("type")})
		return
	}

	agg, err := h.resolver.Lookup(c.Request.Context(), code, hint)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"barcode": code,
		"data":    agg,
	})
}

// parseHint turns an optional type query parameter into a media-type hint.
// Empty means no hint; anything unrecognized is rejected.
func parseHint(raw string) (metadata.MediaType, bool) {
	if raw == "" {
		return "", true
	}
	mediaType, err := metadata.ParseMediaType(raw)
	if err != nil {
		return "", false
	}
	return mediaType, true
}
