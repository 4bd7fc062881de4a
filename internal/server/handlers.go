package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dtnitsch/wikilens/internal/common"
	"github.com/dtnitsch/wikilens/models"
	"github.com/dtnitsch/wikilens/pkg/coordinator"
	"github.com/gin-gonic/gin"
)

// WikiService answers both form endpoints.
type WikiService interface {
	Content(ctx context.Context, wikilink string) (string, error)
	RelevanceRanked(ctx context.Context, wikilink string) (string, error)
}

type Handler struct {
	service WikiService
	logger  *slog.Logger
}

func NewHandler(service WikiService, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register adds the API routes to router.
func (h *Handler) Register(router *gin.Engine) {
	router.GET("/healthz", h.Health)
	router.GET(coordinator.ProcessFormPath, h.ProcessForm)
	router.GET(coordinator.RelevanceRankedPath, h.RelevanceRanked)
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) ProcessForm(c *gin.Context) {
	q := models.ParseQuery(c.Request.URL.Query())

	content, err := h.service.Content(c.Request.Context(), q.Wikilink)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.PureJSON(http.StatusOK, models.ContentResponse{Content: content})
}

func (h *Handler) RelevanceRanked(c *gin.Context) {
	q := models.ParseQuery(c.Request.URL.Query())

	ranked, err := h.service.RelevanceRanked(c.Request.Context(), q.Wikilink)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.PureJSON(http.StatusOK, models.RelevanceResponse{RelevanceRanked: ranked})
}

func (h *Handler) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, common.ErrEmptyWikilink) {
		status = http.StatusBadRequest
	}
	h.logger.Error("request error", "path", c.Request.URL.Path, "status", status, "error", err)
	c.JSON(status, models.ErrorResponse{Error: err.Error()})
}
