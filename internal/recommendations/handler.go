package recommendations

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"videopick-backend/internal/llm"
	"videopick-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the recommendation service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches recommendation routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/recommendations", h.recommend)
}

func (h *Handler) recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if len(req.VideoURLs) != RequiredVideoCount {
		respond.Error(c, http.StatusBadRequest, "validation_error",
			fmt.Sprintf("exactly %d video URLs are required", RequiredVideoCount), nil)
		return
	}

	c.Set("llmProvider", h.Svc.Provider)

	text, videos, err := h.Svc.Recommend(c.Request.Context(), req.Goal, req.VideoURLs)
	if err != nil {
		var provErr *llm.ProviderError
		switch {
		case errors.Is(err, llm.ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "goal and three video URLs are required", nil)
		case errors.Is(err, llm.ErrNotConfigured):
			respond.Error(c, http.StatusInternalServerError, "not_configured", "LLM provider is not configured", nil)
		case errors.Is(err, llm.ErrSafetyBlocked):
			respond.Error(c, http.StatusInternalServerError, "safety_blocked", "the response was blocked by content safety filters", nil)
		case errors.Is(err, llm.ErrEmptyResponse):
			respond.Error(c, http.StatusInternalServerError, "empty_response", "the LLM provider returned no usable text", nil)
		case errors.As(err, &provErr):
			respond.Error(c, http.StatusInternalServerError, "provider_error", provErr.Message, nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to produce a recommendation", nil)
		}
		return
	}

	respond.OK(c, RecommendResponse{
		Recommendation: text,
		Provider:       h.Svc.Provider,
		Videos:         toVideoResponses(videos),
	})
}
