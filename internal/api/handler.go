package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Arallon-co/bettermeet/internal/apperrors"
	"github.com/Arallon-co/bettermeet/internal/db/repositories"
)

// Handler carries the dependencies every route needs. The database handle
// is injected through the repositories; there is no package-level client.
type Handler struct {
	polls        repositories.PollRepository
	participants repositories.ParticipantRepository
	logger       *zap.SugaredLogger
	baseURL      string
}

func NewHandler(
	polls repositories.PollRepository,
	participants repositories.ParticipantRepository,
	logger *zap.SugaredLogger,
	baseURL string,
) *Handler {
	return &Handler{
		polls:        polls,
		participants: participants,
		logger:       logger,
		baseURL:      baseURL,
	}
}

type errorBody struct {
	Code    apperrors.Code    `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// respondError renders a typed API error with its own status; anything
// else is downgraded to an opaque 500 so internals never leak.
func (h *Handler) respondError(c *gin.Context, err error) {
	if apiErr, ok := apperrors.From(err); ok {
		c.JSON(apiErr.StatusCode, errorResponse{Error: errorBody{
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		}})
		return
	}

	h.logger.Errorw("unhandled error", "error", err)
	c.JSON(http.StatusInternalServerError, errorResponse{Error: errorBody{
		Code:    apperrors.CodeInternalServerError,
		Message: "An unexpected error occurred",
	}})
}

func (h *Handler) respondValidationError(c *gin.Context, details map[string]string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: errorBody{
		Code:    apperrors.CodeValidationError,
		Message: "Invalid request data",
		Details: details,
	}})
}

func (h *Handler) respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: errorBody{
		Code:    apperrors.CodeBadRequest,
		Message: "Invalid request. Please check your input.",
	}})
}
