package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/ranilsonsilva664-collab/meu-controle-ia/internal/errors"
	"github.com/ranilsonsilva664-collab/meu-controle-ia/internal/logger"
)

// ErrorResponse documents the JSON error envelope for swagger.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// parseGoal reads the optional positive goal query parameter, falling
// back to the given default. A zero or negative goal is rejected here
// because the core treats it as a contract violation.
func parseGoal(c *gin.Context, fallback float64) (float64, error) {
	raw := c.Query("goal")
	if raw == "" {
		return fallback, nil
	}
	goal, err := strconv.ParseFloat(raw, 64)
	if err != nil || goal <= 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Goal must be a positive number")
	}
	return goal, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
		"error": gin.H{
			"code":    apperrors.ErrInternalServer.Code,
			"message": apperrors.ErrInternalServer.Message,
		},
	})
}
