package helpers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"furniture-booking/internal/bookingerrors"
	"furniture-booking/utils"

	"github.com/gin-gonic/gin"
)

// HandleBindError sends a 400 page for form or query binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	utils.HTMLError(c, http.StatusBadRequest, "invalid or missing form fields")
	utils.Warn(handlerName+": binding error", map[string]any{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	})
}

// ParseIDParam parses a path parameter as an integer id
func ParseIDParam(c *gin.Context, name string) (int, error) {
	raw := c.Param(name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("path parameter %s=%q: %w", name, raw, bookingerrors.ErrInvalidID)
	}
	return id, nil
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and a message safe to show visitors
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, bookingerrors.ErrFurnitureNotFound):
		return http.StatusNotFound, "furniture not found"
	case errors.Is(err, bookingerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, bookingerrors.ErrNotFound):
		return http.StatusNotFound, "page not found"
	case errors.Is(err, bookingerrors.ErrInvalidID):
		return http.StatusBadRequest, "invalid id"
	case errors.Is(err, bookingerrors.ErrBadRequest):
		return http.StatusBadRequest, "bad request"
	case errors.Is(err, bookingerrors.ErrTemplate):
		return http.StatusInternalServerError, "page unavailable"
	case errors.Is(err, bookingerrors.ErrStorage):
		return http.StatusInternalServerError, "data unavailable"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// HandleError writes the mapped error page and logs at warn for 4xx, error for 5xx
func HandleError(c *gin.Context, handlerName string, err error, fields map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.HTMLError(c, status, message)

	ctx := map[string]any{"status": status, "error": err.Error()}
	for k, v := range fields {
		ctx[k] = v
	}
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": "+message, ctx)
		return
	}
	utils.Warn(handlerName+": "+message, ctx)
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
