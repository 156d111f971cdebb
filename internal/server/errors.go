package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SeamusWaldron/cubeengine"
	"github.com/SeamusWaldron/cubeengine/internal/session"
)

// statusFor maps engine and session errors to an HTTP status and code.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, session.ErrInvalidDocument):
		return http.StatusBadRequest, "INVALID_DOCUMENT"
	case errors.Is(err, cubeengine.ErrInvalidMoveSyntax):
		return http.StatusBadRequest, "INVALID_MOVE"
	case errors.Is(err, cubeengine.ErrInvalidScrambleLength):
		return http.StatusBadRequest, "INVALID_SCRAMBLE_LENGTH"
	case errors.Is(err, cubeengine.ErrInvalidDimension):
		return http.StatusBadRequest, "INVALID_DIMENSION"
	case errors.Is(err, cubeengine.ErrNotSupportedDimension):
		return http.StatusUnprocessableEntity, "UNSUPPORTED_DIMENSION"
	case errors.Is(err, cubeengine.ErrHistoryIndex):
		return http.StatusUnprocessableEntity, "HISTORY_INDEX"
	case errors.Is(err, cubeengine.ErrHistoryDisabled):
		return http.StatusUnprocessableEntity, "HISTORY_DISABLED"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

func abortWithError(c *gin.Context, err error) {
	status, code := statusFor(err)
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, ErrorResponse{Error: err.Error(), Code: code})
}

func abortBadRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Error: "invalid request body: " + err.Error(),
		Code:  "INVALID_REQUEST",
	})
}
