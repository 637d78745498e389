package response

import (
	"errors"
	log "log/slog"
	"net/http"

	"reeldine/internal/api/dto"
	"reeldine/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
)

// Success writes the standard success envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Data:    data,
	})
}

// SuccessMsg writes a success envelope with a human-readable message.
func SuccessMsg(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// SuccessCached is used by search endpoints, which expose whether the
// result page was served from the cache.
func SuccessCached(c *gin.Context, data interface{}, cached bool) {
	c.JSON(http.StatusOK, dto.CachedResponse{
		Success: true,
		Data:    data,
		Cached:  cached,
	})
}

// Fail writes a failure envelope with the given HTTP status.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, dto.Response{
		Success: false,
		Message: message,
	})
}

// Error maps a service error onto the wire envelope.
func Error(c *gin.Context, err error) {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		Fail(c, http.StatusBadRequest, "invalid request parameters")
		return
	}

	var unmarshalTypeError *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeError) {
		Fail(c, http.StatusBadRequest, "malformed JSON body")
		return
	}

	status, ok := service.ErrorMap[err]
	if !ok {
		status = http.StatusInternalServerError
		log.ErrorContext(c.Request.Context(), "unhandled error", "err", err)
		Fail(c, status, service.UnExpectedError.Error())
		return
	}
	Fail(c, status, err.Error())
}
