package handlers

import (
	"net/http"

	"blogapi/internal/domain"
	"blogapi/internal/http/middleware"
	"blogapi/internal/utils"

	"github.com/gin-gonic/gin"
)

// APIResponse is the uniform envelope every endpoint answers with.
type APIResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

func Respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, APIResponse{Status: status, Message: message, Data: data})
}

// RespondDomainError maps domain errors to the envelope. Unknown errors are
// answered with a fixed generic message; the detail is logged server-side and
// never echoed to the client.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		Respond(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsNotFound(err):
		Respond(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsConflict(err):
		Respond(c, http.StatusConflict, err.Error(), nil)
	default:
		utils.LogEvent(middleware.GetRequestID(c), "http", "internal_error", err.Error())
		Respond(c, http.StatusInternalServerError, "internal server error", nil)
	}
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		Respond(c, http.StatusBadRequest, "request body required", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		Respond(c, http.StatusBadRequest, "invalid request payload", nil)
		return false
	}
	return true
}
