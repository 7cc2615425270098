package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"tripplanner.app/internal/ports"
	errorspkg "tripplanner.app/pkg/errors"
)

// Response is the envelope shared by every JSON endpoint
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// statusFor maps an application error to its HTTP status and client-facing message
func statusFor(err error) (int, string) {
	var appErr *errorspkg.AppError
	if !errors.As(err, &appErr) {
		return http.StatusInternalServerError, "Internal server error"
	}

	switch appErr.Type {
	case errorspkg.ValidationError:
		return http.StatusBadRequest, appErr.Message
	case errorspkg.AuthError:
		return http.StatusUnauthorized, appErr.Message
	case errorspkg.NotFoundError:
		return http.StatusNotFound, appErr.Message
	case errorspkg.AlreadyExistsError:
		return http.StatusBadRequest, appErr.Message
	case errorspkg.UpstreamError:
		return http.StatusServiceUnavailable, "External service unavailable"
	case errorspkg.MalformedResponseError:
		return http.StatusBadGateway, "Invalid response from external service"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	status, message := statusFor(err)
	if status >= http.StatusInternalServerError && s.logger != nil {
		s.logger.Error("Request failed",
			ports.F("path", c.Request.URL.Path),
			ports.F("status", status),
			ports.F("error", err.Error()))
	}

	resp := Response{Success: false, Message: message}
	if s.config.IsDevelopment() {
		resp.Error = err.Error()
	}
	c.JSON(status, resp)
}

func (s *HTTPServerAdapter) respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Response{Success: true, Message: message, Data: data})
}
