package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the structured body every error reply carries.
type ErrorResponse struct {
	Message   string    `json:"message"`
	Error     string    `json:"error"`
	Status    int       `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Path      string    `json:"path"`
}

func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, ErrorResponse{
		Message:   err.Error(),
		Error:     statusLabel(code),
		Status:    code,
		Timestamp: time.Now(),
		Path:      c.Request.URL.Path,
	})
}

// RespondServiceError maps a typed service error to its HTTP status.
// Untyped errors become a generic 500 so no internal detail leaks out.
func RespondServiceError(c *gin.Context, err error) {
	switch err.(type) {
	case *NotFoundError:
		RespondError(c, http.StatusNotFound, err)
	case *ValidationError:
		RespondError(c, http.StatusBadRequest, err)
	case *InvalidOperationError:
		RespondError(c, http.StatusConflict, err)
	case *UnauthorizedError:
		RespondError(c, http.StatusUnauthorized, err)
	default:
		ErrorLogger.Printf("unexpected error on %s: %v", c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Message:   "An unexpected error occurred",
			Error:     statusLabel(http.StatusInternalServerError),
			Status:    http.StatusInternalServerError,
			Timestamp: time.Now(),
			Path:      c.Request.URL.Path,
		})
	}
}

func statusLabel(code int) string {
	switch code {
	case http.StatusNotFound:
		return "Resource Not Found"
	case http.StatusBadRequest:
		return "Validation Error"
	case http.StatusConflict:
		return "Invalid Operation"
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusForbidden:
		return "Forbidden"
	case http.StatusInternalServerError:
		return "Internal Server Error"
	default:
		return http.StatusText(code)
	}
}
