package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	printjobdomain "github.com/smallbiznis/pompabon/internal/printjob/domain"
	"github.com/smallbiznis/pompabon/internal/printer"
	receiptdomain "github.com/smallbiznis/pompabon/internal/receipt/domain"
)

type errorPayload struct {
	Type    string `json:"type"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrInvalidRequest = errors.New("invalid_request")
	ErrNotFound       = errors.New("not_found")
	ErrInternal       = errors.New("internal_error")
)

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	// printer transport failures carry a closed kind enumeration and
	// must surface distinctly so the operator gets an actionable message
	if kind, ok := printer.KindOf(err); ok {
		payload := errorPayload{Type: "printer_error", Code: string(kind)}
		switch kind {
		case printer.KindDeviceNotFound:
			payload.Message = "printer device not found; check the cable and the configured device path"
		case printer.KindPermissionDenied:
			payload.Message = "no permission to write to the printer device; check device ownership"
		case printer.KindDeviceBusy:
			payload.Message = "printer device is busy; wait for the current job to finish"
		default:
			payload.Message = err.Error()
		}
		return http.StatusServiceUnavailable, payload
	}

	switch {
	case errors.Is(err, receiptdomain.ErrInvalidAmount),
		errors.Is(err, receiptdomain.ErrInvalidFuelType),
		errors.Is(err, printjobdomain.ErrInvalidID),
		errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, errorPayload{Type: "validation_error", Message: err.Error()}
	case errors.Is(err, printjobdomain.ErrNotFound),
		errors.Is(err, ErrNotFound):
		return http.StatusNotFound, errorPayload{Type: "not_found", Message: err.Error()}
	default:
		return http.StatusInternalServerError, errorPayload{Type: "internal_error", Message: "internal error"}
	}
}

func classifyErrorForLog(err error) (string, string) {
	if err == nil {
		return "", ""
	}
	if kind, ok := printer.KindOf(err); ok {
		return "printer_error", string(kind)
	}
	status, payload := mapError(err)
	_ = status
	return payload.Type, payload.Code
}
