package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status    string       `json:"status"`
	Code      int          `json:"code"`
	Message   string       `json:"message,omitempty"`
	ErrorCode string       `json:"error_code,omitempty"`
	TraceID   string       `json:"trace_id,omitempty"`
	Errors    []FieldError `json:"errors,omitempty"`
	Data      interface{}  `json:"data,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, APIResponse{
		Status:  "success",
		Code:    http.StatusCreated,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, errorCode, message string) {
	c.JSON(code, APIResponse{
		Status:    "error",
		Code:      code,
		Message:   message,
		ErrorCode: errorCode,
		TraceID:   traceID(c),
	})
}

// RespondValidationError returns a 400 with a field-level error array.
func RespondValidationError(c *gin.Context, fieldErrors []FieldError) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Status:    "error",
		Code:      http.StatusBadRequest,
		Message:   "Validation failed",
		ErrorCode: CodeValidationError,
		TraceID:   traceID(c),
		Errors:    fieldErrors,
	})
}

// HandleServiceError translates service sentinel errors into API responses.
// Anything unrecognized is a 500 with a generic message; nothing is retried.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrAccountNotFound), errors.Is(err, ErrCourseNotFound), errors.Is(err, ErrFeedbackNotFound):
		RespondError(c, http.StatusNotFound, CodeNotFound, err.Error())
	case errors.Is(err, ErrEmailAlreadyExists):
		RespondError(c, http.StatusBadRequest, CodeEmailTaken, err.Error())
	case errors.Is(err, ErrCourseExists):
		RespondError(c, http.StatusBadRequest, CodeCourseExists, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, CodeInvalidCredentials, err.Error())
	case errors.Is(err, ErrAccountBlocked):
		RespondError(c, http.StatusForbidden, CodeAccountBlocked, BlockedAccountMessage)
	case errors.Is(err, ErrWrongPassword), errors.Is(err, ErrInvalidRating):
		RespondError(c, http.StatusBadRequest, CodeValidationError, err.Error())
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, CodeValidationError, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, CodeValidationError, "Page size must be between 1 and 100")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, CodeInternalError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, CodeInternalError, "Internal server error")
	}
}
