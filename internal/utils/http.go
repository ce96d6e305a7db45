package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	StatusSuccess = "SUCCESS"
	StatusError   = "ERROR"
)

// Error codes shared by every endpoint
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeNotFound       = "NOT_FOUND"
	CodeServerError    = "SERVER_ERROR"
	CodeRateLimited    = "RATE_LIMITED"
)

// Response represents a standard API response
type Response struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Status    string      `json:"status"`
	Error     string      `json:"error"`
	ErrorCode string      `json:"error_code"`
	Details   interface{} `json:"details"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	if message == "" {
		message = "Success"
	}
	return c.JSON(statusCode, Response{
		Status:  StatusSuccess,
		Data:    data,
		Message: message,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorCode, message string, details interface{}) error {
	return c.JSON(statusCode, ErrorResponse{
		Status:    StatusError,
		Error:     message,
		ErrorCode: errorCode,
		Details:   details,
	})
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorCode, message string, details interface{}) error {
	if errorCode == "" {
		errorCode = CodeInvalidRequest
	}
	return ErrorResponseHandler(c, http.StatusBadRequest, errorCode, message, details)
}

// NotFoundResponse sends a 404 Not Found response
func NotFoundResponse(c echo.Context, message string, details interface{}) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, CodeNotFound, message, details)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, message string, details interface{}) error {
	if message == "" {
		message = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, CodeServerError, message, details)
}

// TooManyRequestsResponse sends a 429 Too Many Requests response
func TooManyRequestsResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Rate limit exceeded"
	}
	return ErrorResponseHandler(c, http.StatusTooManyRequests, CodeRateLimited, message, nil)
}

// ErrorDetail wraps a plain error message the way every handler reports it
func ErrorDetail(err error) map[string]string {
	if err == nil {
		return nil
	}
	return map[string]string{"error": err.Error()}
}
