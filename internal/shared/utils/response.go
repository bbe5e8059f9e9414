package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/chennai-a11y/prefsync/internal/shared/errors"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

// AckResponse acknowledges a successful mutation.
type AckResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message,omitempty"`
	Language string `json:"language,omitempty"`
}

// JSONResponse writes data as the whole response body.
func JSONResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// RawJSONResponse writes an already encoded JSON document.
func RawJSONResponse(c *gin.Context, statusCode int, body []byte) {
	c.Data(statusCode, "application/json; charset=utf-8", body)
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// ErrorResponseWithError sends an error response based on error type
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, ErrorBody{Error: appErr.Message})
		return
	}

	// Non-AppErrors never leak their details to the client.
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: "Internal server error occurred"})
}
