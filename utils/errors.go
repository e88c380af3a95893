package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// HTTPError is a typed failure carrying the status code and message the
// client should see. Handlers never leak raw internal errors: anything that
// is not an *HTTPError is rendered as a generic 500.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string { return e.Message }

func BadRequest(msg string) *HTTPError {
	return &HTTPError{Status: http.StatusBadRequest, Message: msg}
}

func Unauthorized(msg string) *HTTPError {
	return &HTTPError{Status: http.StatusUnauthorized, Message: msg}
}

func Forbidden(msg string) *HTTPError {
	return &HTTPError{Status: http.StatusForbidden, Message: msg}
}

func NotFound(msg string) *HTTPError {
	return &HTTPError{Status: http.StatusNotFound, Message: msg}
}

func Conflict(msg string) *HTTPError {
	return &HTTPError{Status: http.StatusConflict, Message: msg}
}

// Respond writes the success envelope {success, data:{<key>: value}}.
func Respond(c *gin.Context, status int, key string, value any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    gin.H{key: value},
	})
}

// RespondList adds the results count that list endpoints carry.
func RespondList(c *gin.Context, status int, key string, value any, results int) {
	c.JSON(status, gin.H{
		"success": true,
		"results": results,
		"data":    gin.H{key: value},
	})
}

// RespondNoContent is the delete-success shape.
func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// RespondError renders a typed failure, or a generic 500 for anything else.
func RespondError(c *gin.Context, err error) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		c.AbortWithStatusJSON(httpErr.Status, gin.H{
			"success": false,
			"error":   httpErr.Message,
		})
		return
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"error":   "something went wrong",
	})
}
