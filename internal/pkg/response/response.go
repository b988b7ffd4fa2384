package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every error body carries at least a "message" field; the client surfaces
// it directly.

// OK sends a 200 response.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created sends a 201 response with the created record.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message sends a 200 confirmation message.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// BadRequest sends a 400 validation error.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": message})
}

// Unauthorized sends a uniform 401. The message never reveals which check
// failed.
func Unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
}

// NotFound sends a 404 with a resource-specific message.
func NotFound(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": message})
}

// InternalError sends a 500. The underlying error is included only in debug
// mode; production clients get a generic message.
func InternalError(c *gin.Context, err error) {
	body := gin.H{"message": "server error"}
	if gin.IsDebugging() && err != nil {
		body["error"] = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, body)
}

// Unavailable sends a 503 when the database cannot be reached.
func Unavailable(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"message": message})
}
