// Package response maps service errors onto the JSON error bodies the
// API speaks: {"error": "..."} with 400/404/409/500.
package response

import (
	"errors"
	"net/http"

	"invest-service/internal/voting"

	"github.com/gin-gonic/gin"
)

// Error writes the JSON error body for err. Persistence and other
// unclassified failures surface as a generic 500; the original error is
// attached to the gin context so the request logger records it.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, voting.ErrInvalidChoice),
		errors.Is(err, voting.ErrUnknownVoter),
		errors.Is(err, voting.ErrUnknownKind):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, voting.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, voting.ErrNotVotable),
		errors.Is(err, voting.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// BadRequest writes a 400 with the given message
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
