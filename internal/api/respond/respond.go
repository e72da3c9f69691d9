// Package respond maps repository outcomes onto HTTP status codes so every
// resource handler reports failures the same way.
package respond

import (
	"errors"
	"net/http"

	"greencouncil-api/config"
	"greencouncil-api/internal/content"

	"github.com/gin-gonic/gin"
)

// Error writes the JSON error for err. Expected outcomes (not found, conflict,
// validation) keep their message; anything else is a repository failure and is
// surfaced generically, with detail only in development mode.
func Error(c *gin.Context, err error, generic string) {
	switch {
	case errors.Is(err, content.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, content.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, content.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		body := gin.H{"error": generic}
		if config.IsDevelopment() {
			body["details"] = err.Error()
		}
		c.JSON(http.StatusInternalServerError, body)
	}
}
