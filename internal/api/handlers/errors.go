// server/internal/api/handlers/errors.go
package handlers

import (
	"errors"
	"net/http"

	"dc-directory-api-server/internal/models"
	"dc-directory-api-server/internal/mutate"
	"dc-directory-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP statuses. Anything unrecognised
// is a 500 and is not echoed to the client.
func respondError(c *gin.Context, err error) {
	var (
		pathErr  *mutate.PathError
		valueErr *mutate.ValueError
		invalid  *models.ValidationError
	)

	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Data center not found"})
	case errors.Is(err, store.ErrDuplicateID):
		c.JSON(http.StatusConflict, gin.H{"error": "Data center with this ID already exists"})
	case errors.As(err, &pathErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": pathErr.Error(), "path": pathErr.Path, "segment": pathErr.Segment})
	case errors.As(err, &valueErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": valueErr.Error(), "path": valueErr.Path, "kind": valueErr.Kind})
	case errors.As(err, &invalid):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Data center is invalid", "fields": invalid.Fields})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
