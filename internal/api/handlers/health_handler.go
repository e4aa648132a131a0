// server/internal/api/handlers/health_handler.go
package handlers

import (
	"net/http"

	"dc-directory-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	Store *store.Store
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "records": h.Store.Len()})
}
