// server/internal/api/handlers/datacenter_handler.go
package handlers

import (
	"net/http"
	"strings"

	"dc-directory-api-server/internal/query"
	"dc-directory-api-server/internal/stats"
	"dc-directory-api-server/internal/store"

	"github.com/gin-gonic/gin"
)

// DataCenterHandler serves the public browsing views. Every request works on
// one snapshot of the store.
type DataCenterHandler struct {
	Store *store.Store
}

// ListDataCenters filters the directory by ?q=, ?location= and ?tier=.
func (h *DataCenterHandler) ListDataCenters(c *gin.Context) {
	var criteria query.Criteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := query.Filter(h.Store.Snapshot(), criteria)
	c.JSON(http.StatusOK, gin.H{"count": len(result), "datacenters": result})
}

func (h *DataCenterHandler) GetDataCenter(c *gin.Context) {
	dc, ok := h.Store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Data center not found"})
		return
	}
	c.JSON(http.StatusOK, dc)
}

// GetFacets returns the values the location and tier selectors offer.
func (h *DataCenterHandler) GetFacets(c *gin.Context) {
	c.JSON(http.StatusOK, query.FacetsOf(h.Store.Snapshot()))
}

// Compare returns the requested records side by side, in request order.
// ids may be repeated (?ids=a&ids=b) or comma separated (?ids=a,b).
func (h *DataCenterHandler) Compare(c *gin.Context) {
	var ids []string
	for _, v := range c.QueryArray("ids") {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one id is required"})
		return
	}

	selected, missing := query.SelectByIDs(h.Store.Snapshot(), ids)
	if missing == nil {
		missing = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"datacenters": selected, "missing": missing})
}

func (h *DataCenterHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, stats.Summarize(h.Store.Snapshot()))
}
