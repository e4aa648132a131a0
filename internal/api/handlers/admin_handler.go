// server/internal/api/handlers/admin_handler.go
package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"dc-directory-api-server/internal/models"
	"dc-directory-api-server/internal/mutate"
	"dc-directory-api-server/internal/query"
	"dc-directory-api-server/internal/s3"
	"dc-directory-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultMonitoringLimit = 6

// CatalogExporter uploads a snapshot of the directory somewhere durable.
type CatalogExporter interface {
	Export(ctx context.Context, records []models.DataCenter) (s3.Result, error)
}

// AdminHandler is the operator CRUD surface. Edits are built on a copy of the
// stored record and committed through the store in one call.
type AdminHandler struct {
	Store    *store.Store
	Exporter CatalogExporter
	// OnExport, when set, is told the outcome of every export attempt.
	OnExport func(error)
	Log      zerolog.Logger
	Now      func() time.Time
}

func (h *AdminHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}

// ListDataCenters is the admin table, searched by name or location.
func (h *AdminHandler) ListDataCenters(c *gin.Context) {
	result := query.AdminSearch(h.Store.Snapshot(), c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"count": len(result), "datacenters": result})
}

// GetTemplate returns a fully populated record with a fresh id for the
// "add data center" form. Nothing is stored.
func (h *AdminHandler) GetTemplate(c *gin.Context) {
	c.JSON(http.StatusOK, models.NewDataCenter(uuid.NewString(), h.now()))
}

func (h *AdminHandler) CreateDataCenter(c *gin.Context) {
	var dc models.DataCenter
	if err := c.ShouldBindJSON(&dc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if dc.ID == "" {
		dc.ID = uuid.NewString()
	}

	if err := h.Store.Insert(dc); err != nil {
		respondError(c, err)
		return
	}
	h.Log.Info().Str("id", dc.ID).Msg("data center created")
	c.JSON(http.StatusCreated, dc)
}

// ReplaceDataCenter swaps the whole record. An empty id in the body keeps the
// id from the URL.
func (h *AdminHandler) ReplaceDataCenter(c *gin.Context) {
	id := c.Param("id")
	var dc models.DataCenter
	if err := c.ShouldBindJSON(&dc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if dc.ID == "" {
		dc.ID = id
	}

	if err := h.Store.UpdateByID(id, dc); err != nil {
		respondError(c, err)
		return
	}
	h.Log.Info().Str("id", id).Str("newId", dc.ID).Msg("data center replaced")
	c.JSON(http.StatusOK, dc)
}

// PatchFieldsRequest carries either one edit (path, value) or a batch (fields).
type PatchFieldsRequest struct {
	Path   string          `json:"path"`
	Value  any             `json:"value"`
	Fields []mutate.Change `json:"fields" binding:"omitempty,dive"`
}

func (r PatchFieldsRequest) changes() []mutate.Change {
	if r.Path != "" {
		return append([]mutate.Change{{Path: r.Path, Value: r.Value}}, r.Fields...)
	}
	return r.Fields
}

// PatchFields applies form edits to the stored record in one store write.
func (h *AdminHandler) PatchFields(c *gin.Context) {
	id := c.Param("id")
	var req PatchFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	changes := req.changes()
	if len(changes) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Either path or fields is required"})
		return
	}

	var updated models.DataCenter
	err := h.Store.Modify(id, func(current models.DataCenter) (models.DataCenter, error) {
		candidate, err := mutate.ApplyAll(current, changes)
		updated = candidate
		return candidate, err
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.Log.Info().Str("id", id).Int("fields", len(changes)).Msg("data center fields updated")
	c.JSON(http.StatusOK, updated)
}

func (h *AdminHandler) DeleteDataCenter(c *gin.Context) {
	id := c.Param("id")
	deleted := h.Store.DeleteByID(id)
	if deleted {
		h.Log.Info().Str("id", id).Msg("data center deleted")
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// ListFields describes every editable path for building the edit form. With
// ?id= the current values of that record are included.
func (h *AdminHandler) ListFields(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusOK, gin.H{"fields": mutate.Fields()})
		return
	}
	dc, ok := h.Store.Get(id)
	if !ok {
		respondError(c, store.ErrNotFound)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "fields": mutate.Form(dc)})
}

// MonitoringEntry is one tile of the real-time monitoring view.
type MonitoringEntry struct {
	ID           string              `json:"id"`
	Name         string              `json:"name"`
	Location     string              `json:"location"`
	Capacity     models.Capacity     `json:"capacity"`
	RealTimeData models.RealTimeData `json:"realTimeData"`
}

// GetMonitoring returns telemetry for the first ?limit= records (default 6).
func (h *AdminHandler) GetMonitoring(c *gin.Context) {
	limit := defaultMonitoringLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	snapshot := h.Store.Snapshot()
	if limit > len(snapshot) {
		limit = len(snapshot)
	}
	entries := make([]MonitoringEntry, 0, limit)
	for _, dc := range snapshot[:limit] {
		entries = append(entries, MonitoringEntry{
			ID:           dc.ID,
			Name:         dc.Name,
			Location:     dc.Location,
			Capacity:     dc.Capacity,
			RealTimeData: dc.RealTimeData,
		})
	}
	c.JSON(http.StatusOK, gin.H{"count": len(entries), "datacenters": entries})
}

// ExportCatalog uploads the current snapshot through the configured exporter.
func (h *AdminHandler) ExportCatalog(c *gin.Context) {
	if h.Exporter == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Catalog export is not configured"})
		return
	}

	res, err := h.Exporter.Export(c.Request.Context(), h.Store.Snapshot())
	if h.OnExport != nil {
		h.OnExport(err)
	}
	if err != nil {
		h.Log.Error().Err(err).Msg("catalog export failed")
		if errors.Is(err, context.Canceled) {
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to export catalog"})
		return
	}

	h.Log.Info().Str("key", res.Key).Int("records", res.Count).Msg("catalog exported")
	c.JSON(http.StatusCreated, res)
}
