package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dc-directory-api-server/config"
	"dc-directory-api-server/internal/auth"
	"dc-directory-api-server/internal/models"
	"dc-directory-api-server/internal/s3"
	"dc-directory-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func facility(id, name, location string, tier models.Tier, uptime float64) models.DataCenter {
	dc := models.NewDataCenter(id, fixedNow)
	dc.Name = name
	dc.Location = location
	dc.Tier = tier
	dc.Capacity.Used = 40
	dc.RealTimeData.Uptime = uptime
	return dc
}

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New()
	require.NoError(t, s.ReplaceAll([]models.DataCenter{
		facility("dc-1", "Equinix AM5", "Europe", models.Tier3, 99.9),
		facility("dc-2", "NTT Tokyo 2", "Asia Pacific", models.Tier1, 99.5),
		facility("dc-3", "Digital Realty LON1", "Europe", models.Tier3, 100),
	}))
	return s
}

type fakeExporter struct {
	err   error
	calls int
}

func (f *fakeExporter) Export(_ context.Context, records []models.DataCenter) (s3.Result, error) {
	f.calls++
	if f.err != nil {
		return s3.Result{}, f.err
	}
	return s3.Result{Key: "exports/x.json", URL: "https://cdn/x.json", Count: len(records), ExportedAt: fixedNow}, nil
}

func newRouter(s *store.Store, exp CatalogExporter) (*gin.Engine, *AdminHandler) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	pub := &DataCenterHandler{Store: s}
	r.GET("/datacenters", pub.ListDataCenters)
	r.GET("/datacenters/facets", pub.GetFacets)
	r.GET("/datacenters/compare", pub.Compare)
	r.GET("/datacenters/:id", pub.GetDataCenter)
	r.GET("/stats", pub.GetStats)

	admin := &AdminHandler{Store: s, Log: zerolog.Nop(), Now: func() time.Time { return fixedNow }}
	if exp != nil {
		admin.Exporter = exp
	}
	r.GET("/admin/datacenters", admin.ListDataCenters)
	r.GET("/admin/datacenters/template", admin.GetTemplate)
	r.POST("/admin/datacenters", admin.CreateDataCenter)
	r.PUT("/admin/datacenters/:id", admin.ReplaceDataCenter)
	r.PATCH("/admin/datacenters/:id/fields", admin.PatchFields)
	r.DELETE("/admin/datacenters/:id", admin.DeleteDataCenter)
	r.GET("/admin/fields", admin.ListFields)
	r.GET("/admin/monitoring", admin.GetMonitoring)
	r.POST("/admin/exports", admin.ExportCatalog)
	return r, admin
}

func do(r http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

type listResponse struct {
	Count       int                 `json:"count"`
	DataCenters []models.DataCenter `json:"datacenters"`
}

func TestListDataCentersFilters(t *testing.T) {
	r, _ := newRouter(seededStore(t), nil)

	w := do(r, http.MethodGet, "/datacenters?tier=Tier+3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[listResponse](t, w)
	assert.Equal(t, 2, got.Count)
	assert.Equal(t, "dc-1", got.DataCenters[0].ID)
	assert.Equal(t, "dc-3", got.DataCenters[1].ID)

	got = decode[listResponse](t, do(r, http.MethodGet, "/datacenters?q=tokyo", nil))
	assert.Equal(t, 1, got.Count)

	got = decode[listResponse](t, do(r, http.MethodGet, "/datacenters?location=Europe&q=lon", nil))
	require.Equal(t, 1, got.Count)
	assert.Equal(t, "dc-3", got.DataCenters[0].ID)

	got = decode[listResponse](t, do(r, http.MethodGet, "/datacenters", nil))
	assert.Equal(t, 3, got.Count)
}

func TestGetDataCenter(t *testing.T) {
	r, _ := newRouter(seededStore(t), nil)

	w := do(r, http.MethodGet, "/datacenters/dc-2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "NTT Tokyo 2", decode[models.DataCenter](t, w).Name)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/datacenters/nope", nil).Code)
}

func TestFacetsAndCompare(t *testing.T) {
	r, _ := newRouter(seededStore(t), nil)

	facets := decode[map[string][]string](t, do(r, http.MethodGet, "/datacenters/facets", nil))
	assert.Equal(t, []string{"Europe", "Asia Pacific"}, facets["locations"])
	assert.Equal(t, []string{"Tier 3", "Tier 1"}, facets["tiers"])

	w := do(r, http.MethodGet, "/datacenters/compare?ids=dc-3,ghost&ids=dc-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	cmp := decode[struct {
		DataCenters []models.DataCenter `json:"datacenters"`
		Missing     []string            `json:"missing"`
	}](t, w)
	require.Len(t, cmp.DataCenters, 2)
	assert.Equal(t, "dc-3", cmp.DataCenters[0].ID)
	assert.Equal(t, "dc-1", cmp.DataCenters[1].ID)
	assert.Equal(t, []string{"ghost"}, cmp.Missing)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/datacenters/compare", nil).Code)
}

func TestStats(t *testing.T) {
	r, _ := newRouter(seededStore(t), nil)
	got := decode[map[string]any](t, do(r, http.MethodGet, "/stats", nil))
	assert.Equal(t, 3.0, got["totalCount"])
	assert.Equal(t, 3.0, got["availableCount"])
	assert.InDelta(t, 60.0, got["totalPowerMW"], 1e-9)
	assert.InDelta(t, 99.8, got["averageUptime"], 1e-9)

	empty, _ := newRouter(store.New(), nil)
	got = decode[map[string]any](t, do(empty, http.MethodGet, "/stats", nil))
	assert.Equal(t, 0.0, got["totalCount"])
	assert.Nil(t, got["averageUptime"])
	assert.Nil(t, got["averageCapacityUsed"])
}

func TestCreateDataCenter(t *testing.T) {
	s := seededStore(t)
	r, _ := newRouter(s, nil)

	tmpl := decode[models.DataCenter](t, do(r, http.MethodGet, "/admin/datacenters/template", nil))
	assert.NotEmpty(t, tmpl.ID)
	assert.Equal(t, "2024", tmpl.Established)
	_, exists := s.Get(tmpl.ID)
	assert.False(t, exists)

	w := do(r, http.MethodPost, "/admin/datacenters", tmpl)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 4, s.Len())

	assert.Equal(t, http.StatusConflict, do(r, http.MethodPost, "/admin/datacenters", tmpl).Code)

	noID := models.NewDataCenter("", fixedNow)
	w = do(r, http.MethodPost, "/admin/datacenters", noID)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotEmpty(t, decode[models.DataCenter](t, w).ID)

	bad := models.NewDataCenter("dc-bad", fixedNow)
	bad.RealTimeData.Uptime = 140
	w = do(r, http.MethodPost, "/admin/datacenters", bad)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "realTimeData.uptime")
	assert.Equal(t, 5, s.Len())
}

func TestReplaceDataCenter(t *testing.T) {
	s := seededStore(t)
	r, _ := newRouter(s, nil)

	dc, _ := s.Get("dc-2")
	dc.Name = "NTT Tokyo 3"
	dc.ID = ""
	w := do(r, http.MethodPut, "/admin/datacenters/dc-2", dc)
	require.Equal(t, http.StatusOK, w.Code)
	got, _ := s.Get("dc-2")
	assert.Equal(t, "NTT Tokyo 3", got.Name)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPut, "/admin/datacenters/ghost", dc).Code)

	dc.ID = "dc-1"
	assert.Equal(t, http.StatusConflict, do(r, http.MethodPut, "/admin/datacenters/dc-2", dc).Code)
}

func TestPatchFields(t *testing.T) {
	s := seededStore(t)
	r, _ := newRouter(s, nil)

	w := do(r, http.MethodPatch, "/admin/datacenters/dc-1/fields", gin.H{"path": "capacity.used", "value": 75})
	require.Equal(t, http.StatusOK, w.Code)
	got, _ := s.Get("dc-1")
	assert.Equal(t, 75.0, got.Capacity.Used)
	assert.Equal(t, models.StatusAvailable, got.Capacity.Status)

	w = do(r, http.MethodPatch, "/admin/datacenters/dc-1/fields", gin.H{"fields": []gin.H{
		{"path": "name", "value": "Equinix AM6"},
		{"path": "specifications.power", "value": "32 MW"},
		{"path": "services", "value": "Colocation, Edge"},
	}})
	require.Equal(t, http.StatusOK, w.Code)
	got, _ = s.Get("dc-1")
	assert.Equal(t, "Equinix AM6", got.Name)
	assert.Equal(t, models.Quantity{Value: 32, Unit: "MW"}, got.Specifications.Power)
	assert.Equal(t, []string{"Colocation", "Edge"}, got.Services)
}

func TestPatchFieldsErrors(t *testing.T) {
	s := seededStore(t)
	r, _ := newRouter(s, nil)
	before, _ := s.Get("dc-1")

	w := do(r, http.MethodPatch, "/admin/datacenters/dc-1/fields", gin.H{"path": "specifications.power.value", "value": 1})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "power", decode[map[string]any](t, w)["segment"])

	w = do(r, http.MethodPatch, "/admin/datacenters/dc-1/fields", gin.H{"path": "capacity.used", "value": "lots"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPatch, "/admin/datacenters/dc-1/fields", gin.H{"path": "capacity.used", "value": 150})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(r, http.MethodPatch, "/admin/datacenters/dc-1/fields", gin.H{"fields": []gin.H{
		{"path": "name", "value": "Half applied"},
		{"path": "id", "value": "other"},
	}})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPatch, "/admin/datacenters/dc-1/fields", gin.H{}).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPatch, "/admin/datacenters/ghost/fields", gin.H{"path": "name", "value": "x"}).Code)

	after, _ := s.Get("dc-1")
	assert.Equal(t, before, after)
}

func TestPatchFieldsRejectsNonFiniteNumbers(t *testing.T) {
	s := seededStore(t)
	r, _ := newRouter(s, nil)
	before, _ := s.Get("dc-1")

	for _, body := range []gin.H{
		{"path": "realTimeData.temperature", "value": "NaN"},
		{"path": "sustainability.pue", "value": "Inf"},
		{"path": "specifications.power", "value": gin.H{"value": "NaN"}},
	} {
		w := do(r, http.MethodPatch, "/admin/datacenters/dc-1/fields", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}

	w := do(r, http.MethodPatch, "/admin/datacenters/dc-1/fields", gin.H{"path": "specifications.power", "value": "-20 MW"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	after, _ := s.Get("dc-1")
	assert.Equal(t, before, after)

	w = do(r, http.MethodGet, "/datacenters", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, decode[listResponse](t, w).Count)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/stats", nil).Code)
}

func TestDeleteDataCenter(t *testing.T) {
	s := seededStore(t)
	r, _ := newRouter(s, nil)

	w := do(r, http.MethodDelete, "/admin/datacenters/dc-2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode[map[string]bool](t, w)["deleted"])

	w = do(r, http.MethodDelete, "/admin/datacenters/dc-2", nil)
	assert.Equal(t, false, decode[map[string]bool](t, w)["deleted"])
	assert.Equal(t, 2, s.Len())
}

func TestAdminSearchAndFields(t *testing.T) {
	r, _ := newRouter(seededStore(t), nil)

	got := decode[listResponse](t, do(r, http.MethodGet, "/admin/datacenters?q=europe", nil))
	assert.Equal(t, 2, got.Count)

	fields := decode[struct {
		Fields []map[string]any `json:"fields"`
	}](t, do(r, http.MethodGet, "/admin/fields", nil))
	assert.NotEmpty(t, fields.Fields)
	assert.Equal(t, "name", fields.Fields[0]["path"])

	form := decode[struct {
		Fields []map[string]any `json:"fields"`
	}](t, do(r, http.MethodGet, "/admin/fields?id=dc-2", nil))
	assert.Equal(t, "NTT Tokyo 2", form.Fields[0]["value"])

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/admin/fields?id=ghost", nil).Code)
}

func TestMonitoring(t *testing.T) {
	r, _ := newRouter(seededStore(t), nil)

	got := decode[struct {
		Count       int               `json:"count"`
		DataCenters []MonitoringEntry `json:"datacenters"`
	}](t, do(r, http.MethodGet, "/admin/monitoring", nil))
	assert.Equal(t, 3, got.Count)
	assert.Equal(t, 99.5, got.DataCenters[1].RealTimeData.Uptime)

	got = decode[struct {
		Count       int               `json:"count"`
		DataCenters []MonitoringEntry `json:"datacenters"`
	}](t, do(r, http.MethodGet, "/admin/monitoring?limit=1", nil))
	assert.Equal(t, 1, got.Count)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/admin/monitoring?limit=-2", nil).Code)
}

func TestExportCatalog(t *testing.T) {
	r, _ := newRouter(seededStore(t), nil)
	assert.Equal(t, http.StatusServiceUnavailable, do(r, http.MethodPost, "/admin/exports", nil).Code)

	exp := &fakeExporter{}
	r, admin := newRouter(seededStore(t), exp)
	var outcomes []error
	admin.OnExport = func(err error) { outcomes = append(outcomes, err) }

	w := do(r, http.MethodPost, "/admin/exports", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 3, decode[s3.Result](t, w).Count)

	exp.err = errors.New("denied")
	assert.Equal(t, http.StatusBadGateway, do(r, http.MethodPost, "/admin/exports", nil).Code)
	assert.Equal(t, 2, exp.calls)
	require.Len(t, outcomes, 2)
	assert.NoError(t, outcomes[0])
	assert.Error(t, outcomes[1])
}

func TestLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	hash, err := auth.HashPassword("admin123")
	require.NoError(t, err)
	svc, err := auth.NewService(
		config.AuthConfig{AdminEmail: "admin@datacenter.com", PasswordHash: hash},
		config.JWTConfig{Secret: "secret", Expiration: time.Hour},
	)
	require.NoError(t, err)

	h := &AuthHandler{Auth: svc, Log: zerolog.Nop()}
	r := gin.New()
	r.POST("/login", h.Login)

	w := do(r, http.MethodPost, "/login", LoginRequest{Email: "admin@datacenter.com", Password: "admin123"})
	require.Equal(t, http.StatusOK, w.Code)
	body := decode[map[string]any](t, w)
	token, _ := body["token"].(string)
	claims, err := svc.ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, auth.RoleAdmin, claims.Role)

	assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodPost, "/login", LoginRequest{Email: "admin@datacenter.com", Password: "nope"}).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/login", gin.H{"email": "admin@datacenter.com"}).Code)
}
