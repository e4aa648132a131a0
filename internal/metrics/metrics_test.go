package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"dc-directory-api-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveStore(t *testing.T) {
	m := New()

	m.ObserveStore(store.OpInsert, "a", 1)
	m.ObserveStore(store.OpInsert, "b", 2)
	m.ObserveStore(store.OpDelete, "a", 1)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.records))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.mutations.WithLabelValues("insert")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mutations.WithLabelValues("delete")))
}

func TestObserveExport(t *testing.T) {
	m := New()
	m.ObserveExport(nil)
	m.ObserveExport(errors.New("boom"))
	m.ObserveExport(nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.exports.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.exports.WithLabelValues("error")))
}

func TestHandlerExposesRequestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()
	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/ping/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	r.GET("/metrics", gin.WrapH(m.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping/42", nil))
	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `dcdir_http_request_duration_seconds_count{method="GET",route="/ping/:id",status="204"} 1`)
}
