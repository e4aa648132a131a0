// server/internal/api/routes/routes.go
package routes

import (
	"time"

	"dc-directory-api-server/config"
	"dc-directory-api-server/internal/api/handlers"
	"dc-directory-api-server/internal/api/middleware"
	"dc-directory-api-server/internal/auth"
	"dc-directory-api-server/internal/metrics"
	"dc-directory-api-server/internal/socket"
	"dc-directory-api-server/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Dependencies is everything the router hands to its handlers. Exporter may
// be nil when S3 is not configured.
type Dependencies struct {
	Config   config.Config
	Store    *store.Store
	Auth     *auth.Service
	Hub      *socket.Hub
	Metrics  *metrics.Metrics
	Exporter handlers.CatalogExporter
	Log      zerolog.Logger
}

func SetupRouter(d Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(d.Log))
	if d.Metrics != nil {
		router.Use(d.Metrics.Middleware())
	}
	router.Use(cors.New(corsConfig(d.Config.Server.AllowedOrigins)))

	dataCenterHandler := &handlers.DataCenterHandler{Store: d.Store}
	adminHandler := &handlers.AdminHandler{Store: d.Store, Exporter: d.Exporter, Log: d.Log}
	if d.Metrics != nil {
		adminHandler.OnExport = d.Metrics.ObserveExport
	}
	authHandler := &handlers.AuthHandler{Auth: d.Auth, Log: d.Log}
	webSocketHandler := &handlers.WebSocketHandler{Hub: d.Hub, Log: d.Log}
	healthHandler := &handlers.HealthHandler{Store: d.Store}

	router.GET("/healthz", healthHandler.Health)
	if d.Metrics != nil {
		router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	apiV1 := router.Group("/api/v1")
	{
		apiV1.GET("/ws", webSocketHandler.ServeWs)

		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
		}

		// Browsing, no login needed
		datacenters := apiV1.Group("/datacenters")
		{
			datacenters.GET("", dataCenterHandler.ListDataCenters)
			datacenters.GET("/facets", dataCenterHandler.GetFacets)
			datacenters.GET("/compare", dataCenterHandler.Compare)
			datacenters.GET("/:id", dataCenterHandler.GetDataCenter)
		}
		apiV1.GET("/stats", dataCenterHandler.GetStats)

		admin := apiV1.Group("/admin")
		admin.Use(middleware.Authenticate(d.Auth))
		admin.Use(middleware.Authorize(auth.RoleAdmin))
		{
			adminDataCenters := admin.Group("/datacenters")
			{
				adminDataCenters.GET("", adminHandler.ListDataCenters)
				adminDataCenters.GET("/template", adminHandler.GetTemplate)
				adminDataCenters.POST("", adminHandler.CreateDataCenter)
				adminDataCenters.PUT("/:id", adminHandler.ReplaceDataCenter)
				adminDataCenters.PATCH("/:id/fields", adminHandler.PatchFields)
				adminDataCenters.DELETE("/:id", adminHandler.DeleteDataCenter)
			}
			admin.GET("/fields", adminHandler.ListFields)
			admin.GET("/monitoring", adminHandler.GetMonitoring)
			admin.POST("/exports", adminHandler.ExportCatalog)
		}
	}

	return router
}

// corsConfig allows any origin, without credentials, when none is configured.
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}
