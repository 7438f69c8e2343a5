package httpapi

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/incidentdesk/backend/internal/config"
	"github.com/incidentdesk/backend/internal/http/handlers"
	"github.com/incidentdesk/backend/internal/http/middleware"

	_ "github.com/incidentdesk/backend/docs"
)

func Router(cfg config.Config, h *handlers.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(h.Logger))
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.AdminKeyHeader, middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if cfg.CORSAllowed == "" || cfg.CORSAllowed == "*" {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	} else {
		for _, o := range strings.Split(cfg.CORSAllowed, ",") {
			if o = strings.TrimSpace(o); o != "" {
				corsCfg.AllowOrigins = append(corsCfg.AllowOrigins, o)
			}
		}
	}
	r.Use(cors.New(corsCfg))

	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.GET("/kb-suggestions", h.KBSuggestionsInfo)
		api.POST("/kb-suggestions", h.KBSuggestions)
		api.GET("/similarity-check", h.SimilarityInfo)
		api.POST("/similarity-check", h.SimilarityCheck)
		api.GET("/analyze-ticket", h.AnalyzeInfo)
		api.POST("/analyze-ticket", h.AnalyzeTicket)

		api.GET("/tickets", h.TicketsList)
		api.POST("/tickets", h.TicketCreate)
		api.GET("/tickets/:id", h.TicketDetails)
		api.GET("/analytics", h.Analytics)
	}

	admin := api.Group("")
	admin.Use(middleware.AdminKey(cfg.AdminKey))
	{
		admin.PUT("/tickets/:id", h.TicketUpdate)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
