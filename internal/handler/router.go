package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "order-time-checker/docs"
	"order-time-checker/internal/handler/api"
	"order-time-checker/internal/handler/middleware"
	"order-time-checker/internal/pkg/config"
	"order-time-checker/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, orderTimeHandler *api.OrderTimeHandler, m *metrics.Metrics) {
	setupMiddleware(engine, cfg, m)
	setupRoutes(engine, cfg, orderTimeHandler, m)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	if cfg.Metrics.Enabled {
		engine.Use(middleware.Metrics(m))
	}
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, orderTimeHandler *api.OrderTimeHandler, m *metrics.Metrics) {
	engine.GET("/health", healthCheck)

	if cfg.Metrics.Enabled {
		engine.GET(cfg.Metrics.Path, gin.WrapH(m.Handler()))
	}

	if cfg.Swagger.Enabled {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	orderTime := engine.Group("/order-time")
	{
		addRoutes(orderTime, []route{
			{Method: http.MethodPost, Path: "", Handler: orderTimeHandler.Validate},
			{Method: http.MethodGet, Path: "/form", Handler: orderTimeHandler.Form, Mw: []gin.HandlerFunc{middleware.NoStore()}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
