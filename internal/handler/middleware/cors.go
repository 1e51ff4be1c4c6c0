package middleware

import (
	"log/slog"

	"order-time-checker/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     append([]string{HeaderRequestID}, cfg.AllowHeaders...),
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	}
	slog.Debug("CORS middleware initialized", "allow_origins", cfg.AllowOrigins, "allow_all", corsCfg.AllowAllOrigins)
	return cors.New(corsCfg)
}
