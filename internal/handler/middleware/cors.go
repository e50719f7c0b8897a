package middleware

import (
	"log/slog"
	"slices"

	"guesthouse-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware lets the public site and the admin panel call the API
// with the session cookie. Empty lists fall back to DefaultCORSConfig so a
// partially filled config never leaves cors.New without origins.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	return cors.New(corsOptions(cfg))
}

func corsOptions(cfg config.CORSConfig) cors.Config {
	def := config.DefaultCORSConfig()
	if len(cfg.AllowOrigins) == 0 {
		slog.Warn("no CORS origins configured, using defaults", "allow_origins", def.AllowOrigins)
		cfg.AllowOrigins = def.AllowOrigins
	}
	if len(cfg.AllowMethods) == 0 {
		cfg.AllowMethods = def.AllowMethods
	}
	if len(cfg.AllowHeaders) == 0 {
		cfg.AllowHeaders = def.AllowHeaders
	}

	opts := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	// browsers refuse a wildcard origin on credentialed requests
	if slices.Contains(cfg.AllowOrigins, "*") {
		if cfg.AllowCredentials {
			slog.Warn("CORS wildcard origin configured, dropping credentials")
		}
		opts.AllowAllOrigins = true
		opts.AllowCredentials = false
	} else {
		opts.AllowOrigins = cfg.AllowOrigins
	}

	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_credentials", opts.AllowCredentials)
	return opts
}
