// Package router configures the gin engine and attaches all API routes.
package router

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/finsight/backend/api"
	"github.com/finsight/backend/internal/config"
	"github.com/finsight/backend/internal/controllers/healthz"
	"github.com/finsight/backend/internal/controllers/root"
	v1 "github.com/finsight/backend/internal/controllers/v1"
	"github.com/finsight/backend/internal/controllers/version"
	"github.com/finsight/backend/internal/httperror"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Set at build time with -ldflags "-X github.com/finsight/backend/internal/router.buildVersion=..."
var buildVersion = "0.0.0"

// Config sets up the gin engine with all middlewares.
//
// The returned function must be called when the engine is not used anymore.
func Config(cfg config.Config) (*gin.Engine, func(), error) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	r := gin.New()

	// Client IPs are not used, X-Forwarded-For is not processed
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(cfg.APIURL))
	r.NoMethod(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, httperror.Error{
			Message: "this HTTP method is not allowed for the endpoint you called",
		})
	})
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, logger zerolog.Logger) zerolog.Logger {
			return logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	if len(cfg.CORSAllowOrigins) > 0 {
		log.Debug().Strs("CORS Allowed Origins", cfg.CORSAllowOrigins).Msg("Router")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSAllowOrigins,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	metrics := newHTTPMetrics()
	if err := metrics.register(); err != nil {
		return nil, nil, fmt.Errorf("could not register metrics with Prometheus: %w", err)
	}
	r.Use(metrics.middleware())

	// Route printing clutters logs and test logs
	gin.DebugPrintRouteFunc = func(_, _, _ string, _ int) {}

	// No client IPs are processed, no proxy needs to be trusted
	_ = r.SetTrustedProxies([]string{})

	log.Debug().Str("API Base URL", cfg.APIURL.String()).Str("Host", cfg.APIURL.Host).Str("Path", cfg.APIURL.Path).Msg("Router")
	log.Info().Str("version", buildVersion).Msg("Router")

	api.SwaggerInfo.Host = cfg.APIURL.Host
	api.SwaggerInfo.BasePath = cfg.APIURL.Path
	api.SwaggerInfo.Title = "FinSight"
	api.SwaggerInfo.Version = buildVersion
	api.SwaggerInfo.Description = "The backend for FinSight, tracking income and expenses and allocating income to budget categories."

	return r, metrics.unregister, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
func AttachRoutes(cfg config.Config, co v1.Controller, group *gin.RouterGroup) {
	root.RegisterRoutes(group.Group(""))
	version.RegisterRoutes(group.Group("/version"), buildVersion)
	healthz.RegisterRoutes(group.Group("/healthz"), co.DB)

	if cfg.EnablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))

	co.RegisterRoutes(group.Group("/v1"))
}

// Addr returns the listen address for the configured port.
func Addr(cfg config.Config) string {
	return ":" + strconv.Itoa(cfg.Port)
}
