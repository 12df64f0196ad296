package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/suchimauz/clinic-appointments-gateway/internal/config"
	"github.com/suchimauz/clinic-appointments-gateway/internal/core/ports/out"
)

type Controller interface {
	RegisterRoutes(api *gin.RouterGroup)
}

func NewRouter(cfg *config.Config, logger out.LoggerPort, controllers ...Controller) (*gin.Engine, error) {
	if err := RegisterValidators(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(
		gin.Recovery(),
		RequestID(),
		AccessLog(logger),
		NewRateLimiter(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst).Middleware(),
	)

	router.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/health")
	})
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": cfg.App.Version,
		})
	})

	api := router.Group("/api/v1")
	api.Use(BasicAuth(cfg.Auth.BasicClients))
	for _, controller := range controllers {
		controller.RegisterRoutes(api)
	}

	return router, nil
}
