package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travel/src/catalog"
	"travel/src/config"
)

func catalogHandlers(g *gin.RouterGroup, _ *server) *gin.RouterGroup {
	g.GET("/catalog/options", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, catalog.CatalogOptions())
	})
	return g
}

func healthHandlers(g *gin.RouterGroup, s *server) *gin.RouterGroup {
	g.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"env":      config.API_ENV,
			"storage":  config.STORAGE_DRIVER,
			"cache":    s.cache != nil,
			"notifier": s.notifier != nil,
			"time":     time.Now().UTC().Format(time.RFC3339),
		})
	})
	return g
}
