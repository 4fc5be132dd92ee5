package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travel/src/catalog"
	"travel/src/lib"
	"travel/src/models"
	"travel/src/storage"
	"travel/src/types"
)

func destinationHandlers(g *gin.RouterGroup, s *server) *gin.RouterGroup {
	g.
		GET("/destinations", func(ctx *gin.Context) {
			var filter catalog.DestinationFilter
			if err := ctx.ShouldBindQuery(&filter); err != nil {
				validationError(ctx, "Invalid destination filters", err)
				return
			}
			dests, err := s.store.GetDestinations(ctx, filter)
			if err != nil {
				serverError(ctx, "Destinations", "Failed to fetch destinations", err)
				return
			}
			ctx.JSON(http.StatusOK, catalog.DetailDestinations(dests))
		}).
		GET("/destinations/featured", func(ctx *gin.Context) {
			dests, err := lib.Remember(ctx, s.cache, lib.FEATURED_DESTINATIONS_KEY, func(c context.Context) ([]models.Destination, error) {
				return s.store.GetFeaturedDestinations(c)
			})
			if err != nil {
				serverError(ctx, "Destinations", "Failed to fetch featured destinations", err)
				return
			}
			ctx.JSON(http.StatusOK, catalog.DetailDestinations(dests))
		}).
		GET("/destinations/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				validationError(ctx, "Invalid destination id", err)
				return
			}
			dest, err := s.store.GetDestination(ctx, params.ID)
			if errors.Is(err, storage.ErrNotFound) {
				errorMessage(ctx, http.StatusNotFound, "Destination not found")
				return
			}
			if err != nil {
				serverError(ctx, "Destinations", "Failed to fetch destination", err)
				return
			}
			ctx.JSON(http.StatusOK, catalog.DetailDestination(*dest))
		})
	return g
}
