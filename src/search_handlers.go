package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel/src/catalog"
	"travel/src/types"
)

func searchHandlers(g *gin.RouterGroup, s *server) *gin.RouterGroup {
	g.GET("/search", func(ctx *gin.Context) {
		var params types.SearchQueryParams
		if err := ctx.ShouldBindQuery(&params); err != nil {
			validationError(ctx, "Invalid search parameters", err)
			return
		}
		// TODO: apply destination and guests; only category narrows results today.
		pkgs, err := s.store.GetPackages(ctx, catalog.PackageFilter{Category: params.Category})
		if err != nil {
			serverError(ctx, "Search", "Failed to perform search", err)
			return
		}
		ctx.JSON(http.StatusOK, types.APIResponseSearch{
			Packages:     pkgs,
			TotalResults: len(pkgs),
			SearchParams: params,
		})
	})
	return g
}
