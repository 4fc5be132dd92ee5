package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"

	"travel/src/catalog"
	"travel/src/config"
	"travel/src/lib"
	"travel/src/models"
	"travel/src/pricing"
	"travel/src/storage"
	"travel/src/types"
	"travel/src/utils"
)

// lookupPackage answers 404 or 500 itself and returns nil in those cases.
func lookupPackage(ctx *gin.Context, s *server, id string) *models.PackageWithDestination {
	pkg, err := s.store.GetPackage(ctx, id)
	if errors.Is(err, storage.ErrNotFound) {
		errorMessage(ctx, http.StatusNotFound, "Package not found")
		return nil
	}
	if err != nil {
		serverError(ctx, "Packages", "Failed to fetch package", err)
		return nil
	}
	return pkg
}

func quoteResponse(packageID string, b pricing.Breakdown) types.APIResponseQuote {
	return types.APIResponseQuote{
		PackageID:  packageID,
		BasePrice:  b.BasePrice,
		GuestCount: b.GuestCount,
		Subtotal:   b.Subtotal,
		Insurance:  b.Insurance,
		Taxes:      b.Taxes,
		Total:      b.Total,
	}
}

func packageHandlers(g *gin.RouterGroup, s *server) *gin.RouterGroup {
	g.
		GET("/packages", func(ctx *gin.Context) {
			var filter catalog.PackageFilter
			if err := ctx.ShouldBindQuery(&filter); err != nil {
				validationError(ctx, "Invalid package filters", err)
				return
			}
			pkgs, err := s.store.GetPackages(ctx, filter)
			if err != nil {
				serverError(ctx, "Packages", "Failed to fetch packages", err)
				return
			}
			ctx.JSON(http.StatusOK, pkgs)
		}).
		GET("/packages/featured", func(ctx *gin.Context) {
			pkgs, err := lib.Remember(ctx, s.cache, lib.FEATURED_PACKAGES_KEY, func(c context.Context) ([]models.PackageWithDestination, error) {
				return s.store.GetFeaturedPackages(c)
			})
			if err != nil {
				serverError(ctx, "Packages", "Failed to fetch featured packages", err)
				return
			}
			ctx.JSON(http.StatusOK, pkgs)
		}).
		GET("/packages/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				validationError(ctx, "Invalid package id", err)
				return
			}
			pkg := lookupPackage(ctx, s, params.ID)
			if pkg == nil {
				return
			}
			ctx.JSON(http.StatusOK, pkg)
		}).
		GET("/packages/:id/quote", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				validationError(ctx, "Invalid package id", err)
				return
			}
			var query types.QuoteQueryParams
			if err := ctx.ShouldBindQuery(&query); err != nil {
				validationError(ctx, "Invalid quote parameters", err)
				return
			}
			pkg := lookupPackage(ctx, s, params.ID)
			if pkg == nil {
				return
			}
			guests := query.Guests
			if guests == 0 {
				guests = 1
			}
			b := pricing.Quote(pkg.Price, guests, pricing.Options{
				Insurance: types.BoolOr(query.Insurance, true),
				Tax:       types.BoolOr(query.Tax, true),
			})
			ctx.JSON(http.StatusOK, quoteResponse(pkg.ID, b))
		}).
		GET("/packages/:id/share", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				validationError(ctx, "Invalid package id", err)
				return
			}
			pkg := lookupPackage(ctx, s, params.ID)
			if pkg == nil {
				return
			}
			ctx.JSON(http.StatusOK, types.APIResponseShare{
				URL:  utils.ShareURL(config.SITE_URL, pkg.ID),
				Text: utils.ShareText(pkg.Title, pkg.Price),
				Slug: slug.Make(pkg.Title),
			})
		})
	return g
}
