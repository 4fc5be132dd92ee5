package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travel/src/models"
	"travel/src/types"
	"travel/src/utils"
)

func reviewHandlers(g *gin.RouterGroup, s *server) *gin.RouterGroup {
	g.
		GET("/packages/:id/reviews", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				validationError(ctx, "Invalid package id", err)
				return
			}
			reviews, err := s.store.GetReviews(ctx, params.ID)
			if err != nil {
				serverError(ctx, "Reviews", "Failed to fetch reviews", err)
				return
			}
			ctx.JSON(http.StatusOK, reviews)
		}).
		GET("/packages/:id/reviews/summary", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				validationError(ctx, "Invalid package id", err)
				return
			}
			reviews, err := s.store.GetReviews(ctx, params.ID)
			if err != nil {
				serverError(ctx, "Reviews", "Failed to fetch reviews", err)
				return
			}
			ctx.JSON(http.StatusOK, types.APIResponseReviewSummary{
				PackageID:     params.ID,
				AverageRating: utils.AverageRating(reviews),
				TotalReviews:  len(reviews),
			})
		}).
		POST("/packages/:id/reviews", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				validationError(ctx, "Invalid review data", err)
				return
			}
			var body types.CreateReviewRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				validationError(ctx, "Invalid review data", err)
				return
			}
			review, err := s.store.CreateReview(ctx, models.Review{
				UserID:    body.UserID,
				PackageID: params.ID,
				Rating:    body.Rating,
				Title:     body.Title,
				Comment:   body.Comment,
			})
			if err != nil {
				serverError(ctx, "Reviews", "Failed to create review", err)
				return
			}
			ctx.JSON(http.StatusCreated, review)
		})
	return g
}
