package main

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"travel/src/models"
	"travel/src/storage"
	"travel/src/types"
)

func userHandlers(g *gin.RouterGroup, s *server) *gin.RouterGroup {
	g.
		POST("/users", func(ctx *gin.Context) {
			var body types.CreateUserRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				validationError(ctx, "Invalid user data", err)
				return
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
			if err != nil {
				serverError(ctx, "Users", "Failed to create user", err)
				return
			}
			user, err := s.store.CreateUser(ctx, models.User{
				Username:  strings.TrimSpace(body.Username),
				Email:     strings.ToLower(strings.TrimSpace(body.Email)),
				Password:  string(hash),
				FirstName: body.FirstName,
				LastName:  body.LastName,
				Phone:     body.Phone,
			})
			if errors.Is(err, storage.ErrDuplicateUsername) || errors.Is(err, storage.ErrDuplicateEmail) {
				errorMessage(ctx, http.StatusConflict, err.Error())
				return
			}
			if err != nil {
				serverError(ctx, "Users", "Failed to create user", err)
				return
			}
			ctx.JSON(http.StatusCreated, user)
		}).
		GET("/users/:id", func(ctx *gin.Context) {
			var params types.SimpleRequestParams
			if err := ctx.ShouldBindUri(&params); err != nil {
				validationError(ctx, "Invalid user id", err)
				return
			}
			user, err := s.store.GetUser(ctx, params.ID)
			if errors.Is(err, storage.ErrNotFound) {
				errorMessage(ctx, http.StatusNotFound, "User not found")
				return
			}
			if err != nil {
				serverError(ctx, "Users", "Failed to fetch user", err)
				return
			}
			ctx.JSON(http.StatusOK, user)
		})
	return g
}
