package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"travel/src/types"
)

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "decimal":
		return fmt.Sprintf("%s must be a non-negative decimal", fe.Field())
	case "departuredate":
		return fmt.Sprintf("%s must be a date (YYYY-MM-DD) or RFC 3339 timestamp", fe.Field())
	default:
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}

// fieldErrors flattens a binding error into the "errors" list of a 400 body.
func fieldErrors(err error) []types.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []types.FieldError{{Message: err.Error()}}
	}
	out := make([]types.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, types.FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Param:   fe.Param(),
			Message: fieldMessage(fe),
		})
	}
	return out
}

func validationError(ctx *gin.Context, message string, err error) {
	log.Printf("[Validation] %s: %s\n", message, err.Error())
	ctx.JSON(http.StatusBadRequest, gin.H{"message": message, "errors": fieldErrors(err)})
}

func errorMessage(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, gin.H{"message": message})
}

// serverError logs err under area and answers 500 with message.
func serverError(ctx *gin.Context, area, message string, err error) {
	log.Printf("[%s] %s: %s\n", area, message, err.Error())
	errorMessage(ctx, http.StatusInternalServerError, message)
}
