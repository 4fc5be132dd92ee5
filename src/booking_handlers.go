package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travel/src/common"
	"travel/src/lib"
	"travel/src/models"
	"travel/src/pricing"
	"travel/src/storage"
	"travel/src/types"
	"travel/src/utils"
)

// lookupBooking answers 404 or 500 itself and returns nil in those cases.
func lookupBooking(ctx *gin.Context, s *server) *models.Booking {
	var params types.SimpleRequestParams
	if err := ctx.ShouldBindUri(&params); err != nil {
		validationError(ctx, "Invalid booking id", err)
		return nil
	}
	booking, err := s.store.GetBooking(ctx, params.ID)
	if errors.Is(err, storage.ErrNotFound) {
		errorMessage(ctx, http.StatusNotFound, "Booking not found")
		return nil
	}
	if err != nil {
		serverError(ctx, "Bookings", "Failed to fetch booking", err)
		return nil
	}
	return booking
}

func bookingHandlers(g *gin.RouterGroup, s *server) *gin.RouterGroup {
	g.
		GET("/bookings", func(ctx *gin.Context) {
			var filters types.BookingsQueryFilters
			if err := ctx.ShouldBindQuery(&filters); err != nil {
				validationError(ctx, "Invalid booking filters", err)
				return
			}
			bookings, err := s.store.GetBookings(ctx, filters.UserID)
			if err != nil {
				serverError(ctx, "Bookings", "Failed to fetch bookings", err)
				return
			}
			ctx.JSON(http.StatusOK, bookings)
		}).
		POST("/bookings", func(ctx *gin.Context) {
			var body types.CreateBookingRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				validationError(ctx, "Invalid booking data", err)
				return
			}
			departure, err := types.ParseDepartureDate(body.DepartureDate)
			if err != nil {
				validationError(ctx, "Invalid booking data", err)
				return
			}
			total, err := pricing.ParseBase(body.TotalPrice.String())
			if err != nil {
				validationError(ctx, "Invalid booking data", err)
				return
			}
			booking, err := s.store.CreateBooking(ctx, models.Booking{
				UserID:          body.UserID,
				PackageID:       body.PackageID,
				GuestCount:      body.GuestCount,
				DepartureDate:   departure,
				TotalPrice:      models.Decimal(total),
				SpecialRequests: body.SpecialRequests,
				PaymentMethod:   body.PaymentMethod,
			})
			if err != nil {
				serverError(ctx, "Bookings", "Failed to create booking", err)
				return
			}
			go common.NotifyBookingCreated(s.store, s.notifier, *booking)
			ctx.JSON(http.StatusCreated, booking)
		}).
		POST("/bookings/quote", func(ctx *gin.Context) {
			var body types.CreateQuoteRequestBody
			if err := ctx.ShouldBindJSON(&body); err != nil {
				validationError(ctx, "Invalid quote data", err)
				return
			}
			pkg := lookupPackage(ctx, s, body.PackageID)
			if pkg == nil {
				return
			}
			b := pricing.Quote(pkg.Price, body.GuestCount, pricing.Options{
				Insurance: types.BoolOr(body.Insurance, true),
				Tax:       types.BoolOr(body.Tax, true),
			})
			ctx.JSON(http.StatusOK, quoteResponse(pkg.ID, b))
		}).
		GET("/bookings/:id", func(ctx *gin.Context) {
			booking := lookupBooking(ctx, s)
			if booking == nil {
				return
			}
			ctx.JSON(http.StatusOK, booking)
		}).
		GET("/bookings/:id/details", func(ctx *gin.Context) {
			booking := lookupBooking(ctx, s)
			if booking == nil {
				return
			}
			now := time.Now()
			details := models.BookingDetails{
				Booking:            *booking,
				TimelineStatus:     utils.BookingStatusFor(booking.DepartureDate, now),
				DaysUntilDeparture: utils.DaysUntilDeparture(booking.DepartureDate, now),
			}
			pkg, err := s.store.GetPackage(ctx, booking.PackageID)
			switch {
			case err == nil:
				details.Package = &pkg.Package
			case !errors.Is(err, storage.ErrNotFound):
				serverError(ctx, "Bookings", "Failed to fetch booking details", err)
				return
			}
			user, err := s.store.GetUser(ctx, booking.UserID)
			switch {
			case err == nil:
				details.User = user
			case !errors.Is(err, storage.ErrNotFound):
				serverError(ctx, "Bookings", "Failed to fetch booking details", err)
				return
			}
			ctx.JSON(http.StatusOK, details)
		}).
		GET("/bookings/:id/qrcode", func(ctx *gin.Context) {
			booking := lookupBooking(ctx, s)
			if booking == nil {
				return
			}
			img, err := lib.BookingQRCode(booking.ID, booking.PackageID)
			if err != nil {
				serverError(ctx, "Bookings", "Failed to generate QR code", err)
				return
			}
			ctx.Data(http.StatusOK, "image/jpeg", img)
		})
	return g
}
