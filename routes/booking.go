package routes

import (
	"swiftdrop/handlers"
	"swiftdrop/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.Use(middleware.AccountAuthMiddleware())

		bookingGroup.POST("/session", hb.Booking.InitiateSession)
		bookingGroup.GET("/session/:sessionID", hb.Booking.GetSession)
		bookingGroup.DELETE("/session/:sessionID", hb.Booking.CancelSession)

		bookingGroup.PUT("/session/:sessionID/service", hb.Booking.SelectService)
		bookingGroup.PATCH("/session/:sessionID/draft", hb.Booking.UpdateDraft)

		bookingGroup.POST("/session/:sessionID/stops", hb.Booking.AddStop)
		bookingGroup.PUT("/session/:sessionID/stops/:index", hb.Booking.UpdateStop)
		bookingGroup.DELETE("/session/:sessionID/stops/:index", hb.Booking.RemoveStop)

		bookingGroup.PUT("/session/:sessionID/containers", hb.Booking.SetContainerQuantity)

		bookingGroup.POST("/session/:sessionID/items", hb.Booking.AddEwasteItem)
		bookingGroup.DELETE("/session/:sessionID/items/:index", hb.Booking.RemoveEwasteItem)

		bookingGroup.POST("/session/:sessionID/photos", hb.Storage.UploadRubbishPhoto)

		bookingGroup.POST("/session/:sessionID/advance", hb.Booking.Advance)
		bookingGroup.POST("/session/:sessionID/retreat", hb.Booking.Retreat)
		bookingGroup.POST("/session/:sessionID/jump", hb.Booking.JumpTo)

		bookingGroup.GET("/session/:sessionID/estimate", hb.Booking.GetEstimate)
		bookingGroup.POST("/session/:sessionID/submit", hb.Booking.Submit)

		bookingGroup.GET("/bookings", hb.Booking.ListBookings)
		bookingGroup.GET("/bookings/:trackingID", hb.Booking.GetBooking)
	}
}
