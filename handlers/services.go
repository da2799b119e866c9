package handlers

import (
	"net/http"

	"swiftdrop/services/booking"

	"github.com/gin-gonic/gin"
)

// GetAvailableServices lists the bookable service types in display order.
func GetAvailableServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": booking.AvailableServiceTypes()})
}

// GetContainerTypes lists the shred container catalog with unit prices.
func GetContainerTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"containers": booking.ListContainerTypes()})
}
