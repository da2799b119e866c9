package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"swiftdrop/database/repository"
	"swiftdrop/middleware"
	"swiftdrop/models"
	"swiftdrop/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking wizard over HTTP.
type BookingHandler struct {
	Service booking.WizardSessionService
	Repo    repository.BookingRepository
	Logger  *zap.Logger
}

func NewBookingHandler(service booking.WizardSessionService, repo repository.BookingRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Repo: repo, Logger: logger}
}

// respondWizardError maps engine errors onto HTTP statuses. Validation
// failures carry the full field list so the client can highlight everything
// at once.
func respondWizardError(c *gin.Context, err error) {
	var fieldErrs booking.FieldErrors
	if errors.As(err, &fieldErrs) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": fieldErrs,
		})
		return
	}

	var wizErr *booking.WizardError
	if errors.As(err, &wizErr) {
		status := http.StatusBadRequest
		switch wizErr {
		case booking.ErrSessionNotFound:
			status = http.StatusNotFound
		case booking.ErrSubmissionInProgress:
			status = http.StatusConflict
		case booking.ErrSubmissionTimedOut:
			status = http.StatusGatewayTimeout
		case booking.ErrSubmissionFailed, booking.ErrDistanceUnavailable:
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": wizErr.Message, "code": wizErr.Code})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func accountID(c *gin.Context) string {
	return c.GetString(middleware.AccountContextKey)
}

// InitiateSession starts a new wizard session for the acting account.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	session, err := h.Service.InitiateSession(c.Request.Context(), accountID(c))
	if err != nil {
		h.Logger.Error("failed to initiate wizard session", zap.Error(err))
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session":  session,
		"services": booking.AvailableServiceTypes(),
	})
}

// GetSession returns the current wizard state.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SelectService picks the service type for the session.
func (h *BookingHandler) SelectService(c *gin.Context) {
	var input struct {
		ServiceType models.ServiceTypeID `json:"serviceType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Service.SelectService(c.Request.Context(), c.Param("sessionID"), input.ServiceType)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	steps, _ := booking.Steps(input.ServiceType)
	c.JSON(http.StatusOK, gin.H{"session": session, "steps": steps})
}

// UpdateDraft merges a batch of dotted-path field updates into the draft.
func (h *BookingHandler) UpdateDraft(c *gin.Context) {
	var input struct {
		Updates []booking.FieldUpdate `json:"updates" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Service.UpdateFields(c.Request.Context(), c.Param("sessionID"), input.Updates)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// AddStop appends an empty additional stop to a multi-stop draft.
func (h *BookingHandler) AddStop(c *gin.Context) {
	session, err := h.Service.AddStop(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// UpdateStop replaces one additional stop.
func (h *BookingHandler) UpdateStop(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stop index"})
		return
	}
	var loc models.LocationDetails
	if err := c.ShouldBindJSON(&loc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Service.UpdateStop(c.Request.Context(), c.Param("sessionID"), index, loc)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// RemoveStop deletes one additional stop.
func (h *BookingHandler) RemoveStop(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid stop index"})
		return
	}
	session, err := h.Service.RemoveStop(c.Request.Context(), c.Param("sessionID"), index)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// SetContainerQuantity sets the ordered quantity of one shred container type.
func (h *BookingHandler) SetContainerQuantity(c *gin.Context) {
	var input struct {
		ContainerID string `json:"containerId" binding:"required"`
		Quantity    int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Service.SetContainerQuantity(c.Request.Context(), c.Param("sessionID"), input.ContainerID, input.Quantity)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// AddEwasteItem appends an item line to an e-waste draft.
func (h *BookingHandler) AddEwasteItem(c *gin.Context) {
	var input struct {
		Type     string `json:"type" binding:"required"`
		Quantity int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Service.AddEwasteItem(c.Request.Context(), c.Param("sessionID"), input.Type, input.Quantity)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// RemoveEwasteItem deletes one item line.
func (h *BookingHandler) RemoveEwasteItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item index"})
		return
	}
	session, err := h.Service.RemoveEwasteItem(c.Request.Context(), c.Param("sessionID"), index)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Advance moves the wizard one step forward.
func (h *BookingHandler) Advance(c *gin.Context) {
	session, err := h.Service.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// Retreat moves one step back, or backs out of the wizard from step 0.
func (h *BookingHandler) Retreat(c *gin.Context) {
	session, err := h.Service.Retreat(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// JumpTo revisits an already-completed step.
func (h *BookingHandler) JumpTo(c *gin.Context) {
	var input struct {
		Index int `json:"index"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.Service.JumpTo(c.Request.Context(), c.Param("sessionID"), input.Index)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session})
}

// GetEstimate quotes the current draft.
func (h *BookingHandler) GetEstimate(c *gin.Context) {
	estimate, err := h.Service.Estimate(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"estimate": estimate})
}

// Submit finalizes the draft into a booking.
func (h *BookingHandler) Submit(c *gin.Context) {
	confirmation, err := h.Service.Submit(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"confirmation": confirmation})
}

// GetBooking fetches one finalized booking by tracking id. A booking owned
// by another account is reported as not found rather than forbidden.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bk, err := h.Repo.GetByTrackingID(c.Request.Context(), c.Param("trackingID"))
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
			return
		}
		h.Logger.Error("failed to fetch booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if bk.AccountID != accountID(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": bk})
}

// ListBookings returns the acting account's bookings, newest first.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Repo.ListByAccount(c.Request.Context(), accountID(c))
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelSession discards the session and its draft.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Request.Context(), c.Param("sessionID")); err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
