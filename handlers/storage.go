package handlers

import (
	"net/http"

	"swiftdrop/services/booking"
	"swiftdrop/services/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// maxPhotoBytes caps rubbish photo uploads at 8MB.
const maxPhotoBytes = 8 << 20

// StorageHandler accepts rubbish photos, pushes them to object storage and
// records the resulting URL on the wizard draft.
type StorageHandler struct {
	Storage storage.StorageService
	Service booking.WizardSessionService
	Logger  *zap.Logger
}

func NewStorageHandler(store storage.StorageService, service booking.WizardSessionService, logger *zap.Logger) *StorageHandler {
	return &StorageHandler{Storage: store, Service: service, Logger: logger}
}

// UploadRubbishPhoto stores a multipart image and attaches its URL to the
// session's rubbish removal draft.
func (h *StorageHandler) UploadRubbishPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing photo file"})
		return
	}
	if fileHeader.Size > maxPhotoBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "photo exceeds 8MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable photo file"})
		return
	}
	defer file.Close()

	url, err := h.Storage.UploadImage(c.Request.Context(), file, "rubbish_photos")
	if err != nil {
		h.Logger.Error("photo upload failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to store photo"})
		return
	}

	session, err := h.Service.AddRubbishPhoto(c.Request.Context(), c.Param("sessionID"), url)
	if err != nil {
		respondWizardError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session": session, "url": url})
}
