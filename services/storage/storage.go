package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService stores customer-supplied images (rubbish photos) and
// returns their public URLs.
type StorageService interface {
	UploadImage(ctx context.Context, file io.Reader, folder string) (string, error)
	DeleteImage(ctx context.Context, publicID string) error
}

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryStorageService wraps an initialized Cloudinary client.
func NewCloudinaryStorageService(client *cloudinary.Cloudinary) *CloudinaryStorageService {
	return &CloudinaryStorageService{client: client}
}

// UploadImage uploads the file into the given folder and returns the secure
// delivery URL.
func (s *CloudinaryStorageService) UploadImage(ctx context.Context, file io.Reader, folder string) (string, error) {
	resp, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return resp.SecureURL, nil
}

// DeleteImage removes an uploaded image by its public id.
func (s *CloudinaryStorageService) DeleteImage(ctx context.Context, publicID string) error {
	if _, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}
