package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService hosts portfolio media files.
type StorageService interface {
	// UploadFile uploads a file into the given folder and returns its
	// permanent public identifier.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes a hosted file by its public identifier.
	DeleteFile(ctx context.Context, publicID string) error
	// GetDownloadURL returns the public URL for a hosted file.
	GetDownloadURL(resourceType, publicID string) (string, error)
}

// StorageServiceImpl is the Cloudinary-backed implementation.
type StorageServiceImpl struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}
