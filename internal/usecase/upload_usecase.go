package usecase

import (
	"context"
	"io"
)

// UploadImageInput defines the data required to store an uploaded image.
type UploadImageInput struct {
	FileName    string
	ContentType string
	Content     io.Reader
	Size        int64
}

// UploadImageOutput returns the stored object's key and public URL.
type UploadImageOutput struct {
	Key string
	URL string
}

// UploadUsecase defines the interface for file upload operations.
type UploadUsecase interface {
	// UploadImage validates that the file is an image and stores it in
	// object storage.
	UploadImage(ctx context.Context, input *UploadImageInput) (*UploadImageOutput, error)
}
