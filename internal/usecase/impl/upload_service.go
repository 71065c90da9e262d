package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "kolotebe/internal/delivery/context"
	domainerrors "kolotebe/internal/domain/errors"
	"kolotebe/internal/domain/service"
	"kolotebe/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// uploadFolder groups all user-submitted images under one object prefix.
const uploadFolder = "images"

// uploadService implements the UploadUsecase interface.
type uploadService struct {
	storage service.ObjectStorage
	logger  *slog.Logger
}

// UploadServiceParams holds dependencies for uploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Storage service.ObjectStorage
	Logger  *slog.Logger
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	return &uploadService{
		storage: params.Storage,
		logger:  params.Logger,
	}
}

func (srv *uploadService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadImage validates that the file is an image and stores it in object
// storage.
func (srv *uploadService) UploadImage(ctx context.Context, input *usecase.UploadImageInput) (*usecase.UploadImageOutput, error) {
	if input.Content == nil || input.Size == 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("file is required")
	}
	if !strings.HasPrefix(input.ContentType, "image/") {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("only image uploads are allowed")
	}

	key, url, err := srv.storage.Upload(ctx, uploadFolder, input.FileName, input.ContentType, input.Content, input.Size)
	if err != nil {
		srv.log(ctx).Error("Failed to upload image", slog.String("fileName", input.FileName), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUploadFailed, "failed to upload image")
	}

	srv.log(ctx).Debug("Image uploaded", slog.String("key", key))

	return &usecase.UploadImageOutput{Key: key, URL: url}, nil
}
