package impl

import (
	"bytes"
	"context"
	"testing"

	domainerrors "kolotebe/internal/domain/errors"
	mockSvc "kolotebe/internal/mocks/service"
	"kolotebe/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestUploadService(t *testing.T) (usecase.UploadUsecase, *mockSvc.MockObjectStorage) {
	storage := mockSvc.NewMockObjectStorage(t)

	service := NewUploadService(UploadServiceParams{
		Storage: storage,
		Logger:  newDiscardLogger(),
	})

	return service, storage
}

func TestUploadService_UploadImage_Success(t *testing.T) {
	service, storage := createTestUploadService(t)

	ctx := context.Background()
	content := bytes.NewReader([]byte("fake png bytes"))
	input := &usecase.UploadImageInput{
		FileName:    "cover.png",
		ContentType: "image/png",
		Content:     content,
		Size:        14,
	}

	storage.EXPECT().
		Upload(ctx, "images", input.FileName, input.ContentType, content, input.Size).
		Return("images/2026/08/abc.png", "https://cdn.example.com/kolotebe/images/2026/08/abc.png", nil)

	output, err := service.UploadImage(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "images/2026/08/abc.png", output.Key)
	assert.Equal(t, "https://cdn.example.com/kolotebe/images/2026/08/abc.png", output.URL)
}

func TestUploadService_UploadImage_MissingFile(t *testing.T) {
	service, _ := createTestUploadService(t)

	output, err := service.UploadImage(context.Background(), &usecase.UploadImageInput{
		FileName:    "cover.png",
		ContentType: "image/png",
	})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUploadService_UploadImage_RejectsNonImage(t *testing.T) {
	service, _ := createTestUploadService(t)

	output, err := service.UploadImage(context.Background(), &usecase.UploadImageInput{
		FileName:    "malware.exe",
		ContentType: "application/octet-stream",
		Content:     bytes.NewReader([]byte{0x4D, 0x5A}),
		Size:        2,
	})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUploadService_UploadImage_StorageFailure(t *testing.T) {
	service, storage := createTestUploadService(t)

	ctx := context.Background()
	content := bytes.NewReader([]byte("fake jpeg bytes"))
	input := &usecase.UploadImageInput{
		FileName:    "cover.jpg",
		ContentType: "image/jpeg",
		Content:     content,
		Size:        15,
	}

	storage.EXPECT().
		Upload(ctx, "images", input.FileName, input.ContentType, content, input.Size).
		Return("", "", errors.New("bucket unreachable"))

	output, err := service.UploadImage(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUploadFailed))
}
