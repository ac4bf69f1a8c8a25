package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chrisdev-ui/million-luxury-real-estate/internal/property/domain"
	"go.uber.org/zap"
)

// ImageUsecase manages a property's gallery. File uploads go through the
// configured FileStorage; a nil storage disables the upload path but not
// URL-based image registration.
type ImageUsecase struct {
	imageRepo    domain.ImageRepository
	propertyRepo domain.PropertyRepository
	storage      FileStorage
	logger       *zap.Logger
}

func NewImageUsecase(ir domain.ImageRepository, pr domain.PropertyRepository, storage FileStorage, log *zap.Logger) *ImageUsecase {
	return &ImageUsecase{
		imageRepo:    ir,
		propertyRepo: pr,
		storage:      storage,
		logger:       log,
	}
}

type AddImageInput struct {
	PropertyID string
	File       string
	Enabled    *bool
}

// AddImage registers an image URL against an existing property. The parent
// must resolve; the reference itself is stored as a plain string.
func (uc *ImageUsecase) AddImage(ctx context.Context, input AddImageInput) (*domain.PropertyImage, error) {
	if _, err := uc.propertyRepo.GetByID(ctx, input.PropertyID); err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("ImageUsecase.AddImage: failed to resolve parent property: %w", err)
	}

	enabled := true
	if input.Enabled != nil {
		enabled = *input.Enabled
	}

	image := &domain.PropertyImage{
		IDProperty: input.PropertyID,
		File:       input.File,
		Enabled:    enabled,
		CreatedAt:  time.Now().UTC(),
	}

	createdID, err := uc.imageRepo.Add(ctx, image)
	if err != nil {
		uc.logger.Error("Failed to add property image in repository", zap.Error(err), zap.String("property_id", input.PropertyID))
		return nil, fmt.Errorf("ImageUsecase.AddImage: failed to add image in repo: %w", err)
	}
	image.ID = createdID
	return image, nil
}

// UploadImage stores the raw file in object storage and registers the
// resulting URL as an enabled gallery image.
func (uc *ImageUsecase) UploadImage(ctx context.Context, propertyID, fileName string, data []byte) (*domain.PropertyImage, error) {
	if uc.storage == nil {
		return nil, fmt.Errorf("ImageUsecase.UploadImage: no file storage configured")
	}

	if _, err := uc.propertyRepo.GetByID(ctx, propertyID); err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("ImageUsecase.UploadImage: failed to resolve parent property: %w", err)
	}

	fileURL, err := uc.storage.Upload(ctx, fileName, data)
	if err != nil {
		uc.logger.Error("Failed to upload image file to storage",
			zap.Error(err),
			zap.String("property_id", propertyID),
			zap.String("file_name", fileName),
		)
		return nil, fmt.Errorf("ImageUsecase.UploadImage: failed to upload file: %w", err)
	}

	image := &domain.PropertyImage{
		IDProperty: propertyID,
		File:       fileURL,
		Enabled:    true,
		CreatedAt:  time.Now().UTC(),
	}

	createdID, err := uc.imageRepo.Add(ctx, image)
	if err != nil {
		uc.logger.Error("Failed to add uploaded image in repository", zap.Error(err), zap.String("property_id", propertyID))
		return nil, fmt.Errorf("ImageUsecase.UploadImage: failed to add image in repo: %w", err)
	}
	image.ID = createdID
	return image, nil
}

func (uc *ImageUsecase) ListImages(ctx context.Context, propertyID string, enabledOnly bool) ([]*domain.PropertyImage, error) {
	images, err := uc.imageRepo.ListByProperty(ctx, propertyID, enabledOnly)
	if err != nil {
		uc.logger.Error("Failed to list property images from repository", zap.Error(err), zap.String("property_id", propertyID))
		return nil, fmt.Errorf("ImageUsecase.ListImages: failed to list images from repo: %w", err)
	}
	return images, nil
}

// SetImageEnabled flips an image's visibility flag.
func (uc *ImageUsecase) SetImageEnabled(ctx context.Context, id string, enabled bool) (*domain.PropertyImage, error) {
	image, err := uc.imageRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrImageNotFound) {
			return nil, domain.ErrImageNotFound
		}
		return nil, fmt.Errorf("ImageUsecase.SetImageEnabled: failed to get image from repo: %w", err)
	}

	image.Enabled = enabled
	if err := uc.imageRepo.Replace(ctx, image); err != nil {
		if errors.Is(err, domain.ErrImageNotFound) {
			return nil, domain.ErrImageNotFound
		}
		uc.logger.Error("Failed to replace property image in repository", zap.Error(err), zap.String("image_id", id))
		return nil, fmt.Errorf("ImageUsecase.SetImageEnabled: failed to replace image in repo: %w", err)
	}
	return image, nil
}

func (uc *ImageUsecase) DeleteImage(ctx context.Context, id string) (bool, error) {
	deleted, err := uc.imageRepo.Delete(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to delete property image from repository", zap.Error(err), zap.String("image_id", id))
		return false, fmt.Errorf("ImageUsecase.DeleteImage: failed to delete image from repo: %w", err)
	}
	return deleted, nil
}
