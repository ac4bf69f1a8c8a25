package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chrisdev-ui/million-luxury-real-estate/internal/property/domain"
	"go.uber.org/zap"
)

type OwnerUsecase struct {
	ownerRepo domain.OwnerRepository
	logger    *zap.Logger
}

func NewOwnerUsecase(or domain.OwnerRepository, log *zap.Logger) *OwnerUsecase {
	return &OwnerUsecase{ownerRepo: or, logger: log}
}

type CreateOwnerInput struct {
	Name     string
	Address  string
	Photo    string
	Birthday time.Time
}

func (uc *OwnerUsecase) CreateOwner(ctx context.Context, input CreateOwnerInput) (*domain.Owner, error) {
	now := time.Now().UTC()
	owner := &domain.Owner{
		Name:      input.Name,
		Address:   input.Address,
		Photo:     input.Photo,
		Birthday:  input.Birthday,
		CreatedAt: now,
		UpdatedAt: now,
	}

	createdID, err := uc.ownerRepo.Create(ctx, owner)
	if err != nil {
		uc.logger.Error("Failed to create owner in repository", zap.Error(err))
		return nil, fmt.Errorf("OwnerUsecase.CreateOwner: failed to create owner in repo: %w", err)
	}
	owner.ID = createdID
	return owner, nil
}

func (uc *OwnerUsecase) GetOwner(ctx context.Context, id string) (*domain.Owner, error) {
	owner, err := uc.ownerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrOwnerNotFound) {
			return nil, domain.ErrOwnerNotFound
		}
		uc.logger.Error("Failed to get owner by ID from repository", zap.Error(err), zap.String("owner_id", id))
		return nil, fmt.Errorf("OwnerUsecase.GetOwner: failed to get owner from repo: %w", err)
	}
	return owner, nil
}

// ListOwners returns every owning party sorted by name.
func (uc *OwnerUsecase) ListOwners(ctx context.Context) ([]*domain.Owner, error) {
	owners, err := uc.ownerRepo.List(ctx)
	if err != nil {
		uc.logger.Error("Failed to list owners from repository", zap.Error(err))
		return nil, fmt.Errorf("OwnerUsecase.ListOwners: failed to list owners from repo: %w", err)
	}
	return owners, nil
}

type UpdateOwnerInput struct {
	ID       string
	Name     *string
	Address  *string
	Photo    *string
	Birthday *time.Time
}

func (uc *OwnerUsecase) UpdateOwner(ctx context.Context, input UpdateOwnerInput) (*domain.Owner, error) {
	owner, err := uc.ownerRepo.GetByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domain.ErrOwnerNotFound) {
			return nil, domain.ErrOwnerNotFound
		}
		uc.logger.Error("Failed to get owner for update from repository", zap.Error(err), zap.String("owner_id", input.ID))
		return nil, fmt.Errorf("OwnerUsecase.UpdateOwner: failed to get owner for update: %w", err)
	}

	if input.Name != nil {
		owner.Name = *input.Name
	}
	if input.Address != nil {
		owner.Address = *input.Address
	}
	if input.Photo != nil {
		owner.Photo = *input.Photo
	}
	if input.Birthday != nil {
		owner.Birthday = *input.Birthday
	}

	owner.UpdatedAt = time.Now().UTC()

	if err := uc.ownerRepo.Replace(ctx, owner); err != nil {
		if errors.Is(err, domain.ErrOwnerNotFound) {
			return nil, domain.ErrOwnerNotFound
		}
		uc.logger.Error("Failed to replace owner in repository", zap.Error(err), zap.String("owner_id", owner.ID))
		return nil, fmt.Errorf("OwnerUsecase.UpdateOwner: failed to replace owner in repo: %w", err)
	}

	return owner, nil
}

// DeleteOwner removes the owner document only. Properties referencing the
// owner keep their dangling idOwner value; there is no cascade.
func (uc *OwnerUsecase) DeleteOwner(ctx context.Context, id string) (bool, error) {
	deleted, err := uc.ownerRepo.Delete(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to delete owner from repository", zap.Error(err), zap.String("owner_id", id))
		return false, fmt.Errorf("OwnerUsecase.DeleteOwner: failed to delete owner from repo: %w", err)
	}
	return deleted, nil
}
