package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chrisdev-ui/million-luxury-real-estate/internal/property/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// TraceUsecase appends to and reads the sale ledger. The ledger is
// append-only: no update or delete operation exists.
type TraceUsecase struct {
	traceRepo    domain.TraceRepository
	propertyRepo domain.PropertyRepository
	logger       *zap.Logger
}

func NewTraceUsecase(tr domain.TraceRepository, pr domain.PropertyRepository, log *zap.Logger) *TraceUsecase {
	return &TraceUsecase{traceRepo: tr, propertyRepo: pr, logger: log}
}

type AddTraceInput struct {
	PropertyID string
	DateSale   time.Time
	Name       string
	Value      primitive.Decimal128
	Tax        primitive.Decimal128
}

func (uc *TraceUsecase) AddTrace(ctx context.Context, input AddTraceInput) (*domain.PropertyTrace, error) {
	if _, err := uc.propertyRepo.GetByID(ctx, input.PropertyID); err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("TraceUsecase.AddTrace: failed to resolve parent property: %w", err)
	}

	trace := &domain.PropertyTrace{
		IDProperty: input.PropertyID,
		DateSale:   input.DateSale,
		Name:       input.Name,
		Value:      input.Value,
		Tax:        input.Tax,
		CreatedAt:  time.Now().UTC(),
	}

	createdID, err := uc.traceRepo.Add(ctx, trace)
	if err != nil {
		uc.logger.Error("Failed to add property trace in repository", zap.Error(err), zap.String("property_id", input.PropertyID))
		return nil, fmt.Errorf("TraceUsecase.AddTrace: failed to add trace in repo: %w", err)
	}
	trace.ID = createdID
	return trace, nil
}

func (uc *TraceUsecase) ListTraces(ctx context.Context, propertyID string) ([]*domain.PropertyTrace, error) {
	traces, err := uc.traceRepo.ListByProperty(ctx, propertyID)
	if err != nil {
		uc.logger.Error("Failed to list property traces from repository", zap.Error(err), zap.String("property_id", propertyID))
		return nil, fmt.Errorf("TraceUsecase.ListTraces: failed to list traces from repo: %w", err)
	}
	return traces, nil
}
