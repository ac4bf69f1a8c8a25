package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/chrisdev-ui/million-luxury-real-estate/internal/property/domain"
	"github.com/chrisdev-ui/million-luxury-real-estate/internal/property/usecase"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type OwnerService interface {
	CreateOwner(ctx context.Context, input usecase.CreateOwnerInput) (*domain.Owner, error)
	GetOwner(ctx context.Context, id string) (*domain.Owner, error)
	ListOwners(ctx context.Context) ([]*domain.Owner, error)
	UpdateOwner(ctx context.Context, input usecase.UpdateOwnerInput) (*domain.Owner, error)
	DeleteOwner(ctx context.Context, id string) (bool, error)
}

type OwnerHandler struct {
	owners OwnerService
	logger *zap.Logger
}

func NewOwnerHandler(os OwnerService, logger *zap.Logger) *OwnerHandler {
	return &OwnerHandler{owners: os, logger: logger}
}

func (h *OwnerHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	owners, err := h.owners.ListOwners(r.Context())
	if err != nil {
		h.logger.Error("Failed to list owners", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching owners")
		return
	}

	writeSuccess(w, http.StatusOK, "Owners retrieved successfully", owners)
}

func (h *OwnerHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	owner, err := h.owners.GetOwner(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrOwnerNotFound) {
			writeError(w, http.StatusNotFound, "Owner not found")
			return
		}
		h.logger.Error("Failed to get owner", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching the owner")
		return
	}

	writeSuccess(w, http.StatusOK, "Owner retrieved successfully", owner)
}

func (h *OwnerHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createOwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	input, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	owner, err := h.owners.CreateOwner(r.Context(), input)
	if err != nil {
		h.logger.Error("Failed to create owner", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "An error occurred while creating the owner")
		return
	}

	writeSuccess(w, http.StatusCreated, "Owner created successfully", owner)
}

func (h *OwnerHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updateOwnerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	owner, err := h.owners.UpdateOwner(r.Context(), usecase.UpdateOwnerInput{
		ID:       id,
		Name:     req.Name,
		Address:  req.Address,
		Photo:    req.Photo,
		Birthday: req.Birthday,
	})
	if err != nil {
		if errors.Is(err, domain.ErrOwnerNotFound) {
			writeError(w, http.StatusNotFound, "Owner not found")
			return
		}
		h.logger.Error("Failed to update owner", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "An error occurred while updating the owner")
		return
	}

	writeSuccess(w, http.StatusOK, "Owner updated successfully", owner)
}

func (h *OwnerHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.owners.DeleteOwner(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to delete owner", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "An error occurred while deleting the owner")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Owner not found")
		return
	}

	writeSuccess(w, http.StatusOK, "Owner deleted successfully", nil)
}
