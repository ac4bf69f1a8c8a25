package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/chrisdev-ui/million-luxury-real-estate/internal/property/domain"
	"github.com/chrisdev-ui/million-luxury-real-estate/internal/property/usecase"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// maxUploadSize bounds multipart image uploads.
const maxUploadSize = 10 << 20

type PropertyService interface {
	SearchProperties(ctx context.Context, filter domain.PropertyFilter, includeImages bool) (*domain.PagedResult[*domain.Property], error)
	GetProperty(ctx context.Context, id string, opts usecase.HydrateOptions) (*domain.Property, error)
	CreateProperty(ctx context.Context, input usecase.CreatePropertyInput) (*domain.Property, error)
	UpdateProperty(ctx context.Context, input usecase.UpdatePropertyInput) (*domain.Property, error)
	DeleteProperty(ctx context.Context, id string) (bool, error)
}

type ImageService interface {
	AddImage(ctx context.Context, input usecase.AddImageInput) (*domain.PropertyImage, error)
	UploadImage(ctx context.Context, propertyID, fileName string, data []byte) (*domain.PropertyImage, error)
	ListImages(ctx context.Context, propertyID string, enabledOnly bool) ([]*domain.PropertyImage, error)
	SetImageEnabled(ctx context.Context, id string, enabled bool) (*domain.PropertyImage, error)
	DeleteImage(ctx context.Context, id string) (bool, error)
}

type TraceService interface {
	AddTrace(ctx context.Context, input usecase.AddTraceInput) (*domain.PropertyTrace, error)
	ListTraces(ctx context.Context, propertyID string) ([]*domain.PropertyTrace, error)
}

type PropertyHandler struct {
	properties PropertyService
	images     ImageService
	traces     TraceService
	logger     *zap.Logger
}

func NewPropertyHandler(ps PropertyService, is ImageService, ts TraceService, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{properties: ps, images: is, traces: ts, logger: logger}
}

// HandleSearch answers GET /api/properties. Unparseable numeric/boolean
// parameters are rejected before they reach the store; blank parameters are
// treated as absent.
func (h *PropertyHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	filter, includeImages, err := parseSearchQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	result, err := h.properties.SearchProperties(r.Context(), filter, includeImages)
	if err != nil {
		h.logger.Error("Failed to search properties", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching properties")
		return
	}

	writeSuccess(w, http.StatusOK, "Properties retrieved successfully", result)
}

func parseSearchQuery(r *http.Request) (domain.PropertyFilter, bool, error) {
	q := r.URL.Query()
	filter := domain.PropertyFilter{
		Name:         q.Get("name"),
		Address:      q.Get("address"),
		IDOwner:      q.Get("idOwner"),
		CodeInternal: q.Get("codeInternal"),
		SortBy:       q.Get("sortBy"),
	}

	var err error
	if filter.MinPrice, err = decimalParam(q.Get("minPrice"), "minPrice"); err != nil {
		return filter, false, err
	}
	if filter.MaxPrice, err = decimalParam(q.Get("maxPrice"), "maxPrice"); err != nil {
		return filter, false, err
	}
	if filter.Year, err = intParam(q.Get("year"), "year"); err != nil {
		return filter, false, err
	}

	// Listings are public-only unless the caller asks otherwise.
	enabled := true
	filter.Enabled = &enabled
	if raw := q.Get("enabled"); raw != "" {
		val, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			return filter, false, errors.New("invalid boolean value for 'enabled'")
		}
		filter.Enabled = &val
	}

	if raw := q.Get("sortDescending"); raw != "" {
		val, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			return filter, false, errors.New("invalid boolean value for 'sortDescending'")
		}
		filter.SortDescending = val
	}

	if page, err := intParam(q.Get("pageNumber"), "pageNumber"); err != nil {
		return filter, false, err
	} else if page != nil {
		filter.Page = *page
	}
	if size, err := intParam(q.Get("pageSize"), "pageSize"); err != nil {
		return filter, false, err
	} else if size != nil {
		filter.PageSize = *size
	}

	includeImages := true
	if raw := q.Get("includeImages"); raw != "" {
		val, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			return filter, false, errors.New("invalid boolean value for 'includeImages'")
		}
		includeImages = val
	}

	return filter, includeImages, nil
}

func decimalParam(raw, name string) (*primitive.Decimal128, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := primitive.ParseDecimal128(raw)
	if err != nil {
		return nil, errors.New("invalid decimal value for '" + name + "'")
	}
	return &d, nil
}

func intParam(raw, name string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.New("invalid integer value for '" + name + "'")
	}
	return &v, nil
}

// HandleGetByID answers GET /api/properties/{id}. Related data is hydrated
// by default; each include flag can be switched off per request.
func (h *PropertyHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	q := r.URL.Query()

	opts := usecase.HydrateOptions{Owner: true, Images: true, Traces: true}
	for name, target := range map[string]*bool{
		"includeOwner":  &opts.Owner,
		"includeImages": &opts.Images,
		"includeTraces": &opts.Traces,
	} {
		if raw := q.Get(name); raw != "" {
			val, err := strconv.ParseBool(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid query parameters", "invalid boolean value for '"+name+"'")
				return
			}
			*target = val
		}
	}

	property, err := h.properties.GetProperty(r.Context(), id, opts)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			writeError(w, http.StatusNotFound, "Property not found")
			return
		}
		h.logger.Error("Failed to get property", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching the property")
		return
	}

	writeSuccess(w, http.StatusOK, "Property retrieved successfully", property)
}

func (h *PropertyHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createPropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	input, err := req.toInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	property, err := h.properties.CreateProperty(r.Context(), input)
	if err != nil {
		h.logger.Error("Failed to create property", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "An error occurred while creating the property")
		return
	}

	writeSuccess(w, http.StatusCreated, "Property created successfully", property)
}

func (h *PropertyHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req updatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	input, err := req.toInput(id)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	property, err := h.properties.UpdateProperty(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			writeError(w, http.StatusNotFound, "Property not found")
			return
		}
		h.logger.Error("Failed to update property", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "An error occurred while updating the property")
		return
	}

	writeSuccess(w, http.StatusOK, "Property updated successfully", property)
}

func (h *PropertyHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.properties.DeleteProperty(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to delete property", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "An error occurred while deleting the property")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Property not found")
		return
	}

	writeSuccess(w, http.StatusOK, "Property deleted successfully", nil)
}

func (h *PropertyHandler) HandleListImages(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	images, err := h.images.ListImages(r.Context(), id, true)
	if err != nil {
		h.logger.Error("Failed to list property images", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching property images")
		return
	}

	writeSuccess(w, http.StatusOK, "Property images retrieved successfully", images)
}

func (h *PropertyHandler) HandleAddImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req addImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.File == "" {
		writeError(w, http.StatusBadRequest, "Invalid request body", "file is required")
		return
	}

	image, err := h.images.AddImage(r.Context(), usecase.AddImageInput{
		PropertyID: id,
		File:       req.File,
		Enabled:    req.Enabled,
	})
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			writeError(w, http.StatusNotFound, "Property not found")
			return
		}
		h.logger.Error("Failed to add property image", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "An error occurred while adding the property image")
		return
	}

	writeSuccess(w, http.StatusCreated, "Property image added successfully", image)
}

func (h *PropertyHandler) HandleUploadImage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form", err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Missing 'file' form field", err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read uploaded file", err.Error())
		return
	}

	image, err := h.images.UploadImage(r.Context(), id, header.Filename, data)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			writeError(w, http.StatusNotFound, "Property not found")
			return
		}
		h.logger.Error("Failed to upload property image", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "An error occurred while uploading the property image")
		return
	}

	writeSuccess(w, http.StatusCreated, "Property image uploaded successfully", image)
}

func (h *PropertyHandler) HandlePatchImage(w http.ResponseWriter, r *http.Request) {
	imageID := chi.URLParam(r, "imageID")

	var req patchImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if req.Enabled == nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", "enabled is required")
		return
	}

	image, err := h.images.SetImageEnabled(r.Context(), imageID, *req.Enabled)
	if err != nil {
		if errors.Is(err, domain.ErrImageNotFound) {
			writeError(w, http.StatusNotFound, "Property image not found")
			return
		}
		h.logger.Error("Failed to patch property image", zap.String("image_id", imageID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "An error occurred while updating the property image")
		return
	}

	writeSuccess(w, http.StatusOK, "Property image updated successfully", image)
}

func (h *PropertyHandler) HandleDeleteImage(w http.ResponseWriter, r *http.Request) {
	imageID := chi.URLParam(r, "imageID")

	deleted, err := h.images.DeleteImage(r.Context(), imageID)
	if err != nil {
		h.logger.Error("Failed to delete property image", zap.String("image_id", imageID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "An error occurred while deleting the property image")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Property image not found")
		return
	}

	writeSuccess(w, http.StatusOK, "Property image deleted successfully", nil)
}

func (h *PropertyHandler) HandleListTraces(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	traces, err := h.traces.ListTraces(r.Context(), id)
	if err != nil {
		h.logger.Error("Failed to list property traces", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "An error occurred while fetching property traces")
		return
	}

	writeSuccess(w, http.StatusOK, "Property traces retrieved successfully", traces)
}

func (h *PropertyHandler) HandleAddTrace(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req addTraceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	input, err := req.toInput(id)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	trace, err := h.traces.AddTrace(r.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrPropertyNotFound) {
			writeError(w, http.StatusNotFound, "Property not found")
			return
		}
		h.logger.Error("Failed to add property trace", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "An error occurred while adding the property trace")
		return
	}

	writeSuccess(w, http.StatusCreated, "Property trace added successfully", trace)
}
