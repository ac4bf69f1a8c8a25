package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/chrisdev-ui/million-luxury-real-estate/internal/property/usecase"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// APIResponse is the envelope every endpoint answers with.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeSuccess(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, APIResponse{Success: true, Message: message, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string, errs ...string) {
	writeJSON(w, status, APIResponse{Success: false, Message: message, Errors: errs})
}

// Monetary request fields are json.Number so exact decimal text reaches
// ParseDecimal128 without a float64 detour.

type createPropertyRequest struct {
	Name         string      `json:"name"`
	Address      string      `json:"address"`
	Price        json.Number `json:"price"`
	CodeInternal string      `json:"codeInternal"`
	Year         int         `json:"year"`
	IDOwner      string      `json:"idOwner"`
	Enabled      *bool       `json:"enabled"`
}

func (r *createPropertyRequest) toInput() (usecase.CreatePropertyInput, error) {
	var input usecase.CreatePropertyInput
	if r.Name == "" {
		return input, fmt.Errorf("name is required")
	}
	if r.Address == "" {
		return input, fmt.Errorf("address is required")
	}
	if r.Price == "" {
		return input, fmt.Errorf("price is required")
	}
	price, err := parseDecimal(r.Price)
	if err != nil {
		return input, err
	}

	input = usecase.CreatePropertyInput{
		Name:         r.Name,
		Address:      r.Address,
		Price:        price,
		CodeInternal: r.CodeInternal,
		Year:         r.Year,
		IDOwner:      r.IDOwner,
		Enabled:      r.Enabled,
	}
	return input, nil
}

type updatePropertyRequest struct {
	Name         *string      `json:"name"`
	Address      *string      `json:"address"`
	Price        *json.Number `json:"price"`
	CodeInternal *string      `json:"codeInternal"`
	Year         *int         `json:"year"`
	IDOwner      *string      `json:"idOwner"`
	Enabled      *bool        `json:"enabled"`
}

func (r *updatePropertyRequest) toInput(id string) (usecase.UpdatePropertyInput, error) {
	input := usecase.UpdatePropertyInput{
		ID:           id,
		Name:         r.Name,
		Address:      r.Address,
		CodeInternal: r.CodeInternal,
		Year:         r.Year,
		IDOwner:      r.IDOwner,
		Enabled:      r.Enabled,
	}
	if r.Price != nil {
		price, err := parseDecimal(*r.Price)
		if err != nil {
			return input, err
		}
		input.Price = &price
	}
	return input, nil
}

type createOwnerRequest struct {
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Photo    string    `json:"photo"`
	Birthday time.Time `json:"birthday"`
}

func (r *createOwnerRequest) toInput() (usecase.CreateOwnerInput, error) {
	if r.Name == "" {
		return usecase.CreateOwnerInput{}, fmt.Errorf("name is required")
	}
	return usecase.CreateOwnerInput{
		Name:     r.Name,
		Address:  r.Address,
		Photo:    r.Photo,
		Birthday: r.Birthday,
	}, nil
}

type updateOwnerRequest struct {
	Name     *string    `json:"name"`
	Address  *string    `json:"address"`
	Photo    *string    `json:"photo"`
	Birthday *time.Time `json:"birthday"`
}

type addImageRequest struct {
	File    string `json:"file"`
	Enabled *bool  `json:"enabled"`
}

type patchImageRequest struct {
	Enabled *bool `json:"enabled"`
}

type addTraceRequest struct {
	DateSale time.Time   `json:"dateSale"`
	Name     string      `json:"name"`
	Value    json.Number `json:"value"`
	Tax      json.Number `json:"tax"`
}

func (r *addTraceRequest) toInput(propertyID string) (usecase.AddTraceInput, error) {
	var input usecase.AddTraceInput
	if r.Name == "" {
		return input, fmt.Errorf("name is required")
	}
	if r.Value == "" {
		return input, fmt.Errorf("value is required")
	}
	value, err := parseDecimal(r.Value)
	if err != nil {
		return input, err
	}
	tax := primitive.NewDecimal128(0, 0)
	if r.Tax != "" {
		tax, err = parseDecimal(r.Tax)
		if err != nil {
			return input, err
		}
	}
	return usecase.AddTraceInput{
		PropertyID: propertyID,
		DateSale:   r.DateSale,
		Name:       r.Name,
		Value:      value,
		Tax:        tax,
	}, nil
}

func parseDecimal(n json.Number) (primitive.Decimal128, error) {
	d, err := primitive.ParseDecimal128(n.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("invalid decimal value '%s'", n.String())
	}
	return d, nil
}
