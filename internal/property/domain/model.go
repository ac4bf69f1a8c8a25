package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Property is a real-estate listing. Prices are stored as Decimal128 so
// monetary values never pass through binary floating point.
type Property struct {
	ID           string               `json:"idProperty"`
	Name         string               `json:"name"`
	Address      string               `json:"address"`
	Price        primitive.Decimal128 `json:"price"`
	CodeInternal string               `json:"codeInternal"`
	Year         int                  `json:"year"`
	IDOwner      string               `json:"idOwner"`
	Enabled      bool                 `json:"enabled"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`

	// Navigation fields. Nil until explicitly hydrated, never persisted
	// with the property document.
	Owner  *Owner           `json:"owner,omitempty"`
	Images []*PropertyImage `json:"images,omitempty"`
	Traces []*PropertyTrace `json:"traces,omitempty"`
}

// Owner has an independent lifecycle: deleting a property does not delete
// its owner, and deleting an owner does not cascade to properties.
type Owner struct {
	ID        string    `json:"idOwner"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Photo     string    `json:"photo"`
	Birthday  time.Time `json:"birthday"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PropertyImage references its parent property by id only; referential
// integrity is by convention, not enforced by the store.
type PropertyImage struct {
	ID         string    `json:"idPropertyImage"`
	IDProperty string    `json:"idProperty"`
	File       string    `json:"file"`
	Enabled    bool      `json:"enabled"`
	CreatedAt  time.Time `json:"createdAt"`
}

// PropertyTrace is one entry of a property's append-only sale ledger.
// Traces are only ever inserted, never updated or deleted.
type PropertyTrace struct {
	ID         string               `json:"idPropertyTrace"`
	IDProperty string               `json:"idProperty"`
	DateSale   time.Time            `json:"dateSale"`
	Name       string               `json:"name"`
	Value      primitive.Decimal128 `json:"value"`
	Tax        primitive.Decimal128 `json:"tax"`
	CreatedAt  time.Time            `json:"createdAt"`
}
