package mongodb

import (
	"fmt"
	"time"

	"github.com/chrisdev-ui/million-luxury-real-estate/internal/property/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document types mirror the stored shape of each collection. Parent
// references (idOwner, idProperty) are kept as plain strings: the store does
// not enforce them and they must round-trip without numeric coercion.

type propertyDocument struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Name         string               `bson:"name"`
	Address      string               `bson:"address"`
	Price        primitive.Decimal128 `bson:"price"`
	CodeInternal string               `bson:"codeInternal"`
	Year         int                  `bson:"year"`
	IDOwner      string               `bson:"idOwner"`
	Enabled      bool                 `bson:"enabled"`
	CreatedAt    time.Time            `bson:"createdAt"`
	UpdatedAt    time.Time            `bson:"updatedAt"`
}

type ownerDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Address   string             `bson:"address"`
	Photo     string             `bson:"photo"`
	Birthday  time.Time          `bson:"birthday"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

type imageDocument struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	IDProperty string             `bson:"idProperty"`
	File       string             `bson:"file"`
	Enabled    bool               `bson:"enabled"`
	CreatedAt  time.Time          `bson:"createdAt"`
}

type traceDocument struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty"`
	IDProperty string               `bson:"idProperty"`
	DateSale   time.Time            `bson:"dateSale"`
	Name       string               `bson:"name"`
	Value      primitive.Decimal128 `bson:"value"`
	Tax        primitive.Decimal128 `bson:"tax"`
	CreatedAt  time.Time            `bson:"createdAt"`
}

func toPropertyDocument(p *domain.Property) (*propertyDocument, error) {
	doc := &propertyDocument{
		Name:         p.Name,
		Address:      p.Address,
		Price:        p.Price,
		CodeInternal: p.CodeInternal,
		Year:         p.Year,
		IDOwner:      p.IDOwner,
		Enabled:      p.Enabled,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
	if p.ID != "" {
		objID, err := primitive.ObjectIDFromHex(p.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid property ID format '%s': %w", p.ID, err)
		}
		doc.ID = objID
	}
	return doc, nil
}

func toDomainProperty(doc *propertyDocument) *domain.Property {
	return &domain.Property{
		ID:           doc.ID.Hex(),
		Name:         doc.Name,
		Address:      doc.Address,
		Price:        doc.Price,
		CodeInternal: doc.CodeInternal,
		Year:         doc.Year,
		IDOwner:      doc.IDOwner,
		Enabled:      doc.Enabled,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}

func toOwnerDocument(o *domain.Owner) (*ownerDocument, error) {
	doc := &ownerDocument{
		Name:      o.Name,
		Address:   o.Address,
		Photo:     o.Photo,
		Birthday:  o.Birthday,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
	if o.ID != "" {
		objID, err := primitive.ObjectIDFromHex(o.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid owner ID format '%s': %w", o.ID, err)
		}
		doc.ID = objID
	}
	return doc, nil
}

func toDomainOwner(doc *ownerDocument) *domain.Owner {
	return &domain.Owner{
		ID:        doc.ID.Hex(),
		Name:      doc.Name,
		Address:   doc.Address,
		Photo:     doc.Photo,
		Birthday:  doc.Birthday,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}

func toImageDocument(img *domain.PropertyImage) (*imageDocument, error) {
	doc := &imageDocument{
		IDProperty: img.IDProperty,
		File:       img.File,
		Enabled:    img.Enabled,
		CreatedAt:  img.CreatedAt,
	}
	if img.ID != "" {
		objID, err := primitive.ObjectIDFromHex(img.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid image ID format '%s': %w", img.ID, err)
		}
		doc.ID = objID
	}
	return doc, nil
}

func toDomainImage(doc *imageDocument) *domain.PropertyImage {
	return &domain.PropertyImage{
		ID:         doc.ID.Hex(),
		IDProperty: doc.IDProperty,
		File:       doc.File,
		Enabled:    doc.Enabled,
		CreatedAt:  doc.CreatedAt,
	}
}

func toTraceDocument(t *domain.PropertyTrace) (*traceDocument, error) {
	doc := &traceDocument{
		IDProperty: t.IDProperty,
		DateSale:   t.DateSale,
		Name:       t.Name,
		Value:      t.Value,
		Tax:        t.Tax,
		CreatedAt:  t.CreatedAt,
	}
	if t.ID != "" {
		objID, err := primitive.ObjectIDFromHex(t.ID)
		if err != nil {
			return nil, fmt.Errorf("invalid trace ID format '%s': %w", t.ID, err)
		}
		doc.ID = objID
	}
	return doc, nil
}

func toDomainTrace(doc *traceDocument) *domain.PropertyTrace {
	return &domain.PropertyTrace{
		ID:         doc.ID.Hex(),
		IDProperty: doc.IDProperty,
		DateSale:   doc.DateSale,
		Name:       doc.Name,
		Value:      doc.Value,
		Tax:        doc.Tax,
		CreatedAt:  doc.CreatedAt,
	}
}
