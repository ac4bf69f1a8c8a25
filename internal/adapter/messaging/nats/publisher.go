package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chrisdev-ui/million-luxury-real-estate/internal/config"
	"github.com/chrisdev-ui/million-luxury-real-estate/internal/property/domain"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const (
	PropertyCreatedSubject = "property.created"
	PropertyUpdatedSubject = "property.updated"
	PropertyDeletedSubject = "property.deleted"
)

type Publisher struct {
	nc     *nats.Conn
	logger *zap.Logger
}

type DeletedEventPayload struct {
	ID string `json:"id"`
}

func NewNATSPublisher(cfg *config.NATSConfig, logger *zap.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.Timeout(cfg.ConnectTimeout),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", zap.Error(err))
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	logger.Info("Successfully connected to NATS", zap.String("url", nc.ConnectedUrl()))

	return &Publisher{nc: nc, logger: logger}, nil
}

func (p *Publisher) PublishPropertyCreated(ctx context.Context, property *domain.Property) error {
	return p.publish(PropertyCreatedSubject, property.ID, property)
}

func (p *Publisher) PublishPropertyUpdated(ctx context.Context, property *domain.Property) error {
	return p.publish(PropertyUpdatedSubject, property.ID, property)
}

func (p *Publisher) PublishPropertyDeleted(ctx context.Context, propertyID string) error {
	return p.publish(PropertyDeletedSubject, propertyID, DeletedEventPayload{ID: propertyID})
}

func (p *Publisher) publish(subject, propertyID string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("Failed to marshal payload for NATS publishing",
			zap.Error(err),
			zap.String("property_id", propertyID),
			zap.String("subject", subject),
		)
		return fmt.Errorf("failed to marshal payload for %s: %w", subject, err)
	}

	if err := p.nc.Publish(subject, data); err != nil {
		p.logger.Error("Failed to publish NATS message",
			zap.String("subject", subject),
			zap.Error(err),
			zap.String("property_id", propertyID),
		)
		return fmt.Errorf("failed to publish NATS message for %s: %w", subject, err)
	}

	p.logger.Info("Published NATS message",
		zap.String("subject", subject),
		zap.String("property_id", propertyID),
	)
	return nil
}

func (p *Publisher) Close() {
	if p.nc != nil && !p.nc.IsClosed() {
		if err := p.nc.Drain(); err != nil {
			p.logger.Error("Error draining NATS connection", zap.Error(err))
		}
		p.nc.Close()
		p.logger.Info("NATS publisher connection closed")
	}
}
