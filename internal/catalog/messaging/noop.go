package messaging

import (
	"context"

	"product-catalog/internal/catalog"
)

// NoopPublisher stands in when no broker is configured, keeping the catalog
// API free of a RabbitMQ dependency.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, catalog.ProductEvent) error {
	return nil
}
