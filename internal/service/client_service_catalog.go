package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-exercism-backup/internal/store"
	"github.com/MKhiriev/go-exercism-backup/models"
)

type clientCatalogService struct {
	catalog store.CatalogRepository
}

// NewClientCatalogService constructs a ClientCatalogService reading catalog.
func NewClientCatalogService(catalog store.CatalogRepository) ClientCatalogService {
	return &clientCatalogService{catalog: catalog}
}

// List implements ClientCatalogService.
func (c *clientCatalogService) List(ctx context.Context, filter models.CatalogFilter) ([]models.CatalogEntry, error) {
	entries, err := c.catalog.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list backup catalog: %w", err)
	}
	return entries, nil
}
