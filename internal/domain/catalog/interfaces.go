package catalog

import (
	"context"

	"salonbooking/internal/domain"
)

// BusinessReader resolves the owning business before catalog writes.
type BusinessReader interface {
	GetByID(ctx context.Context, id string) (*domain.Business, error)
}
