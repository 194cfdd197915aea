package business

import (
	"context"

	"salonbooking/internal/domain"
)

// ServiceCreator stores the services listed at registration time.
type ServiceCreator interface {
	CreateBatch(ctx context.Context, services []domain.SalonService) error
}
