package auth

import (
	"context"

	"salonbooking/internal/domain"
	"salonbooking/internal/domain/business"
)

type BusinessStore interface {
	Register(ctx context.Context, req business.RegisterRequest) (*domain.Business, []domain.SalonService, error)
	FindByEmail(ctx context.Context, email string) (*domain.Business, error)
	GetByID(ctx context.Context, id string) (*domain.Business, error)
}

type CustomerStore interface {
	FindByEmail(ctx context.Context, businessID, email string) (*domain.Customer, error)
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Create(ctx context.Context, c *domain.Customer) error
	SetCredentials(ctx context.Context, id, name, phone, passwordHash string) error
}

type TokenIssuer interface {
	GenerateToken(userID, userType, businessID string) (string, error)
}
