package business

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"salonbooking/internal/database"
	"salonbooking/internal/domain"
	"salonbooking/internal/pkg/apperr"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, b *domain.Business) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return apperr.Validation(msgEmailTaken)
		}
		return apperr.Storage("create business", err)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	var b domain.Business
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(msgNotFound)
	}
	if err != nil {
		return nil, apperr.Storage("fetch business", err)
	}
	return &b, nil
}

func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Business, error) {
	var b domain.Business
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(msgNotFound)
	}
	if err != nil {
		return nil, apperr.Storage("fetch business", err)
	}
	return &b, nil
}
