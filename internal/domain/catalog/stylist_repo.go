package catalog

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"salonbooking/internal/domain"
	"salonbooking/internal/pkg/apperr"
)

type StylistRepository struct {
	db *gorm.DB
}

func NewStylistRepository(db *gorm.DB) *StylistRepository {
	return &StylistRepository{db: db}
}

func (r *StylistRepository) Create(ctx context.Context, s *domain.Stylist) error {
	return apperr.Storage("create stylist", r.db.WithContext(ctx).Create(s).Error)
}

func (r *StylistRepository) GetByID(ctx context.Context, id string) (*domain.Stylist, error) {
	var s domain.Stylist
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(msgStylistNotFound)
	}
	if err != nil {
		return nil, apperr.Storage("fetch stylist", err)
	}
	return &s, nil
}

func (r *StylistRepository) ListByBusiness(ctx context.Context, businessID string) ([]domain.Stylist, error) {
	stylists := make([]domain.Stylist, 0)
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("name ASC").
		Find(&stylists).Error
	if err != nil {
		return nil, apperr.Storage("fetch stylists", err)
	}
	return stylists, nil
}

func (r *StylistRepository) Update(ctx context.Context, id string, updates map[string]any) error {
	updates["updated_at"] = time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&domain.Stylist{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return apperr.Storage("update stylist", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(msgStylistNotFound)
	}
	return nil
}

func (r *StylistRepository) Delete(ctx context.Context, id string) error {
	return apperr.Storage("delete stylist", r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Stylist{}).Error)
}
