package catalog

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"salonbooking/internal/domain"
	"salonbooking/internal/pkg/apperr"
)

type ServiceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, s *domain.SalonService) error {
	return apperr.Storage("create service", r.db.WithContext(ctx).Create(s).Error)
}

// CreateBatch inserts several services in one statement.
func (r *ServiceRepository) CreateBatch(ctx context.Context, services []domain.SalonService) error {
	if len(services) == 0 {
		return nil
	}
	return apperr.Storage("create services", r.db.WithContext(ctx).Create(&services).Error)
}

func (r *ServiceRepository) GetByID(ctx context.Context, id string) (*domain.SalonService, error) {
	var s domain.SalonService
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(msgServiceNotFound)
	}
	if err != nil {
		return nil, apperr.Storage("fetch service", err)
	}
	return &s, nil
}

func (r *ServiceRepository) ListByBusiness(ctx context.Context, businessID string) ([]domain.SalonService, error) {
	services := make([]domain.SalonService, 0)
	err := r.db.WithContext(ctx).
		Where("business_id = ?", businessID).
		Order("name ASC").
		Find(&services).Error
	if err != nil {
		return nil, apperr.Storage("fetch services", err)
	}
	return services, nil
}

func (r *ServiceRepository) Update(ctx context.Context, id string, updates map[string]any) error {
	updates["updated_at"] = time.Now().UTC()
	res := r.db.WithContext(ctx).Model(&domain.SalonService{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return apperr.Storage("update service", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(msgServiceNotFound)
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
	return apperr.Storage("delete service", r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.SalonService{}).Error)
}
