package customer

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
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

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Customer not found")
	}
	if err != nil {
		return nil, apperr.Storage("fetch customer", err)
	}
	return &c, nil
}

func (r *Repository) FindByEmail(ctx context.Context, businessID, email string) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.WithContext(ctx).
		Where("business_id = ? AND email = ?", businessID, normalizeEmail(email)).
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Customer not found")
	}
	if err != nil {
		return nil, apperr.Storage("fetch customer", err)
	}
	return &c, nil
}

// Upsert returns the customer keyed by (businessID, email), creating it when
// absent. A concurrent insert of the same key is resolved by re-reading the
// winner, so repeated calls always yield the same id.
func (r *Repository) Upsert(ctx context.Context, businessID, name, email, phone string) (*domain.Customer, error) {
	existing, err := r.FindByEmail(ctx, businessID, email)
	if err == nil {
		return existing, nil
	}
	if !apperr.IsNotFound(err) {
		return nil, err
	}

	now := time.Now().UTC()
	c := &domain.Customer{
		ID:         uuid.NewString(),
		BusinessID: businessID,
		Name:       strings.TrimSpace(name),
		Email:      normalizeEmail(email),
		Phone:      strings.TrimSpace(phone),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return r.FindByEmail(ctx, businessID, email)
		}
		return nil, apperr.Storage("create customer", err)
	}
	return c, nil
}

func (r *Repository) Create(ctx context.Context, c *domain.Customer) error {
	c.Email = normalizeEmail(c.Email)
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return apperr.Validation("Email already registered")
		}
		return apperr.Storage("create customer", err)
	}
	return nil
}

// SetCredentials attaches a password to a customer first created by a booking.
func (r *Repository) SetCredentials(ctx context.Context, id, name, phone, passwordHash string) error {
	updates := map[string]any{
		"password_hash": passwordHash,
		"updated_at":    time.Now().UTC(),
	}
	if name = strings.TrimSpace(name); name != "" {
		updates["name"] = name
	}
	if phone = strings.TrimSpace(phone); phone != "" {
		updates["phone"] = phone
	}
	err := r.db.WithContext(ctx).Model(&domain.Customer{}).Where("id = ?", id).Updates(updates).Error
	return apperr.Storage("update customer", err)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
