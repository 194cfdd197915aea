package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"salonbooking/internal/domain"
	"salonbooking/internal/pkg/apperr"
)

type ListFilter struct {
	Status    domain.AppointmentStatus
	StylistID string
	Range     DateRange
	Page      int
	Limit     int
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Service").
		Preload("Stylist").
		Preload("Business")
}

// Create inserts a pending appointment and returns it with its relations loaded.
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	a.Status = domain.AppointmentPending
	if err := r.db.WithContext(ctx).Omit("Customer", "Service", "Stylist", "Business").Create(a).Error; err != nil {
		return nil, apperr.Storage("create appointment", err)
	}
	return r.GetByID(ctx, a.ID)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	var a domain.Appointment
	err := r.joined(ctx).Where("id = ?", id).First(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(msgNotFound)
	}
	if err != nil {
		return nil, apperr.Storage("fetch appointment", err)
	}
	return &a, nil
}

// List returns one page of a business's appointments ordered by date, plus
// the total number of rows matching the filter.
func (r *Repository) List(ctx context.Context, businessID string, f ListFilter) ([]domain.Appointment, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&domain.Appointment{}).
		Where("business_id = ?", businessID)

	if f.Status != "" {
		query = query.Where("status = ?", f.Status)
	}
	if f.StylistID != "" {
		query = query.Where("stylist_id = ?", f.StylistID)
	}
	if f.Range.From != nil {
		query = query.Where("appointment_date >= ?", *f.Range.From)
	}
	if f.Range.To != nil {
		query = query.Where("appointment_date <= ?", *f.Range.To)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, apperr.Storage("fetch appointments", err)
	}

	page, limit := normalizePage(f.Page, f.Limit)
	items := make([]domain.Appointment, 0, limit)
	err := query.
		Preload("Customer").
		Preload("Service").
		Preload("Stylist").
		Order("appointment_date ASC").
		Order("id ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&items).Error
	if err != nil {
		return nil, 0, apperr.Storage("fetch appointments", err)
	}
	return items, total, nil
}

// UpdateStatus moves the appointment from one status to another only if it is
// still in the expected status. stylistID, when set, is written in the same
// statement; a pointer to "" clears the assignment.
func (r *Repository) UpdateStatus(ctx context.Context, id string, from, to domain.AppointmentStatus, stylistID *string) error {
	updates := map[string]any{
		"status":     to,
		"updated_at": time.Now().UTC(),
	}
	if stylistID != nil {
		updates["stylist_id"] = nullable(*stylistID)
	}

	res := r.db.WithContext(ctx).
		Model(&domain.Appointment{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	if res.Error != nil {
		return apperr.Storage("update appointment", res.Error)
	}
	if res.RowsAffected == 0 {
		return r.missingOrConflict(ctx, id)
	}
	return nil
}

func (r *Repository) UpdateStylist(ctx context.Context, id string, stylistID string) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Appointment{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"stylist_id": nullable(stylistID),
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return apperr.Storage("update appointment", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(msgNotFound)
	}
	return nil
}

// Delete removes the row. Deleting a missing id is not an error.
func (r *Repository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&domain.Appointment{}).Error
	return apperr.Storage("delete appointment", err)
}

func (r *Repository) missingOrConflict(ctx context.Context, id string) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Appointment{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return apperr.Storage("fetch appointment", err)
	}
	if count == 0 {
		return apperr.NotFound(msgNotFound)
	}
	return apperr.Conflict(msgConcurrentUpdate)
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
