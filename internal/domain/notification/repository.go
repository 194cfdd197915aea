package notification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonbooking/internal/domain"
	"salonbooking/internal/pkg/apperr"
)

const inboxLimit = 50

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, n *domain.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	return apperr.Storage("create notification", r.db.WithContext(ctx).Create(n).Error)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	var n domain.Notification
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(msgNotFound)
	}
	if err != nil {
		return nil, apperr.Storage("fetch notification", err)
	}
	return &n, nil
}

// ListForUser returns the newest notifications first, capped at inboxLimit.
func (r *Repository) ListForUser(ctx context.Context, userID string, userType domain.UserType) ([]domain.Notification, error) {
	items := make([]domain.Notification, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND user_type = ?", userID, userType).
		Order("created_at DESC").
		Order("id DESC").
		Limit(inboxLimit).
		Find(&items).Error
	if err != nil {
		return nil, apperr.Storage("fetch notifications", err)
	}
	return items, nil
}

func (r *Repository) UnreadCount(ctx context.Context, userID string, userType domain.UserType) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("user_id = ? AND user_type = ? AND is_read = ?", userID, userType, false).
		Count(&n).Error
	if err != nil {
		return 0, apperr.Storage("fetch notifications", err)
	}
	return n, nil
}

func (r *Repository) SetRead(ctx context.Context, id string, isRead bool) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_read": isRead, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return apperr.Storage("update notification", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound(msgNotFound)
	}
	return nil
}

func (r *Repository) MarkAllRead(ctx context.Context, userID string, userType domain.UserType) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("user_id = ? AND user_type = ? AND is_read = ?", userID, userType, false).
		Updates(map[string]any{"is_read": true, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return 0, apperr.Storage("update notifications", res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteReadOlderThan removes read notifications created before cutoff.
func (r *Repository) DeleteReadOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("is_read = ? AND created_at < ?", true, cutoff.UTC()).
		Delete(&domain.Notification{})
	if res.Error != nil {
		return 0, apperr.Storage("delete notifications", res.Error)
	}
	return res.RowsAffected, nil
}
