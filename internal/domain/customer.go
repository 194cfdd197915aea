package domain

import "time"

type Customer struct {
	ID           string    `gorm:"column:id;primaryKey" json:"id"`
	BusinessID   string    `gorm:"column:business_id" json:"business_id"`
	Name         string    `gorm:"column:name" json:"name"`
	Email        string    `gorm:"column:email" json:"email"`
	Phone        string    `gorm:"column:phone" json:"phone"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }

// HasPassword reports whether the customer registered an account, as opposed
// to being created implicitly by a booking.
func (c *Customer) HasPassword() bool {
	return c.PasswordHash != ""
}
