package domain

import "time"

type Stylist struct {
	ID             string    `gorm:"column:id;primaryKey" json:"id"`
	BusinessID     string    `gorm:"column:business_id" json:"business_id"`
	Name           string    `gorm:"column:name" json:"name"`
	Email          string    `gorm:"column:email" json:"email"`
	Phone          string    `gorm:"column:phone" json:"phone"`
	Specialization string    `gorm:"column:specialization" json:"specialization"`
	Bio            string    `gorm:"column:bio" json:"bio"`
	ImageURL       string    `gorm:"column:image_url" json:"image_url"`
	IsActive       bool      `gorm:"column:is_active" json:"is_active"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Stylist) TableName() string { return "stylists" }
