package domain

import "time"

// SalonService is a bookable offering. Stored in the "services" table.
type SalonService struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	BusinessID  string    `gorm:"column:business_id" json:"business_id"`
	Name        string    `gorm:"column:name" json:"name"`
	Description string    `gorm:"column:description" json:"description"`
	Price       float64   `gorm:"column:price" json:"price"`
	Duration    int       `gorm:"column:duration" json:"duration"` // minutes
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (SalonService) TableName() string { return "services" }
