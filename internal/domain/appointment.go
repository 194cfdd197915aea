package domain

import "time"

type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentConfirmed AppointmentStatus = "confirmed"
	AppointmentCancelled AppointmentStatus = "cancelled"
	AppointmentCompleted AppointmentStatus = "completed"
)

var appointmentStatuses = map[AppointmentStatus]struct{}{
	AppointmentPending:   {},
	AppointmentConfirmed: {},
	AppointmentCancelled: {},
	AppointmentCompleted: {},
}

// ParseAppointmentStatus accepts only the four known statuses.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	st := AppointmentStatus(s)
	_, ok := appointmentStatuses[st]
	return st, ok
}

func (s AppointmentStatus) Terminal() bool {
	return s == AppointmentCancelled || s == AppointmentCompleted
}

// Appointment is the booking aggregate. The preloaded relations are exposed
// under the plural keys the dashboard reads (customers, services, ...).
type Appointment struct {
	ID              string            `gorm:"column:id;primaryKey" json:"id"`
	BusinessID      string            `gorm:"column:business_id" json:"business_id"`
	CustomerID      string            `gorm:"column:customer_id" json:"customer_id"`
	ServiceID       string            `gorm:"column:service_id" json:"service_id"`
	ServiceName     string            `gorm:"column:service" json:"service"`
	StylistID       *string           `gorm:"column:stylist_id" json:"stylist_id"`
	AppointmentDate time.Time         `gorm:"column:appointment_date" json:"appointment_date"`
	Notes           string            `gorm:"column:notes" json:"notes"`
	Status          AppointmentStatus `gorm:"column:status" json:"status"`
	CreatedAt       time.Time         `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"column:updated_at" json:"updated_at"`

	Customer *Customer     `gorm:"foreignKey:CustomerID" json:"customers,omitempty"`
	Service  *SalonService `gorm:"foreignKey:ServiceID" json:"services,omitempty"`
	Stylist  *Stylist      `gorm:"foreignKey:StylistID" json:"stylists,omitempty"`
	Business *Business     `gorm:"foreignKey:BusinessID" json:"businesses,omitempty"`
}

func (Appointment) TableName() string { return "appointments" }

// DisplayServiceName prefers the joined service row over the denormalized copy.
func (a *Appointment) DisplayServiceName() string {
	if a.Service != nil && a.Service.Name != "" {
		return a.Service.Name
	}
	return a.ServiceName
}
