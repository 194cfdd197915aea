package notification

import (
	"context"

	"salonbooking/internal/domain"
	"salonbooking/internal/pkg/jwt"
)

// AppointmentLookup loads an appointment with its customer, service, stylist and business.
type AppointmentLookup interface {
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)
}

type TokenValidator interface {
	ValidateToken(token string) (*jwt.Claims, error)
}

// Broadcaster pushes a stored notification to live subscribers.
type Broadcaster interface {
	Publish(n *domain.Notification)
}

type Metrics interface {
	NotificationChannel(channel, outcome string)
}

type nopMetrics struct{}

func (nopMetrics) NotificationChannel(_, _ string) {}
