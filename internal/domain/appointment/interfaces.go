package appointment

import (
	"context"

	"salonbooking/internal/domain"
)

type BusinessReader interface {
	GetByID(ctx context.Context, id string) (*domain.Business, error)
}

type CustomerDirectory interface {
	GetByID(ctx context.Context, id string) (*domain.Customer, error)
	Upsert(ctx context.Context, businessID, name, email, phone string) (*domain.Customer, error)
}

type ServiceReader interface {
	GetByID(ctx context.Context, id string) (*domain.SalonService, error)
}

type StylistReader interface {
	GetByID(ctx context.Context, id string) (*domain.Stylist, error)
}

// Dispatcher delivers lifecycle notifications. It never fails: every channel
// outcome is reported in the returned DispatchReport.
type Dispatcher interface {
	Dispatch(ctx context.Context, a *domain.Appointment, action domain.NotificationAction) domain.DispatchReport
}

type Metrics interface {
	AppointmentCreated()
	AppointmentTransitioned(from, to domain.AppointmentStatus)
}

type nopMetrics struct{}

func (nopMetrics) AppointmentCreated()                                    {}
func (nopMetrics) AppointmentTransitioned(_, _ domain.AppointmentStatus) {}
