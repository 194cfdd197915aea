package appointment

import (
	"salonbooking/internal/domain"
	"salonbooking/internal/pkg/apperr"
)

// transitions lists the legal moves out of each non-terminal status.
var transitions = map[domain.AppointmentStatus][]domain.AppointmentStatus{
	domain.AppointmentPending:   {domain.AppointmentConfirmed, domain.AppointmentCancelled},
	domain.AppointmentConfirmed: {domain.AppointmentCompleted, domain.AppointmentCancelled},
}

func CanTransition(from, to domain.AppointmentStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func checkTransition(from, to domain.AppointmentStatus) error {
	if !CanTransition(from, to) {
		return apperr.Validationf("cannot change status from %s to %s", from, to)
	}
	return nil
}

// actionFor maps the status an appointment moved into onto the notification it triggers.
func actionFor(to domain.AppointmentStatus) (domain.NotificationAction, bool) {
	return domain.ParseNotificationAction(string(to))
}
