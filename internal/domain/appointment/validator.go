package appointment

import (
	"context"
	"strings"
	"time"

	"salonbooking/internal/pkg/apperr"
	"salonbooking/internal/pkg/validator"
)

// ValidatedBooking is a booking whose references all resolve within one business.
type ValidatedBooking struct {
	BusinessID      string
	CustomerID      string
	ServiceID       string
	ServiceName     string
	StylistID       *string
	AppointmentDate time.Time
	Notes           string
}

// BookingValidator checks referential integrity before an appointment is written.
// Every check runs before the customer upsert, so a rejected booking leaves no rows behind.
type BookingValidator struct {
	businesses BusinessReader
	customers  CustomerDirectory
	services   ServiceReader
	stylists   StylistReader
	loc        *time.Location
}

func NewBookingValidator(
	businesses BusinessReader,
	customers CustomerDirectory,
	services ServiceReader,
	stylists StylistReader,
	loc *time.Location,
) *BookingValidator {
	if loc == nil {
		loc = time.UTC
	}
	return &BookingValidator{
		businesses: businesses,
		customers:  customers,
		services:   services,
		stylists:   stylists,
		loc:        loc,
	}
}

func (v *BookingValidator) Validate(ctx context.Context, req CreateRequest) (*ValidatedBooking, error) {
	businessID := strings.TrimSpace(req.BusinessID)
	serviceID := strings.TrimSpace(req.ServiceID)
	if businessID == "" || serviceID == "" || strings.TrimSpace(req.AppointmentDate) == "" {
		return nil, apperr.Validation(msgRequiredFields)
	}
	date, err := parseAppointmentDate(req.AppointmentDate, v.loc)
	if err != nil {
		return nil, err
	}

	if err := v.checkBusiness(ctx, businessID); err != nil {
		return nil, err
	}

	var customerID string
	var inline *InlineCustomer
	switch ref := req.Customer.(type) {
	case CustomerByID:
		c, err := v.customers.GetByID(ctx, string(ref))
		if err != nil {
			return nil, notFoundAs(err, msgInvalidCustomer)
		}
		if c.BusinessID != businessID {
			return nil, apperr.Validation(msgInvalidCustomer)
		}
		customerID = c.ID
	case InlineCustomer:
		ref.Name = strings.TrimSpace(ref.Name)
		ref.Email = strings.TrimSpace(ref.Email)
		if ref.Name == "" || ref.Email == "" {
			return nil, apperr.Validation(msgCustomerRequired)
		}
		if !validator.IsEmail(ref.Email) {
			return nil, apperr.Validation(msgInvalidEmail)
		}
		inline = &ref
	default:
		return nil, apperr.Validation(msgCustomerRequired)
	}

	svc, err := v.services.GetByID(ctx, serviceID)
	if err != nil {
		return nil, notFoundAs(err, msgInvalidService)
	}
	if svc.BusinessID != businessID {
		return nil, apperr.Validation(msgInvalidService)
	}

	var stylistID *string
	if id := strings.TrimSpace(req.StylistID); id != "" {
		if err := v.CheckStylist(ctx, businessID, id); err != nil {
			return nil, err
		}
		stylistID = &id
	}

	if inline != nil {
		c, err := v.customers.Upsert(ctx, businessID, inline.Name, inline.Email, inline.Phone)
		if err != nil {
			return nil, err
		}
		customerID = c.ID
	}

	return &ValidatedBooking{
		BusinessID:      businessID,
		CustomerID:      customerID,
		ServiceID:       svc.ID,
		ServiceName:     svc.Name,
		StylistID:       stylistID,
		AppointmentDate: date,
		Notes:           strings.TrimSpace(req.Notes),
	}, nil
}

// CheckStylist verifies the stylist exists and works for the business.
func (v *BookingValidator) CheckStylist(ctx context.Context, businessID, stylistID string) error {
	st, err := v.stylists.GetByID(ctx, stylistID)
	if err != nil {
		return notFoundAs(err, msgInvalidStylist)
	}
	if st.BusinessID != businessID {
		return apperr.Validation(msgInvalidStylist)
	}
	return nil
}

func (v *BookingValidator) checkBusiness(ctx context.Context, businessID string) error {
	_, err := v.businesses.GetByID(ctx, businessID)
	return notFoundAs(err, msgInvalidBusiness)
}

// notFoundAs reports a missing reference as a validation failure; other errors pass through.
func notFoundAs(err error, msg string) error {
	if err == nil {
		return nil
	}
	if apperr.IsNotFound(err) {
		return apperr.Validation(msg)
	}
	return err
}
