package appointment

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"salonbooking/internal/domain"
)

// CustomerRef identifies who is booking: either an existing customer id or
// inline contact details that are upserted into the business's customers.
type CustomerRef interface {
	customerRef()
}

type CustomerByID string

type InlineCustomer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (CustomerByID) customerRef()   {}
func (InlineCustomer) customerRef() {}

var errBadCustomerRef = errors.New("userId must be a customer id or an object with name and email")

// decodeCustomerRef accepts a JSON string (id) or object (inline customer).
func decodeCustomerRef(raw json.RawMessage) (CustomerRef, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	switch raw[0] {
	case '"':
		var id string
		if err := json.Unmarshal(raw, &id); err != nil {
			return nil, err
		}
		if strings.TrimSpace(id) == "" {
			return nil, nil
		}
		return CustomerByID(strings.TrimSpace(id)), nil
	case '{':
		var in InlineCustomer
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, err
		}
		return in, nil
	}
	return nil, errBadCustomerRef
}

type CreateRequest struct {
	BusinessID      string      `json:"businessId"`
	Customer        CustomerRef `json:"-"`
	ServiceID       string      `json:"serviceId"`
	AppointmentDate string      `json:"appointmentDate"`
	Notes           string      `json:"notes"`
	StylistID       string      `json:"stylistId"`
}

func (r *CreateRequest) UnmarshalJSON(b []byte) error {
	type plain CreateRequest
	var aux struct {
		plain
		UserID json.RawMessage `json:"userId"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	ref, err := decodeCustomerRef(aux.UserID)
	if err != nil {
		return err
	}
	*r = CreateRequest(aux.plain)
	r.Customer = ref
	return nil
}

// UpdateRequest changes status, stylist, or both. An empty stylistId unassigns.
type UpdateRequest struct {
	ID        string  `json:"id"`
	Status    *string `json:"status"`
	StylistID *string `json:"stylistId"`
}

type ListQuery struct {
	BusinessID string
	DateRange  string
	StartDate  string
	EndDate    string
	Status     string
	Stylist    string
	Page       int
	Limit      int
}

type ListResult struct {
	Appointments []domain.Appointment `json:"appointments"`
	TotalCount   int64                `json:"totalCount"`
	CurrentPage  int                  `json:"currentPage"`
	TotalPages   int                  `json:"totalPages"`
}

type UpdateResult struct {
	Appointment  *domain.Appointment    `json:"appointment"`
	Notification *domain.DispatchReport `json:"notification,omitempty"`
}
