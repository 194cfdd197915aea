package appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"salonbooking/internal/domain"
	"salonbooking/internal/pkg/apperr"
)

type mockBusinesses struct{ mock.Mock }

func (m *mockBusinesses) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*domain.Business), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCustomers struct{ mock.Mock }

func (m *mockCustomers) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*domain.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCustomers) Upsert(ctx context.Context, businessID, name, email, phone string) (*domain.Customer, error) {
	args := m.Called(ctx, businessID, name, email, phone)
	if c := args.Get(0); c != nil {
		return c.(*domain.Customer), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockServices struct{ mock.Mock }

func (m *mockServices) GetByID(ctx context.Context, id string) (*domain.SalonService, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*domain.SalonService), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockStylists struct{ mock.Mock }

func (m *mockStylists) GetByID(ctx context.Context, id string) (*domain.Stylist, error) {
	args := m.Called(ctx, id)
	if s := args.Get(0); s != nil {
		return s.(*domain.Stylist), args.Error(1)
	}
	return nil, args.Error(1)
}

type validatorMocks struct {
	businesses *mockBusinesses
	customers  *mockCustomers
	services   *mockServices
	stylists   *mockStylists
}

func newTestValidator() (*BookingValidator, *validatorMocks) {
	m := &validatorMocks{
		businesses: &mockBusinesses{},
		customers:  &mockCustomers{},
		services:   &mockServices{},
		stylists:   &mockStylists{},
	}
	return NewBookingValidator(m.businesses, m.customers, m.services, m.stylists, time.UTC), m
}

func validRequest() CreateRequest {
	return CreateRequest{
		BusinessID:      "B1",
		Customer:        CustomerByID("C1"),
		ServiceID:       "S1",
		AppointmentDate: "2026-03-10T10:00:00Z",
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	v, _ := newTestValidator()

	for _, mutate := range []func(*CreateRequest){
		func(r *CreateRequest) { r.BusinessID = "" },
		func(r *CreateRequest) { r.ServiceID = " " },
		func(r *CreateRequest) { r.AppointmentDate = "" },
	} {
		req := validRequest()
		mutate(&req)
		_, err := v.Validate(context.Background(), req)
		assert.EqualError(t, err, msgRequiredFields)
	}
}

func TestValidate_UnknownBusiness(t *testing.T) {
	v, m := newTestValidator()
	m.businesses.On("GetByID", mock.Anything, "B1").Return(nil, apperr.NotFound("Business not found"))

	_, err := v.Validate(context.Background(), validRequest())
	assert.EqualError(t, err, msgInvalidBusiness)
	assert.True(t, apperr.IsValidation(err))
}

func TestValidate_CustomerFromOtherBusiness(t *testing.T) {
	v, m := newTestValidator()
	m.businesses.On("GetByID", mock.Anything, "B1").Return(&domain.Business{ID: "B1"}, nil)
	m.customers.On("GetByID", mock.Anything, "C1").Return(&domain.Customer{ID: "C1", BusinessID: "B2"}, nil)

	_, err := v.Validate(context.Background(), validRequest())
	assert.EqualError(t, err, msgInvalidCustomer)
}

func TestValidate_ServiceFromOtherBusiness(t *testing.T) {
	v, m := newTestValidator()
	m.businesses.On("GetByID", mock.Anything, "B1").Return(&domain.Business{ID: "B1"}, nil)
	m.customers.On("GetByID", mock.Anything, "C1").Return(&domain.Customer{ID: "C1", BusinessID: "B1"}, nil)
	m.services.On("GetByID", mock.Anything, "S1").Return(&domain.SalonService{ID: "S1", BusinessID: "B2"}, nil)

	_, err := v.Validate(context.Background(), validRequest())
	assert.EqualError(t, err, msgInvalidService)
}

func TestValidate_StylistFromOtherBusiness(t *testing.T) {
	v, m := newTestValidator()
	m.businesses.On("GetByID", mock.Anything, "B1").Return(&domain.Business{ID: "B1"}, nil)
	m.customers.On("GetByID", mock.Anything, "C1").Return(&domain.Customer{ID: "C1", BusinessID: "B1"}, nil)
	m.services.On("GetByID", mock.Anything, "S1").Return(&domain.SalonService{ID: "S1", BusinessID: "B1", Name: "Cut"}, nil)
	m.stylists.On("GetByID", mock.Anything, "ST9").Return(&domain.Stylist{ID: "ST9", BusinessID: "B2"}, nil)

	req := validRequest()
	req.StylistID = "ST9"
	_, err := v.Validate(context.Background(), req)
	assert.EqualError(t, err, msgInvalidStylist)
}

func TestValidate_InlineCustomerUpsertedLast(t *testing.T) {
	v, m := newTestValidator()
	m.businesses.On("GetByID", mock.Anything, "B1").Return(&domain.Business{ID: "B1"}, nil)
	m.services.On("GetByID", mock.Anything, "S1").Return(nil, apperr.NotFound("Service not found"))

	req := validRequest()
	req.Customer = InlineCustomer{Name: "Ann", Email: "ann@example.com"}
	_, err := v.Validate(context.Background(), req)

	assert.EqualError(t, err, msgInvalidService)
	m.customers.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestValidate_InlineCustomerFields(t *testing.T) {
	v, m := newTestValidator()
	m.businesses.On("GetByID", mock.Anything, "B1").Return(&domain.Business{ID: "B1"}, nil)

	req := validRequest()
	req.Customer = InlineCustomer{Name: "Ann"}
	_, err := v.Validate(context.Background(), req)
	assert.EqualError(t, err, msgCustomerRequired)

	req.Customer = InlineCustomer{Name: "Ann", Email: "not-an-email"}
	_, err = v.Validate(context.Background(), req)
	assert.EqualError(t, err, msgInvalidEmail)

	req.Customer = nil
	_, err = v.Validate(context.Background(), req)
	assert.EqualError(t, err, msgCustomerRequired)
}

func TestValidate_Success(t *testing.T) {
	v, m := newTestValidator()
	m.businesses.On("GetByID", mock.Anything, "B1").Return(&domain.Business{ID: "B1"}, nil)
	m.services.On("GetByID", mock.Anything, "S1").Return(&domain.SalonService{ID: "S1", BusinessID: "B1", Name: "Haircut"}, nil)
	m.stylists.On("GetByID", mock.Anything, "ST1").Return(&domain.Stylist{ID: "ST1", BusinessID: "B1"}, nil)
	m.customers.On("Upsert", mock.Anything, "B1", "Ann", "ann@example.com", "555").
		Return(&domain.Customer{ID: "C7", BusinessID: "B1"}, nil).Once()

	req := validRequest()
	req.Customer = InlineCustomer{Name: " Ann ", Email: "ann@example.com", Phone: "555"}
	req.StylistID = "ST1"
	req.Notes = "  first visit "

	got, err := v.Validate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "C7", got.CustomerID)
	assert.Equal(t, "Haircut", got.ServiceName)
	require.NotNil(t, got.StylistID)
	assert.Equal(t, "ST1", *got.StylistID)
	assert.Equal(t, "first visit", got.Notes)
	assert.Equal(t, time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC), got.AppointmentDate)
	m.customers.AssertExpectations(t)
}

func TestValidate_StorageErrorPassesThrough(t *testing.T) {
	v, m := newTestValidator()
	boom := apperr.Storage("fetch business", errors.New("connection reset"))
	m.businesses.On("GetByID", mock.Anything, "B1").Return(nil, boom)

	_, err := v.Validate(context.Background(), validRequest())
	assert.True(t, apperr.IsStorage(err))
}
