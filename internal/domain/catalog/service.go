package catalog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"salonbooking/internal/domain"
	"salonbooking/internal/pkg/apperr"
	"salonbooking/internal/pkg/validator"
)

type Service struct {
	services   *ServiceRepository
	stylists   *StylistRepository
	businesses BusinessReader
}

func NewService(services *ServiceRepository, stylists *StylistRepository, businesses BusinessReader) *Service {
	return &Service{services: services, stylists: stylists, businesses: businesses}
}

/* ---------- SERVICES ---------- */

func (s *Service) CreateService(ctx context.Context, req CreateServiceRequest) (*domain.SalonService, error) {
	businessID := strings.TrimSpace(req.BusinessID)
	name := strings.TrimSpace(req.Name)
	if businessID == "" || name == "" || req.Price == nil {
		return nil, apperr.Validation(msgServiceRequired)
	}
	if *req.Price < 0 {
		return nil, apperr.Validation(msgNegativePrice)
	}
	duration := 0
	if req.Duration != nil {
		if *req.Duration < 0 {
			return nil, apperr.Validation(msgNegativeDuration)
		}
		duration = *req.Duration
	}
	if err := s.ensureBusiness(ctx, businessID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	svc := &domain.SalonService{
		ID:          uuid.NewString(),
		BusinessID:  businessID,
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Price:       *req.Price,
		Duration:    duration,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) ListServices(ctx context.Context, businessID string) ([]domain.SalonService, error) {
	if strings.TrimSpace(businessID) == "" {
		return nil, apperr.Validation(msgBusinessRequired)
	}
	return s.services.ListByBusiness(ctx, businessID)
}

func (s *Service) UpdateService(ctx context.Context, req UpdateServiceRequest) (*domain.SalonService, error) {
	if strings.TrimSpace(req.ID) == "" {
		return nil, apperr.Validation(msgServiceIDRequired)
	}

	updates := map[string]any{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperr.Validation(msgServiceRequired)
		}
		updates["name"] = name
	}
	if req.Description != nil {
		updates["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, apperr.Validation(msgNegativePrice)
		}
		updates["price"] = *req.Price
	}
	if req.Duration != nil {
		if *req.Duration < 0 {
			return nil, apperr.Validation(msgNegativeDuration)
		}
		updates["duration"] = *req.Duration
	}
	if len(updates) == 0 {
		return nil, apperr.Validation("No fields to update")
	}

	if err := s.services.Update(ctx, req.ID, updates); err != nil {
		return nil, err
	}
	return s.services.GetByID(ctx, req.ID)
}

func (s *Service) DeleteService(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperr.Validation(msgServiceIDRequired)
	}
	return s.services.Delete(ctx, id)
}

/* ---------- STYLISTS ---------- */

func (s *Service) CreateStylist(ctx context.Context, req CreateStylistRequest) (*domain.Stylist, error) {
	businessID := strings.TrimSpace(req.BusinessID)
	name := strings.TrimSpace(req.Name)
	if businessID == "" || name == "" {
		return nil, apperr.Validation(msgStylistRequired)
	}
	if errs := validator.Validate(req); errs != nil {
		return nil, apperr.ValidationFields(fieldMessage(errs), errs)
	}
	if err := s.ensureBusiness(ctx, businessID); err != nil {
		return nil, err
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	now := time.Now().UTC()
	st := &domain.Stylist{
		ID:             uuid.NewString(),
		BusinessID:     businessID,
		Name:           name,
		Email:          strings.TrimSpace(req.Email),
		Phone:          strings.TrimSpace(req.Phone),
		Specialization: strings.TrimSpace(req.Specialization),
		Bio:            strings.TrimSpace(req.Bio),
		ImageURL:       strings.TrimSpace(req.ImageURL),
		IsActive:       active,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.stylists.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *Service) ListStylists(ctx context.Context, businessID string) ([]domain.Stylist, error) {
	if strings.TrimSpace(businessID) == "" {
		return nil, apperr.Validation(msgBusinessRequired)
	}
	return s.stylists.ListByBusiness(ctx, businessID)
}

func (s *Service) UpdateStylist(ctx context.Context, req UpdateStylistRequest) (*domain.Stylist, error) {
	if strings.TrimSpace(req.ID) == "" {
		return nil, apperr.Validation(msgStylistIDRequired)
	}
	if errs := validator.Validate(req); errs != nil {
		return nil, apperr.ValidationFields(fieldMessage(errs), errs)
	}

	updates := map[string]any{}
	setString := func(column string, v *string) {
		if v != nil {
			updates[column] = strings.TrimSpace(*v)
		}
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		return nil, apperr.Validation(msgStylistRequired)
	}
	setString("name", req.Name)
	setString("email", req.Email)
	setString("phone", req.Phone)
	setString("specialization", req.Specialization)
	setString("bio", req.Bio)
	setString("image_url", req.ImageURL)
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return nil, apperr.Validation("No fields to update")
	}

	if err := s.stylists.Update(ctx, req.ID, updates); err != nil {
		return nil, err
	}
	return s.stylists.GetByID(ctx, req.ID)
}

func (s *Service) DeleteStylist(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperr.Validation(msgStylistIDRequired)
	}
	return s.stylists.Delete(ctx, id)
}

func (s *Service) ensureBusiness(ctx context.Context, businessID string) error {
	if _, err := s.businesses.GetByID(ctx, businessID); err != nil {
		if apperr.IsNotFound(err) {
			return apperr.Validation(msgInvalidBusiness)
		}
		return err
	}
	return nil
}

// fieldMessage turns the first validator failure into a client message.
func fieldMessage(errs map[string]string) string {
	for field, tag := range errs {
		if tag == "email" {
			return msgInvalidEmail
		}
		return "Invalid " + field
	}
	return "Invalid request"
}
