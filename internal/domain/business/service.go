package business

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"salonbooking/internal/domain"
	"salonbooking/internal/pkg/apperr"
	"salonbooking/internal/pkg/validator"
)

type Service struct {
	repo     *Repository
	services ServiceCreator
	log      *zap.Logger
}

func NewService(repo *Repository, services ServiceCreator, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, services: services, log: log}
}

// Register creates a business and any services listed with it. The password
// is optional here; the auth flow always supplies one.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.Business, []domain.SalonService, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if name == "" || email == "" {
		return nil, nil, apperr.Validation(msgNameEmailRequired)
	}
	if !validator.IsEmail(email) {
		return nil, nil, apperr.Validation(msgInvalidEmail)
	}
	for _, in := range req.Services {
		if strings.TrimSpace(in.Name) == "" || in.Price < 0 || in.Duration < 0 {
			return nil, nil, apperr.Validation(msgServiceInvalid)
		}
	}

	var hash string
	if req.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, nil, err
		}
		hash = string(h)
	}

	now := time.Now().UTC()
	b := &domain.Business{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		Address:      strings.TrimSpace(req.Address),
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, nil, err
	}

	services := make([]domain.SalonService, 0, len(req.Services))
	for _, in := range req.Services {
		services = append(services, domain.SalonService{
			ID:          uuid.NewString(),
			BusinessID:  b.ID,
			Name:        strings.TrimSpace(in.Name),
			Description: strings.TrimSpace(in.Description),
			Price:       in.Price,
			Duration:    in.Duration,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}
	if err := s.services.CreateBatch(ctx, services); err != nil {
		return nil, nil, err
	}

	s.log.Info("business registered",
		zap.String("business_id", b.ID),
		zap.Int("services", len(services)),
	)
	return b, services, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Business, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.Validation(msgIDRequired)
	}
	return s.repo.GetByID(ctx, id)
}

// BookingLink returns the public booking page URL for a business.
func (s *Service) BookingLink(ctx context.Context, baseURL, businessID string) (string, error) {
	if _, err := s.Get(ctx, businessID); err != nil {
		return "", err
	}
	return strings.TrimRight(baseURL, "/") + "/customer.html?business=" + url.QueryEscape(businessID), nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Business, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) FindByEmail(ctx context.Context, email string) (*domain.Business, error) {
	return s.repo.FindByEmail(ctx, email)
}
