package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"salonbooking/internal/domain"
	"salonbooking/internal/domain/business"
	"salonbooking/internal/pkg/apperr"
	"salonbooking/internal/pkg/validator"
)

type Service struct {
	businesses BusinessStore
	customers  CustomerStore
	tokens     TokenIssuer
	log        *zap.Logger
}

func NewService(businesses BusinessStore, customers CustomerStore, tokens TokenIssuer, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{businesses: businesses, customers: customers, tokens: tokens, log: log}
}

func (s *Service) Authenticate(ctx context.Context, req Request) (*Result, error) {
	switch req.Type {
	case TypeBusinessRegister:
		return s.registerBusiness(ctx, req)
	case TypeBusinessLogin:
		return s.loginBusiness(ctx, req)
	case TypeCustomerRegister:
		return s.registerCustomer(ctx, req)
	case TypeCustomerLogin:
		return s.loginCustomer(ctx, req)
	default:
		return nil, apperr.Validation(msgInvalidType)
	}
}

func (s *Service) registerBusiness(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, apperr.Validation(msgCredentialsNeeded)
	}

	b, _, err := s.businesses.Register(ctx, business.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		Password: req.Password,
		Services: req.Services,
	})
	if err != nil {
		return nil, err
	}
	return s.issue(&Result{UserType: domain.UserTypeBusiness, Business: b, Registered: true}, b.ID, b.ID)
}

func (s *Service) loginBusiness(ctx context.Context, req Request) (*Result, error) {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, apperr.Validation(msgCredentialsNeeded)
	}

	b, err := s.businesses.FindByEmail(ctx, req.Email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Validation(msgInvalidCredentials)
		}
		return nil, err
	}
	if !checkPassword(b.PasswordHash, req.Password) {
		s.log.Info("business login rejected", zap.String("business_id", b.ID))
		return nil, apperr.Validation(msgInvalidCredentials)
	}
	return s.issue(&Result{UserType: domain.UserTypeBusiness, Business: b}, b.ID, b.ID)
}

// registerCustomer creates a customer account. A customer row created earlier
// by a booking (no password yet) is upgraded in place.
func (s *Service) registerCustomer(ctx context.Context, req Request) (*Result, error) {
	businessID := strings.TrimSpace(req.BusinessID)
	if businessID == "" {
		return nil, apperr.Validation(msgBusinessRequired)
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, apperr.Validation(msgCredentialsNeeded)
	}
	if !validator.IsEmail(email) {
		return nil, apperr.Validation(msgInvalidEmail)
	}
	if _, err := s.businesses.GetByID(ctx, businessID); err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Validation(msgInvalidBusiness)
		}
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	existing, err := s.customers.FindByEmail(ctx, businessID, email)
	switch {
	case err == nil && existing.HasPassword():
		return nil, apperr.Validation(msgEmailTaken)
	case err == nil:
		if err := s.customers.SetCredentials(ctx, existing.ID, req.Name, req.Phone, string(hash)); err != nil {
			return nil, err
		}
		c, err := s.customers.GetByID(ctx, existing.ID)
		if err != nil {
			return nil, err
		}
		s.log.Info("customer account claimed", zap.String("customer_id", c.ID), zap.String("business_id", businessID))
		return s.issue(&Result{UserType: domain.UserTypeCustomer, Customer: c, Registered: true}, c.ID, businessID)
	case !apperr.IsNotFound(err):
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperr.Validation(msgNameRequired)
	}
	now := time.Now().UTC()
	c := &domain.Customer{
		ID:           uuid.NewString(),
		BusinessID:   businessID,
		Name:         name,
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return s.issue(&Result{UserType: domain.UserTypeCustomer, Customer: c, Registered: true}, c.ID, businessID)
}

func (s *Service) loginCustomer(ctx context.Context, req Request) (*Result, error) {
	businessID := strings.TrimSpace(req.BusinessID)
	if businessID == "" {
		return nil, apperr.Validation(msgBusinessRequired)
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, apperr.Validation(msgCredentialsNeeded)
	}

	c, err := s.customers.FindByEmail(ctx, businessID, req.Email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Validation(msgInvalidCredentials)
		}
		return nil, err
	}
	if !checkPassword(c.PasswordHash, req.Password) {
		return nil, apperr.Validation(msgInvalidCredentials)
	}
	return s.issue(&Result{UserType: domain.UserTypeCustomer, Customer: c}, c.ID, businessID)
}

func (s *Service) issue(res *Result, userID, businessID string) (*Result, error) {
	token, err := s.tokens.GenerateToken(userID, string(res.UserType), businessID)
	if err != nil {
		return nil, err
	}
	res.Token = token
	return res, nil
}

// checkPassword fails closed for accounts without a password.
func checkPassword(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
