package auth

import (
	"salonbooking/internal/domain"
	"salonbooking/internal/domain/business"
)

type Type string

const (
	TypeBusinessRegister Type = "business_register"
	TypeBusinessLogin    Type = "business_login"
	TypeCustomerRegister Type = "customer_register"
	TypeCustomerLogin    Type = "customer_login"
)

type Request struct {
	Type       Type                    `json:"type"`
	Email      string                  `json:"email"`
	Password   string                  `json:"password"`
	Name       string                  `json:"name"`
	Phone      string                  `json:"phone"`
	Address    string                  `json:"address"`
	BusinessID string                  `json:"businessId"`
	Services   []business.ServiceInput `json:"services"`
}

// Result is the session handed back to the client after register or login.
type Result struct {
	UserType   domain.UserType
	Business   *domain.Business
	Customer   *domain.Customer
	Registered bool
	Token      string
}
