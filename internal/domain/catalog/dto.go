package catalog

type CreateServiceRequest struct {
	BusinessID  string   `json:"businessId"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
}

type UpdateServiceRequest struct {
	ID          string   `json:"id"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *int     `json:"duration"`
}

type CreateStylistRequest struct {
	BusinessID     string `json:"businessId"`
	Name           string `json:"name"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone"`
	Specialization string `json:"specialization"`
	Bio            string `json:"bio"`
	ImageURL       string `json:"imageUrl" validate:"omitempty,url"`
	IsActive       *bool  `json:"isActive"`
}

type UpdateStylistRequest struct {
	ID             string  `json:"id"`
	Name           *string `json:"name"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Phone          *string `json:"phone"`
	Specialization *string `json:"specialization"`
	Bio            *string `json:"bio"`
	ImageURL       *string `json:"imageUrl" validate:"omitempty,url"`
	IsActive       *bool   `json:"isActive"`
}
