package business

type ServiceInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
}

type RegisterRequest struct {
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	Phone    string         `json:"phone"`
	Address  string         `json:"address"`
	Password string         `json:"password"`
	Services []ServiceInput `json:"services"`
}

type BookingLinkRequest struct {
	BusinessID string `json:"businessId"`
}
