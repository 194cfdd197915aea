package business

const (
	msgNameEmailRequired = "Business name and email are required"
	msgInvalidEmail      = "Invalid email address"
	msgEmailTaken        = "Email already registered"
	msgIDRequired        = "Business ID is required"
	msgNotFound          = "Business not found"
	msgServiceInvalid    = "Each service needs a name and a non-negative price"
)
