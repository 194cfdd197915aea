package auth

const (
	msgInvalidType        = "Invalid authentication type"
	msgInvalidCredentials = "Invalid email or password"
	msgCredentialsNeeded  = "Email and password are required"
	msgBusinessRequired   = "Business ID is required"
	msgInvalidBusiness    = "Invalid business"
	msgNameRequired       = "Name is required"
	msgInvalidEmail       = "Invalid email address"
	msgEmailTaken         = "Email already registered"
)
