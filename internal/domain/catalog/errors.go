package catalog

const (
	msgServiceRequired   = "businessId, name and price are required"
	msgServiceIDRequired = "Service ID is required"
	msgStylistRequired   = "Business ID and name are required"
	msgStylistIDRequired = "Stylist ID is required"
	msgBusinessRequired  = "Business ID is required"
	msgInvalidBusiness   = "Invalid business"
	msgNegativePrice     = "Price must not be negative"
	msgNegativeDuration  = "Duration must not be negative"
	msgInvalidEmail      = "Invalid email address"
	msgServiceNotFound   = "Service not found"
	msgStylistNotFound   = "Stylist not found"
)
