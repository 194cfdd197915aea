package notification

const (
	msgDispatchRequired = "appointmentId and action are required"
	msgInvalidAction    = "Invalid action"
	msgInboxRequired    = "userId and userType are required"
	msgInvalidUserType  = "userType must be customer or business"
	msgIDRequired       = "notificationId is required"
	msgNotFound         = "Notification not found"
	msgInvalidToken     = "Invalid or expired token"
	msgForbidden        = "Notifications belong to another user"

	reasonNoEmail           = "No customer email available"
	reasonEmailUnconfigured = "Email service not configured"
	reasonNoPhone           = "No customer phone available"
	reasonNoCustomer        = "No customer on appointment"
)
