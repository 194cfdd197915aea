package appointment

const (
	msgRequiredFields   = "businessId, serviceId and appointmentDate are required"
	msgInvalidBusiness  = "Invalid business"
	msgInvalidCustomer  = "Invalid customer"
	msgCustomerRequired = "Customer name and email are required"
	msgInvalidEmail     = "Invalid customer email"
	msgInvalidService   = "Invalid service selected"
	msgInvalidStylist   = "Invalid stylist selected"
	msgInvalidDate      = "Invalid appointmentDate"
	msgIDRequired       = "Appointment ID is required"
	msgBusinessRequired = "businessId is required"
	msgNoFields         = "No fields to update"
	msgInvalidStatus    = "Invalid status"
	msgInvalidRange     = "Invalid dateRange"
	msgInvalidStart     = "Invalid startDate"
	msgInvalidEnd       = "Invalid endDate"
	msgNotFound         = "Appointment not found"
	msgConcurrentUpdate = "Appointment was updated by another request, reload and retry"
)
