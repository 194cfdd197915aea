package notification

import "salonbooking/internal/domain"

type DispatchRequest struct {
	AppointmentID string `json:"appointmentId"`
	Action        string `json:"action"`
}

type MarkReadRequest struct {
	NotificationID string `json:"notificationId"`
	IsRead         *bool  `json:"isRead"`
}

type ReadAllRequest struct {
	UserID   string `json:"userId"`
	UserType string `json:"userType"`
}

type Inbox struct {
	Notifications []domain.Notification `json:"notifications"`
	UnreadCount   int64                 `json:"unreadCount"`
}

// StreamEvent is the frame pushed to websocket subscribers.
type StreamEvent struct {
	Type    string               `json:"type"`
	Payload *domain.Notification `json:"payload"`
}

const EventNotification = "notification"
