package domain

import "time"

// NotificationAction is the lifecycle event a notification reports on.
type NotificationAction string

const (
	ActionConfirmed NotificationAction = "confirmed"
	ActionCancelled NotificationAction = "cancelled"
	ActionCompleted NotificationAction = "completed"
)

func ParseNotificationAction(s string) (NotificationAction, bool) {
	switch a := NotificationAction(s); a {
	case ActionConfirmed, ActionCancelled, ActionCompleted:
		return a, true
	}
	return "", false
}

const RelatedTypeAppointment = "appointment"

type Notification struct {
	ID          string    `gorm:"column:id;primaryKey" json:"id"`
	UserID      string    `gorm:"column:user_id" json:"user_id"`
	UserType    UserType  `gorm:"column:user_type" json:"user_type"`
	Title       string    `gorm:"column:title" json:"title"`
	Message     string    `gorm:"column:message" json:"message"`
	Type        string    `gorm:"column:type" json:"type"`
	RelatedID   string    `gorm:"column:related_id" json:"related_id"`
	RelatedType string    `gorm:"column:related_type" json:"related_type"`
	IsRead      bool      `gorm:"column:is_read" json:"is_read"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Notification) TableName() string { return "notifications" }

// ChannelResult is the advisory outcome of one outbound channel.
type ChannelResult struct {
	Sent   bool   `json:"sent"`
	Reason string `json:"reason,omitempty"`
}

type InAppResult struct {
	Created bool   `json:"created"`
	Reason  string `json:"reason,omitempty"`
}

// DispatchReport never carries an error: every channel outcome is folded in.
type DispatchReport struct {
	Email        ChannelResult  `json:"email"`
	SMS          *ChannelResult `json:"sms,omitempty"`
	Notification InAppResult    `json:"notification"`
}
