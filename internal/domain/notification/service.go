package notification

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"salonbooking/internal/domain"
	"salonbooking/internal/pkg/apperr"
)

type Service struct {
	repo         *Repository
	appointments AppointmentLookup
	dispatcher   *Dispatcher
	log          *zap.Logger
}

func NewService(repo *Repository, appointments AppointmentLookup, dispatcher *Dispatcher, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo:         repo,
		appointments: appointments,
		dispatcher:   dispatcher,
		log:          log,
	}
}

// Dispatch re-sends the notification for an appointment on demand.
func (s *Service) Dispatch(ctx context.Context, req DispatchRequest) (*domain.DispatchReport, error) {
	id := strings.TrimSpace(req.AppointmentID)
	if id == "" || strings.TrimSpace(req.Action) == "" {
		return nil, apperr.Validation(msgDispatchRequired)
	}
	action, ok := domain.ParseNotificationAction(strings.TrimSpace(req.Action))
	if !ok {
		return nil, apperr.Validation(msgInvalidAction)
	}

	a, err := s.appointments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	report := s.dispatcher.Dispatch(ctx, a, action)
	return &report, nil
}

// Viewer is the signed-in user behind a request. A nil Viewer is an anonymous
// caller and may address any inbox.
type Viewer struct {
	UserID   string
	UserType domain.UserType
}

func (v *Viewer) owns(userID string, userType domain.UserType) bool {
	return v == nil || (v.UserID == userID && v.UserType == userType)
}

func parseRecipient(userID, userType string) (string, domain.UserType, error) {
	userID = strings.TrimSpace(userID)
	userType = strings.TrimSpace(userType)
	if userID == "" || userType == "" {
		return "", "", apperr.Validation(msgInboxRequired)
	}
	t := domain.UserType(userType)
	if !t.Valid() {
		return "", "", apperr.Validation(msgInvalidUserType)
	}
	return userID, t, nil
}

func (s *Service) Inbox(ctx context.Context, viewer *Viewer, userID, userType string) (*Inbox, error) {
	id, t, err := parseRecipient(userID, userType)
	if err != nil {
		return nil, err
	}
	if !viewer.owns(id, t) {
		return nil, apperr.Forbidden(msgForbidden)
	}
	items, err := s.repo.ListForUser(ctx, id, t)
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.UnreadCount(ctx, id, t)
	if err != nil {
		return nil, err
	}
	return &Inbox{Notifications: items, UnreadCount: unread}, nil
}

// SetRead defaults isRead to true when the client omits it.
func (s *Service) SetRead(ctx context.Context, viewer *Viewer, req MarkReadRequest) (*domain.Notification, error) {
	id := strings.TrimSpace(req.NotificationID)
	if id == "" {
		return nil, apperr.Validation(msgIDRequired)
	}
	if viewer != nil {
		n, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if !viewer.owns(n.UserID, n.UserType) {
			return nil, apperr.Forbidden(msgForbidden)
		}
	}
	isRead := true
	if req.IsRead != nil {
		isRead = *req.IsRead
	}
	if err := s.repo.SetRead(ctx, id, isRead); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) MarkAllRead(ctx context.Context, viewer *Viewer, req ReadAllRequest) (int64, error) {
	id, t, err := parseRecipient(req.UserID, req.UserType)
	if err != nil {
		return 0, err
	}
	if !viewer.owns(id, t) {
		return 0, apperr.Forbidden(msgForbidden)
	}
	n, err := s.repo.MarkAllRead(ctx, id, t)
	if err != nil {
		return 0, err
	}
	s.log.Debug("notifications marked read", zap.String("user_id", id), zap.Int64("updated", n))
	return n, nil
}
