package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"salonbooking/internal/domain"
	"salonbooking/internal/pkg/apperr"
)

type Service struct {
	repo       *Repository
	validator  *BookingValidator
	dispatcher Dispatcher
	metrics    Metrics
	log        *zap.Logger
	loc        *time.Location
	now        func() time.Time
}

type Option func(*Service)

// WithClock overrides the time source used for named date ranges.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

func WithMetrics(m Metrics) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

func NewService(
	repo *Repository,
	validator *BookingValidator,
	dispatcher Dispatcher,
	log *zap.Logger,
	loc *time.Location,
	opts ...Option,
) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}
	s := &Service{
		repo:       repo,
		validator:  validator,
		dispatcher: dispatcher,
		metrics:    nopMetrics{},
		log:        log,
		loc:        loc,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates a booking and stores it as a pending appointment.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*domain.Appointment, error) {
	booking, err := s.validator.Validate(ctx, req)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	a := &domain.Appointment{
		ID:              uuid.NewString(),
		BusinessID:      booking.BusinessID,
		CustomerID:      booking.CustomerID,
		ServiceID:       booking.ServiceID,
		ServiceName:     booking.ServiceName,
		StylistID:       booking.StylistID,
		AppointmentDate: booking.AppointmentDate,
		Notes:           booking.Notes,
		Status:          domain.AppointmentPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Create(ctx, a)
	if err != nil {
		return nil, err
	}

	s.metrics.AppointmentCreated()
	s.log.Info("appointment created",
		zap.String("appointment_id", created.ID),
		zap.String("business_id", created.BusinessID),
		zap.Time("appointment_date", created.AppointmentDate),
	)
	return created, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Appointment, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.Validation(msgIDRequired)
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, q ListQuery) (*ListResult, error) {
	businessID := strings.TrimSpace(q.BusinessID)
	if businessID == "" {
		return nil, apperr.Validation(msgBusinessRequired)
	}

	rng, err := resolveDateRange(q.DateRange, q.StartDate, q.EndDate, s.now(), s.loc)
	if err != nil {
		return nil, err
	}

	f := ListFilter{Range: rng, Page: q.Page, Limit: q.Limit}
	if st := strings.TrimSpace(q.Status); st != "" && st != "all" {
		status, ok := domain.ParseAppointmentStatus(st)
		if !ok {
			return nil, apperr.Validation(msgInvalidStatus)
		}
		f.Status = status
	}
	if stylist := strings.TrimSpace(q.Stylist); stylist != "" && stylist != "all" {
		f.StylistID = stylist
	}

	items, total, err := s.repo.List(ctx, businessID, f)
	if err != nil {
		return nil, err
	}

	page, limit := normalizePage(q.Page, q.Limit)
	return &ListResult{
		Appointments: items,
		TotalCount:   total,
		CurrentPage:  page,
		TotalPages:   totalPages(total, limit),
	}, nil
}

// Update applies a status transition, a stylist reassignment, or both. A
// successful transition dispatches exactly one notification; the dispatch
// outcome is reported but never undoes the transition.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*UpdateResult, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return nil, apperr.Validation(msgIDRequired)
	}
	if req.Status == nil && req.StylistID == nil {
		return nil, apperr.Validation(msgNoFields)
	}

	var target domain.AppointmentStatus
	if req.Status != nil {
		st, ok := domain.ParseAppointmentStatus(strings.TrimSpace(*req.Status))
		if !ok {
			return nil, apperr.Validation(msgInvalidStatus)
		}
		target = st
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var stylistID *string
	if req.StylistID != nil {
		sid := strings.TrimSpace(*req.StylistID)
		if sid != "" {
			if err := s.validator.CheckStylist(ctx, current.BusinessID, sid); err != nil {
				return nil, err
			}
		}
		stylistID = &sid
	}

	if target == "" {
		if err := s.repo.UpdateStylist(ctx, id, *stylistID); err != nil {
			return nil, err
		}
		updated, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		return &UpdateResult{Appointment: updated}, nil
	}

	from := current.Status
	if err := checkTransition(from, target); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateStatus(ctx, id, from, target, stylistID); err != nil {
		return nil, err
	}
	s.metrics.AppointmentTransitioned(from, target)

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info("appointment status changed",
		zap.String("appointment_id", id),
		zap.String("from", string(from)),
		zap.String("to", string(target)),
	)

	result := &UpdateResult{Appointment: updated}
	if action, ok := actionFor(target); ok && s.dispatcher != nil {
		report := s.dispatcher.Dispatch(ctx, updated, action)
		result.Notification = &report
	}
	return result, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return apperr.Validation(msgIDRequired)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("appointment deleted", zap.String("appointment_id", id))
	return nil
}
