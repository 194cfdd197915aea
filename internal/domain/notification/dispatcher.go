package notification

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"salonbooking/internal/domain"
)

const defaultChannelTimeout = 5 * time.Second

const (
	channelEmail  = "email"
	channelSMS    = "sms"
	channelInApp  = "in_app"
	channelEvents = "events"

	outcomeSent    = "sent"
	outcomeSkipped = "skipped"
	outcomeFailed  = "failed"
)

type InboxWriter interface {
	Create(ctx context.Context, n *domain.Notification) error
}

// Dispatcher fans one appointment transition out to every configured
// channel. It never returns an error: channel failures land in the report.
type Dispatcher struct {
	inbox     InboxWriter
	templates *Templates
	email     EmailSender
	sms       SMSSender
	events    EventPublisher
	broadcast Broadcaster
	metrics   Metrics
	timeout   time.Duration
	log       *zap.Logger
}

type DispatcherOption func(*Dispatcher)

// WithEmail enables the email channel. Without it every email reports
// "Email service not configured".
func WithEmail(s EmailSender) DispatcherOption {
	return func(d *Dispatcher) { d.email = s }
}

// WithSMS adds the sms channel to the report.
func WithSMS(s SMSSender) DispatcherOption {
	return func(d *Dispatcher) { d.sms = s }
}

func WithEvents(p EventPublisher) DispatcherOption {
	return func(d *Dispatcher) { d.events = p }
}

func WithBroadcaster(b Broadcaster) DispatcherOption {
	return func(d *Dispatcher) { d.broadcast = b }
}

func WithMetrics(m Metrics) DispatcherOption {
	return func(d *Dispatcher) { d.metrics = m }
}

func WithTimeout(t time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		if t > 0 {
			d.timeout = t
		}
	}
}

func NewDispatcher(inbox InboxWriter, templates *Templates, log *zap.Logger, opts ...DispatcherOption) *Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}
	d := &Dispatcher{
		inbox:     inbox,
		templates: templates,
		metrics:   nopMetrics{},
		timeout:   defaultChannelTimeout,
		log:       log,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) Dispatch(ctx context.Context, a *domain.Appointment, action domain.NotificationAction) domain.DispatchReport {
	// a client hanging up after the status write must not cancel delivery
	ctx = context.WithoutCancel(ctx)
	log := d.log.With(zap.String("appointment_id", a.ID), zap.String("action", string(action)))

	report := domain.DispatchReport{
		Email:        d.sendEmail(ctx, log, a, action),
		Notification: d.createInApp(ctx, log, a, action),
	}
	if d.sms != nil {
		res := d.sendSMS(ctx, log, a, action)
		report.SMS = &res
	}
	d.publishEvent(ctx, log, a, action)
	return report
}

func (d *Dispatcher) sendEmail(ctx context.Context, log *zap.Logger, a *domain.Appointment, action domain.NotificationAction) domain.ChannelResult {
	if a.Customer == nil || strings.TrimSpace(a.Customer.Email) == "" {
		d.metrics.NotificationChannel(channelEmail, outcomeSkipped)
		return domain.ChannelResult{Reason: reasonNoEmail}
	}
	if d.email == nil {
		d.metrics.NotificationChannel(channelEmail, outcomeSkipped)
		return domain.ChannelResult{Reason: reasonEmailUnconfigured}
	}

	msg, err := d.templates.Email(a, action)
	if err == nil {
		cctx, cancel := context.WithTimeout(ctx, d.timeout)
		err = d.email.Send(cctx, msg)
		cancel()
	}
	if err != nil {
		log.Warn("email notification failed", zap.Error(err))
		d.metrics.NotificationChannel(channelEmail, outcomeFailed)
		return domain.ChannelResult{Reason: "Email service error: " + err.Error()}
	}
	d.metrics.NotificationChannel(channelEmail, outcomeSent)
	return domain.ChannelResult{Sent: true}
}

func (d *Dispatcher) sendSMS(ctx context.Context, log *zap.Logger, a *domain.Appointment, action domain.NotificationAction) domain.ChannelResult {
	if a.Customer == nil || strings.TrimSpace(a.Customer.Phone) == "" {
		d.metrics.NotificationChannel(channelSMS, outcomeSkipped)
		return domain.ChannelResult{Reason: reasonNoPhone}
	}

	body, err := d.templates.SMS(a, action)
	if err == nil {
		cctx, cancel := context.WithTimeout(ctx, d.timeout)
		err = d.sms.Send(cctx, a.Customer.Phone, body)
		cancel()
	}
	if err != nil {
		log.Warn("sms notification failed", zap.Error(err))
		d.metrics.NotificationChannel(channelSMS, outcomeFailed)
		return domain.ChannelResult{Reason: "SMS service error: " + err.Error()}
	}
	d.metrics.NotificationChannel(channelSMS, outcomeSent)
	return domain.ChannelResult{Sent: true}
}

func (d *Dispatcher) createInApp(ctx context.Context, log *zap.Logger, a *domain.Appointment, action domain.NotificationAction) domain.InAppResult {
	if a.CustomerID == "" {
		d.metrics.NotificationChannel(channelInApp, outcomeSkipped)
		return domain.InAppResult{Reason: reasonNoCustomer}
	}

	title, message := d.templates.InApp(a, action)
	n := &domain.Notification{
		UserID:      a.CustomerID,
		UserType:    domain.UserTypeCustomer,
		Title:       title,
		Message:     message,
		Type:        string(action),
		RelatedID:   a.ID,
		RelatedType: domain.RelatedTypeAppointment,
	}
	if err := d.inbox.Create(ctx, n); err != nil {
		log.Warn("in-app notification failed", zap.Error(err))
		d.metrics.NotificationChannel(channelInApp, outcomeFailed)
		return domain.InAppResult{Reason: err.Error()}
	}
	d.metrics.NotificationChannel(channelInApp, outcomeSent)
	if d.broadcast != nil {
		d.broadcast.Publish(n)
	}
	return domain.InAppResult{Created: true}
}

func (d *Dispatcher) publishEvent(ctx context.Context, log *zap.Logger, a *domain.Appointment, action domain.NotificationAction) {
	if d.events == nil {
		return
	}
	cctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()
	if err := d.events.Publish(cctx, newLifecycleEvent(a, action)); err != nil {
		log.Warn("lifecycle event publish failed", zap.Error(err))
		d.metrics.NotificationChannel(channelEvents, outcomeFailed)
		return
	}
	d.metrics.NotificationChannel(channelEvents, outcomeSent)
}
