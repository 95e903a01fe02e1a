package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/fixwellinc/household-services-platform-sub010/pkg/appointment"
	"github.com/fixwellinc/household-services-platform-sub010/pkg/email"
	"github.com/fixwellinc/household-services-platform-sub010/pkg/retry"
)

// Defaults applied when the corresponding option is not set.
const (
	DefaultReminderLeadTime = 24 * time.Hour
	DefaultIdlePause        = 100 * time.Millisecond
	DefaultBookingURL       = "https://fixwellinc.com/book"
)

// Service is the appointment notification core: the synchronous email
// client, the lifecycle event router, and the deferred notification queue
// with its dispatcher. Construct one Service per process; all state is
// in-memory and bounded by process lifetime.
type Service struct {
	renderer  email.Renderer
	transport email.Transport
	policy    retry.Policy
	now       func() time.Time
	logger    *slog.Logger

	reminderLead      time.Duration
	idlePause         time.Duration
	defaultBookingURL string

	mu         sync.Mutex
	queue      []*Job
	processing bool
	// drainGen invalidates a running drain loop after ClearQueue so a
	// restarted dispatcher can never run alongside a stale one.
	drainGen uint64
}

// New creates a notification service on top of the given renderer and
// transport.
func New(renderer email.Renderer, transport email.Transport, opts ...Option) (*Service, error) {
	if renderer == nil {
		return nil, ErrRendererNil
	}
	if transport == nil {
		return nil, ErrTransportNil
	}

	options := &serviceOptions{
		clock:             time.Now,
		logger:            slog.Default(),
		reminderLead:      DefaultReminderLeadTime,
		idlePause:         DefaultIdlePause,
		defaultBookingURL: DefaultBookingURL,
	}

	for _, opt := range opts {
		opt(options)
	}

	return &Service{
		renderer:          renderer,
		transport:         transport,
		policy:            options.policy,
		now:               options.clock,
		logger:            options.logger,
		reminderLead:      options.reminderLead,
		idlePause:         options.idlePause,
		defaultBookingURL: options.defaultBookingURL,
	}, nil
}

// SendConfirmationEmail renders and delivers a booking confirmation,
// retrying transient transport failures per the retry policy. The final
// failure propagates to the caller once retries are exhausted.
func (s *Service) SendConfirmationEmail(ctx context.Context, appt appointment.Appointment) (email.Result, error) {
	return s.send(ctx, email.TemplateConfirmation, appt, appointment.FormatData(appt))
}

// SendReminderEmail renders and delivers an upcoming-visit reminder with the
// same retry contract as SendConfirmationEmail.
func (s *Service) SendReminderEmail(ctx context.Context, appt appointment.Appointment) (email.Result, error) {
	return s.send(ctx, email.TemplateReminder, appt, appointment.FormatData(appt))
}

// SendCancellationEmail renders and delivers a cancellation notice. Reason
// may be empty; bookingURL falls back to the configured default rebooking
// link when not supplied.
func (s *Service) SendCancellationEmail(ctx context.Context, appt appointment.Appointment, reason, bookingURL string) (email.Result, error) {
	return s.send(ctx, email.TemplateCancellation, appt, s.cancellationFields(appt, reason, bookingURL))
}

// SendRescheduleEmail renders and delivers a reschedule notice carrying both
// the old and the new formatted date and time.
func (s *Service) SendRescheduleEmail(ctx context.Context, newAppt, oldAppt appointment.Appointment, reason string) (email.Result, error) {
	return s.send(ctx, email.TemplateReschedule, newAppt, rescheduleFields(newAppt, oldAppt, reason))
}

// send is the synchronous delivery path. Rendering happens once: a template
// failure is fatal and never retried. Transport sends are attempted up to
// MaxAttempts times with linear backoff waits between them, and the last
// transport error propagates to the caller.
func (s *Service) send(ctx context.Context, templateKey string, appt appointment.Appointment, data appointment.Fields) (email.Result, error) {
	msg, err := s.renderer.Render(ctx, templateKey, data)
	if err != nil {
		return email.Result{}, fmt.Errorf("render %s: %w", templateKey, err)
	}
	msg.To = appt.CustomerEmail
	msg.Metadata = map[string]string{"appointment_id": appt.ID}

	attempts := 0
	for {
		result, err := s.transport.Send(ctx, msg)
		if err == nil {
			s.logger.InfoContext(ctx, "notification sent",
				slog.String("template", templateKey),
				slog.String("appointment_id", appt.ID),
				slog.String("message_id", result.MessageID))
			return result, nil
		}

		attempts++
		if !s.policy.ShouldRetry(attempts) {
			s.logger.ErrorContext(ctx, "notification failed permanently",
				slog.String("template", templateKey),
				slog.String("appointment_id", appt.ID),
				slog.Int("attempts", attempts),
				slog.String("error", err.Error()))
			return email.Result{}, errors.Join(ErrSendFailed, err)
		}

		s.logger.WarnContext(ctx, "notification send failed, retrying",
			slog.String("template", templateKey),
			slog.String("appointment_id", appt.ID),
			slog.Int("attempt", attempts),
			slog.String("error", err.Error()))

		if err := s.policy.Wait(ctx, attempts); err != nil {
			return email.Result{}, err
		}
	}
}

func (s *Service) cancellationFields(appt appointment.Appointment, reason, bookingURL string) appointment.Fields {
	if bookingURL == "" {
		bookingURL = s.defaultBookingURL
	}

	data := appointment.FormatData(appt)
	data["cancellationReason"] = reason
	data["bookingUrl"] = bookingURL
	return data
}

func rescheduleFields(newAppt, oldAppt appointment.Appointment, reason string) appointment.Fields {
	data := appointment.FormatData(newAppt)
	data["oldAppointmentDate"] = appointment.FormatDate(oldAppt.ScheduledAt)
	data["oldAppointmentTime"] = appointment.FormatTime(oldAppt.ScheduledAt)
	data["rescheduleReason"] = reason
	return data
}
