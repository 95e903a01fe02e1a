package notifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/fixwellinc/household-services-platform-sub010/pkg/appointment"
)

// HandleAppointmentEvent maps an appointment lifecycle event to its
// notifications. Immediate sends go through the synchronous client and their
// final failure propagates to the caller; reminders are enqueued
// fire-and-forget.
//
// Unknown events are logged and ignored; they are not an error.
//
// Known gap, preserved from the original behavior: on an updated event a
// reminder already queued for the old appointment time is not cancelled, so
// a stale reminder referencing the outdated slot can still go out alongside
// the new one.
func (s *Service) HandleAppointmentEvent(ctx context.Context, event Event, appt appointment.Appointment, opts Options) error {
	switch event {
	case EventCreated:
		if _, err := s.SendConfirmationEmail(ctx, appt); err != nil {
			return err
		}
		s.ScheduleReminderEmail(appt, s.reminderLead)
		return nil

	case EventUpdated:
		if opts.OldAppointment == nil || opts.OldAppointment.ScheduledAt.Equal(appt.ScheduledAt) {
			return nil
		}
		if _, err := s.SendRescheduleEmail(ctx, appt, *opts.OldAppointment, opts.RescheduleReason); err != nil {
			return err
		}
		s.ScheduleReminderEmail(appt, s.reminderLead)
		return nil

	case EventCancelled:
		if _, err := s.SendCancellationEmail(ctx, appt, opts.CancellationReason, opts.BookingURL); err != nil {
			return err
		}
		return nil

	case EventCompleted:
		// Reserved extension point: no customer notification on completion.
		s.logger.InfoContext(ctx, "appointment completed, no notification",
			slog.String("appointment_id", appt.ID))
		return nil

	default:
		s.logger.WarnContext(ctx, "unknown appointment event ignored",
			slog.String("event", string(event)),
			slog.String("appointment_id", appt.ID))
		return nil
	}
}

// ScheduleReminderEmail enqueues a reminder to be dispatched lead before the
// appointment's scheduled time. When lead is not positive the configured
// default lead time applies. If the computed instant is not strictly in the
// future the call is a logged no-op: the queue is left unchanged.
func (s *Service) ScheduleReminderEmail(appt appointment.Appointment, lead time.Duration) {
	if lead <= 0 {
		lead = s.reminderLead
	}

	remindAt := appt.ScheduledAt.Add(-lead)
	if !remindAt.After(s.now()) {
		s.logger.Info("reminder time already passed, skipping",
			slog.String("appointment_id", appt.ID),
			slog.Time("reminder_at", remindAt))
		return
	}

	s.QueueNotification(TypeReminder, appt, Options{ScheduledFor: &remindAt})
}
