package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fixwellinc/household-services-platform-sub010/pkg/appointment"
	"github.com/fixwellinc/household-services-platform-sub010/pkg/email"
)

// QueueNotification enqueues a deferred notification and starts the
// dispatcher if it is idle. This path is fire-and-forget: delivery failures
// are retried per the shared policy and, once exhausted, logged and dropped.
// They never surface to the caller.
func (s *Service) QueueNotification(typ Type, appt appointment.Appointment, opts Options) {
	now := s.now()

	scheduledFor := now
	if opts.ScheduledFor != nil && opts.ScheduledFor.After(now) {
		scheduledFor = *opts.ScheduledFor
	}

	job := &Job{
		ID:           fmt.Sprintf("%s-%s-%d", appt.ID, typ, now.UnixNano()),
		Type:         typ,
		Appointment:  appt,
		Options:      opts,
		CreatedAt:    now,
		ScheduledFor: scheduledFor,
	}

	s.mu.Lock()
	s.queue = append(s.queue, job)
	start := !s.processing
	var gen uint64
	if start {
		s.processing = true
		s.drainGen++
		gen = s.drainGen
	}
	s.mu.Unlock()

	s.logger.Info("notification queued",
		slog.String("job_id", job.ID),
		slog.String("type", string(typ)),
		slog.String("appointment_id", appt.ID),
		slog.Time("scheduled_for", scheduledFor))

	if start {
		go s.drain(gen)
	}
}

// QueueStatus returns a snapshot of the queue and dispatcher state.
func (s *Service) QueueStatus() QueueStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]PendingNotification, 0, len(s.queue))
	for _, job := range s.queue {
		pending = append(pending, PendingNotification{
			ID:            job.ID,
			Type:          job.Type,
			AppointmentID: job.Appointment.ID,
			Attempts:      job.Attempts,
			ScheduledFor:  job.ScheduledFor,
		})
	}

	return QueueStatus{
		QueueLength:          len(s.queue),
		IsProcessing:         s.processing,
		PendingNotifications: pending,
	}
}

// ClearQueue discards all pending jobs and resets the dispatcher state. An
// active drain loop observes the cleared flag on its next iteration and
// exits. Intended for operational tooling and tests.
func (s *Service) ClearQueue() {
	s.mu.Lock()
	dropped := len(s.queue)
	s.queue = nil
	s.processing = false
	s.mu.Unlock()

	s.logger.Info("notification queue cleared", slog.Int("dropped", dropped))
}

// drain is the dispatcher loop. Exactly one drain runs per service at a
// time, guarded by the processing flag. Jobs are popped from the head; due
// jobs are delivered, not-yet-due jobs rotate to the tail unchanged. A fixed
// idle pause between iterations avoids a hot spin while the head of the
// queue is not yet due.
func (s *Service) drain(gen uint64) {
	ctx := context.Background()

	for {
		s.mu.Lock()
		if s.drainGen != gen {
			// Superseded by ClearQueue and a restarted dispatcher.
			s.mu.Unlock()
			return
		}
		if !s.processing || len(s.queue) == 0 {
			s.processing = false
			s.mu.Unlock()
			return
		}
		job := s.queue[0]
		s.queue = s.queue[1:]
		s.mu.Unlock()

		if s.now().Before(job.ScheduledFor) {
			s.requeue(job, gen)
		} else {
			s.dispatch(ctx, job, gen)
		}

		time.Sleep(s.idlePause)
	}
}

// dispatch attempts one delivery of a due job and applies the failure
// policy: template and unknown-type errors are dropped immediately,
// transient failures re-enqueue with linear backoff until retries are
// exhausted.
func (s *Service) dispatch(ctx context.Context, job *Job, gen uint64) {
	err := s.deliver(ctx, job)
	if err == nil {
		s.logger.Info("queued notification delivered",
			slog.String("job_id", job.ID),
			slog.String("type", string(job.Type)),
			slog.String("appointment_id", job.Appointment.ID))
		return
	}

	job.Attempts++

	// Rendering failures cannot succeed on retry; no caller is waiting, so
	// the job is dropped with a log record only.
	fatal := errors.Is(err, email.ErrTemplateNotFound) || errors.Is(err, email.ErrRenderFailed)

	if fatal || !s.policy.ShouldRetry(job.Attempts) {
		s.logger.Error("queued notification dropped",
			slog.String("job_id", job.ID),
			slog.String("type", string(job.Type)),
			slog.String("appointment_id", job.Appointment.ID),
			slog.Int("attempts", job.Attempts),
			slog.String("error", err.Error()))
		return
	}

	job.ScheduledFor = s.now().Add(s.policy.NextDelay(job.Attempts))
	s.logger.Warn("queued notification failed, will retry",
		slog.String("job_id", job.ID),
		slog.String("type", string(job.Type)),
		slog.Int("attempt", job.Attempts),
		slog.Time("next_attempt_at", job.ScheduledFor),
		slog.String("error", err.Error()))
	s.requeue(job, gen)
}

// requeue appends a job back to the tail. If the queue was cleared while the
// job was in flight, the job is discarded with it.
func (s *Service) requeue(job *Job, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.processing || s.drainGen != gen {
		return
	}
	s.queue = append(s.queue, job)
}

// deliver renders and sends a job once. Retry bookkeeping belongs to the
// dispatcher, not here.
func (s *Service) deliver(ctx context.Context, job *Job) error {
	var (
		templateKey string
		data        appointment.Fields
	)

	switch job.Type {
	case TypeConfirmation:
		templateKey = email.TemplateConfirmation
		data = appointment.FormatData(job.Appointment)
	case TypeReminder:
		templateKey = email.TemplateReminder
		data = appointment.FormatData(job.Appointment)
	case TypeCancellation:
		templateKey = email.TemplateCancellation
		data = s.cancellationFields(job.Appointment, job.Options.CancellationReason, job.Options.BookingURL)
	case TypeReschedule:
		templateKey = email.TemplateReschedule
		old := job.Appointment
		if job.Options.OldAppointment != nil {
			old = *job.Options.OldAppointment
		}
		data = rescheduleFields(job.Appointment, old, job.Options.RescheduleReason)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownType, job.Type)
	}

	msg, err := s.renderer.Render(ctx, templateKey, data)
	if err != nil {
		return fmt.Errorf("render %s: %w", templateKey, err)
	}
	msg.To = job.Appointment.CustomerEmail
	msg.Metadata = map[string]string{
		"appointment_id": job.Appointment.ID,
		"job_id":         job.ID,
	}

	if _, err := s.transport.Send(ctx, msg); err != nil {
		return fmt.Errorf("send %s: %w", templateKey, err)
	}
	return nil
}
