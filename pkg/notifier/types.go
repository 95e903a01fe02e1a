package notifier

import (
	"time"

	"github.com/fixwellinc/household-services-platform-sub010/pkg/appointment"
)

// Type identifies the kind of notification a job delivers.
type Type string

const (
	TypeConfirmation Type = "confirmation"
	TypeReminder     Type = "reminder"
	TypeCancellation Type = "cancellation"
	TypeReschedule   Type = "reschedule"
)

// Valid reports whether the type is one of the known notification types.
func (t Type) Valid() bool {
	switch t {
	case TypeConfirmation, TypeReminder, TypeCancellation, TypeReschedule:
		return true
	}
	return false
}

// Event is an appointment lifecycle transition reported by the booking
// subsystem.
type Event string

const (
	EventCreated   Event = "created"
	EventUpdated   Event = "updated"
	EventCancelled Event = "cancelled"
	EventCompleted Event = "completed"
)

// Options carries type-specific extra data for a notification.
type Options struct {
	// CancellationReason is included in cancellation messages when present.
	CancellationReason string

	// BookingURL overrides the configured default rebooking link.
	BookingURL string

	// OldAppointment is the pre-update record for reschedule notifications.
	OldAppointment *appointment.Appointment

	// RescheduleReason is included in reschedule messages when present.
	RescheduleReason string

	// ScheduledFor defers dispatch of a queued notification until the given
	// instant. Past or absent values mean the job is due immediately.
	ScheduledFor *time.Time
}

// Job is a deferred notification held in the queue. The appointment is a
// by-value snapshot captured at enqueue time; later changes to the source
// record do not affect a pending job.
type Job struct {
	ID           string
	Type         Type
	Appointment  appointment.Appointment
	Options      Options
	Attempts     int
	CreatedAt    time.Time
	ScheduledFor time.Time
}

// PendingNotification is the queue-status view of a single job.
type PendingNotification struct {
	ID            string    `json:"id"`
	Type          Type      `json:"type"`
	AppointmentID string    `json:"appointment_id"`
	Attempts      int       `json:"attempts"`
	ScheduledFor  time.Time `json:"scheduled_for"`
}

// QueueStatus is a point-in-time snapshot of the queue and dispatcher state.
type QueueStatus struct {
	QueueLength          int                   `json:"queue_length"`
	IsProcessing         bool                  `json:"is_processing"`
	PendingNotifications []PendingNotification `json:"pending_notifications"`
}
