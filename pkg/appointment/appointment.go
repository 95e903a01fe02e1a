package appointment

import "time"

// Status represents the lifecycle status of an appointment.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Appointment is the booking record consumed by the notification core.
// The core never mutates appointments; it copies them by value into job
// snapshots so later changes to the source record cannot leak into
// pending notifications.
type Appointment struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	ServiceType     string    `json:"service_type"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	Duration        string    `json:"duration"`
	PropertyAddress string    `json:"property_address"`
	Notes           string    `json:"notes,omitempty"`
	Status          Status    `json:"status"`
}
