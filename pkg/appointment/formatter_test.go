package appointment_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fixwellinc/household-services-platform-sub010/pkg/appointment"
)

func TestFormatDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{
			name:  "time value",
			input: time.Date(2023, time.December, 15, 14, 0, 0, 0, time.UTC),
			want:  "Friday, December 15, 2023",
		},
		{
			name:  "iso string with zone",
			input: "2023-12-15T14:00:00Z",
			want:  "Friday, December 15, 2023",
		},
		{
			name:  "iso string without zone",
			input: "2023-12-15T14:00:00",
			want:  "Friday, December 15, 2023",
		},
		{
			name:  "date only string",
			input: "2023-12-15",
			want:  "Friday, December 15, 2023",
		},
		{
			name:  "unparseable string",
			input: "invalid-date",
			want:  "Invalid Date",
		},
		{
			name:  "empty string",
			input: "",
			want:  "Invalid Date",
		},
		{
			name:  "zero time",
			input: time.Time{},
			want:  "Invalid Date",
		},
		{
			name:  "nil input",
			input: nil,
			want:  "Invalid Date",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, appointment.FormatDate(tt.input))
		})
	}
}

func TestFormatTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input any
		want  string
	}{
		{
			name:  "afternoon time",
			input: time.Date(2023, time.December, 15, 14, 0, 0, 0, time.UTC),
			want:  "2:00 PM",
		},
		{
			name:  "morning time from string",
			input: "2023-12-15T09:30:00Z",
			want:  "9:30 AM",
		},
		{
			name:  "midnight",
			input: time.Date(2023, time.December, 15, 0, 0, 0, 0, time.UTC),
			want:  "12:00 AM",
		},
		{
			name:  "unparseable string",
			input: "invalid-date",
			want:  "Invalid Time",
		},
		{
			name:  "unsupported type",
			input: 42,
			want:  "Invalid Time",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, appointment.FormatTime(tt.input))
		})
	}
}

func TestFormatData(t *testing.T) {
	t.Parallel()

	t.Run("full record", func(t *testing.T) {
		t.Parallel()

		appt := appointment.Appointment{
			ID:              "apt-123abc",
			CustomerName:    "Jane Cooper",
			CustomerEmail:   "jane@example.com",
			ServiceType:     "Deep Cleaning",
			ScheduledAt:     time.Date(2023, time.December, 15, 14, 0, 0, 0, time.UTC),
			Duration:        "2 hours",
			PropertyAddress: "742 Evergreen Terrace",
			Notes:           "Gate code 4411",
			Status:          appointment.StatusConfirmed,
		}

		fields := appointment.FormatData(appt)

		require.NotNil(t, fields)
		assert.Equal(t, "Jane Cooper", fields["customerName"])
		assert.Equal(t, "Deep Cleaning", fields["serviceType"])
		assert.Equal(t, "Friday, December 15, 2023", fields["appointmentDate"])
		assert.Equal(t, "2:00 PM", fields["appointmentTime"])
		assert.Equal(t, "2 hours", fields["duration"])
		assert.Equal(t, "742 Evergreen Terrace", fields["propertyAddress"])
		assert.Equal(t, "APT-123ABC", fields["confirmationNumber"])
		assert.Equal(t, "Gate code 4411", fields["notes"])
	})

	t.Run("missing notes yields empty string", func(t *testing.T) {
		t.Parallel()

		fields := appointment.FormatData(appointment.Appointment{ID: "apt-1"})

		notes, ok := fields["notes"]
		require.True(t, ok, "notes key must always be present")
		assert.Equal(t, "", notes)
	})
}
