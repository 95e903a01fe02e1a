package appointment

import (
	"strings"
	"time"
)

// Sentinel values returned for unparseable date/time input.
// Callers treat these as valid display output, not as errors.
const (
	InvalidDate = "Invalid Date"
	InvalidTime = "Invalid Time"
)

// Fields is the flat set of display-ready values consumed by email templates.
type Fields map[string]string

// FormatData converts an appointment into the template field set.
// Notes is always present, as an empty string when the record has none.
func FormatData(appt Appointment) Fields {
	return Fields{
		"customerName":       appt.CustomerName,
		"serviceType":        appt.ServiceType,
		"appointmentDate":    FormatDate(appt.ScheduledAt),
		"appointmentTime":    FormatTime(appt.ScheduledAt),
		"duration":           appt.Duration,
		"propertyAddress":    appt.PropertyAddress,
		"confirmationNumber": strings.ToUpper(appt.ID),
		"notes":              appt.Notes,
	}
}

// FormatDate renders a date as a full weekday, month name, day and year,
// e.g. "Friday, December 15, 2023". It accepts a time.Time or an ISO-8601
// string and returns the InvalidDate sentinel on unparseable input.
func FormatDate(v any) string {
	t, ok := coerceTime(v)
	if !ok {
		return InvalidDate
	}
	return t.Format("Monday, January 2, 2006")
}

// FormatTime renders a time of day on a 12-hour clock with an AM/PM suffix,
// e.g. "2:00 PM". It accepts the same inputs as FormatDate and returns the
// InvalidTime sentinel on unparseable input.
func FormatTime(v any) string {
	t, ok := coerceTime(v)
	if !ok {
		return InvalidTime
	}
	return t.Format("3:04 PM")
}

// isoLayouts are tried in order when coercing string input.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func coerceTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		if t.IsZero() {
			return time.Time{}, false
		}
		return t, true
	case *time.Time:
		if t == nil || t.IsZero() {
			return time.Time{}, false
		}
		return *t, true
	case string:
		for _, layout := range isoLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed, true
			}
		}
		return time.Time{}, false
	default:
		return time.Time{}, false
	}
}
