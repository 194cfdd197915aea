package appointment

import (
	"strings"
	"time"

	"salonbooking/internal/pkg/apperr"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// DateRange is an inclusive window on appointment_date. Nil bounds are open.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// resolveDateRange turns a named range or explicit bounds into UTC instants.
// Day boundaries are taken in loc. A named range wins over explicit bounds.
func resolveDateRange(named, start, end string, now time.Time, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.UTC
	}
	today := startOfDay(now.In(loc))

	switch strings.ToLower(strings.TrimSpace(named)) {
	case "", "all":
	case "today":
		return window(today, today.AddDate(0, 0, 1)), nil
	case "tomorrow":
		tomorrow := today.AddDate(0, 0, 1)
		return window(tomorrow, tomorrow.AddDate(0, 0, 1)), nil
	case "week":
		return window(today, today.AddDate(0, 0, 7)), nil
	case "month":
		return window(today, today.AddDate(0, 1, 0)), nil
	default:
		return DateRange{}, apperr.Validation(msgInvalidRange)
	}

	var r DateRange
	if s := strings.TrimSpace(start); s != "" {
		t, _, err := parseBound(s, loc)
		if err != nil {
			return DateRange{}, apperr.Validation(msgInvalidStart)
		}
		from := t.UTC()
		r.From = &from
	}
	if s := strings.TrimSpace(end); s != "" {
		t, dateOnly, err := parseBound(s, loc)
		if err != nil {
			return DateRange{}, apperr.Validation(msgInvalidEnd)
		}
		if dateOnly {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		to := t.UTC()
		r.To = &to
	}
	return r, nil
}

// window covers [from, until) as an inclusive range ending one nanosecond before until.
func window(from, until time.Time) DateRange {
	f := from.UTC()
	t := until.Add(-time.Nanosecond).UTC()
	return DateRange{From: &f, To: &t}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func parseBound(s string, loc *time.Location) (time.Time, bool, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	return t, false, err
}

// localLayouts are accepted for appointmentDate values without a zone offset.
var localLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// parseAppointmentDate reads an ISO-8601 instant. Values without an offset
// are wall-clock times in loc.
func parseAppointmentDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperr.Validation(msgInvalidDate)
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}

func totalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
