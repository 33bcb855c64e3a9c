// Package timestamp converts between the textual timestamps exchanged with
// the browser, the normalized instants kept by the store and the localized
// text written to exports.
package timestamp

import (
	"fmt"
	"strings"
	"time"

	// Embedded zone database so the display timezone resolves on hosts
	// without /usr/share/zoneinfo.
	_ "time/tzdata"

	"github.com/pkg/errors"
)

// ISOLayout is the normalized storage form, UTC with millisecond precision.
const ISOLayout = "2006-01-02T15:04:05.000Z"

// DateLayout is the calendar date form used by export filters.
const DateLayout = "2006-01-02"

// DefaultDisplayTimezone is used for rendering exported timestamps.
const DefaultDisplayTimezone = "America/Mexico_City"

// ErrMalformed is returned for strings that do not describe a point in time.
var ErrMalformed = errors.New("malformed timestamp")

// zoned layouts carry their own offset.
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	time.RFC1123Z,
	time.RFC1123,
}

// local layouts are interpreted in the caller supplied location.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04",
}

// Parse converts value into an absolute UTC instant. Date-time values without
// an offset are read in loc, date-only values are read as UTC midnight.
func Parse(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, ErrMalformed
	}
	if loc == nil {
		loc = time.UTC
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.UTC(), nil
		}
	}
	if t, err := time.Parse(DateLayout, value); err == nil {
		return t, nil
	}

	return time.Time{}, errors.Wrapf(ErrMalformed, "cannot parse %q", value)
}

// ParseDate returns UTC midnight of the calendar date named by value. Values
// carrying a time of day are read like Parse does, in loc when they have no
// offset, and truncated to their UTC date.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	t, err := Parse(value, loc)
	if err != nil {
		return time.Time{}, err
	}
	return StartOfDay(t), nil
}

// StartOfDay truncates t to midnight of its UTC calendar date.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NextDay returns midnight of the UTC calendar date following t's date.
func NextDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// Normalize rounds t to the precision kept in storage.
func Normalize(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// Format renders t in the normalized storage form.
func Format(t time.Time) string {
	return t.UTC().Format(ISOLayout)
}

// LoadLocation resolves a display timezone, falling back to the default
// for an empty name.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		name = DefaultDisplayTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, errors.Wrapf(err, "unknown timezone %q", name)
	}
	return loc, nil
}

// FormatLocal renders t in loc using the es-MX short date-time form,
// e.g. "10/1/2024, 5:00:00 p.m.".
func FormatLocal(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)

	period := "a.m."
	if t.Hour() >= 12 {
		period = "p.m."
	}

	return fmt.Sprintf("%d/%d/%d, %s %s",
		t.Day(), int(t.Month()), t.Year(), t.Format("3:04:05"), period)
}
