// Package schedule holds the pure slot logic for the daily booking grid:
// the fixed catalog of one-hour slots, the Available/Booked/Past classifier
// and the selection state used while a booking is being composed. Nothing in
// here touches the store; callers feed it the day's appointments and a clock.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Slots is the fixed booking grid: eleven one-hour slots from 7 AM to 6 PM.
var Slots = []string{
	"7:00 AM - 8:00 AM",
	"8:00 AM - 9:00 AM",
	"9:00 AM - 10:00 AM",
	"10:00 AM - 11:00 AM",
	"11:00 AM - 12:00 PM",
	"12:00 PM - 1:00 PM",
	"1:00 PM - 2:00 PM",
	"2:00 PM - 3:00 PM",
	"3:00 PM - 4:00 PM",
	"4:00 PM - 5:00 PM",
	"5:00 PM - 6:00 PM",
}

type Status string

const (
	StatusAvailable Status = "Available"
	StatusBooked    Status = "Booked"
	StatusPast      Status = "Past"
)

// Entry is the slice of an appointment the classifier needs: when it starts,
// its lifecycle status and its service category.
type Entry struct {
	StartsAt time.Time
	Status   string
	Category string
}

const cancelledStatus = "Cancelled"

// Clock is a wall-clock time of day on a 24-hour dial.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses the start of a slot label ("9:00 AM - 10:00 AM", or a bare
// "9:00 AM") into a 24-hour Clock. Noon stays 12, midnight becomes 0. A label
// that does not parse is a programming error in the catalog, not user input.
func ParseClock(label string) (Clock, error) {
	start := label
	if idx := strings.Index(label, " - "); idx >= 0 {
		start = label[:idx]
	}

	timePart, period, ok := strings.Cut(start, " ")
	if !ok {
		return Clock{}, fmt.Errorf("malformed slot label %q: missing AM/PM suffix", label)
	}

	hourStr, minuteStr, ok := strings.Cut(timePart, ":")
	if !ok {
		return Clock{}, fmt.Errorf("malformed slot label %q: missing minutes", label)
	}

	hour, err := strconv.Atoi(hourStr)
	if err != nil {
		return Clock{}, fmt.Errorf("malformed slot label %q: %w", label, err)
	}

	minute, err := strconv.Atoi(minuteStr)
	if err != nil {
		return Clock{}, fmt.Errorf("malformed slot label %q: %w", label, err)
	}

	if hour < 1 || hour > 12 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("malformed slot label %q: hour/minute out of range", label)
	}

	switch period {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	default:
		return Clock{}, fmt.Errorf("malformed slot label %q: unknown period %q", label, period)
	}

	return Clock{Hour: hour, Minute: minute}, nil
}

// Instant anchors a slot label on the given day, in the day's location.
func Instant(label string, day time.Time) (time.Time, error) {
	clock, err := ParseClock(label)
	if err != nil {
		return time.Time{}, err
	}

	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour, clock.Minute, 0, 0, day.Location()), nil
}

// LabelFor maps an instant back to the catalog slot starting at that minute.
// The second return is false when the instant does not line up with any slot,
// which rejects bookings at arbitrary times.
func LabelFor(at time.Time) (string, bool) {
	for _, label := range Slots {
		slotAt, err := Instant(label, at)
		if err != nil {
			continue
		}

		if slotAt.Truncate(time.Minute).Equal(at.Truncate(time.Minute)) {
			return label, true
		}
	}

	return "", false
}

// Classify reports whether a slot on the given day is Available, Booked or
// Past. Booked wins over Past: an occupied slot stays Booked even once its
// start time has gone by.
//
// A non-empty category limits the conflict check to appointments of that
// category. An empty category conflicts against every category, since a slot
// occupied under any category cannot be double-sold on an unfiltered grid.
func Classify(label string, day time.Time, entries []Entry, category string, now time.Time) (Status, error) {
	at, err := Instant(label, day)
	if err != nil {
		return "", err
	}

	if occupied(at, entries, category) {
		return StatusBooked, nil
	}

	if at.Before(now) {
		return StatusPast, nil
	}

	return StatusAvailable, nil
}

// occupied reports whether any non-cancelled entry starts at the same minute.
func occupied(at time.Time, entries []Entry, category string) bool {
	for _, entry := range entries {
		if entry.Status == cancelledStatus {
			continue
		}

		if category != "" && entry.Category != category {
			continue
		}

		if entry.StartsAt.Truncate(time.Minute).Equal(at.Truncate(time.Minute)) {
			return true
		}
	}

	return false
}
