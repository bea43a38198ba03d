// Package redtag implements the booking restriction applied to customers who
// miss an appointment without cancelling. A flagged customer cannot book again
// until the flag expires.
package redtag

import "time"

// Flag is the red-tag state carried on a customer record.
type Flag struct {
	Tagged    bool
	ExpiresAt time.Time
}

// Restricted reports whether the flag currently blocks booking. A raised flag
// past its expiry no longer restricts, even before the record is cleaned up.
func Restricted(flag Flag, now time.Time) bool {
	return flag.Tagged && now.Before(flag.ExpiresAt)
}

// DaysLeft reports the remaining restriction in whole days, counting the
// current partial day. A flag expiring later today still reports 1, so the
// message shown to the customer never claims zero days while booking is
// still blocked.
func DaysLeft(flag Flag, now time.Time) int {
	if !Restricted(flag, now) {
		return 0
	}

	wholeDays := int(flag.ExpiresAt.Sub(now).Hours() / 24)

	return wholeDays + 1
}

// Raise produces the flag applied when a customer misses an appointment.
func Raise(now time.Time, days int) Flag {
	return Flag{
		Tagged:    true,
		ExpiresAt: now.Add(time.Duration(days) * 24 * time.Hour),
	}
}
