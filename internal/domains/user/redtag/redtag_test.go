package redtag

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var base = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func TestRestricted(t *testing.T) {
	t.Parallel()

	assert.False(t, Restricted(Flag{}, base))

	active := Flag{Tagged: true, ExpiresAt: base.Add(48 * time.Hour)}
	assert.True(t, Restricted(active, base))

	// An expired flag no longer blocks, raised bit or not.
	expired := Flag{Tagged: true, ExpiresAt: base.Add(-time.Hour)}
	assert.False(t, Restricted(expired, base))

	// Expiry boundary is exclusive.
	boundary := Flag{Tagged: true, ExpiresAt: base}
	assert.False(t, Restricted(boundary, base))
}

func TestDaysLeft(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		expiresIn time.Duration
		want      int
	}{
		{"expires later today", 6 * time.Hour, 1},
		{"expires tomorrow", 30 * time.Hour, 2},
		{"full three day tag", 72 * time.Hour, 4},
		{"just under three days", 72*time.Hour - time.Minute, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			flag := Flag{Tagged: true, ExpiresAt: base.Add(tc.expiresIn)}
			assert.Equal(t, tc.want, DaysLeft(flag, base))
		})
	}

	assert.Zero(t, DaysLeft(Flag{}, base))
	assert.Zero(t, DaysLeft(Flag{Tagged: true, ExpiresAt: base.Add(-time.Hour)}, base))
}

func TestRaise(t *testing.T) {
	t.Parallel()

	flag := Raise(base, 3)
	assert.True(t, flag.Tagged)
	assert.Equal(t, base.Add(72*time.Hour), flag.ExpiresAt)
	assert.True(t, Restricted(flag, base))
	assert.Equal(t, 3, DaysLeft(flag, base.Add(time.Minute)))
}
