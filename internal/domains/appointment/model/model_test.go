package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()

	allowed := []struct{ from, to string }{
		{StatusRequested, StatusUpcoming},
		{StatusRequested, StatusCancelled},
		{StatusUpcoming, StatusRescheduled},
		{StatusUpcoming, StatusCompleted},
		{StatusUpcoming, StatusCancelled},
		{StatusUpcoming, StatusNoArrival},
		{StatusRescheduled, StatusCompleted},
		{StatusRescheduled, StatusCancelled},
		{StatusRescheduled, StatusNoArrival},
	}

	for _, tc := range allowed {
		assert.True(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}

	denied := []struct{ from, to string }{
		{StatusRequested, StatusCompleted},
		{StatusRequested, StatusNoArrival},
		{StatusRescheduled, StatusUpcoming},
		{StatusCompleted, StatusCancelled},
		{StatusCancelled, StatusUpcoming},
		{StatusNoArrival, StatusCompleted},
		{StatusUpcoming, StatusUpcoming},
	}

	for _, tc := range denied {
		assert.False(t, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStatesHaveNoOutgoingEdges(t *testing.T) {
	t.Parallel()

	every := []string{
		StatusRequested, StatusUpcoming, StatusRescheduled,
		StatusCompleted, StatusCancelled, StatusNoArrival,
	}

	for _, terminal := range []string{StatusCompleted, StatusCancelled, StatusNoArrival} {
		assert.True(t, IsTerminal(terminal))

		for _, to := range every {
			assert.False(t, CanTransition(terminal, to), "%s -> %s", terminal, to)
		}
	}

	for _, open := range []string{StatusRequested, StatusUpcoming, StatusRescheduled} {
		assert.False(t, IsTerminal(open))
	}
}

func TestIsValidStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidStatus(StatusNoArrival))
	assert.False(t, IsValidStatus("Pending"))
	assert.False(t, IsValidStatus(""))
}
