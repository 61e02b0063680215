package booking

import (
	"testing"

	"lenslink/models"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTransitions(t *testing.T) {
	table := DefaultTransitions()

	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{models.BookingStatusPending, models.BookingStatusAccepted, true},
		{models.BookingStatusPending, models.BookingStatusRejected, true},
		{models.BookingStatusPending, models.BookingStatusCompleted, false},
		{models.BookingStatusPending, models.BookingStatusPending, false},

		{models.BookingStatusAccepted, models.BookingStatusCompleted, true},
		{models.BookingStatusAccepted, models.BookingStatusRejected, true},
		{models.BookingStatusAccepted, models.BookingStatusPending, false},
		{models.BookingStatusAccepted, models.BookingStatusAccepted, false},

		{models.BookingStatusRejected, models.BookingStatusPending, false},
		{models.BookingStatusRejected, models.BookingStatusAccepted, false},
		{models.BookingStatusRejected, models.BookingStatusCompleted, false},
		{models.BookingStatusRejected, models.BookingStatusRejected, false},

		{models.BookingStatusCompleted, models.BookingStatusPending, false},
		{models.BookingStatusCompleted, models.BookingStatusAccepted, false},
		{models.BookingStatusCompleted, models.BookingStatusRejected, false},
		{models.BookingStatusCompleted, models.BookingStatusCompleted, false},
	}

	for _, tc := range cases {
		got := table.CanTransition(tc.from, tc.to)
		assert.Equalf(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestTransitionTableUnknownStatus(t *testing.T) {
	table := DefaultTransitions()

	assert.False(t, table.CanTransition("cancelled", models.BookingStatusAccepted))
	assert.False(t, table.CanTransition(models.BookingStatusPending, "cancelled"))
	assert.Empty(t, table.Allowed("cancelled"))
}

func TestTransitionTableAllowed(t *testing.T) {
	table := DefaultTransitions()

	assert.ElementsMatch(t,
		[]string{models.BookingStatusAccepted, models.BookingStatusRejected},
		table.Allowed(models.BookingStatusPending))
	assert.ElementsMatch(t,
		[]string{models.BookingStatusCompleted, models.BookingStatusRejected},
		table.Allowed(models.BookingStatusAccepted))
	assert.Empty(t, table.Allowed(models.BookingStatusRejected))
	assert.Empty(t, table.Allowed(models.BookingStatusCompleted))
}

func TestInvalidTransitionErrorMessage(t *testing.T) {
	err := &InvalidTransitionError{
		From:    models.BookingStatusPending,
		To:      models.BookingStatusCompleted,
		Allowed: []string{models.BookingStatusAccepted, models.BookingStatusRejected},
	}
	assert.Equal(t,
		`Invalid status transition. Cannot change from "pending" to "completed". Allowed: accepted, rejected`,
		err.Error())

	terminal := &InvalidTransitionError{From: models.BookingStatusCompleted, To: models.BookingStatusPending}
	assert.Equal(t,
		`Invalid status transition. Cannot change from "completed" to "pending". Allowed: none`,
		terminal.Error())
}
