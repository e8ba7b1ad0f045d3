package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusApproved,
	BookingStatusRejected,
	BookingStatusCancelled,
}

func TestRequestTransition_AllPairs(t *testing.T) {
	allowed := map[[2]BookingStatus]bool{
		{BookingStatusPending, BookingStatusApproved}:   true,
		{BookingStatusPending, BookingStatusRejected}:   true,
		{BookingStatusApproved, BookingStatusCancelled}: true,
	}

	accepted := 0
	for _, from := range allStatuses {
		for _, to := range allStatuses {
			got, err := RequestTransition(from, to)
			if allowed[[2]BookingStatus{from, to}] {
				require.NoError(t, err, "%s -> %s", from, to)
				assert.Equal(t, to, got)
				accepted++
				continue
			}
			require.Error(t, err, "%s -> %s", from, to)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Empty(t, got)
		}
	}

	assert.Equal(t, 3, accepted)
}

func TestRequestTransition_ErrorNamesBothStates(t *testing.T) {
	_, err := RequestTransition(BookingStatusApproved, BookingStatusPending)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "APPROVED")
	assert.Contains(t, err.Error(), "PENDING")
}

func TestRequestTransition_TerminalStatesAreFinal(t *testing.T) {
	for _, from := range []BookingStatus{BookingStatusRejected, BookingStatusCancelled} {
		assert.True(t, from.Terminal())
		for _, to := range allStatuses {
			_, err := RequestTransition(from, to)
			assert.ErrorIs(t, err, ErrInvalidTransition)
		}
	}
}

func TestRequestTransition_UnknownStatus(t *testing.T) {
	_, err := RequestTransition("ARCHIVED", BookingStatusApproved)
	assert.ErrorIs(t, err, ErrUnknownStatus)

	_, err = RequestTransition(BookingStatusPending, "approved")
	assert.ErrorIs(t, err, ErrUnknownStatus)
	assert.NotErrorIs(t, err, ErrInvalidTransition)
}

func TestRequestTransition_ApproveThenCancel(t *testing.T) {
	status, err := RequestTransition(BookingStatusPending, BookingStatusApproved)
	require.NoError(t, err)
	require.Equal(t, BookingStatusApproved, status)

	_, err = RequestTransition(status, BookingStatusPending)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	status, err = RequestTransition(status, BookingStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, BookingStatusCancelled, status)
}

func TestParseBookingStatus(t *testing.T) {
	for _, s := range allStatuses {
		got, err := ParseBookingStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseBookingStatus("DONE")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	_, err = ParseBookingStatus("")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestBookingStatus_Active(t *testing.T) {
	assert.True(t, BookingStatusPending.Active())
	assert.True(t, BookingStatusApproved.Active())
	assert.False(t, BookingStatusRejected.Active())
	assert.False(t, BookingStatusCancelled.Active())
	assert.False(t, BookingStatus("OTHER").Active())
}
