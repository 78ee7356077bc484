package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// now is fixed at 08:00 so any same-day business-hours window is bookable.
var policyNow = time.Date(2025, time.March, 12, 8, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return time.Date(2025, time.March, 12, hour, min, 0, 0, time.UTC)
}

func TestValidateBookingTime(t *testing.T) {
	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{"one hour mid-day", at(10, 0), at(11, 0), nil},
		{"minimum 30 minutes", at(10, 0), at(10, 30), nil},
		{"maximum 4 hours", at(9, 0), at(13, 0), nil},
		{"opens at 9", at(9, 0), at(9, 30), nil},
		{"ends exactly at 18:00", at(17, 45), at(18, 0), nil},

		{"start in the past", at(7, 0), at(10, 0), ErrPastTimeSlot},
		{"end equals start", at(10, 0), at(10, 0), ErrInvalidDuration},
		{"end before start", at(11, 0), at(10, 0), ErrInvalidDuration},
		{"29 minutes", at(10, 0), at(10, 29), ErrInvalidDuration},
		{"241 minutes", at(9, 0), at(13, 1), ErrInvalidDuration},
		{"starts before 9", at(8, 30), at(9, 30), ErrOutsideBusinessHours},
		{"ends at 18:15", at(17, 45), at(18, 15), ErrOutsideBusinessHours},
		{"ends at 18:01", at(17, 30), at(18, 1), ErrOutsideBusinessHours},
		{"ends at 18:00:30", at(17, 30), at(18, 0).Add(30 * time.Second), ErrOutsideBusinessHours},
		{"ends after 18", at(16, 0), at(19, 0), ErrOutsideBusinessHours},
		{"tomorrow", at(10, 0).AddDate(0, 0, 1), at(11, 0).AddDate(0, 0, 1), ErrNotSameDay},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateBookingTime(tc.start, tc.end, policyNow)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestValidateBookingTimeRuleOrder(t *testing.T) {
	// A past window that also violates duration reports the past rejection:
	// the first failing rule wins.
	err := validateBookingTime(at(7, 0), at(7, 10), policyNow)
	assert.ErrorIs(t, err, ErrPastTimeSlot)

	// Yesterday's otherwise-valid window fails as past, not as wrong-day.
	y := at(10, 0).AddDate(0, 0, -1)
	assert.ErrorIs(t, validateBookingTime(y, y.Add(time.Hour), policyNow), ErrPastTimeSlot)
}

func TestValidateBookingTimeOffsetIndependent(t *testing.T) {
	tokyo := time.FixedZone("UTC+9", 9*60*60)

	// The same instants expressed with a different offset get the same
	// decision: 10:00-11:00 UTC is 19:00-20:00 at +09:00.
	assert.NoError(t, validateBookingTime(at(10, 0), at(11, 0), policyNow))
	assert.NoError(t, validateBookingTime(at(10, 0).In(tokyo), at(11, 0).In(tokyo), policyNow))

	assert.ErrorIs(t, validateBookingTime(at(17, 45), at(18, 15), policyNow), ErrOutsideBusinessHours)
	assert.ErrorIs(t, validateBookingTime(at(17, 45).In(tokyo), at(18, 15).In(tokyo), policyNow), ErrOutsideBusinessHours)

	// The clock's zone governs the wall-clock rules: a client-side 10:00 at
	// +09:00 is 01:00 on the service clock, which is in the past.
	early := time.Date(2025, time.March, 12, 10, 0, 0, 0, tokyo)
	assert.ErrorIs(t, validateBookingTime(early, early.Add(time.Hour), policyNow), ErrPastTimeSlot)
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2025, time.March, 12, 14, 37, 12, 0, time.UTC)
	assert.Equal(t, time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), startOfDay(ts))
}
