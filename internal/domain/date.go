package domain

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ToDate truncates t to a calendar date in UTC. Reservation ranges are
// date-granular, so everything below the day is dropped before comparing.
func ToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether the half-open ranges [aIn, aOut) and
// [bIn, bOut) intersect: aIn < bOut && bIn < aOut. Ranges that merely
// touch (one check-out equals the other check-in) do not overlap.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}
