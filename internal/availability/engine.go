// Package availability holds the date arithmetic behind booking: blocked-day
// checks, range overlap, nights and price quotes.
//
// Every function is pure and total. Nothing here reads the clock, logs, or
// returns an error; bad input degrades to "blocked", "unavailable" or zero.
package availability

import (
	"github.com/m04kA/StayFinder-BookingService/internal/domain"
	"github.com/m04kA/StayFinder-BookingService/pkg/types"
)

// Engine evaluates dates against blocked ranges under a malformed range policy
type Engine struct {
	policy MalformedRangePolicy
}

// NewEngine creates an engine. An empty policy means DefaultPolicy.
func NewEngine(policy MalformedRangePolicy) *Engine {
	if policy == "" {
		policy = DefaultPolicy
	}
	return &Engine{policy: policy}
}

// Policy returns the malformed range policy in effect
func (e *Engine) Policy() MalformedRangePolicy {
	return e.policy
}

// IsDateBlocked reports whether candidate cannot be selected.
//
// A date is blocked when it is not a valid calendar day, when it falls before
// minDate (if minDate is set), or when it lies inside [start, end] of any
// blocked range.
func (e *Engine) IsDateBlocked(candidate, minDate types.CalendarDate, ranges []domain.DateRange) bool {
	if !candidate.IsValid() {
		return true
	}

	if !minDate.IsZero() {
		if minDate.IsInvalid() || candidate.Before(minDate) {
			return true
		}
	}

	for _, r := range ranges {
		if r.IsMalformed() {
			if e.policy == PolicyBlock {
				return true
			}
			continue
		}

		if !candidate.Before(r.StartDate) && !candidate.After(r.EndDate) {
			return true
		}
	}

	return false
}

// IsRangeAvailable reports whether no blocked range overlaps the closed
// interval [checkIn, checkOut]. Touching a blocked day at either edge counts
// as overlap. An unset endpoint means there is nothing to check yet.
func (e *Engine) IsRangeAvailable(checkIn, checkOut types.CalendarDate, ranges []domain.DateRange) bool {
	if checkIn.IsZero() || checkOut.IsZero() {
		return true
	}
	if checkIn.IsInvalid() || checkOut.IsInvalid() {
		return false
	}

	_, conflict := e.FirstConflict(checkIn, checkOut, ranges)
	return !conflict
}

// FirstConflict returns the first range that makes [checkIn, checkOut]
// unavailable. Both endpoints must be valid.
func (e *Engine) FirstConflict(checkIn, checkOut types.CalendarDate, ranges []domain.DateRange) (domain.DateRange, bool) {
	for _, r := range ranges {
		if r.IsMalformed() {
			if e.policy == PolicyBlock {
				return r, true
			}
			continue
		}

		// checkIn <= blockedEnd && checkOut >= blockedStart
		if !checkIn.After(r.EndDate) && !checkOut.Before(r.StartDate) {
			return r, true
		}
	}

	return domain.DateRange{}, false
}
