package domain

import (
	"time"

	"github.com/google/uuid"
)

// LateFeeCentsPerDay is charged per day past the planned end date, flat across
// all plan tiers.
const LateFeeCentsPerDay int64 = 5000

// Rental is the contract between a driver and a bike. It owns its plan and
// computes the settlement total; persistence is the caller's concern.
type Rental struct {
	ID             string     `json:"id"`
	DriverID       string     `json:"driver_id"`
	BikeID         string     `json:"bike_id"`
	Identifier     string     `json:"identifier"`
	StartDate      time.Time  `json:"start_date"`
	PlannedEndDate time.Time  `json:"planned_end_date"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	Plan           Plan       `json:"plan"`
}

// NewRental builds the aggregate. Rentals start the day after the booking
// request; the planned end is the start plus the plan duration.
func NewRental(driverID, bikeID, identifier string, requestedStart time.Time, planType PlanType) (*Rental, error) {
	plan, err := PlanFromType(planType)
	if err != nil {
		return nil, err
	}

	start := requestedStart.AddDate(0, 0, 1)
	return &Rental{
		ID:             uuid.NewString(),
		DriverID:       driverID,
		BikeID:         bikeID,
		Identifier:     identifier,
		StartDate:      start,
		PlannedEndDate: start.AddDate(0, 0, plan.Days),
		Plan:           plan,
	}, nil
}

// Close settles the rental and returns the total owed in cents. All
// comparisons are date-only; the time of day is discarded. The end date is set
// on the first call only; a repeated call recomputes the same total since the
// inputs are unchanged.
func (r *Rental) Close(returnDate time.Time) (int64, error) {
	ret := dateOnly(returnDate)
	start := dateOnly(r.StartDate)
	plannedEnd := dateOnly(r.PlannedEndDate)

	if ret.Before(start) {
		return 0, ErrReturnBeforeStart
	}

	if r.EndDate == nil {
		end := returnDate
		r.EndDate = &end
	}

	baseCost := int64(r.Plan.Days) * r.Plan.DailyRateCents

	switch {
	case ret.Equal(plannedEnd):
		return baseCost, nil
	case ret.Before(plannedEnd):
		// Early return: charge the used days plus a fine on the forfeited
		// value, not a fraction of the contract price.
		usedDays := int64(daysBetween(start, ret)) + 1
		unusedDays := int64(r.Plan.Days) - usedDays
		fine := unusedDays * r.Plan.DailyRateCents * r.Plan.EarlyReturnFinePct / 100
		return usedDays*r.Plan.DailyRateCents + fine, nil
	default:
		extraDays := int64(daysBetween(plannedEnd, ret))
		return baseCost + extraDays*LateFeeCentsPerDay, nil
	}
}

// Closed reports whether the rental has been settled.
func (r *Rental) Closed() bool { return r.EndDate != nil }

// EffectiveEndDate is the actual end date once settled, the planned end date
// while the rental is open.
func (r *Rental) EffectiveEndDate() time.Time {
	if r.EndDate != nil {
		return *r.EndDate
	}
	return r.PlannedEndDate
}

// ConflictsWith reports whether this rental's occupancy window touches the
// closed interval [start, end]. Both interval ends are inclusive, so a window
// ending the day before another begins does not conflict.
func (r *Rental) ConflictsWith(start, end time.Time) bool {
	return !dateOnly(r.StartDate).After(dateOnly(end)) &&
		!dateOnly(r.EffectiveEndDate()).Before(dateOnly(start))
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(dateOnly(to).Sub(dateOnly(from)) / (24 * time.Hour))
}
