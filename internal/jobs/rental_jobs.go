package jobs

import (
	"context"
	"time"
)

// ReportOverdueRentals logs every open rental whose planned end date has
// passed without a return. The report is operational only; it does not mutate
// rentals.
func (jr *JobRunner) ReportOverdueRentals() {
	jr.runWithRecovery("ReportOverdueRentals", func() {
		ctx := context.Background()
		now := time.Now().UTC()

		overdue, err := jr.rentalRepo.ListOverdue(ctx, now)
		if err != nil {
			jr.log.Error("failed to list overdue rentals", "error", err)
			return
		}

		for _, rt := range overdue {
			jr.log.Warn("rental overdue",
				"rental_id", rt.ID,
				"identifier", rt.Identifier,
				"bike_id", rt.BikeID,
				"driver_id", rt.DriverID,
				"planned_end_date", rt.PlannedEndDate.Format("2006-01-02"),
				"days_overdue", int(now.Sub(rt.PlannedEndDate).Hours()/24))
		}
		jr.log.Info("overdue rentals reported", "count", len(overdue))
	})
}
