package domain

type PlanType string

const (
	PlanDays7  PlanType = "DAYS_7"
	PlanDays15 PlanType = "DAYS_15"
	PlanDays30 PlanType = "DAYS_30"
	PlanDays45 PlanType = "DAYS_45"
	PlanDays50 PlanType = "DAYS_50"
)

// Plan is the immutable pricing policy of a rental tier. Every field is
// deterministic given the type; plans are never stored independently.
type Plan struct {
	Type               PlanType `json:"type"`
	Days               int      `json:"days"`
	DailyRateCents     int64    `json:"daily_rate_cents"`
	EarlyReturnFinePct int64    `json:"early_return_fine_pct"`
}

// PlanFromType resolves the fixed catalog. The fine percentage applies only to
// the two shortest tiers.
func PlanFromType(t PlanType) (Plan, error) {
	switch t {
	case PlanDays7:
		return Plan{Type: t, Days: 7, DailyRateCents: 3000, EarlyReturnFinePct: 20}, nil
	case PlanDays15:
		return Plan{Type: t, Days: 15, DailyRateCents: 2800, EarlyReturnFinePct: 40}, nil
	case PlanDays30:
		return Plan{Type: t, Days: 30, DailyRateCents: 2200, EarlyReturnFinePct: 0}, nil
	case PlanDays45:
		return Plan{Type: t, Days: 45, DailyRateCents: 2000, EarlyReturnFinePct: 0}, nil
	case PlanDays50:
		return Plan{Type: t, Days: 50, DailyRateCents: 1800, EarlyReturnFinePct: 0}, nil
	default:
		return Plan{}, ErrInvalidPlanType
	}
}
