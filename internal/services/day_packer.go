package services

import (
	"time"
	"travel-planner-service/internal/domain"
)

// PackDays partitions pois across days using a first-fit-forward policy.
//
// A single cursor walks pois once. Each day starts with domain.DailyHours
// and takes the POI under the cursor when it fits; the cursor advances
// either way, so a POI that does not fit is dropped for good rather than
// deferred. Nothing is reordered or revisited. When the pool runs out,
// the remaining days are emitted with empty activity lists.
func PackDays(pois []domain.POI, startDate time.Time, days int) []domain.DayPlan {
	plans := make([]domain.DayPlan, 0, max(days, 0))

	idx := 0
	for day := 0; day < days; day++ {
		plan := domain.NewDayPlan(day+1, startDate.AddDate(0, 0, day))

		for plan.HasTime() && idx < len(pois) {
			plan.Schedule(pois[idx])
			idx++
		}

		plans = append(plans, *plan)
	}

	return plans
}
