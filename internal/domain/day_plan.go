package domain

import "time"

// DailyHours is the activity time budget of a single day.
const DailyHours = 8.0

// DayPlan holds the activities scheduled on one calendar day.
// Activities keep packing order.
type DayPlan struct {
	Day        int       `json:"day"`
	Date       time.Time `json:"date"`
	Activities []POI     `json:"activities"`
	remaining  float64
}

func NewDayPlan(day int, date time.Time) *DayPlan {
	return &DayPlan{
		Day:        day,
		Date:       date,
		Activities: []POI{},
		remaining:  DailyHours,
	}
}

// HasTime reports whether any of the day's budget is left.
func (d *DayPlan) HasTime() bool { return d.remaining > 0 }

// Schedule appends p when it fits the remaining budget and reports whether it did.
func (d *DayPlan) Schedule(p POI) bool {
	if p.DurationHours > d.remaining {
		return false
	}
	d.Activities = append(d.Activities, p)
	d.remaining -= p.DurationHours
	return true
}

// ScheduledHours sums the duration of the scheduled activities.
func (d DayPlan) ScheduledHours() float64 {
	total := 0.0
	for _, a := range d.Activities {
		total += a.DurationHours
	}
	return total
}

// DateString formats the day's date as YYYY-MM-DD.
func (d DayPlan) DateString() string { return d.Date.Format(time.DateOnly) }
