package domain

import "time"

// Itinerary is the result of one local synthesis run.
// A new generation supersedes the previous Itinerary; it is never mutated in place.
type Itinerary struct {
	ID              string      `json:"id"`
	CreatedAt       time.Time   `json:"created_at"`
	OriginName      string      `json:"origin_name"`
	DestinationName string      `json:"destination_name"`
	Origin          Coordinates `json:"origin"`
	Destination     Coordinates `json:"destination"`
	StartDate       time.Time   `json:"start_date"`
	Budget          int         `json:"budget"`
	Interests       []string    `json:"interests"`
	Days            []DayPlan   `json:"days"`
	POIs            []POI       `json:"pois"`
	BudgetEstimate  int         `json:"budget_estimate"`
}

// EndDate is the calendar date of the last planned day.
func (it *Itinerary) EndDate() time.Time {
	if len(it.Days) == 0 {
		return it.StartDate
	}
	return it.StartDate.AddDate(0, 0, len(it.Days)-1)
}

// ScheduledCount returns how many pool POIs ended up on some day.
func (it *Itinerary) ScheduledCount() int {
	n := 0
	for _, d := range it.Days {
		n += len(d.Activities)
	}
	return n
}
