// Package export renders a stored plan result into the shapes offered for
// download and display: CSV rows, a GeoJSON map view and a trip summary.
package export

import (
	"errors"
	"strconv"
	"time"
	"travel-planner-service/internal/domain"
)

// ErrNothingToExport is returned when a result has no scheduled activities
// or no coordinates to draw.
var ErrNothingToExport = errors.New("nothing to export")

// ActivityRow is one scheduled activity, flattened.
type ActivityRow struct {
	Day           int
	Date          string
	Name          string
	Category      string
	DurationHours string
	Price         string
}

// Rows lists the scheduled activities of res in day order.
// POIs that were sampled but never scheduled are not included.
func Rows(res *domain.PlanResult) []ActivityRow {
	if res == nil || res.Failed() {
		return nil
	}

	var rows []ActivityRow
	switch {
	case res.Itinerary != nil:
		for _, d := range res.Itinerary.Days {
			for _, a := range d.Activities {
				rows = append(rows, ActivityRow{
					Day:           d.Day,
					Date:          d.DateString(),
					Name:          a.Name,
					Category:      a.Category,
					DurationHours: formatHours(a.DurationHours),
					Price:         string(a.Price),
				})
			}
		}
	case res.Remote != nil && res.Remote.Plan != nil:
		for _, d := range res.Remote.Plan.Itinerary {
			for _, a := range d.Activities {
				rows = append(rows, ActivityRow{
					Day:           d.Day,
					Date:          d.Date,
					Name:          a.Name,
					Category:      a.Category,
					DurationHours: formatOptionalHours(a.DurationHours),
					Price:         a.Price,
				})
			}
		}
	}
	return rows
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

func formatOptionalHours(h *float64) string {
	if h == nil {
		return ""
	}
	return formatHours(*h)
}

// Summary is the headline shown above an itinerary. EstimatedCost falls
// back to the requested budget when a generator gave none.
type Summary struct {
	Destination   string  `json:"destination"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	EstimatedCost float64 `json:"estimated_cost"`
}

func Summarize(res *domain.PlanResult) (Summary, bool) {
	if res == nil || res.Failed() {
		return Summary{}, false
	}

	req := res.Request
	start := req.StartDate
	days := req.Days
	if days < 1 {
		days = 1
	}

	s := Summary{
		Destination:   req.Destination,
		StartDate:     start.Format(time.DateOnly),
		EndDate:       start.AddDate(0, 0, days-1).Format(time.DateOnly),
		EstimatedCost: float64(req.Budget),
	}

	switch {
	case res.Itinerary != nil:
		s.EstimatedCost = float64(res.Itinerary.BudgetEstimate)
	case res.Remote != nil && res.Remote.Plan != nil && res.Remote.Plan.BudgetEst != nil:
		s.EstimatedCost = *res.Remote.Plan.BudgetEst
	}
	return s, true
}
