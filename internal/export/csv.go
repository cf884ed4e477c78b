package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"travel-planner-service/internal/domain"
)

var csvHeader = []string{"day", "date", "name", "category", "duration_hours", "price"}

// WriteCSV writes the scheduled activities of res with a header row.
func WriteCSV(w io.Writer, res *domain.PlanResult) error {
	rows := Rows(res)
	if len(rows) == 0 {
		return ErrNothingToExport
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range rows {
		rec := []string{strconv.Itoa(r.Day), r.Date, r.Name, r.Category, r.DurationHours, r.Price}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
