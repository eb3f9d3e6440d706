package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

// toString formats non-string raw values for display.
func toString(value interface{}) string {
	switch v := value.(type) {
	case time.Time:
		return v.Format("2006-01-02")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// WriteCSV streams the whole dataset (all pages) through the column
// descriptors as CSV. Export ignores pagination state on purpose.
func (t *Table) WriteCSV(w io.Writer, data []Row) error {
	cw := csv.NewWriter(w)

	header := make([]string, len(t.Columns))
	for i, col := range t.Columns {
		header[i] = col.Label
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, row := range data {
		cells := make([]string, len(t.Columns))
		for i, col := range t.Columns {
			cells[i] = renderCell(col, row)
		}
		if err := cw.Write(cells); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
