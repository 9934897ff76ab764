package render

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/cleared-dev/ledger/internal/report"
)

// CSV writes the header and every row as CSV records. Amounts are raw
// decimals. A section row becomes a record whose first field is the
// section label and whose other fields are empty. The title is omitted.
type CSV struct{}

func (CSV) Render(w io.Writer, t report.Table) error {
	cw := csv.NewWriter(w)
	width := len(t.Headers)

	if width > 0 {
		if err := cw.Write(t.Headers); err != nil {
			return fmt.Errorf("writing csv header: %w", err)
		}
	}

	for _, r := range t.Rows {
		n := max(width, len(r.Cells))
		record := make([]string, n)
		if r.Section {
			record[0] = r.Label()
		} else {
			for i, c := range r.Cells {
				if c.IsAmount() {
					record[i] = c.Amount.String()
				} else {
					record[i] = c.Text
				}
			}
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}
