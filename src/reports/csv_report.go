// backend/src/reports/csv_report.go
package reports

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/username/feecompare/backend/src/models"
)

// WriteComparisonCSV renders the ranked comparison as CSV. Numeric columns
// stay unformatted (two decimals, no currency symbol or grouping) so the file
// loads cleanly into a spreadsheet.
func WriteComparisonCSV(platforms []models.PlatformResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"Platform", "Admin Fee", "Expense Recovery", "Total Fee"}); err != nil {
		return nil, err
	}

	for _, p := range platforms {
		name := p.Name
		if p.IsCurrent {
			name += " (Current)"
		}
		record := []string{
			name,
			strconv.FormatFloat(p.AdminFee, 'f', 2, 64),
			strconv.FormatFloat(p.ExpenseFee, 'f', 2, 64),
			strconv.FormatFloat(p.TotalFee, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
