// backend/src/schedules/bands.go
package schedules

import (
	"fmt"
	"math"
	"strconv"

	"github.com/username/feecompare/backend/src/models"
)

// feeBand is one marginal-rate band of a tiered schedule. UpTo is the
// inclusive upper balance bound; the final band uses math.Inf(1).
type feeBand struct {
	UpTo float64
	Rate float64
}

// marginalFee applies the bands marginally: each band's rate is charged on
// the slice of the balance falling inside that band.
func marginalFee(balance float64, bands []feeBand) float64 {
	var fee float64
	lower := 0.0
	for _, band := range bands {
		if balance <= lower {
			break
		}
		slice := math.Min(balance, band.UpTo) - lower
		fee += slice * band.Rate
		lower = band.UpTo
	}
	return fee
}

// bandComponents produces one line item per band the balance reaches. The
// amounts sum to marginalFee for the same inputs.
func bandComponents(balance float64, bands []feeBand) []models.FeeComponent {
	var components []models.FeeComponent
	lower := 0.0
	for _, band := range bands {
		if balance <= lower {
			break
		}
		slice := math.Min(balance, band.UpTo) - lower

		var desc string
		switch {
		case lower == 0:
			desc = fmt.Sprintf("%s on first %s", formatPercent(band.Rate), formatDollars(math.Min(balance, band.UpTo)))
		case math.IsInf(band.UpTo, 1):
			desc = fmt.Sprintf("%s on balance above %s", formatPercent(band.Rate), formatDollars(lower))
		default:
			desc = fmt.Sprintf("%s on next %s", formatPercent(band.Rate), formatDollars(slice))
		}

		components = append(components, models.FeeComponent{
			Description: desc,
			Amount:      slice * band.Rate,
		})
		lower = band.UpTo
	}
	return components
}

// formatPercent renders a decimal rate as a percentage, trimming trailing
// zeros (0.0015 -> "0.15%", 0.008929 -> "0.8929%").
func formatPercent(rate float64) string {
	// Round at four percentage decimals to avoid float artifacts.
	pct := math.Round(rate*1e6) / 1e4
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// formatDollars renders a whole-dollar amount with thousands separators.
func formatDollars(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return "$" + sign + s
}
