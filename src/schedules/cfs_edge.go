// backend/src/schedules/cfs_edge.go
package schedules

import (
	"github.com/username/feecompare/backend/src/models"
)

// bandedSchedule charges marginal rates over fixed balance bands with no
// expense recovery component (the CFS Edge pricing: $500k / $500k / $2m
// bands, 0% above $3m). The resulting fee is continuous and non-decreasing
// across every band boundary.
type bandedSchedule struct {
	name  string
	bands []feeBand
}

func (s bandedSchedule) Name() string { return s.name }

func (s bandedSchedule) AdminFee(ctx FeeContext) float64 {
	return marginalFee(ctx.AccountBalance, s.bands)
}

func (s bandedSchedule) ExpenseFee(ctx FeeContext) float64 { return 0 }

func (s bandedSchedule) AdminFeeComponents(ctx FeeContext) []models.FeeComponent {
	return bandComponents(ctx.AccountBalance, s.bands)
}

func (s bandedSchedule) ExpenseFeeComponents(ctx FeeContext) []models.FeeComponent {
	return nil
}
