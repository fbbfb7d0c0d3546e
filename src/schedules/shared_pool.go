// backend/src/schedules/shared_pool.go
package schedules

import (
	"fmt"
	"math"

	"github.com/username/feecompare/backend/src/models"
)

// sharedPoolSchedule models the BT Panorama pricing: a fixed base fee per
// account plus a percentage of the combined balance across both account
// classes (capped at a balance ceiling), allocated back to each account in
// proportion to its share of the combined balance. The allocations across all
// accounts partition the pool fee exactly.
type sharedPoolSchedule struct {
	name        string
	baseFee     float64
	poolRate    float64
	poolCap     float64
	expenseBase float64
	expenseRate float64
}

func (s sharedPoolSchedule) Name() string { return s.name }

// poolFee is the capped percentage fee on the combined balance.
func (s sharedPoolSchedule) poolFee(ctx FeeContext) float64 {
	return math.Min(ctx.CombinedBalance(), s.poolCap) * s.poolRate
}

// allocation is this account's pro-rata share of the pool fee. Zero combined
// balance means a zero allocation, never a division by zero.
func (s sharedPoolSchedule) allocation(ctx FeeContext) float64 {
	combined := ctx.CombinedBalance()
	if combined <= 0 {
		return 0
	}
	return ctx.AccountBalance / combined * s.poolFee(ctx)
}

func (s sharedPoolSchedule) AdminFee(ctx FeeContext) float64 {
	return s.baseFee + s.allocation(ctx)
}

func (s sharedPoolSchedule) ExpenseFee(ctx FeeContext) float64 {
	return s.expenseBase + ctx.AccountBalance*s.expenseRate
}

func (s sharedPoolSchedule) AdminFeeComponents(ctx FeeContext) []models.FeeComponent {
	components := []models.FeeComponent{
		{Description: "Fixed administration fee", Amount: s.baseFee},
	}
	combined := ctx.CombinedBalance()
	if combined > 0 {
		desc := fmt.Sprintf("%s on combined balance of %s (capped at %s), allocated by account share",
			formatPercent(s.poolRate), formatDollars(combined), formatDollars(s.poolCap))
		components = append(components, models.FeeComponent{
			Description: desc,
			Amount:      s.allocation(ctx),
		})
	}
	return components
}

func (s sharedPoolSchedule) ExpenseFeeComponents(ctx FeeContext) []models.FeeComponent {
	return []models.FeeComponent{
		{Description: "Fixed expense recovery fee", Amount: s.expenseBase},
		{
			Description: fmt.Sprintf("%s of account balance", formatPercent(s.expenseRate)),
			Amount:      ctx.AccountBalance * s.expenseRate,
		},
	}
}
