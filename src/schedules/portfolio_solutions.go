// backend/src/schedules/portfolio_solutions.go
package schedules

import (
	"fmt"
	"math"

	"github.com/username/feecompare/backend/src/models"
)

// Portfolio Solutions administration pricing. The two account classes carry
// different tier tables: Super/Pension is tiered with a minimum annual fee,
// IDPS is tiered with a flat fee once the balance reaches $1,000,000.
const (
	psMinimumAnnualFee = 540 // $45 per month
	psIDPSFlatFee      = 2125
	psIDPSFlatFrom     = 1000000
)

var psSuperBands = []feeBand{
	{UpTo: 84000, Rate: 0.008929},
	{UpTo: 300000, Rate: 0},
	{UpTo: 850000, Rate: 0.0025},
	{UpTo: math.Inf(1), Rate: 0},
}

var psIDPSBands = []feeBand{
	{UpTo: 84000, Rate: 0.008929},
	{UpTo: 300000, Rate: 0.00625},
	{UpTo: 500000, Rate: 0.00375},
	{UpTo: 1000000, Rate: 0.00225},
}

type portfolioSolutionsSchedule struct {
	name        string
	expenseBase float64
	expenseRate float64
}

func (s portfolioSolutionsSchedule) Name() string { return s.name }

func (s portfolioSolutionsSchedule) AdminFee(ctx FeeContext) float64 {
	if ctx.AccountClass == models.ClassSuper {
		fee := marginalFee(ctx.AccountBalance, psSuperBands)
		return math.Max(fee, psMinimumAnnualFee)
	}
	if ctx.AccountBalance >= psIDPSFlatFrom {
		return psIDPSFlatFee
	}
	return marginalFee(ctx.AccountBalance, psIDPSBands)
}

func (s portfolioSolutionsSchedule) ExpenseFee(ctx FeeContext) float64 {
	return s.expenseBase + ctx.AccountBalance*s.expenseRate
}

func (s portfolioSolutionsSchedule) AdminFeeComponents(ctx FeeContext) []models.FeeComponent {
	if ctx.AccountClass == models.ClassSuper {
		// The minimum collapses the tier lines into a single item so the
		// components still sum to the charged amount.
		if marginalFee(ctx.AccountBalance, psSuperBands) < psMinimumAnnualFee {
			return []models.FeeComponent{
				{Description: "Minimum annual fee", Amount: psMinimumAnnualFee},
			}
		}
		return bandComponents(ctx.AccountBalance, psSuperBands)
	}
	if ctx.AccountBalance >= psIDPSFlatFrom {
		return []models.FeeComponent{
			{
				Description: fmt.Sprintf("Flat administration fee for balances of %s and over", formatDollars(psIDPSFlatFrom)),
				Amount:      psIDPSFlatFee,
			},
		}
	}
	return bandComponents(ctx.AccountBalance, psIDPSBands)
}

func (s portfolioSolutionsSchedule) ExpenseFeeComponents(ctx FeeContext) []models.FeeComponent {
	return []models.FeeComponent{
		{Description: "Fixed expense recovery fee", Amount: s.expenseBase},
		{
			Description: fmt.Sprintf("%s of account balance", formatPercent(s.expenseRate)),
			Amount:      ctx.AccountBalance * s.expenseRate,
		},
	}
}
