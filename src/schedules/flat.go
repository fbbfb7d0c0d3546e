// backend/src/schedules/flat.go
package schedules

import (
	"fmt"

	"github.com/username/feecompare/backend/src/models"
)

// flatSchedule charges constant fees regardless of balance (the Centric IDPS
// and Centric Choice pricing).
type flatSchedule struct {
	name       string
	adminFee   float64
	expenseFee float64
}

func (s flatSchedule) Name() string { return s.name }

func (s flatSchedule) AdminFee(ctx FeeContext) float64 { return s.adminFee }

func (s flatSchedule) ExpenseFee(ctx FeeContext) float64 { return s.expenseFee }

func (s flatSchedule) AdminFeeComponents(ctx FeeContext) []models.FeeComponent {
	return []models.FeeComponent{
		{Description: "Fixed administration fee", Amount: s.adminFee},
	}
}

func (s flatSchedule) ExpenseFeeComponents(ctx FeeContext) []models.FeeComponent {
	if s.expenseFee == 0 {
		return nil
	}
	return []models.FeeComponent{
		{Description: "Fixed expense recovery fee", Amount: s.expenseFee},
	}
}

// percentageSchedule charges an uncapped percentage of the account balance.
// Centric One only administers Super/Pension accounts; for any other class it
// contributes nothing (the resolver also excludes it upstream).
type percentageSchedule struct {
	name      string
	rate      float64
	onlyClass models.AccountClass
}

func (s percentageSchedule) Name() string { return s.name }

func (s percentageSchedule) applies(class models.AccountClass) bool {
	return class == s.onlyClass
}

func (s percentageSchedule) AdminFee(ctx FeeContext) float64 {
	if !s.applies(ctx.AccountClass) {
		return 0
	}
	return ctx.AccountBalance * s.rate
}

func (s percentageSchedule) ExpenseFee(ctx FeeContext) float64 { return 0 }

func (s percentageSchedule) AdminFeeComponents(ctx FeeContext) []models.FeeComponent {
	if !s.applies(ctx.AccountClass) {
		return nil
	}
	return []models.FeeComponent{
		{
			Description: fmt.Sprintf("%s of account balance", formatPercent(s.rate)),
			Amount:      ctx.AccountBalance * s.rate,
		},
	}
}

func (s percentageSchedule) ExpenseFeeComponents(ctx FeeContext) []models.FeeComponent {
	return nil
}
