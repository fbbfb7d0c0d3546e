// backend/src/schedules/context.go
package schedules

import (
	"github.com/username/feecompare/backend/src/models"
)

// FeeContext carries everything a schedule may read for one account. Every
// schedule gets the identical signature; most ignore the combined balances,
// but the shared-pool schedules use them to size and allocate their
// percentage component.
type FeeContext struct {
	AccountBalance float64
	AccountClass   models.AccountClass
	IDPSBalance    float64
	SuperBalance   float64
}

// CombinedBalance is the total across both account classes.
func (c FeeContext) CombinedBalance() float64 {
	return c.IDPSBalance + c.SuperBalance
}

// ContextFor builds the FeeContext for one account within its account set.
func ContextFor(balance float64, class models.AccountClass, set models.AccountSet) FeeContext {
	return FeeContext{
		AccountBalance: balance,
		AccountClass:   class,
		IDPSBalance:    set.ClassBalance(models.ClassIDPS),
		SuperBalance:   set.ClassBalance(models.ClassSuper),
	}
}

// Schedule is one platform's fee model. Implementations are stateless pure
// functions over the context: callable in any order, never erroring, never
// returning a negative amount for non-negative input.
type Schedule interface {
	Name() string

	// AdminFee is the annual administration fee for the account.
	AdminFee(ctx FeeContext) float64
	// ExpenseFee is the annual expense recovery fee for the account.
	ExpenseFee(ctx FeeContext) float64

	// AdminFeeComponents and ExpenseFeeComponents decompose the same
	// computations into display line items. The component amounts sum to
	// the corresponding fee exactly.
	AdminFeeComponents(ctx FeeContext) []models.FeeComponent
	ExpenseFeeComponents(ctx FeeContext) []models.FeeComponent
}
