// backend/src/schedules/registry.go
package schedules

import (
	"math"

	"github.com/username/feecompare/backend/src/models"
)

// registry is the fixed catalog of platform fee schedules. Schedules are
// immutable and stateless; the map is never mutated after init.
var registry = map[models.Platform]Schedule{
	models.BTPanoramaCompact: sharedPoolSchedule{
		name:        models.BTPanoramaCompact.String(),
		baseFee:     180,
		poolRate:    0.0015,
		poolCap:     1000000,
		expenseBase: 95,
		expenseRate: 0.0003,
	},
	models.BTPanoramaFull: sharedPoolSchedule{
		name:        models.BTPanoramaFull.String(),
		baseFee:     540,
		poolRate:    0.0015,
		poolCap:     1000000,
		expenseBase: 95,
		expenseRate: 0.0003,
	},
	models.CentricIDPS: flatSchedule{
		name:       models.CentricIDPS.String(),
		adminFee:   450,
		expenseFee: 0,
	},
	models.CentricChoice: flatSchedule{
		name:       models.CentricChoice.String(),
		adminFee:   528,
		expenseFee: 132,
	},
	models.CentricOne: percentageSchedule{
		name:      models.CentricOne.String(),
		rate:      0.002583,
		onlyClass: models.ClassSuper,
	},
	models.PortfolioSolutions: portfolioSolutionsSchedule{
		name:        models.PortfolioSolutions.String(),
		expenseBase: 155,
		expenseRate: 0.0003,
	},
	models.CFSEdgeSuper: bandedSchedule{
		name: models.CFSEdgeSuper.String(),
		bands: []feeBand{
			{UpTo: 500000, Rate: 0.0028},
			{UpTo: 1000000, Rate: 0.0013},
			{UpTo: 3000000, Rate: 0.0005},
			{UpTo: math.Inf(1), Rate: 0},
		},
	},
	models.CFSEdgeInvestment: bandedSchedule{
		name: models.CFSEdgeInvestment.String(),
		bands: []feeBand{
			{UpTo: 500000, Rate: 0.0025},
			{UpTo: 1000000, Rate: 0.0010},
			{UpTo: 3000000, Rate: 0.0005},
			{UpTo: math.Inf(1), Rate: 0},
		},
	},
}

// Lookup returns the schedule registered for a platform.
func Lookup(p models.Platform) (Schedule, bool) {
	s, ok := registry[p]
	return s, ok
}

// Resolve maps a selected platform to the concrete schedule serving one
// account class. Umbrella names route to their class-specific sibling; a
// schedule that does not serve the class at all resolves to false and the
// account contributes nothing for that platform.
func Resolve(p models.Platform, class models.AccountClass) (models.Platform, bool) {
	switch class {
	case models.ClassIDPS:
		switch p {
		case models.CFSEdgeSuper:
			return models.CFSEdgeInvestment, true
		case models.CentricOne:
			return models.PlatformUnknown, false
		}
	case models.ClassSuper:
		switch p {
		case models.CFSEdgeInvestment:
			return models.CFSEdgeSuper, true
		case models.CentricIDPS:
			return models.CentricChoice, true
		}
	}
	if _, ok := registry[p]; !ok {
		return models.PlatformUnknown, false
	}
	return p, true
}
