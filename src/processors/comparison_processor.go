// backend/src/processors/comparison_processor.go
package processors

import (
	"fmt"
	"sort"

	"github.com/username/feecompare/backend/src/models"
	"github.com/username/feecompare/backend/src/schedules"
)

// ComparisonProcessor computes platform fee comparisons over an account set.
// All methods are pure: the account set is only read, and the same inputs
// always produce the same output.
type ComparisonProcessor interface {
	// AvailablePlatforms selects the platforms applicable to the account
	// mix, in display order. Empty when no account has a balance.
	AvailablePlatforms(set models.AccountSet) []models.Platform

	// PlatformFees evaluates one platform across every account with a
	// positive balance: IDPS accounts in index order, then Super accounts
	// in index order.
	PlatformFees(platform models.Platform, set models.AccountSet) models.PlatformResult

	// Compare evaluates every available platform and ranks the results:
	// current platforms first (in place), the rest ascending by total fee.
	Compare(set models.AccountSet, current map[models.Platform]bool) []models.PlatformResult

	// Breakdown re-derives each account's fees under a platform as ordered
	// line items. Component sums match PlatformFees exactly.
	Breakdown(platform models.Platform, set models.AccountSet) []models.AccountBreakdown
}

type comparisonProcessorImpl struct{}

func NewComparisonProcessor() ComparisonProcessor {
	return &comparisonProcessorImpl{}
}

var idpsOnlyPlatforms = []models.Platform{
	models.CentricIDPS,
	models.BTPanoramaCompact,
	models.BTPanoramaFull,
	models.PortfolioSolutions,
	models.CFSEdgeInvestment,
}

var superOnlyPlatforms = []models.Platform{
	models.CentricChoice,
	models.CentricOne,
	models.BTPanoramaCompact,
	models.BTPanoramaFull,
	models.PortfolioSolutions,
	models.CFSEdgeSuper,
}

// mixedPlatforms lists the umbrella names; each resolves per account class.
var mixedPlatforms = []models.Platform{
	models.CentricIDPS,
	models.BTPanoramaCompact,
	models.BTPanoramaFull,
	models.PortfolioSolutions,
	models.CFSEdgeInvestment,
}

func (p *comparisonProcessorImpl) AvailablePlatforms(set models.AccountSet) []models.Platform {
	hasIDPS := set.ClassBalance(models.ClassIDPS) > 0
	hasSuper := set.ClassBalance(models.ClassSuper) > 0

	switch {
	case hasIDPS && hasSuper:
		return append([]models.Platform(nil), mixedPlatforms...)
	case hasIDPS:
		return append([]models.Platform(nil), idpsOnlyPlatforms...)
	case hasSuper:
		return append([]models.Platform(nil), superOnlyPlatforms...)
	}
	return nil
}

// accountDisplayName labels an account row ("IDPS Account 1").
func accountDisplayName(class models.AccountClass, index int) string {
	return fmt.Sprintf("%s Account %d", class.DisplayName(), index)
}

// eachActiveAccount visits every account with a positive balance, IDPS in
// index order then Super in index order. This ordering fixes the order of
// per-account details in every output.
func eachActiveAccount(set models.AccountSet, visit func(class models.AccountClass, index int, balance float64)) {
	for _, class := range []models.AccountClass{models.ClassIDPS, models.ClassSuper} {
		for i, account := range set.Accounts(class) {
			if account.Balance > 0 {
				visit(class, i+1, account.Balance)
			}
		}
	}
}

func (p *comparisonProcessorImpl) PlatformFees(platform models.Platform, set models.AccountSet) models.PlatformResult {
	result := models.PlatformResult{
		Platform:    platform,
		Name:        platform.String(),
		AccountFees: []models.AccountFeeDetail{},
	}

	eachActiveAccount(set, func(class models.AccountClass, index int, balance float64) {
		resolved, ok := schedules.Resolve(platform, class)
		if !ok {
			return
		}
		schedule, ok := schedules.Lookup(resolved)
		if !ok {
			return
		}

		ctx := schedules.ContextFor(balance, class, set)
		adminFee := schedule.AdminFee(ctx)
		expenseFee := schedule.ExpenseFee(ctx)

		result.AdminFee += adminFee
		result.ExpenseFee += expenseFee
		result.AccountFees = append(result.AccountFees, models.AccountFeeDetail{
			AccountClass: class.String(),
			Index:        index,
			DisplayName:  accountDisplayName(class, index),
			Balance:      balance,
			AdminFee:     adminFee,
			ExpenseFee:   expenseFee,
			TotalFee:     adminFee + expenseFee,
			ScheduleName: schedule.Name(),
		})
	})

	result.TotalFee = result.AdminFee + result.ExpenseFee
	return result
}

func (p *comparisonProcessorImpl) Compare(set models.AccountSet, current map[models.Platform]bool) []models.PlatformResult {
	available := p.AvailablePlatforms(set)
	if len(available) == 0 {
		return nil
	}

	results := make([]models.PlatformResult, 0, len(available))
	for _, platform := range available {
		result := p.PlatformFees(platform, set)
		result.IsCurrent = current[platform]
		results = append(results, result)
	}
	return RankResults(results)
}

// RankResults orders a comparison: currently-held platforms first, keeping
// their given order, then the rest ascending by total fee. The sort is
// explicitly stable so equal fees keep the catalog order.
func RankResults(results []models.PlatformResult) []models.PlatformResult {
	currentResults := make([]models.PlatformResult, 0, len(results))
	otherResults := make([]models.PlatformResult, 0, len(results))
	for _, r := range results {
		if r.IsCurrent {
			currentResults = append(currentResults, r)
		} else {
			otherResults = append(otherResults, r)
		}
	}

	sort.SliceStable(otherResults, func(i, j int) bool {
		return otherResults[i].TotalFee < otherResults[j].TotalFee
	})

	return append(currentResults, otherResults...)
}

func (p *comparisonProcessorImpl) Breakdown(platform models.Platform, set models.AccountSet) []models.AccountBreakdown {
	breakdowns := []models.AccountBreakdown{}

	eachActiveAccount(set, func(class models.AccountClass, index int, balance float64) {
		resolved, ok := schedules.Resolve(platform, class)
		if !ok {
			return
		}
		schedule, ok := schedules.Lookup(resolved)
		if !ok {
			return
		}

		ctx := schedules.ContextFor(balance, class, set)
		breakdowns = append(breakdowns, models.AccountBreakdown{
			AccountClass:      class.String(),
			Index:             index,
			DisplayName:       accountDisplayName(class, index),
			Balance:           balance,
			ScheduleName:      schedule.Name(),
			AdminComponents:   schedule.AdminFeeComponents(ctx),
			ExpenseComponents: schedule.ExpenseFeeComponents(ctx),
			TotalFee:          schedule.AdminFee(ctx) + schedule.ExpenseFee(ctx),
		})
	})

	return breakdowns
}
