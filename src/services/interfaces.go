// backend/src/services/interfaces.go
package services

import (
	"errors"

	"github.com/username/feecompare/backend/src/models"
)

// Define common service errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrInvalidClass    = errors.New("unknown account class")
	ErrInvalidIndex    = errors.New("account index out of range")
	ErrUnknownPlatform = errors.New("unknown platform")
	ErrInvalidMode     = errors.New("unknown preference mode")
)

// ComparisonResult is the full payload behind the comparison view: ordered
// platform rows plus the balance totals the page header shows. When no
// account has a balance the Platforms list is empty and Placeholder carries
// the prompt text instead.
type ComparisonResult struct {
	Platforms     []models.PlatformResult `json:"platforms"`
	IDPSBalance   float64                 `json:"idps_balance"`
	SuperBalance  float64                 `json:"super_balance"`
	TotalBalance  float64                 `json:"total_balance"`
	BalanceHeader string                  `json:"balance_header"`
	Placeholder   string                  `json:"placeholder,omitempty"`
}

// SessionState is the externally visible snapshot of one session.
type SessionState struct {
	ID               string                `json:"id"`
	Accounts         models.AccountSet     `json:"accounts"`
	CurrentPlatforms []string              `json:"current_platforms"`
	Preference       models.PreferenceMode `json:"preference"`
	CustomNote       string                `json:"custom_note,omitempty"`
}

// ComparisonService owns the in-memory session state and exposes every
// operation the browser frontend performs. Sessions expire after a period of
// inactivity; nothing is ever persisted.
type ComparisonService interface {
	CreateSession(idpsCount, superCount int) SessionState
	GetSession(id string) (SessionState, error)

	// SetAccountCounts replaces both account slices with zero-balance
	// accounts, discarding previously entered balances.
	SetAccountCounts(id string, idpsCount, superCount int) (SessionState, error)

	// UpdateBalance sets one account balance from raw text input. The
	// index is 1-based within the class. Unparseable values coerce to 0.
	UpdateBalance(id string, class string, index int, rawValue string) (SessionState, error)

	// SetCurrentPlatforms replaces the user's currently-held platform set.
	SetCurrentPlatforms(id string, names []string) (SessionState, error)

	// SetPreference records the platform-preference mode and, for the
	// custom mode, its free-text annotation.
	SetPreference(id string, mode models.PreferenceMode, customNote string) (SessionState, error)

	// Comparison recomputes the ranked fee comparison from current state.
	Comparison(id string) (ComparisonResult, error)

	// Breakdown re-derives the per-account fee line items for one platform.
	Breakdown(id string, platformName string) ([]models.AccountBreakdown, error)

	// ExportCSV and ExportPDF render the current comparison for download.
	ExportCSV(id string) ([]byte, error)
	ExportPDF(id string) ([]byte, error)
}
