// backend/src/models/platform.go
package models

// Platform identifies an entry in the fee schedule catalog. Some entries are
// umbrella names that route to a sibling schedule depending on account class
// (see schedules.Resolve); the tag set below is the canonical taxonomy.
type Platform int

const (
	PlatformUnknown Platform = iota
	BTPanoramaCompact
	BTPanoramaFull
	CentricIDPS
	CentricChoice
	CentricOne
	PortfolioSolutions
	CFSEdgeInvestment
	CFSEdgeSuper
)

// AllPlatforms lists every selectable catalog entry in display order.
var AllPlatforms = []Platform{
	BTPanoramaCompact,
	BTPanoramaFull,
	CentricIDPS,
	CentricChoice,
	CentricOne,
	PortfolioSolutions,
	CFSEdgeInvestment,
	CFSEdgeSuper,
}

var platformNames = map[Platform]string{
	BTPanoramaCompact:  "BT Panorama (Compact Menu)",
	BTPanoramaFull:     "BT Panorama (Full Menu)",
	CentricIDPS:        "Centric IDPS",
	CentricChoice:      "Centric Choice",
	CentricOne:         "Centric One",
	PortfolioSolutions: "Portfolio Solutions",
	CFSEdgeInvestment:  "CFS Edge Investment",
	CFSEdgeSuper:       "CFS Edge Super",
}

func (p Platform) String() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return "Unknown Platform"
}

// ParsePlatform maps a catalog display name back to its tag.
func ParsePlatform(name string) (Platform, bool) {
	for p, n := range platformNames {
		if n == name {
			return p, true
		}
	}
	return PlatformUnknown, false
}

// PreferenceMode is the adviser's platform-preference setting. It only
// influences the note included in exports, never the calculation.
type PreferenceMode string

const (
	PreferenceStandard PreferenceMode = "standard"
	PreferenceNoOnline PreferenceMode = "no-online"
	PreferenceCustom   PreferenceMode = "custom"
)

// Valid reports whether the mode is one of the three known values.
func (m PreferenceMode) Valid() bool {
	switch m {
	case PreferenceStandard, PreferenceNoOnline, PreferenceCustom:
		return true
	}
	return false
}

// FeeComponent is one line of an explanatory fee breakdown. Components of a
// breakdown always sum to the fee the schedule computes directly.
type FeeComponent struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// AccountFeeDetail records the fee outcome for a single account under one
// platform, including which concrete schedule the platform resolved to.
type AccountFeeDetail struct {
	AccountClass string  `json:"account_class"`
	Index        int     `json:"index"` // 1-based, per class
	DisplayName  string  `json:"display_name"`
	Balance      float64 `json:"balance"`
	AdminFee     float64 `json:"admin_fee"`
	ExpenseFee   float64 `json:"expense_fee"`
	TotalFee     float64 `json:"total_fee"`
	ScheduleName string  `json:"schedule_name"`
}

// PlatformResult is the per-platform row of a comparison. Recomputed from the
// account set on every read; never stored.
type PlatformResult struct {
	Platform    Platform           `json:"-"`
	Name        string             `json:"name"`
	AdminFee    float64            `json:"admin_fee"`
	ExpenseFee  float64            `json:"expense_fee"`
	TotalFee    float64            `json:"total_fee"`
	IsCurrent   bool               `json:"is_current"`
	AccountFees []AccountFeeDetail `json:"account_fees"`
}

// AccountBreakdown is the line-item decomposition of one account's fees under
// a platform, produced on demand for explanatory display.
type AccountBreakdown struct {
	AccountClass      string         `json:"account_class"`
	Index             int            `json:"index"`
	DisplayName       string         `json:"display_name"`
	Balance           float64        `json:"balance"`
	ScheduleName      string         `json:"schedule_name"`
	AdminComponents   []FeeComponent `json:"admin_components"`
	ExpenseComponents []FeeComponent `json:"expense_components"`
	TotalFee          float64        `json:"total_fee"`
}
