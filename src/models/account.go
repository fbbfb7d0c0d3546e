// backend/src/models/account.go
package models

// AccountClass distinguishes the two account types a platform can administer.
type AccountClass int

const (
	ClassIDPS AccountClass = iota
	ClassSuper
)

func (c AccountClass) String() string {
	switch c {
	case ClassIDPS:
		return "idps"
	case ClassSuper:
		return "super"
	}
	return "unknown"
}

// DisplayName returns the label shown on account rows and reports.
func (c AccountClass) DisplayName() string {
	switch c {
	case ClassIDPS:
		return "IDPS"
	case ClassSuper:
		return "Super/Pension"
	}
	return "Unknown"
}

// ParseAccountClass maps the wire value ("idps"/"super") to an AccountClass.
func ParseAccountClass(s string) (AccountClass, bool) {
	switch s {
	case "idps":
		return ClassIDPS, true
	case "super":
		return ClassSuper, true
	}
	return 0, false
}

// Account holds a single account balance. Identity is positional: the index
// within its class's slice. Balances are always non-negative finite numbers;
// anything unparseable is coerced to zero before it gets here.
type Account struct {
	Balance float64 `json:"balance"`
}

// AccountSet is the full set of accounts entered for one comparison session.
// It is owned by exactly one session and mutated in place between
// recomputations; the calculation code only ever reads it.
type AccountSet struct {
	IDPS  []Account `json:"idps"`
	Super []Account `json:"super"`
}

// NewAccountSet creates counts-many zero-balance accounts per class.
func NewAccountSet(idpsCount, superCount int) AccountSet {
	return AccountSet{
		IDPS:  make([]Account, idpsCount),
		Super: make([]Account, superCount),
	}
}

// ClassBalance sums the balances of one class.
func (s AccountSet) ClassBalance(class AccountClass) float64 {
	var total float64
	for _, a := range s.Accounts(class) {
		total += a.Balance
	}
	return total
}

// TotalBalance sums every balance across both classes.
func (s AccountSet) TotalBalance() float64 {
	return s.ClassBalance(ClassIDPS) + s.ClassBalance(ClassSuper)
}

// Accounts returns the slice backing the given class.
func (s AccountSet) Accounts(class AccountClass) []Account {
	if class == ClassIDPS {
		return s.IDPS
	}
	return s.Super
}

// ActiveAccountCount counts accounts with a positive balance in both classes.
func (s AccountSet) ActiveAccountCount() int {
	count := 0
	for _, a := range s.IDPS {
		if a.Balance > 0 {
			count++
		}
	}
	for _, a := range s.Super {
		if a.Balance > 0 {
			count++
		}
	}
	return count
}
