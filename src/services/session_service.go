// backend/src/services/session_service.go
package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/username/feecompare/backend/src/logger"
	"github.com/username/feecompare/backend/src/models"
	"github.com/username/feecompare/backend/src/processors"
	"github.com/username/feecompare/backend/src/reports"
	"github.com/username/feecompare/backend/src/utils"
)

const (
	DefaultSessionExpiration = 2 * time.Hour
	SessionCleanupInterval   = 30 * time.Minute

	// Shown instead of the comparison table while no balance is entered.
	emptyComparisonPlaceholder = "Please add account details to see fee comparisons."
)

// session is the mutable per-session state. Handlers run concurrently, so
// each session carries its own lock; within a session, operations run to
// completion one at a time.
type session struct {
	mu               sync.Mutex
	id               string
	accounts         models.AccountSet
	currentPlatforms map[models.Platform]bool
	currentOrder     []models.Platform
	preference       models.PreferenceMode
	customNote       string
}

type sessionServiceImpl struct {
	sessions    *cache.Cache
	processor   processors.ComparisonProcessor
	maxAccounts int
}

// NewComparisonService builds the service around an expiring in-memory
// session store.
func NewComparisonService(processor processors.ComparisonProcessor, sessionTTL, cleanupInterval time.Duration, maxAccountsPerClass int) ComparisonService {
	return &sessionServiceImpl{
		sessions:    cache.New(sessionTTL, cleanupInterval),
		processor:   processor,
		maxAccounts: maxAccountsPerClass,
	}
}

func (s *sessionServiceImpl) clampCount(count int) int {
	if count < 0 {
		return 0
	}
	if count > s.maxAccounts {
		return s.maxAccounts
	}
	return count
}

func (s *sessionServiceImpl) CreateSession(idpsCount, superCount int) SessionState {
	sess := &session{
		id:               uuid.New().String(),
		accounts:         models.NewAccountSet(s.clampCount(idpsCount), s.clampCount(superCount)),
		currentPlatforms: map[models.Platform]bool{},
		preference:       models.PreferenceStandard,
	}
	s.sessions.Set(sess.id, sess, cache.DefaultExpiration)
	logger.L.Info("Session created", "sessionID", sess.id, "idpsAccounts", len(sess.accounts.IDPS), "superAccounts", len(sess.accounts.Super))
	return snapshot(sess)
}

func (s *sessionServiceImpl) lookup(id string) (*session, error) {
	stored, found := s.sessions.Get(id)
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	// Sliding expiry: any access keeps the session alive.
	s.sessions.Set(id, stored, cache.DefaultExpiration)
	return stored.(*session), nil
}

// snapshot copies the session into its externally visible form. Callers must
// hold the session lock or own the session exclusively.
func snapshot(sess *session) SessionState {
	accounts := models.AccountSet{
		IDPS:  append([]models.Account(nil), sess.accounts.IDPS...),
		Super: append([]models.Account(nil), sess.accounts.Super...),
	}
	names := make([]string, 0, len(sess.currentOrder))
	for _, p := range sess.currentOrder {
		names = append(names, p.String())
	}
	return SessionState{
		ID:               sess.id,
		Accounts:         accounts,
		CurrentPlatforms: names,
		Preference:       sess.preference,
		CustomNote:       sess.customNote,
	}
}

func (s *sessionServiceImpl) GetSession(id string) (SessionState, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return SessionState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return snapshot(sess), nil
}

func (s *sessionServiceImpl) SetAccountCounts(id string, idpsCount, superCount int) (SessionState, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return SessionState{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.accounts = models.NewAccountSet(s.clampCount(idpsCount), s.clampCount(superCount))
	return snapshot(sess), nil
}

func (s *sessionServiceImpl) UpdateBalance(id string, class string, index int, rawValue string) (SessionState, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return SessionState{}, err
	}

	accountClass, ok := models.ParseAccountClass(class)
	if !ok {
		return SessionState{}, fmt.Errorf("%w: %q", ErrInvalidClass, class)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	accounts := sess.accounts.Accounts(accountClass)
	if index < 1 || index > len(accounts) {
		return SessionState{}, fmt.Errorf("%w: %s account %d", ErrInvalidIndex, class, index)
	}

	accounts[index-1].Balance = utils.ParseBalance(rawValue)
	return snapshot(sess), nil
}

func (s *sessionServiceImpl) SetCurrentPlatforms(id string, names []string) (SessionState, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return SessionState{}, err
	}

	selected := map[models.Platform]bool{}
	order := make([]models.Platform, 0, len(names))
	for _, name := range names {
		platform, ok := models.ParsePlatform(name)
		if !ok {
			return SessionState{}, fmt.Errorf("%w: %q", ErrUnknownPlatform, name)
		}
		if !selected[platform] {
			selected[platform] = true
			order = append(order, platform)
		}
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.currentPlatforms = selected
	sess.currentOrder = order
	return snapshot(sess), nil
}

func (s *sessionServiceImpl) SetPreference(id string, mode models.PreferenceMode, customNote string) (SessionState, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return SessionState{}, err
	}
	if !mode.Valid() {
		return SessionState{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	sess.preference = mode
	if mode == models.PreferenceCustom {
		sess.customNote = customNote
	} else {
		sess.customNote = ""
	}
	return snapshot(sess), nil
}

// comparisonLocked recomputes the full comparison from current state.
func (s *sessionServiceImpl) comparisonLocked(sess *session) ComparisonResult {
	result := ComparisonResult{
		Platforms:    []models.PlatformResult{},
		IDPSBalance:  sess.accounts.ClassBalance(models.ClassIDPS),
		SuperBalance: sess.accounts.ClassBalance(models.ClassSuper),
	}
	result.TotalBalance = result.IDPSBalance + result.SuperBalance

	if sess.accounts.ActiveAccountCount() > 1 {
		result.BalanceHeader = "Total Account Balances"
	} else {
		result.BalanceHeader = "Total Account Balance"
	}

	if result.TotalBalance == 0 {
		result.Placeholder = emptyComparisonPlaceholder
		return result
	}

	result.Platforms = s.processor.Compare(sess.accounts, sess.currentPlatforms)
	return result
}

func (s *sessionServiceImpl) Comparison(id string) (ComparisonResult, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return ComparisonResult{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.comparisonLocked(sess), nil
}

func (s *sessionServiceImpl) Breakdown(id string, platformName string) ([]models.AccountBreakdown, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	platform, ok := models.ParsePlatform(platformName)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlatform, platformName)
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return s.processor.Breakdown(platform, sess.accounts), nil
}

func (s *sessionServiceImpl) ExportCSV(id string) ([]byte, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	return reports.WriteComparisonCSV(s.comparisonLocked(sess).Platforms)
}

func (s *sessionServiceImpl) ExportPDF(id string) ([]byte, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	comparison := s.comparisonLocked(sess)
	return reports.GenerateComparisonPDF(reports.ComparisonReport{
		Accounts:      sess.accounts,
		Platforms:     comparison.Platforms,
		TotalBalance:  comparison.TotalBalance,
		BalanceHeader: comparison.BalanceHeader,
		Preference:    sess.preference,
		CustomNote:    sess.customNote,
	})
}
