// backend/src/services/session_service_test.go
package services

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/feecompare/backend/src/logger"
	"github.com/username/feecompare/backend/src/models"
	"github.com/username/feecompare/backend/src/processors"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

func newTestService() ComparisonService {
	return NewComparisonService(processors.NewComparisonProcessor(), time.Hour, time.Hour, 10)
}

func TestCreateSessionDefaults(t *testing.T) {
	svc := newTestService()

	state := svc.CreateSession(2, 1)
	require.NotEmpty(t, state.ID)
	assert.Len(t, state.Accounts.IDPS, 2)
	assert.Len(t, state.Accounts.Super, 1)
	assert.Empty(t, state.CurrentPlatforms)
	assert.Equal(t, models.PreferenceStandard, state.Preference)

	fetched, err := svc.GetSession(state.ID)
	require.NoError(t, err)
	assert.Equal(t, state.ID, fetched.ID)
}

func TestCreateSessionClampsAccountCounts(t *testing.T) {
	svc := newTestService()

	state := svc.CreateSession(-3, 50)
	assert.Empty(t, state.Accounts.IDPS)
	assert.Len(t, state.Accounts.Super, 10)
}

func TestGetSessionUnknownID(t *testing.T) {
	svc := newTestService()

	_, err := svc.GetSession("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSetAccountCountsResetsBalances(t *testing.T) {
	svc := newTestService()
	state := svc.CreateSession(1, 0)

	_, err := svc.UpdateBalance(state.ID, "idps", 1, "100000")
	require.NoError(t, err)

	state, err = svc.SetAccountCounts(state.ID, 2, 2)
	require.NoError(t, err)
	assert.Len(t, state.Accounts.IDPS, 2)
	assert.Len(t, state.Accounts.Super, 2)
	assert.Zero(t, state.Accounts.TotalBalance())
}

func TestUpdateBalanceCoercion(t *testing.T) {
	svc := newTestService()
	state := svc.CreateSession(1, 0)

	cases := []struct {
		raw  string
		want float64
	}{
		{"50000", 50000},
		{"50,000.25", 50000.25},
		{" 250000 ", 250000},
		{"", 0},
		{"abc", 0},
		{"-100", 0},
	}
	for _, tc := range cases {
		updated, err := svc.UpdateBalance(state.ID, "idps", 1, tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.want, updated.Accounts.IDPS[0].Balance, "raw %q", tc.raw)
	}
}

func TestUpdateBalanceValidation(t *testing.T) {
	svc := newTestService()
	state := svc.CreateSession(1, 1)

	_, err := svc.UpdateBalance(state.ID, "offshore", 1, "100")
	assert.ErrorIs(t, err, ErrInvalidClass)

	_, err = svc.UpdateBalance(state.ID, "idps", 0, "100")
	assert.ErrorIs(t, err, ErrInvalidIndex)

	_, err = svc.UpdateBalance(state.ID, "idps", 2, "100")
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

func TestSetCurrentPlatforms(t *testing.T) {
	svc := newTestService()
	state := svc.CreateSession(0, 1)

	state, err := svc.SetCurrentPlatforms(state.ID, []string{
		"CFS Edge Super",
		"Centric Choice",
		"CFS Edge Super", // duplicates collapse
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"CFS Edge Super", "Centric Choice"}, state.CurrentPlatforms)

	_, err = svc.SetCurrentPlatforms(state.ID, []string{"MegaWrap 3000"})
	assert.ErrorIs(t, err, ErrUnknownPlatform)
}

func TestSetPreference(t *testing.T) {
	svc := newTestService()
	state := svc.CreateSession(0, 1)

	state, err := svc.SetPreference(state.ID, models.PreferenceCustom, "Fees negotiated annually.")
	require.NoError(t, err)
	assert.Equal(t, models.PreferenceCustom, state.Preference)
	assert.Equal(t, "Fees negotiated annually.", state.CustomNote)

	// Leaving custom mode drops the note.
	state, err = svc.SetPreference(state.ID, models.PreferenceNoOnline, "ignored")
	require.NoError(t, err)
	assert.Equal(t, models.PreferenceNoOnline, state.Preference)
	assert.Empty(t, state.CustomNote)

	_, err = svc.SetPreference(state.ID, models.PreferenceMode("bespoke"), "")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestComparisonPlaceholderWhenNoBalances(t *testing.T) {
	svc := newTestService()
	state := svc.CreateSession(2, 2)

	result, err := svc.Comparison(state.ID)
	require.NoError(t, err)
	assert.Empty(t, result.Platforms)
	assert.Zero(t, result.TotalBalance)
	assert.Equal(t, "Please add account details to see fee comparisons.", result.Placeholder)
}

func TestComparisonSingleSuperAccount(t *testing.T) {
	svc := newTestService()
	state := svc.CreateSession(0, 1)

	_, err := svc.UpdateBalance(state.ID, "super", 1, "2,000,000")
	require.NoError(t, err)

	result, err := svc.Comparison(state.ID)
	require.NoError(t, err)
	assert.Equal(t, "Total Account Balance", result.BalanceHeader)
	assert.Empty(t, result.Placeholder)
	assert.Equal(t, float64(2000000), result.SuperBalance)
	require.Len(t, result.Platforms, 6)

	// No current platform: everything is ranked ascending by total fee.
	for i := 1; i < len(result.Platforms); i++ {
		assert.LessOrEqual(t, result.Platforms[i-1].TotalFee, result.Platforms[i].TotalFee)
	}
}

func TestComparisonCurrentPlatformsLeadRanking(t *testing.T) {
	svc := newTestService()
	state := svc.CreateSession(1, 1)

	_, err := svc.UpdateBalance(state.ID, "idps", 1, "300000")
	require.NoError(t, err)
	_, err = svc.UpdateBalance(state.ID, "super", 1, "150000")
	require.NoError(t, err)
	_, err = svc.SetCurrentPlatforms(state.ID, []string{"BT Panorama (Full Menu)"})
	require.NoError(t, err)

	result, err := svc.Comparison(state.ID)
	require.NoError(t, err)
	assert.Equal(t, "Total Account Balances", result.BalanceHeader)
	require.Len(t, result.Platforms, 5)
	assert.Equal(t, "BT Panorama (Full Menu)", result.Platforms[0].Name)
	assert.True(t, result.Platforms[0].IsCurrent)
}

func TestBreakdownResolvesUmbrellaName(t *testing.T) {
	svc := newTestService()
	state := svc.CreateSession(1, 1)

	_, err := svc.UpdateBalance(state.ID, "idps", 1, "100000")
	require.NoError(t, err)
	_, err = svc.UpdateBalance(state.ID, "super", 1, "100000")
	require.NoError(t, err)

	breakdowns, err := svc.Breakdown(state.ID, "CFS Edge Investment")
	require.NoError(t, err)
	require.Len(t, breakdowns, 2)
	assert.Equal(t, "CFS Edge Investment", breakdowns[0].ScheduleName)
	assert.Equal(t, "CFS Edge Super", breakdowns[1].ScheduleName)

	_, err = svc.Breakdown(state.ID, "Fee Free Wrap")
	assert.ErrorIs(t, err, ErrUnknownPlatform)
}

func TestExportCSV(t *testing.T) {
	svc := newTestService()
	state := svc.CreateSession(0, 1)

	_, err := svc.UpdateBalance(state.ID, "super", 1, "500000")
	require.NoError(t, err)
	_, err = svc.SetCurrentPlatforms(state.ID, []string{"Centric One"})
	require.NoError(t, err)

	data, err := svc.ExportCSV(state.ID)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "Platform,Admin Fee,Expense Recovery,Total Fee", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Centric One (Current),1291.50,0.00,1291.50"), lines[1])
}

func TestExportPDF(t *testing.T) {
	svc := newTestService()
	state := svc.CreateSession(1, 0)

	_, err := svc.UpdateBalance(state.ID, "idps", 1, "250000")
	require.NoError(t, err)
	_, err = svc.SetPreference(state.ID, models.PreferenceCustom, "Reviewed <script>alert(1)</script> quarterly.")
	require.NoError(t, err)

	data, err := svc.ExportPDF(state.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.NotEmpty(t, data)
}

func TestExportsRequireSession(t *testing.T) {
	svc := newTestService()

	_, err := svc.ExportCSV("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = svc.ExportPDF("missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionExpiry(t *testing.T) {
	svc := NewComparisonService(processors.NewComparisonProcessor(), 10*time.Millisecond, time.Hour, 10)
	state := svc.CreateSession(1, 0)

	time.Sleep(30 * time.Millisecond)
	_, err := svc.GetSession(state.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSlidingExpiry(t *testing.T) {
	svc := NewComparisonService(processors.NewComparisonProcessor(), 60*time.Millisecond, time.Hour, 10)
	state := svc.CreateSession(1, 0)

	// Touching the session before expiry keeps it alive past the original TTL.
	for i := 0; i < 4; i++ {
		time.Sleep(30 * time.Millisecond)
		_, err := svc.GetSession(state.ID)
		require.NoError(t, err)
	}
}
