// backend/src/models/models_test.go
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountClass(t *testing.T) {
	class, ok := ParseAccountClass("idps")
	require.True(t, ok)
	assert.Equal(t, ClassIDPS, class)
	assert.Equal(t, "IDPS", class.DisplayName())

	class, ok = ParseAccountClass("super")
	require.True(t, ok)
	assert.Equal(t, ClassSuper, class)
	assert.Equal(t, "Super/Pension", class.DisplayName())

	_, ok = ParseAccountClass("IDPS")
	assert.False(t, ok)
	_, ok = ParseAccountClass("")
	assert.False(t, ok)
}

func TestParsePlatformRoundTrips(t *testing.T) {
	for _, p := range AllPlatforms {
		parsed, ok := ParsePlatform(p.String())
		require.True(t, ok, p.String())
		assert.Equal(t, p, parsed)
	}

	_, ok := ParsePlatform("BT Panorama")
	assert.False(t, ok)
	_, ok = ParsePlatform("")
	assert.False(t, ok)
}

func TestPreferenceModeValid(t *testing.T) {
	assert.True(t, PreferenceStandard.Valid())
	assert.True(t, PreferenceNoOnline.Valid())
	assert.True(t, PreferenceCustom.Valid())
	assert.False(t, PreferenceMode("premium").Valid())
	assert.False(t, PreferenceMode("").Valid())
}

func TestAccountSetBalances(t *testing.T) {
	set := NewAccountSet(2, 1)
	assert.Zero(t, set.TotalBalance())
	assert.Zero(t, set.ActiveAccountCount())

	set.IDPS[0].Balance = 100000
	set.IDPS[1].Balance = 50000
	set.Super[0].Balance = 250000

	assert.Equal(t, 150000.0, set.ClassBalance(ClassIDPS))
	assert.Equal(t, 250000.0, set.ClassBalance(ClassSuper))
	assert.Equal(t, 400000.0, set.TotalBalance())
	assert.Equal(t, 3, set.ActiveAccountCount())
}

func TestAccountsReturnsBackingSlice(t *testing.T) {
	set := NewAccountSet(1, 1)
	set.Accounts(ClassIDPS)[0].Balance = 42

	assert.Equal(t, 42.0, set.IDPS[0].Balance)
}
