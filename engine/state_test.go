package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneypath/catalog"
)

func TestAddBadgeIdempotent(t *testing.T) {
	st := newState(1000, 48000, 24000)

	assert.True(t, st.AddBadge(catalog.BadgeHodlHero))
	assert.False(t, st.AddBadge(catalog.BadgeHodlHero))
	assert.Len(t, st.Badges, 1)

	assert.True(t, st.AddBadge(catalog.BadgeWarSurvivor))
	assert.Len(t, st.Badges, 2)
}

func TestAddBadgeUnknownKey(t *testing.T) {
	st := newState(1000, 48000, 24000)
	assert.False(t, st.AddBadge(catalog.BadgeKey("NOT_A_BADGE")))
	assert.Empty(t, st.Badges)
}

func TestCloneIsIndependent(t *testing.T) {
	st := newState(1000, 48000, 24000)
	st.AddBadge(catalog.BadgeTechVisionary)
	st.appendNetWorth(2000)

	cp := st.Clone()
	cp.AddBadge(catalog.BadgeLegacyBuilder)
	cp.appendNetWorth(3000)
	cp.Portfolio.Cash = 0

	assert.Len(t, st.Badges, 1)
	assert.Len(t, st.NetWorthHistory, 2)
	assert.Equal(t, 1000.0, st.Portfolio.Cash)
}

func TestNetWorthHistorySkipsConsecutiveDuplicates(t *testing.T) {
	st := newState(1000, 48000, 24000)
	require.Equal(t, []float64{1000}, st.NetWorthHistory)

	st.appendNetWorth(1000)
	assert.Len(t, st.NetWorthHistory, 1)

	st.appendNetWorth(1500)
	st.appendNetWorth(1000)
	assert.Equal(t, []float64{1000, 1500, 1000}, st.NetWorthHistory)
}

func TestNetWorth(t *testing.T) {
	st := newState(1000, 48000, 24000)
	st.Portfolio.Stocks = 500
	st.Portfolio.Debt = 200
	assert.Equal(t, 1300.0, st.NetWorth())
}
