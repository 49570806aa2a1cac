package exchange

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveTable_SetRate(t *testing.T) {
	live := NewLiveTable(nil)
	before := live.Snapshot()

	require.NoError(t, live.SetRate("GH", "US", decimal.RequireFromString("0.1")))

	rate, err := live.LookupRate("GH", "US")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.1")))
	assert.Equal(t, "1-2 Business Days", live.LookupDelivery("GH", "US"))
	assert.True(t, live.LookupFee("GH").Equal(decimal.NewFromInt(15)))

	old, err := before.LookupRate("GH", "US")
	require.NoError(t, err)
	assert.True(t, old.Equal(decimal.RequireFromString("0.08325")), "snapshots are immutable")
	assert.Len(t, live.Entries(), 6)
}

func TestLiveTable_SetRateAddsPair(t *testing.T) {
	live := NewLiveTable(nil)
	require.NoError(t, live.SetRate("GH", "GH", decimal.NewFromInt(1)))

	entries := live.Entries()
	require.Len(t, entries, 7)
	assert.Equal(t, "GH-GH", entries[6].Key())
	assert.Equal(t, DefaultDelivery, live.LookupDelivery("GH", "GH"))
}

func TestLiveTable_SetRateRejectsInvalid(t *testing.T) {
	live := NewLiveTable(nil)
	err := live.SetRate("GH", "US", decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidRate)

	rate, err := live.LookupRate("GH", "US")
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.08325")))
}

func TestLiveTable_ConcurrentReadsAndWrites(t *testing.T) {
	live := NewLiveTable(nil)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = live.SetRate("US", "EU", decimal.NewFromInt(int64(i+1)))
		}()
		go func() {
			defer wg.Done()
			_, err := live.LookupRate("US", "EU")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	rate, err := live.LookupRate("US", "EU")
	require.NoError(t, err)
	assert.True(t, rate.IsPositive())
}
