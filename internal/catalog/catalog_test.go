package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedDataLookup(t *testing.T) {
	c := New()

	all := c.All()
	require.NotEmpty(t, all)

	for _, p := range all {
		found, ok := c.ByID(p.ID)
		require.True(t, ok, "professional %s", p.ID)
		assert.Equal(t, p.Name, found.Name)
		assert.NotEmpty(t, p.AvailableDates, "professional %s has no availability", p.ID)
	}

	_, ok := c.ByID("does-not-exist")
	assert.False(t, ok)
}

func TestHasSlot(t *testing.T) {
	p := Professional{
		ID: "p1",
		AvailableDates: []AvailableDate{
			{
				Date: "2023-06-15",
				Slots: []TimeSlot{
					{Time: "09:00 AM", Available: true},
					{Time: "02:00 PM", Available: false},
				},
			},
		},
	}

	tests := []struct {
		date, time string
		want       bool
	}{
		{"2023-06-15", "09:00 AM", true},
		{"2023-06-15", "02:00 PM", false}, // offered but marked unavailable
		{"2023-06-15", "10:00 AM", false}, // time never offered
		{"2023-06-16", "09:00 AM", false}, // date never offered
		{"", "", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, p.HasSlot(tc.date, tc.time), "date=%q time=%q", tc.date, tc.time)
	}
}

func TestCoinPackages(t *testing.T) {
	require.Len(t, CoinPackages, 3)
	for _, pkg := range CoinPackages {
		assert.Greater(t, pkg.Amount, int64(0))
		assert.NotEmpty(t, pkg.Label)
		assert.NotEmpty(t, pkg.Price)
	}
}
