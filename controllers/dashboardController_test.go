package controllers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPercentChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		want     float64
	}{
		{"growth", 150, 100, 50},
		{"decline", 50, 100, -50},
		{"flat", 100, 100, 0},
		{"zero baseline", 500, 0, 0},
		{"both zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, percentChange(tt.current, tt.previous), 0.0001)
		})
	}
}

func TestSalesAverages(t *testing.T) {
	avgSale, avgItems := salesAverages(2500, 10, 5)
	assert.InDelta(t, 500, avgSale, 0.0001)
	assert.InDelta(t, 2, avgItems, 0.0001)
}

func TestSalesAverages_NoPaidOrders(t *testing.T) {
	avgSale, avgItems := salesAverages(0, 0, 0)
	assert.Zero(t, avgSale)
	assert.Zero(t, avgItems)
}

func TestStartOfMonth(t *testing.T) {
	loc := time.UTC
	got := startOfMonth(time.Date(2024, time.March, 17, 13, 45, 2, 0, loc))
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, loc), got)

	// First of the month is already the boundary
	first := time.Date(2024, time.January, 1, 0, 0, 0, 0, loc)
	assert.Equal(t, first, startOfMonth(first))
}

func TestPreviousMonthWindow(t *testing.T) {
	loc := time.UTC
	currentStart := startOfMonth(time.Date(2024, time.March, 17, 10, 0, 0, 0, loc))
	lastStart := startOfMonth(currentStart.AddDate(0, 0, -1))

	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, loc), lastStart)
}
