package scheme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		raw  string
		want float64
	}{
		{"₹1,234.50 Cr", 1234.50},
		{"1200", 1200},
		{"INR 450 crores", 450},
		{"", 0},
		{"   ", 0},
		{"TBD", 0},
		{"1.2.3", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseMoney(tc.raw), "raw=%q", tc.raw)
	}
}

func TestSharePercent(t *testing.T) {
	assert.Equal(t, 25, SharePercent(300, 1200))
	assert.Equal(t, 33, SharePercent(1, 3))
	assert.Equal(t, 67, SharePercent(2, 3))
	assert.Equal(t, 0, SharePercent(100, 0), "zero budget must not divide")
	assert.Equal(t, 0, SharePercent(100, -5))
}

func TestRemaining(t *testing.T) {
	assert.Equal(t, 900.0, Remaining(1200, 300))
	assert.Equal(t, 0.0, Remaining(300, 1200), "overspend floors at zero")
}

func TestTotalIncentive(t *testing.T) {
	records := []Record{
		{IncentiveSize: "10"},
		{IncentiveSize: "₹20 Cr"},
		{IncentiveSize: "not a number"},
	}
	assert.Equal(t, 30.0, TotalIncentive(records))
	assert.Equal(t, 0.0, TotalIncentive(nil))
}

func TestFormatCrores(t *testing.T) {
	cases := []struct {
		v        float64
		decimals int
		want     string
	}{
		{1234.5, 2, "1,234.50"},
		{1234567.5, 2, "12,34,567.50"},
		{123, 0, "123"},
		{1200, 0, "1,200"},
		{98765432, 0, "9,87,65,432"},
		{-1234.5, 2, "-1,234.50"},
		{0, 2, "0.00"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCrores(tc.v, tc.decimals), "v=%v", tc.v)
	}
}
