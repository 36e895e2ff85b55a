package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test FormatINR
func TestFormatINR(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		amount int64
		want   string
	}{
		{name: "zero", amount: 0, want: "₹0"},
		{name: "under_thousand", amount: 123, want: "₹123"},
		{name: "thousand", amount: 1000, want: "₹1,000"},
		{name: "lakh", amount: 100000, want: "₹1,00,000"},
		{name: "base_price", amount: 200000, want: "₹2,00,000"},
		{name: "typical_bid", amount: 201000, want: "₹2,01,000"},
		{name: "crore", amount: 12345678, want: "₹1,23,45,678"},
		{name: "negative", amount: -5000, want: "-₹5,000"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, FormatINR(tc.amount))
		})
	}
}
