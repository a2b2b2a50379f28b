package utils_test

import (
	"strings"
	"testing"
	"time"

	"github.com/nunsahui/cafeledger/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReceiptNumberFormat(t *testing.T) {
	now := time.UnixMilli(1736899200000)
	got, err := utils.GenerateReceiptNumber(now)
	require.NoError(t, err)

	parts := strings.SplitN(got, "-", 3)
	require.Len(t, parts, 3)
	assert.Equal(t, "RCP", parts[0])
	assert.Equal(t, "1736899200000", parts[1])
	assert.Len(t, parts[2], 5)
}

func TestGenerateReceiptNumberVaries(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		n, err := utils.GenerateReceiptNumber(now)
		require.NoError(t, err)
		seen[n] = true
	}
	// Same timestamp, random suffixes: collisions across 50 draws from a
	// 32^5 space would indicate a broken generator.
	assert.Greater(t, len(seen), 45)
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.Decimal
		decimals int32
		want     string
	}{
		{"two decimals with separators", decimal.NewFromFloat(1234567.5), 2, "₦1,234,567.50"},
		{"zero decimals", decimal.NewFromInt(5000), 0, "₦5,000"},
		{"small value", decimal.NewFromInt(42), 2, "₦42.00"},
		{"zero", decimal.Zero, 0, "₦0"},
		{"negative", decimal.NewFromInt(-1500), 0, "-₦1,500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatAmount(tt.amount, tt.decimals))
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := utils.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	assert.True(t, utils.CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, utils.CheckPasswordHash("wrong password", hash))
}
