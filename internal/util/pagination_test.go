package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	tests := []struct {
		page, size         int
		wantOffset, wantLm int
	}{
		{1, 10, 0, 10},
		{3, 10, 20, 10},
		{0, 10, 0, 10},
		{-2, 5, 0, 5},
		{2, 0, DefaultPageSize, DefaultPageSize},
		{1, MaxPageSize, 0, MaxPageSize},
		{1, MaxPageSize + 1, 0, DefaultPageSize},
	}
	for _, tt := range tests {
		offset, limit := Calculate(tt.page, tt.size)
		assert.Equal(t, tt.wantOffset, offset, "page=%d size=%d", tt.page, tt.size)
		assert.Equal(t, tt.wantLm, limit, "page=%d size=%d", tt.page, tt.size)
	}
}

func TestCalculate_HugePageDoesNotOverflow(t *testing.T) {
	for _, size := range []int{1, 7, DefaultPageSize, MaxPageSize} {
		offset, limit := Calculate(math.MaxInt, size)
		assert.Equal(t, size, limit)
		assert.GreaterOrEqual(t, offset, 0, "size=%d", size)
		assert.Greater(t, offset, math.MaxInt-size, "size=%d", size)
	}
}

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 7, ParseIntDefault("", 7))
	assert.Equal(t, 7, ParseIntDefault("x", 7))
	assert.Equal(t, 3, ParseIntDefault("3", 7))
}
