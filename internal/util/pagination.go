package util

import (
	"math"
	"strconv"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 50
)

func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return def
}

// Calculate turns a 1-based page and a page size into offset and limit.
// Sizes outside 1..MaxPageSize fall back to DefaultPageSize. Page is
// clamped so the offset cannot overflow.
func Calculate(page, size int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > MaxPageSize {
		size = DefaultPageSize
	}
	if maxPage := math.MaxInt/size + 1; page > maxPage {
		page = maxPage
	}
	return (page - 1) * size, size
}
