package util

import "github.com/spf13/cast"

const DefaultPageSize = 10

func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	if v, err := cast.ToIntE(s); err == nil {
		return v
	}
	return def
}

// Calculate turns a 1-based page into an offset. Size is capped at 100.
func Calculate(page, size int) (from, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 || size > 100 {
		size = DefaultPageSize
	}
	from = (page - 1) * size
	return from, size
}
