package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	cases := []struct {
		page, size       int
		wantFrom, wantSz int
	}{
		{1, 10, 0, 10},
		{3, 20, 40, 20},
		{0, 5, 0, 5},
		{2, 0, DefaultPageSize, DefaultPageSize},
		{1, 500, 0, DefaultPageSize},
	}
	for _, tc := range cases {
		from, size := Calculate(tc.page, tc.size)
		assert.Equal(t, tc.wantFrom, from)
		assert.Equal(t, tc.wantSz, size)
	}
}

func TestParseIntDefault(t *testing.T) {
	assert.Equal(t, 7, ParseIntDefault("", 7))
	assert.Equal(t, 3, ParseIntDefault("3", 7))
	assert.Equal(t, 7, ParseIntDefault("abc", 7))
}
