package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right corner (exclusive)", 30, 30, false},
		{"just inside bottom-right", 29, 29, true},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 35, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.Contains(tc.x, tc.y))
		})
	}
}

func TestGridColumn(t *testing.T) {
	// 12 columns, two characters each, starting after a one-char border.
	g := NewGrid(1, 1, 12, 20, 2)

	tests := []struct {
		name     string
		x        int
		expected int
	}{
		{"left of grid", 0, 0},
		{"first cell left half", 1, 0},
		{"first cell right half", 2, 0},
		{"second cell", 3, 1},
		{"last cell", 24, 11},
		{"right of grid", 60, 11},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, g.Column(tc.x))
		})
	}

	assert.Equal(t, 24, g.Origin.W)
	assert.Equal(t, 7, g.ScreenX(3))
}

func TestGridColumnDegenerate(t *testing.T) {
	var g Grid
	assert.Equal(t, 0, g.Column(5))
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, Clamp(tc.val, tc.lo, tc.hi), "Clamp(%d, %d, %d)", tc.val, tc.lo, tc.hi)
	}
}
