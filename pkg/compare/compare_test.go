package compare_test

import (
	"testing"

	. "github.com/sqlfront/sqlfront/pkg/compare"
	"github.com/sqlfront/sqlfront/pkg/utils"
	"github.com/stretchr/testify/require"
)

func TestNilCheck(t *testing.T) {
	tests := []struct {
		name             string
		a, b             *int
		expectedEqual    bool
		expectedContinue bool
	}{
		{
			name:             "both nil",
			a:                nil,
			b:                nil,
			expectedEqual:    true,
			expectedContinue: false,
		},
		{
			name:             "first nil",
			a:                nil,
			b:                utils.Ptr(5),
			expectedEqual:    false,
			expectedContinue: false,
		},
		{
			name:             "second nil",
			a:                utils.Ptr(5),
			b:                nil,
			expectedEqual:    false,
			expectedContinue: false,
		},
		{
			name:             "neither nil",
			a:                utils.Ptr(5),
			b:                utils.Ptr(5),
			expectedEqual:    false,
			expectedContinue: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			equal, shouldContinue := NilCheck(tt.a, tt.b)
			require.Equal(t, tt.expectedEqual, equal)
			require.Equal(t, tt.expectedContinue, shouldContinue)
		})
	}
}

func TestPointers(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *int
		expected bool
	}{
		{name: "both nil", a: nil, b: nil, expected: true},
		{name: "first nil", a: nil, b: utils.Ptr(5), expected: false},
		{name: "second nil", a: utils.Ptr(5), b: nil, expected: false},
		{name: "equal values", a: utils.Ptr(5), b: utils.Ptr(5), expected: true},
		{name: "different values", a: utils.Ptr(5), b: utils.Ptr(6), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Pointers(tt.a, tt.b))
		})
	}
}

func TestPointersWithEqual(t *testing.T) {
	type pair struct{ x, y int }

	eq := func(a, b *pair) bool { return a.x == b.x && a.y == b.y }

	tests := []struct {
		name     string
		a, b     *pair
		expected bool
	}{
		{name: "both nil", a: nil, b: nil, expected: true},
		{name: "first nil", a: nil, b: &pair{1, 2}, expected: false},
		{name: "second nil", a: &pair{1, 2}, b: nil, expected: false},
		{name: "equal", a: &pair{1, 2}, b: &pair{1, 2}, expected: true},
		{name: "not equal", a: &pair{1, 2}, b: &pair{2, 1}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, PointersWithEqual(tt.a, tt.b, eq))
		})
	}
}

func TestSlices(t *testing.T) {
	eq := func(a, b int) bool { return a == b }

	tests := []struct {
		name     string
		a, b     []int
		expected bool
	}{
		{name: "both empty", a: nil, b: nil, expected: true},
		{name: "different lengths", a: []int{1}, b: []int{1, 2}, expected: false},
		{name: "equal", a: []int{1, 2, 3}, b: []int{1, 2, 3}, expected: true},
		{name: "same elements different order", a: []int{1, 2}, b: []int{2, 1}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, Slices(tt.a, tt.b, eq))
		})
	}
}
