package testutil

import (
	"math"
	"testing"
)

func TestRequireSliceNearlyEqual(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2, 3}, []float64{1, 2.05, 3}, 0.1)
	RequireSliceNearlyEqual(t, nil, nil, 0)
}

func TestRequireFinite(t *testing.T) {
	RequireFinite(t, []float64{0, -1, math.MaxFloat64, math.SmallestNonzeroFloat64})
}
