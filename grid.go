package kinema

import (
	"fmt"
	"math"
	"sort"
)

// CheckGrid checks that grid holds at least two finite, strictly increasing
// parameter values.
func CheckGrid(grid []float64) error {
	if len(grid) < 2 {
		return fmt.Errorf("%w: grid has %d nodes, need at least 2", ErrTooFewPoints, len(grid))
	}
	for i, g := range grid {
		if !IsFinite(g) {
			return fmt.Errorf("%w: grid[%d] = %g", ErrGridNotIncreasing, i, g)
		}
		if i > 0 && g <= grid[i-1] {
			return fmt.Errorf("%w: grid[%d] = %g follows %g", ErrGridNotIncreasing, i, g, grid[i-1])
		}
	}
	return nil
}

// UniformGrid returns n evenly spaced parameter values from tmin to tmax.
func UniformGrid(n int, tmin, tmax float64) []float64 {
	grid := make([]float64, n)
	for i := range grid {
		grid[i] = tmin + (tmax-tmin)*float64(i)/float64(n-1)
	}
	if n > 1 {
		grid[n-1] = tmax
	}
	return grid
}

// Locate finds the grid segment containing t. Segments are half-open,
// t in [grid[i], grid[i+1]) yields segment i with weight
// w = (t - grid[i]) / (grid[i+1] - grid[i]). The last node belongs to the
// last segment, with w = 1.
//
// Parameters outside the grid are clamped to the nearest node and reported
// with ok = false. grid must have passed CheckGrid.
func Locate(grid []float64, t float64) (i int, w float64, ok bool) {
	n := len(grid)
	switch {
	case math.IsNaN(t) || t < grid[0]:
		return 0, 0, false
	case t >= grid[n-1]:
		return n - 2, 1, t == grid[n-1]
	}
	i = sort.Search(n, func(k int) bool { return grid[k] > t }) - 1
	w = (t - grid[i]) / (grid[i+1] - grid[i])
	return i, w, true
}
