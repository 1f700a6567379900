package maze

import (
	"fmt"
	"math/rand"
)

// RandomGrid samples an n×n grid for FromGrid: each cell is open (1) with
// probability density, trialled in row-major order, so a seeded rng always
// yields the same grid. The corners (0,0) and (n-1,n-1) are always open,
// which makes node 0 and node n²-1 usable as start and goal.
//
// rng may be nil only when density is 0 or 1.
// Errors: ErrEmptyGrid (n < 1), ErrBadSize (n > MaxSide), ErrBadDensity,
// ErrNeedRand.
func RandomGrid(n int, density float64, rng *rand.Rand) ([][]int, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrEmptyGrid, n)
	}
	if n > MaxSide {
		return nil, fmt.Errorf("%w: n=%d exceeds %d", ErrBadSize, n, MaxSide)
	}
	if density < 0 || density > 1 {
		return nil, fmt.Errorf("%w: %.3f", ErrBadDensity, density)
	}
	if rng == nil && density > 0 && density < 1 {
		return nil, ErrNeedRand
	}

	cells := make([][]int, n)
	for r := range cells {
		cells[r] = make([]int, n)
		for c := range cells[r] {
			switch density {
			case 0:
			case 1:
				cells[r][c] = 1
			default:
				if rng.Float64() < density {
					cells[r][c] = 1
				}
			}
		}
	}
	cells[0][0], cells[n-1][n-1] = 1, 1

	return cells, nil
}

// Random is FromGrid over RandomGrid(n, density, rand.New(rand.NewSource(seed))).
func Random(n int, density float64, seed int64, opts ...Option) (*Maze, error) {
	cells, err := RandomGrid(n, density, rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}

	return FromGrid(cells, opts...)
}
