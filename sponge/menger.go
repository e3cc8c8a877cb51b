package sponge

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel is returned when a recursion level is negative.
var ErrInvalidLevel = errors.New("recursion level must be non-negative")

// DefaultLevel is the recursion depth used by the standalone tool.
const DefaultLevel = 3

// SideLen returns the grid side length for the given level, 3^level.
func SideLen(level int) int {
	side := 1
	for i := 0; i < level; i++ {
		side *= 3
	}
	return side
}

// Build constructs the 20-cube Menger sponge at the given recursion level and
// returns it as a cubic boolean occupancy grid of side 3^level.
//
// At each subdivision step the 3x3x3 block decomposition drops the seven
// subcubes whose relative position (i,j,k) has two or more coordinates equal
// to 1 (the six face centers and the body center); the remaining twenty
// receive a copy of the level-1 grid. Level 0 is a single solid voxel.
//
// Memory grows as 27^level voxels; there is no internal depth limit, so
// callers must keep level small enough for the allocation to succeed.
func Build(level int) (*Grid, error) {
	if level < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	return build(level), nil
}

func build(level int) *Grid {
	if level == 0 {
		g := newGrid(1)
		g.set(0, 0, 0, true)
		return g
	}
	prev := build(level - 1)
	n := prev.Side
	g := newGrid(3 * n)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				if ones(i)+ones(j)+ones(k) >= 2 {
					continue
				}
				g.blit(prev, i*n, j*n, k*n)
			}
		}
	}
	return g
}

func ones(c int) int {
	if c == 1 {
		return 1
	}
	return 0
}

// Occupied decides a single voxel of the level-`level` sponge without building
// the grid, by inspecting the ternary digits of the coordinates from most
// significant down: the voxel is empty iff at any depth two or more of the
// three digits equal 1. Agrees with Build on every in-range voxel.
func Occupied(x, y, z, level int) (bool, error) {
	if level < 0 {
		return false, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	side := SideLen(level)
	if x < 0 || x >= side || y < 0 || y >= side || z < 0 || z >= side {
		return false, fmt.Errorf("coordinate (%d,%d,%d) out of range for side %d", x, y, z, side)
	}
	for n := side / 3; n >= 1; n /= 3 {
		if ones(x/n%3)+ones(y/n%3)+ones(z/n%3) >= 2 {
			return false, nil
		}
	}
	return true, nil
}
