package sponge_test

import (
	"errors"
	"testing"

	"github.com/voxelsplace/menger/go/sponge"
)

func mustBuild(t *testing.T, level int) *sponge.Grid {
	t.Helper()
	g, err := sponge.Build(level)
	if err != nil {
		t.Fatalf("Build(%d) failed: %v", level, err)
	}
	return g
}

// the seven subcubes dropped at every subdivision step
var removedBlocks = [][3]int{
	{1, 1, 0}, {1, 1, 2}, {1, 0, 1}, {1, 2, 1}, {0, 1, 1}, {2, 1, 1}, {1, 1, 1},
}

func isRemoved(i, j, k int) bool {
	for _, r := range removedBlocks {
		if r[0] == i && r[1] == j && r[2] == k {
			return true
		}
	}
	return false
}

func TestBuildSideLength(t *testing.T) {
	want := 1
	for level := 0; level <= 3; level++ {
		g := mustBuild(t, level)
		if g.Side != want {
			t.Fatalf("level %d: side = %d, want %d", level, g.Side, want)
		}
		if g.Side != sponge.SideLen(level) {
			t.Fatalf("level %d: SideLen disagrees with Build: %d vs %d", level, sponge.SideLen(level), g.Side)
		}
		want *= 3
	}
}

func TestBuildLevelZero(t *testing.T) {
	g := mustBuild(t, 0)
	if g.Side != 1 || !g.At(0, 0, 0) {
		t.Fatalf("level 0 must be a single solid voxel, got side %d, At(0,0,0)=%v", g.Side, g.At(0, 0, 0))
	}
	if g.Count() != 1 {
		t.Fatalf("level 0 count = %d, want 1", g.Count())
	}
}

func TestBuildLevelOne(t *testing.T) {
	g := mustBuild(t, 1)
	if g.Side != 3 {
		t.Fatalf("level 1 side = %d, want 3", g.Side)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				want := !isRemoved(i, j, k)
				if g.At(i, j, k) != want {
					t.Fatalf("level 1 voxel (%d,%d,%d) = %v, want %v", i, j, k, g.At(i, j, k), want)
				}
			}
		}
	}
	if g.Count() != 20 {
		t.Fatalf("level 1 count = %d, want 20", g.Count())
	}
}

func TestBuildVoxelCounts(t *testing.T) {
	want := 1
	for level := 0; level <= 3; level++ {
		g := mustBuild(t, level)
		if got := g.Count(); got != want {
			t.Fatalf("level %d count = %d, want %d (20^level)", level, got, want)
		}
		want *= 20
	}
}

func TestBuildRecursiveStructure(t *testing.T) {
	prev := mustBuild(t, 1)
	g := mustBuild(t, 2)
	n := prev.Side
	if g.Side != 3*n {
		t.Fatalf("level 2 side = %d, want %d", g.Side, 3*n)
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				removed := isRemoved(i, j, k)
				for x := 0; x < n; x++ {
					for y := 0; y < n; y++ {
						for z := 0; z < n; z++ {
							got := g.At(i*n+x, j*n+y, k*n+z)
							want := !removed && prev.At(x, y, z)
							if got != want {
								t.Fatalf("block (%d,%d,%d) voxel (%d,%d,%d) = %v, want %v", i, j, k, x, y, z, got, want)
							}
						}
					}
				}
			}
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	a := mustBuild(t, 2)
	b := mustBuild(t, 2)
	if !a.Equal(b) {
		t.Fatal("two builds of the same level differ")
	}
	if a.Checksum() != b.Checksum() {
		t.Fatalf("checksums differ for identical grids: %016x vs %016x", a.Checksum(), b.Checksum())
	}
	seen := map[uint64]int{}
	for level := 0; level <= 3; level++ {
		sum := mustBuild(t, level).Checksum()
		if other, dup := seen[sum]; dup {
			t.Fatalf("levels %d and %d share checksum %016x", other, level, sum)
		}
		seen[sum] = level
	}
}

func TestBuildNegativeLevel(t *testing.T) {
	g, err := sponge.Build(-1)
	if err == nil {
		t.Fatal("expected error for negative level, got nil")
	}
	if !errors.Is(err, sponge.ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
	if g != nil {
		t.Fatal("expected nil grid for negative level")
	}
}

func TestOccupiedMatchesBuild(t *testing.T) {
	for level := 0; level <= 2; level++ {
		g := mustBuild(t, level)
		for x := 0; x < g.Side; x++ {
			for y := 0; y < g.Side; y++ {
				for z := 0; z < g.Side; z++ {
					got, err := sponge.Occupied(x, y, z, level)
					if err != nil {
						t.Fatalf("Occupied(%d,%d,%d,%d) failed: %v", x, y, z, level, err)
					}
					if got != g.At(x, y, z) {
						t.Fatalf("Occupied(%d,%d,%d,%d) = %v, Build says %v", x, y, z, level, got, g.At(x, y, z))
					}
				}
			}
		}
	}
}

func TestOccupiedRejectsBadInput(t *testing.T) {
	if _, err := sponge.Occupied(0, 0, 0, -1); !errors.Is(err, sponge.ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel for negative level, got %v", err)
	}
	if _, err := sponge.Occupied(3, 0, 0, 1); err == nil {
		t.Fatal("expected error for out-of-range coordinate, got nil")
	}
}

func TestGridPackBits(t *testing.T) {
	g := mustBuild(t, 1)
	bits := g.PackBits()
	if len(bits) != (27+7)/8 {
		t.Fatalf("bitmap length = %d, want %d", len(bits), (27+7)/8)
	}
	set := 0
	for _, b := range bits {
		for ; b != 0; b &= b - 1 {
			set++
		}
	}
	if set != g.Count() {
		t.Fatalf("bitmap has %d set bits, grid has %d solid voxels", set, g.Count())
	}
}
