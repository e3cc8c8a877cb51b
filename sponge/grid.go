package sponge

import (
	"encoding/binary"

	xxhash "github.com/cespare/xxhash/v2"
)

// Grid is a cubic boolean occupancy grid of side Side.
// Voxels are stored in a single contiguous buffer indexed x + y*Side + z*Side*Side,
// so runs along x are contiguous. true = solid, false = empty.
// A Grid is read-only once returned by Build.
type Grid struct {
	Side int
	vox  []bool
}

func newGrid(side int) *Grid {
	return &Grid{Side: side, vox: make([]bool, side*side*side)}
}

func (g *Grid) index(x, y, z int) int {
	return x + y*g.Side + z*g.Side*g.Side
}

// At returns the voxel at (x, y, z). Out-of-range coordinates read as empty.
func (g *Grid) At(x, y, z int) bool {
	if x < 0 || x >= g.Side || y < 0 || y >= g.Side || z < 0 || z >= g.Side {
		return false
	}
	return g.vox[g.index(x, y, z)]
}

func (g *Grid) set(x, y, z int, v bool) {
	g.vox[g.index(x, y, z)] = v
}

// blit copies src into g with its origin at (ox, oy, oz).
// The destination block must lie fully inside g.
func (g *Grid) blit(src *Grid, ox, oy, oz int) {
	n := src.Side
	for z := 0; z < n; z++ {
		for y := 0; y < n; y++ {
			srcRow := src.vox[src.index(0, y, z) : src.index(0, y, z)+n]
			dst := g.index(ox, oy+y, oz+z)
			copy(g.vox[dst:dst+n], srcRow)
		}
	}
}

// Count returns the number of solid voxels.
func (g *Grid) Count() int {
	n := 0
	for _, v := range g.vox {
		if v {
			n++
		}
	}
	return n
}

// Equal reports whether g and other have the same side and the same occupancy.
func (g *Grid) Equal(other *Grid) bool {
	if g.Side != other.Side {
		return false
	}
	for i, v := range g.vox {
		if v != other.vox[i] {
			return false
		}
	}
	return true
}

// PackBits packs the occupancy into a bitmap, one bit per voxel in linear
// order, LSB-first within each byte.
func (g *Grid) PackBits() []byte {
	bitmap := make([]byte, (len(g.vox)+7)/8)
	for i, v := range g.vox {
		if v {
			bitmap[i>>3] |= 1 << (uint(i) & 7)
		}
	}
	return bitmap
}

// Checksum returns an xxhash-64 fingerprint of the grid (side + occupancy).
// Structurally identical grids always hash equal.
func (g *Grid) Checksum() uint64 {
	d := xxhash.New()
	var side [4]byte
	binary.LittleEndian.PutUint32(side[:], uint32(g.Side))
	_, _ = d.Write(side[:])
	_, _ = d.Write(g.PackBits())
	return d.Sum64()
}
