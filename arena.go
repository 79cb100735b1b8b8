// seehuhn.de/go/render3d - a software triangle pipeline
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package render3d

import "fmt"

// laneAlign is the alignment, in float32 lanes, of the attribute blocks
// allocated by the pipeline.
const laneAlign = 4

// minArenaBlock is the smallest block allocated by a growing arena.
const minArenaBlock = 256

// Arena is a bump allocator for the per-triangle scratch data of the
// pipeline: vertex shader outputs, attribute blocks of clip vertices and
// the interpolated pixel shader input.  Memory is handed out sequentially
// and reclaimed all at once by [Arena.Reset].  The draw functions never
// reset an arena passed to [DrawTriangle]; [DrawIndexed] resets it before
// each triangle.
//
// An Arena is not safe for concurrent use.  Concurrent draw calls need one
// arena each.
type Arena struct {
	buf  []float32
	used int
	grow bool

	// poly holds the two polygons the clipper alternates between.
	poly [2][maxClipVertices]clipVertex
}

// NewArena returns an arena with a fixed capacity of the given number of
// float32 lanes.  Allocations beyond the capacity fail with
// [ErrArenaExhausted].  Use [RequiredArenaLanes] to size the arena for a
// pipeline state.
func NewArena(lanes int) *Arena {
	return &Arena{buf: make([]float32, max(lanes, 0))}
}

// NewGrowingArena returns an arena which starts with the given capacity
// and allocates a larger block whenever an allocation does not fit.
// Slices returned earlier stay valid when the arena grows.
func NewGrowingArena(lanes int) *Arena {
	a := NewArena(lanes)
	a.grow = true
	return a
}

// Alloc returns n zeroed float32 lanes whose offset in the arena is a
// multiple of align.  The returned slice has capacity n.
func (a *Arena) Alloc(n, align int) ([]float32, error) {
	if n < 0 {
		panic(fmt.Sprintf("render3d: negative allocation size %d", n))
	}
	if n == 0 {
		return []float32{}, nil
	}
	align = max(align, 1)

	off := roundUp(a.used, align)
	if off+n > len(a.buf) {
		if !a.grow {
			return nil, fmt.Errorf("%w: %d lanes requested, %d of %d in use",
				ErrArenaExhausted, n, a.used, len(a.buf))
		}
		a.newBlock(n + align)
		off = 0
	}
	a.used = off + n
	res := a.buf[off : off+n : off+n]
	clear(res)
	return res, nil
}

// Reset makes the whole capacity available again.  Slices returned by
// earlier calls to Alloc must no longer be used.
func (a *Arena) Reset() {
	a.used = 0
}

// Used returns the number of lanes allocated since the last reset,
// including alignment padding.
func (a *Arena) Used() int { return a.used }

// Cap returns the capacity of the current block, in lanes.
func (a *Arena) Cap() int { return len(a.buf) }

// reserve makes sure that n more lanes, starting at a laneAlign boundary,
// fit into the current block.
func (a *Arena) reserve(n int) error {
	if roundUp(a.used, laneAlign)+n <= len(a.buf) {
		return nil
	}
	if !a.grow {
		return fmt.Errorf("%w: one triangle needs %d lanes, %d of %d in use",
			ErrArenaExhausted, n, a.used, len(a.buf))
	}
	a.newBlock(n)
	return nil
}

func (a *Arena) newBlock(minLanes int) {
	size := max(2*len(a.buf), minLanes, minArenaBlock)
	Logger().Debug("render3d: arena grown", "lanes", size, "previous", len(a.buf))
	a.buf = make([]float32, size)
	a.used = 0
}

// RequiredArenaLanes returns the number of float32 lanes one triangle may
// need in the worst case with the given pipeline state: three vertex
// shader outputs, one pixel shader input, and two new vertices for each of
// the seven clip planes.
func RequiredArenaLanes(ps *PipelineState) int {
	block := roundUp(ps.OutputSize/4, laneAlign)
	return (3 + 1 + 2*numClipPlanes) * block
}

func roundUp(n, align int) int {
	return (n + align - 1) / align * align
}
