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

import (
	"errors"
	"testing"
)

func TestArenaAlloc(t *testing.T) {
	a := NewArena(32)

	x, err := a.Alloc(3, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(x) != 3 || cap(x) != 3 {
		t.Errorf("len/cap = %d/%d, want 3/3", len(x), cap(x))
	}
	for i := range x {
		x[i] = 7
	}

	y, err := a.Alloc(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if a.Used() != 8 {
		t.Errorf("used %d lanes, want 8", a.Used())
	}
	for i, v := range y {
		if v != 0 {
			t.Errorf("y[%d] = %g, want 0", i, v)
		}
	}
	if x[0] != 7 {
		t.Error("second allocation overwrote the first")
	}

	empty, err := a.Alloc(0, 4)
	if err != nil || empty == nil || len(empty) != 0 {
		t.Errorf("Alloc(0) = %v, %v", empty, err)
	}
}

func TestArenaExhausted(t *testing.T) {
	a := NewArena(10)
	if _, err := a.Alloc(8, 4); err != nil {
		t.Fatal(err)
	}
	_, err := a.Alloc(4, 4)
	if !errors.Is(err, ErrArenaExhausted) {
		t.Fatalf("got %v, want ErrArenaExhausted", err)
	}
	if a.Used() != 8 {
		t.Errorf("failed allocation changed the arena")
	}

	a.Reset()
	if a.Used() != 0 {
		t.Errorf("used %d lanes after reset", a.Used())
	}
	x, err := a.Alloc(10, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range x {
		if v != 0 {
			t.Errorf("x[%d] = %g after reset, want 0", i, v)
		}
	}
}

func TestGrowingArena(t *testing.T) {
	a := NewGrowingArena(4)
	first, err := a.Alloc(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	first[0] = 1

	big, err := a.Alloc(1000, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(big) != 1000 || a.Cap() < 1000 {
		t.Errorf("len %d, capacity %d", len(big), a.Cap())
	}
	big[0] = 2
	if first[0] != 1 {
		t.Error("growing the arena invalidated an earlier allocation")
	}
}

func TestArenaReserve(t *testing.T) {
	a := NewArena(20)
	if _, err := a.Alloc(1, 1); err != nil {
		t.Fatal(err)
	}
	if err := a.reserve(16); err != nil {
		t.Errorf("reserve(16) after 1 lane: %v", err)
	}
	if err := a.reserve(17); !errors.Is(err, ErrArenaExhausted) {
		t.Errorf("reserve(17) after 1 lane: got %v, want ErrArenaExhausted", err)
	}

	g := NewGrowingArena(0)
	if err := g.reserve(100); err != nil {
		t.Fatal(err)
	}
	if g.Cap() < 100 {
		t.Errorf("capacity %d after reserve(100)", g.Cap())
	}
}

func TestRequiredArenaLanes(t *testing.T) {
	cases := []struct {
		outputSize int
		want       int
	}{
		{0, 0},
		{4, 18 * 4},
		{12, 18 * 4},
		{16, 18 * 4},
		{20, 18 * 8},
	}
	for _, c := range cases {
		ps := &PipelineState{OutputSize: c.outputSize}
		if got := RequiredArenaLanes(ps); got != c.want {
			t.Errorf("OutputSize %d: got %d, want %d", c.outputSize, got, c.want)
		}
	}
}

// TestArenaWorstCase draws triangles which are clipped by many planes
// using an arena of exactly the required size.
func TestArenaWorstCase(t *testing.T) {
	ps := testPipeline(1)
	// A large triangle, partly behind the viewer, crossing every side of
	// the view volume.
	in := testInput(8, 8, [][]float32{
		{-3, -3, 3, 1, 0},
		{3, -3, -3, 1, 1},
		{0, 4, 0, -0.5, 2},
	})
	mem := NewArena(RequiredArenaLanes(ps))
	if err := DrawTriangle(ps, in, mem); err != nil {
		t.Fatal(err)
	}
	if mem.Used() > mem.Cap() {
		t.Errorf("used %d of %d lanes", mem.Used(), mem.Cap())
	}
}
