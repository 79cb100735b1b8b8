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

// Package bresenham walks the pixels of a line segment with integer
// arithmetic only.
package bresenham

// Walk calls visit exactly once for every pixel of the line from (x1, y1)
// to (x2, y2), both endpoints included.
//
// delta is 0 at (x1, y1) and 1 at (x2, y2).  In
// between it grows linearly with the number of steps taken along the
// dominant axis.
//
// The set of visited pixels does not depend on the direction of the
// segment: walking from (x2, y2) to (x1, y1) visits the same pixels.
func Walk(x1, y1, x2, y2 int, visit func(x, y int, delta float64)) {
	switch {
	case x1 == x2 && y1 == y2:
		visit(x1, y1, 0)

	case x1 == x2:
		n := abs(y2 - y1)
		step := sign(y2 - y1)
		for i := range n {
			visit(x1, y1+i*step, float64(i)/float64(n))
		}
		visit(x2, y2, 1)

	case y1 == y2:
		n := abs(x2 - x1)
		step := sign(x2 - x1)
		for i := range n {
			visit(x1+i*step, y1, float64(i)/float64(n))
		}
		visit(x2, y2, 1)

	default:
		dx := abs(x2 - x1)
		dy := abs(y2 - y1)

		// Always walk along the dominant axis in increasing direction,
		// so that shared triangle edges produce identical pixels.
		reversed := false
		if (dx >= dy && x2 < x1) || (dx < dy && y2 < y1) {
			x1, y1, x2, y2 = x2, y2, x1, y1
			reversed = true
		}
		report := func(x, y int, delta float64) {
			if reversed {
				delta = 1 - delta
			}
			visit(x, y, delta)
		}

		if dx >= dy {
			sy := sign(y2 - y1)
			rem := dx / 2
			y := y1
			for i := range dx {
				report(x1+i, y, float64(i)/float64(dx))
				rem += dy
				if rem >= dx {
					rem -= dx
					y += sy
				}
			}
		} else {
			sx := sign(x2 - x1)
			rem := dy / 2
			x := x1
			for i := range dy {
				report(x, y1+i, float64(i)/float64(dy))
				rem += dx
				if rem >= dy {
					rem -= dy
					x += sx
				}
			}
		}
		report(x2, y2, 1)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x < 0 {
		return -1
	}
	return 1
}
