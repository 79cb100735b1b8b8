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
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// baryEpsilon is the tolerance of the inside test.  Pixel centres on an
// edge, or up to baryEpsilon outside in barycentric terms, are drawn.
// Pixels on an edge shared by two triangles are drawn by both.
const baryEpsilon = 0x1p-23

// fill draws a filled triangle by testing every pixel centre in the
// bounding box of the triangle.
func (d *drawer) fill(a, b, c *screenVertex, psIn []float32) {
	ab := b.pos.Sub(a.pos)
	ac := c.pos.Sub(a.pos)
	area := cross(ab, ac)
	if area == 0 {
		return
	}
	f := 1 / area

	box := boundingBox(a.pos, b.pos, c.pos)
	x0 := max(int(box.LLx), 0)
	y0 := max(int(box.LLy), 0)
	x1 := min(int(box.URx), d.in.Width-1)
	y1 := min(int(box.URy), d.in.Height-1)

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			p := vec.Vec2{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			ap := p.Sub(a.pos)
			s := cross(ap, ac) * f
			t := cross(ab, ap) * f
			r := 1 - s - t
			if r < -baryEpsilon || s < -baryEpsilon || t < -baryEpsilon {
				continue
			}

			depth := float32(r)*a.depth + float32(s)*b.depth + float32(t)*c.depth
			if !d.depthPass(x, y, depth) {
				continue
			}

			// perspective correction
			wa := float32(r) * a.invW
			wb := float32(s) * b.invW
			wc := float32(t) * c.invW
			norm := 1 / (wa + wb + wc)
			wa, wb, wc = wa*norm, wb*norm, wc*norm
			for j := range psIn {
				psIn[j] = a.attr[j]*wa + b.attr[j]*wb + c.attr[j]*wc
			}

			d.shade(x, y, depth, psIn)
		}
	}
}

// boundingBox returns the smallest rectangle with integer corners which
// contains the three points.
func boundingBox(a, b, c vec.Vec2) rect.Rect {
	return rect.Rect{
		LLx: math.Floor(min(a.X, b.X, c.X)),
		LLy: math.Floor(min(a.Y, b.Y, c.Y)),
		URx: math.Ceil(max(a.X, b.X, c.X)),
		URy: math.Ceil(max(a.Y, b.Y, c.Y)),
	}
}

// cross returns the z component of the cross product of a and b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
