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

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/render3d/internal/bresenham"
)

// wireframe draws the three edges of a triangle.  Depth and attributes
// are interpolated linearly along each edge, without perspective
// correction.
func (d *drawer) wireframe(a, b, c *screenVertex, psIn []float32) {
	ax, ay := d.pixel(a.pos)
	bx, by := d.pixel(b.pos)
	cx, cy := d.pixel(c.pos)
	d.edge(ax, ay, bx, by, a, b, psIn)
	d.edge(ax, ay, cx, cy, a, c, psIn)
	d.edge(bx, by, cx, cy, b, c, psIn)
}

// pixel returns the pixel containing p, clamped to the target.
func (d *drawer) pixel(p vec.Vec2) (x, y int) {
	x = int(math.Floor(min(max(p.X, 0), float64(d.in.Width-1))))
	y = int(math.Floor(min(max(p.Y, 0), float64(d.in.Height-1))))
	return x, y
}

func (d *drawer) edge(x1, y1, x2, y2 int, a, b *screenVertex, psIn []float32) {
	bresenham.Walk(x1, y1, x2, y2, func(x, y int, delta float64) {
		t := float32(delta)
		depth := (1-t)*a.depth + t*b.depth
		if !d.depthPass(x, y, depth) {
			return
		}
		for j := range psIn {
			psIn[j] = (1-t)*a.attr[j] + t*b.attr[j]
		}
		d.shade(x, y, depth, psIn)
	})
}
