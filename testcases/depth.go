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

package testcases

var depthCases = []TestCase{
	{
		Name:      "near_over_far",
		Triangles: overlapping(false),
		Width:     64,
		Height:    64,
		Depth:     true,
	},
	{
		Name:      "far_over_near",
		Triangles: overlapping(true),
		Width:     64,
		Height:    64,
		Depth:     true,
	},
	{
		// Without a depth buffer, triangles are painted in order.
		Name:      "painter",
		Triangles: overlapping(true),
		Width:     64,
		Height:    64,
	},
	{
		Name: "intersecting",
		Triangles: []Triangle{
			flat(red, v(-0.9, -0.6, -0.8, 1), v(0.9, -0.6, 0.8, 1), v(0.9, 0.6, 0.8, 1)),
			flat(blue, v(-0.9, 0.7, 0.8, 1), v(-0.9, -0.7, 0.8, 1), v(0.9, 0, -0.8, 1)),
		},
		Width:  64,
		Height: 64,
		Depth:  true,
	},
	{
		Name:      "stacked",
		Triangles: stacked(),
		Width:     64,
		Height:    64,
		Depth:     true,
	},
}

// overlapping returns a far red triangle and a near blue triangle which
// partially cover each other.  If nearFirst is true, the near triangle is
// drawn first.
func overlapping(nearFirst bool) []Triangle {
	far := screenTriangle(64, 64, 0.5, red, 4, 8, 44, 8, 24, 56)
	near := screenTriangle(64, 64, -0.5, blue, 20, 4, 60, 4, 40, 52)
	if nearFirst {
		return []Triangle{near, far}
	}
	return []Triangle{far, near}
}

// stacked returns overlapping squares at different depths, not in depth
// order.
func stacked() []Triangle {
	var res []Triangle
	for i, z := range []float32{0.2, -0.6, 0.7, -0.1, 0.4} {
		x := 6 + 8*float32(i)
		col := white.Mul(0.2 + 0.8*(1-z)/2)
		res = append(res, rectangle(64, 64, z, col, x, x, x+24, x+24)...)
	}
	return res
}
