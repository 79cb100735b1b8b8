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

// cullPair returns a counter-clockwise triangle (left) and a clockwise
// triangle (right).
func cullPair() []Triangle {
	return []Triangle{
		screenTriangle(64, 32, 0, red, 4, 4, 28, 4, 16, 28),
		screenTriangle(64, 32, 0, blue, 36, 4, 48, 28, 60, 4),
	}
}

var cullCases = []TestCase{
	{
		Name:      "none",
		Triangles: cullPair(),
		Width:     64,
		Height:    32,
	},
	{
		Name:      "back_ccw",
		Triangles: cullPair(),
		Width:     64,
		Height:    32,
		Cull:      CullBack,
	},
	{
		Name:      "back_cw",
		Triangles: cullPair(),
		Width:     64,
		Height:    32,
		Cull:      CullBack,
		Front:     CW,
	},
	{
		Name:      "front_ccw",
		Triangles: cullPair(),
		Width:     64,
		Height:    32,
		Cull:      CullFront,
	},
	{
		Name:      "front_cw",
		Triangles: cullPair(),
		Width:     64,
		Height:    32,
		Cull:      CullFront,
		Front:     CW,
	},
	{
		Name:      "both",
		Triangles: cullPair(),
		Width:     64,
		Height:    32,
		Cull:      CullBoth,
	},
	{
		// Culling of a clipped triangle uses the orientation of its
		// visible part.
		Name: "back_clipped",
		Triangles: []Triangle{
			shaded(v(-0.5, -0.5, 0, 1), v(0.5, -0.5, 0, 1), v(0.2, 0.5, 0, -0.5), red, green, blue),
			shaded(v(-0.9, 0.6, 0, 1), v(1.6, 0.9, 0, 1), v(-0.8, 0.95, 0, 1), yellow, white, blue),
			shaded(v(-0.9, -0.95, 0, 1), v(-0.7, -0.6, 0, 1), v(1.5, -0.9, 0, 1), yellow, white, blue),
		},
		Width:  64,
		Height: 64,
		Cull:   CullBack,
	},
}
