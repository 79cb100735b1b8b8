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

var clipCases = []TestCase{
	// Triangles crossing the sides of the view volume
	{
		Name: "one_vertex_outside",
		Triangles: []Triangle{
			shaded(v(-0.5, -0.5, 0, 1), v(0.5, -0.6, 0, 1), v(1.8, 0.7, 0, 1), red, green, blue),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "two_vertices_outside",
		Triangles: []Triangle{
			shaded(v(-0.6, -0.4, 0, 1), v(1.7, -0.9, 0, 1), v(1.2, 1.6, 0, 1), red, green, blue),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "all_sides",
		Triangles: []Triangle{
			shaded(v(-1.3, -1.2, 0, 1), v(1.4, -1.3, 0, 1), v(0.1, 1.9, 0, 1), red, green, blue),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "covering",
		Triangles: []Triangle{
			flat(gray, v(-5, -5, 0, 1), v(5, -5, 0, 1), v(0, 6, 0, 1)),
		},
		Width:  32,
		Height: 32,
	},

	// Triangles crossing the near and far planes
	{
		Name: "near_far",
		Triangles: []Triangle{
			shaded(v(-0.8, -0.8, -1.6, 1), v(0.8, -0.7, 0.3, 1), v(0, 0.8, 1.7, 1), red, green, blue),
		},
		Width:  64,
		Height: 64,
	},

	// Vertices behind the viewer and at w = 0
	{
		Name: "behind_viewer",
		Triangles: []Triangle{
			shaded(v(-0.5, -0.5, 0, 1), v(0.5, -0.5, 0, 1), v(0.2, 0.5, 0, -0.5), red, green, blue),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "w_zero",
		Triangles: []Triangle{
			shaded(v(-0.5, -0.5, 0, 1), v(0.5, -0.5, 0, 1), v(0, 0.5, 0, 0), red, green, blue),
		},
		Width:  64,
		Height: 64,
	},

	// Triangles which produce no fragments
	{
		Name: "outside_left",
		Triangles: []Triangle{
			flat(white, v(-1.5, -0.5, 0, 1), v(-1.1, -0.5, 0, 1), v(-1.3, 0.5, 0, 1)),
		},
		Width:  32,
		Height: 32,
	},
	{
		Name: "beyond_far",
		Triangles: []Triangle{
			flat(white, v(-0.5, -0.5, 1.2, 1), v(0.5, -0.5, 1.1, 1), v(0, 0.5, 1.5, 1)),
		},
		Width:  32,
		Height: 32,
	},
	{
		Name: "all_behind",
		Triangles: []Triangle{
			flat(white, v(0.2, 0.2, 0, -1), v(-0.2, 0.2, 0, -1), v(0, -0.2, 0, -1)),
		},
		Width:  32,
		Height: 32,
	},
}
