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

var precisionCases = []TestCase{
	// Pixel centres on and near edges
	{
		Name:      "subpixel_offset_00",
		Triangles: rectangle(64, 64, 0, white, 20, 20, 44, 44),
		Width:     64,
		Height:    64,
	},
	{
		Name:      "subpixel_offset_25",
		Triangles: rectangle(64, 64, 0, white, 20.25, 20.25, 44.25, 44.25),
		Width:     64,
		Height:    64,
	},
	{
		Name:      "subpixel_offset_50",
		Triangles: rectangle(64, 64, 0, white, 20.5, 20.5, 44.5, 44.5),
		Width:     64,
		Height:    64,
	},
	{
		Name:      "subpixel_offset_75",
		Triangles: rectangle(64, 64, 0, white, 20.75, 20.75, 44.75, 44.75),
		Width:     64,
		Height:    64,
	},

	// Thin and tiny triangles
	{
		Name: "sliver",
		Triangles: []Triangle{
			screenTriangle(64, 64, 0, white, 2, 30, 62, 31, 2, 32),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "subpixel_triangle",
		Triangles: []Triangle{
			screenTriangle(16, 16, 0, white, 7.2, 7.2, 7.8, 7.2, 7.5, 7.8),
		},
		Width:  16,
		Height: 16,
	},
	{
		Name: "degenerate",
		Triangles: []Triangle{
			screenTriangle(16, 16, 0, white, 2, 2, 8, 8, 14, 14),
		},
		Width:  16,
		Height: 16,
	},

	// Non-square and odd-sized canvases
	{
		Name: "odd_canvas",
		Triangles: []Triangle{
			shaded(v(-0.9, -0.8, 0, 1), v(0.9, -0.6, 0, 1), v(0.1, 0.95, 0, 1), yellow, blue, red),
		},
		Width:  37,
		Height: 23,
	},
}
