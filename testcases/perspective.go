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

import (
	"github.com/go-gl/mathgl/mgl32"

	"seehuhn.de/go/render3d/mesh"
)

var perspectiveCases = []TestCase{
	{
		// A screen-aligned quad whose top is four times as far away as its
		// bottom.  Colors must be interpolated without a seam along the
		// diagonal.
		Name:      "quad_w",
		Triangles: perspectiveQuad(),
		Width:     64,
		Height:    64,
	},
	{
		Name:      "floor",
		Triangles: fromMesh(mesh.Grid(8, 16, 9, 17), checker(8)),
		Width:     96,
		Height:    64,
		Depth:     true,
		Transform: camera(96.0/64.0, mgl32.Vec3{0, 1, 6}, mgl32.Vec3{0, 0, 0}),
	},
	{
		Name:      "cube",
		Triangles: fromMesh(mesh.Cube(1), byNormal(mesh.Cube(1))),
		Width:     64,
		Height:    64,
		Cull:      CullBack,
		Depth:     true,
		Transform: camera(1, mgl32.Vec3{2.5, 2, 3.5}, mgl32.Vec3{0, 0, 0}),
	},
	{
		Name:      "cube_inside",
		Triangles: fromMesh(mesh.Cube(1), byNormal(mesh.Cube(1))),
		Width:     64,
		Height:    64,
		Cull:      CullFront,
		Depth:     true,
		Transform: camera(1, mgl32.Vec3{0.3, 0.2, 0.5}, mgl32.Vec3{1, 0, -1}),
	},
}

// camera returns a projection and view transform looking from eye to
// target.
func camera(aspect float32, eye, target mgl32.Vec3) mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(60), aspect, 0.1, 50)
	view := mgl32.LookAtV(eye, target, mgl32.Vec3{0, 1, 0})
	return proj.Mul4(view)
}

// perspectiveQuad returns a quad covering the middle of the screen, with
// w = 1 at the bottom and w = 4 at the top.
func perspectiveQuad() []Triangle {
	corner := func(x, y, w float32) mgl32.Vec4 {
		return mgl32.Vec4{x * w, y * w, 0, w}
	}
	p0 := corner(-0.8, -0.8, 1)
	p1 := corner(0.8, -0.8, 1)
	p2 := corner(0.8, 0.8, 4)
	p3 := corner(-0.8, 0.8, 4)
	return []Triangle{
		shaded(p0, p1, p2, red, green, blue),
		shaded(p0, p2, p3, red, blue, yellow),
	}
}

// fromMesh converts the triangles of a mesh into test case triangles,
// using color(i) as the color of the i-th triangle.
func fromMesh(m *mesh.Mesh, color func(i int) mgl32.Vec3) []Triangle {
	res := make([]Triangle, 0, m.NumTriangles())
	for i := range m.NumTriangles() {
		col := color(i)
		var t Triangle
		for k := range 3 {
			p := m.Positions[m.Indices[3*i+k]]
			t[k] = Vertex{Pos: p.Vec4(1), Color: col}
		}
		res = append(res, t)
	}
	return res
}

// byNormal colors triangles by the normal of their first vertex.
func byNormal(m *mesh.Mesh) func(i int) mgl32.Vec3 {
	return func(i int) mgl32.Vec3 {
		n := m.Normals[m.Indices[3*i]]
		return n.Add(mgl32.Vec3{1, 1, 1}).Mul(0.5)
	}
}

// checker colors the two triangles of each grid cell alike, alternating
// between light and dark cells.  cols is the number of cells per row.
func checker(cols int) func(i int) mgl32.Vec3 {
	return func(i int) mgl32.Vec3 {
		cell := i / 2
		if (cell/cols+cell%cols)%2 == 0 {
			return mgl32.Vec3{0.9, 0.9, 0.8}
		}
		return mgl32.Vec3{0.2, 0.3, 0.5}
	}
}
