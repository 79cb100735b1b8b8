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

package mesh

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Sphere returns a UV sphere centred at the origin.
// The sphere is divided into the given number of slices around the y axis
// and slices/2 stacks from pole to pole.  Triangles are wound
// counter-clockwise when seen from outside.
func Sphere(radius float32, slices int) *Mesh {
	if slices < 3 {
		panic(fmt.Sprintf("mesh: sphere needs at least 3 slices, got %d", slices))
	}
	parallels := slices / 2
	numVertices := (parallels + 1) * (slices + 1)
	step := 2 * math.Pi / float64(slices)

	m := &Mesh{
		Positions: make([]mgl32.Vec3, 0, numVertices),
		Normals:   make([]mgl32.Vec3, 0, numVertices),
		TexCoords: make([]mgl32.Vec2, 0, numVertices),
		Tangents:  make([]mgl32.Vec4, 0, numVertices),
		Indices:   make([]uint32, 0, parallels*slices*6),
	}
	for i := 0; i <= parallels; i++ {
		theta := math.Pi * float64(i) / float64(parallels)
		for j := 0; j <= slices; j++ {
			phi := step * float64(j)
			n := mgl32.Vec3{
				float32(math.Sin(theta) * math.Sin(phi)),
				float32(math.Cos(theta)),
				float32(math.Sin(theta) * math.Cos(phi)),
			}
			m.Positions = append(m.Positions, n.Mul(radius))
			m.Normals = append(m.Normals, n)
			m.TexCoords = append(m.TexCoords, mgl32.Vec2{
				float32(j) / float32(slices),
				1 - float32(i)/float32(parallels),
			})
			t := mgl32.HomogRotate3DY(float32(phi)).Mul4x1(mgl32.Vec4{1, 0, 0, 1})
			m.Tangents = append(m.Tangents, mgl32.Vec4{t[0], t[1], t[2], 1})
		}
	}

	row := uint32(slices + 1)
	for i := range uint32(parallels) {
		for j := range uint32(slices) {
			a := i*row + j
			b := (i+1)*row + j
			m.Indices = append(m.Indices,
				a, b, b+1,
				a, b+1, a+1)
		}
	}
	return m
}

// cubeFaces lists normal, tangent and bitangent of each cube face,
// with tangent × bitangent = normal.
var cubeFaces = [6][3]mgl32.Vec3{
	{{+1, 0, 0}, {0, 0, -1}, {0, 1, 0}},
	{{-1, 0, 0}, {0, 0, +1}, {0, 1, 0}},
	{{0, +1, 0}, {1, 0, 0}, {0, 0, -1}},
	{{0, -1, 0}, {1, 0, 0}, {0, 0, +1}},
	{{0, 0, +1}, {1, 0, 0}, {0, 1, 0}},
	{{0, 0, -1}, {-1, 0, 0}, {0, 1, 0}},
}

// Cube returns an axis-aligned cube centred at the origin, with four
// separate vertices per face so that every face has flat normals.
// Triangles are wound counter-clockwise when seen from outside.
func Cube(halfExtent float32) *Mesh {
	corners := [4]mgl32.Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	m := &Mesh{}
	for _, f := range cubeFaces {
		n, u, v := f[0], f[1], f[2]
		base := uint32(len(m.Positions))
		for _, c := range corners {
			p := n.Add(u.Mul(c[0])).Add(v.Mul(c[1])).Mul(halfExtent)
			m.Positions = append(m.Positions, p)
			m.Normals = append(m.Normals, n)
			m.TexCoords = append(m.TexCoords, mgl32.Vec2{(c[0] + 1) / 2, (c[1] + 1) / 2})
			m.Tangents = append(m.Tangents, u.Vec4(1))
		}
		m.Indices = append(m.Indices,
			base, base+1, base+2,
			base, base+2, base+3)
	}
	return m
}

// Quad returns a square in the z = 0 plane, facing +z.
func Quad(halfExtent float32) *Mesh {
	h := halfExtent
	return &Mesh{
		Positions: []mgl32.Vec3{{-h, -h, 0}, {h, -h, 0}, {-h, h, 0}, {h, h, 0}},
		Normals:   []mgl32.Vec3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1}},
		TexCoords: []mgl32.Vec2{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		Tangents:  []mgl32.Vec4{{1, 0, 0, 1}, {1, 0, 0, 1}, {1, 0, 0, 1}, {1, 0, 0, 1}},
		Indices:   []uint32{0, 1, 2, 1, 3, 2},
	}
}

// Grid returns a flat width × depth grid in the y = 0 plane, facing +y,
// with m rows of vertices along z and n columns along x.
func Grid(width, depth float32, m, n int) *Mesh {
	if m < 2 || n < 2 {
		panic(fmt.Sprintf("mesh: grid needs at least 2×2 vertices, got %d×%d", m, n))
	}
	dx := width / float32(n-1)
	dz := depth / float32(m-1)
	du := 1 / float32(n-1)
	dv := 1 / float32(m-1)

	g := &Mesh{}
	for i := range m {
		z := depth/2 - float32(i)*dz
		for j := range n {
			x := -width/2 + float32(j)*dx
			g.Positions = append(g.Positions, mgl32.Vec3{x, 0, z})
			g.Normals = append(g.Normals, mgl32.Vec3{0, 1, 0})
			g.TexCoords = append(g.TexCoords, mgl32.Vec2{float32(j) * du, float32(i) * dv})
			g.Tangents = append(g.Tangents, mgl32.Vec4{1, 0, 0, 1})
		}
	}

	cols := uint32(n)
	for i := range uint32(m - 1) {
		for j := range uint32(n - 1) {
			a := i*cols + j
			b := (i+1)*cols + j
			g.Indices = append(g.Indices,
				a, a+1, b,
				b, a+1, b+1)
		}
	}
	return g
}
