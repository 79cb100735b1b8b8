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

// largeCases contains scenes with many triangles or large canvases.
var largeCases = []TestCase{
	{
		Name: "large_triangle",
		Triangles: []Triangle{
			shaded(v(-0.95, -0.9, 0, 1), v(0.9, -0.95, 0, 1), v(0.1, 0.95, 0, 1), red, green, blue),
		},
		Width:  512,
		Height: 512,
	},
	{
		Name:      "large_fan",
		Triangles: fan(512, 512, 256, 256, 240, 64),
		Width:     512,
		Height:    512,
	},
	{
		Name:      "sphere",
		Triangles: fromMesh(mesh.Sphere(1, 24), byNormal(mesh.Sphere(1, 24))),
		Width:     256,
		Height:    256,
		Cull:      CullBack,
		Depth:     true,
		Transform: camera(1, mgl32.Vec3{1.2, 1.5, 2.5}, mgl32.Vec3{0, 0, 0}),
	},
	{
		Name:      "sphere_wireframe",
		Triangles: fromMesh(mesh.Sphere(1, 16), byNormal(mesh.Sphere(1, 16))),
		Width:     256,
		Height:    256,
		Mode:      Wireframe,
		Cull:      CullBack,
		Transform: camera(1, mgl32.Vec3{1.2, 1.5, 2.5}, mgl32.Vec3{0, 0, 0}),
	},
}
