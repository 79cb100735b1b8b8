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
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/vector"

	"seehuhn.de/go/render3d/framebuffer"
	"seehuhn.de/go/render3d/mesh"
)

// BenchmarkTriangle benchmarks the pipeline filling a single triangle.
func BenchmarkTriangle(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			ps := testPipeline(1)
			in := testInput(size, size, [][]float32{
				{-0.9, -0.9, 0, 1, 0},
				{0.9, -0.9, 0, 1, 0.5},
				{0, 0.9, 0, 1, 1},
			})
			mem := NewArena(RequiredArenaLanes(ps))

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				mem.Reset()
				if err := DrawTriangle(ps, in, mem); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkVectorTriangle benchmarks x/image/vector drawing the same
// triangle, as a baseline.
func BenchmarkVectorTriangle(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			s := float32(size)

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)
				r.MoveTo(0.05*s, 0.95*s)
				r.LineTo(0.95*s, 0.95*s)
				r.LineTo(0.5*s, 0.05*s)
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

// BenchmarkSphere benchmarks drawing a depth-tested mesh with a
// transformation matrix in the uniforms.
func BenchmarkSphere(b *testing.B) {
	for _, slices := range []int{16, 64} {
		b.Run(fmt.Sprintf("slices=%d", slices), func(b *testing.B) {
			m := mesh.Sphere(1, slices)
			vertices, stride, err := m.Pack(mesh.Position | mesh.Normal)
			if err != nil {
				b.Fatal(err)
			}

			vs := func(corner int, v VertexData, out []float32, u Uniforms) mgl32.Vec4 {
				n := v.Vec3(corner, 12)
				copy(out, n[:])
				return u.Mat4(0).Mul4x1(v.Vec3(corner, 0).Vec4(1))
			}
			pixel := func(in []float32, _ Uniforms) framebuffer.Color {
				return framebuffer.RGB(0.5+0.5*in[0], 0.5+0.5*in[1], 0.5+0.5*in[2])
			}
			ps := DefaultPipelineState(vs, pixel, stride, 3*4)
			ps.UniformSize = 64
			ps.Cull = CullBack

			mvp := mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 10).
				Mul4(mgl32.LookAtV(mgl32.Vec3{0, 0, 3}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}))
			const size = 256
			in := &Input{
				Vertices: vertices,
				Uniforms: AppendMat4(nil, mvp),
				Width:    size,
				Height:   size,
				Color:    framebuffer.NewColorBuffer(size, size),
				Depth:    framebuffer.NewDepthBuffer(size, size),
			}
			mem := NewArena(RequiredArenaLanes(&ps))

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				in.Depth.Fill(1)
				if _, err := DrawIndexed(&ps, in, mem, m.Indices); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
