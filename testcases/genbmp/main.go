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

// Command genbmp renders the pipeline test cases and a lit demo scene to
// BMP files, for visual inspection.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"seehuhn.de/go/render3d"
	"seehuhn.de/go/render3d/framebuffer"
	"seehuhn.de/go/render3d/mesh"
	"seehuhn.de/go/render3d/testcases"
)

const outDir = "testdata/bmp"

func main() {
	objFile := flag.String("obj", "", "render this OBJ file instead of a sphere")
	size := flag.Int("size", 512, "size of the demo image in pixels")
	verbose := flag.Bool("v", false, "log pipeline statistics")
	flag.Parse()

	if *verbose {
		render3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		fatal(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := writeTestCase(tc, filepath.Join(outDir, name+".bmp")); err != nil {
				fatal(fmt.Errorf("%s: %w", name, err))
			}
		}
	}

	m := mesh.Sphere(1, 48)
	if *objFile != "" {
		var err error
		m, err = loadOBJ(*objFile)
		if err != nil {
			fatal(err)
		}
	}
	if err := writeDemo(m, *size, filepath.Join(outDir, "demo.bmp")); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "genbmp:", err)
	os.Exit(1)
}

func writeTestCase(tc testcases.TestCase, fname string) error {
	w, h := tc.Width, tc.Height
	gray := make([]byte, w*h)
	render3d.RenderExample(tc, gray, w, h, w)

	cb := framebuffer.NewColorBuffer(w, h)
	for y := range h {
		for x := range w {
			cb.Set(x, y, framebuffer.Gray(float32(gray[(h-1-y)*w+x])/255))
		}
	}
	return writeBMP(cb, fname)
}

func writeBMP(cb *framebuffer.ColorBuffer, fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = framebuffer.WriteBMP(f, cb)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func loadOBJ(fname string) (*mesh.Mesh, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	obj, err := mesh.ReadOBJ(f)
	if err != nil {
		return nil, err
	}
	m := obj.Mesh()
	if len(m.Normals) == 0 {
		// Without normals, shade as if the object was round.
		m.Normals = make([]mgl32.Vec3, len(m.Positions))
		for i, p := range m.Positions {
			if p.Len() > 0 {
				m.Normals[i] = p.Normalize()
			}
		}
	}
	return m, nil
}

// Uniform layout of the demo shaders.
const (
	uniMVP   = 0   // mat4
	uniModel = 64  // mat4
	uniLight = 128 // vec3, towards the light
	uniColor = 140 // vec3
	uniSize  = 152
)

func demoVS(corner int, v render3d.VertexData, out []float32, u render3d.Uniforms) mgl32.Vec4 {
	pos := v.Vec3(corner, 0)
	n := u.Mat4(uniModel).Mul4x1(v.Vec3(corner, 12).Vec4(0))
	copy(out, n[:3])
	return u.Mat4(uniMVP).Mul4x1(pos.Vec4(1))
}

func demoPS(in []float32, u render3d.Uniforms) framebuffer.Color {
	n := mgl32.Vec3{in[0], in[1], in[2]}
	if l := n.Len(); l > 0 {
		n = n.Mul(1 / l)
	}
	diffuse := max(n.Dot(u.Vec3(uniLight)), 0)
	c := u.Vec3(uniColor).Mul(0.1 + 0.9*diffuse)
	return framebuffer.RGB(c[0], c[1], c[2]).ToSRGB()
}

// writeDemo renders a mesh, scaled to the unit sphere, with a single
// directional light.
func writeDemo(m *mesh.Mesh, size int, fname string) error {
	vertices, stride, err := m.Pack(mesh.Position | mesh.Normal)
	if err != nil {
		return err
	}

	radius := float32(0)
	for _, p := range m.Positions {
		radius = max(radius, p.Len())
	}
	if radius == 0 {
		return fmt.Errorf("empty mesh")
	}

	model := mgl32.HomogRotate3DY(mgl32.DegToRad(30)).Mul4(mgl32.Scale3D(1/radius, 1/radius, 1/radius))
	view := mgl32.LookAtV(mgl32.Vec3{0, 1, 3.2}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 20)

	var uniforms []byte
	uniforms = render3d.AppendMat4(uniforms, proj.Mul4(view).Mul4(model))
	uniforms = render3d.AppendMat4(uniforms, model)
	light := mgl32.Vec3{-1, 2, 2}.Normalize()
	uniforms = render3d.AppendFloat32s(uniforms, light[:]...)
	uniforms = render3d.AppendFloat32s(uniforms, 0.9, 0.5, 0.2)

	ps := render3d.DefaultPipelineState(demoVS, demoPS, stride, 3*4)
	ps.UniformSize = uniSize
	ps.Cull = render3d.CullBack

	cb := framebuffer.NewColorBuffer(size, size)
	cb.Fill(framebuffer.Gray(0.15))
	in := &render3d.Input{
		Vertices: vertices,
		Uniforms: uniforms,
		Width:    size,
		Height:   size,
		Color:    cb,
		Depth:    framebuffer.NewDepthBuffer(size, size),
	}
	mem := render3d.NewArena(render3d.RequiredArenaLanes(&ps))
	if _, err := render3d.DrawIndexed(&ps, in, mem, m.Indices); err != nil {
		return err
	}
	return writeBMP(cb, fname)
}
