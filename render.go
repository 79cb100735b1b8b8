// Package render3d implements a software triangle pipeline.
//
// Triangles pass through a programmable vertex stage, are clipped in
// homogeneous clip space, projected to the screen, culled by orientation,
// and finally filled (or outlined, in wireframe mode) with a depth test
// and a programmable pixel stage.  Everything runs on the calling
// goroutine.
package render3d

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"github.com/go-gl/mathgl/mgl32"

	"seehuhn.de/go/render3d/framebuffer"
	"seehuhn.de/go/render3d/testcases"
)

// exampleVertexSize is the size of a test case vertex: a clip-space
// position followed by an RGB color.
const exampleVertexSize = (4 + 3) * 4

func exampleVS(corner int, vertices VertexData, out []float32, u Uniforms) mgl32.Vec4 {
	col := vertices.Vec3(corner, 16)
	copy(out, col[:])
	return u.Mat4(0).Mul4x1(vertices.Vec4(corner, 0))
}

func examplePS(in []float32, _ Uniforms) framebuffer.Color {
	return framebuffer.RGB(in[0], in[1], in[2])
}

// examplePipeline returns the pipeline state, packed vertices, indices
// and uniforms used to draw a test case.
func examplePipeline(tc testcases.TestCase) (PipelineState, []byte, []uint32, []byte) {
	ps := DefaultPipelineState(exampleVS, examplePS, exampleVertexSize, 3*4)
	ps.UniformSize = 64
	ps.Wireframe = tc.Mode == testcases.Wireframe
	ps.Cull = CullMode(tc.Cull)
	ps.FrontFace = FrontFace(tc.Front)

	var vertices []byte
	var indices []uint32
	for _, t := range tc.Triangles {
		for _, v := range t {
			indices = append(indices, uint32(len(indices)))
			vertices = AppendFloat32s(vertices, v.Pos[:]...)
			vertices = AppendFloat32s(vertices, v.Color[:]...)
		}
	}

	transform := tc.Transform
	if transform == (mgl32.Mat4{}) {
		transform = mgl32.Ident4()
	}
	return ps, vertices, indices, AppendMat4(nil, transform)
}

// RenderExample renders a test case into a grayscale buffer.
// The buffer is pre-initialized with zeros, in row-major order, with the
// top row first.  Each byte is the luminance of the rendered color.
func RenderExample(tc testcases.TestCase, buf []byte, width, height, stride int) {
	ps, vertices, indices, uniforms := examplePipeline(tc)

	cb := framebuffer.NewColorBuffer(width, height)
	in := &Input{
		Vertices: vertices,
		Uniforms: uniforms,
		Width:    width,
		Height:   height,
		Color:    cb,
	}
	if tc.Depth {
		in.Depth = framebuffer.NewDepthBuffer(width, height)
	}

	mem := NewArena(RequiredArenaLanes(&ps))
	if _, err := DrawIndexed(&ps, in, mem, indices); err != nil {
		panic(err)
	}

	for y := range height {
		row := buf[(height-1-y)*stride:]
		for x := range width {
			row[x] = grayByte(cb.At(x, y))
		}
	}
}

// grayByte converts a color to an 8-bit gray value.
func grayByte(c framebuffer.Color) byte {
	return byte(max(0, min(255, int(c.Luminance()*255+0.5))))
}
