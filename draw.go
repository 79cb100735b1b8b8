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
	"context"
	"fmt"
	"log/slog"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/render3d/framebuffer"
)

// Stats counts the work done by a draw call.
type Stats struct {
	Triangles   int // input triangles
	Clipped     int // input triangles entirely outside the view volume
	Culled      int // triangles removed by face culling, after clipping
	Fragments   int // pixel shader invocations
	DepthFailed int // fragments which failed the depth test
	Discarded   int // fragments discarded by the pixel shader
}

// DrawTriangle draws the triangle formed by the first three vertices of
// in.Vertices.
//
// Scratch memory is taken from mem, which is not reset.  If mem is nil, a
// temporary arena is used.  All arguments are checked before anything is
// drawn: if an error is returned, the targets are unchanged.
func DrawTriangle(ps *PipelineState, in *Input, mem *Arena) error {
	if err := ps.Validate(); err != nil {
		return err
	}
	if err := in.check(ps, 3); err != nil {
		return err
	}
	if mem == nil {
		mem = NewGrowingArena(RequiredArenaLanes(ps))
	}
	if err := mem.reserve(RequiredArenaLanes(ps)); err != nil {
		return err
	}

	var st Stats
	d := newDrawer(ps, in, mem, &st)
	return d.triangle([3]int{0, 1, 2})
}

// DrawIndexed draws one triangle for every three entries of indices, which
// refer to vertices in in.Vertices.
//
// The arena is reset before every triangle.  If mem is nil, a temporary
// arena is used.  All arguments, including every index, are checked
// before anything is drawn.
func DrawIndexed(ps *PipelineState, in *Input, mem *Arena, indices []uint32) (Stats, error) {
	var st Stats
	if err := ps.Validate(); err != nil {
		return st, err
	}
	// A draw with indices needs at least one whole vertex; beyond that,
	// indices are checked against the vertex count.
	if err := in.check(ps, min(len(indices), 1)); err != nil {
		return st, err
	}
	if len(indices)%3 != 0 {
		return st, fmt.Errorf("%w: %d indices do not form whole triangles",
			ErrIndexOutOfRange, len(indices))
	}
	numVertices := len(in.Vertices) / ps.VertexSize
	for i, idx := range indices {
		if int64(idx) >= int64(numVertices) {
			return st, fmt.Errorf("%w: index %d is %d, have %d vertices",
				ErrIndexOutOfRange, i, idx, numVertices)
		}
	}
	need := RequiredArenaLanes(ps)
	if mem == nil {
		mem = NewGrowingArena(need)
	}
	mem.Reset()
	if err := mem.reserve(need); err != nil {
		return st, err
	}

	d := newDrawer(ps, in, mem, &st)
	for i := 0; i < len(indices); i += 3 {
		tri := [3]int{int(indices[i]), int(indices[i+1]), int(indices[i+2])}
		if err := d.triangle(tri); err != nil {
			return st, err
		}
		mem.Reset()
	}

	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("render3d: draw",
			"triangles", st.Triangles,
			"clipped", st.Clipped,
			"culled", st.Culled,
			"fragments", st.Fragments,
			"depthFailed", st.DepthFailed,
			"discarded", st.Discarded)
	}
	return st, nil
}

// drawer holds the state of one draw call.
type drawer struct {
	ps       *PipelineState
	in       *Input
	mem      *Arena
	uniforms Uniforms
	lanes    int
	viewport matrix.Matrix
	stats    *Stats
}

func newDrawer(ps *PipelineState, in *Input, mem *Arena, st *Stats) *drawer {
	w, h := float64(in.Width), float64(in.Height)
	return &drawer{
		ps:       ps,
		in:       in,
		mem:      mem,
		uniforms: Uniforms(in.Uniforms[:ps.UniformSize:ps.UniformSize]),
		lanes:    ps.OutputSize / 4,
		viewport: matrix.Matrix{w / 2, 0, 0, h / 2, w / 2, h / 2},
		stats:    st,
	}
}

// screenVertex is a vertex after perspective divide and viewport mapping.
type screenVertex struct {
	ndc   vec.Vec2 // normalized device coordinates
	pos   vec.Vec2 // pixel coordinates
	depth float32  // in [0, 1], smaller is nearer
	invW  float32
	attr  []float32
}

// project applies the perspective divide and the viewport transform.
func (d *drawer) project(v *clipVertex) screenVertex {
	invW := 1 / v.pos[3]
	ndc := vec.Vec2{X: float64(v.pos[0] * invW), Y: float64(v.pos[1] * invW)}
	M := d.viewport
	return screenVertex{
		ndc: ndc,
		pos: vec.Vec2{
			X: M[0]*ndc.X + M[2]*ndc.Y + M[4],
			Y: M[1]*ndc.X + M[3]*ndc.Y + M[5],
		},
		depth: (v.pos[2]*invW + 1) * 0.5,
		invW:  invW,
		attr:  v.attr,
	}
}

// triangle runs the pipeline for the triangle with the given vertex
// indices.
func (d *drawer) triangle(index [3]int) error {
	d.stats.Triangles++

	verts := VertexData{data: d.in.Vertices, stride: d.ps.VertexSize, index: index}
	var tri [3]clipVertex
	for i := range tri {
		out, err := d.mem.Alloc(d.lanes, laneAlign)
		if err != nil {
			return err
		}
		tri[i] = clipVertex{
			pos:  d.ps.VertexShader(i, verts, out, d.uniforms),
			attr: out,
		}
	}

	poly, err := d.mem.clip(&tri, d.lanes)
	if err != nil {
		return err
	}
	if len(poly) < 3 {
		d.stats.Clipped++
		return nil
	}

	psIn, err := d.mem.Alloc(d.lanes, laneAlign)
	if err != nil {
		return err
	}

	a := d.project(&poly[0])
	for i := 1; i+1 < len(poly); i++ {
		b := d.project(&poly[i])
		c := d.project(&poly[i+1])
		if d.ps.Cull.culls(signedArea(a.ndc, b.ndc, c.ndc), d.ps.FrontFace) {
			d.stats.Culled++
			continue
		}
		if d.ps.Wireframe {
			d.wireframe(&a, &b, &c, psIn)
		} else {
			d.fill(&a, &b, &c, psIn)
		}
	}
	return nil
}

// depthPass runs the depth test for a fragment.  The depth target is
// updated later, by shade.
func (d *drawer) depthPass(x, y int, depth float32) bool {
	if d.in.Depth == nil || d.ps.DepthFunc.Test(depth, d.in.Depth.At(x, y)) {
		return true
	}
	d.stats.DepthFailed++
	return false
}

// shade runs the pixel shader for a fragment which passed the depth test
// and writes the result.
func (d *drawer) shade(x, y int, depth float32, psIn []float32) {
	d.stats.Fragments++

	var c framebuffer.Color
	if d.ps.PixelShader != nil {
		c = d.ps.PixelShader(psIn, d.uniforms)
	} else {
		var discard bool
		c, discard = d.ps.DiscardPixelShader(psIn, d.uniforms)
		if discard {
			d.stats.Discarded++
			return
		}
	}
	if d.in.Depth != nil {
		d.in.Depth.Set(x, y, depth)
	}
	d.in.Color.Set(x, y, c)
}
