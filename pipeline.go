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

	"seehuhn.de/go/render3d/framebuffer"
)

// PipelineState configures a draw call.  A PipelineState is only read by
// the draw functions and can be shared between goroutines.
type PipelineState struct {
	// VertexShader computes the clip-space positions and the outputs of
	// the triangle corners.  Required.
	VertexShader VertexShader

	// Exactly one of PixelShader and DiscardPixelShader must be set.
	PixelShader        PixelShader
	DiscardPixelShader DiscardPixelShader

	// VertexSize is the size of one input vertex in bytes.  Must be
	// positive.
	VertexSize int

	// OutputSize is the size of the vertex shader outputs of one corner in
	// bytes.  Outputs are interpolated as float32 lanes, so OutputSize must
	// be a non-negative multiple of 4.
	OutputSize int

	// UniformSize is the number of bytes of Input.Uniforms visible to the
	// shaders.
	UniformSize int

	// Wireframe selects edge drawing instead of filled triangles.
	Wireframe bool

	// DepthFunc is used when Input.Depth is set.
	DepthFunc DepthFunc

	Cull      CullMode
	FrontFace FrontFace
}

// DefaultPipelineState returns a pipeline state for filled triangles with
// the given shaders, a DepthLess depth test, and no face culling.
func DefaultPipelineState(vs VertexShader, ps PixelShader, vertexSize, outputSize int) PipelineState {
	return PipelineState{
		VertexShader: vs,
		PixelShader:  ps,
		VertexSize:   vertexSize,
		OutputSize:   outputSize,
		DepthFunc:    DepthLess,
		Cull:         CullNone,
		FrontFace:    FrontCCW,
	}
}

// Validate checks the pipeline state for consistency.
func (ps *PipelineState) Validate() error {
	if ps.VertexShader == nil {
		return fmt.Errorf("%w: no vertex shader", ErrMissingShader)
	}
	if (ps.PixelShader == nil) == (ps.DiscardPixelShader == nil) {
		return fmt.Errorf("%w: need exactly one of PixelShader and DiscardPixelShader", ErrMissingShader)
	}
	if ps.VertexSize <= 0 {
		return fmt.Errorf("%w: vertex size %d", ErrInvalidLayout, ps.VertexSize)
	}
	if ps.OutputSize < 0 || ps.OutputSize%4 != 0 {
		return fmt.Errorf("%w: output size %d is not a multiple of 4", ErrInvalidLayout, ps.OutputSize)
	}
	if ps.UniformSize < 0 {
		return fmt.Errorf("%w: uniform size %d", ErrInvalidLayout, ps.UniformSize)
	}
	if ps.DepthFunc > DepthAlways {
		return fmt.Errorf("%w: %s", ErrInvalidState, ps.DepthFunc)
	}
	if ps.Cull > CullBackAndFront {
		return fmt.Errorf("%w: %s", ErrInvalidState, ps.Cull)
	}
	if ps.FrontFace > FrontCW {
		return fmt.Errorf("%w: %s", ErrInvalidState, ps.FrontFace)
	}
	return nil
}

// Input holds the data of a draw call.
//
// Pixel (x, y) of the targets covers the square [x, x+1] × [y, y+1] in
// screen space; y grows upwards.  Only the Width × Height pixels in the
// lower left corner of the targets are written.
type Input struct {
	// Vertices holds the input vertices, VertexSize bytes each.
	// [DrawTriangle] uses the first three vertices.
	Vertices []byte

	// Uniforms holds at least UniformSize bytes of data for the shaders.
	// May be nil if UniformSize is zero.
	Uniforms []byte

	Width, Height int

	// Color is the color target.  Required.
	Color *framebuffer.ColorBuffer

	// Depth is the depth target.  If it is nil, the depth test is skipped.
	Depth *framebuffer.DepthBuffer
}

// check verifies that the input matches the pipeline state.
// numVertices is the number of vertices the draw call reads.
func (in *Input) check(ps *PipelineState, numVertices int) error {
	if in.Width <= 0 || in.Height <= 0 {
		return fmt.Errorf("%w: target size %d×%d", ErrBufferTooSmall, in.Width, in.Height)
	}
	if need := numVertices * ps.VertexSize; len(in.Vertices) < need {
		return fmt.Errorf("%w: %d bytes of vertex data, need %d",
			ErrBufferTooSmall, len(in.Vertices), need)
	}
	if len(in.Uniforms) < ps.UniformSize {
		return fmt.Errorf("%w: %d bytes of uniform data, need %d",
			ErrBufferTooSmall, len(in.Uniforms), ps.UniformSize)
	}
	if in.Color == nil {
		return fmt.Errorf("%w: no color target", ErrBufferTooSmall)
	}
	if in.Color.Width() < in.Width || in.Color.Height() < in.Height {
		return fmt.Errorf("%w: color target is %d×%d, need %d×%d", ErrBufferTooSmall,
			in.Color.Width(), in.Color.Height(), in.Width, in.Height)
	}
	if in.Depth != nil && (in.Depth.Width() < in.Width || in.Depth.Height() < in.Height) {
		return fmt.Errorf("%w: depth target is %d×%d, need %d×%d", ErrBufferTooSmall,
			in.Depth.Width(), in.Depth.Height(), in.Width, in.Height)
	}
	return nil
}
