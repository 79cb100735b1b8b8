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

import "errors"

// Errors reported by the draw calls.  They are always wrapped with details
// about the offending value; use [errors.Is] to test for them.
// A draw call which returns one of these errors has not modified the color
// or depth target.
var (
	// ErrInvalidLayout indicates that a vertex or output size in the
	// pipeline state is impossible, for example an output size which is
	// not a whole number of float32 lanes.
	ErrInvalidLayout = errors.New("render3d: invalid layout")

	// ErrBufferTooSmall indicates that vertex data, uniform data, or a
	// render target is smaller than the pipeline state requires.
	ErrBufferTooSmall = errors.New("render3d: buffer too small")

	// ErrArenaExhausted indicates that a fixed-size scratch arena cannot
	// hold the intermediate data of one triangle.
	ErrArenaExhausted = errors.New("render3d: scratch arena exhausted")

	// ErrMissingShader indicates that the vertex shader is missing, or that
	// not exactly one of the two pixel shader forms is set.
	ErrMissingShader = errors.New("render3d: missing shader")

	// ErrIndexOutOfRange indicates an index buffer which does not describe
	// whole triangles, or which refers to a vertex beyond the vertex data.
	ErrIndexOutOfRange = errors.New("render3d: index out of range")

	// ErrInvalidState indicates an unknown depth function, cull mode or
	// front face value.
	ErrInvalidState = errors.New("render3d: invalid pipeline state")
)
