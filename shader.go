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
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"seehuhn.de/go/render3d/framebuffer"
)

// VertexShader computes the clip-space position of one triangle corner.
//
// The corner index is 0, 1 or 2.  The shader reads its input from
// vertices.Bytes(corner) (it may also look at the other two corners) and
// must write all interpolated outputs of the corner to out, which has
// OutputSize/4 lanes.
type VertexShader func(corner int, vertices VertexData, out []float32, u Uniforms) mgl32.Vec4

// PixelShader computes the color of a fragment from the interpolated
// vertex shader outputs.
type PixelShader func(in []float32, u Uniforms) framebuffer.Color

// DiscardPixelShader is a [PixelShader] which can suppress the fragment.
// If discard is true, neither the color nor the depth target is written.
type DiscardPixelShader func(in []float32, u Uniforms) (c framebuffer.Color, discard bool)

// VertexData gives a vertex shader access to the three input vertices of
// the current triangle.
type VertexData struct {
	data   []byte
	stride int
	index  [3]int
}

// Bytes returns the raw data of the given corner.
func (v VertexData) Bytes(corner int) []byte {
	i := v.index[corner] * v.stride
	return v.data[i : i+v.stride : i+v.stride]
}

// Float32 reads a little-endian float32 at the given byte offset within
// the data of a corner.
func (v VertexData) Float32(corner, offset int) float32 {
	return readFloat32(v.Bytes(corner)[offset:])
}

// Vec2 reads two float32 values starting at the given byte offset.
func (v VertexData) Vec2(corner, offset int) mgl32.Vec2 {
	b := v.Bytes(corner)[offset : offset+8]
	return mgl32.Vec2{readFloat32(b), readFloat32(b[4:])}
}

// Vec3 reads three float32 values starting at the given byte offset.
func (v VertexData) Vec3(corner, offset int) mgl32.Vec3 {
	b := v.Bytes(corner)[offset : offset+12]
	return mgl32.Vec3{readFloat32(b), readFloat32(b[4:]), readFloat32(b[8:])}
}

// Vec4 reads four float32 values starting at the given byte offset.
func (v VertexData) Vec4(corner, offset int) mgl32.Vec4 {
	b := v.Bytes(corner)[offset : offset+16]
	return mgl32.Vec4{readFloat32(b), readFloat32(b[4:]), readFloat32(b[8:]), readFloat32(b[12:])}
}

// Uniforms is the uniform buffer of a draw call, truncated to the
// configured uniform size.  Values are stored as little-endian float32.
type Uniforms []byte

// Float32 reads the float32 at the given byte offset.
func (u Uniforms) Float32(offset int) float32 {
	return readFloat32(u[offset:])
}

// Vec3 reads three float32 values starting at the given byte offset.
func (u Uniforms) Vec3(offset int) mgl32.Vec3 {
	b := u[offset : offset+12]
	return mgl32.Vec3{readFloat32(b), readFloat32(b[4:]), readFloat32(b[8:])}
}

// Vec4 reads four float32 values starting at the given byte offset.
func (u Uniforms) Vec4(offset int) mgl32.Vec4 {
	b := u[offset : offset+16]
	return mgl32.Vec4{readFloat32(b), readFloat32(b[4:]), readFloat32(b[8:]), readFloat32(b[12:])}
}

// Mat4 reads a column-major 4×4 matrix starting at the given byte offset.
func (u Uniforms) Mat4(offset int) mgl32.Mat4 {
	b := u[offset : offset+64]
	var m mgl32.Mat4
	for i := range m {
		m[i] = readFloat32(b[4*i:])
	}
	return m
}

// AppendFloat32s appends the values to buf in the layout expected by
// [VertexData] and [Uniforms].
func AppendFloat32s(buf []byte, v ...float32) []byte {
	for _, x := range v {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(x))
	}
	return buf
}

// AppendMat4 appends a matrix to buf, in column-major order.
func AppendMat4(buf []byte, m mgl32.Mat4) []byte {
	return AppendFloat32s(buf, m[:]...)
}

func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
