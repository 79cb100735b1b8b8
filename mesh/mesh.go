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

// Package mesh produces indexed triangle meshes for the render3d pipeline,
// either procedurally or by reading Wavefront OBJ files.
package mesh

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Mesh is an indexed triangle list.
// Every attribute slice is either empty or has one entry per vertex.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	TexCoords []mgl32.Vec2
	Tangents  []mgl32.Vec4 // xyz is the tangent, w = ±1 the handedness

	// Indices lists three vertex indices per triangle.
	Indices []uint32
}

// NumVertices returns the number of vertices.
func (m *Mesh) NumVertices() int { return len(m.Positions) }

// NumTriangles returns the number of triangles.
func (m *Mesh) NumTriangles() int { return len(m.Indices) / 3 }

// Attribute selects vertex attributes for [Mesh.Pack].
type Attribute uint8

// These are the vertex attributes.  In packed vertices they appear in the
// order listed here.
const (
	Position Attribute = 1 << iota // 3 floats
	Normal                         // 3 floats
	TexCoord                       // 2 floats
	Tangent                        // 4 floats
)

func (a Attribute) String() string {
	switch a {
	case Position:
		return "position"
	case Normal:
		return "normal"
	case TexCoord:
		return "texcoord"
	case Tangent:
		return "tangent"
	default:
		return fmt.Sprintf("Attribute(%d)", uint8(a))
	}
}

// Stride returns the size in bytes of one packed vertex with the given
// attributes.
func (a Attribute) Stride() int {
	n := 0
	if a&Position != 0 {
		n += 3
	}
	if a&Normal != 0 {
		n += 3
	}
	if a&TexCoord != 0 {
		n += 2
	}
	if a&Tangent != 0 {
		n += 4
	}
	return 4 * n
}

// Pack interleaves the selected attributes of all vertices into a byte
// slice, as little-endian float32 values.  The second return value is the
// size of one vertex in bytes.
func (m *Mesh) Pack(attrs Attribute) ([]byte, int, error) {
	n := m.NumVertices()
	check := func(a Attribute, have int) error {
		if attrs&a != 0 && have != n {
			return fmt.Errorf("mesh: %s requested but %d of %d vertices have it", a, have, n)
		}
		return nil
	}
	if err := check(Normal, len(m.Normals)); err != nil {
		return nil, 0, err
	}
	if err := check(TexCoord, len(m.TexCoords)); err != nil {
		return nil, 0, err
	}
	if err := check(Tangent, len(m.Tangents)); err != nil {
		return nil, 0, err
	}

	stride := attrs.Stride()
	buf := make([]byte, 0, n*stride)
	for i := range n {
		if attrs&Position != 0 {
			buf = appendFloats(buf, m.Positions[i][:]...)
		}
		if attrs&Normal != 0 {
			buf = appendFloats(buf, m.Normals[i][:]...)
		}
		if attrs&TexCoord != 0 {
			buf = appendFloats(buf, m.TexCoords[i][:]...)
		}
		if attrs&Tangent != 0 {
			buf = appendFloats(buf, m.Tangents[i][:]...)
		}
	}
	return buf, stride, nil
}

func appendFloats(buf []byte, v ...float32) []byte {
	for _, x := range v {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(x))
	}
	return buf
}
