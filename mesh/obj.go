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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// OBJ holds the contents of a Wavefront OBJ file.
// Polygons with more than three corners are split into triangle fans
// while reading.
type OBJ struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	TexCoords []mgl32.Vec2
	Faces     []Face

	Objects      []Object // named objects and groups, in file order
	MaterialLibs []string // arguments of mtllib statements
}

// Face is a triangle of an OBJ file.
// Indices are zero-based; -1 marks a missing texture coordinate or normal.
type Face struct {
	Position [3]int
	TexCoord [3]int
	Normal   [3]int
}

// Object is a named object ("o") or group ("g") of an OBJ file.
type Object struct {
	Name      string
	Faces     []int    // indices into OBJ.Faces
	Materials []string // arguments of usemtl statements
}

// ReadOBJ parses a Wavefront OBJ file.
// Statements which do not describe triangle geometry (lines, curves,
// smoothing groups, ...) are ignored.
func ReadOBJ(r io.Reader) (*OBJ, error) {
	obj := &OBJ{}
	names := make(map[string]bool)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		var err error
		switch args := fields[1:]; fields[0] {
		case "v":
			var v []float32
			v, err = parseFloats(args, 3)
			if err == nil {
				obj.Positions = append(obj.Positions, mgl32.Vec3{v[0], v[1], v[2]})
			}
		case "vn":
			var v []float32
			v, err = parseFloats(args, 3)
			if err == nil {
				obj.Normals = append(obj.Normals, mgl32.Vec3{v[0], v[1], v[2]})
			}
		case "vt":
			var v []float32
			v, err = parseFloats(args, 2)
			if err == nil {
				obj.TexCoords = append(obj.TexCoords, mgl32.Vec2{v[0], v[1]})
			}
		case "f":
			err = obj.addFace(args)
		case "o", "g":
			name := strings.Join(args, " ")
			if names[name] {
				err = fmt.Errorf("duplicate object name %q", name)
				break
			}
			names[name] = true
			obj.Objects = append(obj.Objects, Object{Name: name})
		case "mtllib":
			obj.MaterialLibs = append(obj.MaterialLibs, args...)
		case "usemtl":
			if len(obj.Objects) > 0 && len(args) > 0 {
				cur := &obj.Objects[len(obj.Objects)-1]
				cur.Materials = append(cur.Materials, args[0])
			}
		}
		if err != nil {
			return nil, fmt.Errorf("obj: line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("obj: %w", err)
	}
	return obj, nil
}

// parseFloats parses at least n numbers; extra numbers (like the optional
// w component of a position) are ignored.
func parseFloats(args []string, n int) ([]float32, error) {
	if len(args) < n {
		return nil, fmt.Errorf("expected %d numbers, got %d", n, len(args))
	}
	res := make([]float32, n)
	for i := range n {
		x, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return nil, err
		}
		res[i] = float32(x)
	}
	return res, nil
}

func (obj *OBJ) addFace(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("face with %d corners", len(args))
	}

	type corner struct{ p, t, n int }
	corners := make([]corner, len(args))
	for i, arg := range args {
		parts := strings.Split(arg, "/")
		if len(parts) > 3 {
			return fmt.Errorf("malformed face corner %q", arg)
		}
		c := corner{-1, -1, -1}
		var err error
		c.p, err = resolveIndex(parts[0], len(obj.Positions))
		if err != nil {
			return err
		}
		if len(parts) > 1 && parts[1] != "" {
			c.t, err = resolveIndex(parts[1], len(obj.TexCoords))
			if err != nil {
				return err
			}
		}
		if len(parts) > 2 && parts[2] != "" {
			c.n, err = resolveIndex(parts[2], len(obj.Normals))
			if err != nil {
				return err
			}
		}
		corners[i] = c
	}

	for i := 1; i+1 < len(corners); i++ {
		a, b, c := corners[0], corners[i], corners[i+1]
		obj.Faces = append(obj.Faces, Face{
			Position: [3]int{a.p, b.p, c.p},
			TexCoord: [3]int{a.t, b.t, c.t},
			Normal:   [3]int{a.n, b.n, c.n},
		})
		if len(obj.Objects) > 0 {
			cur := &obj.Objects[len(obj.Objects)-1]
			cur.Faces = append(cur.Faces, len(obj.Faces)-1)
		}
	}
	return nil
}

// resolveIndex converts a one-based (or negative, relative) OBJ index into
// a zero-based index into a list of length n.
func resolveIndex(s string, n int) (int, error) {
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q", s)
	}
	switch {
	case i > 0:
		i--
	case i < 0:
		i += n
	default:
		return 0, fmt.Errorf("invalid index 0")
	}
	if i < 0 || i >= n {
		return 0, fmt.Errorf("index %s out of range (%d entries)", s, n)
	}
	return i, nil
}

// Mesh converts the OBJ data into an indexed mesh.
// Face corners with identical (position, texture coordinate, normal)
// triples share a vertex.  Normals and texture coordinates are included
// only if every face corner has them.  If both are present, tangents are
// computed as well.
func (obj *OBJ) Mesh() *Mesh {
	hasNormals := len(obj.Faces) > 0
	hasTexCoords := len(obj.Faces) > 0
	for _, f := range obj.Faces {
		for k := range 3 {
			hasNormals = hasNormals && f.Normal[k] >= 0
			hasTexCoords = hasTexCoords && f.TexCoord[k] >= 0
		}
	}

	type key struct{ p, t, n int }
	index := make(map[key]uint32)
	m := &Mesh{Indices: make([]uint32, 0, 3*len(obj.Faces))}
	for _, f := range obj.Faces {
		for k := range 3 {
			vk := key{p: f.Position[k], t: -1, n: -1}
			if hasTexCoords {
				vk.t = f.TexCoord[k]
			}
			if hasNormals {
				vk.n = f.Normal[k]
			}
			idx, ok := index[vk]
			if !ok {
				idx = uint32(len(m.Positions))
				index[vk] = idx
				m.Positions = append(m.Positions, obj.Positions[vk.p])
				if hasTexCoords {
					m.TexCoords = append(m.TexCoords, obj.TexCoords[vk.t])
				}
				if hasNormals {
					m.Normals = append(m.Normals, obj.Normals[vk.n])
				}
			}
			m.Indices = append(m.Indices, idx)
		}
	}

	if hasNormals && hasTexCoords {
		m.computeTangents()
	}
	return m
}

// computeTangents derives per-vertex tangents from positions and texture
// coordinates (E. Lengyel, Foundations of Game Engine Development vol. 2,
// section 7.5), orthogonalised against the normals.
func (m *Mesh) computeTangents() {
	n := m.NumVertices()
	tan := make([]mgl32.Vec3, n)
	bitan := make([]mgl32.Vec3, n)

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		e1 := m.Positions[i1].Sub(m.Positions[i0])
		e2 := m.Positions[i2].Sub(m.Positions[i0])
		x1 := m.TexCoords[i1][0] - m.TexCoords[i0][0]
		x2 := m.TexCoords[i2][0] - m.TexCoords[i0][0]
		y1 := m.TexCoords[i1][1] - m.TexCoords[i0][1]
		y2 := m.TexCoords[i2][1] - m.TexCoords[i0][1]

		det := x1*y2 - x2*y1
		if det == 0 {
			continue
		}
		r := 1 / det
		t := e1.Mul(y2).Sub(e2.Mul(y1)).Mul(r)
		b := e2.Mul(x1).Sub(e1.Mul(x2)).Mul(r)
		for _, k := range [3]uint32{i0, i1, i2} {
			tan[k] = tan[k].Add(t)
			bitan[k] = bitan[k].Add(b)
		}
	}

	m.Tangents = make([]mgl32.Vec4, n)
	for i := range n {
		nrm := m.Normals[i]
		t := tan[i]
		xyz := t.Sub(nrm.Mul(nrm.Dot(t)))
		if xyz.Len() < 1e-12 {
			m.Tangents[i] = mgl32.Vec4{1, 0, 0, 1}
			continue
		}
		xyz = xyz.Normalize()
		w := float32(1)
		if t.Cross(bitan[i]).Dot(nrm) < 0 {
			w = -1
		}
		m.Tangents[i] = xyz.Vec4(w)
	}
}
