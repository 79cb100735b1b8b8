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

import "github.com/go-gl/mathgl/mgl32"

// TestCase defines a single rendering test.
type TestCase struct {
	Name      string     // lowercase a-z and _ only
	Triangles []Triangle // drawn in order
	Width     int        // canvas width in pixels
	Height    int        // canvas height in pixels
	Mode      Mode       // filled or wireframe
	Cull      CullMode   // face culling
	Front     Winding    // winding of front faces
	Depth     bool       // use a depth buffer with a "less" test
	Transform mgl32.Mat4 // applied to all positions (zero-value means no transform)
}

// Triangle is a triangle of a test case.
type Triangle [3]Vertex

// Vertex is a triangle corner.  Positions are in homogeneous clip space,
// before Transform is applied.
type Vertex struct {
	Pos   mgl32.Vec4
	Color mgl32.Vec3
}

// Mode selects how triangles are drawn.
type Mode int

const (
	Fill Mode = iota
	Wireframe
)

// CullMode selects which triangles are discarded.
type CullMode int

const (
	CullNone CullMode = iota
	CullBack
	CullFront
	CullBoth
)

// Winding gives the vertex order of front-facing triangles.
type Winding int

const (
	CCW Winding = iota
	CW
)

func (m Mode) String() string {
	if m == Wireframe {
		return "wireframe"
	}
	return "fill"
}

func (c CullMode) String() string {
	switch c {
	case CullBack:
		return "back"
	case CullFront:
		return "front"
	case CullBoth:
		return "both"
	default:
		return "none"
	}
}

func (w Winding) String() string {
	if w == CW {
		return "cw"
	}
	return "ccw"
}

// IsFlat reports whether every vertex has w = 1 and no transform is set,
// so that the scene can also be drawn by a 2D renderer.
func (tc TestCase) IsFlat() bool {
	if tc.Transform != (mgl32.Mat4{}) && tc.Transform != mgl32.Ident4() {
		return false
	}
	for _, t := range tc.Triangles {
		for _, v := range t {
			if v.Pos[3] != 1 {
				return false
			}
		}
	}
	return true
}

// Colors used by the test cases.
var (
	white  = mgl32.Vec3{1, 1, 1}
	red    = mgl32.Vec3{1, 0, 0}
	green  = mgl32.Vec3{0, 1, 0}
	blue   = mgl32.Vec3{0, 0, 1}
	yellow = mgl32.Vec3{1, 1, 0}
	gray   = mgl32.Vec3{0.5, 0.5, 0.5}
)

// v is a helper to create a clip-space position.
func v(x, y, z, w float32) mgl32.Vec4 {
	return mgl32.Vec4{x, y, z, w}
}

// flat returns a triangle with a single color.
func flat(col mgl32.Vec3, a, b, c mgl32.Vec4) Triangle {
	return Triangle{{a, col}, {b, col}, {c, col}}
}

// shaded returns a triangle with one color per corner.
func shaded(a, b, c mgl32.Vec4, ca, cb, cc mgl32.Vec3) Triangle {
	return Triangle{{a, ca}, {b, cb}, {c, cc}}
}

// screen converts pixel coordinates on a width × height canvas to a
// clip-space position with w = 1.
func screen(width, height int, x, y, z float32) mgl32.Vec4 {
	return mgl32.Vec4{2*x/float32(width) - 1, 2*y/float32(height) - 1, z, 1}
}

// screenTriangle returns a single-colored triangle given in pixel
// coordinates.
func screenTriangle(width, height int, z float32, col mgl32.Vec3, x1, y1, x2, y2, x3, y3 float32) Triangle {
	return flat(col,
		screen(width, height, x1, y1, z),
		screen(width, height, x2, y2, z),
		screen(width, height, x3, y3, z))
}

// rectangle returns the two counter-clockwise triangles of an
// axis-aligned rectangle given in pixel coordinates.
func rectangle(width, height int, z float32, col mgl32.Vec3, x1, y1, x2, y2 float32) []Triangle {
	return []Triangle{
		screenTriangle(width, height, z, col, x1, y1, x2, y1, x2, y2),
		screenTriangle(width, height, z, col, x1, y1, x2, y2, x1, y2),
	}
}
