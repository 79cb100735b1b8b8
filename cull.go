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

	"seehuhn.de/go/geom/vec"
)

// CullMode selects which triangles are discarded based on their
// orientation on screen.
type CullMode uint8

// These are the supported cull modes.
const (
	CullNone CullMode = iota
	CullBack
	CullFront
	CullBackAndFront
)

func (m CullMode) String() string {
	switch m {
	case CullNone:
		return "none"
	case CullBack:
		return "back"
	case CullFront:
		return "front"
	case CullBackAndFront:
		return "back-and-front"
	default:
		return fmt.Sprintf("CullMode(%d)", uint8(m))
	}
}

// FrontFace selects the vertex order of front-facing triangles, as seen on
// screen with the y axis pointing up.
type FrontFace uint8

// These are the supported winding conventions.
const (
	FrontCCW FrontFace = iota // counter-clockwise triangles face the viewer
	FrontCW                   // clockwise triangles face the viewer
)

func (f FrontFace) String() string {
	switch f {
	case FrontCCW:
		return "ccw"
	case FrontCW:
		return "cw"
	default:
		return fmt.Sprintf("FrontFace(%d)", uint8(f))
	}
}

// signedArea returns twice the signed area of the triangle abc.
// The area is positive if the vertices are in counter-clockwise order.
func signedArea(a, b, c vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X +
		b.X*c.Y - b.Y*c.X +
		c.X*a.Y - c.Y*a.X
}

// culls reports whether a triangle with the given doubled signed area
// (in normalized device coordinates) is discarded.  Triangles with zero
// area count as back-facing when counter-clockwise triangles are in
// front, and as front-facing otherwise.
func (m CullMode) culls(area float64, front FrontFace) bool {
	ccw := area > 0
	switch m {
	case CullBack:
		if front == FrontCCW {
			return !ccw
		}
		return ccw
	case CullFront:
		if front == FrontCCW {
			return ccw
		}
		return !ccw
	case CullBackAndFront:
		return true
	default:
		return false
	}
}
