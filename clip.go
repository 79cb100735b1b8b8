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
	"github.com/go-gl/mathgl/mgl32"
)

// clipVertex is a vertex in homogeneous clip space, together with its
// block of interpolable attributes.
type clipVertex struct {
	pos  mgl32.Vec4
	attr []float32
}

// clipPlane identifies one of the half-spaces a triangle is clipped
// against.  The planes are applied in the order listed here.
type clipPlane int

const (
	clipW    clipPlane = iota // w ≥ wEpsilon
	clipPosX                  // x ≤ w
	clipNegX                  // x ≥ -w
	clipPosY                  // y ≤ w
	clipNegY                  // y ≥ -w
	clipPosZ                  // z ≤ w
	clipNegZ                  // z ≥ -w

	numClipPlanes = 7
)

// wEpsilon keeps clipped vertices away from w = 0, so that the perspective
// divide stays finite.
const wEpsilon = 1e-5

// maxClipVertices bounds the size of a clipped triangle: every plane can
// add at most one vertex to a convex polygon.
const maxClipVertices = 3 + numClipPlanes

func (p clipPlane) inside(v mgl32.Vec4) bool {
	switch p {
	case clipW:
		return v[3] >= wEpsilon
	case clipPosX:
		return v[0] <= v[3]
	case clipNegX:
		return v[0] >= -v[3]
	case clipPosY:
		return v[1] <= v[3]
	case clipNegY:
		return v[1] >= -v[3]
	case clipPosZ:
		return v[2] <= v[3]
	case clipNegZ:
		return v[2] >= -v[3]
	default:
		panic("unreachable")
	}
}

// distance returns a signed distance which is positive inside the
// half-space and varies linearly along an edge in clip space.
func (p clipPlane) distance(v mgl32.Vec4) float32 {
	switch p {
	case clipW:
		return v[3] - wEpsilon
	case clipPosX:
		return v[3] - v[0]
	case clipNegX:
		return v[3] + v[0]
	case clipPosY:
		return v[3] - v[1]
	case clipNegY:
		return v[3] + v[1]
	case clipPosZ:
		return v[3] - v[2]
	case clipNegZ:
		return v[3] + v[2]
	default:
		panic("unreachable")
	}
}

// intersect returns the parameter t at which the edge from prev to curr
// crosses the plane.  The two points must lie on different sides.
func (p clipPlane) intersect(prev, curr mgl32.Vec4) float32 {
	dp := p.distance(prev)
	return dp / (dp - p.distance(curr))
}

// insideAll reports whether v lies inside every clip half-space.
func insideAll(v mgl32.Vec4) bool {
	return v[3] >= wEpsilon &&
		v[0] <= v[3] && v[0] >= -v[3] &&
		v[1] <= v[3] && v[1] >= -v[3] &&
		v[2] <= v[3] && v[2] >= -v[3]
}

// clip clips a triangle against all clip planes, using the
// Sutherland-Hodgman algorithm.  The resulting convex polygon is returned
// in the order in which its vertices were emitted by the last pass; it is
// empty if the triangle lies entirely outside.  The returned slice refers
// to storage inside the arena and is valid until the next call to clip.
// New attribute blocks are allocated from the arena.
func (a *Arena) clip(tri *[3]clipVertex, lanes int) ([]clipVertex, error) {
	poly := append(a.poly[0][:0], tri[:]...)
	if insideAll(tri[0].pos) && insideAll(tri[1].pos) && insideAll(tri[2].pos) {
		return poly, nil
	}
	return a.clipPlanes(poly, lanes)
}

// clipPlanes clips the polygon in a.poly[0] against every plane in turn.
func (a *Arena) clipPlanes(poly []clipVertex, lanes int) ([]clipVertex, error) {
	for plane := range clipPlane(numClipPlanes) {
		out := a.poly[(plane+1)%2][:0]
		n := len(poly)
		prev := poly[n-1]
		prevInside := plane.inside(prev.pos)
		for _, curr := range poly {
			currInside := plane.inside(curr.pos)
			if prevInside != currInside {
				t := plane.intersect(prev.pos, curr.pos)
				attr, err := a.Alloc(lanes, laneAlign)
				if err != nil {
					return nil, err
				}
				for j := range attr {
					attr[j] = (1-t)*prev.attr[j] + t*curr.attr[j]
				}
				out = append(out, clipVertex{
					pos:  prev.pos.Mul(1 - t).Add(curr.pos.Mul(t)),
					attr: attr,
				})
			}
			if currInside {
				out = append(out, curr)
			}
			prev, prevInside = curr, currInside
		}
		if len(out) == 0 {
			return nil, nil
		}
		poly = out
	}
	return poly, nil
}
