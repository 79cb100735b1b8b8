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
	"math"
)

// DepthFunc selects the comparison used by the depth test.
// A fragment passes if comparing its depth with the stored depth gives
// true.
type DepthFunc uint8

// These are the supported depth comparisons.
const (
	DepthNever DepthFunc = iota
	DepthLess
	DepthEqual
	DepthLessEqual
	DepthGreater
	DepthNotEqual
	DepthGreaterEqual
	DepthAlways
)

// depthTolerance is the absolute tolerance of DepthEqual and DepthNotEqual.
const depthTolerance = 1e-5

func (f DepthFunc) String() string {
	switch f {
	case DepthNever:
		return "never"
	case DepthLess:
		return "less"
	case DepthEqual:
		return "equal"
	case DepthLessEqual:
		return "less-equal"
	case DepthGreater:
		return "greater"
	case DepthNotEqual:
		return "not-equal"
	case DepthGreaterEqual:
		return "greater-equal"
	case DepthAlways:
		return "always"
	default:
		return fmt.Sprintf("DepthFunc(%d)", uint8(f))
	}
}

// Test compares the depth of a fragment with the value stored in the depth
// buffer.
func (f DepthFunc) Test(depth, stored float32) bool {
	switch f {
	case DepthLess:
		return depth < stored
	case DepthEqual:
		return math.Abs(float64(depth-stored)) <= depthTolerance
	case DepthLessEqual:
		return depth <= stored
	case DepthGreater:
		return depth > stored
	case DepthNotEqual:
		return math.Abs(float64(depth-stored)) > depthTolerance
	case DepthGreaterEqual:
		return depth >= stored
	case DepthAlways:
		return true
	default:
		return false
	}
}
