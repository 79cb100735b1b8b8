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

package framebuffer

import (
	"image/color"
	"math"
)

// Color is a non-premultiplied RGBA color with floating point components.
// Components are nominally in the range [0, 1]; values outside this range
// are kept and clamped only on conversion to 8-bit formats.
type Color struct {
	R, G, B, A float32
}

// RGB returns an opaque color.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Gray returns an opaque gray level.
func Gray(v float32) Color {
	return Color{R: v, G: v, B: v, A: 1}
}

// IsValid reports whether all four components are finite.
func (c Color) IsValid() bool {
	for _, v := range [4]float32{c.R, c.G, c.B, c.A} {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// ToLinear converts the color components from the sRGB transfer curve to
// linear light.  Alpha is not changed.
func (c Color) ToLinear() Color {
	return Color{R: srgbToLinear(c.R), G: srgbToLinear(c.G), B: srgbToLinear(c.B), A: c.A}
}

// ToSRGB converts the color components from linear light to the sRGB
// transfer curve.  Alpha is not changed.
func (c Color) ToSRGB() Color {
	return Color{R: linearToSRGB(c.R), G: linearToSRGB(c.G), B: linearToSRGB(c.B), A: c.A}
}

// Luminance returns the relative luminance of a linear color (Rec. 709
// primaries).
func (c Color) Luminance() float32 {
	return c.R*0.212671 + c.G*0.715160 + c.B*0.072169
}

// NRGBA converts the color to 8 bits per component.
// Components are scaled by 255, truncated and clamped to [0, 255].
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// RGBA implements the [color.Color] interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func to8(v float32) uint8 {
	return uint8(max(0, min(255, int(v*255))))
}

func srgbToLinear(v float32) float32 {
	if v <= 0.04045 {
		return v * (1 / 12.92)
	}
	return float32(math.Pow((float64(v)+0.055)/1.055, 2.4))
}

func linearToSRGB(v float32) float32 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return float32(1.055*math.Pow(float64(v), 1/2.4) - 0.055)
}
