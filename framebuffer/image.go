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
	"image"
	"io"

	"golang.org/x/image/bmp"
)

// Image converts a color buffer to an 8-bit image.
// Row y of the buffer becomes row Height()-1-y of the image, so that the
// bottom row of the buffer ends up at the bottom of the image.
func Image(cb *ColorBuffer) *image.NRGBA {
	w, h := cb.Width(), cb.Height()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		row := img.Pix[(h-1-y)*img.Stride:]
		for x := range w {
			c := cb.Pix[y*w+x].NRGBA()
			row[4*x+0] = c.R
			row[4*x+1] = c.G
			row[4*x+2] = c.B
			row[4*x+3] = c.A
		}
	}
	return img
}

// WriteBMP encodes the color buffer as a Windows bitmap.
// The image is oriented as described for [Image].
func WriteBMP(w io.Writer, cb *ColorBuffer) error {
	return bmp.Encode(w, Image(cb))
}
