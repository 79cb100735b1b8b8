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

// Package framebuffer provides the render targets of the pipeline: a
// generic two-dimensional grid of values, a floating point color type, and
// conversion of finished color buffers into images.
//
// Coordinates follow the pipeline convention: x grows to the right, y grows
// upwards, and (0, 0) is the bottom-left pixel.
package framebuffer

import (
	"fmt"

	"seehuhn.de/go/render3d/internal/bresenham"
)

// Buffer is a width × height grid of values of type T.
// Pixels are stored row by row, starting with row y = 0.
type Buffer[T any] struct {
	width  int
	height int

	// Pix holds the values in row-major order: the value for (x, y) is at
	// index y*Width()+x.
	Pix []T
}

// NewBuffer allocates a buffer filled with the zero value of T.
func NewBuffer[T any](width, height int) *Buffer[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("framebuffer: invalid size %d×%d", width, height))
	}
	return &Buffer[T]{
		width:  width,
		height: height,
		Pix:    make([]T, width*height),
	}
}

// ColorBuffer is a buffer of colors.
type ColorBuffer = Buffer[Color]

// DepthBuffer is a buffer of depth values.
// Depth values are in the range [0, 1], smaller values are nearer.
type DepthBuffer = Buffer[float32]

// NewColorBuffer allocates a color buffer filled with transparent black.
func NewColorBuffer(width, height int) *ColorBuffer {
	return NewBuffer[Color](width, height)
}

// NewDepthBuffer allocates a depth buffer filled with 1, the far plane.
func NewDepthBuffer(width, height int) *DepthBuffer {
	b := NewBuffer[float32](width, height)
	b.Fill(1)
	return b
}

// Width returns the number of columns.
func (b *Buffer[T]) Width() int { return b.width }

// Height returns the number of rows.
func (b *Buffer[T]) Height() int { return b.height }

// At returns the value at (x, y).
// The coordinates must be inside the buffer.
func (b *Buffer[T]) At(x, y int) T {
	return b.Pix[b.index(x, y)]
}

// Set stores v at (x, y).
// The coordinates must be inside the buffer.
func (b *Buffer[T]) Set(x, y int, v T) {
	b.Pix[b.index(x, y)] = v
}

// Fill sets every value of the buffer to v.
func (b *Buffer[T]) Fill(v T) {
	for i := range b.Pix {
		b.Pix[i] = v
	}
}

func (b *Buffer[T]) index(x, y int) int {
	if uint(x) >= uint(b.width) || uint(y) >= uint(b.height) {
		panic(fmt.Sprintf("framebuffer: (%d, %d) outside %d×%d buffer", x, y, b.width, b.height))
	}
	return y*b.width + x
}

// DrawLine sets all pixels on the line from (x1, y1) to (x2, y2) to v.
// Both endpoints are included and must be inside the buffer.
func DrawLine[T any](b *Buffer[T], x1, y1, x2, y2 int, v T) {
	bresenham.Walk(x1, y1, x2, y2, func(x, y int, _ float64) {
		b.Set(x, y, v)
	})
}
