package framebuffer

import (
	"bytes"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/bmp"
)

func TestBufferAccess(t *testing.T) {
	b := NewBuffer[int](3, 2)
	if b.Width() != 3 || b.Height() != 2 || len(b.Pix) != 6 {
		t.Fatalf("unexpected size %d×%d (%d values)", b.Width(), b.Height(), len(b.Pix))
	}

	b.Fill(7)
	b.Set(2, 1, 9)
	for y := range 2 {
		for x := range 3 {
			want := 7
			if x == 2 && y == 1 {
				want = 9
			}
			if got := b.At(x, y); got != want {
				t.Errorf("At(%d, %d) = %d, want %d", x, y, got, want)
			}
		}
	}
	if b.Pix[5] != 9 {
		t.Errorf("row-major layout: Pix[5] = %d, want 9", b.Pix[5])
	}
}

func TestBufferOutOfRange(t *testing.T) {
	b := NewBuffer[float32](4, 4)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Set(%d, %d) did not panic", p[0], p[1])
				}
			}()
			b.Set(p[0], p[1], 1)
		}()
	}
}

func TestNewDepthBuffer(t *testing.T) {
	db := NewDepthBuffer(2, 2)
	for i, v := range db.Pix {
		if v != 1 {
			t.Errorf("Pix[%d] = %g, want 1", i, v)
		}
	}
}

func TestDrawLine(t *testing.T) {
	b := NewBuffer[uint8](8, 8)
	DrawLine(b, 0, 0, 7, 7, 1)
	count := 0
	for y := range 8 {
		for x := range 8 {
			v := b.At(x, y)
			if v != 0 {
				count++
			}
			if (x == y) != (v == 1) {
				t.Errorf("pixel (%d, %d) = %d", x, y, v)
			}
		}
	}
	if count != 8 {
		t.Errorf("%d pixels set, want 8", count)
	}
}

func TestColorConversion(t *testing.T) {
	for _, v := range []float32{0, 0.001, 0.04, 0.2, 0.5, 0.8, 1} {
		c := Color{R: v, G: v, B: v, A: 0.5}
		back := c.ToLinear().ToSRGB()
		if math.Abs(float64(back.R-v)) > 1e-5 {
			t.Errorf("sRGB round trip of %g gave %g", v, back.R)
		}
		if back.A != 0.5 {
			t.Errorf("alpha changed to %g", back.A)
		}
	}

	if got := RGB(1, 1, 1).ToLinear(); math.Abs(float64(got.Luminance()-1)) > 1e-5 {
		t.Errorf("luminance of white = %g", got.Luminance())
	}
}

func TestColorNRGBA(t *testing.T) {
	cases := []struct {
		in   Color
		want color.NRGBA
	}{
		{Color{0, 0, 0, 0}, color.NRGBA{0, 0, 0, 0}},
		{Color{1, 0.5, 0.25, 1}, color.NRGBA{255, 127, 63, 255}},
		{Color{-1, 2, 1.5, -0.5}, color.NRGBA{0, 255, 255, 0}},
	}
	for _, c := range cases {
		if got := c.in.NRGBA(); got != c.want {
			t.Errorf("%v.NRGBA() = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestColorIsValid(t *testing.T) {
	if !RGB(0.1, 0.2, 0.3).IsValid() {
		t.Error("finite color reported invalid")
	}
	nan := float32(math.NaN())
	inf := float32(math.Inf(1))
	if (Color{R: nan, A: 1}).IsValid() || (Color{B: inf}).IsValid() {
		t.Error("non-finite color reported valid")
	}
}

func TestImageOrientation(t *testing.T) {
	cb := NewColorBuffer(2, 3)
	cb.Fill(RGB(0, 0, 0))
	cb.Set(1, 0, RGB(1, 0, 0)) // bottom right

	img := Image(cb)
	if got := img.NRGBAAt(1, 2); got != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("bottom right pixel = %v", got)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{0, 0, 0, 255}) {
		t.Errorf("top right pixel = %v", got)
	}
}

func TestWriteBMP(t *testing.T) {
	cb := NewColorBuffer(4, 2)
	cb.Fill(RGB(0, 1, 0))
	cb.Set(0, 1, RGB(0, 0, 1))

	buf := &bytes.Buffer{}
	if err := WriteBMP(buf, cb); err != nil {
		t.Fatal(err)
	}
	img, err := bmp.Decode(buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Fatalf("decoded size %v", b)
	}
	r, g, bl, _ := img.At(0, 0).RGBA()
	if r != 0 || g != 0 || bl != 0xffff {
		t.Errorf("top left pixel = %d %d %d, want blue", r, g, bl)
	}
	r, g, bl, _ = img.At(3, 1).RGBA()
	if r != 0 || g != 0xffff || bl != 0 {
		t.Errorf("bottom right pixel = %d %d %d, want green", r, g, bl)
	}
}
