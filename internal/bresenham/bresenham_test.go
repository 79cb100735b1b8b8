package bresenham

import (
	"fmt"
	"testing"
)

type pixel struct{ x, y int }

func collect(x1, y1, x2, y2 int) (map[pixel]float64, []pixel) {
	seen := make(map[pixel]float64)
	var order []pixel
	Walk(x1, y1, x2, y2, func(x, y int, delta float64) {
		p := pixel{x, y}
		seen[p] = delta
		order = append(order, p)
	})
	return seen, order
}

func TestWalkSinglePixel(t *testing.T) {
	seen, order := collect(3, 4, 3, 4)
	if len(order) != 1 {
		t.Fatalf("got %d pixels, want 1", len(order))
	}
	if d, ok := seen[pixel{3, 4}]; !ok || d != 0 {
		t.Errorf("pixel (3,4) delta %g, present %t", d, ok)
	}
}

func TestWalk(t *testing.T) {
	cases := [][4]int{
		{0, 0, 7, 0},
		{7, 0, 0, 0},
		{2, 9, 2, 1},
		{0, 0, 7, 3},
		{7, 3, 0, 0},
		{0, 0, 3, 7},
		{3, 7, 0, 0},
		{0, 5, 5, 0},
		{1, 1, 9, 9},
		{10, 2, 0, 6},
	}
	for _, c := range cases {
		x1, y1, x2, y2 := c[0], c[1], c[2], c[3]
		t.Run(fmt.Sprint(c), func(t *testing.T) {
			seen, order := collect(x1, y1, x2, y2)

			want := max(abs(x2-x1), abs(y2-y1)) + 1
			if len(order) != want || len(seen) != want {
				t.Fatalf("got %d visits (%d distinct), want %d", len(order), len(seen), want)
			}
			if d, ok := seen[pixel{x1, y1}]; !ok || d != 0 {
				t.Errorf("first endpoint: delta %g, present %t", d, ok)
			}
			if d, ok := seen[pixel{x2, y2}]; !ok || d != 1 {
				t.Errorf("second endpoint: delta %g, present %t", d, ok)
			}

			// consecutive pixels are 8-connected
			for i := 1; i < len(order); i++ {
				ddx := abs(order[i].x - order[i-1].x)
				ddy := abs(order[i].y - order[i-1].y)
				if ddx > 1 || ddy > 1 || ddx+ddy == 0 {
					t.Errorf("pixels %v and %v are not neighbours", order[i-1], order[i])
				}
			}

			for p, d := range seen {
				if d < 0 || d > 1 {
					t.Errorf("pixel %v: delta %g out of range", p, d)
				}
			}

			reverse, _ := collect(x2, y2, x1, y1)
			for p, d := range seen {
				rd, ok := reverse[p]
				if !ok {
					t.Errorf("pixel %v missing from reversed walk", p)
					continue
				}
				if diff := d + rd - 1; diff > 1e-12 || diff < -1e-12 {
					t.Errorf("pixel %v: delta %g, reversed %g", p, d, rd)
				}
			}
		})
	}
}
