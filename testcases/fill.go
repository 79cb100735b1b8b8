package testcases

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var fillCases = []TestCase{
	{
		Name: "unit_triangle",
		Triangles: []Triangle{
			flat(white, v(0, 0.75, 0, 1), v(-0.5, -0.75, 0, 1), v(0.5, -0.75, 0, 1)),
		},
		Width:  4,
		Height: 4,
	},
	{
		Name: "triangle",
		Triangles: []Triangle{
			screenTriangle(64, 64, 0, white, 10, 14, 54, 14, 32, 54),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name: "triangle_cw",
		Triangles: []Triangle{
			screenTriangle(64, 64, 0, white, 10, 14, 32, 54, 54, 14),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name:      "rectangle",
		Triangles: rectangle(64, 64, 0, white, 10, 10, 54, 54),
		Width:     64,
		Height:    64,
	},
	{
		Name: "gradient",
		Triangles: []Triangle{
			shaded(
				screen(64, 64, 4, 4, 0),
				screen(64, 64, 60, 4, 0),
				screen(64, 64, 32, 60, 0),
				red, green, blue),
		},
		Width:  64,
		Height: 64,
	},
	{
		Name:      "fan",
		Triangles: fan(64, 64, 32, 32, 25, 7),
		Width:     64,
		Height:    64,
	},
}

// fan returns n triangles around a common centre, in alternating shades.
// Neighbouring triangles share an edge.
func fan(width, height int, cx, cy, r float32, n int) []Triangle {
	var res []Triangle
	for i := range n {
		a0 := 2 * math.Pi * float64(i) / float64(n)
		a1 := 2 * math.Pi * float64(i+1) / float64(n)
		col := mgl32.Vec3{1, 1, 1}.Mul(0.4 + 0.6*float32(i%2))
		res = append(res, screenTriangle(width, height, 0, col,
			cx, cy,
			cx+r*float32(math.Cos(a0)), cy+r*float32(math.Sin(a0)),
			cx+r*float32(math.Cos(a1)), cy+r*float32(math.Sin(a1))))
	}
	return res
}
