package testcases

var wireframeCases = []TestCase{
	{
		Name: "triangle",
		Triangles: []Triangle{
			screenTriangle(64, 64, 0, white, 10, 14, 54, 14, 32, 54),
		},
		Width:  64,
		Height: 64,
		Mode:   Wireframe,
	},
	{
		Name: "steep",
		Triangles: []Triangle{
			screenTriangle(64, 64, 0, green, 30, 2, 34, 62, 33.5, 20),
		},
		Width:  64,
		Height: 64,
		Mode:   Wireframe,
	},
	{
		Name: "shaded",
		Triangles: []Triangle{
			shaded(
				screen(64, 64, 4, 4, 0),
				screen(64, 64, 60, 10, 0),
				screen(64, 64, 20, 60, 0),
				red, green, blue),
		},
		Width:  64,
		Height: 64,
		Mode:   Wireframe,
	},
	{
		Name:      "fan",
		Triangles: fan(64, 64, 32, 32, 28, 9),
		Width:     64,
		Height:    64,
		Mode:      Wireframe,
	},
	{
		Name: "tiny",
		Triangles: []Triangle{
			screenTriangle(8, 8, 0, white, 3.2, 3.3, 3.7, 3.4, 3.5, 3.9),
		},
		Width:  8,
		Height: 8,
		Mode:   Wireframe,
	},
	{
		Name: "edge_of_canvas",
		Triangles: []Triangle{
			flat(yellow, v(-1, -1, 0, 1), v(1, -1, 0, 1), v(1, 1, 0, 1)),
		},
		Width:  32,
		Height: 32,
		Mode:   Wireframe,
	},
	{
		Name:      "culled",
		Triangles: cullPair(),
		Width:     64,
		Height:    32,
		Mode:      Wireframe,
		Cull:      CullBack,
	},
}
