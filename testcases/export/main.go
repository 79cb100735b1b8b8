// Command export writes test case definitions to JSON for external
// reference renderers.
// Run from the go-render3d module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"seehuhn.de/go/render3d/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string         `json:"name"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Mode      string         `json:"mode"`
	Cull      string         `json:"cull"`
	Front     string         `json:"front"`
	Depth     bool           `json:"depth,omitempty"`
	Transform []float32      `json:"transform,omitempty"` // column-major
	Triangles [][]jsonVertex `json:"triangles"`
}

type jsonVertex struct {
	Pos   []float32 `json:"pos"`
	Color []float32 `json:"color"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   category + "_" + tc.Name,
		Width:  tc.Width,
		Height: tc.Height,
		Mode:   tc.Mode.String(),
		Cull:   tc.Cull.String(),
		Front:  tc.Front.String(),
		Depth:  tc.Depth,
	}
	if tc.Transform != (mgl32.Mat4{}) {
		jtc.Transform = slices.Clone(tc.Transform[:])
	}
	for _, t := range tc.Triangles {
		tri := make([]jsonVertex, len(t))
		for i, v := range t {
			tri[i] = jsonVertex{
				Pos:   slices.Clone(v.Pos[:]),
				Color: slices.Clone(v.Color[:]),
			}
		}
		jtc.Triangles = append(jtc.Triangles, tri)
	}
	return jtc
}
