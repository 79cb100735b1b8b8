package mesh

import (
	"encoding/binary"
	"math"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// checkWinding verifies that every non-degenerate triangle is wound
// counter-clockwise around the given outward direction.
func checkWinding(t *testing.T, m *Mesh, outward func(p mgl32.Vec3, n mgl32.Vec3) mgl32.Vec3) {
	t.Helper()
	for i := 0; i < len(m.Indices); i += 3 {
		i0, i1, i2 := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		p0, p1, p2 := m.Positions[i0], m.Positions[i1], m.Positions[i2]
		c := p1.Sub(p0).Cross(p2.Sub(p0))
		if c.Len() < 1e-6 {
			continue // degenerate triangle at a pole
		}
		centre := p0.Add(p1).Add(p2).Mul(1.0 / 3)
		if c.Dot(outward(centre, m.Normals[i0])) <= 0 {
			t.Errorf("triangle %d is wound clockwise", i/3)
		}
	}
}

func checkConsistent(t *testing.T, m *Mesh) {
	t.Helper()
	n := m.NumVertices()
	if len(m.Normals) != n || len(m.TexCoords) != n || len(m.Tangents) != n {
		t.Fatalf("attribute counts %d/%d/%d for %d vertices",
			len(m.Normals), len(m.TexCoords), len(m.Tangents), n)
	}
	if len(m.Indices)%3 != 0 {
		t.Fatalf("%d indices", len(m.Indices))
	}
	for _, idx := range m.Indices {
		if int(idx) >= n {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestSphere(t *testing.T) {
	m := Sphere(2, 16)
	checkConsistent(t, m)
	if m.NumVertices() != 9*17 {
		t.Errorf("%d vertices, want %d", m.NumVertices(), 9*17)
	}
	if m.NumTriangles() != 8*16*2 {
		t.Errorf("%d triangles, want %d", m.NumTriangles(), 8*16*2)
	}
	for i, p := range m.Positions {
		if math.Abs(float64(p.Len()-2)) > 1e-5 {
			t.Errorf("vertex %d at distance %g", i, p.Len())
		}
		if d := m.Normals[i].Dot(m.Tangents[i].Vec3()); math.Abs(float64(d)) > 1e-5 {
			t.Errorf("vertex %d: tangent not orthogonal to normal (%g)", i, d)
		}
	}
	checkWinding(t, m, func(p, _ mgl32.Vec3) mgl32.Vec3 { return p })
}

func TestSphereOddSlices(t *testing.T) {
	m := Sphere(1, 7)
	checkConsistent(t, m)
	if m.NumVertices() != 4*8 || m.NumTriangles() != 3*7*2 {
		t.Errorf("%d vertices, %d triangles", m.NumVertices(), m.NumTriangles())
	}
	// The first and last ring must collapse onto the poles.
	for j := range 8 {
		if y := m.Positions[j][1]; math.Abs(float64(y-1)) > 1e-6 {
			t.Errorf("north ring vertex %d at y = %g", j, y)
		}
		if y := m.Positions[3*8+j][1]; math.Abs(float64(y+1)) > 1e-6 {
			t.Errorf("south ring vertex %d at y = %g", j, y)
		}
	}
	checkWinding(t, m, func(p, _ mgl32.Vec3) mgl32.Vec3 { return p })
}

func TestCube(t *testing.T) {
	m := Cube(0.5)
	checkConsistent(t, m)
	if m.NumVertices() != 24 || m.NumTriangles() != 12 {
		t.Errorf("%d vertices, %d triangles", m.NumVertices(), m.NumTriangles())
	}
	for _, f := range cubeFaces {
		if !f[1].Cross(f[2]).ApproxEqual(f[0]) {
			t.Errorf("face %v: tangent × bitangent != normal", f[0])
		}
	}
	for i, p := range m.Positions {
		for k := range 3 {
			if math.Abs(float64(p[k])) != 0.5 {
				t.Errorf("vertex %d = %v is not a corner", i, p)
			}
		}
	}
	checkWinding(t, m, func(_, n mgl32.Vec3) mgl32.Vec3 { return n })
}

func TestQuadAndGrid(t *testing.T) {
	q := Quad(1)
	checkConsistent(t, q)
	checkWinding(t, q, func(_, n mgl32.Vec3) mgl32.Vec3 { return n })

	g := Grid(4, 2, 3, 5)
	checkConsistent(t, g)
	if g.NumVertices() != 15 || g.NumTriangles() != 2*4*2 {
		t.Errorf("%d vertices, %d triangles", g.NumVertices(), g.NumTriangles())
	}
	if g.Positions[0] != (mgl32.Vec3{-2, 0, 1}) || g.Positions[14] != (mgl32.Vec3{2, 0, -1}) {
		t.Errorf("grid corners %v %v", g.Positions[0], g.Positions[14])
	}
	checkWinding(t, g, func(_, n mgl32.Vec3) mgl32.Vec3 { return n })
}

func TestPack(t *testing.T) {
	q := Quad(1)
	buf, stride, err := q.Pack(Position | TexCoord)
	if err != nil {
		t.Fatal(err)
	}
	if stride != 20 || len(buf) != 4*20 {
		t.Fatalf("stride %d, %d bytes", stride, len(buf))
	}
	get := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	// vertex 3: position (1, 1, 0), texcoord (1, 1)
	want := []float32{1, 1, 0, 1, 1}
	for k, w := range want {
		if got := get(3*stride + 4*k); got != w {
			t.Errorf("vertex 3 float %d = %g, want %g", k, got, w)
		}
	}

	bare := &Mesh{Positions: q.Positions, Indices: q.Indices}
	if _, _, err := bare.Pack(Position | Normal); err == nil {
		t.Error("packing missing normals succeeded")
	}
}

const quadOBJ = `# a unit quad
mtllib quad.mtl
o square
usemtl paper
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vt 1 0
vt 1 1
vt 0 1
vn 0 0 1
s off
f 1/1/1 2/2/1 3/3/1 -1/-1/-1
`

func TestReadOBJ(t *testing.T) {
	obj, err := ReadOBJ(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatal(err)
	}
	if len(obj.Positions) != 4 || len(obj.TexCoords) != 4 || len(obj.Normals) != 1 {
		t.Fatalf("%d positions, %d texcoords, %d normals",
			len(obj.Positions), len(obj.TexCoords), len(obj.Normals))
	}
	if len(obj.Faces) != 2 {
		t.Fatalf("%d faces, want 2", len(obj.Faces))
	}
	if got := obj.Faces[1].Position; got != [3]int{0, 2, 3} {
		t.Errorf("second fan triangle %v", got)
	}
	if len(obj.Objects) != 1 || obj.Objects[0].Name != "square" ||
		len(obj.Objects[0].Faces) != 2 || obj.Objects[0].Materials[0] != "paper" {
		t.Errorf("objects %+v", obj.Objects)
	}
	if len(obj.MaterialLibs) != 1 || obj.MaterialLibs[0] != "quad.mtl" {
		t.Errorf("material libs %v", obj.MaterialLibs)
	}

	m := obj.Mesh()
	if m.NumVertices() != 4 || m.NumTriangles() != 2 {
		t.Fatalf("%d vertices, %d triangles", m.NumVertices(), m.NumTriangles())
	}
	if len(m.Tangents) != 4 {
		t.Fatalf("%d tangents", len(m.Tangents))
	}
	for i, tan := range m.Tangents {
		if !tan.ApproxEqual(mgl32.Vec4{1, 0, 0, 1}) {
			t.Errorf("tangent %d = %v", i, tan)
		}
	}
}

func TestReadOBJPositionsOnly(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nvn 0 0 1\nf 1 2 3\nf 1//1 3//1 2//1\n"
	obj, err := ReadOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	m := obj.Mesh()
	if m.Normals != nil || m.TexCoords != nil || m.Tangents != nil {
		t.Error("partial attributes should be dropped")
	}
	if m.NumVertices() != 3 || m.NumTriangles() != 2 {
		t.Errorf("%d vertices, %d triangles", m.NumVertices(), m.NumTriangles())
	}
}

func TestReadOBJErrors(t *testing.T) {
	cases := map[string]string{
		"v 1 2\n":                  "line 1",
		"v 0 0 0\nf 1 2 3\n":       "line 2",
		"v 0 0 0\nf 0 1 1\n":       "invalid index 0",
		"v 0 0 0\nf 1 1\n":         "corners",
		"o a\no a\n":               "duplicate",
		"v 0 0 0\nf 1/x/1 1 1\n":   "invalid index",
		"vt 0 zero\n":              "line 1",
		"v 0 0 0\nf 1/1/1/1 1 1\n": "malformed",
	}
	for src, want := range cases {
		_, err := ReadOBJ(strings.NewReader(src))
		if err == nil {
			t.Errorf("%q: no error", src)
			continue
		}
		if !strings.Contains(err.Error(), want) {
			t.Errorf("%q: error %q does not mention %q", src, err, want)
		}
	}
}
