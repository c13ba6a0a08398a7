package export_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/DSchroer/splinosaurus"
	"github.com/DSchroer/splinosaurus/construct"
	"github.com/DSchroer/splinosaurus/export"
)

// TriangulationSuite groups tests for Triangulate.
type TriangulationSuite struct {
	suite.Suite
	plane *splinosaurus.BSurface[float64]
}

func (s *TriangulationSuite) SetupTest() {
	var points []splinosaurus.Vector[float64]
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			points = append(points, splinosaurus.Vec3(float64(x), float64(y), 0))
		}
	}

	grid, err := splinosaurus.NewControlGrid(2, 3, points)
	s.Require().NoError(err)

	s.plane, err = splinosaurus.NewBSurface(grid, splinosaurus.Clamped())
	s.Require().NoError(err)
}

// TestPlane: 3×3 samples => 9 points, 8 triangles facing +z.
func (s *TriangulationSuite) TestPlane() {
	mesh, err := export.Triangulate[float64](s.plane, 0.5)
	s.Require().NoError(err)

	s.Equal(3, mesh.USteps())
	s.Equal(3, mesh.VSteps())
	s.Len(mesh.Points(), 9)
	s.Len(mesh.IndexedTriangles(), 8)
	s.Len(mesh.Normals(), 8)

	up := vec3.T{0, 0, 1}
	for i, n := range mesh.Normals() {
		s.InDelta(0, vec3.Distance(&n, &up), 1e-12, "normal %d = %v", i, n)
	}

	want := vec3.T{1, 0, 0}
	s.InDelta(0, vec3.Distance(&mesh.Points()[1], &want), 1e-12)
	s.Equal(export.Tri{0, 4, 3}, mesh.IndexedTriangles()[0])
	s.Equal(export.Tri{0, 1, 4}, mesh.IndexedTriangles()[1])
}

// TestIndicesInBounds: every index refers to a sampled point.
func (s *TriangulationSuite) TestIndicesInBounds() {
	mesh, err := export.Triangulate[float64](s.plane, 0.1)
	s.Require().NoError(err)

	s.Len(mesh.IndexedTriangles(), 2*10*10)
	for _, tri := range mesh.IndexedTriangles() {
		for _, i := range tri {
			s.GreaterOrEqual(i, 0)
			s.Less(i, len(mesh.Points()))
		}
	}
}

// TestTriangles: iterators agree with the indexed form and stop early.
func (s *TriangulationSuite) TestTriangles() {
	mesh, err := export.Triangulate[float64](s.plane, 0.5)
	s.Require().NoError(err)

	var i int
	for tri, n := range mesh.TrianglesWithNormals() {
		idx := mesh.IndexedTriangles()[i]
		s.Equal(mesh.Points()[idx[2]], tri[2])
		s.Equal(mesh.Normals()[i], n)
		i++
	}
	s.Equal(8, i)

	var seen int
	for range mesh.Triangles() {
		seen++
		if seen == 3 {
			break
		}
	}
	s.Equal(3, seen)
}

// TestBoundingBox: the mesh box spans the control polygon of the plane.
func (s *TriangulationSuite) TestBoundingBox() {
	mesh, err := export.Triangulate[float64](s.plane, 0.25)
	s.Require().NoError(err)

	bb := mesh.BoundingBox()
	s.InDeltaSlice([]float64{0, 0, 0}, []float64(bb.Min()), 1e-12)
	s.InDeltaSlice([]float64{2, 2, 0}, []float64(bb.Max()), 1e-12)
}

// TestUWrappingSeam: a u-wrapping surface gets one extra column of quads.
func (s *TriangulationSuite) TestUWrappingSeam() {
	var points []splinosaurus.Vector[float64]
	for z := 0; z < 3; z++ {
		for i := 0; i < 4; i++ {
			angle := float64(i) * math.Pi / 2
			points = append(points, splinosaurus.Vec3(math.Cos(angle), math.Sin(angle), float64(z)))
		}
	}

	grid, err := splinosaurus.NewControlGrid(2, 4, points)
	s.Require().NoError(err)
	grid.SetUWrapping(true)

	surface, err := splinosaurus.NewBSurface(grid)
	s.Require().NoError(err)

	// u over [2, 6] and v over [2, 3] at step 1
	mesh, err := export.Triangulate[float64](surface, 1)
	s.Require().NoError(err)
	s.Equal(5, mesh.USteps())
	s.Equal(2, mesh.VSteps())
	s.Len(mesh.IndexedTriangles(), 2*4*1+2*1)

	seam := mesh.IndexedTriangles()[8:]
	s.Equal(export.Tri{4, 5, 9}, seam[0])
	s.Equal(export.Tri{4, 0, 5}, seam[1])

	open, err := export.Triangulate[float64](surface, 1, export.WithoutSeams())
	s.Require().NoError(err)
	s.Len(open.IndexedTriangles(), 2*4*1)
}

// TestSeamTrianglesAreDegenerate: the sampled domain end repeats the first
// column, so seam triangles have zero normals.
func (s *TriangulationSuite) TestSeamTrianglesAreDegenerate() {
	cylinder, err := construct.Cylinder(&vec3.UnitZ, &vec3.UnitX, &vec3.Zero, 2, 1)
	s.Require().NoError(err)

	mesh, err := export.Triangulate[float64](cylinder, 0.5)
	s.Require().NoError(err)

	nu, nv := mesh.USteps(), mesh.VSteps()
	body := 2 * (nu - 1) * (nv - 1)
	for _, n := range mesh.Normals()[body:] {
		s.InDelta(0, n.Length(), 1e-6)
	}
	for _, n := range mesh.Normals()[:body] {
		s.InDelta(1, n.Length(), 1e-9)
	}
}

// TestRejectsWrappingChangedAfterConstruction: a grid switched to wrap on
// both axes after the surface was built is not meshed.
func (s *TriangulationSuite) TestRejectsWrappingChangedAfterConstruction() {
	var points []splinosaurus.Vector[float64]
	for z := 0; z < 3; z++ {
		for x := 0; x < 3; x++ {
			points = append(points, splinosaurus.Vec3(float64(x), float64(z), 0))
		}
	}

	grid, err := splinosaurus.NewControlGrid(2, 3, points)
	s.Require().NoError(err)
	grid.SetUWrapping(true)

	surface, err := splinosaurus.NewBSurface(grid)
	s.Require().NoError(err)

	grid.SetVWrapping(true)
	_, err = export.Triangulate[float64](surface, 1)
	s.ErrorIs(err, splinosaurus.ErrInvalidConfiguration)
}

// TestCylinderSeam: the rational cylinder wraps in u and stitches its seam.
func (s *TriangulationSuite) TestCylinderSeam() {
	cylinder, err := construct.Cylinder(&vec3.UnitZ, &vec3.UnitX, &vec3.Zero, 2, 1)
	s.Require().NoError(err)

	mesh, err := export.Triangulate[float64](cylinder, 0.5)
	s.Require().NoError(err)

	nu, nv := mesh.USteps(), mesh.VSteps()
	s.Equal(9, nu)
	s.Equal(3, nv)
	s.Len(mesh.IndexedTriangles(), 2*(nu-1)*(nv-1)+2*(nv-1))

	for _, p := range mesh.Points() {
		s.InDelta(1, math.Hypot(p[0], p[1]), 1e-9)
	}
}

// TestRejects: invalid steps and non-3D surfaces are reported, not meshed.
func (s *TriangulationSuite) TestRejects() {
	_, err := export.Triangulate[float64](s.plane, 0)
	s.ErrorIs(err, splinosaurus.ErrInvalidConfiguration)

	grid, err := splinosaurus.NewControlGrid(1, 2, []splinosaurus.Vector[float64]{{0, 0}, {1, 0}, {0, 1}, {1, 1}})
	s.Require().NoError(err)
	flat, err := splinosaurus.NewBSurface(grid, splinosaurus.Clamped())
	s.Require().NoError(err)

	_, err = export.Triangulate[float64](flat, 0.5)
	s.ErrorIs(err, splinosaurus.ErrInvalidConfiguration)
}

// TestLogsMeshSize: the debug record carries the mesh size.
func (s *TriangulationSuite) TestLogsMeshSize() {
	orig := splinosaurus.Logger()
	s.T().Cleanup(func() { splinosaurus.SetLogger(orig) })

	var buf bytes.Buffer
	splinosaurus.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	_, err := export.Triangulate[float64](s.plane, 0.5)
	s.Require().NoError(err)

	s.Contains(buf.String(), "triangles=8")
}

func TestTriangulationSuite(t *testing.T) {
	suite.Run(t, new(TriangulationSuite))
}

func TestTriangleNormal(t *testing.T) {
	points := []vec3.T{{0, 0, 0}, {1, 0, 0}, {0, 2, 0}, {2, 0, 0}}

	n := export.TriangleNormal(points, export.Tri{0, 1, 2})
	require.Equal(t, vec3.T{0, 0, 1}, n)

	n = export.TriangleNormal(points, export.Tri{0, 2, 1})
	require.Equal(t, vec3.T{0, 0, -1}, n)

	// collinear
	n = export.TriangleNormal(points, export.Tri{0, 1, 3})
	require.Equal(t, vec3.T{}, n)
}

func TestTriangleCentroid(t *testing.T) {
	points := []vec3.T{{0, 0, 0}, {3, 0, 0}, {0, 3, 3}}

	c := export.TriangleCentroid(points, export.Tri{0, 1, 2})
	require.InDelta(t, 0, vec3.Distance(&c, &vec3.T{1, 1, 1}), 1e-12)
}
