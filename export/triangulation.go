package export

import (
	"fmt"
	"iter"

	"github.com/DSchroer/splinosaurus"
	"github.com/DSchroer/splinosaurus/internal"
	"github.com/ungerik/go3d/float64/vec3"
)

// Tri is a triangle as three indices into Triangulation.Points.
type Tri [3]int

// Triangle is a triangle as three points.
type Triangle [3]vec3.T

// Option configures Triangulate.
type Option func(*options)

type options struct {
	seams bool
}

// WithoutSeams skips the ring of triangles that closes a wrapping surface.
func WithoutSeams() Option {
	return func(o *options) {
		o.seams = false
	}
}

// Triangulation is an indexed triangle mesh with one flat normal per
// triangle. It is immutable once built.
type Triangulation struct {
	points    []vec3.T
	normals   []vec3.T
	triangles []Tri

	uSteps, vSteps int
}

// Triangulate samples surface on the step grid of its domain and splits
// every cell into two triangles. Points are stored u fastest. Surfaces
// reporting wrapping through splinosaurus.Wrapper get an extra ring of
// triangles joining the last and first sample column (or row). The end of
// a closed domain samples the same points as its start, so these seam
// triangles have zero area and a zero normal; pass WithoutSeams to leave
// them out, for example when writing STL.
//
// The surface must produce 3D points.
func Triangulate[T splinosaurus.Scalar](surface splinosaurus.Surface[T], step T, opts ...Option) (*Triangulation, error) {
	o := options{seams: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	samples, steps, err := splinosaurus.SampleSurface(surface, step)
	if err != nil {
		return nil, err
	}

	if dim := samples[0].Dim(); dim != 3 {
		return nil, fmt.Errorf("%w: triangulation needs 3D points, got dimension %d",
			splinosaurus.ErrInvalidConfiguration, dim)
	}

	nu, nv := steps.U.Len(), steps.V.Len()

	points := make([]vec3.T, len(samples))
	for i, pt := range samples {
		points[i] = pt.Vec3()
	}

	grid, ok := internal.NewGrid(nu, points)
	if !ok {
		return nil, fmt.Errorf("%w: %d samples do not form rows of %d",
			splinosaurus.ErrInvalidConfiguration, len(points), nu)
	}

	var uWrap, vWrap bool
	if w, ok := surface.(splinosaurus.Wrapper); ok && o.seams {
		uWrap, vWrap = w.UWrapping(), w.VWrapping()
	}

	count := 2 * (nu - 1) * (nv - 1)
	if uWrap {
		count += 2 * (nv - 1)
	}
	if vWrap {
		count += 2 * (nu - 1)
	}

	this := &Triangulation{
		points:    points,
		normals:   make([]vec3.T, 0, count),
		triangles: make([]Tri, 0, count),
		uSteps:    nu,
		vSteps:    nv,
	}

	for v := 0; v < nv-1; v++ {
		for u := 0; u < nu-1; u++ {
			this.quad(grid.Index(u, v), grid.Index(u+1, v), grid.Index(u, v+1), grid.Index(u+1, v+1))
		}
	}

	if uWrap {
		for v := 0; v < nv-1; v++ {
			this.quad(grid.Index(nu-1, v), grid.Index(0, v), grid.Index(nu-1, v+1), grid.Index(0, v+1))
		}
	}

	if vWrap {
		for u := 0; u < nu-1; u++ {
			this.quad(grid.Index(u, nv-1), grid.Index(u+1, nv-1), grid.Index(u, 0), grid.Index(u+1, 0))
		}
	}

	splinosaurus.Logger().Debug("splinosaurus/export: triangulation",
		"uSteps", nu,
		"vSteps", nv,
		"points", len(this.points),
		"triangles", len(this.triangles),
		"uSeam", uWrap,
		"vSeam", vWrap,
	)

	return this, nil
}

// quad splits the cell
//
//	a b
//	c d
//
// along its a–d diagonal.
func (this *Triangulation) quad(a, b, c, d int) {
	this.add(Tri{a, d, c})
	this.add(Tri{a, b, d})
}

func (this *Triangulation) add(tri Tri) {
	this.triangles = append(this.triangles, tri)
	this.normals = append(this.normals, TriangleNormal(this.points, tri))
}

// TriangleNormal is the unit cross product of the edges leaving the first
// vertex. Degenerate triangles get the zero vector.
func TriangleNormal(points []vec3.T, tri Tri) vec3.T {
	v0 := points[tri[0]]
	e1 := vec3.Sub(&points[tri[1]], &v0)
	e2 := vec3.Sub(&points[tri[2]], &v0)

	n := vec3.Cross(&e1, &e2)
	if n.LengthSqr() > 0 {
		n.Normalize()
	}

	return n
}

func (this *Triangulation) Points() []vec3.T {
	return this.points
}

// Normals holds one normal per entry of IndexedTriangles.
func (this *Triangulation) Normals() []vec3.T {
	return this.normals
}

func (this *Triangulation) IndexedTriangles() []Tri {
	return this.triangles
}

// USteps is the number of samples along u.
func (this *Triangulation) USteps() int {
	return this.uSteps
}

// VSteps is the number of samples along v.
func (this *Triangulation) VSteps() int {
	return this.vSteps
}

func (this *Triangulation) Triangles() iter.Seq[Triangle] {
	return func(yield func(Triangle) bool) {
		for _, t := range this.triangles {
			if !yield(this.triangle(t)) {
				return
			}
		}
	}
}

func (this *Triangulation) TrianglesWithNormals() iter.Seq2[Triangle, vec3.T] {
	return func(yield func(Triangle, vec3.T) bool) {
		for i, t := range this.triangles {
			if !yield(this.triangle(t), this.normals[i]) {
				return
			}
		}
	}
}

func (this *Triangulation) triangle(t Tri) Triangle {
	return Triangle{this.points[t[0]], this.points[t[1]], this.points[t[2]]}
}

// BoundingBox returns the box around all mesh points.
func (this *Triangulation) BoundingBox() *splinosaurus.BoundingBox[float64] {
	bb := new(splinosaurus.BoundingBox[float64])
	for _, p := range this.points {
		bb.Add(splinosaurus.FromVec3[float64](p))
	}
	return bb
}

// TriangleCentroid is the mean of the three vertices.
func TriangleCentroid(points []vec3.T, tri Tri) vec3.T {
	var centroid vec3.T
	for _, i := range tri {
		centroid.Add(&points[i])
	}
	return *centroid.Scale(1.0 / 3)
}
