// Package coords defines the coordinate systems particles move in. Every
// system labels points with a fixed number of components and carries a
// bijection to Cartesian coordinates of the same dimension.
//
// Displacement arithmetic (Translate) is componentwise in the system's
// own storage. That is the physically meaningful "position += velocity*dt"
// update only for the Cartesian systems; the integrators therefore only
// ship with Cartesian scenarios, and Polar/Spherical exist for conversion
// and I/O, not for integration.
package coords

import (
	"math"

	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/geom"
)

// Point is the constraint every coordinate system satisfies. The type
// parameter ties conversion and displacement results back to the concrete
// system, so integrator code over a Point[P] is monomorphized and
// branch-free.
type Point[P any] interface {
	comparable
	Dim() int
	ToCartesian() geom.Euclidean
	FromCartesian(geom.Euclidean) P
	Translate(geom.Vector) P
	Components() geom.Vector
}

// Distance is the Euclidean distance between the Cartesian images of two
// points of the same system.
func Distance[P Point[P]](a, b P) float64 {
	return a.ToCartesian().Sub(b.ToCartesian()).Norm()
}

// Cartesian2 is a point in the 2-D Cartesian system. Conversion to and
// from Cartesian coordinates is the identity.
type Cartesian2 [2]float64

func NewCartesian2(x, y float64) Cartesian2 { return Cartesian2{x, y} }

func (Cartesian2) Dim() int { return 2 }

func (c Cartesian2) ToCartesian() geom.Euclidean {
	return geom.NewEuclidean(c[0], c[1])
}

func (Cartesian2) FromCartesian(e geom.Euclidean) Cartesian2 {
	return Cartesian2{e.At(0), e.At(1)}
}

func (c Cartesian2) Translate(v geom.Vector) Cartesian2 {
	return Cartesian2{c[0] + v.At(0), c[1] + v.At(1)}
}

func (c Cartesian2) Components() geom.Vector { return geom.New(c[0], c[1]) }

func (c Cartesian2) String() string { return c.Components().String() }

// Cartesian3 is a point in the 3-D Cartesian system.
type Cartesian3 [3]float64

func NewCartesian3(x, y, z float64) Cartesian3 { return Cartesian3{x, y, z} }

func (Cartesian3) Dim() int { return 3 }

func (c Cartesian3) ToCartesian() geom.Euclidean {
	return geom.NewEuclidean(c[0], c[1], c[2])
}

func (Cartesian3) FromCartesian(e geom.Euclidean) Cartesian3 {
	return Cartesian3{e.At(0), e.At(1), e.At(2)}
}

func (c Cartesian3) Translate(v geom.Vector) Cartesian3 {
	return Cartesian3{c[0] + v.At(0), c[1] + v.At(1), c[2] + v.At(2)}
}

func (c Cartesian3) Components() geom.Vector { return geom.New(c[0], c[1], c[2]) }

func (c Cartesian3) String() string { return c.Components().String() }

// Polar is a point (r, theta) in the plane polar system. It converts to
// and from Cartesian but is not integrated over; see the package comment.
type Polar [2]float64

func NewPolar(r, theta float64) Polar { return Polar{r, theta} }

func (Polar) Dim() int { return 2 }

func (p Polar) ToCartesian() geom.Euclidean {
	r, theta := p[0], p[1]
	return geom.NewEuclidean(r*math.Cos(theta), r*math.Sin(theta))
}

func (Polar) FromCartesian(e geom.Euclidean) Polar {
	x, y := e.At(0), e.At(1)
	return Polar{math.Hypot(x, y), math.Atan2(y, x)}
}

func (p Polar) Translate(v geom.Vector) Polar {
	return Polar{p[0] + v.At(0), p[1] + v.At(1)}
}

func (p Polar) Components() geom.Vector { return geom.New(p[0], p[1]) }

// Spherical is a point (r, theta, phi) with theta the polar angle from
// the +z axis and phi the azimuth. Conversion-only, like Polar.
type Spherical [3]float64

func NewSpherical(r, theta, phi float64) Spherical { return Spherical{r, theta, phi} }

func (Spherical) Dim() int { return 3 }

func (s Spherical) ToCartesian() geom.Euclidean {
	r, theta, phi := s[0], s[1], s[2]
	sinT := math.Sin(theta)
	return geom.NewEuclidean(
		r*sinT*math.Cos(phi),
		r*sinT*math.Sin(phi),
		r*math.Cos(theta),
	)
}

func (Spherical) FromCartesian(e geom.Euclidean) Spherical {
	x, y, z := e.At(0), e.At(1), e.At(2)
	r := math.Sqrt(x*x + y*y + z*z)
	if r == 0 {
		return Spherical{}
	}
	return Spherical{r, math.Acos(z / r), math.Atan2(y, x)}
}

func (s Spherical) Translate(v geom.Vector) Spherical {
	return Spherical{s[0] + v.At(0), s[1] + v.At(1), s[2] + v.At(2)}
}

func (s Spherical) Components() geom.Vector { return geom.New(s[0], s[1], s[2]) }

// Minkowski is the 4-D (t, x, y, z) placeholder used in special
// relativity. Components map to Cartesian by identity; note that the
// Euclidean norm of the image is not the physical interval.
type Minkowski [4]float64

func (Minkowski) Dim() int { return 4 }

func (m Minkowski) ToCartesian() geom.Euclidean {
	return geom.NewEuclidean(m[0], m[1], m[2], m[3])
}

func (Minkowski) FromCartesian(e geom.Euclidean) Minkowski {
	return Minkowski{e.At(0), e.At(1), e.At(2), e.At(3)}
}

func (m Minkowski) Translate(v geom.Vector) Minkowski {
	return Minkowski{m[0] + v.At(0), m[1] + v.At(1), m[2] + v.At(2), m[3] + v.At(3)}
}

func (m Minkowski) Components() geom.Vector {
	return geom.New(m[0], m[1], m[2], m[3])
}
