package geom

// Euclidean is the nominal type for Cartesian images of coordinate
// points, where the Euclidean norm is the canonical metric. It is
// deliberately distinct from Vector in the type system so that
// coordinate conversions return it unambiguously.
type Euclidean []float64

func NewEuclidean(components ...float64) Euclidean {
	return Euclidean(New(components...))
}

func (e Euclidean) Dim() int         { return len(e) }
func (e Euclidean) At(i int) float64 { return Vector(e).At(i) }
func (e Euclidean) Vector() Vector   { return Vector(e) }
func (e Euclidean) Norm() float64    { return Vector(e).Norm() }
func (e Euclidean) String() string   { return Vector(e).String() }
func (e Euclidean) IsFinite() bool   { return Vector(e).IsFinite() }
func (e Euclidean) Clone() Euclidean { return Euclidean(Vector(e).Clone()) }

func (e Euclidean) Add(o Euclidean) Euclidean {
	return Euclidean(Vector(e).Add(Vector(o)))
}

func (e Euclidean) Sub(o Euclidean) Euclidean {
	return Euclidean(Vector(e).Sub(Vector(o)))
}

func (e Euclidean) Scale(s float64) Euclidean {
	return Euclidean(Vector(e).Scale(s))
}

func (e Euclidean) Dot(o Euclidean) float64 {
	return Vector(e).Dot(Vector(o))
}

func (e Euclidean) Equal(o Euclidean) bool {
	return Vector(e).Equal(Vector(o))
}
