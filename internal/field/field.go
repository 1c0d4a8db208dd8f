// Package field defines force fields: rules assigning a force vector to
// every (position, particle) pair, composable by sum and negation.
package field

import (
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/coords"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/geom"
	"github.com/The-Cobalt-Develop-Team/phosphorus/internal/particle"
)

// Field yields the force on a particle of the given intrinsic properties
// at the given position. Evaluate must be pure and may assume no
// concurrent invocation on the same receiver. The type parameter pins
// every operand of a composite to one coordinate system and dimension.
type Field[P coords.Point[P]] interface {
	Evaluate(pos P, par particle.Particle) geom.Vector
}

// Func adapts a plain function to the field contract.
type Func[P coords.Point[P]] func(pos P, par particle.Particle) geom.Vector

// Lambda wraps a user-supplied force function.
type Lambda[P coords.Point[P]] struct {
	fn Func[P]
}

func NewLambda[P coords.Point[P]](fn Func[P]) Lambda[P] {
	return Lambda[P]{fn: fn}
}

func (l Lambda[P]) Evaluate(pos P, par particle.Particle) geom.Vector {
	return l.fn(pos, par)
}

// Sum evaluates to the pointwise sum of its operands. Operands are held
// as interface values, so a composite assembled locally stays valid when
// handed off.
type Sum[P coords.Point[P]] struct {
	A, B Field[P]
}

func Add[P coords.Point[P]](a, b Field[P]) Sum[P] {
	return Sum[P]{A: a, B: b}
}

func (s Sum[P]) Evaluate(pos P, par particle.Particle) geom.Vector {
	return s.A.Evaluate(pos, par).Add(s.B.Evaluate(pos, par))
}

// Negate flips the sign of its operand. Negation is an involution:
// Neg(Neg(f)) evaluates identically to f.
type Negate[P coords.Point[P]] struct {
	F Field[P]
}

func Neg[P coords.Point[P]](f Field[P]) Negate[P] {
	return Negate[P]{F: f}
}

func (n Negate[P]) Evaluate(pos P, par particle.Particle) geom.Vector {
	return n.F.Evaluate(pos, par).Neg()
}

// Sub builds the difference field Add(a, Neg(b)).
func Sub[P coords.Point[P]](a, b Field[P]) Sum[P] {
	return Add[P](a, Neg[P](b))
}
