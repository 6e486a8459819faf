package curves

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Point is a pair of affine coordinates with no validity guarantee.
type Point struct {
	X, Y uint256.Int
}

// Candidate is an unvalidated point: either the point at infinity or a
// finite coordinate pair. The zero value is the point at infinity.
type Candidate struct {
	p      Point
	finite bool
}

// Finite returns the candidate with coordinates (x, y).
func Finite(x, y *uint256.Int) Candidate {
	return Candidate{p: Point{X: *x, Y: *y}, finite: true}
}

// InfinityCandidate returns the candidate point at infinity.
func InfinityCandidate() Candidate {
	return Candidate{}
}

// IsInfinity reports whether c is the point at infinity.
func (c Candidate) IsInfinity() bool { return !c.finite }

// Point returns the coordinates of c and false when c is the point at
// infinity.
func (c Candidate) Point() (Point, bool) { return c.p, c.finite }

// ECPoint is a point that is known to lie on a curve, or the point at
// infinity. The zero value is the point at infinity.
type ECPoint struct {
	p      Point
	finite bool
}

// Infinity returns the point at infinity.
func Infinity() ECPoint {
	return ECPoint{}
}

// IsInfinity reports whether p is the point at infinity.
func (p ECPoint) IsInfinity() bool { return !p.finite }

// Point returns the coordinates of p and false when p is the point at
// infinity.
func (p ECPoint) Point() (Point, bool) { return p.p, p.finite }

// Coordinates returns copies of the affine coordinates, or nils for the
// point at infinity.
func (p ECPoint) Coordinates() (x, y *uint256.Int) {
	if !p.finite {
		return nil, nil
	}
	return p.p.X.Clone(), p.p.Y.Clone()
}

// Candidate demotes p so it can be validated against another curve.
func (p ECPoint) Candidate() Candidate {
	return Candidate{p: p.p, finite: p.finite}
}

// Equal reports whether p and q are the same point.
func (p ECPoint) Equal(q ECPoint) bool {
	if p.finite != q.finite {
		return false
	}
	return !p.finite || (p.p.X.Eq(&q.p.X) && p.p.Y.Eq(&q.p.Y))
}

// String formats p with decimal coordinates.
func (p ECPoint) String() string {
	if !p.finite {
		return "Infinity"
	}
	return fmt.Sprintf("(%s, %s)", p.p.X.Dec(), p.p.Y.Dec())
}
