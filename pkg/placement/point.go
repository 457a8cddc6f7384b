package placement

type (
	// SourcePos is a coordinate in the source icon's user units.
	SourcePos float64
	// CanvasPos is a coordinate in the template's user units.
	// A SourcePos becomes a CanvasPos only through an Affine.
	CanvasPos float64
)

// Point is image.Point but for floating coordinates of a given kind.
type Point[T ~float64] struct {
	X, Y T
}

// Add returns p translated by other.
func (p Point[T]) Add(other Point[T]) Point[T] {
	return Point[T]{p.X + other.X, p.Y + other.Y}
}

// Mul scales both coordinates of p by scalar.
func (p Point[T]) Mul(scalar T) Point[T] {
	return Point[T]{p.X * scalar, p.Y * scalar}
}

// Pt is shorthand for Point[T]{x, y}.
func Pt[T ~float64](x, y T) Point[T] {
	return Point[T]{x, y}
}

// Redefine reinterprets p in another coordinate kind without changing the numbers.
func Redefine[T2, T1 ~float64](p Point[T1]) Point[T2] {
	return Point[T2]{T2(p.X), T2(p.Y)}
}
