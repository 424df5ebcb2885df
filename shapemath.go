package glyph

import "math"

// StarVertices returns the ten vertices of a five-pointed star centered in an
// s×s canvas, using [StarOuterRatio] and [StarInnerRatio].
func StarVertices(size float64) ([10]Point, error) {
	return StarVerticesRatio(size, StarOuterRatio, StarInnerRatio)
}

// StarVerticesRatio returns the ten vertices of a star centered at
// (size/2, size/2). Vertex 0 points straight up; even vertices lie on the
// outer radius outerRatio·size, odd vertices on the inner radius
// innerRatio·size, proceeding clockwise on screen. The contour is not closed.
func StarVerticesRatio(size, outerRatio, innerRatio float64) ([10]Point, error) {
	const op = "StarVertices"
	if err := positive(op, "size", size); err != nil {
		return [10]Point{}, err
	}
	if err := positive(op, "outer ratio", outerRatio); err != nil {
		return [10]Point{}, err
	}
	if err := positive(op, "inner ratio", innerRatio); err != nil {
		return [10]Point{}, err
	}

	center := Pt(size/2, size/2)
	outer := outerRatio * size
	inner := innerRatio * size
	var pts [10]Point
	for i := range pts {
		angle := math.Pi*float64(i)/5 - math.Pi/2
		r := outer
		if i%2 == 1 {
			r = inner
		}
		pts[i] = Pt(
			center.X+r*math.Cos(angle),
			center.Y+r*math.Sin(angle),
		)
	}
	return pts, nil
}

// EquilateralTriangleDown returns a downward pointing equilateral triangle
// whose base spans the full width of an s×s canvas and which is centered
// vertically. The points are ordered apex, left base corner, right base
// corner.
func EquilateralTriangleDown(size float64) ([3]Point, error) {
	if err := positive("EquilateralTriangleDown", "size", size); err != nil {
		return [3]Point{}, err
	}
	height := size * equilateralHeight
	yOffset := (size - height) / 2
	return [3]Point{
		{size / 2, yOffset + height},
		{0, yOffset},
		{size, yOffset},
	}, nil
}
