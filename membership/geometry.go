// SPDX-License-Identifier: MIT

package membership

import "math"

// AreaEpsilon is the signed-area magnitude below which a polygon is treated
// as degenerate and has no centroid.
const AreaEpsilon = 1e-12

// PolygonCentroid computes the barycenter of the closed polygon described by
// points (the last point connects back to the first) with the shoelace formula.
//
// Steps:
//  1. For each edge (p[i-1], p[i mod n]) accumulate the signed area term
//     a = (x_i*y_{i-1} - y_i*x_{i-1}) / 2.
//  2. Accumulate first moments a*(x_i+x_{i-1})/3 and a*(y_i+y_{i-1})/3.
//  3. Divide both moments by the total signed area.
//
// The orientation of the polygon does not matter: the sign cancels in step 3.
// Returns the centroid, the absolute area and ok=false when the area is
// below AreaEpsilon (fewer than three points, collinear points, flat shapes).
//
// Complexity: O(n).
func PolygonCentroid(points []Point) (Point, float64, bool) {
	n := len(points)
	if n < 3 {
		return Point{}, 0, false
	}

	var area, gx, gy float64
	for i := 1; i <= n; i++ {
		cur := points[i%n]
		prev := points[i-1]
		a := (cur.X*prev.Y - cur.Y*prev.X) / 2
		area += a
		gx += a * (cur.X + prev.X) / 3
		gy += a * (cur.Y + prev.Y) / 3
	}
	if math.Abs(area) < AreaEpsilon {
		return Point{}, 0, false
	}

	return Point{X: gx / area, Y: gy / area}, math.Abs(area), true
}
