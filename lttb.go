// Package lttb implements the Largest-Triangle-Three-Buckets downsampling
// algorithm described in https://skemman.is/bitstream/1946/15343/3/SS_MSthesis.pdf
//
// It reduces a series of points to a smaller number of points that keep
// the visual shape of the original when plotted.
package lttb

import "math"

// A Point in a line chart.
type Point struct{ X, Y float64 }

// Downsample returns threshold number of points from the given ones which
// maintain close visual similarity to the original data.
//
// The first and last points are always kept. When there is nothing to reduce
// (threshold >= len(points), threshold < 3 or len(points) <= 2) the given
// slice is returned as is. Otherwise the result is a new slice of exactly
// threshold points.
func Downsample(points []Point, threshold int) []Point {
	n := len(points)
	if threshold >= n || threshold < 3 {
		return points
	}

	bs := newBuckets(n, threshold)
	last := points[n-1]

	samples := make([]Point, 0, threshold)
	samples = append(samples, points[0]) // Always add the first point

	for i := 0; i < bs.count; i++ {
		lo, hi := bs.bounds(i)

		c := last
		if nlo, nhi := bs.next(i); nlo < nhi {
			c = centroid(points[nlo:nhi])
		}

		samples = append(samples, sample(samples[len(samples)-1], points[lo:hi], c))
	}

	// Always add the last point unmodified
	return append(samples, last)
}

// centroid returns the average point of the given non empty bucket.
func centroid(bucket []Point) (c Point) {
	for i := range bucket {
		c.X, c.Y = c.X+bucket[i].X, c.Y+bucket[i].Y
	}

	length := float64(len(bucket))
	c.X, c.Y = c.X/length, c.Y/length

	return c
}

// sample returns the point b of the current bucket that together with
// points a and c forms the largest triangle. Ties go to the earliest point.
func sample(a Point, current []Point, c Point) (b Point) {
	largest := -1.0
	var index int
	for i, p := range current {
		area := math.Abs((a.X-c.X)*(p.Y-a.Y)-(a.X-p.X)*(c.Y-a.Y)) * 0.5
		if area > largest {
			largest, index = area, i
		}
	}
	return current[index]
}
