package lttb

import (
	"errors"
	"fmt"
)

// An Iter is an iterator function that returns
// the next count number of Points or an error.
type Iter func(count int) ([]Point, error)

// ErrShortRead is returned by DownsampleIter when the iterator
// yields fewer points than asked for.
var ErrShortRead = errors.New("lttb: short read from iterator")

// DownsampleIter is like Downsample but pulls count number of points from the
// given iterator one bucket at a time, limiting memory usage to a couple of
// buckets. Its output is the same as Downsample's over the same points.
func DownsampleIter(count, threshold int, it Iter) ([]Point, error) {
	if threshold >= count || threshold < 3 {
		return read(it, count)
	}

	bs := newBuckets(count, threshold)

	// Get the first point and the current bucket.
	_, hi := bs.bounds(0)
	points, err := read(it, hi)
	if err != nil {
		return nil, err
	}

	samples := make([]Point, 0, threshold)
	samples = append(samples, points[0]) // Always add the first point
	current := points[1:]

	for i := 0; i < bs.count; i++ {
		lo, hi := bs.next(i)

		// Buckets are never empty here since their size is above one.
		next, err := read(it, hi-lo)
		if err != nil {
			return nil, err
		}

		samples = append(samples, sample(samples[len(samples)-1], current, centroid(next)))
		current = next
	}

	// After the final bucket, current holds only the last point.
	return append(samples, current[0]), nil
}

func read(it Iter, count int) ([]Point, error) {
	points, err := it(count)
	if err != nil {
		return nil, fmt.Errorf("lttb: reading %d points: %w", count, err)
	} else if len(points) < count {
		return nil, fmt.Errorf("%w: got %d points, want %d", ErrShortRead, len(points), count)
	}
	return points, nil
}

// SliceIter returns an Iter over the given points.
func SliceIter(points []Point) Iter {
	return func(count int) ([]Point, error) {
		if count > len(points) {
			count = len(points)
		}
		ps := points[:count:count]
		points = points[count:]
		return ps, nil
	}
}
