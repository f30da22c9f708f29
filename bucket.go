package lttb

// buckets partitions the interior points [1, n-1) of a series of n points
// into count contiguous ranges of (real valued) size (n-2)/count.
type buckets struct {
	n     int
	count int
	size  float64
}

func newBuckets(n, threshold int) buckets {
	count := threshold - 2 // Leave room for start and end data points
	return buckets{
		n:     n,
		count: count,
		size:  float64(n-2) / float64(count),
	}
}

// bounds returns the half open index range [lo, hi) of bucket i.
func (b buckets) bounds(i int) (lo, hi int) {
	lo = int(float64(i)*b.size) + 1
	hi = int(float64(i+1)*b.size) + 1

	// The product above can land a hair below n-2 on the last bucket.
	if i == b.count-1 || hi > b.n-1 {
		hi = b.n - 1
	}

	return lo, hi
}

// next returns the range averaged into point c while sampling bucket i:
// the following bucket, or just the last point after the final bucket.
func (b buckets) next(i int) (lo, hi int) {
	if i+1 < b.count {
		return b.bounds(i + 1)
	}
	return b.n - 1, b.n
}
