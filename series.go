package lttb

import (
	"errors"
	"math"

	"github.com/c2h5oh/datasize"
	tsz "github.com/tsenart/go-tsz"
)

// A Series is an in-memory time series of points with high compression of
// both timestamps and values. It's not safe for concurrent use.
//
// Timestamps are stored as offsets from the first one added, so any uint64
// timestamp (e.g. Unix milliseconds) is kept exactly as long as consecutive
// timestamps are at most math.MaxUint32 apart.
type Series struct {
	base uint64
	prev uint64
	data *tsz.Series
	len  int
}

// NewSeries returns an empty Series.
func NewSeries() *Series {
	return &Series{data: tsz.New(0)}
}

// ErrNonMonotonic is returned by Series.Add when given
// a timestamp lower than the previous one.
var ErrNonMonotonic = errors.New("lttb: non monotonically increasing timestamp")

// ErrTimestampRange is returned by Series.Add when given a timestamp
// more than math.MaxUint32 after the previous one.
var ErrTimestampRange = errors.New("lttb: timestamp too far from previous one")

// Add appends the value v at timestamp t to the Series.
func (s *Series) Add(t uint64, v float64) error {
	if s.len == 0 {
		s.base, s.prev = t, t
	}

	if s.prev > t {
		return ErrNonMonotonic
	} else if t-s.prev > math.MaxUint32 {
		return ErrTimestampRange
	}

	s.data.Push(t-s.base, v)
	s.prev = t
	s.len++

	return nil
}

// Len returns the number of points in the Series.
func (s *Series) Len() int { return s.len }

// Size returns the compressed size of the Series.
func (s *Series) Size() datasize.ByteSize {
	return datasize.ByteSize(len(s.data.Bytes()))
}

// Finish seals the Series. No points may be added afterwards.
func (s *Series) Finish() { s.data.Finish() }

// Iter returns an Iter over all points in the Series, with
// timestamps as X and values as Y.
func (s *Series) Iter() Iter {
	it := s.data.Iter()
	return func(count int) ([]Point, error) {
		ps := make([]Point, 0, count)
		for i := 0; i < count && it.Next(); i++ {
			t, v := it.Values()
			ps = append(ps, Point{X: float64(s.base + t), Y: v})
		}
		return ps, it.Err()
	}
}

// Downsample downsamples the Series to threshold number of points.
func (s *Series) Downsample(threshold int) ([]Point, error) {
	return DownsampleIter(s.len, threshold, s.Iter())
}
