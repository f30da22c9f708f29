package lttb

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSeries_Downsample(t *testing.T) {
	t.Parallel()

	s := NewSeries()
	want := make([]Point, 0, 5000)
	for i := 0; i < cap(want); i++ {
		ts, v := uint64(i*50), math.Sin(float64(i)/100)*100
		if err := s.Add(ts, v); err != nil {
			t.Fatal(err)
		}
		want = append(want, Point{X: float64(ts), Y: v})
	}
	s.Finish()

	if got, want := s.Len(), len(want); got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}

	for _, threshold := range []int{0, 3, 500, 4999, 5000} {
		got, err := s.Downsample(threshold)
		if err != nil {
			t.Fatalf("threshold %d: %v", threshold, err)
		}

		if diff := cmp.Diff(Downsample(want, threshold), got); diff != "" {
			t.Errorf("threshold %d: mismatch (-want +got):\n%s", threshold, diff)
		}
	}
}

func TestSeries_Iter(t *testing.T) {
	t.Parallel()

	type sample struct {
		t uint64
		v float64
	}

	const unixMilli = 1700000000000

	for _, tc := range []struct {
		name    string
		samples []sample
		err     error // returned by the Add of the last sample
	}{
		{
			name: "unix milliseconds",
			samples: func() []sample {
				ss := make([]sample, 100)
				for i := range ss {
					ss[i] = sample{unixMilli + uint64(i)*1000, float64(i)}
				}
				return ss
			}(),
		},
		{
			name:    "first timestamp above 27 bits",
			samples: []sample{{200000000, 1}, {200000050, 2}, {200000100, 3}},
		},
		{
			name: "irregular gaps",
			samples: []sample{
				{unixMilli, 1.5},
				{unixMilli, -2},
				{unixMilli + 1, 3},
				{unixMilli + math.MaxUint32, 4},
				{unixMilli + math.MaxUint32 + 7, 5},
				{unixMilli + 2*math.MaxUint32 + 7, 6},
			},
		},
		{
			name:    "gap above 32 bits",
			samples: []sample{{unixMilli, 1}, {unixMilli + 10, 2}, {unixMilli + 10 + math.MaxUint32 + 1, 3}},
			err:     ErrTimestampRange,
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := NewSeries()
			want := make([]Point, 0, len(tc.samples))
			for i, smp := range tc.samples {
				err := s.Add(smp.t, smp.v)
				if i == len(tc.samples)-1 && tc.err != nil {
					if err != tc.err {
						t.Fatalf("Add(%d): got error %v, want %v", smp.t, err, tc.err)
					}
					break
				} else if err != nil {
					t.Fatalf("Add(%d): %v", smp.t, err)
				}
				want = append(want, Point{X: float64(smp.t), Y: smp.v})
			}
			s.Finish()

			if got, want := s.Len(), len(want); got != want {
				t.Errorf("Len: got %d, want %d", got, want)
			}

			got, err := s.Iter()(len(tc.samples))
			if err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSeries_Add(t *testing.T) {
	t.Parallel()

	s := NewSeries()
	for _, ts := range []uint64{10, 10, 20} {
		if err := s.Add(ts, 1); err != nil {
			t.Fatalf("Add(%d): %v", ts, err)
		}
	}

	if got, want := s.Add(15, 1), ErrNonMonotonic; got != want {
		t.Errorf("got error %v, want %v", got, want)
	}

	if got, want := s.Len(), 3; got != want {
		t.Errorf("Len: got %d, want %d", got, want)
	}
}

func TestSeries_Size(t *testing.T) {
	t.Parallel()

	s := NewSeries()
	empty := s.Size()

	for i := 0; i < 1000; i++ {
		if err := s.Add(uint64(i*1000), 42); err != nil {
			t.Fatal(err)
		}
	}

	// Constant values at a regular interval compress to a couple of bits each.
	if got, raw := s.Size(), 1000*16; got <= empty || got.Bytes() >= uint64(raw) {
		t.Errorf("got size %v, want it between %v and %d bytes", got, empty, raw)
	}
}
