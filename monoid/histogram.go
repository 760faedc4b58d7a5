package monoid

import (
	"github.com/HdrHistogram/hdrhistogram-go"
)

// Histogram merges HDR histograms. All histograms should be created with the
// same bounds, e.g. by Zero or Of; values outside of them are dropped during
// merging.
//
// Add returns a new histogram and never modifies its arguments. A nil
// histogram counts as empty. The zero Histogram uses the bounds of
// DefaultHistogram.
type Histogram struct {
	Lowest  int64 // lowest discernible value, ≥ 1
	Highest int64 // highest trackable value
	SigFigs int   // significant value digits, 1…5
}

// DefaultHistogram tracks microsecond latencies up to one minute with three
// significant digits.
var DefaultHistogram = Histogram{Lowest: 1, Highest: 60_000_000, SigFigs: 3}

func (m Histogram) Zero() *hdrhistogram.Histogram {
	if m == (Histogram{}) {
		m = DefaultHistogram
	}
	return hdrhistogram.New(m.Lowest, m.Highest, m.SigFigs)
}

func (m Histogram) Add(left, right *hdrhistogram.Histogram) *hdrhistogram.Histogram {
	out := m.Zero()
	for _, h := range []*hdrhistogram.Histogram{left, right} {
		if h == nil {
			continue
		}
		if dropped := out.Merge(h); dropped > 0 {
			tracer().Debugf("histogram merge dropped %d values out of bounds", dropped)
		}
	}
	return out
}

// Of returns a histogram holding values. Values out of bounds are dropped.
func (m Histogram) Of(values ...int64) *hdrhistogram.Histogram {
	h := m.Zero()
	for _, v := range values {
		if err := h.RecordValue(v); err != nil {
			tracer().Errorf("histogram: %v", err)
		}
	}
	return h
}

// HistogramEqual compares two histograms by content, treating nil as empty.
// It is suitable for segtree.Config.Equal.
func HistogramEqual(a, b *hdrhistogram.Histogram) bool {
	switch {
	case a == nil:
		return b == nil || b.TotalCount() == 0
	case b == nil:
		return a.TotalCount() == 0
	}
	return a.Equals(b)
}
