package charts

import "math"

// Series is one line of integer samples.
type Series []int

// DataSet is the ordered collection of series on a chart. Order is draw
// order and color step order.
type DataSet []Series

// Len returns the number of series.
func (d DataSet) Len() int { return len(d) }

// Extent returns the smallest and largest sample across every series.
// ok is false when the data set holds no samples at all.
func (d DataSet) Extent() (lo, hi int, ok bool) {
	lo, hi = math.MaxInt, math.MinInt
	for _, s := range d {
		for _, v := range s {
			lo = min(lo, v)
			hi = max(hi, v)
			ok = true
		}
	}
	if !ok {
		return 0, 0, false
	}
	return lo, hi, true
}

// ValueRange is the largest sample minus the smallest across the whole data
// set, or 0 when there are no samples. It is computed in float64 since the
// difference of two ints need not fit in an int.
func (d DataSet) ValueRange() float64 {
	lo, hi, ok := d.Extent()
	if !ok {
		return 0
	}
	return float64(hi) - float64(lo)
}

// MaxSample is the largest sample in the data set, or 0 when there are none.
func (d DataSet) MaxSample() int {
	_, hi, ok := d.Extent()
	if !ok {
		return 0
	}
	return hi
}

// Clone returns a deep copy.
func (d DataSet) Clone() DataSet {
	out := make(DataSet, len(d))
	for i, s := range d {
		out[i] = append(Series(nil), s...)
	}
	return out
}
