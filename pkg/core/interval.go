package core

import "math"

// Interval is a closed range of ray parameters or coordinates
type Interval struct {
	Min, Max float64
}

// NewInterval creates an interval from two bounds in any order
func NewInterval(a, b float64) Interval {
	if a > b {
		a, b = b, a
	}
	return Interval{Min: a, Max: b}
}

// Universe is the interval spanning every finite float
var Universe = Interval{Min: -math.MaxFloat64, Max: math.MaxFloat64}

// Size returns the length of the interval
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether x lies in the closed interval
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether x lies strictly inside the interval
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// Union returns the smallest interval covering both intervals
func (i Interval) Union(other Interval) Interval {
	return Interval{Min: math.Min(i.Min, other.Min), Max: math.Max(i.Max, other.Max)}
}

// Offset translates the interval by delta
func (i Interval) Offset(delta float64) Interval {
	return Interval{Min: i.Min + delta, Max: i.Max + delta}
}
