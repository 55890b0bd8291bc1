package metrics

import "strconv"

// Allocator issues metric ids (m1, m2, ...) and math expression ids
// (e1, e2, ...). Ids must be unique within one query tree; a math
// expression references metric ids by the exact token the metric clause
// was given. The zero value is ready to use.
type Allocator struct {
	metric int
	math   int
}

// NextMetric returns the next metric id.
func (a *Allocator) NextMetric() string {
	a.metric++
	return "m" + strconv.Itoa(a.metric)
}

// NextMath returns the next math expression id.
func (a *Allocator) NextMath() string {
	a.math++
	return "e" + strconv.Itoa(a.math)
}
