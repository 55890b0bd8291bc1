package metrics

import "fmt"

// UnsupportedError reports a service/metric combination no builder covers.
// Reason carries the user-facing explanation when the combination is
// recognized but structurally impossible (EFS latency).
type UnsupportedError struct {
	Service string
	Metric  string
	Reason  string
}

func (e *UnsupportedError) Error() string {
	if e.Reason != "" {
		return e.Reason
	}
	return fmt.Sprintf("unsupported combination: service %q with metric %q", e.Service, e.Metric)
}

// DimensionError reports a dimension string without a '=' separator.
type DimensionError struct {
	Dimension string
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("malformed dimension %q: want Key=Value or the lone %q sentinel", e.Dimension, ".")
}
