package config

import (
	"strings"

	"github.com/roach88/cwlink/internal/metrics"
	"github.com/roach88/cwlink/internal/query"
)

// Builder converts a profile family into a metrics.Family. Custom families
// follow the metrics-then-math layout: one metric clause per resource x
// metric name, then the math clauses referencing them.
func Builder(f Family) metrics.Family {
	return metrics.Family{
		Service: "custom",
		Metric:  f.Name,
		Stat:    f.Stat,
		Build: func(ids []string) (*query.Clause, error) {
			clause := query.NewClause()
			var alloc metrics.Allocator
			var series, maths []*query.Clause

			for _, resource := range ids {
				dimension := f.Dimension + "=" + resource
				for _, name := range f.Metrics {
					id := alloc.NextMetric()
					if f.Math != nil {
						maths = append(maths, metrics.Math(alloc.NextMath(),
							expand(f.Math.Expression, id, resource, name),
							expand(f.Math.Label, id, resource, name)))
					}
					m, err := metrics.Metric(id, f.Namespace, name, dimension, f.Visible)
					if err != nil {
						return nil, err
					}
					series = append(series, m)
				}
			}
			for _, m := range series {
				clause.Push(m)
			}
			for _, m := range maths {
				clause.Push(m)
			}
			return clause, nil
		},
	}
}

// expand substitutes the math template placeholders for one series.
func expand(template, id, resource, metric string) string {
	return strings.NewReplacer(
		"{id}", id,
		"{resource}", resource,
		"{metric}", metric,
	).Replace(template)
}
