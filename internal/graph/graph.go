// Package graph assembles the complete metricsV2 query tree and produces
// the CloudWatch console URL.
package graph

import (
	"fmt"

	"github.com/roach88/cwlink/internal/encode"
	"github.com/roach88/cwlink/internal/query"
)

const urlTemplate = "https://%s.console.aws.amazon.com/cloudwatch/home?region=%s#metricsV2?graph=%s"

// Params are the fixed display attributes wrapped around a family subtree.
// Start and End are ISO-8601 strings, passed through unvalidated and merely
// encoded. Period is the bucket width in seconds, kept as the string token
// the console expects.
type Params struct {
	Region string
	Start  string
	End    string
	Stat   string
	Period string
}

// Assemble wraps a family clause with the boilerplate display attributes.
// Note the asymmetry the console expects: stat is a quoted value while
// period and the stacked flag are bare attributes.
func Assemble(family *query.Clause, p Params) *query.Clause {
	c := query.NewClause(query.TypeTag("metrics"), family)
	c.Push(query.Attribute("view"))
	c.Push(query.Literal("timeSeries"))
	c.Push(query.Attribute("stackec"))
	c.Push(query.Attribute("false"))
	c.Push(query.Attribute("region"))
	c.Push(query.Literal(p.Region))
	c.Push(query.Attribute("start"))
	c.Push(query.Literal(p.Start))
	c.Push(query.Attribute("end"))
	c.Push(query.Literal(p.End))
	c.Push(query.Attribute("stat"))
	c.Push(query.Literal(p.Stat))
	c.Push(query.Attribute("period"))
	c.Push(query.Attribute(p.Period))
	return c
}

// URL renders the assembled tree once, encodes it in graph mode and
// substitutes it into the console URL template.
func URL(family *query.Clause, p Params) string {
	fragment := encode.Encode(query.Render(Assemble(family, p)), false)
	return fmt.Sprintf(urlTemplate, p.Region, p.Region, fragment)
}
