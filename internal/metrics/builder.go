package metrics

import (
	"strings"

	"github.com/roach88/cwlink/internal/encode"
	"github.com/roach88/cwlink/internal/query"
)

// Metric builds a direct metric reference clause:
//
//	~(~'namespace~'name~'dimKey~'dimVal~(id~'m1~visible~true))
//
// dimension is a "Key=Value" pair, split on the first '='. The lone "."
// sentinel omits the dimension name and passes through as a single value.
// visible toggles whether the console plots the series directly; hidden
// series exist only to feed math expressions.
func Metric(id, namespace, name, dimension string, visible bool) (*query.Clause, error) {
	parent := query.NewClause(query.Literal(namespace), query.Literal(name))
	if dimension == "." {
		parent.Push(query.Literal(dimension))
	} else {
		key, value, ok := strings.Cut(dimension, "=")
		if !ok {
			return nil, &DimensionError{Dimension: dimension}
		}
		parent.Push(query.Literal(key))
		parent.Push(query.Literal(value))
	}

	flag := "false"
	if visible {
		flag = "true"
	}
	parent.Push(query.NewClause(
		query.TypeTag("id"),
		query.Literal(id),
		query.Attribute("visible"),
		query.Attribute(flag),
	))
	return parent, nil
}

// Math builds a derived metric clause for a metric-math expression:
//
//	~(~(expression~'m1*2fPERIOD*28m1*29~label~'...~id~'e1))
//
// The expression and label are encoded in formula mode here, before being
// wrapped in Literal nodes; the final whole-tree pass then leaves the
// produced '*' introducers untouched. See encode.Encode for the two-phase
// contract.
func Math(id, expression, label string) *query.Clause {
	inner := query.NewClause(
		query.TypeTag("expression"),
		query.Literal(encode.Encode(expression, true)),
		query.Attribute("label"),
		query.Literal(encode.Encode(label, true)),
		query.Attribute("id"),
		query.Literal(id),
	)
	return query.NewClause(inner)
}
