// Package query models a CloudWatch Metrics console graph as a tree of
// nodes and renders it to the console's bracketed mini-language.
//
// The node set is closed: Clause, Literal, Attribute and TypeTag. Nothing
// outside this package can add a node kind. Rendering is purely structural;
// no escaping happens here. The encode package runs one final pass over the
// rendered string.
package query
