package query

import "strings"

// Node is one element of a graph expression tree. The render method is
// unexported so the set of node kinds stays closed to this package.
type Node interface {
	render(b *strings.Builder)
}

// Clause is a parenthesized group: a metric reference, a math expression or
// the top-level container. Children render in push order; the order is
// positional syntax, not named fields.
type Clause struct {
	children []Node
}

// NewClause creates a clause holding the given children.
func NewClause(children ...Node) *Clause {
	return &Clause{children: children}
}

// Push appends a child. Composition is append-only: children are never
// removed or reordered after being pushed.
func (c *Clause) Push(n Node) {
	c.children = append(c.children, n)
}

// Len returns the number of direct children.
func (c *Clause) Len() int {
	return len(c.children)
}

func (c *Clause) render(b *strings.Builder) {
	b.WriteString("~(")
	for _, child := range c.children {
		child.render(b)
	}
	b.WriteByte(')')
}

// Literal is a quoted value token, rendered as ~'value. The value is not
// escaped here; it must already be safe to embed in the grammar.
type Literal string

func (l Literal) render(b *strings.Builder) {
	b.WriteString("~'")
	b.WriteString(string(l))
}

// Attribute is a bare keyword token, rendered as ~value.
type Attribute string

func (a Attribute) render(b *strings.Builder) {
	b.WriteByte('~')
	b.WriteString(string(a))
}

// TypeTag names a clause's semantic kind ("metrics", "id", "expression").
// It renders as the raw value, directly after the enclosing clause's
// opening bracket.
type TypeTag string

func (t TypeTag) render(b *strings.Builder) {
	b.WriteString(string(t))
}

// Render serializes a tree. Deterministic and side-effect free: the same
// tree always renders to the same string.
func Render(n Node) string {
	var b strings.Builder
	n.render(&b)
	return b.String()
}
