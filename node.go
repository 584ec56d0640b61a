package reed

import "strings"

// Node is the structured Result.  Primitive matches are leaves that
// hold the consumed Literal; concatenations hold their non-empty
// Parts in input order.  Rule points back to the rule that produced
// the node, if any; it is only there for inspection.
//
// The zero Node is the empty match.
type Node struct {
	Literal string
	Parts   []Node
	Rule    *RuleInfo

	start  int
	length int
}

func (n Node) Len() int         { return n.length }
func (n Node) Mismatched() bool { return n.length < 0 }
func (n Node) Empty() bool      { return n.length == 0 }
func (Node) Mismatch() Node     { return Node{length: mismatch} }
func (n Node) Range() Range     { return NewRange(n.start, n.start+max(n.length, 0)) }
func (n Node) IsLeaf() bool     { return len(n.Parts) == 0 }

func (n Node) Span(in Input, length int) Node {
	return Node{Literal: in.Take(length), start: in.Offset(), length: length}
}

// Name returns the name of the rule that produced the node, or an
// empty string for anonymous nodes
func (n Node) Name() string {
	if n.Rule == nil {
		return ""
	}
	return n.Rule.Name
}

// Add appends `other` as a part of the receiver.  Empty results are
// dropped so the tree only holds nodes that consumed input.  If the
// receiver is a finished node (a leaf or a rule's result) rather than
// an accumulator, it's first nested as the only part of a new node.
func (n Node) Add(other Node) Node {
	if n.Mismatched() || other.Mismatched() {
		return n.Mismatch()
	}
	if other.Empty() {
		return n
	}
	if n.Empty() && n.IsLeaf() {
		return Node{Parts: []Node{other}, start: other.start, length: other.length}
	}
	if n.Literal != "" || n.Rule != nil {
		n = Node{Parts: []Node{n}, start: n.start, length: n.length}
	}
	n.Parts = append(n.Parts, other)
	n.length += other.length
	return n
}

// Tag marks the node as produced by `rule`.  A node already tagged by
// another rule gets nested, so both rules stay visible in the tree.
func (n Node) Tag(rule *RuleInfo) Node {
	switch {
	case n.Mismatched():
		return n
	case n.Empty():
		return Node{Rule: rule, start: n.start}
	case n.Rule != nil:
		return Node{Parts: []Node{n}, Rule: rule, start: n.start, length: n.length}
	}
	n.Rule = rule
	return n
}

// Text returns the input consumed by the node
func (n Node) Text() string {
	if n.IsLeaf() {
		return n.Literal
	}
	var s strings.Builder
	for _, part := range n.Parts {
		s.WriteString(part.Text())
	}
	return s.String()
}

// Walk calls `fn` for the node and its descendants in depth-first
// order.  When `fn` returns false the children of that node are
// skipped.
func (n Node) Walk(fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, part := range n.Parts {
		part.Walk(fn)
	}
}

// Find returns the outermost descendants (including the node itself)
// produced by a rule called `name`
func (n Node) Find(name string) []Node {
	var found []Node
	n.Walk(func(c Node) bool {
		if c.Rule != nil && c.Rule.Name == name {
			found = append(found, c)
			return false
		}
		return true
	})
	return found
}

func (n Node) String() string { return n.Format(nil) }
