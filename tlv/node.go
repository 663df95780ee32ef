package tlv

import (
	"bytes"
	"fmt"

	"go.briarwood.dev/der"
)

// NodeKind distinguishes a primitive Node (raw content octets) from a
// constructed Node (a sequence of child Nodes). See spec.md §3.
//
//go:generate stringer -type=NodeKind -trimprefix=NodeKind
type NodeKind uint8

const (
	NodeKindPrimitive NodeKind = iota
	NodeKindConstructed
)

// Node is a single decoded ASN.1 value: either primitive, carrying raw
// content octets, or constructed, carrying a lazily-iterated sequence of
// child Nodes. A Node borrows from the buffer of the [ParseResult] it was
// derived from; see spec.md §5 for the associated lifetime requirement.
type Node struct {
	Identifier der.Identifier

	kind     NodeKind
	content  []byte // valid only when kind == NodeKindPrimitive
	encoded  []byte
	children Children // valid only when kind == NodeKindConstructed
}

// Kind reports whether n is primitive or constructed.
func (n Node) Kind() NodeKind { return n.kind }

// IsConstructed reports whether n uses the constructed encoding.
func (n Node) IsConstructed() bool { return n.kind == NodeKindConstructed }

// Content returns the raw content octets of a primitive node. It returns
// nil for a constructed node.
func (n Node) Content() []byte { return n.content }

// EncodedBytes returns the exact identifier‖length‖content octets that
// produced n: a contiguous sub-slice of the buffer originally passed to
// Parse.
func (n Node) EncodedBytes() []byte { return n.encoded }

// Children returns an iterator over the direct children of a constructed
// node. For a primitive node it returns the zero Children value, which is
// already exhausted.
func (n Node) Children() Children { return n.children }

// Equal reports whether n and other have the same identifier, content, and
// encoded bytes, per spec.md §3.
func (n Node) Equal(other Node) bool {
	return n.Identifier == other.Identifier &&
		bytes.Equal(n.content, other.content) &&
		bytes.Equal(n.encoded, other.encoded)
}

// String returns a short debugging representation of n. The content bytes
// are only included if they are short enough to be useful.
func (n Node) String() string {
	kind := "primitive"
	if n.IsConstructed() {
		kind = "constructed"
	}
	if !n.IsConstructed() && len(n.content) <= 24 {
		return fmt.Sprintf("Node{%s %s %X}", n.Identifier, kind, n.content)
	}
	return fmt.Sprintf("Node{%s %s, %d bytes}", n.Identifier, kind, len(n.encoded))
}

// Children is a lazy, single-pass iterator over the direct children of a
// constructed Node. It is a plain value type backed by a sub-slice of the
// flat parser buffer plus the parent depth, so copying a Children value is
// an O(1) "clone" — this is what lets the copy-lookahead combinators in
// [go.briarwood.dev/der/schema] snapshot an iterator, attempt a read, and
// discard the attempt by restoring the saved copy (spec.md §4.6, §9).
type Children struct {
	buf   []parserNode
	depth int
}

// Done reports whether c has no more children.
func (c Children) Done() bool { return len(c.buf) == 0 }

// Next returns the next child of c and advances c past it. The second
// return value is false, and the Node zero, if c is exhausted.
func (c *Children) Next() (Node, bool) {
	if len(c.buf) == 0 {
		return Node{}, false
	}
	head := c.buf[0]
	rest := c.buf[1:]
	if head.depth != c.depth {
		panic("tlv: corrupt node buffer: child at unexpected depth")
	}

	if head.identifier.Constructed {
		i := 0
		for i < len(rest) && rest[i].depth > head.depth {
			i++
		}
		node := Node{
			Identifier: head.identifier,
			kind:       NodeKindConstructed,
			encoded:    head.encoded,
			children:   Children{buf: rest[:i], depth: head.depth + 1},
		}
		c.buf = rest[i:]
		return node, true
	}

	node := Node{
		Identifier: head.identifier,
		kind:       NodeKindPrimitive,
		content:    head.content,
		encoded:    head.encoded,
	}
	c.buf = rest
	return node, true
}
