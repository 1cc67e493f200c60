package ber

import (
	"bytes"
	"slices"
)

// Buffer is a buffer of bytes
type Buffer []byte

// Node is one decoded TLV unit. A node is either primitive, holding its
// content octets, or constructed, holding an ordered list of children.
// Nodes are immutable once built; the accessors never expose internal
// slices for writing.
type Node struct {
	tag         Tag
	constructed bool
	content     []byte
	children    []*Node

	// length of the content octets in definite form
	clen int
}

// NewPrimitive builds a primitive node from a copy of content.
func NewPrimitive(tag Tag, content []byte) *Node {
	return newPrimitive(tag, slices.Clone(content))
}

// NewConstructed builds a constructed node from its children, in order.
// The child list is copied.
func NewConstructed(tag Tag, children ...*Node) *Node {
	return newConstructed(tag, slices.Clone(children))
}

// newPrimitive takes ownership of content.
func newPrimitive(tag Tag, content []byte) *Node {
	if content == nil {
		content = []byte{}
	}
	return &Node{tag: tag, content: content, clen: len(content)}
}

// newConstructed takes ownership of children.
func newConstructed(tag Tag, children []*Node) *Node {
	l := 0
	for _, c := range children {
		l += c.EncodingLength()
	}
	return &Node{tag: tag, constructed: true, children: children, clen: l}
}

// Tag returns the class and number of n.
func (n *Node) Tag() Tag {
	return n.tag
}

// Class returns the tag class of n.
func (n *Node) Class() Class {
	return n.tag.Class
}

// IsConstructed reports whether n holds children rather than content.
func (n *Node) IsConstructed() bool {
	return n.constructed
}

// Content returns the content octets of a primitive node. The returned slice
// must not be modified. It is nil for constructed nodes.
func (n *Node) Content() []byte {
	return n.content
}

// NumChildren returns the number of children of a constructed node.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Child returns the i-th child of a constructed node.
func (n *Node) Child(i int) *Node {
	return n.children[i]
}

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// ContentLength returns the length of the content octets in definite form.
func (n *Node) ContentLength() int {
	return n.clen
}

// Equal reports whether n and o describe the same tree: same tags, forms,
// contents and children. The wire length form is not part of a node.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.tag != o.tag || n.constructed != o.constructed {
		return false
	}
	if !n.constructed {
		return bytes.Equal(n.content, o.content)
	}
	return slices.EqualFunc(n.children, o.children, (*Node).Equal)
}

// IsEndOfContents reports whether n is the marker closing an
// indefinite-length node.
func (n *Node) IsEndOfContents() bool {
	return n.tag == EndOfContents && !n.constructed && len(n.content) == 0
}
