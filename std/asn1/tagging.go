package asn1

import (
	"github.com/opencatalog/z3950/std/ber"
)

type implicit[T any] struct {
	tag   ber.Tag
	inner Codec[T]
}

// Implicit is [n] IMPLICIT over c: the context tag n replaces the natural
// tag of c at the same depth. It panics if c has no single natural tag,
// since a CHOICE or ANY cannot be implicitly tagged.
func Implicit[T any](n uint, c Codec[T]) Codec[T] {
	return ImplicitTag(ber.Context(n), c)
}

// ImplicitTag is Implicit with an arbitrary class.
func ImplicitTag[T any](tag ber.Tag, c Codec[T]) Codec[T] {
	if len(c.Tags()) != 1 {
		panic("asn1: implicit tag " + tag.String() + " on a type without a single tag")
	}
	return implicit[T]{tag: tag, inner: c}
}

func (c implicit[T]) Tags() []ber.Tag {
	return []ber.Tag{c.tag}
}

func (c implicit[T]) Decode(n *ber.Node, expectTag bool) (T, error) {
	if err := checkTag(n, c.tag, expectTag); err != nil {
		var zero T
		return zero, err
	}
	return c.inner.Decode(n, false)
}

func (c implicit[T]) Encode(v T) (*ber.Node, error) {
	n, err := c.inner.Encode(v)
	if err != nil {
		return nil, err
	}
	return retag(n, c.tag), nil
}

func (c implicit[T]) Format(p *Printer, v T) {
	c.inner.Format(p, v)
}

type explicit[T any] struct {
	tag   ber.Tag
	inner Codec[T]
}

// Explicit is [n] EXPLICIT over c: the complete encoding of c is wrapped
// in one constructed node tagged [n].
func Explicit[T any](n uint, c Codec[T]) Codec[T] {
	return explicit[T]{tag: ber.Context(n), inner: c}
}

func (c explicit[T]) Tags() []ber.Tag {
	return []ber.Tag{c.tag}
}

func (c explicit[T]) Decode(n *ber.Node, expectTag bool) (T, error) {
	var zero T
	if err := checkTag(n, c.tag, expectTag); err != nil {
		return zero, err
	}
	if err := checkConstructed(n); err != nil {
		return zero, err
	}
	if n.NumChildren() != 1 {
		return zero, ber.ErrFormat{Msg: "explicit tag " + c.tag.String() + " must wrap exactly one value"}
	}
	return c.inner.Decode(n.Child(0), true)
}

func (c explicit[T]) Encode(v T) (*ber.Node, error) {
	n, err := c.inner.Encode(v)
	if err != nil {
		return nil, err
	}
	return ber.NewConstructed(c.tag, n), nil
}

func (c explicit[T]) Format(p *Printer, v T) {
	c.inner.Format(p, v)
}
