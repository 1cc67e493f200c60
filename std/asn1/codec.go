package asn1

import (
	"bytes"
	"slices"

	"github.com/opencatalog/z3950/std/ber"
)

// Codec converts between values of T and BER node trees.
//
// Decode checks the node's own tag only when expectTag is true. Enclosing
// combinators pass false after an IMPLICIT tag replaced the natural one.
// Encode always emits the natural tag; Implicit re-tags the result.
type Codec[T any] interface {
	// Tags lists the tags an encoding of T may carry. Nil means any tag.
	Tags() []ber.Tag
	Decode(n *ber.Node, expectTag bool) (T, error)
	Encode(v T) (*ber.Node, error)
	Format(p *Printer, v T)
}

// Match reports whether tag t may begin an encoding of c.
func Match[T any](c Codec[T], t ber.Tag) bool {
	tags := c.Tags()
	return tags == nil || slices.Contains(tags, t)
}

// Marshal encodes v with c and returns the wire bytes.
func Marshal[T any](c Codec[T], v T) ([]byte, error) {
	n, err := c.Encode(v)
	if err != nil {
		return nil, err
	}
	return n.Bytes(), nil
}

// Unmarshal decodes one complete encoding of T from buf.
func Unmarshal[T any](c Codec[T], buf []byte, opts ...ber.Option) (T, error) {
	n, err := ber.Parse(buf, opts...)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.Decode(n, true)
}

// Verify decodes buf with c and re-encodes the value. It reports whether the
// canonical encoding of buf's node tree equals the re-encoding.
func Verify[T any](c Codec[T], buf []byte, opts ...ber.Option) (bool, error) {
	n, err := ber.Parse(buf, opts...)
	if err != nil {
		return false, err
	}
	v, err := c.Decode(n, true)
	if err != nil {
		return false, err
	}
	out, err := c.Encode(v)
	if err != nil {
		return false, err
	}
	return bytes.Equal(n.Bytes(), out.Bytes()), nil
}

func checkTag(n *ber.Node, want ber.Tag, expectTag bool) error {
	if expectTag && n.Tag() != want {
		return ber.ErrTagMismatch{Expected: want, Actual: n.Tag()}
	}
	return nil
}

func checkConstructed(n *ber.Node) error {
	if !n.IsConstructed() {
		return ber.ErrFormat{Msg: "expected constructed form for " + n.Tag().String()}
	}
	return nil
}

// retag returns a copy of n carrying tag t.
func retag(n *ber.Node, t ber.Tag) *ber.Node {
	if n.IsConstructed() {
		return ber.NewConstructed(t, n.Children()...)
	}
	return ber.NewPrimitive(t, n.Content())
}
