package asn1

import "github.com/opencatalog/z3950/std/ber"

type transform[A, B any] struct {
	inner Codec[A]
	to    func(A) B
	from  func(B) A
}

// Transform adapts a codec of A into a codec of B. to and from must be
// inverse conversions.
func Transform[A, B any](c Codec[A], to func(A) B, from func(B) A) Codec[B] {
	return transform[A, B]{inner: c, to: to, from: from}
}

func (c transform[A, B]) Tags() []ber.Tag {
	return c.inner.Tags()
}

func (c transform[A, B]) Decode(n *ber.Node, expectTag bool) (B, error) {
	v, err := c.inner.Decode(n, expectTag)
	if err != nil {
		var zero B
		return zero, err
	}
	return c.to(v), nil
}

func (c transform[A, B]) Encode(v B) (*ber.Node, error) {
	return c.inner.Encode(c.from(v))
}

func (c transform[A, B]) Format(p *Printer, v B) {
	c.inner.Format(p, c.from(v))
}
