package asn1

import (
	"strconv"

	"github.com/opencatalog/z3950/std/ber"
)

type sequenceOf[S ~[]E, E any] struct {
	elem Codec[E]
}

// SequenceOf is the SEQUENCE OF codec for slices of E. Element order is
// preserved in both directions, and decoding never yields a nil slice.
func SequenceOf[S ~[]E, E any](elem Codec[E]) Codec[S] {
	return sequenceOf[S, E]{elem: elem}
}

func (c sequenceOf[S, E]) Tags() []ber.Tag {
	return []ber.Tag{sequenceTag}
}

func (c sequenceOf[S, E]) Decode(n *ber.Node, expectTag bool) (S, error) {
	if err := checkTag(n, sequenceTag, expectTag); err != nil {
		return nil, err
	}
	if err := checkConstructed(n); err != nil {
		return nil, err
	}
	out := make(S, 0, n.NumChildren())
	for i := 0; i < n.NumChildren(); i++ {
		v, err := c.elem.Decode(n.Child(i), true)
		if err != nil {
			return nil, ber.ErrFailToParse{Name: "[" + strconv.Itoa(i) + "]", Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

func (c sequenceOf[S, E]) Encode(v S) (*ber.Node, error) {
	children := make([]*ber.Node, 0, len(v))
	for _, e := range v {
		n, err := c.elem.Encode(e)
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}
	return ber.NewConstructed(sequenceTag, children...), nil
}

func (c sequenceOf[S, E]) Format(p *Printer, v S) {
	p.Print("{")
	for i, e := range v {
		if i > 0 {
			p.Print(",")
		}
		p.Print(" ")
		c.elem.Format(p, e)
	}
	if len(v) > 0 {
		p.Print(" ")
	}
	p.Print("}")
}
