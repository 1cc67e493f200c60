package asn1

import (
	"fmt"
	"reflect"

	"github.com/opencatalog/z3950/std/ber"
)

// Alternative is one variant of a CHOICE whose Go representation is the
// interface type C. Each alternative has its own concrete Go type, so a
// CHOICE value can never hold two alternatives at once.
type Alternative[C any] struct {
	name   string
	tags   []ber.Tag
	is     func(v C) bool
	decode func(n *ber.Node) (C, error)
	encode func(v C) (*ber.Node, error)
	format func(p *Printer, v C)
}

// Alt declares the alternative called name, whose concrete type V must
// implement C. It panics otherwise.
func Alt[C any, V any](name string, c Codec[V]) Alternative[C] {
	var zero V
	if _, ok := any(zero).(C); !ok {
		var iface *C
		panic(fmt.Sprintf("asn1: alternative %s: %T does not implement %s",
			name, zero, reflect.TypeOf(iface).Elem()))
	}
	return Alternative[C]{
		name: name,
		tags: c.Tags(),
		is: func(v C) bool {
			_, ok := any(v).(V)
			return ok
		},
		decode: func(n *ber.Node) (C, error) {
			v, err := c.Decode(n, true)
			if err != nil {
				var zero C
				return zero, err
			}
			return any(v).(C), nil
		},
		encode: func(v C) (*ber.Node, error) {
			return c.Encode(any(v).(V))
		},
		format: func(p *Printer, v C) {
			c.Format(p, any(v).(V))
		},
	}
}

type choice[C any] struct {
	name string
	alts []Alternative[C]
	tags []ber.Tag
}

// Choice is the codec of a CHOICE. Alternatives are told apart by tag on
// decode and by concrete Go type on encode.
func Choice[C any](name string, alts ...Alternative[C]) Codec[C] {
	c := choice[C]{name: name, alts: alts}
	for _, a := range alts {
		if a.tags == nil {
			c.tags = nil
			break
		}
		c.tags = append(c.tags, a.tags...)
	}
	return c
}

func (c choice[C]) Tags() []ber.Tag {
	return c.tags
}

func (c choice[C]) Decode(n *ber.Node, _ bool) (C, error) {
	for _, a := range c.alts {
		if a.tags != nil && !containsTag(a.tags, n.Tag()) {
			continue
		}
		v, err := a.decode(n)
		if err != nil {
			return v, ber.ErrFailToParse{Name: c.name + "." + a.name, Err: err}
		}
		return v, nil
	}
	var zero C
	return zero, ber.ErrFailToParse{Name: c.name, Err: ber.ErrChoiceNotMatched}
}

func (c choice[C]) Encode(v C) (*ber.Node, error) {
	if any(v) == nil {
		return nil, ber.ErrInvariant{Name: c.name, Msg: "no alternative set"}
	}
	for _, a := range c.alts {
		if a.is(v) {
			return a.encode(v)
		}
	}
	return nil, ber.ErrInvariant{Name: c.name, Msg: fmt.Sprintf("%T is not an alternative", v)}
}

func (c choice[C]) Format(p *Printer, v C) {
	if any(v) == nil {
		p.Print("<nil>")
		return
	}
	for _, a := range c.alts {
		if a.is(v) {
			p.Print(a.name + " : ")
			a.format(p, v)
			return
		}
	}
	p.Print(fmt.Sprintf("%v", v))
}

func containsTag(tags []ber.Tag, t ber.Tag) bool {
	for _, x := range tags {
		if x == t {
			return true
		}
	}
	return false
}

// Alternatives lists the alternative names of a CHOICE codec in declaration
// order, looking through EXPLICIT tags. It is nil for any other codec.
func Alternatives[C any](c Codec[C]) []string {
	ch, ok := asChoice(c)
	if !ok {
		return nil
	}
	names := make([]string, len(ch.alts))
	for i, a := range ch.alts {
		names[i] = a.name
	}
	return names
}

// AlternativeName returns the name of the alternative v holds, or "" if c
// is not a CHOICE or v is none of its alternatives.
func AlternativeName[C any](c Codec[C], v C) string {
	ch, ok := asChoice(c)
	if !ok || any(v) == nil {
		return ""
	}
	for _, a := range ch.alts {
		if a.is(v) {
			return a.name
		}
	}
	return ""
}

func asChoice[C any](c Codec[C]) (choice[C], bool) {
	switch c := c.(type) {
	case choice[C]:
		return c, true
	case explicit[C]:
		return asChoice(c.inner)
	}
	return choice[C]{}, false
}
