package asn1

import (
	"github.com/opencatalog/z3950/std/ber"
	"github.com/opencatalog/z3950/std/types/optional"
)

// Field binds one component of a SEQUENCE to the Go value holding it.
type Field struct {
	name     string
	optional bool
	tags     []ber.Tag
	present  func() bool
	decode   func(n *ber.Node) error
	encode   func() (*ber.Node, error)
	format   func(p *Printer)
}

func (f Field) matches(t ber.Tag) bool {
	if f.tags == nil {
		return true
	}
	for _, x := range f.tags {
		if x == t {
			return true
		}
	}
	return false
}

// Sequence is implemented by pointers to structs encoded as SEQUENCE.
// Fields lists the components in declaration order, bound to the receiver.
type Sequence interface {
	Fields() []Field
}

// Req binds a mandatory component.
func Req[T any](name string, p *T, c Codec[T]) Field {
	return Field{
		name:    name,
		tags:    c.Tags(),
		present: func() bool { return true },
		decode: func(n *ber.Node) (err error) {
			*p, err = c.Decode(n, true)
			return err
		},
		encode: func() (*ber.Node, error) { return c.Encode(*p) },
		format: func(pr *Printer) { c.Format(pr, *p) },
	}
}

// Opt binds an OPTIONAL component held in an Optional.
func Opt[T any](name string, p *optional.Optional[T], c Codec[T]) Field {
	return Field{
		name:     name,
		optional: true,
		tags:     c.Tags(),
		present:  func() bool { return p.IsSet() },
		decode: func(n *ber.Node) error {
			v, err := c.Decode(n, true)
			if err != nil {
				return err
			}
			p.Set(v)
			return nil
		},
		encode: func() (*ber.Node, error) { return c.Encode(p.Unwrap()) },
		format: func(pr *Printer) { c.Format(pr, p.Unwrap()) },
	}
}

// OptPtr binds an OPTIONAL component held by pointer. Nil is absent.
func OptPtr[T any](name string, p **T, c Codec[*T]) Field {
	return optField(name, p, c, func() bool { return *p != nil })
}

// OptSlice binds an OPTIONAL component of slice type, such as a SEQUENCE
// OF, an OCTET STRING or an OBJECT IDENTIFIER. Nil is absent; an empty
// non-nil slice is present.
func OptSlice[S ~[]E, E any](name string, p *S, c Codec[S]) Field {
	return optField(name, p, c, func() bool { return *p != nil })
}

// OptChoice binds an OPTIONAL component of interface type. A nil interface
// is absent.
func OptChoice[C any](name string, p *C, c Codec[C]) Field {
	return optField(name, p, c, func() bool { return any(*p) != nil })
}

func optField[T any](name string, p *T, c Codec[T], present func() bool) Field {
	f := Req(name, p, c)
	f.optional = true
	f.present = present
	return f
}

type sequence[T any, PT interface {
	*T
	Sequence
}] struct {
	name string
}

// Seq is the SEQUENCE codec of struct type T, whose pointer implements
// Sequence. Components are matched to children by tag, in order; an absent
// OPTIONAL component never consumes a child.
func Seq[T any, PT interface {
	*T
	Sequence
}](name string) Codec[*T] {
	return sequence[T, PT]{name: name}
}

var sequenceTag = ber.Universal(ber.TagSequence)

func (c sequence[T, PT]) Tags() []ber.Tag {
	return []ber.Tag{sequenceTag}
}

func (c sequence[T, PT]) Decode(n *ber.Node, expectTag bool) (*T, error) {
	if err := checkTag(n, sequenceTag, expectTag); err != nil {
		return nil, ber.ErrFailToParse{Name: c.name, Err: err}
	}
	if err := checkConstructed(n); err != nil {
		return nil, ber.ErrFailToParse{Name: c.name, Err: err}
	}
	v := new(T)
	if err := decodeFields(c.name, PT(v).Fields(), n); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeFields(name string, fields []Field, n *ber.Node) error {
	i, count := 0, n.NumChildren()
	for _, f := range fields {
		if i >= count {
			if f.optional {
				continue
			}
			return ber.ErrFailToParse{Name: name + "." + f.name, Err: ber.ErrIncomplete}
		}
		child := n.Child(i)
		if f.optional && !f.matches(child.Tag()) {
			continue
		}
		if err := f.decode(child); err != nil {
			return ber.ErrFailToParse{Name: name + "." + f.name, Err: err}
		}
		i++
	}
	if i < count {
		return ber.ErrFailToParse{Name: name, Err: ber.ErrExtraData}
	}
	return nil
}

func (c sequence[T, PT]) Encode(v *T) (*ber.Node, error) {
	if v == nil {
		return nil, ber.ErrInvariant{Name: c.name, Msg: "nil value"}
	}
	fields := PT(v).Fields()
	children := make([]*ber.Node, 0, len(fields))
	for _, f := range fields {
		if !f.present() {
			continue
		}
		child, err := f.encode()
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	return ber.NewConstructed(sequenceTag, children...), nil
}

func (c sequence[T, PT]) Format(p *Printer, v *T) {
	if v == nil {
		p.Print("<nil>")
		return
	}
	formatFields(p, PT(v).Fields())
}

func formatFields(p *Printer, fields []Field) {
	p.Print("{")
	first := true
	for _, f := range fields {
		if !f.present() {
			continue
		}
		if first {
			p.Print(" ")
			first = false
		} else {
			p.Print(", ")
		}
		p.Print(f.name + " ")
		f.format(p)
	}
	if !first {
		p.Print(" ")
	}
	p.Print("}")
}
