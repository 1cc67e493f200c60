package asn1

import (
	"encoding/hex"
	"strconv"

	"github.com/opencatalog/z3950/std/ber"
	"golang.org/x/exp/constraints"
)

type primitive[T any] struct {
	tag    ber.Tag
	decode func(n *ber.Node) (T, error)
	encode func(tag ber.Tag, v T) (*ber.Node, error)
	format func(p *Printer, v T)
}

func (c primitive[T]) Tags() []ber.Tag {
	return []ber.Tag{c.tag}
}

func (c primitive[T]) Decode(n *ber.Node, expectTag bool) (T, error) {
	if err := checkTag(n, c.tag, expectTag); err != nil {
		var zero T
		return zero, err
	}
	return c.decode(n)
}

func (c primitive[T]) Encode(v T) (*ber.Node, error) {
	return c.encode(c.tag, v)
}

func (c primitive[T]) Format(p *Printer, v T) {
	c.format(p, v)
}

var (
	Boolean             Codec[bool]                = Bool[bool]()
	Integer             Codec[int64]               = Int[int64](nil)
	Null                Codec[struct{}]            = NullOf[struct{}]()
	OctetString         Codec[[]byte]              = Octets[[]byte]()
	InternationalString Codec[string]              = GeneralString[string]()
	VisibleString       Codec[string]              = Visible[string]()
	ObjectDescriptor    Codec[string]              = stringCodec[string](ber.TagObjectDescriptor)
	ObjectIdentifier    Codec[ber.OID]             = ObjectID[ber.OID]()
	BitString           Codec[ber.BitString]       = bitString{}
	GeneralizedTime     Codec[ber.GeneralizedTime] = Time[ber.GeneralizedTime]()
)

// Bool is the BOOLEAN codec for a named bool type.
func Bool[T ~bool]() Codec[T] {
	return primitive[T]{
		tag: ber.Universal(ber.TagBoolean),
		decode: func(n *ber.Node) (T, error) {
			v, err := ber.ParseBoolean(n)
			return T(v), err
		},
		encode: func(tag ber.Tag, v T) (*ber.Node, error) {
			return ber.EncodeBoolean(tag, bool(v)), nil
		},
		format: func(p *Printer, v T) {
			if v {
				p.Print("TRUE")
			} else {
				p.Print("FALSE")
			}
		},
	}
}

// Int is the INTEGER codec for any integer type. Names, when given, are
// used for display only.
func Int[T constraints.Integer](names map[T]string) Codec[T] {
	return primitive[T]{
		tag: ber.Universal(ber.TagInteger),
		decode: func(n *ber.Node) (T, error) {
			v, err := ber.ParseInteger(n)
			if err != nil {
				return 0, err
			}
			t := T(v)
			if int64(t) != v || (t < 0) != (v < 0) {
				return 0, ber.ErrFormat{Msg: "integer out of range: " + strconv.FormatInt(v, 10)}
			}
			return t, nil
		},
		encode: func(tag ber.Tag, v T) (*ber.Node, error) {
			return ber.EncodeInteger(tag, int64(v)), nil
		},
		format: func(p *Printer, v T) {
			if name, ok := names[v]; ok {
				p.Print(name)
				return
			}
			p.Print(strconv.FormatInt(int64(v), 10))
		},
	}
}

// NullOf is the NULL codec for a named empty struct type.
func NullOf[T ~struct{}]() Codec[T] {
	return primitive[T]{
		tag: ber.Universal(ber.TagNull),
		decode: func(n *ber.Node) (T, error) {
			var zero T
			return zero, ber.ParseNull(n)
		},
		encode: func(tag ber.Tag, _ T) (*ber.Node, error) {
			return ber.EncodeNull(tag), nil
		},
		format: func(p *Printer, _ T) {
			p.Print("NULL")
		},
	}
}

// Octets is the OCTET STRING codec for a named byte slice type.
func Octets[T ~[]byte]() Codec[T] {
	return primitive[T]{
		tag: ber.Universal(ber.TagOctetString),
		decode: func(n *ber.Node) (T, error) {
			v, err := ber.ParseOctetString(n)
			return T(v), err
		},
		encode: func(tag ber.Tag, v T) (*ber.Node, error) {
			return ber.EncodeOctetString(tag, []byte(v)), nil
		},
		format: func(p *Printer, v T) {
			p.Print("'" + hex.EncodeToString([]byte(v)) + "'H")
		},
	}
}

func stringCodec[T ~string](num uint) Codec[T] {
	return primitive[T]{
		tag: ber.Universal(num),
		decode: func(n *ber.Node) (T, error) {
			v, err := ber.ParseString(n)
			return T(v), err
		},
		encode: func(tag ber.Tag, v T) (*ber.Node, error) {
			return ber.EncodeString(tag, string(v)), nil
		},
		format: func(p *Printer, v T) {
			p.Print(strconv.Quote(string(v)))
		},
	}
}

// GeneralString is the codec of InternationalString for a named string type.
func GeneralString[T ~string]() Codec[T] {
	return stringCodec[T](ber.TagGeneralString)
}

// Visible is the VisibleString codec for a named string type.
func Visible[T ~string]() Codec[T] {
	return stringCodec[T](ber.TagVisibleString)
}

// Time is the GeneralizedTime codec for a named string type.
func Time[T ~string]() Codec[T] {
	return stringCodec[T](ber.TagGeneralizedTime)
}

// ObjectID is the OBJECT IDENTIFIER codec for a named OID type.
func ObjectID[T ~[]uint64]() Codec[T] {
	return primitive[T]{
		tag: ber.Universal(ber.TagOID),
		decode: func(n *ber.Node) (T, error) {
			v, err := ber.ParseOID(n)
			return T(v), err
		},
		encode: func(tag ber.Tag, v T) (*ber.Node, error) {
			return ber.EncodeOID(tag, ber.OID(v))
		},
		format: func(p *Printer, v T) {
			p.Print(ber.OID(v).String())
		},
	}
}

type bitString struct{}

func (bitString) Tags() []ber.Tag {
	return []ber.Tag{ber.Universal(ber.TagBitString)}
}

func (c bitString) Decode(n *ber.Node, expectTag bool) (ber.BitString, error) {
	if err := checkTag(n, ber.Universal(ber.TagBitString), expectTag); err != nil {
		return ber.BitString{}, err
	}
	return ber.ParseBitString(n)
}

func (bitString) Encode(v ber.BitString) (*ber.Node, error) {
	return ber.EncodeBitString(ber.Universal(ber.TagBitString), v), nil
}

func (bitString) Format(p *Printer, v ber.BitString) {
	p.Print(v.String())
}

type anyCodec struct{}

// Any accepts a node of any tag and keeps it undecoded.
var Any Codec[*ber.Node] = anyCodec{}

func (anyCodec) Tags() []ber.Tag {
	return nil
}

func (anyCodec) Decode(n *ber.Node, _ bool) (*ber.Node, error) {
	return n, nil
}

func (anyCodec) Encode(v *ber.Node) (*ber.Node, error) {
	if v == nil {
		return nil, ber.ErrInvariant{Name: "ANY", Msg: "nil value"}
	}
	return v, nil
}

func (anyCodec) Format(p *Printer, v *ber.Node) {
	if v == nil {
		p.Print("<nil>")
		return
	}
	p.Print("'" + hex.EncodeToString(v.Bytes()) + "'H")
}
