package ber

import (
	"slices"
	"time"
)

func checkPrimitive(n *Node) error {
	if n.constructed {
		return ErrFormat{"expected primitive form for " + n.tag.String()}
	}
	return nil
}

// ParseBoolean decodes BOOLEAN content. Any nonzero octet is true.
func ParseBoolean(n *Node) (bool, error) {
	if err := checkPrimitive(n); err != nil {
		return false, err
	}
	if len(n.content) != 1 {
		return false, ErrFormat{"boolean content must be one octet"}
	}
	return n.content[0] != 0, nil
}

// EncodeBoolean encodes v under tag. True is emitted as 0xFF.
func EncodeBoolean(tag Tag, v bool) *Node {
	if v {
		return newPrimitive(tag, []byte{0xff})
	}
	return newPrimitive(tag, []byte{0x00})
}

// ParseInteger decodes minimal or non-minimal two's-complement content into
// an int64.
func ParseInteger(n *Node) (int64, error) {
	if err := checkPrimitive(n); err != nil {
		return 0, err
	}
	c := n.content
	if len(c) == 0 {
		return 0, ErrFormat{"empty integer"}
	}
	if len(c) > 8 {
		return 0, ErrFormat{"integer too large"}
	}
	v := int64(int8(c[0]))
	for _, b := range c[1:] {
		v = v<<8 | int64(b)
	}
	return v, nil
}

// IntegerLength returns the number of content octets of the minimal
// two's-complement form of v.
func IntegerLength(v int64) int {
	l := 1
	for v > 127 || v < -128 {
		l++
		v >>= 8
	}
	return l
}

// EncodeInteger encodes v under tag in minimal two's-complement form.
func EncodeInteger(tag Tag, v int64) *Node {
	l := IntegerLength(v)
	buf := make([]byte, l)
	for i := l - 1; i >= 0; i-- {
		buf[i] = byte(v)
		v >>= 8
	}
	return newPrimitive(tag, buf)
}

// ParseNull checks that n has empty content.
func ParseNull(n *Node) error {
	if err := checkPrimitive(n); err != nil {
		return err
	}
	if len(n.content) != 0 {
		return ErrFormat{"null with content"}
	}
	return nil
}

// EncodeNull encodes NULL under tag.
func EncodeNull(tag Tag) *Node {
	return newPrimitive(tag, nil)
}

// ParseOctetString returns the octets of a string type. A constructed
// (segmented) string is flattened in order; segments keep their own tags
// unchecked.
func ParseOctetString(n *Node) ([]byte, error) {
	if !n.constructed {
		return slices.Clone(n.content), nil
	}
	var out []byte
	for _, c := range n.children {
		seg, err := ParseOctetString(c)
		if err != nil {
			return nil, err
		}
		out = append(out, seg...)
	}
	if out == nil {
		out = []byte{}
	}
	return out, nil
}

// EncodeOctetString encodes v under tag in primitive form.
func EncodeOctetString(tag Tag, v []byte) *Node {
	return NewPrimitive(tag, v)
}

// ParseString returns the text of a GeneralString, VisibleString or other
// character string type. Octets are taken verbatim.
func ParseString(n *Node) (string, error) {
	b, err := ParseOctetString(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// EncodeString encodes the octets of v under tag.
func EncodeString(tag Tag, v string) *Node {
	return newPrimitive(tag, []byte(v))
}

// GeneralizedTime is the text of a GeneralizedTime value. It is kept as
// received; Time interprets it on request.
type GeneralizedTime string

var generalizedTimeLayouts = []string{
	"20060102150405Z0700",
	"20060102150405.999999999Z0700",
	"200601021504Z0700",
	"2006010215Z0700",
	"20060102150405",
	"20060102150405.999999999",
	"200601021504",
	"2006010215",
}

// Time parses g in any of the forms X.680 allows.
func (g GeneralizedTime) Time() (time.Time, error) {
	for _, layout := range generalizedTimeLayouts {
		if t, err := time.Parse(layout, string(g)); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrFormat{"invalid generalized time " + string(g)}
}

// NewGeneralizedTime formats t in UTC with second precision.
func NewGeneralizedTime(t time.Time) GeneralizedTime {
	return GeneralizedTime(t.UTC().Format("20060102150405Z"))
}
