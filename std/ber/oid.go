package ber

import (
	"slices"
	"strconv"
	"strings"
)

// OID is an OBJECT IDENTIFIER as its list of arcs.
type OID []uint64

// String renders the dotted form, e.g. 1.2.840.10003.5.10.
func (o OID) String() string {
	sb := strings.Builder{}
	for i, a := range o {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.FormatUint(a, 10))
	}
	return sb.String()
}

// Equal reports whether o and p have the same arcs.
func (o OID) Equal(p OID) bool {
	return slices.Equal(o, p)
}

// HasPrefix reports whether p is a leading part of o.
func (o OID) HasPrefix(p OID) bool {
	return len(o) >= len(p) && slices.Equal(o[:len(p)], p)
}

// Append returns a new OID with arcs added to o.
func (o OID) Append(arcs ...uint64) OID {
	return append(slices.Clone(o), arcs...)
}

// ParseOIDString parses the dotted form.
func ParseOIDString(s string) (OID, error) {
	parts := strings.Split(s, ".")
	o := make(OID, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, ErrFormat{"invalid oid " + s}
		}
		o[i] = v
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// MustParseOID is ParseOIDString that panics on error.
func MustParseOID(s string) OID {
	o, err := ParseOIDString(s)
	if err != nil {
		panic(err)
	}
	return o
}

func (o OID) validate() error {
	if len(o) < 2 {
		return ErrFormat{"oid needs at least two arcs"}
	}
	if o[0] > 2 || (o[0] < 2 && o[1] >= 40) {
		return ErrFormat{"invalid leading arcs in oid " + o.String()}
	}
	return nil
}

// ParseOID decodes OBJECT IDENTIFIER content.
func ParseOID(n *Node) (OID, error) {
	if err := checkPrimitive(n); err != nil {
		return nil, err
	}
	c := n.content
	if len(c) == 0 {
		return nil, ErrFormat{"empty oid"}
	}
	o := make(OID, 0, len(c)+1)
	for pos := 0; pos < len(c); {
		v, l, err := readBase128(c[pos:], 64)
		if err != nil {
			return nil, err
		}
		if pos == 0 {
			switch {
			case v < 40:
				o = append(o, 0, v)
			case v < 80:
				o = append(o, 1, v-40)
			default:
				o = append(o, 2, v-80)
			}
		} else {
			o = append(o, v)
		}
		pos += l
	}
	return o, nil
}

// EncodeOID encodes o under tag. It fails when o is not a valid identifier.
func EncodeOID(tag Tag, o OID) (*Node, error) {
	if err := o.validate(); err != nil {
		return nil, ErrInvariant{"OBJECT IDENTIFIER", err.Error()}
	}
	first := o[0]*40 + o[1]
	l := base128Length(first)
	for _, a := range o[2:] {
		l += base128Length(a)
	}
	buf := make(Buffer, l)
	pos := putBase128(buf, first)
	for _, a := range o[2:] {
		pos += putBase128(buf[pos:], a)
	}
	return newPrimitive(tag, buf), nil
}
