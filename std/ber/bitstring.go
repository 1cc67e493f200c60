package ber

import "strings"

// BitString is a BIT STRING value. Bits are numbered from the most
// significant bit of the first byte.
type BitString struct {
	Bytes     []byte
	BitLength int
}

// NewBitString builds a bit string of the given bits, in order.
func NewBitString(bits ...bool) BitString {
	b := BitString{Bytes: make([]byte, (len(bits)+7)/8), BitLength: len(bits)}
	for i, v := range bits {
		if v {
			b.Bytes[i/8] |= 0x80 >> (i % 8)
		}
	}
	return b
}

// At returns bit i. Bits beyond the end read as false.
func (b BitString) At(i int) bool {
	if i < 0 || i >= b.BitLength {
		return false
	}
	return b.Bytes[i/8]&(0x80>>(i%8)) != 0
}

// Set returns a copy of b with bit i set, extended as needed.
func (b BitString) Set(i int) BitString {
	l := max(b.BitLength, i+1)
	out := BitString{Bytes: make([]byte, (l+7)/8), BitLength: l}
	copy(out.Bytes, b.Bytes)
	out.Bytes[i/8] |= 0x80 >> (i % 8)
	return out
}

// Equal compares the significant bits of b and o.
func (b BitString) Equal(o BitString) bool {
	if b.BitLength != o.BitLength {
		return false
	}
	for i := 0; i < b.BitLength; i++ {
		if b.At(i) != o.At(i) {
			return false
		}
	}
	return true
}

// String renders b in ASN.1 value notation, e.g. '101'B.
func (b BitString) String() string {
	sb := strings.Builder{}
	sb.WriteByte('\'')
	for i := 0; i < b.BitLength; i++ {
		if b.At(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	sb.WriteString("'B")
	return sb.String()
}

// ParseBitString decodes BIT STRING content. A segmented constructed string
// is joined; only its last segment may carry unused bits.
func ParseBitString(n *Node) (BitString, error) {
	if n.constructed {
		out := BitString{Bytes: []byte{}}
		for i, c := range n.children {
			seg, err := ParseBitString(c)
			if err != nil {
				return BitString{}, err
			}
			if i < len(n.children)-1 && seg.BitLength%8 != 0 {
				return BitString{}, ErrFormat{"unused bits in inner bit string segment"}
			}
			out.Bytes = append(out.Bytes, seg.Bytes...)
			out.BitLength += seg.BitLength
		}
		return out, nil
	}

	c := n.content
	if len(c) == 0 {
		return BitString{}, ErrFormat{"empty bit string"}
	}
	unused := int(c[0])
	if unused > 7 || (len(c) == 1 && unused != 0) {
		return BitString{}, ErrFormat{"invalid unused bit count"}
	}
	return BitString{Bytes: c[1:], BitLength: (len(c)-1)*8 - unused}, nil
}

// EncodeBitString encodes b under tag. Padding bits are cleared.
func EncodeBitString(tag Tag, b BitString) *Node {
	nbytes := (b.BitLength + 7) / 8
	buf := make([]byte, 1+nbytes)
	unused := nbytes*8 - b.BitLength
	buf[0] = byte(unused)
	copy(buf[1:], b.Bytes[:min(nbytes, len(b.Bytes))])
	if unused > 0 {
		buf[nbytes] &= 0xff << unused
	}
	return newPrimitive(tag, buf)
}
