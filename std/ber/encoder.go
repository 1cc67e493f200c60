package ber

import "io"

// lengthEncodingLength returns the number of length octets for l in
// definite form, using the short form up to 127.
func lengthEncodingLength(l int) int {
	if l <= 0x7f {
		return 1
	}
	n := 1
	for ; l > 0; l >>= 8 {
		n++
	}
	return n
}

// putLength writes l in minimal definite form.
func putLength(buf Buffer, l int) int {
	if l <= 0x7f {
		buf[0] = byte(l)
		return 1
	}
	n := lengthEncodingLength(l) - 1
	buf[0] = 0x80 | byte(n)
	for i := 0; i < n; i++ {
		buf[1+i] = byte(l >> (8 * (n - 1 - i)))
	}
	return n + 1
}

// EncodingLength returns the number of bytes of the definite-length encoding
// of n, header included.
func (n *Node) EncodingLength() int {
	return n.tag.EncodingLength() + lengthEncodingLength(n.clen) + n.clen
}

// EncodeInto writes the encoding of n into buf and returns the number of
// bytes written. buf must hold at least n.EncodingLength() bytes.
// Lengths are always emitted in minimal definite form.
func (n *Node) EncodeInto(buf Buffer) int {
	pos := n.tag.EncodeInto(buf, n.constructed)
	pos += putLength(buf[pos:], n.clen)
	if !n.constructed {
		pos += copy(buf[pos:], n.content)
		return pos
	}
	for _, c := range n.children {
		pos += c.EncodeInto(buf[pos:])
	}
	return pos
}

// Bytes returns the encoding of n.
func (n *Node) Bytes() []byte {
	buf := make(Buffer, n.EncodingLength())
	n.EncodeInto(buf)
	return buf
}

// WriteTo writes the encoding of n to w.
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	written, err := w.Write(n.Bytes())
	return int64(written), err
}
