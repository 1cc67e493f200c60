package ber

import (
	"strconv"
	"strings"
)

// Tag identifies a BER node: its class and number. Tag numbers of 31 and
// above use the multi-octet identifier form.
type Tag struct {
	Class  Class
	Number uint
}

// Universal tag numbers used by the primitive codecs.
const (
	TagEndOfContents    uint = 0
	TagBoolean          uint = 1
	TagInteger          uint = 2
	TagBitString        uint = 3
	TagOctetString      uint = 4
	TagNull             uint = 5
	TagOID              uint = 6
	TagObjectDescriptor uint = 7
	TagExternal         uint = 8
	TagEnumerated       uint = 10
	TagSequence         uint = 16
	TagSet              uint = 17
	TagGeneralizedTime  uint = 24
	TagVisibleString    uint = 26
	TagGeneralString    uint = 27
)

// maxShortTag is the largest tag number that fits in the identifier octet.
const maxShortTag = 30

// EndOfContents is the tag of the marker closing an indefinite-length node.
var EndOfContents = Tag{Class: ClassUniversal, Number: TagEndOfContents}

// Universal returns the UNIVERSAL class tag n.
func Universal(n uint) Tag {
	return Tag{Class: ClassUniversal, Number: n}
}

// Context returns the context-specific tag [n].
func Context(n uint) Tag {
	return Tag{Class: ClassContextSpecific, Number: n}
}

// Application returns the APPLICATION class tag n.
func Application(n uint) Tag {
	return Tag{Class: ClassApplication, Number: n}
}

// String renders t the way ASN.1 notation writes tags. Context-specific tags
// omit the class keyword.
func (t Tag) String() string {
	if t.Class == ClassContextSpecific {
		return "[" + strconv.FormatUint(uint64(t.Number), 10) + "]"
	}
	return "[" + strings.ToUpper(t.Class.String()) + " " + strconv.FormatUint(uint64(t.Number), 10) + "]"
}

// EncodingLength returns the number of identifier octets needed for t.
func (t Tag) EncodingLength() int {
	if t.Number <= maxShortTag {
		return 1
	}
	return 1 + base128Length(uint64(t.Number))
}

// EncodeInto writes the identifier octets of t into buf and returns the
// number of bytes written. buf must hold at least t.EncodingLength() bytes.
func (t Tag) EncodeInto(buf Buffer, constructed bool) int {
	b := byte(t.Class) << 6
	if constructed {
		b |= constructedBit
	}
	if t.Number <= maxShortTag {
		buf[0] = b | byte(t.Number)
		return 1
	}
	buf[0] = b | 0x1f
	return 1 + putBase128(buf[1:], uint64(t.Number))
}

const constructedBit = 0x20

// base128Length returns the number of octets used by the base-128 form of v.
// Tag numbers and OID arcs share this continuation encoding.
func base128Length(v uint64) int {
	l := 1
	for v >>= 7; v > 0; v >>= 7 {
		l++
	}
	return l
}

// putBase128 writes v in base-128 form, most significant group first, with
// the high bit set on every octet but the last.
func putBase128(buf Buffer, v uint64) int {
	l := base128Length(v)
	for i := l - 1; i >= 0; i-- {
		b := byte(v>>(7*uint(i))) & 0x7f
		if i > 0 {
			b |= 0x80
		}
		buf[l-1-i] = b
	}
	return l
}

// readBase128 parses one base-128 quantity from buf. It returns the value and
// the number of octets consumed.
func readBase128(buf []byte, bits int) (uint64, int, error) {
	var v uint64
	for i, b := range buf {
		if v>>(bits-7) != 0 {
			return 0, 0, ErrFormat{"base-128 value overflows " + strconv.Itoa(bits) + " bits"}
		}
		v = v<<7 | uint64(b&0x7f)
		if b&0x80 == 0 {
			return v, i + 1, nil
		}
	}
	return 0, 0, ErrUnexpectedEnd
}
