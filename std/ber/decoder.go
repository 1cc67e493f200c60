package ber

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"math"
	"strconv"
)

// Limits bound the resources a decoder commits to a single TLV unit.
// A zero field takes its value from DefaultLimits.
type Limits struct {
	// MaxLength is the largest accepted content length, in octets.
	MaxLength int `yaml:"max_length"`
	// MaxLengthOctets is the largest accepted number of long-form length octets.
	MaxLengthOctets int `yaml:"max_length_octets"`
	// MaxDepth is the deepest accepted nesting of constructed nodes.
	MaxDepth int `yaml:"max_depth"`
}

// DefaultLimits are the limits used when none are given.
var DefaultLimits = Limits{
	MaxLength:       10 << 20,
	MaxLengthOctets: 4,
	MaxDepth:        1024,
}

func (l Limits) withDefaults() Limits {
	if l.MaxLength <= 0 {
		l.MaxLength = DefaultLimits.MaxLength
	}
	if l.MaxLengthOctets <= 0 {
		l.MaxLengthOctets = DefaultLimits.MaxLengthOctets
	}
	if l.MaxDepth <= 0 {
		l.MaxDepth = DefaultLimits.MaxDepth
	}
	return l
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLimits replaces the decoder limits.
func WithLimits(l Limits) Option {
	return func(d *Decoder) {
		d.limits = l.withDefaults()
	}
}

type byteReader interface {
	io.Reader
	io.ByteReader
}

// Decoder reads successive TLV units from a byte stream.
// A Decoder is not safe for concurrent use.
type Decoder struct {
	r      byteReader
	limits Limits
	off    int64
}

// maxTagOctets bounds the continuation octets of a tag number.
const maxTagOctets = 10

// NewDecoder returns a decoder reading from r. The reader is buffered unless
// it already implements io.ByteReader.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	br, ok := r.(byteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	d := &Decoder{r: br, limits: DefaultLimits}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Offset returns the number of bytes consumed so far.
func (d *Decoder) Offset() int64 {
	return d.off
}

// Limits returns the limits in effect.
func (d *Decoder) Limits() Limits {
	return d.limits
}

// ReadNode reads one complete TLV unit, recursing into constructed content.
// It returns io.EOF only when the stream ends before the first octet of a
// unit. Any other early end is ErrUnexpectedEnd. After an error the stream
// position is undefined.
func (d *Decoder) ReadNode() (*Node, error) {
	start := d.off
	first, err := d.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		return nil, err
	}
	d.off++

	n, err := d.readNode(first, 0, -1)
	if err != nil {
		return nil, err
	}
	if n.IsEndOfContents() {
		return nil, ErrOffset{start, ErrFormat{"unexpected end-of-contents"}}
	}
	return n, nil
}

// Header is the identifier and length octets of a unit.
type Header struct {
	Tag         Tag
	Constructed bool
	// Size is the number of identifier and length octets.
	Size int
	// Length is the content length, or -1 for the indefinite form.
	Length int
}

// ReadHeader reads the identifier and length octets of the next unit and
// leaves the stream at its first content octet. Like ReadNode it returns
// io.EOF only when the stream ends before the unit starts.
func (d *Decoder) ReadHeader() (Header, error) {
	start := d.off
	first, err := d.r.ReadByte()
	if err != nil {
		return Header{}, err
	}
	d.off++

	fail := func(err error) (Header, error) {
		if errors.Is(err, io.EOF) {
			err = ErrUnexpectedEnd
		}
		return Header{}, ErrOffset{start, err}
	}
	tag, constructed, err := d.readTag(first)
	if err != nil {
		return fail(err)
	}
	length, indefinite, err := d.readLength()
	if err != nil {
		return fail(err)
	}
	if indefinite {
		if !constructed {
			return fail(ErrCorruptedPrimitive)
		}
		length = -1
	}
	return Header{Tag: tag, Constructed: constructed, Size: int(d.off - start), Length: length}, nil
}

// readNode reads the remainder of a unit whose first identifier octet has
// already been consumed. end is the absolute offset the unit must not cross,
// or -1 if unbounded.
func (d *Decoder) readNode(first byte, depth int, end int64) (*Node, error) {
	start := d.off - 1
	fail := func(err error) (*Node, error) {
		var oe ErrOffset
		if errors.As(err, &oe) {
			return nil, err
		}
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			err = ErrUnexpectedEnd
		}
		return nil, ErrOffset{start, err}
	}

	if depth > d.limits.MaxDepth {
		return fail(ErrTooDeep)
	}

	tag, constructed, err := d.readTag(first)
	if err != nil {
		return fail(err)
	}
	length, indefinite, err := d.readLength()
	if err != nil {
		return fail(err)
	}

	if !constructed {
		if indefinite {
			return fail(ErrCorruptedPrimitive)
		}
		if end >= 0 && d.off+int64(length) > end {
			return fail(ErrFormat{"child exceeds enclosing length"})
		}
		content := make([]byte, length)
		if _, err := io.ReadFull(d.r, content); err != nil {
			return fail(err)
		}
		d.off += int64(length)
		return newPrimitive(tag, content), nil
	}

	children := make([]*Node, 0)
	if indefinite {
		for {
			if end >= 0 && d.off >= end {
				return fail(ErrFormat{"child exceeds enclosing length"})
			}
			c, err := d.readChild(depth, end)
			if err != nil {
				return fail(err)
			}
			if c.IsEndOfContents() {
				break
			}
			children = append(children, c)
		}
		return newConstructed(tag, children), nil
	}

	cend := d.off + int64(length)
	if end >= 0 && cend > end {
		return fail(ErrFormat{"child exceeds enclosing length"})
	}
	for d.off < cend {
		c, err := d.readChild(depth, cend)
		if err != nil {
			return fail(err)
		}
		if c.IsEndOfContents() {
			return fail(ErrFormat{"end-of-contents in definite-length node"})
		}
		children = append(children, c)
	}
	return newConstructed(tag, children), nil
}

func (d *Decoder) readChild(depth int, end int64) (*Node, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return nil, err
	}
	d.off++
	return d.readNode(b, depth+1, end)
}

func (d *Decoder) readTag(first byte) (Tag, bool, error) {
	t := Tag{Class: Class(first >> 6)}
	constructed := first&constructedBit != 0
	if first&0x1f != 0x1f {
		t.Number = uint(first & 0x1f)
		return t, constructed, nil
	}

	var buf [maxTagOctets]byte
	for i := 0; ; i++ {
		if i == maxTagOctets {
			return t, false, ErrFormat{"tag number too large"}
		}
		b, err := d.r.ReadByte()
		if err != nil {
			return t, false, err
		}
		d.off++
		buf[i] = b
		if b&0x80 == 0 {
			v, _, err := readBase128(buf[:i+1], strconv.IntSize)
			if err != nil {
				return t, false, err
			}
			t.Number = uint(v)
			return t, constructed, nil
		}
	}
}

func (d *Decoder) readLength() (int, bool, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return 0, false, err
	}
	d.off++
	if b&0x80 == 0 {
		return int(b), false, nil
	}
	n := int(b & 0x7f)
	if n == 0 {
		return 0, true, nil
	}
	if n == 0x7f || n > d.limits.MaxLengthOctets {
		return 0, false, ErrLengthTooLong
	}

	var v uint64
	for i := 0; i < n; i++ {
		b, err := d.r.ReadByte()
		if err != nil {
			return 0, false, err
		}
		d.off++
		if v > math.MaxUint64>>8 {
			return 0, false, ErrLengthTooLong
		}
		v = v<<8 | uint64(b)
	}
	if v > uint64(d.limits.MaxLength) {
		return 0, false, ErrLengthTooLong
	}
	return int(v), false, nil
}

// Parse decodes exactly one TLV unit from buf. Trailing bytes are
// ErrExtraData; an empty buffer is ErrUnexpectedEnd.
func Parse(buf []byte, opts ...Option) (*Node, error) {
	d := NewDecoder(bytes.NewReader(buf), opts...)
	n, err := d.ReadNode()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrOffset{0, ErrUnexpectedEnd}
		}
		return nil, err
	}
	if d.off != int64(len(buf)) {
		return nil, ErrOffset{d.off, ErrExtraData}
	}
	return n, nil
}
