package asn1

import "strings"

// Printer accumulates the value notation of a decoded value. The output
// mirrors ASN.1 value notation: braces around SEQUENCE and SEQUENCE OF
// values, "name : value" for a CHOICE. It is meant for people, not parsers.
type Printer struct {
	sb strings.Builder
}

// Print appends s.
func (p *Printer) Print(s string) {
	p.sb.WriteString(s)
}

// String returns everything printed so far.
func (p *Printer) String() string {
	return p.sb.String()
}

// Sprint formats v with c.
func Sprint[T any](c Codec[T], v T) string {
	p := &Printer{}
	c.Format(p, v)
	return p.String()
}
