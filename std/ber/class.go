package ber

// Class holds the class part of a BER tag, taken from the top two bits of
// the identifier octet.
//
//go:generate stringer -type=Class -trimprefix=Class
type Class uint8

const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

// IsValid reports whether c fits in two bits.
func (c Class) IsValid() bool {
	return c <= ClassPrivate
}
