// Package asn1 maps ASN.1 productions onto Go types through a small set of
// composable codecs over ber.Node trees.
//
// A SEQUENCE is a struct whose pointer lists its components with Req, Opt
// and the related Field constructors, decoded by Seq. A CHOICE is a Go
// interface implemented by one concrete type per alternative, decoded by
// Choice. SequenceOf, Implicit and Explicit complete the set. Every codec
// can also format a value in ASN.1 value notation through a Printer.
package asn1
