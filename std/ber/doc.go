// Package ber implements the X.690 Basic Encoding Rules at the TLV level.
//
// A Decoder frames tag-length-value units from a byte stream into immutable
// Node trees, accepting the short, long and indefinite length forms and
// multi-octet tag numbers. Encoding always emits minimal definite lengths.
// The Parse and Encode functions convert the content of primitive nodes to
// and from Go values for the universal types.
package ber
