// Package z3950 holds the Z39.50 (ISO 23950) application protocol data
// units of Z39-50-APDU-1995 as Go types, together with the record syntaxes
// most targets return: SUTRS, OPAC, GRS-1 and the diag-1 diagnostic format.
//
// Every SEQUENCE is a struct, every CHOICE an interface with one concrete
// type per alternative. PDUs are decoded from BER with DecodePDU, ReadPDU
// or Parse and encoded with EncodePDU or Marshal; encoding always produces
// the definite, minimal form.
package z3950
