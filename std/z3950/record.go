package z3950

import (
	"fmt"

	"github.com/opencatalog/z3950/std/asn1"
	"github.com/opencatalog/z3950/std/ber"
)

// SutrsRecord is a simple unstructured text record.
type SutrsRecord string

// MARCRecord is an ISO 2709 record in one of the MARC syntaxes.
type MARCRecord struct {
	Syntax ber.OID
	Data   []byte
}

// XMLRecord is an XML document.
type XMLRecord []byte

var sutrsCodec = asn1.GeneralString[SutrsRecord]()

func (r SutrsRecord) String() string {
	return asn1.Sprint(sutrsCodec, r)
}

// DecodeExternal interprets the value of an EXTERNAL by its direct
// reference. Known ASN.1 syntaxes yield SutrsRecord, *OPACRecord,
// GenericRecord or DiagnosticFormat; MARC syntaxes yield MARCRecord and XML
// yields XMLRecord. Any other value is returned unchanged, as the
// *asn1.External itself.
func DecodeExternal(ext *asn1.External) (any, error) {
	if ext == nil {
		return nil, ber.ErrInvariant{Name: "EXTERNAL", Msg: "nil value"}
	}
	syntax := ext.DirectReference
	switch enc := ext.Encoding.(type) {
	case *asn1.ExternalASN1:
		switch {
		case syntax.Equal(SyntaxSUTRS):
			return decodeAs(sutrsCodec, enc.Value)
		case syntax.Equal(SyntaxOPAC):
			return decodeAs(opacRecordCodec, enc.Value)
		case syntax.Equal(SyntaxGRS1):
			return decodeAs(genericRecordCodec, enc.Value)
		case syntax.Equal(DiagSetDiag1):
			return decodeAs(diagnosticFormatCodec, enc.Value)
		}
	case asn1.ExternalOctets:
		switch {
		case syntax.Equal(SyntaxSUTRS):
			return SutrsRecord(enc), nil
		case syntax.Equal(SyntaxXML):
			return XMLRecord(enc), nil
		case IsMARC(syntax):
			return MARCRecord{Syntax: syntax, Data: []byte(enc)}, nil
		}
	}
	return ext, nil
}

func decodeAs[T any](c asn1.Codec[T], n *ber.Node) (any, error) {
	if n == nil {
		return nil, ber.ErrInvariant{Name: "EXTERNAL", Msg: "missing value"}
	}
	v, err := c.Decode(n, true)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// NewRecordExternal wraps a record value of a known syntax in an EXTERNAL,
// the inverse of DecodeExternal.
func NewRecordExternal(v any) (*asn1.External, error) {
	switch r := v.(type) {
	case SutrsRecord:
		return encodeAs(SyntaxSUTRS, sutrsCodec, r)
	case *OPACRecord:
		return encodeAs(SyntaxOPAC, opacRecordCodec, r)
	case GenericRecord:
		return encodeAs(SyntaxGRS1, genericRecordCodec, r)
	case DiagnosticFormat:
		return encodeAs(DiagSetDiag1, diagnosticFormatCodec, r)
	case MARCRecord:
		return asn1.NewExternalOctets(r.Syntax, r.Data), nil
	case XMLRecord:
		return asn1.NewExternalOctets(SyntaxXML, r), nil
	case *asn1.External:
		return r, nil
	default:
		return nil, ber.ErrInvariant{Name: "EXTERNAL", Msg: fmt.Sprintf("unknown record type %T", v)}
	}
}

func encodeAs[T any](syntax ber.OID, c asn1.Codec[T], v T) (*asn1.External, error) {
	n, err := c.Encode(v)
	if err != nil {
		return nil, err
	}
	return asn1.NewExternalASN1(syntax, n), nil
}
