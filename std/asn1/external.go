package asn1

import (
	"github.com/opencatalog/z3950/std/ber"
	"github.com/opencatalog/z3950/std/types/optional"
)

// External is the EXTERNAL type of X.208:
//
//	EXTERNAL ::= [UNIVERSAL 8] IMPLICIT SEQUENCE {
//	    direct-reference      OBJECT IDENTIFIER OPTIONAL,
//	    indirect-reference    INTEGER OPTIONAL,
//	    data-value-descriptor ObjectDescriptor OPTIONAL,
//	    encoding CHOICE {
//	        single-ASN1-type [0] ANY,
//	        octet-aligned    [1] IMPLICIT OCTET STRING,
//	        arbitrary        [2] IMPLICIT BIT STRING } }
//
// The encoded value is kept as is; interpreting it is up to the syntax named
// by the references.
type External struct {
	DirectReference     ber.OID
	IndirectReference   optional.Optional[int64]
	DataValueDescriptor optional.Optional[string]
	Encoding            ExternalEncoding
}

// ExternalEncoding is one of *ExternalASN1, ExternalOctets or
// ExternalArbitrary.
type ExternalEncoding interface {
	isExternalEncoding()
}

// ExternalASN1 carries a single ASN.1 value, tagged with its own tag.
type ExternalASN1 struct {
	Value *ber.Node
}

// ExternalOctets carries an octet-aligned value such as a MARC record.
type ExternalOctets []byte

// ExternalArbitrary carries a value of arbitrary bit length.
type ExternalArbitrary ber.BitString

func (*ExternalASN1) isExternalEncoding()     {}
func (ExternalOctets) isExternalEncoding()    {}
func (ExternalArbitrary) isExternalEncoding() {}

var externalEncoding = Choice("encoding",
	Alt[ExternalEncoding]("single-ASN1-type", Explicit(0, Transform(Any,
		func(n *ber.Node) *ExternalASN1 { return &ExternalASN1{Value: n} },
		func(v *ExternalASN1) *ber.Node {
			if v == nil {
				return nil
			}
			return v.Value
		}))),
	Alt[ExternalEncoding]("octet-aligned", Implicit(1, Octets[ExternalOctets]())),
	Alt[ExternalEncoding]("arbitrary", Implicit(2, Transform(BitString,
		func(b ber.BitString) ExternalArbitrary { return ExternalArbitrary(b) },
		func(b ExternalArbitrary) ber.BitString { return ber.BitString(b) }))),
)

// ExternalCodec is the codec of EXTERNAL.
var ExternalCodec = ImplicitTag(ber.Universal(ber.TagExternal), Seq[External]("EXTERNAL"))

func (e *External) Fields() []Field {
	return []Field{
		OptSlice("direct-reference", &e.DirectReference, ObjectIdentifier),
		Opt("indirect-reference", &e.IndirectReference, Integer),
		Opt("data-value-descriptor", &e.DataValueDescriptor, ObjectDescriptor),
		Req("encoding", &e.Encoding, externalEncoding),
	}
}

func (e *External) String() string {
	return Sprint(ExternalCodec, e)
}

// NewExternalASN1 wraps an encoded ASN.1 value in an EXTERNAL identified
// by syntax.
func NewExternalASN1(syntax ber.OID, v *ber.Node) *External {
	return &External{DirectReference: syntax, Encoding: &ExternalASN1{Value: v}}
}

// NewExternalOctets wraps opaque octets in an EXTERNAL identified by syntax.
func NewExternalOctets(syntax ber.OID, b []byte) *External {
	return &External{DirectReference: syntax, Encoding: ExternalOctets(b)}
}
