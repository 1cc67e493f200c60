package z3950

import (
	"github.com/opencatalog/z3950/std/asn1"
	"github.com/opencatalog/z3950/std/ber"
	"github.com/opencatalog/z3950/std/types/optional"
)

// ReferenceID is echoed unchanged by the target in the response to a request.
//
//	ReferenceId ::= [2] IMPLICIT OCTET STRING
type ReferenceID []byte

var (
	referenceIDCodec    = asn1.Implicit(2, asn1.Octets[ReferenceID]())
	databaseNameCodec   = asn1.Implicit(105, asn1.InternationalString)
	resultSetIDCodec    = asn1.Implicit(31, asn1.InternationalString)
	elementSetNameCodec = asn1.Implicit(103, asn1.InternationalString)
	databaseNamesCodec  = asn1.SequenceOf[[]string](databaseNameCodec)
	stringsCodec        = asn1.SequenceOf[[]string](asn1.InternationalString)
	oidsCodec           = asn1.SequenceOf[[]ber.OID](asn1.ObjectIdentifier)
	integersCodec       = asn1.SequenceOf[[]int64](asn1.Integer)
)

// OtherInformation carries information not defined elsewhere in a PDU.
//
//	OtherInformation ::= [201] IMPLICIT SEQUENCE OF SEQUENCE{
//	  category            [1]   IMPLICIT InfoCategory OPTIONAL,
//	  information        CHOICE{
//	    characterInfo        [2]  IMPLICIT InternationalString,
//	    binaryInfo           [3]  IMPLICIT OCTET STRING,
//	    externallyDefinedInfo  [4]  IMPLICIT EXTERNAL,
//	    oid                  [5]  IMPLICIT OBJECT IDENTIFIER}}
type OtherInformation []*OtherInformationUnit

type OtherInformationUnit struct {
	Category    *InfoCategory
	Information Information
}

// Information is one of CharacterInfo, BinaryInfo, ExternallyDefinedInfo
// or InfoOID.
type Information interface {
	isInformation()
}

type CharacterInfo string
type BinaryInfo []byte
type ExternallyDefinedInfo struct{ *asn1.External }
type InfoOID ber.OID

func (CharacterInfo) isInformation()         {}
func (BinaryInfo) isInformation()            {}
func (ExternallyDefinedInfo) isInformation() {}
func (InfoOID) isInformation()               {}

type InfoCategory struct {
	CategoryTypeID ber.OID
	CategoryValue  int64
}

var (
	otherInformationUnitCodec = asn1.Seq[OtherInformationUnit]("OtherInformationUnit")
	otherInformationCodec     = asn1.Implicit(201, asn1.SequenceOf[OtherInformation](otherInformationUnitCodec))
	infoCategoryCodec         = asn1.Seq[InfoCategory]("InfoCategory")

	informationCodec = asn1.Choice("information",
		asn1.Alt[Information]("characterInfo", asn1.Implicit(2, asn1.GeneralString[CharacterInfo]())),
		asn1.Alt[Information]("binaryInfo", asn1.Implicit(3, asn1.Octets[BinaryInfo]())),
		asn1.Alt[Information]("externallyDefinedInfo", asn1.Implicit(4, external[ExternallyDefinedInfo]())),
		asn1.Alt[Information]("oid", asn1.Implicit(5, asn1.ObjectID[InfoOID]())),
	)
)

func (u *OtherInformationUnit) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptPtr("category", &u.Category, asn1.Implicit(1, infoCategoryCodec)),
		asn1.Req("information", &u.Information, informationCodec),
	}
}

func (c *InfoCategory) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("categoryTypeId", &c.CategoryTypeID, asn1.Implicit(1, asn1.ObjectIdentifier)),
		asn1.Req("categoryValue", &c.CategoryValue, asn1.Implicit(2, asn1.Integer)),
	}
}

func (o OtherInformation) String() string {
	return asn1.Sprint(otherInformationCodec, o)
}

// IntUnit is a quantity with its unit.
type IntUnit struct {
	Value    int64
	UnitUsed *Unit
}

// Unit names a unit of measure, e.g. unitSystem "iso", unitType "time",
// unit "seconds".
type Unit struct {
	UnitSystem  optional.Optional[string]
	UnitType    StringOrNumeric
	Unit        StringOrNumeric
	ScaleFactor optional.Optional[int64]
}

// StringOrNumeric is StringValue or NumericValue.
type StringOrNumeric interface {
	isStringOrNumeric()
}

type StringValue string
type NumericValue int64

func (StringValue) isStringOrNumeric()  {}
func (NumericValue) isStringOrNumeric() {}

var (
	intUnitCodec = asn1.Seq[IntUnit]("IntUnit")
	unitCodec    = asn1.Seq[Unit]("Unit")

	stringOrNumericCodec = asn1.Choice("StringOrNumeric",
		asn1.Alt[StringOrNumeric]("string", asn1.Implicit(1, asn1.GeneralString[StringValue]())),
		asn1.Alt[StringOrNumeric]("numeric", asn1.Implicit(2, asn1.Int[NumericValue](nil))),
	)
)

func (u *IntUnit) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("value", &u.Value, asn1.Implicit(1, asn1.Integer)),
		asn1.Req("unitUsed", &u.UnitUsed, asn1.Implicit(2, unitCodec)),
	}
}

func (u *Unit) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Opt("unitSystem", &u.UnitSystem, asn1.Explicit(1, asn1.InternationalString)),
		asn1.OptChoice("unitType", &u.UnitType, asn1.Explicit(2, stringOrNumericCodec)),
		asn1.OptChoice("unit", &u.Unit, asn1.Explicit(3, stringOrNumericCodec)),
		asn1.Opt("scaleFactor", &u.ScaleFactor, asn1.Implicit(4, asn1.Integer)),
	}
}

func (u *IntUnit) String() string {
	return asn1.Sprint(intUnitCodec, u)
}

func (u *Unit) String() string {
	return asn1.Sprint(unitCodec, u)
}

// external adapts EXTERNAL to a wrapper type, so that the same EXTERNAL
// value can serve as an alternative of several CHOICEs.
func external[T ~struct{ *asn1.External }]() asn1.Codec[T] {
	return asn1.Transform(asn1.ExternalCodec,
		func(e *asn1.External) T { return T{e} },
		func(v T) *asn1.External { return struct{ *asn1.External }(v).External })
}

// enumCodec is the INTEGER codec of a type with named numbers.
func enumCodec[T ~int64](m map[T]string) asn1.Codec[T] {
	return asn1.Int(m)
}
