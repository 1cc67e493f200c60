package z3950

import (
	"github.com/opencatalog/z3950/std/asn1"
	"github.com/opencatalog/z3950/std/ber"
	"github.com/opencatalog/z3950/std/types/optional"
)

// GenericRecord is a GRS-1 record: a tree of tagged elements.
type GenericRecord []*TaggedElement

type TaggedElement struct {
	TagType        optional.Optional[int64]
	TagValue       StringOrNumeric
	TagOccurrence  optional.Optional[int64]
	Content        ElementData
	MetaData       *ElementMetaData
	AppliedVariant *Variant
}

// ElementData is the content of a tagged element. The untagged
// alternatives are ElementOctets, ElementNumeric, ElementDate, ElementExt,
// ElementString, ElementBool and ElementOID; the tagged ones are *IntUnit,
// ElementNotThere, ElementEmpty, NoDataRequested, ElementDiagnostic and
// ElementSubtree.
type ElementData interface {
	isElementData()
}

type (
	ElementOctets     []byte
	ElementNumeric    int64
	ElementDate       string
	ElementExt        struct{ *asn1.External }
	ElementString     string
	ElementBool       bool
	ElementOID        ber.OID
	ElementNotThere   struct{}
	ElementEmpty      struct{}
	NoDataRequested   struct{}
	ElementDiagnostic struct{ *asn1.External }
	ElementSubtree    []*TaggedElement
)

func (ElementOctets) isElementData()     {}
func (ElementNumeric) isElementData()    {}
func (ElementDate) isElementData()       {}
func (ElementExt) isElementData()        {}
func (ElementString) isElementData()     {}
func (ElementBool) isElementData()       {}
func (ElementOID) isElementData()        {}
func (*IntUnit) isElementData()          {}
func (ElementNotThere) isElementData()   {}
func (ElementEmpty) isElementData()      {}
func (NoDataRequested) isElementData()   {}
func (ElementDiagnostic) isElementData() {}
func (ElementSubtree) isElementData()    {}

type ElementMetaData struct {
	SeriesOrder       *Order
	UsageRight        *Usage
	Hits              []*HitVector
	DisplayName       optional.Optional[string]
	SupportedVariants []*Variant
	Message           optional.Optional[string]
	ElementDescriptor []byte
	SurrogateFor      TagPath
	SurrogateElement  TagPath
	Other             *asn1.External
}

type TagPath []*TagPathElement

type TagPathElement struct {
	TagType       optional.Optional[int64]
	TagValue      StringOrNumeric
	TagOccurrence optional.Optional[int64]
}

type Order struct {
	Ascending bool
	Order     int64
}

type Usage struct {
	Type        UsageType
	Restriction optional.Optional[string]
}

type UsageType int64

const (
	UsageRedistributable UsageType = 1
	UsageRestricted      UsageType = 2
	UsageLicensePointer  UsageType = 3
)

var usageTypeNames = map[UsageType]string{
	UsageRedistributable: "redistributable",
	UsageRestricted:      "restricted",
	UsageLicensePointer:  "licensePointer",
}

// HitVector locates a search hit inside an element.
type HitVector struct {
	Satisfier         Term
	OffsetIntoElement *IntUnit
	Length            *IntUnit
	HitRank           optional.Optional[int64]
	TargetToken       []byte
}

type Variant struct {
	GlobalVariantSetID ber.OID
	Triples            []*VariantTriple
}

type VariantTriple struct {
	VariantSetID ber.OID
	Class        int64
	Type         int64
	Value        VariantValue
}

// VariantValue is VariantInteger, VariantString, VariantOctets, VariantOID,
// VariantBool, VariantNull, *Unit or *IntUnit.
type VariantValue interface {
	isVariantValue()
}

type (
	VariantInteger int64
	VariantString  string
	VariantOctets  []byte
	VariantOID     ber.OID
	VariantBool    bool
	VariantNull    struct{}
)

func (VariantInteger) isVariantValue() {}
func (VariantString) isVariantValue()  {}
func (VariantOctets) isVariantValue()  {}
func (VariantOID) isVariantValue()     {}
func (VariantBool) isVariantValue()    {}
func (VariantNull) isVariantValue()    {}
func (*Unit) isVariantValue()          {}
func (*IntUnit) isVariantValue()       {}

var (
	taggedElementCodec   = asn1.Seq[TaggedElement]("TaggedElement")
	genericRecordCodec   = asn1.SequenceOf[GenericRecord](taggedElementCodec)
	elementMetaDataCodec = asn1.Seq[ElementMetaData]("ElementMetaData")
	tagPathCodec         = asn1.SequenceOf[TagPath](asn1.Seq[TagPathElement]("TagPathElement"))
	orderCodec           = asn1.Seq[Order]("Order")
	usageCodec           = asn1.Seq[Usage]("Usage")
	hitVectorCodec       = asn1.Seq[HitVector]("HitVector")
	variantCodec         = asn1.Seq[Variant]("Variant")
	variantTripleCodec   = asn1.Seq[VariantTriple]("VariantTriple")

	variantValueCodec = asn1.Choice("value",
		asn1.Alt[VariantValue]("integer", asn1.Int[VariantInteger](nil)),
		asn1.Alt[VariantValue]("internationalString", asn1.GeneralString[VariantString]()),
		asn1.Alt[VariantValue]("octetString", asn1.Octets[VariantOctets]()),
		asn1.Alt[VariantValue]("objectIdentifier", asn1.ObjectID[VariantOID]()),
		asn1.Alt[VariantValue]("boolean", asn1.Bool[VariantBool]()),
		asn1.Alt[VariantValue]("null", asn1.NullOf[VariantNull]()),
		asn1.Alt[VariantValue]("unit", asn1.Implicit(1, unitCodec)),
		asn1.Alt[VariantValue]("valueAndUnit", asn1.Implicit(2, intUnitCodec)),
	)
)

// elementDataCodec refers to itself through ElementSubtree.
var elementDataCodec asn1.Codec[ElementData]

func init() {
	elementDataCodec = asn1.Choice("ElementData",
		asn1.Alt[ElementData]("octets", asn1.Octets[ElementOctets]()),
		asn1.Alt[ElementData]("numeric", asn1.Int[ElementNumeric](nil)),
		asn1.Alt[ElementData]("date", asn1.Time[ElementDate]()),
		asn1.Alt[ElementData]("ext", external[ElementExt]()),
		asn1.Alt[ElementData]("string", asn1.GeneralString[ElementString]()),
		asn1.Alt[ElementData]("trueOrFalse", asn1.Bool[ElementBool]()),
		asn1.Alt[ElementData]("oid", asn1.ObjectID[ElementOID]()),
		asn1.Alt[ElementData]("intUnit", asn1.Implicit(1, intUnitCodec)),
		asn1.Alt[ElementData]("elementNotThere", asn1.Implicit(2, asn1.NullOf[ElementNotThere]())),
		asn1.Alt[ElementData]("elementEmpty", asn1.Implicit(3, asn1.NullOf[ElementEmpty]())),
		asn1.Alt[ElementData]("noDataRequested", asn1.Implicit(4, asn1.NullOf[NoDataRequested]())),
		asn1.Alt[ElementData]("diagnostic", asn1.Implicit(5, external[ElementDiagnostic]())),
		asn1.Alt[ElementData]("subtree", asn1.Explicit(6, asn1.SequenceOf[ElementSubtree](taggedElementCodec))),
	)
}

func (e *TaggedElement) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Opt("tagType", &e.TagType, asn1.Implicit(1, asn1.Integer)),
		asn1.Req("tagValue", &e.TagValue, asn1.Explicit(2, stringOrNumericCodec)),
		asn1.Opt("tagOccurrence", &e.TagOccurrence, asn1.Implicit(3, asn1.Integer)),
		asn1.Req("content", &e.Content, asn1.Explicit(4, elementDataCodec)),
		asn1.OptPtr("metaData", &e.MetaData, asn1.Implicit(5, elementMetaDataCodec)),
		asn1.OptPtr("appliedVariant", &e.AppliedVariant, asn1.Implicit(6, variantCodec)),
	}
}

func (m *ElementMetaData) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptPtr("seriesOrder", &m.SeriesOrder, asn1.Implicit(1, orderCodec)),
		asn1.OptPtr("usageRight", &m.UsageRight, asn1.Implicit(2, usageCodec)),
		asn1.OptSlice("hits", &m.Hits, asn1.Implicit(3, asn1.SequenceOf[[]*HitVector](hitVectorCodec))),
		asn1.Opt("displayName", &m.DisplayName, asn1.Implicit(4, asn1.InternationalString)),
		asn1.OptSlice("supportedVariants", &m.SupportedVariants, asn1.Implicit(5, asn1.SequenceOf[[]*Variant](variantCodec))),
		asn1.Opt("message", &m.Message, asn1.Implicit(6, asn1.InternationalString)),
		asn1.OptSlice("elementDescriptor", &m.ElementDescriptor, asn1.Implicit(7, asn1.OctetString)),
		asn1.OptSlice("surrogateFor", &m.SurrogateFor, asn1.Implicit(8, tagPathCodec)),
		asn1.OptSlice("surrogateElement", &m.SurrogateElement, asn1.Implicit(9, tagPathCodec)),
		asn1.OptPtr("other", &m.Other, asn1.Implicit(99, asn1.ExternalCodec)),
	}
}

func (e *TagPathElement) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Opt("tagType", &e.TagType, asn1.Implicit(1, asn1.Integer)),
		asn1.Req("tagValue", &e.TagValue, asn1.Explicit(2, stringOrNumericCodec)),
		asn1.Opt("tagOccurrence", &e.TagOccurrence, asn1.Implicit(3, asn1.Integer)),
	}
}

func (o *Order) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("ascending", &o.Ascending, asn1.Implicit(1, asn1.Boolean)),
		asn1.Req("order", &o.Order, asn1.Implicit(2, asn1.Integer)),
	}
}

func (u *Usage) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("type", &u.Type, asn1.Implicit(1, enumCodec(usageTypeNames))),
		asn1.Opt("restriction", &u.Restriction, asn1.Implicit(2, asn1.InternationalString)),
	}
}

func (h *HitVector) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptChoice("satisfier", &h.Satisfier, termCodec),
		asn1.OptPtr("offsetIntoElement", &h.OffsetIntoElement, asn1.Implicit(1, intUnitCodec)),
		asn1.OptPtr("length", &h.Length, asn1.Implicit(2, intUnitCodec)),
		asn1.Opt("hitRank", &h.HitRank, asn1.Implicit(3, asn1.Integer)),
		asn1.OptSlice("targetToken", &h.TargetToken, asn1.Implicit(4, asn1.OctetString)),
	}
}

func (v *Variant) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("globalVariantSetId", &v.GlobalVariantSetID, asn1.Implicit(1, asn1.ObjectIdentifier)),
		asn1.OptSlice("triples", &v.Triples, asn1.Implicit(2, asn1.SequenceOf[[]*VariantTriple](variantTripleCodec))),
	}
}

func (t *VariantTriple) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("variantSetId", &t.VariantSetID, asn1.Implicit(0, asn1.ObjectIdentifier)),
		asn1.Req("class", &t.Class, asn1.Implicit(1, asn1.Integer)),
		asn1.Req("type", &t.Type, asn1.Implicit(2, asn1.Integer)),
		asn1.Req("value", &t.Value, asn1.Explicit(3, variantValueCodec)),
	}
}

func (r GenericRecord) String() string {
	return asn1.Sprint(genericRecordCodec, r)
}

func (e *TaggedElement) String() string {
	return asn1.Sprint(taggedElementCodec, e)
}
