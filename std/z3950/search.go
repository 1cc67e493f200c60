package z3950

import (
	"github.com/opencatalog/z3950/std/asn1"
	"github.com/opencatalog/z3950/std/ber"
	"github.com/opencatalog/z3950/std/types/optional"
)

// SearchRequest evaluates a query against one or more databases and
// stores the hits in a named result set.
type SearchRequest struct {
	ReferenceID              ReferenceID
	SmallSetUpperBound       int64
	LargeSetLowerBound       int64
	MediumSetPresentNumber   int64
	ReplaceIndicator         bool
	ResultSetName            string
	DatabaseNames            []string
	SmallSetElementSetNames  ElementSetNames
	MediumSetElementSetNames ElementSetNames
	PreferredRecordSyntax    ber.OID
	Query                    Query
	AdditionalSearchInfo     OtherInformation
	OtherInfo                OtherInformation
}

// SearchResponse reports the hit count and, for small result sets, the
// records themselves.
type SearchResponse struct {
	ReferenceID             ReferenceID
	ResultCount             int64
	NumberOfRecordsReturned int64
	NextResultSetPosition   int64
	SearchStatus            bool
	ResultSetStatus         optional.Optional[ResultSetStatus]
	PresentStatus           optional.Optional[PresentStatus]
	Records                 Records
	AdditionalSearchInfo    OtherInformation
	OtherInfo               OtherInformation
}

type ResultSetStatus int64

const (
	ResultSetSubset  ResultSetStatus = 1
	ResultSetInterim ResultSetStatus = 2
	ResultSetNone    ResultSetStatus = 3
)

var resultSetStatusNames = map[ResultSetStatus]string{
	ResultSetSubset:  "subset",
	ResultSetInterim: "interim",
	ResultSetNone:    "none",
}

// Query is one of Type0Query, *RPNQuery, CCLQuery, Z3958Query,
// Type101Query, RankedListQuery or ExternalQuery.
type Query interface {
	isQuery()
}

// Type0Query is a query in a form private to origin and target.
type Type0Query struct {
	Value *ber.Node
}

// CCLQuery is an ISO 8777 query.
type CCLQuery []byte

// Z3958Query is a Z39.58 query.
type Z3958Query []byte

// Type101Query is an RPN query in the extended form of version 3.
type Type101Query struct{ *RPNQuery }

type RankedListQuery []byte

// ExternalQuery carries a query of an externally defined type, such as CQL.
type ExternalQuery struct{ *asn1.External }

func (Type0Query) isQuery()      {}
func (*RPNQuery) isQuery()       {}
func (CCLQuery) isQuery()        {}
func (Z3958Query) isQuery()      {}
func (Type101Query) isQuery()    {}
func (RankedListQuery) isQuery() {}
func (ExternalQuery) isQuery()   {}

// RPNQuery is a query in Reverse Polish Notation.
type RPNQuery struct {
	AttributeSet ber.OID
	RPN          RPNStructure
}

// RPNStructure is a query tree: an RPNOperand leaf or an *RpnRpnOp node.
type RPNStructure interface {
	isRPNStructure()
}

type RPNOperand struct {
	Operand Operand
}

// RpnRpnOp combines two subtrees with an operator.
type RpnRpnOp struct {
	RPN1 RPNStructure
	RPN2 RPNStructure
	Op   Operator
}

func (RPNOperand) isRPNStructure() {}
func (*RpnRpnOp) isRPNStructure()  {}

// Operand is one of *AttributesPlusTerm, ResultSetOperand or
// *ResultSetPlusAttributes.
type Operand interface {
	isOperand()
}

// AttributesPlusTerm is a search term qualified by attributes.
type AttributesPlusTerm struct {
	Attributes AttributeList
	Term       Term
}

// ResultSetOperand refers to an existing result set by name.
type ResultSetOperand string

type ResultSetPlusAttributes struct {
	ResultSet  string
	Attributes AttributeList
}

func (*AttributesPlusTerm) isOperand()      {}
func (ResultSetOperand) isOperand()         {}
func (*ResultSetPlusAttributes) isOperand() {}

type AttributeList []*AttributeElement

// AttributeElement is one (type, value) pair, e.g. use attribute 4 (title).
type AttributeElement struct {
	AttributeSet   ber.OID
	AttributeType  int64
	AttributeValue AttributeValue
}

// AttributeValue is NumericAttribute or *ComplexAttribute.
type AttributeValue interface {
	isAttributeValue()
}

type NumericAttribute int64

type ComplexAttribute struct {
	List           []StringOrNumeric
	SemanticAction []int64
}

func (NumericAttribute) isAttributeValue()  {}
func (*ComplexAttribute) isAttributeValue() {}

// Term is one of GeneralTerm, NumericTerm, CharacterStringTerm, OIDTerm,
// DateTimeTerm, ExternalTerm, *IntUnit or NullTerm.
type Term interface {
	isTerm()
}

type GeneralTerm []byte
type NumericTerm int64
type CharacterStringTerm string
type OIDTerm ber.OID
type DateTimeTerm ber.GeneralizedTime
type ExternalTerm struct{ *asn1.External }
type NullTerm struct{}

func (GeneralTerm) isTerm()         {}
func (NumericTerm) isTerm()         {}
func (CharacterStringTerm) isTerm() {}
func (OIDTerm) isTerm()             {}
func (DateTimeTerm) isTerm()        {}
func (ExternalTerm) isTerm()        {}
func (*IntUnit) isTerm()            {}
func (NullTerm) isTerm()            {}

// Operator is AndOperator, OrOperator, AndNotOperator or *ProximityOperator.
type Operator interface {
	isOperator()
}

type AndOperator struct{}
type OrOperator struct{}
type AndNotOperator struct{}

type ProximityOperator struct {
	Exclusion         optional.Optional[bool]
	Distance          int64
	Ordered           bool
	RelationType      RelationType
	ProximityUnitCode ProximityUnitCode
}

func (AndOperator) isOperator()        {}
func (OrOperator) isOperator()         {}
func (AndNotOperator) isOperator()     {}
func (*ProximityOperator) isOperator() {}

type RelationType int64

const (
	RelationLessThan           RelationType = 1
	RelationLessThanOrEqual    RelationType = 2
	RelationEqual              RelationType = 3
	RelationGreaterThanOrEqual RelationType = 4
	RelationGreaterThan        RelationType = 5
	RelationNotEqual           RelationType = 6
)

var relationTypeNames = map[RelationType]string{
	RelationLessThan:           "lessThan",
	RelationLessThanOrEqual:    "lessThanOrEqual",
	RelationEqual:              "equal",
	RelationGreaterThanOrEqual: "greaterThanOrEqual",
	RelationGreaterThan:        "greaterThan",
	RelationNotEqual:           "notEqual",
}

// ProximityUnitCode is KnownProximityUnit or PrivateProximityUnit.
type ProximityUnitCode interface {
	isProximityUnitCode()
}

type KnownProximityUnit int64
type PrivateProximityUnit int64

func (KnownProximityUnit) isProximityUnitCode()   {}
func (PrivateProximityUnit) isProximityUnitCode() {}

const (
	UnitCharacter   KnownProximityUnit = 1
	UnitWord        KnownProximityUnit = 2
	UnitSentence    KnownProximityUnit = 3
	UnitParagraph   KnownProximityUnit = 4
	UnitSection     KnownProximityUnit = 5
	UnitChapter     KnownProximityUnit = 6
	UnitDocument    KnownProximityUnit = 7
	UnitElement     KnownProximityUnit = 8
	UnitSubelement  KnownProximityUnit = 9
	UnitElementType KnownProximityUnit = 10
	UnitByte        KnownProximityUnit = 11
)

var knownProximityUnitNames = map[KnownProximityUnit]string{
	UnitCharacter:   "character",
	UnitWord:        "word",
	UnitSentence:    "sentence",
	UnitParagraph:   "paragraph",
	UnitSection:     "section",
	UnitChapter:     "chapter",
	UnitDocument:    "document",
	UnitElement:     "element",
	UnitSubelement:  "subelement",
	UnitElementType: "elementType",
	UnitByte:        "byte",
}

var (
	searchRequestCodec           = asn1.Seq[SearchRequest]("SearchRequest")
	searchResponseCodec          = asn1.Seq[SearchResponse]("SearchResponse")
	rpnQueryCodec                = asn1.Seq[RPNQuery]("RPNQuery")
	rpnRpnOpCodec                = asn1.Seq[RpnRpnOp]("RpnRpnOp")
	attributesPlusTermCodec      = asn1.Implicit(102, asn1.Seq[AttributesPlusTerm]("AttributesPlusTerm"))
	resultSetPlusAttributesCodec = asn1.Implicit(214, asn1.Seq[ResultSetPlusAttributes]("ResultSetPlusAttributes"))
	attributeElementCodec        = asn1.Seq[AttributeElement]("AttributeElement")
	attributeListCodec           = asn1.Implicit(44, asn1.SequenceOf[AttributeList](attributeElementCodec))
	complexAttributeCodec        = asn1.Seq[ComplexAttribute]("ComplexAttribute")
	proximityOperatorCodec       = asn1.Seq[ProximityOperator]("ProximityOperator")
	presentStatusCodec           = asn1.Implicit(27, enumCodec(presentStatusNames))

	queryCodec = asn1.Choice("Query",
		asn1.Alt[Query]("type-0", asn1.Explicit(0, asn1.Transform(asn1.Any,
			func(n *ber.Node) Type0Query { return Type0Query{Value: n} },
			func(q Type0Query) *ber.Node { return q.Value }))),
		asn1.Alt[Query]("type-1", asn1.Implicit(1, rpnQueryCodec)),
		asn1.Alt[Query]("type-2", asn1.Explicit(2, asn1.Octets[CCLQuery]())),
		asn1.Alt[Query]("type-100", asn1.Explicit(100, asn1.Octets[Z3958Query]())),
		asn1.Alt[Query]("type-101", asn1.Implicit(101, asn1.Transform(rpnQueryCodec,
			func(q *RPNQuery) Type101Query { return Type101Query{q} },
			func(q Type101Query) *RPNQuery { return q.RPNQuery }))),
		asn1.Alt[Query]("type-102", asn1.Explicit(102, asn1.Octets[RankedListQuery]())),
		asn1.Alt[Query]("type-104", asn1.Implicit(104, external[ExternalQuery]())),
	)

	operandCodec = asn1.Choice("Operand",
		asn1.Alt[Operand]("attrTerm", attributesPlusTermCodec),
		asn1.Alt[Operand]("resultSet", asn1.Implicit(31, asn1.GeneralString[ResultSetOperand]())),
		asn1.Alt[Operand]("resultAttr", resultSetPlusAttributesCodec),
	)

	attributeValueCodec = asn1.Choice("attributeValue",
		asn1.Alt[AttributeValue]("numeric", asn1.Implicit(121, asn1.Int[NumericAttribute](nil))),
		asn1.Alt[AttributeValue]("complex", asn1.Implicit(224, complexAttributeCodec)),
	)

	termCodec = asn1.Choice("Term",
		asn1.Alt[Term]("general", asn1.Implicit(45, asn1.Octets[GeneralTerm]())),
		asn1.Alt[Term]("numeric", asn1.Implicit(215, asn1.Int[NumericTerm](nil))),
		asn1.Alt[Term]("characterString", asn1.Implicit(216, asn1.GeneralString[CharacterStringTerm]())),
		asn1.Alt[Term]("oid", asn1.Implicit(217, asn1.ObjectID[OIDTerm]())),
		asn1.Alt[Term]("dateTime", asn1.Implicit(218, asn1.Time[DateTimeTerm]())),
		asn1.Alt[Term]("external", asn1.Implicit(219, external[ExternalTerm]())),
		asn1.Alt[Term]("integerAndUnit", asn1.Implicit(220, intUnitCodec)),
		asn1.Alt[Term]("null", asn1.Implicit(221, asn1.NullOf[NullTerm]())),
	)

	operatorCodec = asn1.Explicit(46, asn1.Choice("Operator",
		asn1.Alt[Operator]("and", asn1.Implicit(0, asn1.NullOf[AndOperator]())),
		asn1.Alt[Operator]("or", asn1.Implicit(1, asn1.NullOf[OrOperator]())),
		asn1.Alt[Operator]("and-not", asn1.Implicit(2, asn1.NullOf[AndNotOperator]())),
		asn1.Alt[Operator]("prox", asn1.Implicit(3, proximityOperatorCodec)),
	))

	proximityUnitCodeCodec = asn1.Choice("ProximityUnitCode",
		asn1.Alt[ProximityUnitCode]("known", asn1.Implicit(1, enumCodec(knownProximityUnitNames))),
		asn1.Alt[ProximityUnitCode]("private", asn1.Implicit(2, asn1.Int[PrivateProximityUnit](nil))),
	)
)

// rpnStructureCodec refers to itself through RpnRpnOp.
var rpnStructureCodec asn1.Codec[RPNStructure]

func init() {
	rpnStructureCodec = asn1.Choice("RPNStructure",
		asn1.Alt[RPNStructure]("op", asn1.Explicit(0, asn1.Transform(operandCodec,
			func(o Operand) RPNOperand { return RPNOperand{Operand: o} },
			func(o RPNOperand) Operand { return o.Operand }))),
		asn1.Alt[RPNStructure]("rpnRpnOp", asn1.Implicit(1, rpnRpnOpCodec)),
	)
}

func (r *SearchRequest) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &r.ReferenceID, referenceIDCodec),
		asn1.Req("smallSetUpperBound", &r.SmallSetUpperBound, asn1.Implicit(13, asn1.Integer)),
		asn1.Req("largeSetLowerBound", &r.LargeSetLowerBound, asn1.Implicit(14, asn1.Integer)),
		asn1.Req("mediumSetPresentNumber", &r.MediumSetPresentNumber, asn1.Implicit(15, asn1.Integer)),
		asn1.Req("replaceIndicator", &r.ReplaceIndicator, asn1.Implicit(16, asn1.Boolean)),
		asn1.Req("resultSetName", &r.ResultSetName, asn1.Implicit(17, asn1.InternationalString)),
		asn1.Req("databaseNames", &r.DatabaseNames, asn1.Implicit(18, databaseNamesCodec)),
		asn1.OptChoice("smallSetElementSetNames", &r.SmallSetElementSetNames, asn1.Explicit(100, elementSetNamesCodec)),
		asn1.OptChoice("mediumSetElementSetNames", &r.MediumSetElementSetNames, asn1.Explicit(101, elementSetNamesCodec)),
		asn1.OptSlice("preferredRecordSyntax", &r.PreferredRecordSyntax, asn1.Implicit(104, asn1.ObjectIdentifier)),
		asn1.Req("query", &r.Query, asn1.Explicit(21, queryCodec)),
		asn1.OptSlice("additionalSearchInfo", &r.AdditionalSearchInfo, asn1.Implicit(203, otherInformationCodec)),
		asn1.OptSlice("otherInfo", &r.OtherInfo, otherInformationCodec),
	}
}

func (r *SearchResponse) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &r.ReferenceID, referenceIDCodec),
		asn1.Req("resultCount", &r.ResultCount, asn1.Implicit(23, asn1.Integer)),
		asn1.Req("numberOfRecordsReturned", &r.NumberOfRecordsReturned, numberOfRecordsReturnedCodec),
		asn1.Req("nextResultSetPosition", &r.NextResultSetPosition, nextResultSetPositionCodec),
		asn1.Req("searchStatus", &r.SearchStatus, asn1.Implicit(22, asn1.Boolean)),
		asn1.Opt("resultSetStatus", &r.ResultSetStatus, asn1.Implicit(26, enumCodec(resultSetStatusNames))),
		asn1.Opt("presentStatus", &r.PresentStatus, presentStatusCodec),
		asn1.OptChoice("records", &r.Records, recordsCodec),
		asn1.OptSlice("additionalSearchInfo", &r.AdditionalSearchInfo, asn1.Implicit(203, otherInformationCodec)),
		asn1.OptSlice("otherInfo", &r.OtherInfo, otherInformationCodec),
	}
}

func (q *RPNQuery) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("attributeSet", &q.AttributeSet, asn1.ObjectIdentifier),
		asn1.Req("rpn", &q.RPN, rpnStructureCodec),
	}
}

func (o *RpnRpnOp) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("rpn1", &o.RPN1, rpnStructureCodec),
		asn1.Req("rpn2", &o.RPN2, rpnStructureCodec),
		asn1.Req("op", &o.Op, operatorCodec),
	}
}

func (a *AttributesPlusTerm) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("attributes", &a.Attributes, attributeListCodec),
		asn1.Req("term", &a.Term, termCodec),
	}
}

func (r *ResultSetPlusAttributes) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("resultSet", &r.ResultSet, resultSetIDCodec),
		asn1.Req("attributes", &r.Attributes, attributeListCodec),
	}
}

func (e *AttributeElement) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("attributeSet", &e.AttributeSet, asn1.Implicit(1, asn1.ObjectIdentifier)),
		asn1.Req("attributeType", &e.AttributeType, asn1.Implicit(120, asn1.Integer)),
		asn1.Req("attributeValue", &e.AttributeValue, attributeValueCodec),
	}
}

func (c *ComplexAttribute) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("list", &c.List, asn1.Implicit(1, asn1.SequenceOf[[]StringOrNumeric](stringOrNumericCodec))),
		asn1.OptSlice("semanticAction", &c.SemanticAction, asn1.Implicit(2, integersCodec)),
	}
}

func (p *ProximityOperator) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Opt("exclusion", &p.Exclusion, asn1.Implicit(1, asn1.Boolean)),
		asn1.Req("distance", &p.Distance, asn1.Implicit(2, asn1.Integer)),
		asn1.Req("ordered", &p.Ordered, asn1.Implicit(3, asn1.Boolean)),
		asn1.Req("relationType", &p.RelationType, asn1.Implicit(4, enumCodec(relationTypeNames))),
		asn1.Req("proximityUnitCode", &p.ProximityUnitCode, asn1.Explicit(5, proximityUnitCodeCodec)),
	}
}

func (r *SearchRequest) String() string {
	return asn1.Sprint(searchRequestCodec, r)
}

func (r *SearchResponse) String() string {
	return asn1.Sprint(searchResponseCodec, r)
}

func (q *RPNQuery) String() string {
	return asn1.Sprint(rpnQueryCodec, q)
}

func (a *AttributesPlusTerm) String() string {
	return asn1.Sprint(attributesPlusTermCodec, a)
}
