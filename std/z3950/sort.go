package z3950

import (
	"github.com/opencatalog/z3950/std/asn1"
	"github.com/opencatalog/z3950/std/ber"
	"github.com/opencatalog/z3950/std/types/optional"
)

// SortRequest sorts one or more result sets into a new one.
type SortRequest struct {
	ReferenceID         ReferenceID
	InputResultSetNames []string
	SortedResultSetName string
	SortSequence        []*SortKeySpec
	OtherInfo           OtherInformation
}

type SortResponse struct {
	ReferenceID     ReferenceID
	SortStatus      SortStatus
	ResultSetStatus optional.Optional[SortResultSetStatus]
	Diagnostics     []DiagRec
	ResultCount     optional.Optional[int64]
	OtherInfo       OtherInformation
}

type SortStatus int64

const (
	SortSuccess  SortStatus = 0
	SortPartial1 SortStatus = 1
	SortFailure  SortStatus = 2
)

var sortStatusNames = map[SortStatus]string{
	SortSuccess:  "success",
	SortPartial1: "partial-1",
	SortFailure:  "failure",
}

type SortResultSetStatus int64

const (
	SortResultSetEmpty     SortResultSetStatus = 1
	SortResultSetInterim   SortResultSetStatus = 2
	SortResultSetUnchanged SortResultSetStatus = 3
	SortResultSetNone      SortResultSetStatus = 4
)

var sortResultSetStatusNames = map[SortResultSetStatus]string{
	SortResultSetEmpty:     "empty",
	SortResultSetInterim:   "interim",
	SortResultSetUnchanged: "unchanged",
	SortResultSetNone:      "none",
}

// SortKeySpec is one key of a sort sequence, most significant first.
type SortKeySpec struct {
	SortElement        SortElement
	SortRelation       SortRelation
	CaseSensitivity    CaseSensitivity
	MissingValueAction MissingValueAction
}

type SortRelation int64

const (
	SortAscending             SortRelation = 0
	SortDescending            SortRelation = 1
	SortAscendingByFrequency  SortRelation = 3
	SortDescendingByFrequency SortRelation = 4
)

var sortRelationNames = map[SortRelation]string{
	SortAscending:             "ascending",
	SortDescending:            "descending",
	SortAscendingByFrequency:  "ascendingByFrequency",
	SortDescendingByFrequency: "descendingByfrequency",
}

type CaseSensitivity int64

const (
	CaseSensitive   CaseSensitivity = 0
	CaseInsensitive CaseSensitivity = 1
)

var caseSensitivityNames = map[CaseSensitivity]string{
	CaseSensitive:   "caseSensitive",
	CaseInsensitive: "caseInsensitive",
}

// MissingValueAction is MissingValueAbort, MissingValueNull or
// MissingValueData.
type MissingValueAction interface {
	isMissingValueAction()
}

type MissingValueAbort struct{}
type MissingValueNull struct{}
type MissingValueData []byte

func (MissingValueAbort) isMissingValueAction() {}
func (MissingValueNull) isMissingValueAction()  {}
func (MissingValueData) isMissingValueAction()  {}

// SortElement is GenericSortKey or DatabaseSpecificSortKeys.
type SortElement interface {
	isSortElement()
}

type GenericSortKey struct {
	Key SortKey
}

type DatabaseSpecificSortKeys []*DatabaseSpecificSortKey

type DatabaseSpecificSortKey struct {
	DatabaseName string
	DBSort       SortKey
}

func (GenericSortKey) isSortElement()           {}
func (DatabaseSpecificSortKeys) isSortElement() {}

// SortKey is SortField, *Specification or *SortAttributes.
type SortKey interface {
	isSortKey()
}

type SortField string

type SortAttributes struct {
	ID   ber.OID
	List AttributeList
}

func (SortField) isSortKey()       {}
func (*Specification) isSortKey()  {}
func (*SortAttributes) isSortKey() {}

var (
	sortRequestCodec             = asn1.Seq[SortRequest]("SortRequest")
	sortResponseCodec            = asn1.Seq[SortResponse]("SortResponse")
	sortKeySpecCodec             = asn1.Seq[SortKeySpec]("SortKeySpec")
	databaseSpecificSortKeyCodec = asn1.Seq[DatabaseSpecificSortKey]("DatabaseSpecificSortKey")
	sortAttributesCodec          = asn1.Seq[SortAttributes]("SortAttributes")

	missingValueActionCodec = asn1.Choice("missingValueAction",
		asn1.Alt[MissingValueAction]("abort", asn1.Implicit(1, asn1.NullOf[MissingValueAbort]())),
		asn1.Alt[MissingValueAction]("null", asn1.Implicit(2, asn1.NullOf[MissingValueNull]())),
		asn1.Alt[MissingValueAction]("missingValueData", asn1.Implicit(3, asn1.Octets[MissingValueData]())),
	)

	sortKeyCodec = asn1.Choice("SortKey",
		asn1.Alt[SortKey]("sortfield", asn1.Implicit(0, asn1.GeneralString[SortField]())),
		asn1.Alt[SortKey]("elementSpec", asn1.Implicit(1, specificationCodec)),
		asn1.Alt[SortKey]("sortAttributes", asn1.Implicit(2, sortAttributesCodec)),
	)

	sortElementCodec = asn1.Choice("SortElement",
		asn1.Alt[SortElement]("generic", asn1.Explicit(1, asn1.Transform(sortKeyCodec,
			func(k SortKey) GenericSortKey { return GenericSortKey{Key: k} },
			func(g GenericSortKey) SortKey { return g.Key }))),
		asn1.Alt[SortElement]("datbaseSpecific", asn1.Implicit(2,
			asn1.SequenceOf[DatabaseSpecificSortKeys](databaseSpecificSortKeyCodec))),
	)
)

func (r *SortRequest) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &r.ReferenceID, referenceIDCodec),
		asn1.Req("inputResultSetNames", &r.InputResultSetNames, asn1.Implicit(3, stringsCodec)),
		asn1.Req("sortedResultSetName", &r.SortedResultSetName, asn1.Implicit(4, asn1.InternationalString)),
		asn1.Req("sortSequence", &r.SortSequence, asn1.Implicit(5, asn1.SequenceOf[[]*SortKeySpec](sortKeySpecCodec))),
		asn1.OptSlice("otherInfo", &r.OtherInfo, otherInformationCodec),
	}
}

func (r *SortResponse) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &r.ReferenceID, referenceIDCodec),
		asn1.Req("sortStatus", &r.SortStatus, asn1.Implicit(3, enumCodec(sortStatusNames))),
		asn1.Opt("resultSetStatus", &r.ResultSetStatus, asn1.Implicit(4, enumCodec(sortResultSetStatusNames))),
		asn1.OptSlice("diagnostics", &r.Diagnostics, asn1.Implicit(5, diagRecsCodec)),
		asn1.Opt("resultCount", &r.ResultCount, asn1.Implicit(6, asn1.Integer)),
		asn1.OptSlice("otherInfo", &r.OtherInfo, otherInformationCodec),
	}
}

func (s *SortKeySpec) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("sortElement", &s.SortElement, sortElementCodec),
		asn1.Req("sortRelation", &s.SortRelation, asn1.Implicit(1, enumCodec(sortRelationNames))),
		asn1.Req("caseSensitivity", &s.CaseSensitivity, asn1.Implicit(2, enumCodec(caseSensitivityNames))),
		asn1.OptChoice("missingValueAction", &s.MissingValueAction, asn1.Explicit(3, missingValueActionCodec)),
	}
}

func (k *DatabaseSpecificSortKey) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("databaseName", &k.DatabaseName, databaseNameCodec),
		asn1.Req("dbSort", &k.DBSort, sortKeyCodec),
	}
}

func (a *SortAttributes) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("id", &a.ID, asn1.ObjectIdentifier),
		asn1.Req("list", &a.List, attributeListCodec),
	}
}

func (r *SortRequest) String() string {
	return asn1.Sprint(sortRequestCodec, r)
}

func (r *SortResponse) String() string {
	return asn1.Sprint(sortResponseCodec, r)
}

func (s *SortKeySpec) String() string {
	return asn1.Sprint(sortKeySpecCodec, s)
}
