package z3950

import (
	"github.com/opencatalog/z3950/std/asn1"
	"github.com/opencatalog/z3950/std/types/optional"
)

// DuplicateDetectionRequest clusters or removes duplicate records across
// result sets.
type DuplicateDetectionRequest struct {
	ReferenceID                ReferenceID
	InputResultSetIDs          []string
	OutputResultSetName        string
	ApplicablePortionOfRecord  *asn1.External
	DuplicateDetectionCriteria []DuplicateDetectionCriterion
	Clustering                 optional.Optional[bool]
	RetentionCriteria          []RetentionCriterion
	SortCriteria               []SortCriterion
	OtherInfo                  OtherInformation
}

// DuplicateDetectionCriterion is LevelOfMatch, CaseSensitiveMatch,
// PunctuationSensitiveMatch, RegularExpression or RsDuplicates.
type DuplicateDetectionCriterion interface {
	isDuplicateDetectionCriterion()
}

type LevelOfMatch int64
type CaseSensitiveMatch struct{}
type PunctuationSensitiveMatch struct{}
type RegularExpression struct{ *asn1.External }
type RsDuplicates struct{}

func (LevelOfMatch) isDuplicateDetectionCriterion()              {}
func (CaseSensitiveMatch) isDuplicateDetectionCriterion()        {}
func (PunctuationSensitiveMatch) isDuplicateDetectionCriterion() {}
func (RegularExpression) isDuplicateDetectionCriterion()         {}
func (RsDuplicates) isDuplicateDetectionCriterion()              {}

// RetentionCriterion is NumberOfEntries, PercentOfEntries, DuplicatesOnly
// or DiscardRsDuplicates.
type RetentionCriterion interface {
	isRetentionCriterion()
}

type NumberOfEntries int64
type PercentOfEntries int64
type DuplicatesOnly struct{}
type DiscardRsDuplicates struct{}

func (NumberOfEntries) isRetentionCriterion()     {}
func (PercentOfEntries) isRetentionCriterion()    {}
func (DuplicatesOnly) isRetentionCriterion()      {}
func (DiscardRsDuplicates) isRetentionCriterion() {}

// SortCriterion picks the record retained from a cluster of duplicates.
type SortCriterion interface {
	isSortCriterion()
}

type MostComprehensive struct{}
type LeastComprehensive struct{}
type MostRecent struct{}
type Oldest struct{}
type LeastCost struct{}
type PreferredDatabases []string

func (MostComprehensive) isSortCriterion()  {}
func (LeastComprehensive) isSortCriterion() {}
func (MostRecent) isSortCriterion()         {}
func (Oldest) isSortCriterion()             {}
func (LeastCost) isSortCriterion()          {}
func (PreferredDatabases) isSortCriterion() {}

type DuplicateDetectionResponse struct {
	ReferenceID    ReferenceID
	Status         DuplicateDetectionStatus
	ResultSetCount optional.Optional[int64]
	Diagnostics    []DiagRec
	OtherInfo      OtherInformation
}

type DuplicateDetectionStatus int64

const (
	DuplicateDetectionSuccess DuplicateDetectionStatus = 0
	DuplicateDetectionFailure DuplicateDetectionStatus = 1
)

var duplicateDetectionStatusNames = map[DuplicateDetectionStatus]string{
	DuplicateDetectionSuccess: "success",
	DuplicateDetectionFailure: "failure",
}

var (
	duplicateDetectionRequestCodec  = asn1.Seq[DuplicateDetectionRequest]("DuplicateDetectionRequest")
	duplicateDetectionResponseCodec = asn1.Seq[DuplicateDetectionResponse]("DuplicateDetectionResponse")

	duplicateDetectionCriterionCodec = asn1.Choice("DuplicateDetectionCriterion",
		asn1.Alt[DuplicateDetectionCriterion]("levelOfMatch", asn1.Implicit(1, asn1.Int[LevelOfMatch](nil))),
		asn1.Alt[DuplicateDetectionCriterion]("caseSensitive", asn1.Implicit(2, asn1.NullOf[CaseSensitiveMatch]())),
		asn1.Alt[DuplicateDetectionCriterion]("punctuationSensitive", asn1.Implicit(3, asn1.NullOf[PunctuationSensitiveMatch]())),
		asn1.Alt[DuplicateDetectionCriterion]("regularExpression", asn1.Implicit(4, external[RegularExpression]())),
		asn1.Alt[DuplicateDetectionCriterion]("rsDuplicates", asn1.Implicit(5, asn1.NullOf[RsDuplicates]())),
	)

	retentionCriterionCodec = asn1.Choice("RetentionCriterion",
		asn1.Alt[RetentionCriterion]("numberOfEntries", asn1.Implicit(1, asn1.Int[NumberOfEntries](nil))),
		asn1.Alt[RetentionCriterion]("percentOfEntries", asn1.Implicit(2, asn1.Int[PercentOfEntries](nil))),
		asn1.Alt[RetentionCriterion]("duplicatesOnly", asn1.Implicit(3, asn1.NullOf[DuplicatesOnly]())),
		asn1.Alt[RetentionCriterion]("discardRsDuplicates", asn1.Implicit(4, asn1.NullOf[DiscardRsDuplicates]())),
	)

	sortCriterionCodec = asn1.Choice("SortCriterion",
		asn1.Alt[SortCriterion]("mostComprehensive", asn1.Implicit(1, asn1.NullOf[MostComprehensive]())),
		asn1.Alt[SortCriterion]("leastConmprehensive", asn1.Implicit(2, asn1.NullOf[LeastComprehensive]())),
		asn1.Alt[SortCriterion]("mostRecent", asn1.Implicit(3, asn1.NullOf[MostRecent]())),
		asn1.Alt[SortCriterion]("oldest", asn1.Implicit(4, asn1.NullOf[Oldest]())),
		asn1.Alt[SortCriterion]("leastCost", asn1.Implicit(5, asn1.NullOf[LeastCost]())),
		asn1.Alt[SortCriterion]("preferredDatabases", asn1.Implicit(6, asn1.SequenceOf[PreferredDatabases](asn1.InternationalString))),
	)
)

func (r *DuplicateDetectionRequest) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &r.ReferenceID, referenceIDCodec),
		asn1.Req("inputResultSetIds", &r.InputResultSetIDs, asn1.Implicit(3, stringsCodec)),
		asn1.Req("outputResultSetName", &r.OutputResultSetName, asn1.Implicit(4, asn1.InternationalString)),
		asn1.OptPtr("applicablePortionOfRecord", &r.ApplicablePortionOfRecord, asn1.Implicit(5, asn1.ExternalCodec)),
		asn1.OptSlice("duplicateDetectionCriteria", &r.DuplicateDetectionCriteria,
			asn1.Implicit(6, asn1.SequenceOf[[]DuplicateDetectionCriterion](duplicateDetectionCriterionCodec))),
		asn1.Opt("clustering", &r.Clustering, asn1.Implicit(7, asn1.Boolean)),
		asn1.Req("retentionCriteria", &r.RetentionCriteria,
			asn1.Implicit(8, asn1.SequenceOf[[]RetentionCriterion](retentionCriterionCodec))),
		asn1.OptSlice("sortCriteria", &r.SortCriteria,
			asn1.Implicit(9, asn1.SequenceOf[[]SortCriterion](sortCriterionCodec))),
		asn1.OptSlice("otherInfo", &r.OtherInfo, otherInformationCodec),
	}
}

func (r *DuplicateDetectionResponse) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &r.ReferenceID, referenceIDCodec),
		asn1.Req("status", &r.Status, asn1.Implicit(3, enumCodec(duplicateDetectionStatusNames))),
		asn1.Opt("resultSetCount", &r.ResultSetCount, asn1.Implicit(4, asn1.Integer)),
		asn1.OptSlice("diagnostics", &r.Diagnostics, asn1.Implicit(5, diagRecsCodec)),
		asn1.OptSlice("otherInfo", &r.OtherInfo, otherInformationCodec),
	}
}

func (r *DuplicateDetectionRequest) String() string {
	return asn1.Sprint(duplicateDetectionRequestCodec, r)
}

func (r *DuplicateDetectionResponse) String() string {
	return asn1.Sprint(duplicateDetectionResponseCodec, r)
}
