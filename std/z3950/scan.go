package z3950

import (
	"github.com/opencatalog/z3950/std/asn1"
	"github.com/opencatalog/z3950/std/ber"
	"github.com/opencatalog/z3950/std/types/optional"
)

// ScanRequest browses the term list of an index around a start term.
type ScanRequest struct {
	ReferenceID                 ReferenceID
	DatabaseNames               []string
	AttributeSet                ber.OID
	TermListAndStartPoint       *AttributesPlusTerm
	StepSize                    optional.Optional[int64]
	NumberOfTermsRequested      int64
	PreferredPositionInResponse optional.Optional[int64]
	OtherInfo                   OtherInformation
}

type ScanResponse struct {
	ReferenceID             ReferenceID
	StepSize                optional.Optional[int64]
	ScanStatus              ScanStatus
	NumberOfEntriesReturned int64
	PositionOfTerm          optional.Optional[int64]
	Entries                 *ListEntries
	AttributeSet            ber.OID
	OtherInfo               OtherInformation
}

type ScanStatus int64

const (
	ScanSuccess  ScanStatus = 0
	ScanPartial1 ScanStatus = 1
	ScanPartial2 ScanStatus = 2
	ScanPartial3 ScanStatus = 3
	ScanPartial4 ScanStatus = 4
	ScanPartial5 ScanStatus = 5
	ScanFailure  ScanStatus = 6
)

var scanStatusNames = map[ScanStatus]string{
	ScanSuccess:  "success",
	ScanPartial1: "partial-1",
	ScanPartial2: "partial-2",
	ScanPartial3: "partial-3",
	ScanPartial4: "partial-4",
	ScanPartial5: "partial-5",
	ScanFailure:  "failure",
}

type ListEntries struct {
	Entries                 []Entry
	NonsurrogateDiagnostics []DiagRec
}

// Entry is *TermInfo or EntryDiagnostic.
type Entry interface {
	isEntry()
}

type EntryDiagnostic struct {
	Diagnostic DiagRec
}

func (*TermInfo) isEntry()       {}
func (EntryDiagnostic) isEntry() {}

// TermInfo describes one term of a scan list.
type TermInfo struct {
	Term                Term
	DisplayTerm         optional.Optional[string]
	SuggestedAttributes AttributeList
	AlternativeTerm     []*AttributesPlusTerm
	GlobalOccurrences   optional.Optional[int64]
	ByAttributes        []*OccurrenceElement
	OtherTermInfo       OtherInformation
}

// OccurrenceElement counts the occurrences of a term under one attribute
// combination.
type OccurrenceElement struct {
	Attributes     AttributeList
	Occurrences    Occurrences
	OtherOccurInfo OtherInformation
}

// Occurrences is GlobalOccurrences or ByDatabase.
type Occurrences interface {
	isOccurrences()
}

type GlobalOccurrences int64

type ByDatabase []*DatabaseOccurrences

type DatabaseOccurrences struct {
	DB          string
	Num         optional.Optional[int64]
	OtherDbInfo OtherInformation
}

func (GlobalOccurrences) isOccurrences() {}
func (ByDatabase) isOccurrences()        {}

var (
	scanRequestCodec         = asn1.Seq[ScanRequest]("ScanRequest")
	scanResponseCodec        = asn1.Seq[ScanResponse]("ScanResponse")
	listEntriesCodec         = asn1.Seq[ListEntries]("ListEntries")
	termInfoCodec            = asn1.Seq[TermInfo]("TermInfo")
	occurrenceElementCodec   = asn1.Seq[OccurrenceElement]("OccurrenceElement")
	databaseOccurrencesCodec = asn1.Seq[DatabaseOccurrences]("DatabaseOccurrences")

	entryCodec = asn1.Choice("Entry",
		asn1.Alt[Entry]("termInfo", asn1.Implicit(1, termInfoCodec)),
		asn1.Alt[Entry]("surrogateDiagnostic", asn1.Explicit(2, asn1.Transform(diagRecCodec,
			func(d DiagRec) EntryDiagnostic { return EntryDiagnostic{Diagnostic: d} },
			func(e EntryDiagnostic) DiagRec { return e.Diagnostic }))),
	)

	occurrencesCodec = asn1.Choice("occurrences",
		asn1.Alt[Occurrences]("global", asn1.Explicit(2, asn1.Int[GlobalOccurrences](nil))),
		asn1.Alt[Occurrences]("byDatabase", asn1.Implicit(3, asn1.SequenceOf[ByDatabase](databaseOccurrencesCodec))),
	)
)

func (r *ScanRequest) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &r.ReferenceID, referenceIDCodec),
		asn1.Req("databaseNames", &r.DatabaseNames, asn1.Implicit(3, databaseNamesCodec)),
		asn1.OptSlice("attributeSet", &r.AttributeSet, asn1.ObjectIdentifier),
		asn1.Req("termListAndStartPoint", &r.TermListAndStartPoint, attributesPlusTermCodec),
		asn1.Opt("stepSize", &r.StepSize, asn1.Implicit(5, asn1.Integer)),
		asn1.Req("numberOfTermsRequested", &r.NumberOfTermsRequested, asn1.Implicit(6, asn1.Integer)),
		asn1.Opt("preferredPositionInResponse", &r.PreferredPositionInResponse, asn1.Implicit(7, asn1.Integer)),
		asn1.OptSlice("otherInfo", &r.OtherInfo, otherInformationCodec),
	}
}

func (r *ScanResponse) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &r.ReferenceID, referenceIDCodec),
		asn1.Opt("stepSize", &r.StepSize, asn1.Implicit(3, asn1.Integer)),
		asn1.Req("scanStatus", &r.ScanStatus, asn1.Implicit(4, enumCodec(scanStatusNames))),
		asn1.Req("numberOfEntriesReturned", &r.NumberOfEntriesReturned, asn1.Implicit(5, asn1.Integer)),
		asn1.Opt("positionOfTerm", &r.PositionOfTerm, asn1.Implicit(6, asn1.Integer)),
		asn1.OptPtr("entries", &r.Entries, asn1.Implicit(7, listEntriesCodec)),
		asn1.OptSlice("attributeSet", &r.AttributeSet, asn1.Implicit(8, asn1.ObjectIdentifier)),
		asn1.OptSlice("otherInfo", &r.OtherInfo, otherInformationCodec),
	}
}

func (l *ListEntries) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("entries", &l.Entries, asn1.Implicit(1, asn1.SequenceOf[[]Entry](entryCodec))),
		asn1.OptSlice("nonsurrogateDiagnostics", &l.NonsurrogateDiagnostics, asn1.Implicit(2, diagRecsCodec)),
	}
}

func (t *TermInfo) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("term", &t.Term, termCodec),
		asn1.Opt("displayTerm", &t.DisplayTerm, asn1.Implicit(0, asn1.InternationalString)),
		asn1.OptSlice("suggestedAttributes", &t.SuggestedAttributes, attributeListCodec),
		asn1.OptSlice("alternativeTerm", &t.AlternativeTerm,
			asn1.Implicit(4, asn1.SequenceOf[[]*AttributesPlusTerm](attributesPlusTermCodec))),
		asn1.Opt("globalOccurrences", &t.GlobalOccurrences, asn1.Implicit(2, asn1.Integer)),
		asn1.OptSlice("byAttributes", &t.ByAttributes,
			asn1.Implicit(3, asn1.SequenceOf[[]*OccurrenceElement](occurrenceElementCodec))),
		asn1.OptSlice("otherTermInfo", &t.OtherTermInfo, otherInformationCodec),
	}
}

func (o *OccurrenceElement) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("attributes", &o.Attributes, asn1.Explicit(1, attributeListCodec)),
		asn1.OptChoice("occurrences", &o.Occurrences, occurrencesCodec),
		asn1.OptSlice("otherOccurInfo", &o.OtherOccurInfo, otherInformationCodec),
	}
}

func (d *DatabaseOccurrences) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("db", &d.DB, databaseNameCodec),
		asn1.Opt("num", &d.Num, asn1.Implicit(1, asn1.Integer)),
		asn1.OptSlice("otherDbInfo", &d.OtherDbInfo, otherInformationCodec),
	}
}

func (r *ScanRequest) String() string {
	return asn1.Sprint(scanRequestCodec, r)
}

func (r *ScanResponse) String() string {
	return asn1.Sprint(scanResponseCodec, r)
}

func (t *TermInfo) String() string {
	return asn1.Sprint(termInfoCodec, t)
}
