package z3950

import (
	"github.com/opencatalog/z3950/std/asn1"
	"github.com/opencatalog/z3950/std/ber"
	"github.com/opencatalog/z3950/std/types/optional"
)

// PresentRequest retrieves records from a result set.
type PresentRequest struct {
	ReferenceID              ReferenceID
	ResultSetID              string
	ResultSetStartPoint      int64
	NumberOfRecordsRequested int64
	AdditionalRanges         []*Range
	RecordComposition        RecordComposition
	PreferredRecordSyntax    ber.OID
	MaxSegmentCount          optional.Optional[int64]
	MaxRecordSize            optional.Optional[int64]
	MaxSegmentSize           optional.Optional[int64]
	OtherInfo                OtherInformation
}

// RecordComposition is SimpleComposition or *CompSpec.
type RecordComposition interface {
	isRecordComposition()
}

type SimpleComposition struct {
	ElementSetNames ElementSetNames
}

func (SimpleComposition) isRecordComposition() {}
func (*CompSpec) isRecordComposition()         {}

// Segment carries part of the records of a segmented present response.
type Segment struct {
	ReferenceID             ReferenceID
	NumberOfRecordsReturned int64
	SegmentRecords          []*NamePlusRecord
	OtherInfo               OtherInformation
}

type PresentResponse struct {
	ReferenceID             ReferenceID
	NumberOfRecordsReturned int64
	NextResultSetPosition   int64
	PresentStatus           PresentStatus
	Records                 Records
	OtherInfo               OtherInformation
}

type PresentStatus int64

const (
	PresentSuccess  PresentStatus = 0
	PresentPartial1 PresentStatus = 1
	PresentPartial2 PresentStatus = 2
	PresentPartial3 PresentStatus = 3
	PresentPartial4 PresentStatus = 4
	PresentFailure  PresentStatus = 5
)

var presentStatusNames = map[PresentStatus]string{
	PresentSuccess:  "success",
	PresentPartial1: "partial-1",
	PresentPartial2: "partial-2",
	PresentPartial3: "partial-3",
	PresentPartial4: "partial-4",
	PresentFailure:  "failure",
}

// Records is ResponseRecords, NonSurrogateDiagnostic or
// MultipleNonSurDiagnostics.
type Records interface {
	isRecords()
}

type ResponseRecords []*NamePlusRecord

type NonSurrogateDiagnostic struct{ *DefaultDiagFormat }

type MultipleNonSurDiagnostics []DiagRec

func (ResponseRecords) isRecords()           {}
func (NonSurrogateDiagnostic) isRecords()    {}
func (MultipleNonSurDiagnostics) isRecords() {}

// NamePlusRecord is one retrieved record or the diagnostic that replaced it.
type NamePlusRecord struct {
	Name   optional.Optional[string]
	Record Record
}

// Record is RetrievalRecord, SurrogateDiagnostic, StartingFragment,
// IntermediateFragment or FinalFragment.
type Record interface {
	isRecord()
}

type RetrievalRecord struct{ *asn1.External }

type SurrogateDiagnostic struct {
	Diagnostic DiagRec
}

type StartingFragment struct {
	Fragment FragmentSyntax
}

type IntermediateFragment struct {
	Fragment FragmentSyntax
}

type FinalFragment struct {
	Fragment FragmentSyntax
}

func (RetrievalRecord) isRecord()      {}
func (SurrogateDiagnostic) isRecord()  {}
func (StartingFragment) isRecord()     {}
func (IntermediateFragment) isRecord() {}
func (FinalFragment) isRecord()        {}

// FragmentSyntax is ExternallyTaggedFragment or NotExternallyTaggedFragment.
type FragmentSyntax interface {
	isFragmentSyntax()
}

type ExternallyTaggedFragment struct{ *asn1.External }
type NotExternallyTaggedFragment []byte

func (ExternallyTaggedFragment) isFragmentSyntax()    {}
func (NotExternallyTaggedFragment) isFragmentSyntax() {}

// DiagRec is *DefaultDiagFormat or ExternalDiagnostic.
type DiagRec interface {
	isDiagRec()
}

// DefaultDiagFormat is a diagnostic condition from a diagnostic set,
// normally bib-1, with optional additional information.
type DefaultDiagFormat struct {
	DiagnosticSetID ber.OID
	Condition       int64
	AddInfo         AddInfo
}

type ExternalDiagnostic struct{ *asn1.External }

func (*DefaultDiagFormat) isDiagRec() {}
func (ExternalDiagnostic) isDiagRec() {}

// AddInfo is V2AddInfo or V3AddInfo.
type AddInfo interface {
	isAddInfo()
}

type V2AddInfo string
type V3AddInfo string

func (V2AddInfo) isAddInfo() {}
func (V3AddInfo) isAddInfo() {}

type Range struct {
	StartingPosition int64
	NumberOfRecords  int64
}

// ElementSetNames is GenericElementSetName or DatabaseSpecificElementSetNames.
type ElementSetNames interface {
	isElementSetNames()
}

type GenericElementSetName string

type DatabaseSpecificElementSetNames []*DatabaseSpecificElementSetName

type DatabaseSpecificElementSetName struct {
	DBName string
	ESN    string
}

func (GenericElementSetName) isElementSetNames()           {}
func (DatabaseSpecificElementSetNames) isElementSetNames() {}

// CompSpec is a record composition specification, naming schemas and
// element specifications generically or per database.
type CompSpec struct {
	SelectAlternativeSyntax bool
	Generic                 *Specification
	DBSpecific              []*DbSpecific
	RecordSyntax            []ber.OID
}

type DbSpecific struct {
	DB   string
	Spec *Specification
}

type Specification struct {
	Schema      SpecificationSchema
	ElementSpec ElementSpec
}

// SpecificationSchema is SchemaOID or SchemaURI.
type SpecificationSchema interface {
	isSpecificationSchema()
}

type SchemaOID ber.OID
type SchemaURI string

func (SchemaOID) isSpecificationSchema() {}
func (SchemaURI) isSpecificationSchema() {}

// ElementSpec is ElementSetNameSpec or ExternalEspec.
type ElementSpec interface {
	isElementSpec()
}

type ElementSetNameSpec string
type ExternalEspec struct{ *asn1.External }

func (ElementSetNameSpec) isElementSpec() {}
func (ExternalEspec) isElementSpec()      {}

var (
	presentRequestCodec                 = asn1.Seq[PresentRequest]("PresentRequest")
	presentResponseCodec                = asn1.Seq[PresentResponse]("PresentResponse")
	segmentCodec                        = asn1.Seq[Segment]("Segment")
	namePlusRecordCodec                 = asn1.Seq[NamePlusRecord]("NamePlusRecord")
	namePlusRecordsCodec                = asn1.SequenceOf[[]*NamePlusRecord](namePlusRecordCodec)
	defaultDiagFormatCodec              = asn1.Seq[DefaultDiagFormat]("DefaultDiagFormat")
	rangeCodec                          = asn1.Seq[Range]("Range")
	databaseSpecificElementSetNameCodec = asn1.Seq[DatabaseSpecificElementSetName]("DatabaseSpecificElementSetName")
	compSpecCodec                       = asn1.Seq[CompSpec]("CompSpec")
	dbSpecificCodec                     = asn1.Seq[DbSpecific]("DbSpecific")
	specificationCodec                  = asn1.Seq[Specification]("Specification")
	numberOfRecordsReturnedCodec        = asn1.Implicit(24, asn1.Integer)
	nextResultSetPositionCodec          = asn1.Implicit(25, asn1.Integer)

	recordCompositionCodec = asn1.Choice("recordComposition",
		asn1.Alt[RecordComposition]("simple", asn1.Explicit(19, asn1.Transform(elementSetNamesCodec,
			func(e ElementSetNames) SimpleComposition { return SimpleComposition{ElementSetNames: e} },
			func(s SimpleComposition) ElementSetNames { return s.ElementSetNames }))),
		asn1.Alt[RecordComposition]("complex", asn1.Implicit(209, compSpecCodec)),
	)

	diagRecCodec = asn1.Choice("DiagRec",
		asn1.Alt[DiagRec]("defaultFormat", defaultDiagFormatCodec),
		asn1.Alt[DiagRec]("externallyDefined", external[ExternalDiagnostic]()),
	)
	diagRecsCodec = asn1.SequenceOf[[]DiagRec](diagRecCodec)

	recordsCodec = asn1.Choice("Records",
		asn1.Alt[Records]("responseRecords", asn1.Implicit(28, asn1.SequenceOf[ResponseRecords](namePlusRecordCodec))),
		asn1.Alt[Records]("nonSurrogateDiagnostic", asn1.Implicit(130, asn1.Transform(defaultDiagFormatCodec,
			func(d *DefaultDiagFormat) NonSurrogateDiagnostic { return NonSurrogateDiagnostic{d} },
			func(d NonSurrogateDiagnostic) *DefaultDiagFormat { return d.DefaultDiagFormat }))),
		asn1.Alt[Records]("multipleNonSurDiagnostics", asn1.Implicit(205, asn1.SequenceOf[MultipleNonSurDiagnostics](diagRecCodec))),
	)

	fragmentSyntaxCodec = asn1.Choice("FragmentSyntax",
		asn1.Alt[FragmentSyntax]("externallyTagged", external[ExternallyTaggedFragment]()),
		asn1.Alt[FragmentSyntax]("notExternallyTagged", asn1.Octets[NotExternallyTaggedFragment]()),
	)

	recordCodec = asn1.Choice("record",
		asn1.Alt[Record]("retrievalRecord", asn1.Explicit(1, external[RetrievalRecord]())),
		asn1.Alt[Record]("surrogateDiagnostic", asn1.Explicit(2, asn1.Transform(diagRecCodec,
			func(d DiagRec) SurrogateDiagnostic { return SurrogateDiagnostic{Diagnostic: d} },
			func(s SurrogateDiagnostic) DiagRec { return s.Diagnostic }))),
		asn1.Alt[Record]("startingFragment", asn1.Explicit(3, asn1.Transform(fragmentSyntaxCodec,
			func(f FragmentSyntax) StartingFragment { return StartingFragment{Fragment: f} },
			func(s StartingFragment) FragmentSyntax { return s.Fragment }))),
		asn1.Alt[Record]("intermediateFragment", asn1.Explicit(4, asn1.Transform(fragmentSyntaxCodec,
			func(f FragmentSyntax) IntermediateFragment { return IntermediateFragment{Fragment: f} },
			func(s IntermediateFragment) FragmentSyntax { return s.Fragment }))),
		asn1.Alt[Record]("finalFragment", asn1.Explicit(5, asn1.Transform(fragmentSyntaxCodec,
			func(f FragmentSyntax) FinalFragment { return FinalFragment{Fragment: f} },
			func(s FinalFragment) FragmentSyntax { return s.Fragment }))),
	)

	addInfoCodec = asn1.Choice("addinfo",
		asn1.Alt[AddInfo]("v2Addinfo", asn1.Visible[V2AddInfo]()),
		asn1.Alt[AddInfo]("v3Addinfo", asn1.GeneralString[V3AddInfo]()),
	)

	elementSetNamesCodec = asn1.Choice("ElementSetNames",
		asn1.Alt[ElementSetNames]("genericElementSetName", asn1.Implicit(0, asn1.GeneralString[GenericElementSetName]())),
		asn1.Alt[ElementSetNames]("databaseSpecific", asn1.Implicit(1,
			asn1.SequenceOf[DatabaseSpecificElementSetNames](databaseSpecificElementSetNameCodec))),
	)

	specificationSchemaCodec = asn1.Choice("schema",
		asn1.Alt[SpecificationSchema]("oid", asn1.Implicit(1, asn1.ObjectID[SchemaOID]())),
		asn1.Alt[SpecificationSchema]("uri", asn1.Implicit(300, asn1.GeneralString[SchemaURI]())),
	)

	elementSpecCodec = asn1.Choice("elementSpec",
		asn1.Alt[ElementSpec]("elementSetName", asn1.Implicit(1, asn1.GeneralString[ElementSetNameSpec]())),
		asn1.Alt[ElementSpec]("externalEspec", asn1.Implicit(2, external[ExternalEspec]())),
	)
)

func (r *PresentRequest) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &r.ReferenceID, referenceIDCodec),
		asn1.Req("resultSetId", &r.ResultSetID, resultSetIDCodec),
		asn1.Req("resultSetStartPoint", &r.ResultSetStartPoint, asn1.Implicit(30, asn1.Integer)),
		asn1.Req("numberOfRecordsRequested", &r.NumberOfRecordsRequested, asn1.Implicit(29, asn1.Integer)),
		asn1.OptSlice("additionalRanges", &r.AdditionalRanges, asn1.Implicit(212, asn1.SequenceOf[[]*Range](rangeCodec))),
		asn1.OptChoice("recordComposition", &r.RecordComposition, recordCompositionCodec),
		asn1.OptSlice("preferredRecordSyntax", &r.PreferredRecordSyntax, asn1.Implicit(104, asn1.ObjectIdentifier)),
		asn1.Opt("maxSegmentCount", &r.MaxSegmentCount, asn1.Implicit(204, asn1.Integer)),
		asn1.Opt("maxRecordSize", &r.MaxRecordSize, asn1.Implicit(206, asn1.Integer)),
		asn1.Opt("maxSegmentSize", &r.MaxSegmentSize, asn1.Implicit(207, asn1.Integer)),
		asn1.OptSlice("otherInfo", &r.OtherInfo, otherInformationCodec),
	}
}

func (s *Segment) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &s.ReferenceID, referenceIDCodec),
		asn1.Req("numberOfRecordsReturned", &s.NumberOfRecordsReturned, numberOfRecordsReturnedCodec),
		asn1.Req("segmentRecords", &s.SegmentRecords, asn1.Implicit(0, namePlusRecordsCodec)),
		asn1.OptSlice("otherInfo", &s.OtherInfo, otherInformationCodec),
	}
}

func (r *PresentResponse) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptSlice("referenceId", &r.ReferenceID, referenceIDCodec),
		asn1.Req("numberOfRecordsReturned", &r.NumberOfRecordsReturned, numberOfRecordsReturnedCodec),
		asn1.Req("nextResultSetPosition", &r.NextResultSetPosition, nextResultSetPositionCodec),
		asn1.Req("presentStatus", &r.PresentStatus, presentStatusCodec),
		asn1.OptChoice("records", &r.Records, recordsCodec),
		asn1.OptSlice("otherInfo", &r.OtherInfo, otherInformationCodec),
	}
}

func (r *NamePlusRecord) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Opt("name", &r.Name, asn1.Implicit(0, databaseNameCodec)),
		asn1.Req("record", &r.Record, asn1.Explicit(1, recordCodec)),
	}
}

func (d *DefaultDiagFormat) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("diagnosticSetId", &d.DiagnosticSetID, asn1.ObjectIdentifier),
		asn1.Req("condition", &d.Condition, asn1.Integer),
		asn1.Req("addinfo", &d.AddInfo, addInfoCodec),
	}
}

func (r *Range) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("startingPosition", &r.StartingPosition, asn1.Implicit(1, asn1.Integer)),
		asn1.Req("numberOfRecords", &r.NumberOfRecords, asn1.Implicit(2, asn1.Integer)),
	}
}

func (d *DatabaseSpecificElementSetName) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("dbName", &d.DBName, databaseNameCodec),
		asn1.Req("esn", &d.ESN, elementSetNameCodec),
	}
}

func (c *CompSpec) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("selectAlternativeSyntax", &c.SelectAlternativeSyntax, asn1.Implicit(1, asn1.Boolean)),
		asn1.OptPtr("generic", &c.Generic, asn1.Implicit(2, specificationCodec)),
		asn1.OptSlice("dbSpecific", &c.DBSpecific, asn1.Implicit(3, asn1.SequenceOf[[]*DbSpecific](dbSpecificCodec))),
		asn1.OptSlice("recordSyntax", &c.RecordSyntax, asn1.Implicit(4, oidsCodec)),
	}
}

func (d *DbSpecific) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("db", &d.DB, asn1.Explicit(1, databaseNameCodec)),
		asn1.Req("spec", &d.Spec, asn1.Implicit(2, specificationCodec)),
	}
}

func (s *Specification) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptChoice("schema", &s.Schema, specificationSchemaCodec),
		asn1.OptChoice("elementSpec", &s.ElementSpec, asn1.Explicit(2, elementSpecCodec)),
	}
}

func (r *PresentRequest) String() string {
	return asn1.Sprint(presentRequestCodec, r)
}

func (r *PresentResponse) String() string {
	return asn1.Sprint(presentResponseCodec, r)
}

func (s *Segment) String() string {
	return asn1.Sprint(segmentCodec, s)
}

func (r *NamePlusRecord) String() string {
	return asn1.Sprint(namePlusRecordCodec, r)
}

func (d *DefaultDiagFormat) String() string {
	return asn1.Sprint(defaultDiagFormatCodec, d)
}

func (s *Specification) String() string {
	return asn1.Sprint(specificationCodec, s)
}
