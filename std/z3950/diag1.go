package z3950

import (
	"github.com/opencatalog/z3950/std/asn1"
	"github.com/opencatalog/z3950/std/ber"
	"github.com/opencatalog/z3950/std/types/optional"
)

// DiagnosticFormat is the diag-1 diagnostic record, carried in an EXTERNAL
// identified by DiagSetDiag1.
type DiagnosticFormat []*DiagnosticEntry

type DiagnosticEntry struct {
	Diagnostic DiagnosticChoice
	Message    optional.Optional[string]
}

// DiagnosticChoice is DefaultDiagRec or ExplicitDiagnostic.
type DiagnosticChoice interface {
	isDiagnosticChoice()
}

type DefaultDiagRec struct{ *DefaultDiagFormat }

type ExplicitDiagnostic struct {
	Diagnostic DiagFormat
}

func (DefaultDiagRec) isDiagnosticChoice()     {}
func (ExplicitDiagnostic) isDiagnosticChoice() {}

// DiagFormat is one of the condition-specific diagnostics of diag-1.
// Proximity, scan and sort diagnostics are kept as their encoded CHOICE
// value.
type DiagFormat interface {
	isDiagFormat()
}

type TooMany struct {
	TooManyWhat TooManyWhat
	Max         optional.Optional[int64]
}

type TooManyWhat int64

const (
	TooManyArgumentWords       TooManyWhat = 1
	TooManyTruncatedWords      TooManyWhat = 2
	TooManyBooleanOperators    TooManyWhat = 3
	TooManyIncompleteSubfields TooManyWhat = 4
	TooManyCharacters          TooManyWhat = 5
	TooManyRecordsRetrieved    TooManyWhat = 6
	TooManyDataBasesSpecified  TooManyWhat = 7
	TooManyResultSetsCreated   TooManyWhat = 8
	TooManyIndexTermsProcessed TooManyWhat = 9
)

var tooManyWhatNames = map[TooManyWhat]string{
	TooManyArgumentWords:       "argumentWords",
	TooManyTruncatedWords:      "truncatedWords",
	TooManyBooleanOperators:    "booleanOperators",
	TooManyIncompleteSubfields: "incompleteSubfields",
	TooManyCharacters:          "characters",
	TooManyRecordsRetrieved:    "recordsRetrieved",
	TooManyDataBasesSpecified:  "dataBasesSpecified",
	TooManyResultSetsCreated:   "resultSetsCreated",
	TooManyIndexTermsProcessed: "indexTermsProcessed",
}

type BadSpec struct {
	Spec     *Specification
	DB       optional.Optional[string]
	GoodOnes []*Specification
}

type DbUnavail struct {
	DB  string
	Why *DbUnavailWhy
}

type DbUnavailWhy struct {
	ReasonCode optional.Optional[DbUnavailReason]
	Message    optional.Optional[string]
}

type DbUnavailReason int64

const (
	DbDoesNotExist     DbUnavailReason = 0
	DbExistsButUnavail DbUnavailReason = 1
	DbLocked           DbUnavailReason = 2
	DbAccessDenied     DbUnavailReason = 3
)

var dbUnavailReasonNames = map[DbUnavailReason]string{
	DbDoesNotExist:     "doesNotExist",
	DbExistsButUnavail: "existsButUnavail",
	DbLocked:           "locked",
	DbAccessDenied:     "accessDenied",
}

type UnSupOp int64

const (
	UnSupAnd    UnSupOp = 0
	UnSupOr     UnSupOp = 1
	UnSupAndNot UnSupOp = 2
	UnSupProx   UnSupOp = 3
)

var unSupOpNames = map[UnSupOp]string{
	UnSupAnd:    "and",
	UnSupOr:     "or",
	UnSupAndNot: "and-not",
	UnSupProx:   "prox",
}

type AttributeDiag struct {
	ID    ber.OID
	Type  optional.Optional[int64]
	Value optional.Optional[int64]
	Term  Term
}

type AttCombo struct {
	UnsupportedCombination  AttributeList
	RecommendedAlternatives []AttributeList
}

type TermDiag struct {
	Problem optional.Optional[TermProblem]
	Term    Term
}

type TermProblem int64

const (
	TermCodedValue TermProblem = 1
	TermUnparsable TermProblem = 2
	TermTooShort   TermProblem = 3
	TermType       TermProblem = 4
)

var termProblemNames = map[TermProblem]string{
	TermCodedValue: "codedValue",
	TermUnparsable: "unparsable",
	TermTooShort:   "tooShort",
	TermType:       "type",
}

type ProximityDiag struct{ Value *ber.Node }
type ScanDiag struct{ Value *ber.Node }
type SortDiag struct{ Value *ber.Node }

// SegmentationDiag is SegmentCountDiag or SegmentSizeDiag.
type SegmentationDiag interface {
	isSegmentationDiag()
}

type SegmentCountDiag struct{}
type SegmentSizeDiag int64

func (SegmentCountDiag) isSegmentationDiag() {}
func (SegmentSizeDiag) isSegmentationDiag()  {}

type SegmentationDiagnostic struct {
	Diagnostic SegmentationDiag
}

// ExtServicesDiag is ESRequestDiag, ESPermissionDiag or ESImmediateDiag.
type ExtServicesDiag interface {
	isExtServicesDiag()
}

type ESRequestDiag int64
type ESPermissionDiag int64
type ESImmediateDiag int64

func (ESRequestDiag) isExtServicesDiag()    {}
func (ESPermissionDiag) isExtServicesDiag() {}
func (ESImmediateDiag) isExtServicesDiag()  {}

type ExtServicesDiagnostic struct {
	Diagnostic ExtServicesDiag
}

// AccessCtrlDiag is NoUserDiag, RefusedDiag, SimpleDiag, OIDDiag,
// AlternativeDiag, PwdInvDiag or PwdExpDiag.
type AccessCtrlDiag interface {
	isAccessCtrlDiag()
}

type (
	NoUserDiag      struct{}
	RefusedDiag     struct{}
	SimpleDiag      struct{}
	OIDDiag         []ber.OID
	AlternativeDiag []ber.OID
	PwdInvDiag      struct{}
	PwdExpDiag      struct{}
)

func (NoUserDiag) isAccessCtrlDiag()      {}
func (RefusedDiag) isAccessCtrlDiag()     {}
func (SimpleDiag) isAccessCtrlDiag()      {}
func (OIDDiag) isAccessCtrlDiag()         {}
func (AlternativeDiag) isAccessCtrlDiag() {}
func (PwdInvDiag) isAccessCtrlDiag()      {}
func (PwdExpDiag) isAccessCtrlDiag()      {}

type AccessCtrlDiagnostic struct {
	Diagnostic AccessCtrlDiag
}

type RecordSyntaxDiag struct {
	UnsupportedSyntax     ber.OID
	SuggestedAlternatives []ber.OID
}

func (*TooMany) isDiagFormat()               {}
func (*BadSpec) isDiagFormat()               {}
func (*DbUnavail) isDiagFormat()             {}
func (UnSupOp) isDiagFormat()                {}
func (*AttributeDiag) isDiagFormat()         {}
func (*AttCombo) isDiagFormat()              {}
func (*TermDiag) isDiagFormat()              {}
func (ProximityDiag) isDiagFormat()          {}
func (ScanDiag) isDiagFormat()               {}
func (SortDiag) isDiagFormat()               {}
func (SegmentationDiagnostic) isDiagFormat() {}
func (ExtServicesDiagnostic) isDiagFormat()  {}
func (AccessCtrlDiagnostic) isDiagFormat()   {}
func (*RecordSyntaxDiag) isDiagFormat()      {}

var (
	diagnosticEntryCodec  = asn1.Seq[DiagnosticEntry]("DiagnosticEntry")
	diagnosticFormatCodec = asn1.SequenceOf[DiagnosticFormat](diagnosticEntryCodec)
	tooManyCodec          = asn1.Seq[TooMany]("TooMany")
	badSpecCodec          = asn1.Seq[BadSpec]("BadSpec")
	dbUnavailCodec        = asn1.Seq[DbUnavail]("DbUnavail")
	dbUnavailWhyCodec     = asn1.Seq[DbUnavailWhy]("DbUnavailWhy")
	attributeDiagCodec    = asn1.Seq[AttributeDiag]("AttributeDiag")
	attComboCodec         = asn1.Seq[AttCombo]("AttCombo")
	termDiagCodec         = asn1.Seq[TermDiag]("TermDiag")
	recordSyntaxDiagCodec = asn1.Seq[RecordSyntaxDiag]("RecordSyntaxDiag")

	segmentationDiagCodec = asn1.Choice("segmentation",
		asn1.Alt[SegmentationDiag]("segmentCount", asn1.Implicit(0, asn1.NullOf[SegmentCountDiag]())),
		asn1.Alt[SegmentationDiag]("segmentSize", asn1.Implicit(1, asn1.Int[SegmentSizeDiag](nil))),
	)

	extServicesDiagCodec = asn1.Choice("extServices",
		asn1.Alt[ExtServicesDiag]("req", asn1.Implicit(1, asn1.Int[ESRequestDiag](nil))),
		asn1.Alt[ExtServicesDiag]("permission", asn1.Implicit(2, asn1.Int[ESPermissionDiag](nil))),
		asn1.Alt[ExtServicesDiag]("immediate", asn1.Implicit(3, asn1.Int[ESImmediateDiag](nil))),
	)

	accessCtrlDiagCodec = asn1.Choice("accessCtrl",
		asn1.Alt[AccessCtrlDiag]("noUser", asn1.Implicit(1, asn1.NullOf[NoUserDiag]())),
		asn1.Alt[AccessCtrlDiag]("refused", asn1.Implicit(2, asn1.NullOf[RefusedDiag]())),
		asn1.Alt[AccessCtrlDiag]("simple", asn1.Implicit(3, asn1.NullOf[SimpleDiag]())),
		asn1.Alt[AccessCtrlDiag]("oid", asn1.Implicit(4, asn1.SequenceOf[OIDDiag](asn1.ObjectIdentifier))),
		asn1.Alt[AccessCtrlDiag]("alternative", asn1.Implicit(5, asn1.SequenceOf[AlternativeDiag](asn1.ObjectIdentifier))),
		asn1.Alt[AccessCtrlDiag]("pwdInv", asn1.Implicit(6, asn1.NullOf[PwdInvDiag]())),
		asn1.Alt[AccessCtrlDiag]("pwdExp", asn1.Implicit(7, asn1.NullOf[PwdExpDiag]())),
	)

	diagFormatCodec = asn1.Choice("DiagFormat",
		asn1.Alt[DiagFormat]("tooMany", asn1.Implicit(1000, tooManyCodec)),
		asn1.Alt[DiagFormat]("badSpec", asn1.Implicit(1001, badSpecCodec)),
		asn1.Alt[DiagFormat]("dbUnavail", asn1.Implicit(1002, dbUnavailCodec)),
		asn1.Alt[DiagFormat]("unSupOp", asn1.Implicit(1003, enumCodec(unSupOpNames))),
		asn1.Alt[DiagFormat]("attribute", asn1.Implicit(1004, attributeDiagCodec)),
		asn1.Alt[DiagFormat]("attCombo", asn1.Implicit(1005, attComboCodec)),
		asn1.Alt[DiagFormat]("term", asn1.Implicit(1006, termDiagCodec)),
		asn1.Alt[DiagFormat]("proximity", asn1.Explicit(1007, rawDiag[ProximityDiag]())),
		asn1.Alt[DiagFormat]("scan", asn1.Explicit(1008, rawDiag[ScanDiag]())),
		asn1.Alt[DiagFormat]("sort", asn1.Explicit(1009, rawDiag[SortDiag]())),
		asn1.Alt[DiagFormat]("segmentation", asn1.Explicit(1010, asn1.Transform(segmentationDiagCodec,
			func(d SegmentationDiag) SegmentationDiagnostic { return SegmentationDiagnostic{Diagnostic: d} },
			func(d SegmentationDiagnostic) SegmentationDiag { return d.Diagnostic }))),
		asn1.Alt[DiagFormat]("extServices", asn1.Explicit(1011, asn1.Transform(extServicesDiagCodec,
			func(d ExtServicesDiag) ExtServicesDiagnostic { return ExtServicesDiagnostic{Diagnostic: d} },
			func(d ExtServicesDiagnostic) ExtServicesDiag { return d.Diagnostic }))),
		asn1.Alt[DiagFormat]("accessCtrl", asn1.Explicit(1012, asn1.Transform(accessCtrlDiagCodec,
			func(d AccessCtrlDiag) AccessCtrlDiagnostic { return AccessCtrlDiagnostic{Diagnostic: d} },
			func(d AccessCtrlDiagnostic) AccessCtrlDiag { return d.Diagnostic }))),
		asn1.Alt[DiagFormat]("recordSyntax", asn1.Implicit(1013, recordSyntaxDiagCodec)),
	)

	diagnosticChoiceCodec = asn1.Choice("diagnostic",
		asn1.Alt[DiagnosticChoice]("defaultDiagRec", asn1.Implicit(1, asn1.Transform(defaultDiagFormatCodec,
			func(d *DefaultDiagFormat) DefaultDiagRec { return DefaultDiagRec{d} },
			func(d DefaultDiagRec) *DefaultDiagFormat { return d.DefaultDiagFormat }))),
		asn1.Alt[DiagnosticChoice]("explicitDiagnostic", asn1.Explicit(2, asn1.Transform(diagFormatCodec,
			func(d DiagFormat) ExplicitDiagnostic { return ExplicitDiagnostic{Diagnostic: d} },
			func(d ExplicitDiagnostic) DiagFormat { return d.Diagnostic }))),
	)
)

// rawDiag keeps a diagnostic CHOICE value undecoded.
func rawDiag[T ~struct{ Value *ber.Node }]() asn1.Codec[T] {
	return asn1.Transform(asn1.Any,
		func(n *ber.Node) T { return T{Value: n} },
		func(v T) *ber.Node { return struct{ Value *ber.Node }(v).Value })
}

func (e *DiagnosticEntry) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.OptChoice("diagnostic", &e.Diagnostic, asn1.Explicit(1, diagnosticChoiceCodec)),
		asn1.Opt("message", &e.Message, asn1.Implicit(2, asn1.InternationalString)),
	}
}

func (t *TooMany) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("tooManyWhat", &t.TooManyWhat, asn1.Implicit(1, enumCodec(tooManyWhatNames))),
		asn1.Opt("max", &t.Max, asn1.Implicit(2, asn1.Integer)),
	}
}

func (b *BadSpec) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("spec", &b.Spec, asn1.Implicit(1, specificationCodec)),
		asn1.Opt("db", &b.DB, asn1.Implicit(2, databaseNameCodec)),
		asn1.OptSlice("goodOnes", &b.GoodOnes, asn1.Implicit(3, asn1.SequenceOf[[]*Specification](specificationCodec))),
	}
}

func (d *DbUnavail) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("db", &d.DB, asn1.Implicit(1, databaseNameCodec)),
		asn1.Req("why", &d.Why, asn1.Implicit(2, dbUnavailWhyCodec)),
	}
}

func (w *DbUnavailWhy) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Opt("reasonCode", &w.ReasonCode, asn1.Implicit(1, enumCodec(dbUnavailReasonNames))),
		asn1.Opt("message", &w.Message, asn1.Implicit(2, asn1.InternationalString)),
	}
}

func (a *AttributeDiag) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("id", &a.ID, asn1.Implicit(1, asn1.ObjectIdentifier)),
		asn1.Opt("type", &a.Type, asn1.Implicit(2, asn1.Integer)),
		asn1.Opt("value", &a.Value, asn1.Implicit(3, asn1.Integer)),
		asn1.OptChoice("term", &a.Term, asn1.Explicit(4, termCodec)),
	}
}

func (a *AttCombo) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("unsupportedCombination", &a.UnsupportedCombination, asn1.Implicit(1, attributeListCodec)),
		asn1.OptSlice("recommendedAlternatives", &a.RecommendedAlternatives,
			asn1.Implicit(2, asn1.SequenceOf[[]AttributeList](attributeListCodec))),
	}
}

func (t *TermDiag) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Opt("problem", &t.Problem, asn1.Implicit(1, enumCodec(termProblemNames))),
		asn1.Req("term", &t.Term, asn1.Explicit(2, termCodec)),
	}
}

func (r *RecordSyntaxDiag) Fields() []asn1.Field {
	return []asn1.Field{
		asn1.Req("unsupportedSyntax", &r.UnsupportedSyntax, asn1.Implicit(1, asn1.ObjectIdentifier)),
		asn1.OptSlice("suggestedAlternatives", &r.SuggestedAlternatives, asn1.Implicit(2, oidsCodec)),
	}
}

func (d DiagnosticFormat) String() string {
	return asn1.Sprint(diagnosticFormatCodec, d)
}
