package z3950_test

import (
	"testing"

	"github.com/opencatalog/z3950/std/asn1"
	"github.com/opencatalog/z3950/std/ber"
	"github.com/opencatalog/z3950/std/types/optional"
	tu "github.com/opencatalog/z3950/std/utils/testutils"
	"github.com/opencatalog/z3950/std/z3950"
	"github.com/stretchr/testify/require"
)

func TestPresentResponseRecords(t *testing.T) {
	tu.SetT(t)

	sutrs := tu.NoErr(z3950.NewRecordExternal(z3950.SutrsRecord("Go in Action")))
	marc := tu.NoErr(z3950.NewRecordExternal(z3950.MARCRecord{Syntax: z3950.SyntaxUSMARC, Data: []byte("00024nam")}))
	res := &z3950.PresentResponse{
		ReferenceID:             z3950.ReferenceID("p"),
		NumberOfRecordsReturned: 3,
		NextResultSetPosition:   4,
		PresentStatus:           z3950.PresentSuccess,
		Records: z3950.ResponseRecords{
			{Name: optional.Some("Default"), Record: z3950.RetrievalRecord{External: sutrs}},
			{Record: z3950.RetrievalRecord{External: marc}},
			{Name: optional.Some("Default"), Record: z3950.SurrogateDiagnostic{
				Diagnostic: &z3950.DefaultDiagFormat{
					DiagnosticSetID: z3950.DiagSetBib1,
					Condition:       239,
					AddInfo:         z3950.V2AddInfo("1.2.840.10003.5.109.10"),
				},
			}},
		},
	}
	wire := tu.NoErr(z3950.Marshal(res))
	out := tu.NoErr(z3950.Parse(wire)).(*z3950.PresentResponse)
	require.Equal(t, wire, tu.NoErr(z3950.Marshal(out)))

	recs := out.Records.(z3950.ResponseRecords)
	require.Len(t, recs, 3)
	require.Equal(t, optional.Some("Default"), recs[0].Name)
	require.False(t, recs[1].Name.IsSet())

	first := recs[0].Record.(z3950.RetrievalRecord)
	require.Equal(t, z3950.SutrsRecord("Go in Action"), tu.NoErr(z3950.DecodeExternal(first.External)))
	second := recs[1].Record.(z3950.RetrievalRecord)
	require.Equal(t, z3950.MARCRecord{Syntax: z3950.SyntaxUSMARC, Data: []byte("00024nam")},
		tu.NoErr(z3950.DecodeExternal(second.External)))
	require.Equal(t, res.Records.(z3950.ResponseRecords)[2], recs[2])
}

func TestPresentDiagnostics(t *testing.T) {
	tu.SetT(t)

	diag := &z3950.DefaultDiagFormat{
		DiagnosticSetID: z3950.DiagSetBib1,
		Condition:       13,
		AddInfo:         z3950.V3AddInfo("out of range"),
	}
	for _, records := range []z3950.Records{
		z3950.NonSurrogateDiagnostic{DefaultDiagFormat: diag},
		z3950.MultipleNonSurDiagnostics{diag, z3950.ExternalDiagnostic{
			External: asn1.NewExternalOctets(z3950.DiagSetDiag1, []byte{0x30, 0x00}),
		}},
	} {
		res := &z3950.PresentResponse{PresentStatus: z3950.PresentFailure, Records: records}
		wire := tu.NoErr(z3950.Marshal(res))
		out := tu.NoErr(z3950.Parse(wire)).(*z3950.PresentResponse)
		require.Equal(t, res, out)
	}
}

func TestPresentRequest(t *testing.T) {
	tu.SetT(t)

	req := &z3950.PresentRequest{
		ResultSetID:              "default",
		ResultSetStartPoint:      1,
		NumberOfRecordsRequested: 10,
		AdditionalRanges:         []*z3950.Range{{StartingPosition: 20, NumberOfRecords: 5}},
		RecordComposition: &z3950.CompSpec{
			SelectAlternativeSyntax: true,
			Generic: &z3950.Specification{
				Schema:      z3950.SchemaOID(z3950.Z3950.Append(13, 1)),
				ElementSpec: z3950.ElementSetNameSpec("B"),
			},
			DBSpecific: []*z3950.DbSpecific{{
				DB:   "Default",
				Spec: &z3950.Specification{ElementSpec: z3950.ElementSetNameSpec("F")},
			}},
			RecordSyntax: []ber.OID{z3950.SyntaxGRS1, z3950.SyntaxSUTRS},
		},
		PreferredRecordSyntax: z3950.SyntaxGRS1,
		MaxRecordSize:         optional.Some[int64](1 << 20),
	}
	require.Equal(t, req, tu.NoErr(z3950.Parse(tu.NoErr(z3950.Marshal(req)))))

	req.RecordComposition = z3950.SimpleComposition{ElementSetNames: z3950.GenericElementSetName("F")}
	require.Equal(t, req, tu.NoErr(z3950.Parse(tu.NoErr(z3950.Marshal(req)))))
}

func TestSegment(t *testing.T) {
	tu.SetT(t)

	frag := z3950.NotExternallyTaggedFragment("part")
	seg := &z3950.Segment{
		NumberOfRecordsReturned: 1,
		SegmentRecords: []*z3950.NamePlusRecord{
			{Record: z3950.StartingFragment{Fragment: frag}},
			{Record: z3950.IntermediateFragment{Fragment: frag}},
			{Record: z3950.FinalFragment{Fragment: frag}},
		},
	}
	require.Equal(t, seg, tu.NoErr(z3950.Parse(tu.NoErr(z3950.Marshal(seg)))))
}

func TestGRS1(t *testing.T) {
	tu.SetT(t)

	rec := z3950.GenericRecord{
		{
			TagType:  optional.Some[int64](2),
			TagValue: z3950.NumericValue(1),
			Content:  z3950.ElementString("The Go Programming Language"),
		},
		{
			TagType:  optional.Some[int64](3),
			TagValue: z3950.StringValue("authors"),
			Content: z3950.ElementSubtree{
				{TagValue: z3950.StringValue("author"), TagOccurrence: optional.Some[int64](1), Content: z3950.ElementString("Donovan")},
				{TagValue: z3950.StringValue("author"), TagOccurrence: optional.Some[int64](2), Content: z3950.ElementString("Kernighan")},
				{TagValue: z3950.StringValue("editor"), Content: z3950.ElementNotThere{}},
			},
			MetaData: &z3950.ElementMetaData{
				SeriesOrder: &z3950.Order{Ascending: true, Order: 1},
				UsageRight:  &z3950.Usage{Type: z3950.UsageRestricted, Restriction: optional.Some("internal")},
				Hits: []*z3950.HitVector{{
					Satisfier: z3950.GeneralTerm("go"),
					HitRank:   optional.Some[int64](1),
				}},
				DisplayName: optional.Some("Authors"),
			},
			AppliedVariant: &z3950.Variant{
				GlobalVariantSetID: z3950.Z3950.Append(12, 1),
				Triples: []*z3950.VariantTriple{
					{Class: 1, Type: 1, Value: z3950.VariantString("text/plain")},
					{Class: 2, Type: 1, Value: z3950.VariantBool(true)},
				},
			},
		},
		{TagValue: z3950.NumericValue(4), Content: z3950.ElementNumeric(2015)},
		{TagValue: z3950.NumericValue(5), Content: z3950.ElementDate("20151026")},
		{TagValue: z3950.NumericValue(6), Content: z3950.ElementOID(z3950.SyntaxGRS1)},
		{TagValue: z3950.NumericValue(7), Content: &z3950.IntUnit{
			Value:    380,
			UnitUsed: &z3950.Unit{Unit: z3950.StringValue("pages")},
		}},
	}
	ext := tu.NoErr(z3950.NewRecordExternal(rec))
	require.Equal(t, z3950.SyntaxGRS1, ext.DirectReference)

	// through the wire as a retrieval record
	wire := tu.NoErr(asn1.Marshal(asn1.ExternalCodec, ext))
	back := tu.NoErr(asn1.Unmarshal(asn1.ExternalCodec, wire))
	require.Equal(t, rec, tu.NoErr(z3950.DecodeExternal(back)))
	require.Contains(t, rec.String(), `content string : "Donovan"`)
}

func TestOPAC(t *testing.T) {
	tu.SetT(t)

	bib := asn1.NewExternalOctets(z3950.SyntaxUSMARC, []byte("00024nam"))
	rec := &z3950.OPACRecord{
		BibliographicRecord: bib,
		HoldingsData: []z3950.HoldingsRecord{
			&z3950.HoldingsAndCircData{
				LocalLocation: optional.Some("Main"),
				CallNumber:    optional.Some("QA76.73.G63"),
				Volumes:       []*z3950.Volume{{Enumeration: optional.Some("v.1")}},
				CirculationData: []*z3950.CircRecord{{
					AvailabilityDate: optional.Some("2024-05-01"),
					Renewable:        true,
					ItemID:           optional.Some("b123"),
				}},
			},
			z3950.MARCHoldingsRecord{External: asn1.NewExternalOctets(z3950.SyntaxUSMARC, []byte("h"))},
		},
	}
	ext := tu.NoErr(z3950.NewRecordExternal(rec))
	back := tu.NoErr(asn1.Unmarshal(asn1.ExternalCodec, tu.NoErr(asn1.Marshal(asn1.ExternalCodec, ext))))
	require.Equal(t, rec, tu.NoErr(z3950.DecodeExternal(back)))
}

func TestDiag1(t *testing.T) {
	tu.SetT(t)

	diag := z3950.DiagnosticFormat{
		{
			Diagnostic: z3950.ExplicitDiagnostic{Diagnostic: &z3950.TooMany{
				TooManyWhat: z3950.TooManyRecordsRetrieved,
				Max:         optional.Some[int64](100),
			}},
			Message: optional.Some("too many records"),
		},
		{Diagnostic: z3950.DefaultDiagRec{DefaultDiagFormat: &z3950.DefaultDiagFormat{
			DiagnosticSetID: z3950.DiagSetBib1,
			Condition:       2,
			AddInfo:         z3950.V3AddInfo("temporary"),
		}}},
		{Diagnostic: z3950.ExplicitDiagnostic{Diagnostic: &z3950.RecordSyntaxDiag{
			UnsupportedSyntax:     z3950.SyntaxOPAC,
			SuggestedAlternatives: []ber.OID{z3950.SyntaxSUTRS},
		}}},
		{Diagnostic: z3950.ExplicitDiagnostic{Diagnostic: &z3950.DbUnavail{
			DB:  "Default",
			Why: &z3950.DbUnavailWhy{ReasonCode: optional.Some(z3950.DbLocked)},
		}}},
		{Diagnostic: z3950.ExplicitDiagnostic{Diagnostic: z3950.UnSupProx}},
		{Diagnostic: z3950.ExplicitDiagnostic{Diagnostic: z3950.AccessCtrlDiagnostic{
			Diagnostic: z3950.AlternativeDiag{z3950.AccessPrompt1},
		}}},
		{Diagnostic: z3950.ExplicitDiagnostic{Diagnostic: z3950.SegmentationDiagnostic{
			Diagnostic: z3950.SegmentSizeDiag(512),
		}}},
		{Message: optional.Some("no detail")},
	}
	ext := tu.NoErr(z3950.NewRecordExternal(diag))
	back := tu.NoErr(asn1.Unmarshal(asn1.ExternalCodec, tu.NoErr(asn1.Marshal(asn1.ExternalCodec, ext))))
	require.Equal(t, diag, tu.NoErr(z3950.DecodeExternal(back)))
}

func TestDecodeExternalUnknown(t *testing.T) {
	tu.SetT(t)

	ext := asn1.NewExternalOctets(ber.MustParseOID("1.2.3.4"), []byte{1, 2})
	require.Same(t, ext, tu.NoErr(z3950.DecodeExternal(ext)))
	require.False(t, z3950.IsMARC(z3950.SyntaxGRS1))
	require.True(t, z3950.IsMARC(z3950.SyntaxUNIMARC))

	_, err := z3950.NewRecordExternal(42)
	require.True(t, ber.IsInvariantViolation(err))
}

func TestControlServices(t *testing.T) {
	tu.SetT(t)

	report := asn1.NewExternalOctets(z3950.ResourceReport2, []byte{0x01})
	for _, p := range []z3950.PDU{
		&z3950.AccessControlRequest{SecurityChallenge: z3950.SimpleChallenge("who?")},
		&z3950.AccessControlRequest{SecurityChallenge: z3950.ExternalChallenge{
			External: asn1.NewExternalOctets(z3950.AccessPrompt1, []byte("p")),
		}},
		&z3950.AccessControlResponse{
			SecurityChallengeResponse: z3950.SimpleChallengeResponse("me"),
			Diagnostic: &z3950.DefaultDiagFormat{
				DiagnosticSetID: z3950.DiagSetBib1,
				Condition:       1011,
				AddInfo:         z3950.V2AddInfo(""),
			},
		},
		&z3950.ResourceControlRequest{
			SuspendedFlag:           optional.Some(true),
			ResourceReport:          report,
			PartialResultsAvailable: optional.Some(z3950.ResultSetInterim),
			ResponseRequired:        true,
		},
		&z3950.ResourceControlResponse{ContinueFlag: true, ResultSetWanted: optional.Some(false)},
		&z3950.TriggerResourceControlRequest{
			RequestedAction:          z3950.ActionResourceReport,
			PrefResourceReportFormat: z3950.ResourceReport1,
		},
		&z3950.ResourceReportRequest{OpID: z3950.ReferenceID("op"), PrefResourceReportFormat: z3950.ResourceReport2},
		&z3950.ResourceReportResponse{ResourceReportStatus: z3950.ReportPartial, ResourceReport: report},
		&z3950.ExtendedServicesRequest{
			Function:    z3950.ESCreate,
			PackageType: z3950.Z3950.Append(9, 1),
			PackageName: optional.Some("saved"),
			RetentionTime: &z3950.IntUnit{Value: 7, UnitUsed: &z3950.Unit{
				UnitType: z3950.StringValue("time"),
				Unit:     z3950.StringValue("days"),
			}},
			Permissions: []*z3950.Permission{{
				UserID:             "alice",
				AllowableFunctions: []z3950.AllowableFunction{z3950.AllowDelete, z3950.AllowPresent},
			}},
			WaitAction: z3950.WaitIfPossible,
			Elements:   optional.Some("F"),
		},
		&z3950.ExtendedServicesResponse{
			OperationStatus: z3950.OperationAccepted,
			TaskPackage:     asn1.NewExternalOctets(z3950.Z3950.Append(9, 1), []byte{0x02}),
		},
	} {
		wire := tu.NoErr(z3950.Marshal(p))
		require.Equal(t, p, tu.NoErr(z3950.Parse(wire)), z3950.Name(p))
	}
}
