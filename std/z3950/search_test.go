package z3950_test

import (
	"testing"

	"github.com/opencatalog/z3950/std/asn1"
	"github.com/opencatalog/z3950/std/types/optional"
	tu "github.com/opencatalog/z3950/std/utils/testutils"
	"github.com/opencatalog/z3950/std/z3950"
	"github.com/stretchr/testify/require"
)

// searchRequest for title "go" in database Default
const searchRequestHex = `
b6 45
  8d 01 00
  8e 01 01
  8f 01 00
  90 01 ff
  91 07 64 65 66 61 75 6c 74
  b2 0a 9f 69 07 44 65 66 61 75 6c 74
  b5 22
    a1 20
      06 07 2a 86 48 ce 13 03 01
      a0 15
        bf 66 12
          bf 2c 0a 30 08 9f 78 01 01 9f 79 01 04
          9f 2d 02 67 6f`

func titleTerm(term string) *z3950.AttributesPlusTerm {
	return &z3950.AttributesPlusTerm{
		Attributes: z3950.AttributeList{
			{AttributeType: 1, AttributeValue: z3950.NumericAttribute(4)},
		},
		Term: z3950.GeneralTerm(term),
	}
}

func TestSearchRequestFixture(t *testing.T) {
	tu.SetT(t)

	req := &z3950.SearchRequest{
		LargeSetLowerBound: 1,
		ReplaceIndicator:   true,
		ResultSetName:      "default",
		DatabaseNames:      []string{"Default"},
		Query: &z3950.RPNQuery{
			AttributeSet: z3950.AttrSetBib1,
			RPN:          z3950.RPNOperand{Operand: titleTerm("go")},
		},
	}
	wire := tu.Hex(searchRequestHex)
	require.Equal(t, wire, tu.NoErr(z3950.Marshal(req)))
	require.Equal(t, req, tu.NoErr(z3950.Parse(wire)))
	require.Equal(t, "bib-1", z3950.OIDName(req.Query.(*z3950.RPNQuery).AttributeSet))
}

func TestRPNDepth(t *testing.T) {
	tu.SetT(t)

	// ((title=go AND title=ber) OR rs1) AND-NOT (title=x PROX/word/2 title=y)
	rpn := &z3950.RpnRpnOp{
		RPN1: &z3950.RpnRpnOp{
			RPN1: &z3950.RpnRpnOp{
				RPN1: z3950.RPNOperand{Operand: titleTerm("go")},
				RPN2: z3950.RPNOperand{Operand: titleTerm("ber")},
				Op:   z3950.AndOperator{},
			},
			RPN2: z3950.RPNOperand{Operand: z3950.ResultSetOperand("rs1")},
			Op:   z3950.OrOperator{},
		},
		RPN2: &z3950.RpnRpnOp{
			RPN1: z3950.RPNOperand{Operand: titleTerm("x")},
			RPN2: z3950.RPNOperand{Operand: &z3950.ResultSetPlusAttributes{
				ResultSet:  "rs2",
				Attributes: z3950.AttributeList{{AttributeType: 2, AttributeValue: z3950.NumericAttribute(3)}},
			}},
			Op: &z3950.ProximityOperator{
				Exclusion:         optional.Some(false),
				Distance:          2,
				Ordered:           true,
				RelationType:      z3950.RelationLessThanOrEqual,
				ProximityUnitCode: z3950.UnitWord,
			},
		},
		Op: z3950.AndNotOperator{},
	}
	req := &z3950.SearchRequest{
		SmallSetUpperBound:       10,
		MediumSetPresentNumber:   5,
		ResultSetName:            "rs3",
		DatabaseNames:            []string{"a", "b"},
		SmallSetElementSetNames:  z3950.GenericElementSetName("F"),
		MediumSetElementSetNames: z3950.DatabaseSpecificElementSetNames{{DBName: "a", ESN: "B"}},
		PreferredRecordSyntax:    z3950.SyntaxUSMARC,
		Query:                    &z3950.RPNQuery{AttributeSet: z3950.AttrSetBib1, RPN: rpn},
	}
	wire := tu.NoErr(z3950.Marshal(req))
	out := tu.NoErr(z3950.Parse(wire))
	require.Equal(t, req, out)

	require.True(t, tu.NoErr(asn1.Verify(z3950.PDUCodec, wire)))
}

func TestQueryTypes(t *testing.T) {
	tu.SetT(t)

	for _, q := range []z3950.Query{
		z3950.CCLQuery("ti=go"),
		z3950.Z3958Query("go"),
		z3950.Type101Query{RPNQuery: &z3950.RPNQuery{
			AttributeSet: z3950.AttrSetBib1,
			RPN:          z3950.RPNOperand{Operand: titleTerm("go")},
		}},
		z3950.RankedListQuery{0x01},
	} {
		req := &z3950.SearchRequest{
			ResultSetName: "default",
			DatabaseNames: []string{"Default"},
			Query:         q,
		}
		out := tu.NoErr(z3950.Parse(tu.NoErr(z3950.Marshal(req)))).(*z3950.SearchRequest)
		require.Equal(t, q, out.Query)
	}
}

func TestTermTypes(t *testing.T) {
	tu.SetT(t)

	for _, term := range []z3950.Term{
		z3950.NumericTerm(-129),
		z3950.CharacterStringTerm("grüße"),
		z3950.OIDTerm(z3950.SyntaxGRS1),
		z3950.DateTimeTerm("20240102030405Z"),
		&z3950.IntUnit{Value: 3, UnitUsed: &z3950.Unit{
			UnitSystem: optional.Some("iso"),
			UnitType:   z3950.StringValue("time"),
			Unit:       z3950.NumericValue(1),
		}},
		z3950.NullTerm{},
	} {
		apt := &z3950.AttributesPlusTerm{
			Attributes: z3950.AttributeList{{
				AttributeSet:  z3950.AttrSetExp1,
				AttributeType: 1,
				AttributeValue: &z3950.ComplexAttribute{
					List:           []z3950.StringOrNumeric{z3950.StringValue("dc.title"), z3950.NumericValue(4)},
					SemanticAction: []int64{1},
				},
			}},
			Term: term,
		}
		req := &z3950.ScanRequest{
			DatabaseNames:          []string{"Default"},
			TermListAndStartPoint:  apt,
			NumberOfTermsRequested: 20,
		}
		out := tu.NoErr(z3950.Parse(tu.NoErr(z3950.Marshal(req))))
		require.Equal(t, req, out)
	}
}

func TestScanResponse(t *testing.T) {
	tu.SetT(t)

	res := &z3950.ScanResponse{
		ScanStatus:              z3950.ScanPartial1,
		NumberOfEntriesReturned: 2,
		PositionOfTerm:          optional.Some[int64](1),
		Entries: &z3950.ListEntries{
			Entries: []z3950.Entry{
				&z3950.TermInfo{
					Term:              z3950.GeneralTerm("go"),
					DisplayTerm:       optional.Some("Go"),
					GlobalOccurrences: optional.Some[int64](42),
					ByAttributes: []*z3950.OccurrenceElement{{
						Attributes:  z3950.AttributeList{{AttributeType: 1, AttributeValue: z3950.NumericAttribute(4)}},
						Occurrences: z3950.GlobalOccurrences(40),
					}, {
						Attributes: z3950.AttributeList{{AttributeType: 1, AttributeValue: z3950.NumericAttribute(21)}},
						Occurrences: z3950.ByDatabase{
							{DB: "a", Num: optional.Some[int64](2)},
						},
					}},
				},
				z3950.EntryDiagnostic{Diagnostic: &z3950.DefaultDiagFormat{
					DiagnosticSetID: z3950.DiagSetBib1,
					Condition:       114,
					AddInfo:         z3950.V3AddInfo("1=9999"),
				}},
			},
		},
	}
	require.Equal(t, res, tu.NoErr(z3950.Parse(tu.NoErr(z3950.Marshal(res)))))
}

func TestSortRoundTrip(t *testing.T) {
	tu.SetT(t)

	req := &z3950.SortRequest{
		InputResultSetNames: []string{"default"},
		SortedResultSetName: "sorted",
		SortSequence: []*z3950.SortKeySpec{{
			SortElement:        z3950.GenericSortKey{Key: z3950.SortField("title")},
			SortRelation:       z3950.SortDescending,
			CaseSensitivity:    z3950.CaseInsensitive,
			MissingValueAction: z3950.MissingValueData("zzz"),
		}, {
			SortElement: z3950.DatabaseSpecificSortKeys{{
				DatabaseName: "a",
				DBSort: &z3950.SortAttributes{
					ID:   z3950.AttrSetBib1,
					List: z3950.AttributeList{{AttributeType: 1, AttributeValue: z3950.NumericAttribute(31)}},
				},
			}},
			SortRelation:    z3950.SortAscending,
			CaseSensitivity: z3950.CaseSensitive,
		}, {
			SortElement: z3950.GenericSortKey{Key: &z3950.Specification{
				Schema:      z3950.SchemaURI("info:srw/schema/1/dc-v1.1"),
				ElementSpec: z3950.ElementSetNameSpec("date"),
			}},
			MissingValueAction: z3950.MissingValueAbort{},
		}},
	}
	require.Equal(t, req, tu.NoErr(z3950.Parse(tu.NoErr(z3950.Marshal(req)))))

	res := &z3950.SortResponse{
		SortStatus:      z3950.SortPartial1,
		ResultSetStatus: optional.Some(z3950.SortResultSetInterim),
		ResultCount:     optional.Some[int64](7),
	}
	require.Equal(t, res, tu.NoErr(z3950.Parse(tu.NoErr(z3950.Marshal(res)))))
}

func TestResultSetServices(t *testing.T) {
	tu.SetT(t)

	for _, p := range []z3950.PDU{
		&z3950.DeleteResultSetRequest{
			ReferenceID:    z3950.ReferenceID{0x00, 0x01},
			DeleteFunction: z3950.DeleteList,
			ResultSetList:  []string{"a", "b"},
		},
		&z3950.DeleteResultSetResponse{
			DeleteOperationStatus: z3950.DeleteNotAllRequestedResultSetsDeleted,
			DeleteListStatuses: []*z3950.ListStatus{
				{ID: "a", Status: z3950.DeleteSuccess},
				{ID: "b", Status: z3950.DeleteResultSetDidNotExist},
			},
			NumberNotDeleted: optional.Some[int64](1),
			DeleteMessage:    optional.Some("b missing"),
		},
		&z3950.DuplicateDetectionRequest{
			InputResultSetIDs:   []string{"a"},
			OutputResultSetName: "dedup",
			DuplicateDetectionCriteria: []z3950.DuplicateDetectionCriterion{
				z3950.LevelOfMatch(80), z3950.CaseSensitiveMatch{}, z3950.RsDuplicates{},
			},
			Clustering:        optional.Some(true),
			RetentionCriteria: []z3950.RetentionCriterion{z3950.NumberOfEntries(1), z3950.DuplicatesOnly{}},
			SortCriteria: []z3950.SortCriterion{
				z3950.MostRecent{}, z3950.PreferredDatabases{"a", "b"},
			},
		},
		&z3950.DuplicateDetectionResponse{
			Status:         z3950.DuplicateDetectionSuccess,
			ResultSetCount: optional.Some[int64](3),
		},
	} {
		wire := tu.NoErr(z3950.Marshal(p))
		require.Equal(t, p, tu.NoErr(z3950.Parse(wire)), z3950.Name(p))
	}
}
