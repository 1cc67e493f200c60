package z3950_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/opencatalog/z3950/std/asn1"
	"github.com/opencatalog/z3950/std/ber"
	"github.com/opencatalog/z3950/std/types/optional"
	tu "github.com/opencatalog/z3950/std/utils/testutils"
	"github.com/opencatalog/z3950/std/z3950"
	"github.com/stretchr/testify/require"
)

const initRequestHex = "b4 0d 83 02 05 e0 84 01 00 85 01 01 86 01 01"

// minimal searchResponse: resultCount 5, nothing returned
const searchResponseHex = "b7 0c 97 01 05 98 01 00 99 01 01 96 01 ff"

func TestInitializeRequestFixture(t *testing.T) {
	tu.SetT(t)

	wire := tu.Hex(initRequestHex)
	pdu := tu.NoErr(z3950.Parse(wire))
	req, ok := pdu.(*z3950.InitializeRequest)
	require.True(t, ok)

	require.Equal(t, 3, req.ProtocolVersion.BitLength)
	for i := z3950.Version1; i <= z3950.Version3; i++ {
		require.True(t, req.ProtocolVersion.At(i))
	}
	require.Equal(t, 0, req.Options.BitLength)
	require.Equal(t, int64(1), req.PreferredMessageSize)
	require.Equal(t, int64(1), req.ExceptionalRecordSize)
	require.Nil(t, req.ReferenceID)
	require.Nil(t, req.IDAuthentication)
	require.False(t, req.ImplementationID.IsSet())
	require.False(t, req.ImplementationName.IsSet())
	require.False(t, req.ImplementationVersion.IsSet())
	require.Nil(t, req.UserInformationField)
	require.Nil(t, req.OtherInfo)

	require.Equal(t, wire, tu.NoErr(z3950.Marshal(req)))
	require.Equal(t, "initRequest", z3950.Name(req))
}

func TestTruncatedPDUs(t *testing.T) {
	tu.SetT(t)

	for _, h := range []string{initRequestHex, searchResponseHex, searchRequestHex} {
		wire := tu.Hex(h)
		for i := 0; i < len(wire); i++ {
			err := tu.Err(z3950.Parse(wire[:i]))
			require.True(t, ber.IsDecodingError(err), "prefix %d: %v", i, err)
		}
	}
}

func TestInitializeRoundTrip(t *testing.T) {
	tu.SetT(t)

	opts := ber.NewBitString(make([]bool, z3950.OptionSort+1)...).
		Set(z3950.OptionSearch).Set(z3950.OptionPresent).Set(z3950.OptionScan).Set(z3950.OptionSort)
	req := &z3950.InitializeRequest{
		ReferenceID:           z3950.ReferenceID("r1"),
		ProtocolVersion:       ber.NewBitString(true, true, true),
		Options:               opts,
		PreferredMessageSize:  1 << 20,
		ExceptionalRecordSize: 8 << 20,
		IDAuthentication: &z3950.IDPass{
			UserID:   optional.Some("alice"),
			Password: optional.Some("secret"),
		},
		ImplementationID:   optional.Some("81"),
		ImplementationName: optional.Some("z3950-go"),
	}
	wire := tu.NoErr(z3950.Marshal(req))
	out := tu.NoErr(z3950.Parse(wire)).(*z3950.InitializeRequest)
	require.Equal(t, req.IDAuthentication, out.IDAuthentication)
	require.Equal(t, req.ImplementationName, out.ImplementationName)
	require.True(t, req.Options.Equal(out.Options))
	require.True(t, out.Options.At(z3950.OptionScan))
	require.False(t, out.Options.At(z3950.OptionDelSet))
	require.Equal(t, wire, tu.NoErr(z3950.Marshal(out)))

	for _, auth := range []z3950.IDAuthentication{
		z3950.OpenAuth("alice/secret"),
		z3950.AnonymousAuth{},
	} {
		req.IDAuthentication = auth
		out := tu.NoErr(z3950.Parse(tu.NoErr(z3950.Marshal(req)))).(*z3950.InitializeRequest)
		require.Equal(t, auth, out.IDAuthentication)
	}
}

func TestInitializeResponseUserInformation(t *testing.T) {
	tu.SetT(t)

	res := &z3950.InitializeResponse{
		ProtocolVersion:       ber.NewBitString(true, true, true),
		Options:               ber.NewBitString(true, true),
		PreferredMessageSize:  4096,
		ExceptionalRecordSize: 4096,
		Result:                true,
		UserInformationField:  asn1.NewExternalOctets(z3950.UserInfoCharSet, []byte{0x01}),
		OtherInfo: z3950.OtherInformation{
			{Information: z3950.CharacterInfo("hello")},
			{
				Category:    &z3950.InfoCategory{CategoryValue: 3},
				Information: z3950.InfoOID(z3950.AttrSetBib1),
			},
		},
	}
	out := tu.NoErr(z3950.Parse(tu.NoErr(z3950.Marshal(res)))).(*z3950.InitializeResponse)
	require.True(t, out.Result)
	require.Equal(t, res.OtherInfo, out.OtherInfo)
	require.Equal(t, z3950.UserInfoCharSet, out.UserInformationField.DirectReference)
	require.Equal(t, asn1.ExternalOctets{0x01}, out.UserInformationField.Encoding)
}

func TestOptionalAbsence(t *testing.T) {
	tu.SetT(t)

	res := tu.NoErr(z3950.Parse(tu.Hex(searchResponseHex))).(*z3950.SearchResponse)
	require.Equal(t, int64(5), res.ResultCount)
	require.Equal(t, int64(0), res.NumberOfRecordsReturned)
	require.Equal(t, int64(1), res.NextResultSetPosition)
	require.True(t, res.SearchStatus)
	require.False(t, res.ResultSetStatus.IsSet())
	require.False(t, res.PresentStatus.IsSet())
	require.Nil(t, res.Records)
	require.Nil(t, res.AdditionalSearchInfo)
	require.Nil(t, res.OtherInfo)
}

func TestReadPDUStream(t *testing.T) {
	tu.SetT(t)

	stream := append(tu.Hex(initRequestHex), tu.Hex(searchResponseHex)...)
	d := ber.NewDecoder(bytes.NewReader(stream))

	first := tu.NoErr(z3950.ReadPDU(d))
	require.IsType(t, &z3950.InitializeRequest{}, first)
	second := tu.NoErr(z3950.ReadPDU(d))
	require.IsType(t, &z3950.SearchResponse{}, second)
	_, err := z3950.ReadPDU(d)
	require.ErrorIs(t, err, io.EOF)
}

func TestUnknownPDU(t *testing.T) {
	tu.SetT(t)

	// [51] is not a PDU alternative
	err := tu.Err(z3950.Parse([]byte{0xbf, 0x33, 0x00}))
	require.True(t, errors.Is(err, ber.ErrChoiceNotMatched))
	require.True(t, ber.IsDecodingError(err))
}

func TestEncodeInvariants(t *testing.T) {
	tu.SetT(t)

	err := tu.Err(z3950.Marshal(nil))
	require.True(t, ber.IsInvariantViolation(err))

	// a mandatory CHOICE left unset
	req := &z3950.SearchRequest{
		ResultSetName: "default",
		DatabaseNames: []string{"Default"},
	}
	err = tu.Err(z3950.Marshal(req))
	require.True(t, ber.IsInvariantViolation(err))
	require.False(t, ber.IsDecodingError(err))

	// a mandatory SEQUENCE left nil
	scan := &z3950.ScanRequest{DatabaseNames: []string{"Default"}, NumberOfTermsRequested: 10}
	err = tu.Err(z3950.Marshal(scan))
	require.True(t, ber.IsInvariantViolation(err))
}

func TestClose(t *testing.T) {
	tu.SetT(t)

	c := &z3950.Close{
		CloseReason:           z3950.CloseLackOfActivity,
		DiagnosticInformation: optional.Some("idle"),
	}
	wire := tu.NoErr(z3950.Marshal(c))
	// [48] { [211] 7, [3] "idle" }
	require.Equal(t, tu.Hex("bf 30 0b 9f 81 53 01 07 83 04 69 64 6c 65"), wire)
	require.Equal(t, c, tu.NoErr(z3950.Parse(wire)))
	require.Equal(t, "lackOfActivity", c.CloseReason.String())
	require.Equal(t, "close : { closeReason lackOfActivity, diagnosticInformation \"idle\" }", z3950.Sprint(c))
}
