package ber_test

import (
	"strings"
	"testing"
	"time"

	"github.com/opencatalog/z3950/std/ber"
	tu "github.com/opencatalog/z3950/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

var intTag = ber.Universal(ber.TagInteger)

func TestIntegerMinimal(t *testing.T) {
	tu.SetT(t)

	cases := []struct {
		v    int64
		wire []byte
	}{
		{0, []byte{0x00}},
		{-1, []byte{0xff}},
		{127, []byte{0x7f}},
		{128, []byte{0x00, 0x80}},
		{-128, []byte{0x80}},
		{-129, []byte{0xff, 0x7f}},
		{1 << 31, []byte{0x00, 0x80, 0x00, 0x00, 0x00}},
		{-1 << 63, []byte{0x80, 0, 0, 0, 0, 0, 0, 0}},
	}
	for _, c := range cases {
		n := ber.EncodeInteger(intTag, c.v)
		require.Equal(t, c.wire, n.Content(), "%d", c.v)
		require.Equal(t, c.v, tu.NoErr(ber.ParseInteger(n)))
	}

	// non-minimal input still decodes
	require.Equal(t, int64(5), tu.NoErr(ber.ParseInteger(ber.NewPrimitive(intTag, []byte{0x00, 0x05}))))
	tu.Err(ber.ParseInteger(ber.NewPrimitive(intTag, nil)))
	tu.Err(ber.ParseInteger(ber.NewPrimitive(intTag, make([]byte, 9))))
	tu.Err(ber.ParseInteger(ber.NewConstructed(intTag)))
}

func TestBooleanNull(t *testing.T) {
	tu.SetT(t)

	tag := ber.Universal(ber.TagBoolean)
	require.Equal(t, []byte{0xff}, ber.EncodeBoolean(tag, true).Content())
	require.Equal(t, []byte{0x00}, ber.EncodeBoolean(tag, false).Content())
	require.True(t, tu.NoErr(ber.ParseBoolean(ber.NewPrimitive(tag, []byte{0x01}))))
	require.False(t, tu.NoErr(ber.ParseBoolean(ber.NewPrimitive(tag, []byte{0x00}))))
	tu.Err(ber.ParseBoolean(ber.NewPrimitive(tag, []byte{0x01, 0x01})))

	null := ber.Universal(ber.TagNull)
	require.Equal(t, []byte{0x05, 0x00}, ber.EncodeNull(null).Bytes())
	require.NoError(t, ber.ParseNull(ber.NewPrimitive(null, nil)))
	require.Error(t, ber.ParseNull(ber.NewPrimitive(null, []byte{0x00})))
}

func TestSegmentedOctetString(t *testing.T) {
	tu.SetT(t)

	n := tu.NoErr(ber.Parse(tu.Hex("24 80 04 02 61 62 04 01 63 00 00")))
	require.Equal(t, []byte("abc"), tu.NoErr(ber.ParseOctetString(n)))
	require.Equal(t, "abc", tu.NoErr(ber.ParseString(n)))

	require.Equal(t, []byte{}, tu.NoErr(ber.ParseOctetString(ber.NewConstructed(ber.Universal(ber.TagOctetString)))))
}

func TestOID(t *testing.T) {
	tu.SetT(t)

	tag := ber.Universal(ber.TagOID)
	o := ber.MustParseOID("1.2.840.10003.5.10")
	n := tu.NoErr(ber.EncodeOID(tag, o))
	require.Equal(t, tu.Hex("06 07 2a 86 48 ce 13 05 0a"), n.Bytes())
	require.Equal(t, o, tu.NoErr(ber.ParseOID(n)))
	require.Equal(t, "1.2.840.10003.5.10", o.String())

	o2 := ber.OID{2, 999, 3}
	n = tu.NoErr(ber.EncodeOID(tag, o2))
	require.Equal(t, tu.Hex("88 37 03"), n.Content())
	require.Equal(t, o2, tu.NoErr(ber.ParseOID(n)))

	require.True(t, o.HasPrefix(ber.MustParseOID("1.2.840.10003")))
	require.False(t, o.HasPrefix(ber.MustParseOID("1.2.840.10004")))

	err := tu.Err(ber.EncodeOID(tag, ber.OID{1}))
	require.True(t, ber.IsInvariantViolation(err))
	tu.Err(ber.EncodeOID(tag, ber.OID{1, 40}))
	tu.Err(ber.ParseOIDString("1.x.3"))
	tu.Err(ber.ParseOID(ber.NewPrimitive(tag, []byte{0x2a, 0x86})))
}

func TestBitString(t *testing.T) {
	tu.SetT(t)

	tag := ber.Context(3)
	b := ber.NewBitString(true, true, true)
	n := ber.EncodeBitString(tag, b)
	require.Equal(t, tu.Hex("83 02 05 e0"), n.Bytes())
	require.Equal(t, "'111'B", b.String())

	out := tu.NoErr(ber.ParseBitString(n))
	require.True(t, b.Equal(out))
	require.Equal(t, 3, out.BitLength)
	require.False(t, out.At(3))

	empty := ber.EncodeBitString(tag, ber.BitString{})
	require.Equal(t, []byte{0x00}, empty.Content())
	require.Equal(t, 0, tu.NoErr(ber.ParseBitString(empty)).BitLength)

	// padding bits are cleared on encode
	dirty := ber.BitString{Bytes: []byte{0xff}, BitLength: 2}
	require.Equal(t, []byte{0x06, 0xc0}, ber.EncodeBitString(tag, dirty).Content())

	require.True(t, ber.BitString{}.Set(9).At(9))
	tu.Err(ber.ParseBitString(ber.NewPrimitive(tag, []byte{0x08, 0x00})))
	tu.Err(ber.ParseBitString(ber.NewPrimitive(tag, []byte{0x01})))
}

func TestGeneralizedTime(t *testing.T) {
	tu.SetT(t)

	ts := time.Date(2024, 3, 9, 17, 4, 5, 0, time.UTC)
	g := ber.NewGeneralizedTime(ts)
	require.Equal(t, ber.GeneralizedTime("20240309170405Z"), g)
	require.True(t, ts.Equal(tu.NoErr(g.Time())))
	require.True(t, ts.Equal(tu.NoErr(ber.GeneralizedTime("20240309170405").Time())))
	tu.Err(ber.GeneralizedTime("yesterday").Time())
}

func TestFprint(t *testing.T) {
	tu.SetT(t)

	n := tu.NoErr(ber.Parse(tu.Hex("30 06 02 01 05 04 01 61")))
	out := n.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, []string{
		"SEQUENCE (cons) len=6",
		"  INTEGER (prim) len=1 05",
		`  OCTET STRING (prim) len=1 61 "a"`,
	}, lines)
}
