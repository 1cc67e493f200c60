package io_test

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/opencatalog/z3950/std/ber"
	sio "github.com/opencatalog/z3950/std/utils/io"
	tu "github.com/opencatalog/z3950/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

var (
	closeWire      = tu.Hex("bf 30 0b 9f 81 53 01 07 83 04 69 64 6c 65")
	indefiniteWire = tu.Hex("b7 80 97 01 05 98 01 00 99 01 01 96 01 ff 00 00")
)

func TestReadBerStream(t *testing.T) {
	tu.SetT(t)

	stream := append(append([]byte{}, closeWire...), indefiniteWire...)
	frames := [][]byte{}
	nodes := []*ber.Node{}
	err := sio.ReadBerStream(iotest.OneByteReader(bytes.NewReader(stream)), func(wire []byte, n *ber.Node) bool {
		frames = append(frames, append([]byte{}, wire...))
		nodes = append(nodes, n)
		return true
	}, nil, ber.DefaultLimits)
	require.NoError(t, err)
	require.Equal(t, [][]byte{closeWire, indefiniteWire}, frames)
	require.Equal(t, ber.Context(48), nodes[0].Tag())
	require.Len(t, nodes[1].Children(), 4)
}

func TestReadBerStreamStop(t *testing.T) {
	tu.SetT(t)

	stream := bytes.Repeat(closeWire, 3)
	count := 0
	err := sio.ReadBerStream(bytes.NewReader(stream), func([]byte, *ber.Node) bool {
		count++
		return count < 2
	}, nil, ber.Limits{})
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestReadBerStreamErrors(t *testing.T) {
	tu.SetT(t)

	ok := func([]byte, *ber.Node) bool { return true }

	// truncated trailing unit
	err := sio.ReadBerStream(bytes.NewReader(closeWire[:5]), ok, nil, ber.Limits{})
	require.True(t, errors.Is(err, ber.ErrUnexpectedEnd))

	// declared length beyond the limit
	err = sio.ReadBerStream(bytes.NewReader(tu.Hex("04 82 01 00")), ok, nil, ber.Limits{MaxLength: 16})
	require.True(t, errors.Is(err, ber.ErrLengthTooLong))

	// read errors pass through unless ignored
	boom := errors.New("boom")
	err = sio.ReadBerStream(iotest.ErrReader(boom), ok, nil, ber.Limits{})
	require.Equal(t, boom, err)
}

func TestReadBerStreamLargeFrame(t *testing.T) {
	tu.SetT(t)

	content := bytes.Repeat([]byte{0x5a}, 200<<10)
	big := ber.NewPrimitive(ber.Universal(ber.TagOctetString), content).Bytes()
	stream := append(append([]byte{}, big...), closeWire...)

	var frames [][]byte
	read := func() {
		frames = frames[:0]
		err := sio.ReadBerStream(iotest.OneByteReader(bytes.NewReader(stream)), func(wire []byte, n *ber.Node) bool {
			frames = append(frames, append([]byte{}, wire...))
			return true
		}, nil, ber.DefaultLimits)
		require.NoError(t, err)
	}

	// the frame is parsed once its last octet arrives, not on every read
	allocs := testing.AllocsPerRun(1, read)
	require.Less(t, allocs, float64(1000))
	require.Equal(t, [][]byte{big, closeWire}, frames)
}
