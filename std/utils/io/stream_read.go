package io

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/opencatalog/z3950/std/ber"
	"github.com/opencatalog/z3950/std/log"
	"github.com/opencatalog/z3950/std/utils"
)

// headerSlack covers the identifier and length octets of a unit on top of
// its content length.
const headerSlack = 32

// ReadBerStream reads successive BER units from reader, buffering partial
// data, and calls onFrame with the raw octets of each complete unit and its
// parsed node. Definite and indefinite lengths are both accepted. Reading
// stops when onFrame returns false, at a clean end of stream, or on the
// first error that ignoreError does not accept. The wire slice is reused
// once onFrame returns.
func ReadBerStream(
	reader io.Reader,
	onFrame func(wire []byte, n *ber.Node) bool,
	ignoreError func(error) bool,
	limits ber.Limits,
) error {
	if limits.MaxLength <= 0 {
		limits.MaxLength = ber.DefaultLimits.MaxLength
	}
	maxFrame := limits.MaxLength + headerSlack

	recvBuf := make([]byte, min(maxFrame, 64<<10))
	recvOff := 0
	frameOff := 0
	// size of the pending frame once its header is known, -1 for the
	// indefinite form, 0 before the header is complete
	frameLen := 0

	for {
		// Shift the pending bytes to the front, growing the buffer if a
		// single frame needs more room
		if frameOff > 0 && len(recvBuf)-recvOff < len(recvBuf)/4 {
			copy(recvBuf, recvBuf[frameOff:recvOff])
			recvOff -= frameOff
			frameOff = 0
		}
		if recvOff == len(recvBuf) {
			if len(recvBuf) >= maxFrame {
				return fmt.Errorf("received %d bytes without a complete BER unit", recvOff-frameOff)
			}
			grown := make([]byte, min(max(2*len(recvBuf), frameLen), maxFrame))
			copy(grown, recvBuf[:recvOff])
			recvBuf = grown
		}

		readSize, err := reader.Read(recvBuf[recvOff:])
		recvOff += readSize
		if err != nil {
			if ignoreError != nil && ignoreError(err) {
				continue
			}
			if errors.Is(err, io.EOF) {
				if recvOff > frameOff {
					return ber.ErrOffset{Offset: int64(frameOff), Err: ber.ErrUnexpectedEnd}
				}
				return nil
			}
			return err
		}

		for frameOff < recvOff {
			if frameLen == 0 {
				hdr, err := ber.NewDecoder(bytes.NewReader(recvBuf[frameOff:recvOff]), ber.WithLimits(limits)).ReadHeader()
				if errors.Is(err, ber.ErrUnexpectedEnd) {
					// incomplete header
					break
				}
				if err != nil {
					return err
				}
				frameLen = utils.If(hdr.Length < 0, -1, hdr.Size+hdr.Length)
			}
			if frameLen > 0 && recvOff-frameOff < frameLen {
				// wait for the whole content
				break
			}

			end := utils.If(frameLen > 0, frameOff+frameLen, recvOff)
			dec := ber.NewDecoder(bytes.NewReader(recvBuf[frameOff:end]), ber.WithLimits(limits))
			n, err := dec.ReadNode()
			if frameLen < 0 && errors.Is(err, ber.ErrUnexpectedEnd) {
				// an indefinite unit ends only at its end-of-contents
				break
			}
			if err != nil {
				return err
			}

			frameSize := int(dec.Offset())
			log.Trace("ber-stream", "Frame received", "len", frameSize)
			frameLen = 0
			if !onFrame(recvBuf[frameOff:frameOff+frameSize], n) {
				return nil
			}
			frameOff += frameSize
		}
	}
}
