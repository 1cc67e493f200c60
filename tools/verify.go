package tools

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/opencatalog/z3950/std/ber"
	"github.com/opencatalog/z3950/std/log"
	"github.com/opencatalog/z3950/std/utils/toolutils"
	"github.com/opencatalog/z3950/std/z3950"
	"github.com/spf13/cobra"
)

// ErrMismatch reports a PDU whose re-encoding differs from the canonical
// form of its input.
var ErrMismatch = errors.New("re-encoding differs from input")

// checkPDU decodes n as a PDU and encodes it again.
func checkPDU(n *ber.Node) (z3950.PDU, error) {
	p, err := z3950.DecodePDU(n)
	if err != nil {
		return nil, err
	}
	out, err := z3950.EncodePDU(p)
	if err != nil {
		return p, err
	}
	if !bytes.Equal(out.Bytes(), n.Bytes()) {
		return p, ErrMismatch
	}
	return p, nil
}

// verifyStats counts the outcome of a verification run.
type verifyStats struct {
	total        int
	verified     int
	failed       int
	noncanonical int
}

func (s *verifyStats) check(t any, label string, wire []byte, n *ber.Node) {
	s.total++
	if !bytes.Equal(wire, n.Bytes()) {
		s.noncanonical++
	}
	p, err := checkPDU(n)
	if err != nil {
		s.failed++
		name := "?"
		if p != nil {
			name = z3950.Name(p)
		}
		log.Warn(t, "Verification failed", "pdu", label, "type", name, "err", err)
		return
	}
	s.verified++
	log.Debug(t, "Verified", "pdu", label, "type", z3950.Name(p))
}

func (s *verifyStats) print(p toolutils.StatusPrinter) error {
	p.Print("pdus", s.total)
	p.Print("verified", s.verified)
	p.Print("failed", s.failed)
	p.Print("noncanonical", s.noncanonical)
	if s.failed > 0 {
		return fmt.Errorf("%d of %d PDUs failed verification", s.failed, s.total)
	}
	return nil
}

// Verify decodes and re-encodes every PDU of a file.
type Verify struct {
	cfg *Config
}

func (v *Verify) String() string {
	return "verify"
}

func (v *Verify) run(cmd *cobra.Command, args []string) error {
	stats := verifyStats{}
	err := forEachFrame(cmd, args[0], v.cfg.Limits, func(wire []byte, n *ber.Node) error {
		stats.check(v, fmt.Sprintf("#%d", stats.total), wire, n)
		return nil
	})
	if err != nil {
		return err
	}
	return stats.print(toolutils.StatusPrinter{File: cmd.OutOrStdout(), Padding: 12})
}
