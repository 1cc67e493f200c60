package tools

import (
	"fmt"
	"slices"

	"github.com/opencatalog/z3950/std/asn1"
	"github.com/opencatalog/z3950/std/ber"
	"github.com/opencatalog/z3950/std/log"
	"github.com/opencatalog/z3950/std/z3950"
	"github.com/spf13/cobra"
)

// Decode prints every PDU of a file in value notation.
type Decode struct {
	cfg *Config
	// PDU alternative names to print; all if empty
	types []string
}

func (d *Decode) String() string {
	return "decode"
}

func (d *Decode) run(cmd *cobra.Command, args []string) error {
	for _, name := range d.types {
		if !slices.Contains(asn1.Alternatives(z3950.PDUCodec), name) {
			return fmt.Errorf("unknown PDU type %q", name)
		}
	}

	out := cmd.OutOrStdout()
	total, failed := 0, 0
	err := forEachFrame(cmd, args[0], d.cfg.Limits, func(wire []byte, n *ber.Node) error {
		total++
		p, err := z3950.DecodePDU(n)
		if err != nil {
			log.Warn(d, "Failed to decode PDU", "index", total-1, "err", err)
			failed++
			return nil
		}
		if len(d.types) > 0 && !slices.Contains(d.types, z3950.Name(p)) {
			return nil
		}
		fmt.Fprintln(out, z3950.Sprint(p))
		return nil
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d PDUs failed to decode", failed, total)
	}
	return nil
}
