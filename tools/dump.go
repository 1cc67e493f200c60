package tools

import (
	"fmt"

	"github.com/opencatalog/z3950/std/ber"
	"github.com/spf13/cobra"
)

// Dump prints the node tree of every BER unit in a file.
type Dump struct {
	cfg *Config
}

func (d *Dump) String() string {
	return "dump"
}

func (d *Dump) run(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	index, offset := 0, 0
	return forEachFrame(cmd, args[0], d.cfg.Limits, func(wire []byte, n *ber.Node) error {
		fmt.Fprintf(out, "# %d offset=%d len=%d\n", index, offset, len(wire))
		index++
		offset += len(wire)
		return ber.Fprint(out, n)
	})
}
