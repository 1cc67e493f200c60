package tools

import "github.com/spf13/cobra"

// Cmds returns the tool commands, all reading their settings from cfg.
func Cmds(cfg *Config) []*cobra.Command {
	return []*cobra.Command{
		CmdDump(cfg),
		CmdDecode(cfg),
		CmdVerify(cfg),
		CmdCorpus(cfg),
	}
}

func CmdDump(cfg *Config) *cobra.Command {
	tool := &Dump{cfg: cfg}
	return &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the BER node tree of each unit",
		Long: `Print the BER node tree of each unit in FILE, or the standard input
for "-". Every node shows its tag, form and content length.`,
		Args:    cobra.ExactArgs(1),
		Example: `  z3950 dump capture.ber`,
		RunE:    tool.run,
	}
}

func CmdDecode(cfg *Config) *cobra.Command {
	tool := &Decode{cfg: cfg}
	cmd := &cobra.Command{
		Use:   "decode FILE",
		Short: "Decode each PDU and print it in value notation",
		Args:  cobra.ExactArgs(1),
		Example: `  z3950 decode - < capture.ber
  z3950 decode --type searchRequest,searchResponse capture.ber`,
		RunE: tool.run,
	}
	cmd.Flags().StringSliceVarP(&tool.types, "type", "t", nil, "only print PDUs of these types")
	return cmd
}

func CmdVerify(cfg *Config) *cobra.Command {
	tool := &Verify{cfg: cfg}
	return &cobra.Command{
		Use:   "verify FILE",
		Short: "Check that each PDU re-encodes to its input",
		Long: `Decode and re-encode each PDU in FILE and compare the result with the
minimal definite-length form of the input. Exits non-zero on any failure.`,
		Args:    cobra.ExactArgs(1),
		Example: `  z3950 verify capture.ber`,
		RunE:    tool.run,
	}
}

func CmdCorpus(cfg *Config) *cobra.Command {
	tool := &Corpus{cfg: cfg}
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Manage the capture corpus",
		Long: `Manage the capture corpus, a store of raw PDUs keyed by the xxhash
of their octets. The store location comes from the corpus.path setting.`,
	}
	cmd.AddCommand(&cobra.Command{
		Use:     "add FILE...",
		Short:   "Store every unit of the given files",
		Args:    cobra.MinimumNArgs(1),
		Example: `  z3950 corpus add session1.ber session2.ber`,
		RunE:    tool.add,
	}, &cobra.Command{
		Use:   "list",
		Short: "List stored units with their PDU type",
		Args:  cobra.NoArgs,
		RunE:  tool.list,
	}, &cobra.Command{
		Use:   "show KEY",
		Short: "Print a stored PDU in value notation",
		Args:  cobra.ExactArgs(1),
		RunE:  tool.show,
	}, &cobra.Command{
		Use:   "remove KEY...",
		Short: "Remove stored units",
		Args:  cobra.MinimumNArgs(1),
		RunE:  tool.remove,
	}, &cobra.Command{
		Use:   "verify",
		Short: "Decode and re-encode every stored PDU",
		Args:  cobra.NoArgs,
		RunE:  tool.verify,
	})
	return cmd
}
