package cmd

import (
	"fmt"
	"os"

	"github.com/opencatalog/z3950/std/log"
	"github.com/opencatalog/z3950/std/utils"
	"github.com/opencatalog/z3950/tools"
	"github.com/spf13/cobra"
)

const description = `Z39.50 BER codec tools

Dump, decode and verify captured Z39.50 PDUs, and keep a corpus of
captures for regression checks.`

// config is shared by all tools. Flags override the config file.
var config = tools.DefaultConfig()

var flags struct {
	configFile string
	logLevel   string
	logJSON    bool
	maxLength  int
	maxOctets  int
	maxDepth   int
	corpusPath string
}

var CmdZ3950 = &cobra.Command{
	Use:               "z3950",
	Short:             "Z39.50 BER codec tools",
	Long:              description,
	Version:           utils.Version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	cobra.EnableCommandSorting = false
	CmdZ3950.Root().CompletionOptions.HiddenDefaultCmd = true
	CmdZ3950.PersistentFlags().BoolP("help", "h", false, "Print usage")
	CmdZ3950.PersistentFlags().Lookup("help").Hidden = true

	pf := CmdZ3950.PersistentFlags()
	pf.StringVarP(&flags.configFile, "config", "c", "", "YAML configuration file")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (TRACE, DEBUG, INFO, WARN, ERROR)")
	pf.BoolVar(&flags.logJSON, "log-json", false, "write logs as JSON lines")
	pf.IntVar(&flags.maxLength, "max-length", 0, "largest accepted content length, in octets")
	pf.IntVar(&flags.maxOctets, "max-length-octets", 0, "most long-form length octets accepted")
	pf.IntVar(&flags.maxDepth, "max-depth", 0, "deepest accepted nesting of constructed nodes")
	pf.StringVar(&flags.corpusPath, "corpus", "", "corpus directory (overrides corpus.path)")

	CmdZ3950.AddGroup(&cobra.Group{ID: "codec", Title: "Codec Tools"})
	CmdZ3950.AddGroup(&cobra.Group{ID: "corpus", Title: "Capture Corpus"})
	for _, sub := range tools.Cmds(config) {
		sub.GroupID = utils.If(sub.Name() == "corpus", "corpus", "codec")
		CmdZ3950.AddCommand(sub)
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	if flags.configFile != "" {
		if err := config.Load(flags.configFile); err != nil {
			return err
		}
	}

	changed := func(name string) bool {
		f := cmd.Flags().Lookup(name)
		return f != nil && f.Changed
	}
	if changed("log-level") {
		level, err := log.ParseLevel(flags.logLevel)
		if err != nil {
			return err
		}
		config.LogLevel = level
	}
	if changed("log-json") {
		config.LogJSON = flags.logJSON
	}
	if changed("max-length") {
		config.Limits.MaxLength = flags.maxLength
	}
	if changed("max-length-octets") {
		config.Limits.MaxLengthOctets = flags.maxOctets
	}
	if changed("max-depth") {
		config.Limits.MaxDepth = flags.maxDepth
	}
	if changed("corpus") {
		config.Corpus.Path = flags.corpusPath
	}
	l := config.Limits
	if l.MaxLength < 0 || l.MaxLengthOctets < 0 || l.MaxDepth < 0 {
		return fmt.Errorf("limits must not be negative")
	}

	config.ApplyLogger(os.Stderr)
	log.Debug(nil, "Configured", "limits", fmt.Sprintf("%+v", config.Limits), "corpus", config.Corpus.Path)
	return nil
}
