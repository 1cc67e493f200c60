package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/opencatalog/z3950/std/log"
	tu "github.com/opencatalog/z3950/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func TestFlagsOverrideConfig(t *testing.T) {
	tu.SetT(t)

	prev := log.Default()
	defer log.SetDefault(prev)

	dir := t.TempDir()
	file := filepath.Join(dir, "z3950.yml")
	require.NoError(t, os.WriteFile(file, []byte("log_level: WARN\nlimits:\n  max_length: 4096\n  max_depth: 8\n"), 0o644))
	capture := filepath.Join(dir, "close.ber")
	require.NoError(t, os.WriteFile(capture, tu.Hex("bf 30 0b 9f 81 53 01 07 83 04 69 64 6c 65"), 0o644))

	out := &bytes.Buffer{}
	CmdZ3950.SetOut(out)
	CmdZ3950.SetArgs([]string{"--config", file, "--max-length", "100", "--max-length-octets", "2", "verify", capture})
	require.NoError(t, CmdZ3950.Execute())

	require.Equal(t, log.LevelWarn, config.LogLevel)
	require.Equal(t, 100, config.Limits.MaxLength)
	require.Equal(t, 2, config.Limits.MaxLengthOctets)
	require.Equal(t, 8, config.Limits.MaxDepth)
	require.Contains(t, out.String(), "verified=1")

	CmdZ3950.SetArgs([]string{"--max-length-octets=-1", "verify", capture})
	require.ErrorContains(t, CmdZ3950.Execute(), "negative")

	CmdZ3950.SetArgs([]string{"--log-level", "loud", "verify", capture})
	require.Error(t, CmdZ3950.Execute())
}
