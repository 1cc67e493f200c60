package tools_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opencatalog/z3950/std/ber"
	"github.com/opencatalog/z3950/std/corpus"
	"github.com/opencatalog/z3950/std/log"
	tu "github.com/opencatalog/z3950/std/utils/testutils"
	"github.com/opencatalog/z3950/tools"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

var (
	closeWire = tu.Hex("bf 30 0b 9f 81 53 01 07 83 04 69 64 6c 65")
	// searchResponse with an indefinite outer length
	searchWire = tu.Hex("b7 80 97 01 05 98 01 00 99 01 01 96 01 ff 00 00")
	// initRequest missing its mandatory fields
	brokenWire = tu.Hex("b4 03 83 01 00")
)

func run(t *testing.T, cfg *tools.Config, stdin []byte, args ...string) (string, error) {
	root := &cobra.Command{Use: "z3950", SilenceUsage: true, SilenceErrors: true}
	root.AddCommand(tools.Cmds(cfg)...)
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetIn(bytes.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, data ...[]byte) string {
	path := filepath.Join(t.TempDir(), "capture.ber")
	require.NoError(t, os.WriteFile(path, bytes.Join(data, nil), 0o644))
	return path
}

func quietLogs(t *testing.T) {
	prev := log.Default()
	log.SetDefault(log.NewText(&bytes.Buffer{}))
	t.Cleanup(func() { log.SetDefault(prev) })
}

func TestDump(t *testing.T) {
	tu.SetT(t)

	out, err := run(t, tools.DefaultConfig(), closeWire, "dump", "-")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Equal(t, []string{
		"# 0 offset=0 len=14",
		"[48] (cons) len=11",
		"  [211] (prim) len=1 07",
		`  [3] (prim) len=4 69646c65 "idle"`,
	}, lines)
}

func TestDecode(t *testing.T) {
	tu.SetT(t)
	quietLogs(t)

	path := writeFile(t, closeWire, searchWire)
	out, err := run(t, tools.DefaultConfig(), nil, "decode", path)
	require.NoError(t, err)
	require.Contains(t, out, `close : { closeReason lackOfActivity, diagnosticInformation "idle" }`)
	require.Contains(t, out, "searchResponse : ")

	out, err = run(t, tools.DefaultConfig(), nil, "decode", "--type", "searchResponse", path)
	require.NoError(t, err)
	require.NotContains(t, out, "close : ")
	require.Contains(t, out, "searchResponse : ")

	_, err = run(t, tools.DefaultConfig(), nil, "decode", "--type", "searchReply", path)
	require.ErrorContains(t, err, `unknown PDU type "searchReply"`)

	path = writeFile(t, closeWire, brokenWire)
	out, err = run(t, tools.DefaultConfig(), nil, "decode", path)
	require.ErrorContains(t, err, "1 of 2 PDUs failed to decode")
	require.Contains(t, out, "close : ")
}

func TestVerify(t *testing.T) {
	tu.SetT(t)
	quietLogs(t)

	path := writeFile(t, closeWire, searchWire)
	out, err := run(t, tools.DefaultConfig(), nil, "verify", path)
	require.NoError(t, err)
	require.Equal(t, "        pdus=2\n    verified=2\n      failed=0\nnoncanonical=1\n", out)

	path = writeFile(t, brokenWire)
	_, err = run(t, tools.DefaultConfig(), nil, "verify", path)
	require.ErrorContains(t, err, "1 of 1 PDUs failed verification")

	// truncated input
	path = writeFile(t, closeWire[:6])
	_, err = run(t, tools.DefaultConfig(), nil, "verify", path)
	require.ErrorIs(t, err, ber.ErrUnexpectedEnd)
}

func TestCorpus(t *testing.T) {
	tu.SetT(t)
	quietLogs(t)

	cfg := tools.DefaultConfig()
	cfg.Corpus.Path = filepath.Join(t.TempDir(), "corpus")

	path := writeFile(t, closeWire, searchWire, closeWire)
	out, err := run(t, cfg, nil, "corpus", "add", path)
	require.NoError(t, err)
	closeKey := corpus.KeyOf(closeWire).String()
	searchKey := corpus.KeyOf(searchWire).String()
	require.Equal(t, closeKey+"\n"+searchKey+"\n"+closeKey+"\n", out)

	out, err = run(t, cfg, nil, "corpus", "list")
	require.NoError(t, err)
	require.Contains(t, out, closeKey+"     14 close\n")
	require.Contains(t, out, searchKey+"     16 searchResponse\n")
	require.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 2)

	out, err = run(t, cfg, nil, "corpus", "show", closeKey)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "close : "))

	out, err = run(t, cfg, nil, "corpus", "verify")
	require.NoError(t, err)
	require.Contains(t, out, "verified=2")

	_, err = run(t, cfg, nil, "corpus", "remove", searchKey)
	require.NoError(t, err)
	_, err = run(t, cfg, nil, "corpus", "show", searchKey)
	require.ErrorContains(t, err, "no unit with key")

	_, err = run(t, cfg, nil, "corpus", "show", "zz")
	require.Error(t, err)
}

func TestConfig(t *testing.T) {
	tu.SetT(t)

	file := filepath.Join(t.TempDir(), "z3950.yml")
	require.NoError(t, os.WriteFile(file, []byte(`log_level: DEBUG
log_json: true
limits:
  max_length: 4096
corpus:
  path: ""
`), 0o644))

	cfg := tools.DefaultConfig()
	require.NoError(t, cfg.Load(file))
	require.Equal(t, log.LevelDebug, cfg.LogLevel)
	require.True(t, cfg.LogJSON)
	require.Equal(t, 4096, cfg.Limits.MaxLength)
	require.Equal(t, ber.DefaultLimits.MaxDepth, cfg.Limits.MaxDepth)

	store := tu.NoErr(cfg.OpenCorpus())
	_, ok := store.(*corpus.MemoryStore)
	require.True(t, ok)
	require.NoError(t, store.Close())

	prev := log.Default()
	defer log.SetDefault(prev)
	buf := &bytes.Buffer{}
	cfg.ApplyLogger(buf)
	log.Debug("test", "configured")
	require.Contains(t, buf.String(), `"msg":"configured"`)

	require.NoError(t, os.WriteFile(file, []byte("log_level: LOUD\n"), 0o644))
	require.Error(t, tools.DefaultConfig().Load(file))
}
