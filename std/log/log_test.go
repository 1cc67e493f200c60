package log_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/opencatalog/z3950/std/log"
	tu "github.com/opencatalog/z3950/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

type streamTag string

func (s streamTag) String() string { return "stream-" + string(s) }

func TestParseLevel(t *testing.T) {
	tu.SetT(t)

	require.Equal(t, log.LevelDebug, tu.NoErr(log.ParseLevel("debug")))
	require.Equal(t, log.LevelWarn, tu.NoErr(log.ParseLevel(" WARNING ")))
	require.Error(t, tu.Err(log.ParseLevel("loud")))

	var l log.Level
	require.NoError(t, l.UnmarshalText([]byte("trace")))
	require.Equal(t, log.LevelTrace, l)
	require.Equal(t, []byte("TRACE"), tu.NoErr(l.MarshalText()))
}

func TestJSONLogger(t *testing.T) {
	tu.SetT(t)

	buf := &bytes.Buffer{}
	logger := log.NewJSON(buf)
	logger.Debug(nil, "hidden")
	require.Zero(t, buf.Len())

	logger.Warn(streamTag("in"), "short read", "offset", 12)
	line := map[string]any{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "WARN", line["level"])
	require.Equal(t, "short read", line["msg"])
	require.Equal(t, "stream-in", line["tag"])
	require.Equal(t, float64(12), line["offset"])

	require.Equal(t, log.LevelInfo, logger.SetLevel(log.LevelTrace))
	buf.Reset()
	logger.Trace("corpus", "opened")
	require.True(t, strings.Contains(buf.String(), `"level":"TRACE"`))
	require.True(t, strings.Contains(buf.String(), `"tag":"corpus"`))
}

func TestDefaultLogger(t *testing.T) {
	tu.SetT(t)

	prev := log.Default()
	defer log.SetDefault(prev)

	buf := &bytes.Buffer{}
	log.SetDefault(log.NewText(buf))
	log.Info(nil, "frame", "len", 3)
	require.Contains(t, buf.String(), "level=INFO")
	require.Contains(t, buf.String(), "msg=frame")
	require.False(t, log.HasTrace())
}
