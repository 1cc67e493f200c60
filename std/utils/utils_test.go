package utils_test

import (
	"testing"

	"github.com/opencatalog/z3950/std/utils"
	tu "github.com/opencatalog/z3950/std/utils/testutils"
	"github.com/stretchr/testify/require"
)

func TestIf(t *testing.T) {
	tu.SetT(t)

	require.Equal(t, "ok", utils.If(true, "ok", "FAIL"))
	require.Equal(t, 2, utils.If(false, 1, 2))
}
