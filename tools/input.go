package tools

import (
	"io"
	"os"

	"github.com/opencatalog/z3950/std/ber"
	sio "github.com/opencatalog/z3950/std/utils/io"
	"github.com/spf13/cobra"
)

// openInput opens a named file, or the command input for "-".
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return os.Open(path)
}

// forEachFrame calls fn with every BER unit of the input at path.
func forEachFrame(cmd *cobra.Command, path string, limits ber.Limits, fn func(wire []byte, n *ber.Node) error) error {
	in, err := openInput(cmd, path)
	if err != nil {
		return err
	}
	defer in.Close()

	var fnErr error
	err = sio.ReadBerStream(in, func(wire []byte, n *ber.Node) bool {
		fnErr = fn(wire, n)
		return fnErr == nil
	}, nil, limits)
	if fnErr != nil {
		return fnErr
	}
	return err
}
