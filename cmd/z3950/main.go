package main

import (
	"os"

	"github.com/opencatalog/z3950/cmd"
)

func main() {
	if err := cmd.CmdZ3950.Execute(); err != nil {
		os.Exit(1)
	}
}
