package main

import (
	"os"

	"github.com/abeimler/fixed-size-string/cmd/fixedstr/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
