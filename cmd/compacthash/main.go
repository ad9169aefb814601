// Command compacthash prints compacthash digests, extended output words and
// CIDs for files and stdin.
package main

import (
	"fmt"
	"os"

	"go.dw1.io/compacthash/internal/cli"
)

func main() {
	rc := cli.NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := rc.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "compacthash: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
