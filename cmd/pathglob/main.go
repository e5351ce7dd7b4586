// Pathglob expands path and glob patterns from the command line, locally or
// over sftp.
package main

import (
	"os"

	"github.com/shellkit/pathglob/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
