// Command tsvsql converts a TSV file into SQL statements.
package main

import (
	"os"

	"github.com/nao1215/tsvsql/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
