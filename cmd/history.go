package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/debtservice"
	"github.com/etnz/debtservice/renderer"
	"github.com/google/subcommands"
)

// historyCmd implements the "history" command.
type historyCmd struct {
	ledgerFile string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "prints the CSV log" }
func (*historyCmd) Usage() string {
	return `history [-log <file>]:

Prints all the estimates recorded in the CSV log.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ledgerFile, "log", debtservice.DefaultLedger, "path to the CSV log")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rows, err := debtservice.ReadLedger(c.ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: log file %q does not exist yet\n", c.ledgerFile)
		err = nil
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading log file: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderHistory(&renderer.History{Path: c.ledgerFile, Rows: rows}))
	return subcommands.ExitSuccess
}
