package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/etnz/debtservice"
	"github.com/etnz/debtservice/renderer"
	"github.com/google/subcommands"
)

// estimateCmd implements the "estimate" command.
type estimateCmd struct {
	configFlags
}

func (*estimateCmd) Name() string     { return "estimate" }
func (*estimateCmd) Synopsis() string { return "estimates the debt service for a given bond yield" }
func (*estimateCmd) Usage() string {
	return `estimate [-spread <percent>] [-households <n>] <yield>:

Prints the estimate of the annual debt service of all projects, if the bond
yield was <yield> percent. Nothing is fetched and nothing is logged.
`
}

func (c *estimateCmd) SetFlags(f *flag.FlagSet) { c.configFlags.SetFlags(f) }

func (c *estimateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: estimate requires exactly one bond yield argument\n")
		return subcommands.ExitUsageError
	}
	yield, err := strconv.ParseFloat(f.Arg(0), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid bond yield %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}

	rec := debtservice.Estimate(c.config(), debtservice.Percent(yield), time.Now())
	if err := rec.Check(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.RenderEstimate(renderer.NewEstimate(rec, debtservice.Quote{Yield: rec.BondYield, Source: "manual"})))
	return subcommands.ExitSuccess
}
