package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/debtservice"
	"github.com/etnz/debtservice/renderer"
	"github.com/google/subcommands"
)

// runCmd implements the "run" command: the daily pipeline.
type runCmd struct {
	configFlags
	rateFlags
	ledgerFile string
	append     bool
	quiet      bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "fetches the bond yield, estimates the debt service and logs it" }
func (*runCmd) Usage() string {
	return `run [-log <file>] [-append] [-strict] [-manual <yield>]:

Fetches the long-term bond yield, estimates the annual debt service of all
projects, and records the estimate in the CSV log.

Sources are tried in order: manual override, TradingEconomics, Bank of
Canada, Yahoo. If all of them fail, the fallback rate is used, unless -strict
is set, then the command exits with status 3 and the log is left untouched.

By default the log is overwritten with the latest estimate. With -append,
estimates are appended, keeping only the latest one of each day.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	c.configFlags.SetFlags(f)
	c.rateFlags.SetFlags(f)
	f.StringVar(&c.ledgerFile, "log", debtservice.DefaultLedger, "path to the CSV log")
	f.BoolVar(&c.append, "append", false, "append to the log instead of overwriting it, one row per day")
	f.BoolVar(&c.quiet, "q", false, "do not print the estimate report")
}

func (c *runCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg := c.apply(c.config())

	quote, err := c.resolver(cfg).Resolve(ctx)
	if errors.Is(err, debtservice.ErrNoRate) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitNoRate
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not get the bond yield: %v\n", err)
		return subcommands.ExitFailure
	}

	rec := debtservice.Estimate(cfg, quote.Yield, time.Now())
	if err := rec.Check(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	policy := debtservice.Overwrite
	if c.append {
		policy = debtservice.AppendDedup
	}
	if err := debtservice.WriteLedger(c.ledgerFile, rec, policy); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing log file %q: %v\n", c.ledgerFile, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ Dashboard Updated.\n")

	if !c.quiet {
		printMarkdown(renderer.RenderEstimate(renderer.NewEstimate(rec, quote)))
	}
	return subcommands.ExitSuccess
}
