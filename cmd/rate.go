package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/debtservice"
	"github.com/google/subcommands"
)

// rateCmd implements the "rate" command.
type rateCmd struct {
	rateFlags
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "prints the current bond yield and its source" }
func (*rateCmd) Usage() string {
	return `rate [-strict] [-manual <yield>]:

Fetches the long-term bond yield, the same way "run" does, and prints it.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) { c.rateFlags.SetFlags(f) }

func (c *rateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quote, err := c.resolver(c.apply(debtservice.DefaultConfig())).Resolve(ctx)
	if errors.Is(err, debtservice.ErrNoRate) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitNoRate
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not get the bond yield: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%v\t%s\n", quote.Yield, quote.Source)
	return subcommands.ExitSuccess
}
