// Package cmd implements the CLI application to estimate the debt service.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/debtservice"
	"github.com/etnz/debtservice/tradingecon"
	"github.com/etnz/debtservice/valet"
	"github.com/etnz/debtservice/yahoo"
	"github.com/google/subcommands"
)

// DefaultCommand is the command run when none is given.
const DefaultCommand = "run"

// WithDefault returns args, or the DefaultCommand if args is empty.
func WithDefault(args []string) []string {
	if len(args) == 0 {
		return []string{DefaultCommand}
	}
	return args
}

// ExitNoRate is the exit status when no rate could be obtained and no fallback is allowed.
//
// A supervisor (cron, CI) can tell it apart from any other failure.
const ExitNoRate subcommands.ExitStatus = 3

// Commands is the list of all the commands of the application.
var Commands = []subcommands.Command{
	&runCmd{},
	&rateCmd{},
	&estimateCmd{},
	&historyCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// Rate source addresses.
var (
	tradingEconomicsURL = tradingecon.Canada30Y
	valetURL            = valet.BaseURL
	yahooURL            = yahoo.BaseURL
)

// configFlags are the flags that shape the estimate.
type configFlags struct {
	spread     float64
	households int
}

func (c *configFlags) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.spread, "spread", float64(debtservice.DefaultSpread), "municipal spread over the bond yield, in percent")
	f.IntVar(&c.households, "households", 0, "number of households sharing the debt, to report the cost per household")
}

// config returns the estimate configuration.
func (c *configFlags) config() debtservice.Config {
	cfg := debtservice.DefaultConfig()
	cfg.Spread = debtservice.Percent(c.spread)
	cfg.Households = c.households
	return cfg
}

// rateFlags are the flags that shape the rate acquisition.
type rateFlags struct {
	manual   float64
	fallback float64
	strict   bool
	cache    bool
}

func (r *rateFlags) SetFlags(f *flag.FlagSet) {
	def := debtservice.DefaultConfig()
	f.Float64Var(&r.manual, "manual", float64(def.Manual), "manual bond yield in percent, overrides all sources when > 0")
	f.Float64Var(&r.fallback, "fallback", float64(def.Fallback), "bond yield in percent used when all sources fail")
	f.BoolVar(&r.strict, "strict", false, fmt.Sprintf("do not use the fallback, exit with status %d when all sources fail", ExitNoRate))
	f.BoolVar(&r.cache, "cache", false, "cache successful source responses on disk until the end of the day")
}

// apply returns cfg with the rate flags applied.
func (r *rateFlags) apply(cfg debtservice.Config) debtservice.Config {
	cfg.Manual = debtservice.Percent(r.manual)
	cfg.Fallback = debtservice.Percent(r.fallback)
	return cfg
}

// resolver returns the rate resolver of cfg: manual override first, then the scraper, the official API, and the market proxy.
func (r *rateFlags) resolver(cfg debtservice.Config) debtservice.Resolver {
	return debtservice.Resolver{
		Sources: []debtservice.Source{
			debtservice.Manual(cfg.Manual),
			tradingecon.Source(debtservice.NewClient(tradingecon.Timeout, r.cache), tradingEconomicsURL, tradingecon.Canada30YLabel),
			valet.Source(debtservice.NewClient(valet.Timeout, r.cache), valetURL, valet.LongTermBond),
			yahoo.Source(debtservice.NewClient(yahoo.Timeout, r.cache), yahooURL, yahoo.Symbol),
		},
		Fallback: cfg.Fallback,
		Strict:   r.strict,
	}
}

// printMarkdown prints md to stdout, styled when stdout is a terminal.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Fprint(os.Stdout, out)
}
