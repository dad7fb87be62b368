package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion of the commands.
//
// Flags are discovered from each command's SetFlags.
func Completion(cmds []subcommands.Command) *complete.Command {
	root := &complete.Command{Sub: make(map[string]*complete.Command)}
	for _, c := range cmds {
		f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(f)

		sub := &complete.Command{Flags: make(map[string]complete.Predictor)}
		f.VisitAll(func(fl *flag.Flag) {
			sub.Flags[fl.Name] = predictFlag(fl)
		})
		root.Sub[c.Name()] = sub
	}
	return root
}

// predictFlag returns the predictor of a flag's value.
func predictFlag(fl *flag.Flag) complete.Predictor {
	if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	if fl.Name == "log" {
		return predict.Files("*.csv")
	}
	return predict.Something
}
