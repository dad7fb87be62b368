// Command dsc estimates the annual debt service of the municipal capital projects.
//
// Without a command, dsc runs "run". Run it daily:
//
//	dsc run -append
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/debtservice/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	// exits when invoked by the shell for completion.
	cmd.Completion(cmd.Commands).Complete(name)

	flag.Parse()
	if flag.NArg() == 0 {
		flag.CommandLine.Parse(cmd.WithDefault(nil))
	}
	os.Exit(int(commander.Execute(context.Background())))
}
