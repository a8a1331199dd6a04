package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/bourso/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion handles shell completion requests and returns immediately in
// a regular run. Install it with COMP_INSTALL=1 bourso.
func completion() {
	sub := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	root := &complete.Command{Sub: sub}
	root.Complete("bourso")
}
