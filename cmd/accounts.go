package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bourso"
	"github.com/etnz/bourso/renderer"
	"github.com/google/subcommands"
)

type accountsCmd struct {
	kind string
}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "lists the accounts visible on the dashboard" }
func (*accountsCmd) Usage() string {
	return `bourso accounts [-kind <banking|savings|trading|loans>]

  Logs in and lists every account with its identifier, name, bank and
  balance. -kind restricts the listing to one family.

Usage Examples:
$ bourso accounts
$ bourso accounts -kind trading

`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "kind", "", "account family to list, all by default")
}

func (c *accountsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind := bourso.AccountKind(c.kind)
	if c.kind != "" {
		found := false
		for _, k := range bourso.Kinds() {
			if k == kind {
				found = true
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "Error: unknown account kind %q\n", c.kind)
			return subcommands.ExitUsageError
		}
	}

	client, err := login(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	accounts, err := client.GetAccounts(ctx, kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Accounts(accounts))
	return subcommands.ExitSuccess
}
