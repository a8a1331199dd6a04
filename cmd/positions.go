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

type positionsCmd struct {
	account string
}

func (*positionsCmd) Name() string     { return "positions" }
func (*positionsCmd) Synopsis() string { return "shows the valuation summary of a brokerage account" }
func (*positionsCmd) Usage() string {
	return `bourso positions -account <account-id>

  Logs in and renders the account's cash balance, total value and
  every open position.

Usage Examples:
$ bourso positions -account a9f8...2211

`
}

func (c *positionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "brokerage account id")
}

func (c *positionsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	accountID, err := bourso.NewAccountID(c.account)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -account: %v\n", err)
		return subcommands.ExitUsageError
	}

	client, err := login(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	account, err := findAccount(ctx, client, accountID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	items, err := client.TradingSummary(ctx, account)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Positions(items))
	return subcommands.ExitSuccess
}
