package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bourso"
	"github.com/google/subcommands"
)

type cancelCmd struct {
	account string
	order   string
}

func (*cancelCmd) Name() string     { return "cancel" }
func (*cancelCmd) Synopsis() string { return "cancels a pending stock order" }
func (*cancelCmd) Usage() string {
	return `bourso cancel -account <account-id> -order <reference>

  Cancels an order that has not executed yet. The reference is the one
  printed by 'bourso order'.

Usage Examples:
$ bourso cancel -account a9f8...2211 -order ORD123456

`
}

func (c *cancelCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "brokerage account id")
	f.StringVar(&c.order, "order", "", "order reference to cancel")
}

func (c *cancelCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	accountID, err := bourso.NewAccountID(c.account)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -account: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.order == "" {
		fmt.Fprintf(os.Stderr, "Error: -order is required\n")
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
	if err := client.CancelOrder(ctx, account, c.order); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Order %s cancelled.\n", c.order)
	return subcommands.ExitSuccess
}
