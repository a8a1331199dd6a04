package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bourso"
	"github.com/etnz/bourso/web"
	"github.com/google/subcommands"
)

type orderCmd struct {
	account  string
	symbol   string
	side     string
	quantity int
}

func (*orderCmd) Name() string     { return "order" }
func (*orderCmd) Synopsis() string { return "places a stock order on a brokerage account" }
func (*orderCmd) Usage() string {
	return `bourso order -account <account-id> -symbol <symbol> -side <buy|sell> -quantity <n>

  Prepares, checks and confirms a simple order on the trading board.
  The portal prefills the order type and validity; limit orders take
  the instrument's last traded price.

Usage Examples:
$ bourso order -account a9f8...2211 -symbol 1rTCW8 -side buy -quantity 3

`
}

func (c *orderCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "brokerage account id")
	f.StringVar(&c.symbol, "symbol", "", "Boursorama instrument symbol")
	f.StringVar(&c.side, "side", "buy", "buy or sell")
	f.IntVar(&c.quantity, "quantity", 0, "number of shares")
}

func (c *orderCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	accountID, err := bourso.NewAccountID(c.account)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -account: %v\n", err)
		return subcommands.ExitUsageError
	}
	symbol, err := bourso.NewSymbolID(c.symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -symbol: %v\n", err)
		return subcommands.ExitUsageError
	}
	var side web.OrderSide
	switch c.side {
	case "buy":
		side = web.Buy
	case "sell":
		side = web.Sell
	default:
		fmt.Fprintf(os.Stderr, "Error: -side must be buy or sell, got %q\n", c.side)
		return subcommands.ExitUsageError
	}
	if c.quantity <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -quantity must be positive\n")
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
	if account.Kind != bourso.Trading {
		fmt.Fprintf(os.Stderr, "Error: %s is a %s account, orders need a trading account\n", account.Name, account.Kind)
		return subcommands.ExitFailure
	}

	orderID, priceLimit, err := client.Order(ctx, side, account, symbol, c.quantity, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if priceLimit != nil {
		fmt.Printf("Order %s placed: %s %d x %s at %.2f.\n", orderID, c.side, c.quantity, symbol, *priceLimit)
	} else {
		fmt.Printf("Order %s placed: %s %d x %s.\n", orderID, c.side, c.quantity, symbol)
	}
	return subcommands.ExitSuccess
}
