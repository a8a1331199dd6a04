package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bourso"
	"github.com/etnz/bourso/renderer"
	"github.com/etnz/bourso/web"
	"github.com/google/subcommands"
)

type quoteCmd struct {
	symbol string
	length int64
}

func (*quoteCmd) Name() string     { return "quote" }
func (*quoteCmd) Synopsis() string { return "fetches end-of-day quotes for an instrument" }
func (*quoteCmd) Usage() string {
	return `bourso quote -symbol <symbol> [-length <days>]

  Fetches end-of-day ticks from the public feed, no login required,
  and reports highest, lowest and average close over the window.

Usage Examples:
$ bourso quote -symbol 1rTCW8
$ bourso quote -symbol 1rTCW8 -length 90

`
}

func (c *quoteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "symbol", "", "Boursorama instrument symbol")
	f.Int64Var(&c.length, "length", 30, "number of trading days to fetch")
}

func (c *quoteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbol, err := bourso.NewSymbolID(c.symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -symbol: %v\n", err)
		return subcommands.ExitUsageError
	}

	// The end-of-day feed is public, no login needed.
	client := web.NewClient()
	ticks, err := client.GetTicks(ctx, symbol, c.length, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Ticks(ticks, c.length))
	return subcommands.ExitSuccess
}
