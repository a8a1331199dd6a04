package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/etnz/bourso"
	"github.com/etnz/bourso/web"
	"github.com/google/subcommands"
)

type transferCmd struct {
	from   string
	to     string
	amount string
	reason string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "transfers funds between two of your accounts" }
func (*transferCmd) Usage() string {
	return `bourso transfer -from <account-id> -to <account-id> -amount <amount> [-reason <label>]

  Runs the portal's immediate transfer wizard. Account identifiers
  come from 'bourso accounts'. The amount must be at least 10 EUR and
  the reason at most 50 characters.

Usage Examples:
$ bourso transfer -from e2f5...8a62 -to d4e4...8ef9 -amount 125.50 -reason "Rent"

`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "debit account id")
	f.StringVar(&c.to, "to", "", "credit account id")
	f.StringVar(&c.amount, "amount", "", "amount in EUR, e.g. 125.50")
	f.StringVar(&c.reason, "reason", "", "transfer label, a default is used when empty")
}

var (
	progressDone    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	progressPending = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	progressLabel   = lipgloss.NewStyle().Bold(true)
)

// renderProgress draws one line of the wizard progress bar.
func renderProgress(p web.TransferProgress) string {
	step := p.StepNumber()
	bar := progressDone.Render(strings.Repeat("█", step)) +
		progressPending.Render(strings.Repeat("░", web.Steps-step))
	return fmt.Sprintf("%s [%2d/%d] %s", bar, step, web.Steps, progressLabel.Render(p.Description()))
}

func (c *transferCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fromID, err := bourso.NewAccountID(c.from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -from: %v\n", err)
		return subcommands.ExitUsageError
	}
	toID, err := bourso.NewAccountID(c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -to: %v\n", err)
		return subcommands.ExitUsageError
	}
	amount, err := bourso.ParseAmount(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: -amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	var reason bourso.TransferReason
	if c.reason != "" {
		if reason, err = bourso.NewTransferReason(c.reason); err != nil {
			fmt.Fprintf(os.Stderr, "Error: -reason: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	client, err := login(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	from, err := findAccount(ctx, client, fromID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	to, err := findAccount(ctx, client, toID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	for progress, err := range client.TransferFunds(ctx, amount, from, to, reason) {
		if err != nil {
			fmt.Fprintln(os.Stderr)
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", progress.Description(), err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(os.Stderr, "\r%s", renderProgress(progress))
	}
	fmt.Fprintln(os.Stderr)
	fmt.Printf("Transferred %s from %s to %s.\n", amount, from.Name, to.Name)
	return subcommands.ExitSuccess
}
