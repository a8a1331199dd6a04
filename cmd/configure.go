package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bourso"
	"github.com/etnz/bourso/settings"
	"github.com/google/subcommands"
)

type configureCmd struct {
	clientNumber  string
	storePassword bool
}

func (*configureCmd) Name() string     { return "configure" }
func (*configureCmd) Synopsis() string { return "stores the client number and optionally the password" }
func (*configureCmd) Usage() string {
	return `bourso configure -client <number> [-store-password]

  Records the 8-digit client number in the settings file. With
  -store-password, also prompts for the password and stores it sealed
  to this installation. See 'bourso topic security' for the trade-off.

Usage Examples:
$ bourso configure -client 12345678
$ bourso configure -client 12345678 -store-password

`
}

func (c *configureCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.clientNumber, "client", "", "8-digit client number")
	f.BoolVar(&c.storePassword, "store-password", false, "prompt for the password and store it sealed")
}

func (c *configureCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	clientNumber, err := bourso.NewClientNumber(c.clientNumber)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := settings.DefaultStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	stored, err := store.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	stored.ClientNumber = string(clientNumber)

	if c.storePassword {
		password, err := terminalCredentials{}.ReadPassword()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		sealed, err := store.SealPassword(password)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		stored.SealedPassword = sealed
	}

	if err := store.Save(stored); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("Settings saved.")
	return subcommands.ExitSuccess
}
