// Package cmd implements the CLI application to drive a BoursoBank session.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/bourso"
	"github.com/etnz/bourso/auth"
	"github.com/etnz/bourso/settings"
	"github.com/etnz/bourso/web"
	"github.com/google/subcommands"
	"golang.org/x/term"
)

// Commands lists the subcommands of the application.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&configureCmd{},
	&accountsCmd{},
	&transferCmd{},
	&orderCmd{},
	&cancelCmd{},
	&quoteCmd{},
	&positionsCmd{},
	&serveCmd{},
	&topicCmd{},
}

// printMarkdown renders markdown for the terminal, falling back to the
// raw text when the renderer cannot run (no TTY, unknown terminal).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// terminalCredentials prompts for the password on the controlling
// terminal, without echo.
type terminalCredentials struct{}

func (terminalCredentials) ReadPassword() (bourso.Password, error) {
	raw, err := prompt("Password: ")
	if err != nil {
		return "", err
	}
	return bourso.NewPassword(raw)
}

func (terminalCredentials) ReadMfaCode() (bourso.MfaCode, error) {
	raw, err := prompt("Confirmation code: ")
	if err != nil {
		return "", err
	}
	return bourso.NewMfaCode(raw)
}

func prompt(label string) (string, error) {
	fmt.Fprint(os.Stderr, label)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("cannot read input: %w", err)
	}
	return string(raw), nil
}

// newService wires the login service on the default settings store.
func newService() (*auth.Service, error) {
	store, err := settings.DefaultStore()
	if err != nil {
		return nil, err
	}
	service := auth.NewService(store, terminalCredentials{}, func() auth.Client { return web.NewClient() })
	service.ShowQR = func(payload string) {
		qr, err := web.RenderQRCode(payload)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Scan this payload with the BoursoBank app: %s\n", payload)
			return
		}
		fmt.Fprintln(os.Stderr, "Scan with the BoursoBank app:")
		fmt.Fprintln(os.Stderr, qr)
	}
	return service, nil
}

// login opens an authenticated portal session.
func login(ctx context.Context) (*web.Client, error) {
	service, err := newService()
	if err != nil {
		return nil, err
	}
	client, err := service.Login(ctx)
	if err != nil {
		return nil, err
	}
	return client.(*web.Client), nil
}

// findAccount resolves an account id against the dashboard account list.
func findAccount(ctx context.Context, client *web.Client, id bourso.AccountID) (bourso.Account, error) {
	accounts, err := client.GetAccounts(ctx, "")
	if err != nil {
		return bourso.Account{}, err
	}
	for _, a := range accounts {
		if a.ID == id {
			return a, nil
		}
	}
	return bourso.Account{}, fmt.Errorf("no account %s, run `bourso accounts` to list yours", id)
}
