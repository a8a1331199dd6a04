package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bourso/api"
	"github.com/etnz/bourso/web"
	"github.com/google/subcommands"
)

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serves the session client over a local REST API" }
func (*serveCmd) Usage() string {
	return `bourso serve [-addr <host:port>]

  Exposes accounts, quotes, orders and positions over HTTP for local
  automation. Authenticated endpoints read the credentials from the
  request body and open a fresh portal session each time; do not
  expose this API beyond localhost.

Usage Examples:
$ bourso serve
$ bourso serve -addr 127.0.0.1:9090

`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "127.0.0.1:8080", "listen address")
}

func (c *serveCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	server := api.NewServer(func() api.Session { return web.NewClient() })
	if err := server.ListenAndServe(c.addr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
