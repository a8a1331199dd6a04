package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/bourso/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "shows documentation in the terminal" }
func (*topicCmd) Usage() string {
	usage := `bourso topic [<topic>...]

  Shows documentation for the given topics, or the overview when none
  is given. "*" shows everything.
`
	if topics, err := docs.GetAllTopics(); err == nil {
		usage += "\n  Topics: " + strings.Join(topics, ", ") + "\n"
	}
	return usage + "\n"
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)
	return subcommands.ExitSuccess
}
