package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/lepinkainen/bookaura/internal/bookapi"
	"github.com/lepinkainen/bookaura/internal/output"
)

// AskCmd represents the ask command
type AskCmd struct {
	Book      string   `short:"b" help:"Title of the book" required:""`
	Summary   string   `short:"s" help:"Summary of the book given to the expert as context"`
	Question  []string `arg:"" help:"Question to ask"`
	Raw       bool     `help:"Print the answer without markdown formatting"`
	Output    string   `short:"o" help:"Write the answer to a file instead of stdout"`
	Overwrite bool     `help:"Overwrite the output file if it exists"`
}

func (a *AskCmd) Run() error {
	question := strings.TrimSpace(strings.Join(a.Question, " "))
	book := bookapi.Book{BookName: a.Book, Summary: a.Summary}

	answer, err := newClient().Ask(context.Background(), bookapi.NewAskRequest(book, question))
	if err != nil {
		return fmt.Errorf("%s: %w", bookapi.UserMessage(bookapi.EndpointBookBot, err), err)
	}

	return writeOutput(a.Output, a.Overwrite, func(w io.Writer) error {
		if a.Raw || a.Output != "" {
			_, err := fmt.Fprintln(w, answer)
			return err
		}
		_, err := fmt.Fprint(w, output.NewMarkdown(output.DefaultWrapWidth, false).Render(answer))
		return err
	})
}
