package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/drewdunne/responder/internal/intent"
)

func newAskCommand(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ask [question...]",
		Short: "Answer one question",
		Long: `Answer one question given as arguments, or read from stdin when no
arguments are given.

Examples:
  responder ask what is 2 plus 3
  echo "which of the following numbers is the largest: 3, 9, 4" | responder ask`,
		RunE: func(cmd *cobra.Command, args []string) error {
			question, err := readQuestion(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			answer := a.resolve(intent.NewDispatcher(a.cfg.Responder), question)

			out := cmd.OutOrStdout()
			if asJSON {
				return json.NewEncoder(out).Encode(answer)
			}
			printAnswer(out, answer)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the answer as JSON")

	return cmd
}

// readQuestion joins args, or reads all of r when args is empty. Empty
// input is a question like any other and gets the clarification answer.
func readQuestion(r io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("reading question: %w", err)
	}
	return string(data), nil
}

// printAnswer writes the answer text, colored by kind when w is a terminal.
func printAnswer(w io.Writer, answer intent.Answer) {
	if !isTerminal(w) {
		fmt.Fprintln(w, answer.Text)
		return
	}

	c := answerColor(answer)
	c.EnableColor()
	c.Fprintln(w, answer.Text)
}

// answerColor picks red for errors, yellow for unanswered queries and green
// for values.
func answerColor(answer intent.Answer) *color.Color {
	switch answer.Kind {
	case intent.Error:
		return color.New(color.FgRed)
	case intent.NoMatch:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
