package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/drewdunne/responder/internal/intent"
)

// maxLineBytes bounds a single question line.
const maxLineBytes = 1 << 20

// batchLine is one JSON output line of the batch command.
type batchLine struct {
	Query string `json:"query"`
	intent.Answer
}

func newBatchCommand(a *app) *cobra.Command {
	var (
		file    string
		workers int
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Answer one question per input line",
		Long: `Answer one question per line read from stdin or --file. Questions are
answered concurrently and printed in input order.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if workers < 1 {
				return fmt.Errorf("--workers must be at least 1, got %d", workers)
			}

			in := cmd.InOrStdin()
			if file != "" {
				f, err := os.Open(file)
				if err != nil {
					return fmt.Errorf("opening questions file: %w", err)
				}
				defer f.Close()
				in = f
			}

			questions, err := readLines(in)
			if err != nil {
				return err
			}

			answers, err := a.answerAll(cmd, questions, workers)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)
			for i, answer := range answers {
				if asJSON {
					if err := enc.Encode(batchLine{Query: questions[i], Answer: answer}); err != nil {
						return err
					}
					continue
				}
				fmt.Fprintln(out, answer.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read questions from file instead of stdin")
	cmd.Flags().IntVarP(&workers, "workers", "w", runtime.NumCPU(), "Number of concurrent workers")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print one JSON answer per line")

	return cmd
}

// answerAll resolves questions with at most workers goroutines. Answers are
// returned in question order.
func (a *app) answerAll(cmd *cobra.Command, questions []string, workers int) ([]intent.Answer, error) {
	d := intent.NewDispatcher(a.cfg.Responder)
	answers := make([]intent.Answer, len(questions))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)
	for i, q := range questions {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			answers[i] = a.resolve(d, q)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return answers, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineBytes)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading questions: %w", err)
	}
	return lines, nil
}
