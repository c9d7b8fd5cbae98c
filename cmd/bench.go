package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/lepinkainen/bookaura/cmd/bench"
	"github.com/lepinkainen/bookaura/internal/bookapi"
	"github.com/lepinkainen/bookaura/internal/config"
)

// newBenchClient builds a client without the request guard so timings
// cover only the service round trip.
var newBenchClient = func() *bookapi.Client {
	return bookapi.NewClient(
		bookapi.WithBaseURL(config.APIURL),
		bookapi.WithTimeout(config.Timeout),
		bookapi.WithRateLimiter(nil),
	)
}

// BenchCmd represents the bench command
type BenchCmd struct {
	Input     string `short:"f" help:"CSV file with unique_id,type_nature,query,category columns" required:"" type:"existingfile"`
	Runs      int    `short:"n" help:"Repetitions per query and scenario" default:"10"`
	Output    string `short:"o" help:"Write per-run results to this CSV file"`
	Overwrite bool   `help:"Overwrite the results file if it exists"`
}

func (b *BenchCmd) Run() error {
	queries, err := bench.LoadQueries(b.Input)
	if err != nil {
		return fmt.Errorf("failed to load queries: %w", err)
	}
	if len(queries) == 0 {
		return fmt.Errorf("no queries found in %s", b.Input)
	}

	slog.Info("Starting benchmark", "queries", len(queries), "runs", b.Runs)
	runner := &bench.Runner{Searcher: newBenchClient(), Runs: b.Runs}
	results, err := runner.Run(context.Background(), queries)
	if err != nil {
		return fmt.Errorf("benchmark interrupted: %w", err)
	}

	bench.WriteSummary(stdout, bench.Summarize(results))

	if b.Output == "" {
		return nil
	}
	return writeOutput(b.Output, b.Overwrite, func(w io.Writer) error {
		return bench.WriteResults(w, results)
	})
}
