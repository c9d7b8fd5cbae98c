// Package bench measures search latency against a running book service.
package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/lepinkainen/bookaura/internal/bookapi"
	"github.com/lepinkainen/bookaura/internal/csvutil"
	"github.com/lepinkainen/bookaura/internal/errors"
)

// Input columns
const (
	ColumnID       = "unique_id"
	ColumnType     = "type_nature"
	ColumnQuery    = "query"
	ColumnCategory = "category"
)

// DefaultRuns is how often each scenario is repeated.
const DefaultRuns = 10

// QueryTypeNonExistent marks queries that should find nothing.
const QueryTypeNonExistent = "non_existent"

// Categories used for the filtered scenario when a query has none of its own.
var (
	fallbackCategories    = []string{"relationships"}
	nonExistentCategories = []string{"relationships", "biography"}
)

// Query is one row of the benchmark input.
type Query struct {
	ID       string
	Type     string
	Text     string
	Category string
}

// Categories returns the category filters tried for q in the filtered
// scenario. A category of "-1" means none was given.
func (q Query) Categories() []string {
	if q.Category != "" && q.Category != "-1" {
		return []string{q.Category}
	}
	if q.Type == QueryTypeNonExistent {
		return append([]string(nil), nonExistentCategories...)
	}
	return append([]string(nil), fallbackCategories...)
}

// Result is a single timed search.
type Result struct {
	QueryID   string
	QueryType string
	Query     string
	// Category is empty for the unfiltered scenario.
	Category string
	Latency  time.Duration
	Results  int
	Err      error
}

// Filtered reports whether the search used a category filter.
func (r Result) Filtered() bool {
	return r.Category != ""
}

// LoadQueries reads benchmark queries from a CSV file.
func LoadQueries(path string) ([]Query, error) {
	return csvutil.ProcessCSV(path, parseQuery, queryOptions)
}

// ParseQueries reads benchmark queries from r.
func ParseQueries(r io.Reader) ([]Query, error) {
	return csvutil.Process(r, parseQuery, queryOptions)
}

var queryOptions = csvutil.ProcessorOptions{
	RequiredColumns: []string{ColumnID, ColumnType, ColumnQuery},
	SkipInvalid:     true,
}

func parseQuery(row csvutil.Row) (Query, error) {
	q := Query{
		ID:       row.Get(ColumnID),
		Type:     row.Get(ColumnType),
		Text:     row.Get(ColumnQuery),
		Category: row.Get(ColumnCategory),
	}
	if q.Text == "" {
		return Query{}, fmt.Errorf("line %d: empty query", row.Line)
	}
	return q, nil
}

// Searcher is the part of the client the benchmark exercises.
type Searcher interface {
	Search(ctx context.Context, req bookapi.SearchRequest) ([]bookapi.Book, error)
}

// Runner times repeated searches.
type Runner struct {
	Searcher Searcher
	Runs     int
	// Now defaults to time.Now.
	Now func() time.Time
}

// Run executes every query Runs times without a filter and Runs times per
// filter category. Results are returned in execution order.
func (r *Runner) Run(ctx context.Context, queries []Query) ([]Result, error) {
	runs := r.Runs
	if runs <= 0 {
		runs = DefaultRuns
	}

	var results []Result
	for _, q := range queries {
		slog.Info("Benchmarking query", "id", q.ID, "type", q.Type, "query", q.Text)

		scenarios := append([]string{""}, q.Categories()...)
		for _, category := range scenarios {
			for i := 0; i < runs; i++ {
				if err := ctx.Err(); err != nil {
					return results, err
				}
				results = append(results, r.measure(ctx, q, category))
			}
		}
	}
	return results, nil
}

func (r *Runner) measure(ctx context.Context, q Query, category string) Result {
	now := r.Now
	if now == nil {
		now = time.Now
	}

	start := now()
	books, err := r.Searcher.Search(ctx, bookapi.SearchRequest{Query: q.Text, Category: category})
	elapsed := now().Sub(start)

	// No matches is a valid outcome for a latency run
	if errors.IsNotFound(err) {
		err = nil
	}
	if err != nil {
		slog.Warn("Search failed", "id", q.ID, "category", category, "error", err)
	}

	return Result{
		QueryID:   q.ID,
		QueryType: q.Type,
		Query:     q.Text,
		Category:  category,
		Latency:   elapsed,
		Results:   len(books),
		Err:       err,
	}
}

// Summary holds mean latencies for one query type. Failed runs are excluded.
type Summary struct {
	QueryType  string
	NoFilter   time.Duration
	WithFilter time.Duration
	// Samples counts successful runs per scenario.
	NoFilterSamples   int
	WithFilterSamples int
	Failures          int
}

// Summarize groups results by query type in order of first appearance.
func Summarize(results []Result) []Summary {
	type acc struct {
		summary    Summary
		noFilter   time.Duration
		withFilter time.Duration
	}

	var order []string
	byType := make(map[string]*acc)
	for _, res := range results {
		a, ok := byType[res.QueryType]
		if !ok {
			a = &acc{summary: Summary{QueryType: res.QueryType}}
			byType[res.QueryType] = a
			order = append(order, res.QueryType)
		}

		switch {
		case res.Err != nil:
			a.summary.Failures++
		case res.Filtered():
			a.withFilter += res.Latency
			a.summary.WithFilterSamples++
		default:
			a.noFilter += res.Latency
			a.summary.NoFilterSamples++
		}
	}

	summaries := make([]Summary, 0, len(order))
	for _, queryType := range order {
		a := byType[queryType]
		if a.summary.NoFilterSamples > 0 {
			a.summary.NoFilter = a.noFilter / time.Duration(a.summary.NoFilterSamples)
		}
		if a.summary.WithFilterSamples > 0 {
			a.summary.WithFilter = a.withFilter / time.Duration(a.summary.WithFilterSamples)
		}
		summaries = append(summaries, a.summary)
	}
	return summaries
}

// WriteSummary prints the mean latencies as a table.
func WriteSummary(w io.Writer, summaries []Summary) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	t.Style().Format.Header = text.FormatDefault
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})

	t.AppendHeader(table.Row{"Query type", "Avg no filter (s)", "Avg with filter (s)", "Failures"})
	for _, s := range summaries {
		t.AppendRow(table.Row{
			s.QueryType,
			seconds(s.NoFilter, s.NoFilterSamples),
			seconds(s.WithFilter, s.WithFilterSamples),
			s.Failures,
		})
	}
	t.Render()
}

// WriteResults writes one CSV row per timed search.
func WriteResults(w io.Writer, results []Result) error {
	header := []string{"prompt_id", "query_type", "query_text", "category_tested", "response_time_sec", "result_count", "error"}
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		category := res.Category
		if category == "" {
			category = "None"
		}
		latency := ""
		errText := ""
		if res.Err != nil {
			errText = res.Err.Error()
		} else {
			latency = strconv.FormatFloat(res.Latency.Seconds(), 'f', 4, 64)
		}
		rows = append(rows, []string{
			res.QueryID,
			res.QueryType,
			res.Query,
			category,
			latency,
			strconv.Itoa(res.Results),
			strings.TrimSpace(errText),
		})
	}
	return csvutil.Write(w, header, rows)
}

func seconds(d time.Duration, samples int) string {
	if samples == 0 {
		return "n/a"
	}
	return strconv.FormatFloat(d.Seconds(), 'f', 4, 64)
}
