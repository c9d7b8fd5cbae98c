package csvutil

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/lepinkainen/bookaura/internal/testutil"
)

type query struct {
	ID       string
	Query    string
	Category string
}

func parseQuery(r Row) (query, error) {
	if r.Get("query") == "" {
		return query{}, errors.New("empty query")
	}
	return query{ID: r.Get("unique_id"), Query: r.Get("query"), Category: r.Get("category")}, nil
}

func TestProcessCSV(t *testing.T) {
	env := testutil.NewTestEnv(t)

	env.WriteFileString("queries.csv", `unique_id,type_nature,query,category
1,exact_match, Atomic Habits ,productivity
2,semantic,books about focus,
`)

	queries, err := ProcessCSV(env.Path("queries.csv"), parseQuery, ProcessorOptions{RequiredColumns: []string{"query"}})
	if err != nil {
		t.Fatalf("ProcessCSV() error = %v", err)
	}

	expected := []query{
		{ID: "1", Query: "Atomic Habits", Category: "productivity"},
		{ID: "2", Query: "books about focus"},
	}
	if len(queries) != len(expected) {
		t.Fatalf("expected %d queries, got %d", len(expected), len(queries))
	}
	for i, q := range queries {
		if q != expected[i] {
			t.Errorf("queries[%d] = %+v, want %+v", i, q, expected[i])
		}
	}
}

func TestProcessCSV_EmptyFile(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteFileString("empty.csv", "")

	if _, err := ProcessCSV(env.Path("empty.csv"), parseQuery, ProcessorOptions{}); err == nil {
		t.Error("expected error for empty file, got nil")
	}
}

func TestProcessCSV_FileNotFound(t *testing.T) {
	if _, err := ProcessCSV("/nonexistent/file.csv", parseQuery, ProcessorOptions{}); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestProcess_MissingRequiredColumn(t *testing.T) {
	_, err := Process(strings.NewReader("id,name\n1,x\n"), parseQuery, ProcessorOptions{RequiredColumns: []string{"query"}})
	if err == nil || !strings.Contains(err.Error(), `missing required column "query"`) {
		t.Fatalf("expected missing column error, got %v", err)
	}
}

func TestProcess_InvalidRecords(t *testing.T) {
	input := "unique_id,query\n1,\n2,focus\n"

	if _, err := Process(strings.NewReader(input), parseQuery, ProcessorOptions{}); err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected invalid record error on line 2, got %v", err)
	}

	queries, err := Process(strings.NewReader(input), parseQuery, ProcessorOptions{SkipInvalid: true})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(queries) != 1 || queries[0].ID != "2" {
		t.Fatalf("expected only record 2, got %+v", queries)
	}
}

func TestProcess_ByteOrderMarkAndShortRows(t *testing.T) {
	input := "\ufeffunique_id,query,category\n7,stoicism\n"

	queries, err := Process(strings.NewReader(input), parseQuery, ProcessorOptions{RequiredColumns: []string{"unique_id"}})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(queries) != 1 || queries[0].ID != "7" || queries[0].Category != "" {
		t.Fatalf("unexpected result %+v", queries)
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []string{"a", "b"}, [][]string{{"1", "x,y"}}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	want := "a,b\n1,\"x,y\"\n"
	if buf.String() != want {
		t.Errorf("Write() = %q, want %q", buf.String(), want)
	}
}
