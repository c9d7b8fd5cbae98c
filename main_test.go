package main

import "testing"

func TestMainRunsCommandLine(t *testing.T) {
	runs := 0
	original := execute
	t.Cleanup(func() { execute = original })
	execute = func() { runs++ }

	main()

	if runs != 1 {
		t.Fatalf("main ran the command line %d times, want 1", runs)
	}
}
