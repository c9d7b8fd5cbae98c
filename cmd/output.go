package cmd

import (
	"io"
	"os"

	"github.com/lepinkainen/bookaura/internal/fileutil"
)

var stdout io.Writer = os.Stdout

// writeOutput sends rendered output to path, or to stdout when path is empty.
func writeOutput(path string, overwrite bool, render func(io.Writer) error) error {
	if path == "" {
		return render(stdout)
	}
	_, err := fileutil.WriteRendered(path, overwrite, render)
	return err
}
