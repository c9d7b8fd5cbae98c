package fileutil

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/bookaura/internal/testutil"
)

func TestFileExists(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.WriteFileString("present.txt", "x")

	assert.True(t, FileExists(env.Path("present.txt")))
	assert.False(t, FileExists(env.Path("absent.txt")))
	assert.False(t, FileExists(env.RootDir()), "directories are not files")
}

func TestWriteFileWithOverwrite(t *testing.T) {
	testCases := []struct {
		name           string
		overwrite      bool
		setupExisting  bool
		expectedResult bool
		expectedData   string
	}{
		{name: "new file", expectedResult: true, expectedData: "new content"},
		{name: "existing file with overwrite", overwrite: true, setupExisting: true, expectedResult: true, expectedData: "new content"},
		{name: "existing file without overwrite", setupExisting: true, expectedResult: false, expectedData: "old content"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			env := testutil.NewTestEnv(t)
			if tc.setupExisting {
				env.WriteFileString("out/result.txt", "old content")
			}

			result, err := WriteFileWithOverwrite(env.Path("out", "result.txt"), []byte("new content"), 0o644, tc.overwrite)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedResult, result)
			assert.Equal(t, tc.expectedData, env.ReadFileString("out/result.txt"))
		})
	}
}

func TestWriteRendered(t *testing.T) {
	env := testutil.NewTestEnv(t)

	written, err := WriteRendered(env.Path("nested", "books.json"), false, func(w io.Writer) error {
		_, err := fmt.Fprint(w, `[{"book_name":"Dune"}]`)
		return err
	})
	require.NoError(t, err)
	assert.True(t, written)
	assert.Equal(t, `[{"book_name":"Dune"}]`, env.ReadFileString("nested/books.json"))
}

func TestWriteRenderedRenderError(t *testing.T) {
	env := testutil.NewTestEnv(t)
	boom := errors.New("boom")

	written, err := WriteRendered(env.Path("never.txt"), true, func(io.Writer) error { return boom })
	require.ErrorIs(t, err, boom)
	assert.False(t, written)
	assert.False(t, env.FileExists("never.txt"))
}
