package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const oneAtomTraceFile = `1
1
---
0
0
---
All Operators
---
p`

// captureStdout runs fn with os.Stdout redirected to a pipe and returns
// everything fn wrote to it.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	old := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestEnumCmd_FindsAtomFormula(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.trace")
	require.NoError(t, os.WriteFile(path, []byte(oneAtomTraceFile), 0o644))

	out := captureStdout(t, func() {
		rootCmd.SetArgs([]string{"enum", path, "0", "10", "3", "10"})
		require.NoError(t, rootCmd.Execute())
	})

	require.Equal(t, "p\n", out)
}

func TestEnumCmd_ReturnsErrorOnMalformedTraceFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.trace")
	require.NoError(t, os.WriteFile(path, []byte("not a trace file"), 0o644))

	rootCmd.SetArgs([]string{"enum", path, "0", "10", "3", "10"})
	err := rootCmd.Execute()
	require.Error(t, err)
	require.True(t, strings.Contains(err.Error(), "tracefile"))
}
