package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// runRoot executes the root command with args in dir and returns stdout.
func runRoot(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	return runRootWithInput(t, dir, "", args...)
}

// runRootWithInput is runRoot with stdin set to input.
func runRootWithInput(t *testing.T, dir, input string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(dir)

	var buf bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(input))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}
