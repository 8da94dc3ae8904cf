package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "stories.yaml", "stories:\n  - name: A\n    steps: [one, two]\n  - name: B\n    steps: []\n")

	out, err := runRoot(t, dir, "validate", "stories.yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ stories.yaml: 2 stories, 2 steps")
	assert.Contains(t, out, "warning: no steps in B")
}

func TestValidate_SchemaErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "stories.yaml", "stories:\n  - name: A\n")

	out, err := runRoot(t, dir, "validate", "stories.yaml")
	require.Error(t, err)

	var vErr *ValidationFailedError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Message, "schema error(s)")
	assert.Contains(t, out, "✗ stories.yaml")
	assert.Contains(t, out, "/stories/0")
}

func TestValidate_MarkdownWithoutStories(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plan.md", "# Plan\n\nNothing yet.\n")

	_, err := runRoot(t, dir, "validate", "plan.md")
	var vErr *ValidationFailedError
	require.True(t, errors.As(err, &vErr))
}

func TestValidate_Markdown(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plan.md", "## Story 1\n\n- Add phone bill\n- Start a new day\n")

	out, err := runRoot(t, dir, "validate", "plan.md")
	require.NoError(t, err)
	assert.Equal(t, "✓ plan.md: 1 stories, 2 steps\n", out)
}

func TestValidate_MissingFile(t *testing.T) {
	_, err := runRoot(t, t.TempDir(), "validate", "missing.yaml")
	require.Error(t, err)

	var vErr *ValidationFailedError
	assert.False(t, errors.As(err, &vErr))
}
