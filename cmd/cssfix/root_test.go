package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 runCommand executes the root command with args, capturing output
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestRootCmd_ScanMode(t *testing.T) {
	dir := t.TempDir()
	broken := "@import \"theme.css\";   */\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.css"), []byte(broken), 0644))

	out, err := runCommand(t, "--root", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Scanning for CSS errors in: "+dir)
	assert.Contains(t, out, "Found potential error in: "+filepath.Join(dir, "a.css"))
	assert.Contains(t, out, "Found 1 file(s) with potential errors.")

	// scan mode leaves the file untouched
	content, err := os.ReadFile(filepath.Join(dir, "a.css"))
	require.NoError(t, err)
	assert.Equal(t, broken, string(content))
}

func TestRootCmd_FixMode(t *testing.T) {
	dir := t.TempDir()
	broken := "@import \"theme.css\";   */\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.css"), []byte(broken), 0644))

	out, err := runCommand(t, "--root", dir, "--fix")
	require.NoError(t, err)

	assert.Contains(t, out, "Fixing CSS errors in: "+dir)
	assert.Contains(t, out, "Scan complete. Fixed 1 file(s).")

	content, err := os.ReadFile(filepath.Join(dir, "a.css"))
	require.NoError(t, err)
	assert.Equal(t, "@import \"theme.css\";\n", string(content))
}

func TestRootCmd_CleanTree(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.css"), []byte("body { color: red; }\n"), 0644))

	out, err := runCommand(t, "--root", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Scan complete. No common CSS errors found.")
}

func TestRootCmd_MissingRoot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does-not-exist")

	_, err := runCommand(t, "--root", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scanning "+dir)
}

func TestRootCmd_InvalidExclude(t *testing.T) {
	_, err := runCommand(t, "--root", t.TempDir(), "--exclude", "[invalid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating scanner")
}
