package envcheck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateExistingDirectory(t *testing.T) {
	res := Validate(t.TempDir())

	assert.True(t, res.OK())
	assert.Equal(t, "directory validation passed", res.Summary())
}

func TestValidateMissingTarget(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "new-project")
	res := Validate(dir)

	require.False(t, res.OK())
	assert.Contains(t, res.Errors[0], "target directory does not exist")
	// Parent is fine, so that is the only problem.
	assert.Len(t, res.Errors, 1)
}

func TestValidateMissingParent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "gone", "new-project")
	res := Validate(dir)

	require.False(t, res.OK())
	require.Len(t, res.Errors, 2)
	assert.Contains(t, res.Errors[0], "target directory does not exist")
	assert.Contains(t, res.Errors[1], "parent directory does not exist")
}

func TestValidateFileTarget(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	res := Validate(path)

	require.False(t, res.OK())
	assert.Contains(t, res.Errors[0], "not a directory")
}

func TestValidateUnwritableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { os.Chmod(dir, 0o755) })

	res := Validate(dir)

	require.False(t, res.OK())
	assert.Contains(t, res.Summary(), "no write permission")
}

func TestSummaryNumbersProblems(t *testing.T) {
	res := Result{Errors: []string{"first problem", "second problem"}}

	sum := res.Summary()
	assert.Contains(t, sum, "directory validation failed:")
	assert.Contains(t, sum, "1. first problem")
	assert.Contains(t, sum, "2. second problem")
}
