package scaffold

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxisdev/praxis/errors"
	"github.com/praxisdev/praxis/scaffold/stack"
)

func pythonStacks() []stack.Definition {
	return []stack.Definition{{
		Name:           "api",
		Languages:      []string{"Python"},
		Frameworks:     []string{"FastAPI"},
		TestRunner:     "pytest",
		TypeChecker:    "mypy",
		Linter:         "ruff check .",
		PackageManager: "pip",
	}}
}

// snapshot reads every file under root into a map keyed by relative path.
func snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, _ := filepath.Rel(root, path)
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestInit_InvalidPlatformFailsBeforeAnyMutation(t *testing.T) {
	root := t.TempDir()

	_, err := Init(root, []string{"invalid-platform"}, pythonStacks(), Options{})
	require.Error(t, err)
	assert.True(t, errors.IsUnknownPlatformError(err))

	entries, readErr := os.ReadDir(root)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "validation failure must leave the project untouched")
}

func TestInit_InvalidListElementFailsWholeCall(t *testing.T) {
	root := t.TempDir()

	_, err := Init(root, []string{"claude", "nope"}, pythonStacks(), Options{})
	require.Error(t, err)
	assert.True(t, errors.IsUnknownPlatformError(err))

	entries, readErr := os.ReadDir(root)
	require.NoError(t, readErr)
	assert.Empty(t, entries)
}

func TestInit_AllProducesFullArtifactSet(t *testing.T) {
	root := t.TempDir()

	result, err := Init(root, []string{TargetAll}, pythonStacks(), Options{})
	require.NoError(t, err)
	assert.Equal(t, "all", result.Target)

	// Canonical tree, entrypoint, backlog.
	assert.FileExists(t, filepath.Join(root, "PRAXIS.md"))
	assert.FileExists(t, filepath.Join(root, "praxis", "backlog.md"))
	assert.FileExists(t, filepath.Join(root, "praxis", "overview.md"))
	assert.FileExists(t, filepath.Join(root, "praxis", "core", "reasoning.md"))
	assert.FileExists(t, filepath.Join(root, "praxis", "reference", "commands.md"))

	// One artifact set per enum member.
	assert.FileExists(t, filepath.Join(root, ".claude", "rules", "overview.md"))
	assert.FileExists(t, filepath.Join(root, ".claude", "agents", "planner.md"))
	assert.FileExists(t, filepath.Join(root, ".claude", "skills", "diagnostics", "SKILL.md"))
	assert.FileExists(t, filepath.Join(root, ".cursor", "rules", "overview.mdc"))
	assert.FileExists(t, filepath.Join(root, ".windsurf", "rules", "overview.md"))
	assert.FileExists(t, filepath.Join(root, ".github", "instructions", "overview.instructions.md"))

	assert.NotEmpty(t, result.Results)
}

func TestInit_EntrypointAndCanonicalDocsAreSubstituted(t *testing.T) {
	root := t.TempDir()

	_, err := Init(root, []string{"claude"}, pythonStacks(), Options{})
	require.NoError(t, err)

	entrypoint, err := os.ReadFile(filepath.Join(root, "PRAXIS.md"))
	require.NoError(t, err)
	assert.Contains(t, string(entrypoint), "| api | Python | FastAPI |")
	assert.NotContains(t, string(entrypoint), "| Component | Technology |")
	assert.Contains(t, string(entrypoint), "pytest {path}")

	commands, err := os.ReadFile(filepath.Join(root, "praxis", "reference", "commands.md"))
	require.NoError(t, err)
	assert.Contains(t, string(commands), "mypy")
	assert.NotContains(t, string(commands), "{typecheck commands}")
}

func TestInit_DryRunWritesNothing(t *testing.T) {
	root := t.TempDir()

	result, err := Init(root, []string{TargetAll}, pythonStacks(), Options{DryRun: true})
	require.NoError(t, err)
	assert.True(t, result.DryRun)
	assert.NotEmpty(t, result.Results)

	entries, readErr := os.ReadDir(root)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "dry run is a hard guarantee of zero mutation")
}

func TestInit_BacklogIsFirstWriteWins(t *testing.T) {
	root := t.TempDir()

	_, err := Init(root, []string{"claude"}, pythonStacks(), Options{})
	require.NoError(t, err)

	backlogPath := filepath.Join(root, "praxis", "backlog.md")
	require.NoError(t, os.WriteFile(backlogPath, []byte("# Backlog\n\n- real work item\n"), 0o644))

	// Even with overwrite, the backlog keeps its accumulated entries.
	_, err = Init(root, []string{"claude"}, pythonStacks(), Options{Overwrite: true})
	require.NoError(t, err)

	data, err := os.ReadFile(backlogPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "real work item")
}

func TestInit_RepeatedOverwriteRunsConverge(t *testing.T) {
	root := t.TempDir()
	opts := Options{Overwrite: true}

	_, err := Init(root, []string{TargetAll}, pythonStacks(), opts)
	require.NoError(t, err)
	first := snapshot(t, root)

	_, err = Init(root, []string{TargetAll}, pythonStacks(), opts)
	require.NoError(t, err)
	second := snapshot(t, root)

	require.Equal(t, keys(first), keys(second))
	for path := range first {
		assert.Equal(t, first[path], second[path], "file %s changed between runs", path)
	}
}

func TestInit_DetectsStacksWhenNoneSupplied(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "requirements.txt"), []byte("fastapi\npytest\n"), 0o644))

	result, err := Init(root, []string{"claude"}, nil, Options{})
	require.NoError(t, err)
	require.NotEmpty(t, result.Stacks)
	assert.Contains(t, result.Stacks[0].Languages, "Python")
}

func TestParseTarget(t *testing.T) {
	assert.Equal(t, []string{"all"}, ParseTarget("all"))
	assert.Equal(t, []string{"claude", "cursor"}, ParseTarget("claude, cursor"))
	assert.Nil(t, ParseTarget(""))
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
