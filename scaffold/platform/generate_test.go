package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/praxisdev/praxis/scaffold/output"
	"github.com/praxisdev/praxis/scaffold/stack"
)

func testStacks() []stack.Definition {
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

func readGenerated(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func TestGenerate_WritesEveryWrapperDocument(t *testing.T) {
	root := t.TempDir()
	desc, err := Lookup("cursor")
	require.NoError(t, err)

	lines, err := Generate(root, desc, testStacks(), output.Options{})
	require.NoError(t, err)

	for _, id := range DocOrder {
		assert.FileExists(t, filepath.Join(root, ".cursor", "rules", id+".mdc"))
	}
	assert.FileExists(t, filepath.Join(root, ".cursor", "rules", "praxis-summary.mdc"))
	// one line per wrapper doc plus the summary
	assert.Len(t, lines, len(DocOrder)+1)
}

func TestGenerate_AgentCapablePlatformGetsAgentsAndSkill(t *testing.T) {
	root := t.TempDir()
	desc, err := Lookup("claude")
	require.NoError(t, err)

	_, err = Generate(root, desc, testStacks(), output.Options{})
	require.NoError(t, err)

	for _, role := range AgentRoles {
		assert.FileExists(t, filepath.Join(root, ".claude", "agents", role+".md"))
	}
	assert.FileExists(t, filepath.Join(root, ".claude", "skills", "diagnostics", "SKILL.md"))
}

func TestGenerate_NonAgentPlatformGetsNoAgents(t *testing.T) {
	root := t.TempDir()
	desc, err := Lookup("windsurf")
	require.NoError(t, err)

	_, err = Generate(root, desc, testStacks(), output.Options{})
	require.NoError(t, err)

	assert.NoDirExists(t, filepath.Join(root, ".windsurf", "agents"))
	assert.NoDirExists(t, filepath.Join(root, ".claude"))
}

func TestGenerate_RewritesCanonicalLinksToFlatLayout(t *testing.T) {
	root := t.TempDir()
	desc, err := Lookup("claude")
	require.NoError(t, err)

	_, err = Generate(root, desc, testStacks(), output.Options{})
	require.NoError(t, err)

	// The reasoning wrapper links ../overview.md in canonical layout;
	// flattened, that becomes a bare sibling.
	reasoning := readGenerated(t, root, ".claude/rules/reasoning.md")
	assert.Contains(t, reasoning, "(overview.md)")
	assert.NotContains(t, reasoning, "(../overview.md)")

	// The overview wrapper's legacy entrypoint reference climbs out of the
	// rules directory to the project root.
	overview := readGenerated(t, root, ".claude/rules/overview.md")
	assert.Contains(t, overview, "(../../PRAXIS.md)")
}

func TestGenerate_AppliesStackPlaceholders(t *testing.T) {
	root := t.TempDir()
	desc, err := Lookup("claude")
	require.NoError(t, err)

	_, err = Generate(root, desc, testStacks(), output.Options{})
	require.NoError(t, err)

	commands := readGenerated(t, root, ".claude/rules/commands.md")
	assert.Contains(t, commands, "mypy")
	assert.Contains(t, commands, "ruff check .")
	assert.Contains(t, commands, "pytest {path}")
	assert.NotContains(t, commands, "{typecheck commands}")

	stacks := readGenerated(t, root, ".claude/rules/stacks.md")
	assert.Contains(t, stacks, "| api | Python | FastAPI |")
}

func TestGenerate_PrependsFrontMatter(t *testing.T) {
	root := t.TempDir()
	desc, err := Lookup("cursor")
	require.NoError(t, err)

	_, err = Generate(root, desc, testStacks(), output.Options{})
	require.NoError(t, err)

	overview := readGenerated(t, root, ".cursor/rules/overview.mdc")
	assert.True(t, strings.HasPrefix(overview, "---\n"), "front matter must lead the document")
	assert.Contains(t, overview, "alwaysApply: true")

	review := readGenerated(t, root, ".cursor/rules/review.mdc")
	assert.Contains(t, review, "alwaysApply: false")
}

func TestGenerate_PlatformsAreIndependent(t *testing.T) {
	root := t.TempDir()
	for _, id := range All {
		desc, err := Lookup(string(id))
		require.NoError(t, err)
		_, err = Generate(root, desc, testStacks(), output.Options{})
		require.NoError(t, err)
	}

	// No platform wrote into another's directory.
	assert.FileExists(t, filepath.Join(root, ".claude", "rules", "overview.md"))
	assert.FileExists(t, filepath.Join(root, ".cursor", "rules", "overview.mdc"))
	assert.FileExists(t, filepath.Join(root, ".windsurf", "rules", "overview.md"))
	assert.FileExists(t, filepath.Join(root, ".github", "instructions", "overview.instructions.md"))
}

func TestLookup_UnknownPlatform(t *testing.T) {
	_, err := Lookup("emacs")
	assert.Error(t, err)
	assert.False(t, Valid("emacs"))
	assert.True(t, Valid("claude"))
}
