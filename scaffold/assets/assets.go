// Package assets holds the compiled-in template tree: the root entrypoint
// template, the nested canonical-document tree, the flat wrapper-template
// registry, and the agent/skill/auxiliary templates.
package assets

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/praxisdev/praxis/errors"
)

//go:embed templates
var templates embed.FS

const (
	entrypointPath = "templates/PRAXIS.md"
	canonicalRoot  = "templates/canonical"
	wrapperRoot    = "templates/wrappers"
	// "aux" is a Windows-reserved filename that go:embed silently skips,
	// so the auxiliary templates live under "auxiliary" instead.
	auxRoot   = "templates/auxiliary"
	agentRoot = "templates/agents"
	skillRoot = "templates/skills"
)

// Entrypoint returns the root entrypoint document template.
func Entrypoint() string {
	return mustRead(entrypointPath)
}

// Canonical returns the canonical document at the given tree-relative path.
func Canonical(relPath string) (string, error) {
	data, err := templates.ReadFile(path.Join(canonicalRoot, relPath))
	if err != nil {
		return "", errors.Wrapf(err, "no canonical document %s", relPath)
	}
	return string(data), nil
}

// CanonicalPaths lists every canonical document path, sorted, relative to
// the canonical tree root.
func CanonicalPaths() []string {
	var paths []string
	fs.WalkDir(templates, canonicalRoot, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		paths = append(paths, strings.TrimPrefix(p, canonicalRoot+"/"))
		return nil
	})
	sort.Strings(paths)
	return paths
}

// Wrapper returns the wrapper template for a document id, if one exists.
// The wrapper registry is flat: one file per document id.
func Wrapper(docID string) (string, bool) {
	data, err := templates.ReadFile(path.Join(wrapperRoot, docID+".md"))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Summary returns the condensed protocol-summary template.
func Summary() string {
	return mustRead(path.Join(auxRoot, "summary.md"))
}

// Backlog returns the backlog-index scaffold template.
func Backlog() string {
	return mustRead(path.Join(auxRoot, "backlog.md"))
}

// Agent returns the agent-role document template for a role.
func Agent(role string) (string, error) {
	data, err := templates.ReadFile(path.Join(agentRoot, role+".md"))
	if err != nil {
		return "", errors.Wrapf(err, "no agent template %s", role)
	}
	return string(data), nil
}

// Skill returns the shared diagnostic-skill document template.
func Skill() string {
	return mustRead(path.Join(skillRoot, "diagnostics.md"))
}

// mustRead reads a template that is guaranteed present at compile time.
func mustRead(p string) string {
	data, err := templates.ReadFile(p)
	if err != nil {
		panic(errors.Wrapf(err, "embedded template missing: %s", p))
	}
	return string(data)
}
