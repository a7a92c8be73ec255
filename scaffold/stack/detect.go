package stack

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/praxisdev/praxis/logger"
)

// ignoredDirs are build outputs and dependency caches that can never be a
// stack root of their own.
var ignoredDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
	"target":       true,
	"__pycache__":  true,
	"venv":         true,
	"coverage":     true,
}

// probe inspects one candidate stack root. rel is the candidate's path
// relative to the project root ("" for the root itself). A probe returns
// nil when its signature files are absent; it never returns an error —
// unreadable or malformed input counts as "signature absent".
type probe func(dir, rel string) *Definition

var probes = []probe{probeNodeManifest, probePythonDeclarations}

// Detect scans projectRoot and returns the detected stacks, never empty.
//
// Candidate stack roots are the project root plus its immediate non-hidden,
// non-ignored subdirectories. Every probe runs independently against every
// candidate, so a mixed-language directory can legitimately yield two
// stacks. Results are deduplicated by (name, path, languages).
func Detect(projectRoot string) []Definition {
	var defs []Definition

	for _, candidate := range candidateRoots(projectRoot) {
		dir := projectRoot
		if candidate != "" {
			dir = filepath.Join(projectRoot, candidate)
		}
		for _, p := range probes {
			if d := p(dir, candidate); d != nil {
				defs = append(defs, *d)
			}
		}
	}

	defs = Dedupe(defs)
	if len(defs) == 0 {
		logger.Debugw("no recognizable stacks, using fallback", "root", projectRoot)
		return []Definition{Fallback()}
	}

	logger.Debugw("detected stacks", "root", projectRoot, "count", len(defs))
	return defs
}

// candidateRoots returns "" for the project root plus the names of its
// immediate subdirectories that could host a stack. An unreadable root
// yields just the root candidate.
func candidateRoots(projectRoot string) []string {
	candidates := []string{""}

	entries, err := os.ReadDir(projectRoot)
	if err != nil {
		return candidates
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") || ignoredDirs[name] {
			continue
		}
		candidates = append(candidates, name)
	}
	return candidates
}

// fileExists returns true if path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// readFile reads the file at path, returning an empty string on any error.
func readFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}

// stackName picks the stack name for a candidate: explicit name from a
// manifest, else the candidate directory name, else "app" for the root.
func stackName(manifestName, rel string) string {
	if manifestName != "" {
		return manifestName
	}
	if rel != "" {
		return rel
	}
	return "app"
}
