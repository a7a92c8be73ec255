// Package links rewrites cross-document markdown links.
//
// Canonical documents live in a nested tree but are redistributed into one
// flat directory per platform. Rewriting link targets from canonical paths
// to platform target paths is what keeps cross-references intact after that
// relocation. Everything here is a pure text transform: no filesystem
// access, deterministic output.
package links

import (
	"path"
	"regexp"
	"strings"
)

// inlineLink matches markdown inline links and captures the target.
var inlineLink = regexp.MustCompile(`(\[[^\]]*\]\()([^)]+)(\))`)

// urlScheme matches targets with an explicit scheme (https:, mailto:, ...).
var urlScheme = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// Rewrite passes every inline-link target on a non-fenced line through
// transform. A line whose trimmed content starts with a fence marker toggles
// the fence state; fenced content is never modified. An unterminated fence
// persists silently to end of input.
func Rewrite(text string, transform func(target string) string) string {
	lines := strings.Split(text, "\n")
	inFence := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence {
			continue
		}
		lines[i] = inlineLink.ReplaceAllStringFunc(line, func(match string) string {
			parts := inlineLink.FindStringSubmatch(match)
			return parts[1] + transform(parts[2]) + parts[3]
		})
	}
	return strings.Join(lines, "\n")
}

// DocMap carries the static document tables needed to relocate canonical
// links for one platform. All paths are POSIX-style and relative: canonical
// paths to the canonical tree root, target paths to the project root.
type DocMap struct {
	// Canonical maps document id → canonical path
	Canonical map[string]string

	// Targets maps document id → the platform's target path
	Targets map[string]string

	// Aliases maps normalized legacy paths onto canonical paths
	Aliases map[string]string
}

// reverse builds the canonical path → document id index.
func (m DocMap) reverse() map[string]string {
	idx := make(map[string]string, len(m.Canonical))
	for id, p := range m.Canonical {
		idx[p] = id
	}
	return idx
}

// RewriteCanonical relocates every canonical cross-reference in text, which
// is the content of the document identified by sourceDocID, onto the
// platform layout described by m.
//
// External targets (URL scheme) and bare in-page anchors pass through
// unchanged, as does any target that does not resolve to a known canonical
// document.
func RewriteCanonical(text, sourceDocID string, m DocMap) string {
	index := m.reverse()
	sourceDir := path.Dir(m.Canonical[sourceDocID])
	targetDir := path.Dir(m.Targets[sourceDocID])

	return Rewrite(text, func(target string) string {
		if urlScheme.MatchString(target) || strings.HasPrefix(target, "#") {
			return target
		}

		pathPart, hash := splitHash(target)
		resolved := path.Join(sourceDir, pathPart)
		if alias, ok := m.Aliases[resolved]; ok {
			resolved = alias
		}

		docID, ok := index[resolved]
		if !ok {
			return target
		}
		rel := relPath(targetDir, m.Targets[docID])
		if rel == "" {
			rel = path.Base(m.Targets[docID])
		}
		return rel + hash
	})
}

// splitHash splits a link target at the first '#' into (path, hash),
// where hash retains its leading '#'.
func splitHash(target string) (string, string) {
	if i := strings.Index(target, "#"); i >= 0 {
		return target[:i], target[i:]
	}
	return target, ""
}

// relPath computes the POSIX relative path from directory fromDir to file
// to. Both are relative to the same root.
func relPath(fromDir, to string) string {
	fromDir = path.Clean(fromDir)
	to = path.Clean(to)
	if fromDir == "." {
		return to
	}

	fromParts := strings.Split(fromDir, "/")
	toParts := strings.Split(to, "/")
	common := 0
	for common < len(fromParts) && common < len(toParts)-1 && fromParts[common] == toParts[common] {
		common++
	}

	var parts []string
	for range fromParts[common:] {
		parts = append(parts, "..")
	}
	parts = append(parts, toParts[common:]...)
	return strings.Join(parts, "/")
}
