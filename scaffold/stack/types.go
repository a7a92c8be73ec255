// Package stack detects the technology stacks of a host project.
//
// A stack is one detected or declared technology unit: a language/framework
// grouping with optional tool commands and an optional subdirectory root.
// Detection scans the project root plus its immediate subdirectories and
// never fails; an unrecognizable project yields a single placeholder stack.
package stack

import "strings"

// Definition describes one technology unit of a project.
type Definition struct {
	// Name identifies the stack (manifest name or directory name)
	Name string `json:"name"`

	// Languages in priority order, never empty
	Languages []string `json:"languages"`

	// Frameworks detected for this stack, may be empty
	Frameworks []string `json:"frameworks"`

	// Tool commands; empty string means unknown
	TestRunner     string `json:"test_runner,omitempty"`
	TypeChecker    string `json:"type_checker,omitempty"`
	Linter         string `json:"linter,omitempty"`
	PackageManager string `json:"package_manager,omitempty"`

	// Path is the stack's subdirectory relative to the project root.
	// Empty means the stack lives at the root (monolith layout).
	Path string `json:"path,omitempty"`
}

// Key returns the uniqueness key for deduplication:
// (name, path, languages-joined).
func (d Definition) Key() string {
	return d.Name + "\x00" + d.Path + "\x00" + strings.Join(d.Languages, ",")
}

// Dedupe collapses definitions sharing the same Key, keeping the first
// occurrence. Two stacks that differ only in tool commands collapse to one;
// first wins and the second's commands are discarded.
func Dedupe(defs []Definition) []Definition {
	seen := make(map[string]bool, len(defs))
	out := make([]Definition, 0, len(defs))
	for _, d := range defs {
		k := d.Key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, d)
	}
	return out
}

// Fallback is the stack returned when detection finds nothing recognizable.
func Fallback() Definition {
	return Definition{
		Name:       "app",
		Languages:  []string{"Unknown"},
		Frameworks: []string{"Unknown"},
	}
}
