// Package placeholder substitutes stack-derived values into template text.
//
// Substitution is single-pass: one table replacement plus five token
// replacements. No loops, conditionals, or recursive expansion.
package placeholder

import (
	"regexp"
	"strings"

	"github.com/praxisdev/praxis/scaffold/stack"
)

// Placeholder tokens recognized in template text, matched by substring
// independent of position.
const (
	TokenTypecheck    = "{typecheck commands}"
	TokenLint         = "{lint commands}"
	TokenTest         = "{test commands}"
	TokenTargetedTest = "{targeted test command}"
	TokenInstall      = "{install commands}"

	// PathPlaceholder is the literal path slot inside the targeted test
	// command, left for the assistant to fill at run time.
	PathPlaceholder = "{path}"
)

// commandSeparator joins aggregated per-stack commands.
const commandSeparator = " && "

// Legacy table shapes replaced wholesale by a freshly rendered stack table.
// Shape one is the current three-column layout; shape two predates the
// frameworks column.
var legacyTables = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\|\s*Stack\s*\|\s*Languages\s*\|\s*Frameworks\s*\|\s*\n\|[\s\-:|]+\|\s*\n(?:\|.*\|\s*\n?)*`),
	regexp.MustCompile(`(?m)^\|\s*Component\s*\|\s*Technology\s*\|\s*\n\|[\s\-:|]+\|\s*\n(?:\|.*\|\s*\n?)*`),
}

// Apply substitutes the stack table and the five command tokens into text.
// With no stacks it returns text unchanged. The table replacement runs
// first: token values could otherwise spuriously match table cell text.
//
// A token whose contributing data is absent across all stacks is left
// untouched, not deleted.
func Apply(text string, stacks []stack.Definition) string {
	if len(stacks) == 0 {
		return text
	}

	table := RenderTable(stacks)
	for _, shape := range legacyTables {
		text = shape.ReplaceAllString(text, table)
	}

	replacements := []struct {
		token string
		value string
	}{
		{TokenTypecheck, joinCommands(stacks, func(d stack.Definition) string { return d.TypeChecker })},
		{TokenLint, joinCommands(stacks, func(d stack.Definition) string { return d.Linter })},
		{TokenTest, joinCommands(stacks, func(d stack.Definition) string { return d.TestRunner })},
		{TokenTargetedTest, targetedTest(stacks)},
		{TokenInstall, installCommands(stacks)},
	}
	for _, r := range replacements {
		if r.value == "" {
			continue
		}
		text = strings.ReplaceAll(text, r.token, r.value)
	}
	return text
}

// RenderTable renders the markdown stack summary table, one row per stack.
func RenderTable(stacks []stack.Definition) string {
	var b strings.Builder
	b.WriteString("| Stack | Languages | Frameworks |\n")
	b.WriteString("|---|---|---|\n")
	for _, d := range stacks {
		name := d.Name
		if d.Path != "" {
			name += " (`" + d.Path + "`)"
		}
		b.WriteString("| " + name + " | " + strings.Join(d.Languages, ", ") +
			" | " + strings.Join(d.Frameworks, ", ") + " |\n")
	}
	return b.String()
}

// joinCommands aggregates one command field across all stacks.
func joinCommands(stacks []stack.Definition, field func(stack.Definition) string) string {
	var cmds []string
	for _, d := range stacks {
		if c := field(d); c != "" {
			cmds = append(cmds, c)
		}
	}
	return strings.Join(cmds, commandSeparator)
}

// targetedTest builds the single targeted test command from the first
// stack's test runner.
func targetedTest(stacks []stack.Definition) string {
	if stacks[0].TestRunner == "" {
		return ""
	}
	return stacks[0].TestRunner + " " + PathPlaceholder
}

// installCommands builds one install command per distinct package manager,
// in first-seen order.
func installCommands(stacks []stack.Definition) string {
	seen := make(map[string]bool, len(stacks))
	var cmds []string
	for _, d := range stacks {
		if d.PackageManager == "" || seen[d.PackageManager] {
			continue
		}
		seen[d.PackageManager] = true
		cmds = append(cmds, d.PackageManager+" install")
	}
	return strings.Join(cmds, commandSeparator)
}
