// Package platform renders the per-platform artifact set.
//
// A platform is one enumerated assistant ecosystem. Each platform carries a
// static table mapping canonical document ids to target paths and
// front-matter fields; the tables are immutable and built once at process
// start. Whether a platform receives agent-role documents is a capability
// flag on its descriptor, so adding a platform never touches generation
// control flow.
package platform

import (
	"github.com/praxisdev/praxis/errors"
)

// ID identifies one target platform.
type ID string

// The fixed platform enum, in generation order.
const (
	Claude   ID = "claude"
	Cursor   ID = "cursor"
	Windsurf ID = "windsurf"
	Copilot  ID = "copilot"
)

// All lists every platform in canonical order.
var All = []ID{Claude, Cursor, Windsurf, Copilot}

// Field is one front-matter field. Order of declaration is order of output.
type Field struct {
	Key   string
	Value any
}

// DocTarget maps a canonical document onto one platform's layout.
type DocTarget struct {
	// Path is the target path relative to the project root
	Path string

	// FrontMatter fields prepended to the rendered document
	FrontMatter []Field
}

// Descriptor is the static configuration of one platform.
type Descriptor struct {
	ID   ID
	Name string

	// AgentCapable platforms receive agent-role documents and the shared
	// diagnostic skill
	AgentCapable bool

	// Docs maps document id → target for this platform
	Docs map[string]DocTarget

	// SummaryPath receives the condensed protocol summary
	SummaryPath string

	// AgentDir and SkillPath are only set when AgentCapable
	AgentDir  string
	SkillPath string
}

// Lookup resolves a platform id, returning ErrUnknownPlatform for anything
// outside the fixed enum.
func Lookup(id string) (Descriptor, error) {
	desc, ok := registry[ID(id)]
	if !ok {
		return Descriptor{}, errors.NewUnknownPlatformError(id)
	}
	return desc, nil
}

// Valid reports whether id names a platform in the fixed enum.
func Valid(id string) bool {
	_, ok := registry[ID(id)]
	return ok
}

// registry holds every platform descriptor, keyed by id.
var registry = map[ID]Descriptor{
	Claude: {
		ID:           Claude,
		Name:         "Claude Code",
		AgentCapable: true,
		Docs:         docTargets(".claude/rules", ".md", claudeFields),
		SummaryPath:  ".claude/rules/praxis-summary.md",
		AgentDir:     ".claude/agents",
		SkillPath:    ".claude/skills/diagnostics/SKILL.md",
	},
	Cursor: {
		ID:          Cursor,
		Name:        "Cursor",
		Docs:        docTargets(".cursor/rules", ".mdc", cursorFields),
		SummaryPath: ".cursor/rules/praxis-summary.mdc",
	},
	Windsurf: {
		ID:          Windsurf,
		Name:        "Windsurf",
		Docs:        docTargets(".windsurf/rules", ".md", windsurfFields),
		SummaryPath: ".windsurf/rules/praxis-summary.md",
	},
	Copilot: {
		ID:          Copilot,
		Name:        "GitHub Copilot",
		Docs:        docTargets(".github/instructions", ".instructions.md", copilotFields),
		SummaryPath: ".github/instructions/praxis-summary.instructions.md",
	},
}

func claudeFields(id string) []Field {
	return []Field{{"description", docDescriptions[id]}}
}

func cursorFields(id string) []Field {
	return []Field{
		{"description", docDescriptions[id]},
		{"globs", []string{"**/*"}},
		{"alwaysApply", id == "overview"},
	}
}

func windsurfFields(id string) []Field {
	trigger := "model_decision"
	if id == "overview" {
		trigger = "always_on"
	}
	return []Field{
		{"trigger", trigger},
		{"description", docDescriptions[id]},
	}
}

func copilotFields(id string) []Field {
	return []Field{{"applyTo", "**"}}
}

// docTargets builds one platform's document table: every canonical document
// lands flat in dir with the given extension, and the root entrypoint is
// registered as a link target only (no wrapper template exists for it, so
// the generator never writes it).
func docTargets(dir, ext string, fields func(id string) []Field) map[string]DocTarget {
	docs := make(map[string]DocTarget, len(DocOrder)+1)
	for _, id := range DocOrder {
		docs[id] = DocTarget{
			Path:        dir + "/" + id + ext,
			FrontMatter: fields(id),
		}
	}
	docs[EntrypointDocID] = DocTarget{Path: EntrypointPath}
	return docs
}
