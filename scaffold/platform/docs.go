package platform

import "github.com/praxisdev/praxis/scaffold/links"

// EntrypointDocID identifies the root entrypoint document. It lives at the
// project root, outside the canonical tree, and participates in link
// relocation through a synthetic canonical key.
const EntrypointDocID = "praxis"

// EntrypointPath is the entrypoint's path relative to the project root.
const EntrypointPath = "PRAXIS.md"

// CanonicalTreeDir is where the canonical document tree is copied inside a
// project, relative to the project root.
const CanonicalTreeDir = "praxis"

// BacklogPath is the backlog-index scaffold, relative to the project root.
const BacklogPath = "praxis/backlog.md"

// DocOrder lists every canonical document id in generation order.
var DocOrder = []string{
	"overview",
	"reasoning",
	"verification",
	"context",
	"planning",
	"execution",
	"review",
	"stacks",
	"commands",
}

// CanonicalDocs pairs each document id with its path under the canonical
// template tree. The entrypoint's synthetic key lets parent-relative links
// to it resolve through the same reverse index as everything else.
var CanonicalDocs = map[string]string{
	"overview":      "overview.md",
	"reasoning":     "core/reasoning.md",
	"verification":  "core/verification.md",
	"context":       "core/context.md",
	"planning":      "workflow/planning.md",
	"execution":     "workflow/execution.md",
	"review":        "workflow/review.md",
	"stacks":        "reference/stacks.md",
	"commands":      "reference/commands.md",
	EntrypointDocID: EntrypointPath,
}

// legacyAliases maps parent-relative references from retired document
// layouts onto their canonical forms.
var legacyAliases = map[string]string{
	"../PRAXIS.md": EntrypointPath,
	"../README.md": "overview.md",
}

// docDescriptions feeds the description front-matter field on platforms
// that carry one.
var docDescriptions = map[string]string{
	"overview":     "Praxis reasoning protocol: the five-phase loop",
	"reasoning":    "How to reason before acting",
	"verification": "Verification gates every change must pass",
	"context":      "Context scoping rules",
	"planning":     "Written plans before code changes",
	"execution":    "Step-at-a-time execution rules",
	"review":       "Final review pass over the diff",
	"stacks":       "Detected technology stacks for this project",
	"commands":     "Project verification commands",
}

// AgentRoles lists the agent-role documents written for agent-capable
// platforms, in generation order.
var AgentRoles = []string{"planner", "reviewer", "diagnostician"}

// DocMap assembles the link-relocation tables for this platform.
func (d Descriptor) DocMap() links.DocMap {
	targets := make(map[string]string, len(d.Docs))
	for id, t := range d.Docs {
		targets[id] = t.Path
	}
	return links.DocMap{
		Canonical: CanonicalDocs,
		Targets:   targets,
		Aliases:   legacyAliases,
	}
}
