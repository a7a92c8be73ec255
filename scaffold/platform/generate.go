package platform

import (
	"fmt"
	"path"

	"github.com/praxisdev/praxis/logger"
	"github.com/praxisdev/praxis/scaffold/assets"
	"github.com/praxisdev/praxis/scaffold/links"
	"github.com/praxisdev/praxis/scaffold/output"
	"github.com/praxisdev/praxis/scaffold/placeholder"
	"github.com/praxisdev/praxis/scaffold/stack"
)

// Generate renders and writes the full artifact set for one platform and
// returns one formatted result line per written artifact.
//
// For every document id present in both the platform's table and the
// wrapper-template registry: rewrite canonical links onto this platform's
// layout, apply stack placeholders, prepend the front-matter header, and
// write to the mapped target path. Afterwards the platform's auxiliary
// artifacts are written: the condensed summary, and for agent-capable
// platforms the agent-role documents plus the shared diagnostic skill.
//
// Platforms never touch each other's target paths; generation for one
// platform is fully independent of any other.
func Generate(projectRoot string, desc Descriptor, stacks []stack.Definition, opts output.Options) ([]string, error) {
	docMap := desc.DocMap()
	var lines []string

	for _, id := range DocOrder {
		target, ok := desc.Docs[id]
		if !ok {
			continue
		}
		wrapper, ok := assets.Wrapper(id)
		if !ok {
			continue
		}

		body := links.RewriteCanonical(wrapper, id, docMap)
		body = placeholder.Apply(body, stacks)
		content := RenderFrontMatter(target.FrontMatter) + body

		res, err := output.Write(projectRoot, target.Path, content, opts)
		if err != nil {
			return lines, err
		}
		lines = append(lines, resultLine(res))
	}

	summary := placeholder.Apply(assets.Summary(), stacks)
	res, err := output.Write(projectRoot, desc.SummaryPath, summary, opts)
	if err != nil {
		return lines, err
	}
	lines = append(lines, resultLine(res))

	if desc.AgentCapable {
		agentLines, err := generateAgents(projectRoot, desc, stacks, opts)
		if err != nil {
			return lines, err
		}
		lines = append(lines, agentLines...)
	}

	logger.Debugw("generated platform artifacts", "platform", desc.ID, "count", len(lines))
	return lines, nil
}

// generateAgents writes the agent-role documents and the shared diagnostic
// skill for an agent-capable platform.
func generateAgents(projectRoot string, desc Descriptor, stacks []stack.Definition, opts output.Options) ([]string, error) {
	var lines []string

	for _, role := range AgentRoles {
		tmpl, err := assets.Agent(role)
		if err != nil {
			return lines, err
		}
		content := placeholder.Apply(tmpl, stacks)
		res, err := output.Write(projectRoot, path.Join(desc.AgentDir, role+".md"), content, opts)
		if err != nil {
			return lines, err
		}
		lines = append(lines, resultLine(res))
	}

	skill := placeholder.Apply(assets.Skill(), stacks)
	res, err := output.Write(projectRoot, desc.SkillPath, skill, opts)
	if err != nil {
		return lines, err
	}
	lines = append(lines, resultLine(res))

	return lines, nil
}

// resultLine formats one write result for the human-readable report.
func resultLine(res output.Result) string {
	return fmt.Sprintf("  %-15s %s", res.Status, res.Path)
}
