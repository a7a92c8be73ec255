// Package scaffold orchestrates one praxis scaffolding run: stack
// detection, canonical tree copy, entrypoint and backlog writes, and
// per-platform artifact generation.
//
// A run is single-threaded and fully synchronous. Repeated runs with
// overwrite enabled converge to the same filesystem state; idempotent
// re-execution is the recovery mechanism, not internal retry logic.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/praxisdev/praxis/errors"
	"github.com/praxisdev/praxis/logger"
	"github.com/praxisdev/praxis/scaffold/assets"
	"github.com/praxisdev/praxis/scaffold/output"
	"github.com/praxisdev/praxis/scaffold/placeholder"
	"github.com/praxisdev/praxis/scaffold/platform"
	"github.com/praxisdev/praxis/scaffold/stack"
)

// TargetAll is the sentinel selector expanding to the full platform enum.
const TargetAll = "all"

// Options control one Init run.
type Options struct {
	// DryRun reports intended writes without mutating the filesystem
	DryRun bool

	// Overwrite replaces existing destination files
	Overwrite bool
}

// Result is the aggregate outcome of one Init run.
type Result struct {
	// ProjectPath is the resolved absolute project root
	ProjectPath string `json:"project_path"`

	// Target is the resolved target selector
	Target string `json:"target"`

	DryRun    bool `json:"dry_run"`
	Overwrite bool `json:"overwrite"`

	// Stacks are the supplied or detected stacks the run used
	Stacks []stack.Definition `json:"stacks"`

	// Results holds the ordered human-readable result lines
	Results []string `json:"results"`
}

// ParseTarget splits a comma-separated selector into its elements.
func ParseTarget(selector string) []string {
	parts := strings.Split(selector, ",")
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Init scaffolds the praxis protocol into projectRoot for the selected
// platforms. targets is a single platform id, the sentinel "all", or an
// explicit list of platform ids. An empty stacks list triggers detection.
//
// Target validation is eager: an invalid selector element fails the whole
// call before any filesystem mutation.
func Init(projectRoot string, targets []string, stacks []stack.Definition, opts Options) (*Result, error) {
	projectPath, err := filepath.Abs(projectRoot)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve project root %s", projectRoot)
	}

	if len(stacks) == 0 {
		stacks = stack.Detect(projectPath)
	}

	platforms, err := expandTargets(targets)
	if err != nil {
		return nil, err
	}

	result := &Result{
		ProjectPath: projectPath,
		Target:      strings.Join(targets, ","),
		DryRun:      opts.DryRun,
		Overwrite:   opts.Overwrite,
		Stacks:      stacks,
	}
	writeOpts := output.Options{DryRun: opts.DryRun, Overwrite: opts.Overwrite}

	line, err := copyCanonicalTree(projectPath, stacks, opts)
	if err != nil {
		return nil, err
	}
	result.Results = append(result.Results, line)

	entrypoint := placeholder.Apply(assets.Entrypoint(), stacks)
	res, err := output.Write(projectPath, platform.EntrypointPath, entrypoint, writeOpts)
	if err != nil {
		return nil, err
	}
	result.Results = append(result.Results, fmt.Sprintf("entrypoint: %s %s", res.Status, res.Path))

	// Backlog is first-write-wins regardless of the caller's overwrite flag
	res, err = output.Write(projectPath, platform.BacklogPath, assets.Backlog(),
		output.Options{DryRun: opts.DryRun, Overwrite: false})
	if err != nil {
		return nil, err
	}
	result.Results = append(result.Results, fmt.Sprintf("backlog: %s %s", res.Status, res.Path))

	for _, desc := range platforms {
		result.Results = append(result.Results, fmt.Sprintf("platform %s:", desc.ID))
		lines, err := platform.Generate(projectPath, desc, stacks, writeOpts)
		if err != nil {
			return nil, err
		}
		result.Results = append(result.Results, lines...)
	}

	logger.Infow("init complete",
		"project", projectPath,
		"target", result.Target,
		"stacks", len(stacks),
		"dry_run", opts.DryRun)
	return result, nil
}

// expandTargets validates the selector and expands it into the concrete
// ordered platform list. The sentinel "all" is only valid on its own, not
// as a list element.
func expandTargets(targets []string) ([]platform.Descriptor, error) {
	if len(targets) == 1 && targets[0] == TargetAll {
		descs := make([]platform.Descriptor, 0, len(platform.All))
		for _, id := range platform.All {
			desc, err := platform.Lookup(string(id))
			if err != nil {
				return nil, err
			}
			descs = append(descs, desc)
		}
		return descs, nil
	}

	if len(targets) == 0 {
		return nil, errors.NewUnknownPlatformError("")
	}

	descs := make([]platform.Descriptor, 0, len(targets))
	for _, id := range targets {
		desc, err := platform.Lookup(id)
		if err != nil {
			return nil, err
		}
		descs = append(descs, desc)
	}
	return descs, nil
}

// copyCanonicalTree copies the canonical template tree into the project and
// applies stack substitution in place to every canonical document. Dry runs
// skip the copy entirely. Documents missing after the copy (overwrite off,
// or removed by the user mid-run) are skipped silently.
func copyCanonicalTree(projectPath string, stacks []stack.Definition, opts Options) (string, error) {
	if opts.DryRun {
		return fmt.Sprintf("canonical tree: would copy %d documents to %s/",
			len(assets.CanonicalPaths()), platform.CanonicalTreeDir), nil
	}

	copied := 0
	for _, relPath := range assets.CanonicalPaths() {
		content, err := assets.Canonical(relPath)
		if err != nil {
			return "", err
		}
		res, err := output.Write(projectPath, platform.CanonicalTreeDir+"/"+relPath, content,
			output.Options{Overwrite: opts.Overwrite})
		if err != nil {
			return "", err
		}
		if res.Status == output.StatusCreated || res.Status == output.StatusOverwritten {
			copied++
		}
	}

	for _, relPath := range assets.CanonicalPaths() {
		fullPath := filepath.Join(projectPath, platform.CanonicalTreeDir, filepath.FromSlash(relPath))
		data, err := os.ReadFile(fullPath)
		if err != nil {
			logger.Debugw("canonical document missing after copy, skipping", "path", relPath)
			continue
		}
		substituted := placeholder.Apply(string(data), stacks)
		if substituted == string(data) {
			continue
		}
		if err := os.WriteFile(fullPath, []byte(substituted), 0o644); err != nil {
			return "", errors.Wrapf(err, "failed to substitute %s", relPath)
		}
	}

	return fmt.Sprintf("canonical tree: copied %d documents to %s/", copied, platform.CanonicalTreeDir), nil
}
