// Package output performs guarded file writes for the scaffolding engine.
//
// Dry-run is a hard guarantee of zero mutation enforced here, at the write
// site, not upheld by caller convention.
package output

import (
	"os"
	"path/filepath"

	"github.com/praxisdev/praxis/errors"
	"github.com/praxisdev/praxis/logger"
)

// Status describes the outcome of one write decision.
type Status string

const (
	StatusCreated        Status = "created"
	StatusOverwritten    Status = "overwritten"
	StatusSkipped        Status = "skipped"
	StatusWouldCreate    Status = "would-create"
	StatusWouldOverwrite Status = "would-overwrite"
)

// Result reports one write decision.
type Result struct {
	// Path is the written path relative to the project root
	Path string `json:"path"`

	// Status is the decision outcome
	Status Status `json:"status"`
}

// Options control the write decision.
type Options struct {
	// DryRun reports the intended write without touching the filesystem
	DryRun bool

	// Overwrite replaces an existing destination file
	Overwrite bool
}

// Write writes content to relativePath under root according to the
// decision table:
//
//	exists  overwrite  dryRun   effect            status
//	no      —          false    mkdir-p + write   created
//	no      —          true     none              would-create
//	yes     false      —        none              skipped
//	yes     true       false    overwrite         overwritten
//	yes     true       true     none              would-overwrite
//
// Parent directories are always created before content is written.
// OS-level failures propagate; there is no retry or rollback.
func Write(root, relativePath, content string, opts Options) (Result, error) {
	fullPath := filepath.Join(root, filepath.FromSlash(relativePath))
	result := Result{Path: relativePath}

	_, err := os.Stat(fullPath)
	exists := err == nil

	switch {
	case exists && !opts.Overwrite:
		result.Status = StatusSkipped
		return result, nil
	case exists && opts.DryRun:
		result.Status = StatusWouldOverwrite
		return result, nil
	case !exists && opts.DryRun:
		result.Status = StatusWouldCreate
		return result, nil
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return result, errors.Wrapf(err, "failed to create parent directories for %s", relativePath)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		return result, errors.Wrapf(err, "failed to write %s", relativePath)
	}

	if exists {
		result.Status = StatusOverwritten
	} else {
		result.Status = StatusCreated
	}
	logger.Debugw("wrote file", "path", relativePath, "status", result.Status)
	return result, nil
}
