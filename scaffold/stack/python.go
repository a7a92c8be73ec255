package stack

import (
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/praxisdev/praxis/logger"
)

// pythonDeclarationFiles are the dependency-declaration files merged for
// keyword search.
var pythonDeclarationFiles = []string{
	"requirements.txt",
	"requirements-dev.txt",
	"pyproject.toml",
	"Pipfile",
}

// pythonFrameworks maps lower-case keywords to framework display names.
var pythonFrameworks = []struct {
	keyword   string
	framework string
}{
	{"fastapi", "FastAPI"},
	{"django", "Django"},
	{"flask", "Flask"},
}

// pyprojectMeta is the subset of pyproject.toml the detector reads.
type pyprojectMeta struct {
	Project struct {
		Name string `toml:"name"`
	} `toml:"project"`
	Tool struct {
		Poetry *struct {
			Name string `toml:"name"`
		} `toml:"poetry"`
	} `toml:"tool"`
}

// probePythonDeclarations is the dependency-declaration probe: it merges the
// lower-cased contents of every present declaration file and looks for tool
// and framework names by substring. A tool is "present" if its name appears
// anywhere in the merged text.
func probePythonDeclarations(dir, rel string) *Definition {
	var merged strings.Builder
	found := false
	for _, name := range pythonDeclarationFiles {
		path := filepath.Join(dir, name)
		if !fileExists(path) {
			continue
		}
		found = true
		merged.WriteString(strings.ToLower(readFile(path)))
		merged.WriteString("\n")
	}
	if !found {
		return nil
	}
	text := merged.String()

	def := Definition{
		Name:      stackName(pyprojectName(dir), rel),
		Path:      rel,
		Languages: []string{"Python"},
	}

	for _, entry := range pythonFrameworks {
		if strings.Contains(text, entry.keyword) {
			def.Frameworks = append(def.Frameworks, entry.framework)
		}
	}

	if strings.Contains(text, "pytest") {
		def.TestRunner = "pytest"
	}
	switch {
	case strings.Contains(text, "mypy"):
		def.TypeChecker = "mypy"
	case strings.Contains(text, "pyright"):
		def.TypeChecker = "pyright"
	}
	if strings.Contains(text, "ruff") {
		def.Linter = "ruff check ."
	}

	switch {
	case strings.Contains(text, "[tool.poetry]"):
		def.PackageManager = "poetry"
	case fileExists(filepath.Join(dir, "uv.lock")):
		def.PackageManager = "uv"
	default:
		def.PackageManager = "pip"
	}

	return &def
}

// pyprojectName extracts the project name from pyproject.toml.
// Malformed TOML yields an empty name, never an error.
func pyprojectName(dir string) string {
	path := filepath.Join(dir, "pyproject.toml")
	if !fileExists(path) {
		return ""
	}
	var meta pyprojectMeta
	if _, err := toml.Decode(readFile(path), &meta); err != nil {
		logger.Debugw("malformed pyproject.toml, ignoring name", "path", path)
		return ""
	}
	if meta.Project.Name != "" {
		return meta.Project.Name
	}
	if meta.Tool.Poetry != nil {
		return meta.Tool.Poetry.Name
	}
	return ""
}
