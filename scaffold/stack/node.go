package stack

import (
	"encoding/json"
	"path/filepath"

	"github.com/praxisdev/praxis/logger"
)

// packageManifest is the subset of package.json the detector reads.
type packageManifest struct {
	Name            string            `json:"name"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// lockfilePriority maps lockfiles to package managers, checked in order.
var lockfilePriority = []struct {
	file    string
	manager string
}{
	{"pnpm-lock.yaml", "pnpm"},
	{"yarn.lock", "yarn"},
	{"bun.lockb", "bun"},
	{"package-lock.json", "npm"},
}

// nodeFrameworks maps dependency names to framework display names.
var nodeFrameworks = []struct {
	dep       string
	framework string
}{
	{"next", "Next.js"},
	{"react", "React"},
	{"vue", "Vue"},
	{"svelte", "Svelte"},
	{"@angular/core", "Angular"},
	{"astro", "Astro"},
	{"express", "Express"},
	{"fastify", "Fastify"},
	{"@nestjs/core", "NestJS"},
}

// probeNodeManifest is the manifest-based probe: it keys on package.json.
// A missing package.json means no Node stack; a malformed one is treated as
// an empty manifest, never an error.
func probeNodeManifest(dir, rel string) *Definition {
	manifestPath := filepath.Join(dir, "package.json")
	if !fileExists(manifestPath) {
		return nil
	}

	var manifest packageManifest
	if err := json.Unmarshal([]byte(readFile(manifestPath)), &manifest); err != nil {
		logger.Debugw("malformed package.json, treating as empty", "path", manifestPath)
		manifest = packageManifest{}
	}

	deps := make(map[string]bool, len(manifest.Dependencies)+len(manifest.DevDependencies))
	for name := range manifest.Dependencies {
		deps[name] = true
	}
	for name := range manifest.DevDependencies {
		deps[name] = true
	}

	def := Definition{
		Name:           stackName(manifest.Name, rel),
		Path:           rel,
		PackageManager: nodePackageManager(dir),
	}

	typescript := deps["typescript"] || fileExists(filepath.Join(dir, "tsconfig.json"))
	if typescript {
		def.Languages = []string{"TypeScript"}
		def.TypeChecker = "tsc --noEmit"
	} else {
		def.Languages = []string{"JavaScript"}
	}

	for _, entry := range nodeFrameworks {
		if deps[entry.dep] {
			def.Frameworks = append(def.Frameworks, entry.framework)
		}
	}

	switch {
	case deps["vitest"]:
		def.TestRunner = "vitest run"
	case deps["jest"]:
		def.TestRunner = "jest"
	default:
		if _, ok := manifest.Scripts["test"]; ok {
			def.TestRunner = def.PackageManager + " test"
		}
	}

	switch {
	case deps["eslint"]:
		def.Linter = "eslint ."
	case deps["@biomejs/biome"]:
		def.Linter = "biome check ."
	}

	return &def
}

// nodePackageManager derives the package manager from lockfile presence,
// defaulting to npm.
func nodePackageManager(dir string) string {
	for _, entry := range lockfilePriority {
		if fileExists(filepath.Join(dir, entry.file)) {
			return entry.manager
		}
	}
	return "npm"
}
