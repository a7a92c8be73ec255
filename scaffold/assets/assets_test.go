package assets

import (
	"strings"
	"testing"
)

func TestCanonicalTreeIsNested(t *testing.T) {
	paths := CanonicalPaths()
	if len(paths) == 0 {
		t.Fatal("canonical tree is empty")
	}
	nested := false
	for _, p := range paths {
		if strings.Contains(p, "/") {
			nested = true
		}
		if _, err := Canonical(p); err != nil {
			t.Errorf("Canonical(%q) failed: %v", p, err)
		}
	}
	if !nested {
		t.Error("expected at least one nested canonical document")
	}
}

func TestWrapperRegistryIsFlat(t *testing.T) {
	if _, ok := Wrapper("overview"); !ok {
		t.Error("overview wrapper missing")
	}
	if _, ok := Wrapper("praxis"); ok {
		t.Error("the entrypoint must not have a wrapper template")
	}
	if _, ok := Wrapper("no-such-doc"); ok {
		t.Error("unknown doc id should have no wrapper")
	}
}

func TestFixedTemplatesArePresent(t *testing.T) {
	for name, content := range map[string]string{
		"entrypoint": Entrypoint(),
		"summary":    Summary(),
		"backlog":    Backlog(),
		"skill":      Skill(),
	} {
		if strings.TrimSpace(content) == "" {
			t.Errorf("%s template is empty", name)
		}
	}
	for _, role := range []string{"planner", "reviewer", "diagnostician"} {
		if _, err := Agent(role); err != nil {
			t.Errorf("agent template %s missing: %v", role, err)
		}
	}
}
