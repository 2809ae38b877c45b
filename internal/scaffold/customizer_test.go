// Where: internal/scaffold/customizer_test.go
// What: Tests for the substitution plan applied to the shipped template.
// Why: Old literals must vanish, new ones must appear, failures must roll back.
package scaffold

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/appystack/create-appystack/assets"
	"github.com/appystack/create-appystack/internal/project"
)

func demoConfig() project.Config {
	return project.Config{
		Name:           "demo-app",
		Scope:          "@acme",
		ClientPort:     3000,
		ServerPort:     3001,
		Description:    "Demo",
		PackageManager: "npm",
	}
}

func scaffoldTemplate(t *testing.T) string {
	t.Helper()
	template, err := fs.Sub(assets.TemplateFS, "template")
	if err != nil {
		t.Fatalf("sub template fs: %v", err)
	}
	target := filepath.Join(t.TempDir(), "demo-app")
	if err := CopyTree(template, target, DefaultExclusions); err != nil {
		t.Fatalf("copy template: %v", err)
	}
	return target
}

func readTarget(t *testing.T, target, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(target, filepath.FromSlash(rel)))
	if err != nil {
		t.Fatalf("read %s: %v", rel, err)
	}
	return string(data)
}

func TestCustomizeRewritesServerEnvAndViteConfig(t *testing.T) {
	target := scaffoldTemplate(t)

	if err := Customize(target, PlanFor(demoConfig())); err != nil {
		t.Fatalf("customize: %v", err)
	}

	envTS := readTarget(t, target, "server/src/config/env.ts")
	if !strings.Contains(envTS, "PORT: z.coerce.number().default(3001)") {
		t.Fatalf("expected server port 3001 in env.ts, got:\n%s", envTS)
	}
	if strings.Contains(envTS, "default(5501)") {
		t.Fatalf("expected template server port to be gone from env.ts")
	}
	if !strings.Contains(envTS, "http://localhost:3000") {
		t.Fatalf("expected client origin 3000 in env.ts")
	}

	vite := readTarget(t, target, "client/vite.config.ts")
	if !strings.Contains(vite, "port: 3000") {
		t.Fatalf("expected client port 3000 in vite.config.ts, got:\n%s", vite)
	}
	if !strings.Contains(vite, "target: 'http://localhost:3001'") {
		t.Fatalf("expected proxy target 3001 in vite.config.ts")
	}
	if strings.Contains(vite, "5500") || strings.Contains(vite, "5501") {
		t.Fatalf("expected template ports to be gone from vite.config.ts")
	}
}

func TestCustomizeRewritesManifestsAndTitle(t *testing.T) {
	target := scaffoldTemplate(t)

	if err := Customize(target, PlanFor(demoConfig())); err != nil {
		t.Fatalf("customize: %v", err)
	}

	root := readTarget(t, target, "package.json")
	if !strings.Contains(root, `"name": "demo-app"`) {
		t.Fatalf("expected project name in root manifest, got:\n%s", root)
	}
	if !strings.Contains(root, `"description": "Demo"`) {
		t.Fatalf("expected description in root manifest")
	}

	for _, workspace := range []string{"client", "server", "shared"} {
		manifest := readTarget(t, target, workspace+"/package.json")
		if !strings.Contains(manifest, `"@acme/`+workspace+`"`) {
			t.Fatalf("expected scoped name in %s manifest, got:\n%s", workspace, manifest)
		}
		if strings.Contains(manifest, "@appystack") {
			t.Fatalf("expected template scope to be gone from %s manifest", workspace)
		}
	}

	for _, rel := range []string{"client/src/App.tsx", "server/src/socket.ts", "server/src/routes/health.ts", "server/src/routes/info.ts"} {
		source := readTarget(t, target, rel)
		if !strings.Contains(source, "'@acme/shared'") {
			t.Fatalf("expected rescoped import in %s, got:\n%s", rel, source)
		}
	}

	html := readTarget(t, target, "client/index.html")
	if !strings.Contains(html, "<title>demo-app</title>") {
		t.Fatalf("expected project title in index.html, got:\n%s", html)
	}

	envExample := readTarget(t, target, ".env.example")
	if !strings.Contains(envExample, "PORT=3001") || !strings.Contains(envExample, "http://localhost:3000") {
		t.Fatalf("unexpected .env.example content:\n%s", envExample)
	}
}

func TestCustomizeEscapesQuotedDescription(t *testing.T) {
	target := scaffoldTemplate(t)

	cfg := demoConfig()
	cfg.Description = `He said "ship it" \ today`
	if err := Customize(target, PlanFor(cfg)); err != nil {
		t.Fatalf("customize: %v", err)
	}
	if err := VerifyManifests(target); err != nil {
		t.Fatalf("expected manifests to stay valid, got %v", err)
	}

	root := readTarget(t, target, "package.json")
	if !strings.Contains(root, `He said \"ship it\" \\ today`) {
		t.Fatalf("expected escaped description in root manifest, got:\n%s", root)
	}

	// The README keeps the text exactly as entered.
	readme := readTarget(t, target, "README.md")
	if !strings.Contains(readme, `He said "ship it" \ today`) {
		t.Fatalf("expected raw description in README, got:\n%s", readme)
	}
}

func TestCustomizeSamePortsAsTemplateIsANoop(t *testing.T) {
	target := scaffoldTemplate(t)

	cfg := demoConfig()
	cfg.ClientPort = TemplateClientPort
	cfg.ServerPort = TemplateServerPort
	if err := Customize(target, PlanFor(cfg)); err != nil {
		t.Fatalf("customize with template ports: %v", err)
	}

	vite := readTarget(t, target, "client/vite.config.ts")
	if !strings.Contains(vite, "port: 5500") {
		t.Fatalf("expected template client port to survive, got:\n%s", vite)
	}
}

func TestCustomizeMissingFileRemovesTarget(t *testing.T) {
	target := scaffoldTemplate(t)
	if err := os.Remove(filepath.Join(target, "client", "vite.config.ts")); err != nil {
		t.Fatalf("remove: %v", err)
	}

	if err := Customize(target, PlanFor(demoConfig())); err == nil {
		t.Fatalf("expected customize failure")
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Fatalf("expected target to be removed after failure")
	}
}

func TestCustomizeMissingPlaceholderRemovesTarget(t *testing.T) {
	target := scaffoldTemplate(t)
	envPath := filepath.Join(target, "server", "src", "config", "env.ts")
	if err := os.WriteFile(envPath, []byte("export const env = {};\n"), 0o644); err != nil {
		t.Fatalf("overwrite env.ts: %v", err)
	}

	err := Customize(target, PlanFor(demoConfig()))
	if err == nil {
		t.Fatalf("expected customize failure for missing placeholder")
	}
	if !strings.Contains(err.Error(), "placeholder") {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, statErr := os.Stat(target); !os.IsNotExist(statErr) {
		t.Fatalf("expected target to be removed after failure")
	}
}
