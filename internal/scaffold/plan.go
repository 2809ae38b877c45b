// Where: internal/scaffold/plan.go
// What: Substitution plan tied to the shipped template content.
// Why: Map collected configuration onto the exact placeholder literals in the template.
package scaffold

import (
	"encoding/json"
	"fmt"

	"github.com/appystack/create-appystack/internal/project"
)

// Placeholder literals as they appear in the shipped template. Editing the
// template requires mirroring the change here.
const (
	TemplateName        = "appystack"
	TemplateScope       = "@appystack"
	TemplateClientPort  = 5500
	TemplateServerPort  = 5501
	TemplateDescription = "Full-stack TypeScript starter with React, Express, and Socket.io"
)

// Substitution replaces every occurrence of an exact literal in one template
// file. Replacement is literal, not templated: an accidental occurrence of
// the same literal elsewhere in the file is replaced too.
type Substitution struct {
	Path string // slash-separated, relative to the target root
	Old  string
	New  string
}

// PlanFor returns the ordered substitution plan for a configuration. Within
// a file, server-port entries precede client-port entries so a freshly
// written port value can never be clipped by a later pair.
func PlanFor(cfg project.Config) []Substitution {
	clientPort := fmt.Sprint(cfg.ClientPort)
	serverPort := fmt.Sprint(cfg.ServerPort)

	return []Substitution{
		{Path: "package.json", Old: `"name": "` + TemplateName + `"`, New: `"name": "` + cfg.Name + `"`},
		{Path: "package.json", Old: TemplateDescription, New: jsonText(cfg.Description)},

		{Path: "client/package.json", Old: TemplateScope, New: cfg.Scope},
		{Path: "server/package.json", Old: TemplateScope, New: cfg.Scope},
		{Path: "shared/package.json", Old: TemplateScope, New: cfg.Scope},

		// Source files importing the shared workspace package by its scoped name.
		{Path: "client/src/App.tsx", Old: TemplateScope + "/shared", New: cfg.Scope + "/shared"},
		{Path: "server/src/socket.ts", Old: TemplateScope + "/shared", New: cfg.Scope + "/shared"},
		{Path: "server/src/routes/health.ts", Old: TemplateScope + "/shared", New: cfg.Scope + "/shared"},
		{Path: "server/src/routes/info.ts", Old: TemplateScope + "/shared", New: cfg.Scope + "/shared"},

		{Path: ".env.example", Old: fmt.Sprintf("PORT=%d", TemplateServerPort), New: "PORT=" + serverPort},
		{Path: ".env.example", Old: clientOrigin(TemplateClientPort), New: clientOrigin(cfg.ClientPort)},

		{Path: "server/src/config/env.ts", Old: fmt.Sprintf("default(%d)", TemplateServerPort), New: "default(" + serverPort + ")"},
		{Path: "server/src/config/env.ts", Old: clientOrigin(TemplateClientPort), New: clientOrigin(cfg.ClientPort)},

		{Path: "client/vite.config.ts", Old: fmt.Sprintf("target: 'http://localhost:%d'", TemplateServerPort), New: "target: 'http://localhost:" + serverPort + "'"},
		{Path: "client/vite.config.ts", Old: fmt.Sprintf("port: %d", TemplateClientPort), New: "port: " + clientPort},

		{Path: "client/index.html", Old: "<title>" + TemplateName + "</title>", New: "<title>" + cfg.Name + "</title>"},

		{Path: "README.md", Old: "# " + TemplateName, New: "# " + cfg.Name},
		{Path: "README.md", Old: TemplateDescription, New: cfg.Description},
	}
}

func clientOrigin(port int) string {
	return fmt.Sprintf("http://localhost:%d", port)
}

// jsonText renders s as it appears inside a JSON string literal, so quotes
// or backslashes in a description cannot corrupt a manifest.
func jsonText(s string) string {
	encoded, err := json.Marshal(s)
	if err != nil {
		return s
	}
	return string(encoded[1 : len(encoded)-1])
}
