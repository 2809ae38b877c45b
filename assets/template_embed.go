// Where: assets/template_embed.go
// What: Embed the project template tree shipped with the CLI.
// Why: Keep the template self-contained in the binary so scaffolding works anywhere.
package assets

import "embed"

// TemplateFS holds the full template tree, including dotfiles such as
// .env.example and .gitignore.
//
//go:embed all:template
var TemplateFS embed.FS
