// Where: internal/scaffold/summary.go
// What: Render the end-of-run summary and next steps.
// Why: Keep the closing output in one template instead of scattered prints.
package scaffold

import (
	"bytes"
	"embed"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

//go:embed templates/summary.tmpl
var summaryFS embed.FS

var (
	summaryOnce sync.Once
	summaryErr  error
	summaryTmpl *template.Template
)

// SummaryData feeds the summary template.
type SummaryData struct {
	Name           string
	Scope          string
	ClientPort     int
	ServerPort     int
	PackageManager string
	InstallCommand string
	Installed      bool
}

// RenderSummary renders the next-steps block shown after a successful run.
func RenderSummary(data SummaryData) (string, error) {
	summaryOnce.Do(func() {
		summaryTmpl, summaryErr = template.New("summary.tmpl").
			Funcs(sprig.TxtFuncMap()).
			ParseFS(summaryFS, "templates/summary.tmpl")
	})
	if summaryErr != nil {
		return "", summaryErr
	}

	var buf bytes.Buffer
	if err := summaryTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
