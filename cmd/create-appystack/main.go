// Where: cmd/create-appystack/main.go
// What: CLI entrypoint.
// Why: Scaffold appystack projects with configured dependencies.
package main

import (
	"fmt"
	"os"

	"github.com/appystack/create-appystack/internal/app"
)

func main() {
	deps, err := buildDependencies()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(app.Run(os.Args[1:], deps))
}
