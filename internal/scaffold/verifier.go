// Where: internal/scaffold/verifier.go
// What: Post-customization check of the workspace package manifests.
// Why: A manifest that no longer parses or matches the schema means substitution corrupted it.
package scaffold

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed manifest.schema.json
var manifestSchema string

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

// manifestPaths are the package manifests the substitution plan touches.
var manifestPaths = []string{
	"package.json",
	"client/package.json",
	"server/package.json",
	"shared/package.json",
}

// VerifyManifests parses each workspace package.json in the target and
// validates it against the embedded manifest schema. The caller applies the
// same cleanup policy as for customization failures.
func VerifyManifests(target string) error {
	sch, err := loadManifestSchema()
	if err != nil {
		return err
	}

	for _, rel := range manifestPaths {
		path := filepath.Join(target, filepath.FromSlash(rel))
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("verify %s: %w", rel, err)
		}

		var document any
		if err := json.Unmarshal(data, &document); err != nil {
			return fmt.Errorf("verify %s: %w", rel, err)
		}
		if err := sch.Validate(document); err != nil {
			return fmt.Errorf("verify %s: %w", rel, err)
		}
	}
	return nil
}

func loadManifestSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("manifest.schema.json", strings.NewReader(manifestSchema)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("manifest.schema.json")
	})
	return compiledSchema, schemaErr
}
