package etl

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shoplab/graphrec/internal/driver"
)

// SplitStatements breaks a ;-delimited schema source into individual
// statements, dropping empty and whitespace-only fragments.
func SplitStatements(source string) []string {
	var statements []string
	for _, stmt := range strings.Split(source, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		statements = append(statements, stmt)
	}
	return statements
}

// ApplySchemaFile reads the schema source and applies it in one transaction.
// Schema initialization has no partial-success mode; any error is fatal to
// the run. The statements themselves are idempotent IF NOT EXISTS constraint
// declarations, so re-running the pipeline is safe.
func ApplySchemaFile(ctx context.Context, g driver.GraphDriver, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read schema file %q: %w", path, err)
	}

	statements := SplitStatements(string(data))
	if len(statements) == 0 {
		return fmt.Errorf("schema file %q contains no statements", path)
	}

	if err := g.ApplySchema(ctx, statements); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
