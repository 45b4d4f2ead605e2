package etl

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitStatements(t *testing.T) {
	source := `
		CREATE CONSTRAINT a IF NOT EXISTS FOR (n:A) REQUIRE n.id IS UNIQUE;

		CREATE CONSTRAINT b IF NOT EXISTS FOR (n:B) REQUIRE n.id IS UNIQUE;
		;
	`

	statements := SplitStatements(source)
	require.Len(t, statements, 2)
	assert.Equal(t, "CREATE CONSTRAINT a IF NOT EXISTS FOR (n:A) REQUIRE n.id IS UNIQUE", statements[0])
	assert.Equal(t, "CREATE CONSTRAINT b IF NOT EXISTS FOR (n:B) REQUIRE n.id IS UNIQUE", statements[1])
}

func TestSplitStatementsEmptySource(t *testing.T) {
	assert.Empty(t, SplitStatements(""))
	assert.Empty(t, SplitStatements(" ;\n;\t; "))
}

func TestApplySchemaFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constraints.cypher")
	require.NoError(t, os.WriteFile(path, []byte("CREATE CONSTRAINT x;\nCREATE CONSTRAINT y;"), 0o644))

	mock := &MockDriver{}
	require.NoError(t, ApplySchemaFile(context.Background(), mock, path))

	require.Len(t, mock.SchemaRuns, 1)
	assert.Equal(t, []string{"CREATE CONSTRAINT x", "CREATE CONSTRAINT y"}, mock.SchemaRuns[0])
}

func TestApplySchemaFileFailsFatally(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constraints.cypher")
	require.NoError(t, os.WriteFile(path, []byte("CREATE CONSTRAINT x;"), 0o644))

	mock := &MockDriver{Err: errors.New("syntax error")}
	err := ApplySchemaFile(context.Background(), mock, path)
	assert.Error(t, err)
}

func TestApplySchemaFileMissingFile(t *testing.T) {
	err := ApplySchemaFile(context.Background(), &MockDriver{}, filepath.Join(t.TempDir(), "nope.cypher"))
	assert.Error(t, err)
}

func TestApplySchemaFileRejectsEmptySchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "constraints.cypher")
	require.NoError(t, os.WriteFile(path, []byte(" ; ; "), 0o644))

	err := ApplySchemaFile(context.Background(), &MockDriver{}, path)
	assert.Error(t, err)
}
