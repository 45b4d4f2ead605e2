package etl

import (
	"context"
	"strings"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type executedQuery struct {
	Query  string
	Params map[string]interface{}
}

type MockDriver struct {
	Executed   []executedQuery
	SchemaRuns [][]string
	MockResult neo4j.EagerResult

	// Err is returned from ExecuteQuery; FailOn limits it to queries
	// containing the substring.
	Err    error
	FailOn string
}

func (m *MockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	m.Executed = append(m.Executed, executedQuery{Query: query, Params: params})
	if m.Err != nil && (m.FailOn == "" || strings.Contains(query, m.FailOn)) {
		return neo4j.EagerResult{}, m.Err
	}
	return m.MockResult, nil
}

func (m *MockDriver) ApplySchema(ctx context.Context, statements []string) error {
	m.SchemaRuns = append(m.SchemaRuns, statements)
	return m.Err
}

func (m *MockDriver) Close(ctx context.Context) error {
	return nil
}
