package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockDriver struct {
	QueryExecuted string
	QueryParams   map[string]interface{}
	MockResult    neo4j.EagerResult
	Err           error
}

func (m *MockDriver) ExecuteQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	m.QueryExecuted = query
	m.QueryParams = params
	if m.Err != nil {
		return neo4j.EagerResult{}, m.Err
	}
	return m.MockResult, nil
}

func (m *MockDriver) ApplySchema(ctx context.Context, statements []string) error {
	return nil
}

func (m *MockDriver) Close(ctx context.Context) error {
	return nil
}

func record(product string, price float64, score int64) *neo4j.Record {
	return &neo4j.Record{
		Keys:   []string{"product", "price", "score"},
		Values: []interface{}{product, price, score},
	}
}

func serve(t *testing.T, mock *MockDriver, target string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := NewServer(mock).SetupRouter()

	req, err := http.NewRequest("GET", target, nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestRecommendations(t *testing.T) {
	mock := &MockDriver{
		MockResult: neo4j.EagerResult{Records: []*neo4j.Record{
			record("Dune", 9.99, 3),
			record("Catan", 39.90, 1),
		}},
	}

	rr := serve(t, mock, "/recommendations/cust-1")
	require.Equal(t, http.StatusOK, rr.Code)

	assert.Equal(t, map[string]interface{}{"customer_id": "cust-1"}, mock.QueryParams)

	var body struct {
		CustomerID      string           `json:"customer_id"`
		Recommendations []Recommendation `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	assert.Equal(t, "cust-1", body.CustomerID)
	require.Len(t, body.Recommendations, 2)
	assert.Equal(t, Recommendation{Product: "Dune", Price: 9.99, Score: 3}, body.Recommendations[0])
	assert.Greater(t, body.Recommendations[0].Score, body.Recommendations[1].Score)
}

func TestRecommendationsEmptyResultIsNotAnError(t *testing.T) {
	mock := &MockDriver{MockResult: neo4j.EagerResult{Records: []*neo4j.Record{}}}

	rr := serve(t, mock, "/recommendations/new-user")
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	assert.Equal(t, "new-user", body["customer_id"])
	assert.Equal(t, "No recommendations found (or new user).", body["message"])
	assert.NotContains(t, body, "recommendations")
}

func TestRecommendationsQueryError(t *testing.T) {
	mock := &MockDriver{Err: errors.New("traversal failed")}

	rr := serve(t, mock, "/recommendations/cust-1")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestRoot(t *testing.T) {
	rr := serve(t, &MockDriver{}, "/")
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Welcome to the E-commerce Graph Lab", body["message"])
}

func TestHealth(t *testing.T) {
	rr := serve(t, &MockDriver{}, "/health")
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
}
