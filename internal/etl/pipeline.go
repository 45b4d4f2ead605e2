package etl

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/shoplab/graphrec/internal/config"
	"github.com/shoplab/graphrec/internal/driver"
	"github.com/shoplab/graphrec/internal/store"
)

// Pipeline is the one-shot batch job: wait for both stores, apply the graph
// schema, extract the six relational tables, project them into the graph.
type Pipeline struct {
	cfg  *config.Config
	gate *Gate
}

func New(cfg *config.Config) *Pipeline {
	return &Pipeline{
		cfg:  cfg,
		gate: NewGate(cfg.ETL.ProbeInterval),
	}
}

func (p *Pipeline) Run(ctx context.Context) error {
	runID := uuid.NewString()
	log.Printf("Starting ETL run %s", runID)

	if err := p.gate.Await(ctx, "Postgres", p.postgresProbe); err != nil {
		return err
	}
	if err := p.gate.Await(ctx, "Neo4j", p.neo4jProbe); err != nil {
		return err
	}

	pool, err := store.Open(ctx, p.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	graph, err := driver.NewNeo4jDriver(ctx, p.cfg.Neo4j.URI, p.cfg.Neo4j.User, p.cfg.Neo4j.Password)
	if err != nil {
		return fmt.Errorf("connect neo4j: %w", err)
	}
	defer graph.Close(ctx)

	if err := ApplySchemaFile(ctx, graph, p.cfg.ETL.SchemaPath); err != nil {
		return err
	}
	log.Println("Graph schema applied")

	log.Println("Extracting data from SQL...")
	ext := store.NewExtractor(pool)

	categories, err := ext.Categories(ctx)
	if err != nil {
		return err
	}
	products, err := ext.Products(ctx)
	if err != nil {
		return err
	}
	customers, err := ext.Customers(ctx)
	if err != nil {
		return err
	}
	orders, err := ext.Orders(ctx)
	if err != nil {
		return err
	}
	items, err := ext.OrderItems(ctx)
	if err != nil {
		return err
	}
	events, err := ext.Events(ctx)
	if err != nil {
		return err
	}

	log.Println("Loading data into graph...")
	proj := NewProjector(graph)

	tables := []struct {
		name    string
		project func(context.Context) (Stats, error)
	}{
		{"categories", func(ctx context.Context) (Stats, error) { return proj.Categories(ctx, categories) }},
		{"products", func(ctx context.Context) (Stats, error) { return proj.Products(ctx, products) }},
		{"customers", func(ctx context.Context) (Stats, error) { return proj.Customers(ctx, customers) }},
		{"orders", func(ctx context.Context) (Stats, error) { return proj.Orders(ctx, orders) }},
		{"order_items", func(ctx context.Context) (Stats, error) { return proj.OrderItems(ctx, items) }},
		{"events", func(ctx context.Context) (Stats, error) { return proj.Events(ctx, events) }},
	}

	for _, t := range tables {
		stats, err := t.project(ctx)
		if err != nil {
			return fmt.Errorf("project %s: %w", t.name, err)
		}
		log.Printf("Loaded %s: %d merged, %d skipped", t.name, stats.Merged, stats.Skipped)
	}

	log.Printf("ETL run %s completed", runID)
	return nil
}

// postgresProbe opens and closes a single connection.
func (p *Pipeline) postgresProbe(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, p.cfg.Postgres.DSN())
	if err != nil {
		return err
	}
	return conn.Close(ctx)
}

// neo4jProbe builds a throwaway driver and verifies connectivity.
func (p *Pipeline) neo4jProbe(ctx context.Context) error {
	d, err := neo4j.NewDriverWithContext(p.cfg.Neo4j.URI, neo4j.BasicAuth(p.cfg.Neo4j.User, p.cfg.Neo4j.Password, ""))
	if err != nil {
		return err
	}
	defer d.Close(ctx)
	return d.VerifyConnectivity(ctx)
}
