package etl

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/shoplab/graphrec/internal/driver"
	"github.com/shoplab/graphrec/internal/store"
)

// Stats reports one table's projection outcome.
type Stats struct {
	Merged  int
	Skipped int
}

// Projector turns extracted rows into idempotent MERGE operations. Tables
// must be projected in dependency order (Category, Product, Customer, Order,
// OrderItem, Event) so relationship endpoints already exist.
//
// A failed row is logged and skipped; the run only aborts when the graph
// store itself is gone.
type Projector struct {
	graph driver.GraphDriver

	// IsFatal classifies a write error as run-ending. Defaults to
	// connectivity loss; swapped in tests.
	IsFatal func(error) bool
}

func NewProjector(g driver.GraphDriver) *Projector {
	return &Projector{
		graph:   g,
		IsFatal: neo4j.IsConnectivityError,
	}
}

func (p *Projector) Categories(ctx context.Context, categories []store.Category) (Stats, error) {
	var stats Stats
	for _, c := range categories {
		err := p.mergeRow(ctx, &stats, fmt.Sprintf("category %s", c.ID), driver.MergeCategoryQuery, map[string]interface{}{
			"id":   c.ID,
			"name": c.Name,
		})
		if err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (p *Projector) Products(ctx context.Context, products []store.Product) (Stats, error) {
	var stats Stats
	for _, pr := range products {
		err := p.mergeRow(ctx, &stats, fmt.Sprintf("product %s", pr.ID), driver.MergeProductQuery, map[string]interface{}{
			"id":          pr.ID,
			"name":        pr.Name,
			"price":       pr.Price,
			"category_id": pr.CategoryID,
		})
		if err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (p *Projector) Customers(ctx context.Context, customers []store.Customer) (Stats, error) {
	var stats Stats
	for _, c := range customers {
		err := p.mergeRow(ctx, &stats, fmt.Sprintf("customer %s", c.ID), driver.MergeCustomerQuery, map[string]interface{}{
			"id":        c.ID,
			"name":      c.Name,
			"join_date": c.JoinDate.Format("2006-01-02"),
		})
		if err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (p *Projector) Orders(ctx context.Context, orders []store.Order) (Stats, error) {
	var stats Stats
	for _, o := range orders {
		err := p.mergeRow(ctx, &stats, fmt.Sprintf("order %s", o.ID), driver.MergeOrderQuery, map[string]interface{}{
			"id":          o.ID,
			"customer_id": o.CustomerID,
			"ts":          o.TS.Format(time.RFC3339),
		})
		if err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (p *Projector) OrderItems(ctx context.Context, items []store.OrderItem) (Stats, error) {
	var stats Stats
	for _, it := range items {
		err := p.mergeRow(ctx, &stats, fmt.Sprintf("order_item %s/%s", it.OrderID, it.ProductID), driver.MergeOrderItemQuery, map[string]interface{}{
			"order_id":   it.OrderID,
			"product_id": it.ProductID,
			"quantity":   it.Quantity,
		})
		if err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (p *Projector) Events(ctx context.Context, events []store.Event) (Stats, error) {
	var stats Stats
	for _, ev := range events {
		rel, err := RelationshipType(ev.EventType)
		if err != nil {
			log.Printf("Skipping event %s/%s: %v", ev.CustomerID, ev.ProductID, err)
			stats.Skipped++
			continue
		}

		query := fmt.Sprintf(driver.MergeEventQueryTmpl, rel)
		err = p.mergeRow(ctx, &stats, fmt.Sprintf("event %s/%s", ev.CustomerID, ev.ProductID), query, map[string]interface{}{
			"customer_id": ev.CustomerID,
			"product_id":  ev.ProductID,
			"ts":          ev.TS.Format(time.RFC3339),
		})
		if err != nil {
			return stats, err
		}
	}
	return stats, nil
}

func (p *Projector) mergeRow(ctx context.Context, stats *Stats, what, query string, params map[string]interface{}) error {
	if _, err := p.graph.ExecuteQuery(ctx, query, params); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if p.IsFatal(err) {
			return fmt.Errorf("merge %s: %w", what, err)
		}
		log.Printf("Skipping %s: %v", what, err)
		stats.Skipped++
		return nil
	}
	stats.Merged++
	return nil
}
