package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Querier abstracts the pgxpool.Pool so extraction can be tested with pgxmock.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Extractor reads whole tables. There is no pagination or delta logic: the
// pipeline is a one-shot batch job and every read error aborts the run.
type Extractor struct {
	db Querier
}

func NewExtractor(db Querier) *Extractor {
	return &Extractor{db: db}
}

func (e *Extractor) Categories(ctx context.Context) ([]Category, error) {
	rows, err := e.db.Query(ctx, `SELECT id, name FROM categories`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read categories: %w", err)
	}
	return out, nil
}

func (e *Extractor) Products(ctx context.Context) ([]Product, error) {
	rows, err := e.db.Query(ctx, `SELECT id, name, price, category_id FROM products`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.CategoryID); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}
	return out, nil
}

func (e *Extractor) Customers(ctx context.Context) ([]Customer, error) {
	rows, err := e.db.Query(ctx, `SELECT id, name, join_date FROM customers`)
	if err != nil {
		return nil, fmt.Errorf("query customers: %w", err)
	}
	defer rows.Close()

	var out []Customer
	for rows.Next() {
		var c Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.JoinDate); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read customers: %w", err)
	}
	return out, nil
}

func (e *Extractor) Orders(ctx context.Context) ([]Order, error) {
	rows, err := e.db.Query(ctx, `SELECT id, customer_id, ts FROM orders`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.TS); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}
	return out, nil
}

func (e *Extractor) OrderItems(ctx context.Context) ([]OrderItem, error) {
	rows, err := e.db.Query(ctx, `SELECT order_id, product_id, quantity FROM order_items`)
	if err != nil {
		return nil, fmt.Errorf("query order_items: %w", err)
	}
	defer rows.Close()

	var out []OrderItem
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.OrderID, &it.ProductID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan order_item: %w", err)
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read order_items: %w", err)
	}
	return out, nil
}

func (e *Extractor) Events(ctx context.Context) ([]Event, error) {
	rows, err := e.db.Query(ctx, `SELECT customer_id, product_id, event_type, ts FROM events`)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		var ev Event
		if err := rows.Scan(&ev.CustomerID, &ev.ProductID, &ev.EventType, &ev.TS); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}
	return out, nil
}
