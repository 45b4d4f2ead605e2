package store

import "time"

// Row types mirror the relational schema one to one. Identifiers stay strings
// end to end so the graph keys match the API's path parameters.

type Category struct {
	ID   string
	Name string
}

type Product struct {
	ID         string
	Name       string
	Price      float64
	CategoryID string
}

type Customer struct {
	ID       string
	Name     string
	JoinDate time.Time
}

type Order struct {
	ID         string
	CustomerID string
	TS         time.Time
}

type OrderItem struct {
	OrderID   string
	ProductID string
	Quantity  int32
}

type Event struct {
	CustomerID string
	ProductID  string
	EventType  string
	TS         time.Time
}
