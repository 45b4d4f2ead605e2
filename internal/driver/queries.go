package driver

const (
	MergeCategoryQuery = `
		MERGE (c:Category {id: $id})
		SET c.name = $name
		RETURN c.id AS id
	`

	MergeProductQuery = `
		MERGE (p:Product {id: $id})
		SET p.name = $name,
			p.price = $price
		WITH p
		MATCH (c:Category {id: $category_id})
		MERGE (p)-[:IN_CATEGORY]->(c)
		RETURN p.id AS id
	`

	MergeCustomerQuery = `
		MERGE (c:Customer {id: $id})
		SET c.name = $name,
			c.join_date = $join_date
		RETURN c.id AS id
	`

	MergeOrderQuery = `
		MERGE (o:Order {id: $id})
		SET o.ts = $ts
		WITH o
		MATCH (c:Customer {id: $customer_id})
		MERGE (c)-[:PLACED]->(o)
		RETURN o.id AS id
	`

	MergeOrderItemQuery = `
		MATCH (o:Order {id: $order_id})
		MATCH (p:Product {id: $product_id})
		MERGE (o)-[r:CONTAINS]->(p)
		SET r.quantity = $quantity
		RETURN o.id AS id
	`

	// MergeEventQueryTmpl carries a %s placeholder for the relationship type.
	// Cypher cannot bind relationship types as parameters, so the caller must
	// only ever splice in a token validated by etl.RelationshipType.
	MergeEventQueryTmpl = `
		MATCH (c:Customer {id: $customer_id})
		MATCH (p:Product {id: $product_id})
		MERGE (c)-[e:%s]->(p)
		SET e.ts = $ts
		RETURN c.id AS id
	`

	// Collaborative filtering: products bought by customers who share a
	// purchase with the target customer, minus the target's own purchases,
	// ranked by co-purchase frequency.
	RecommendationsQuery = `
		MATCH (c:Customer {id: $customer_id})-[:PLACED]->(:Order)-[:CONTAINS]->(p:Product)
		MATCH (p)<-[:CONTAINS]-(:Order)<-[:PLACED]-(other:Customer)
		WHERE other <> c
		MATCH (other)-[:PLACED]->(:Order)-[:CONTAINS]->(rec:Product)
		WHERE NOT (c)-[:PLACED]->(:Order)-[:CONTAINS]->(rec)
		RETURN rec.name AS product, rec.price AS price, count(*) AS score
		ORDER BY score DESC
		LIMIT 5
	`
)
