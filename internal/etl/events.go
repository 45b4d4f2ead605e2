package etl

import (
	"fmt"
	"strings"
)

// Relationship types cannot be bound as Cypher parameters, so the event type
// is the one value that gets spliced into query text. Only tokens from this
// fixed allowlist ever reach the query; the relational CHECK constraint is
// not trusted.
var eventRelationships = map[string]string{
	"view":        "VIEW",
	"click":       "CLICK",
	"add_to_cart": "ADD_TO_CART",
}

// RelationshipType maps a source event_type value to its relationship-type
// token. Values outside the allowlist are rejected, never interpolated.
func RelationshipType(eventType string) (string, error) {
	rel, ok := eventRelationships[strings.ToLower(strings.TrimSpace(eventType))]
	if !ok {
		return "", fmt.Errorf("event type %q is not in the allowlist", eventType)
	}
	return rel, nil
}
