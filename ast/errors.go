package ast

import "fmt"

// CastError is raised only by an explicit "narrow" accessor (AsX) when the
// concrete value does not match the requested variant. Normal traversal via
// Kind()/type-switch never raises it.
type CastError struct {
	From string
	To   string
}

func (e CastError) Error() string {
	return fmt.Sprintf("invalid cast: %s is not a %s", e.From, e.To)
}

// AsTypeStatement narrows s to *TypeStatement.
func AsTypeStatement(s Statement) (*TypeStatement, error) {
	if t, ok := s.(*TypeStatement); ok {
		return t, nil
	}
	return nil, CastError{From: s.Kind().String(), To: "TypeStatement"}
}

// AsThingStatement narrows s to *ThingStatement.
func AsThingStatement(s Statement) (*ThingStatement, error) {
	if t, ok := s.(*ThingStatement); ok {
		return t, nil
	}
	return nil, CastError{From: s.Kind().String(), To: "ThingStatement"}
}

// AsRelationStatement narrows s to *RelationStatement.
func AsRelationStatement(s Statement) (*RelationStatement, error) {
	if t, ok := s.(*RelationStatement); ok {
		return t, nil
	}
	return nil, CastError{From: s.Kind().String(), To: "RelationStatement"}
}

// AsAttributeStatement narrows s to *AttributeStatement.
func AsAttributeStatement(s Statement) (*AttributeStatement, error) {
	if t, ok := s.(*AttributeStatement); ok {
		return t, nil
	}
	return nil, CastError{From: s.Kind().String(), To: "AttributeStatement"}
}

// AsGetQuery narrows q to *GetQuery.
func AsGetQuery(q Query) (*GetQuery, error) {
	if g, ok := q.(*GetQuery); ok {
		return g, nil
	}
	return nil, CastError{From: "query", To: "GetQuery"}
}

// AsComputeQuery narrows q to *ComputeQuery.
func AsComputeQuery(q Query) (*ComputeQuery, error) {
	if c, ok := q.(*ComputeQuery); ok {
		return c, nil
	}
	return nil, CastError{From: "query", To: "ComputeQuery"}
}
