package store

import (
	"context"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	apperrors "portfolio-backend/pkg/errors"
)

// Neo4j is an owned graph-store handle. The driver is long-lived; sessions
// are short-lived and scoped to one request's worth of graph work.
type Neo4j struct {
	driver neo4j.DriverWithContext
}

// NewNeo4j builds the driver and verifies connectivity.
func NewNeo4j(ctx context.Context, uri, user, password string) (*Neo4j, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		return nil, apperrors.NewGraphConnectionFailed(uri, err)
	}

	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, apperrors.NewGraphConnectionFailed(uri, err)
	}

	return &Neo4j{driver: driver}, nil
}

// Driver exposes the underlying driver.
func (n *Neo4j) Driver() neo4j.DriverWithContext {
	return n.driver
}

// Session opens a write session. The caller must Close it.
func (n *Neo4j) Session(ctx context.Context) neo4j.SessionWithContext {
	return n.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
}

// ReadSession opens a read session. The caller must Close it.
func (n *Neo4j) ReadSession(ctx context.Context) neo4j.SessionWithContext {
	return n.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
}

// Close releases the driver.
func (n *Neo4j) Close(ctx context.Context) error {
	return n.driver.Close(ctx)
}
