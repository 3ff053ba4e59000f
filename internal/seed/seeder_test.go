package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"portfolio-backend/internal/graph"
	"portfolio-backend/internal/store"
)

// Integration test: requires running MongoDB and Neo4j instances, configured
// via MONGO_URL, NEO4J_URI, NEO4J_USER, NEO4J_PASSWORD. It runs against a
// dedicated test database and purges it.

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func writeTestDatasets(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	files := map[string]string{
		"infos_personnels.jsonl": `{"id": "person-1", "nom": "Doe", "prenom": "Jane"}`,
		"projets.jsonl": `{"id": "proj-1", "nom": "Portfolio", "description": "Site built with React and Neo4j"}
{"id": "proj-2", "nom": "Scraper", "description": "CLI tool in Go"}`,
		"skills.jsonl": `{"id": "skill-1", "nom": "Go", "category": "Backend"}
{"id": "skill-2", "nom": "React", "category": "Frontend"}`,
		"technologies.jsonl": `{"id": "tech-1", "nom": "Neo4j"}`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestSeeder_RunIsIdempotent(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()

	mongo, err := store.NewMongo(ctx, getenv("MONGO_URL", "mongodb://localhost:27017"), "portfolio_seed_test")
	if err != nil {
		t.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongo.Close(ctx)

	neo, err := store.NewNeo4j(ctx,
		getenv("NEO4J_URI", "bolt://localhost:7687"),
		getenv("NEO4J_USER", "neo4j"),
		getenv("NEO4J_PASSWORD", "password"),
	)
	if err != nil {
		t.Fatalf("Failed to connect to Neo4j: %v", err)
	}
	defer neo.Close(ctx)

	graphRepo := graph.NewRepository(neo.Driver())
	seeder := NewSeeder(mongo, graphRepo, writeTestDatasets(t))

	first, err := seeder.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, first.Documents[store.CollectionPersonalInfos])
	assert.Equal(t, 2, first.Documents[store.CollectionProjects])
	assert.Equal(t, 2, first.Documents[store.CollectionSkills])
	assert.Greater(t, first.Nodes, int64(0))
	// Hub edges alone guarantee at least one edge per non-person node.
	assert.Greater(t, first.Edges, int64(0))

	// Re-running purges first, so counts do not grow.
	second, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.Documents, second.Documents)
	assert.Equal(t, first.Nodes, second.Nodes)
	assert.Equal(t, first.Edges, second.Edges)

	count, err := mongo.Collection(store.CollectionProjects).CountDocuments(ctx, bson.M{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
