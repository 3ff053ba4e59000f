package graph

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"portfolio-backend/internal/models"
)

// Integration tests require a running Neo4j instance.
// Set NEO4J_URI, NEO4J_USER, NEO4J_PASSWORD environment variables.

func createTestDriver() (neo4j.DriverWithContext, error) {
	uri := os.Getenv("NEO4J_URI")
	if uri == "" {
		uri = "bolt://localhost:7687"
	}
	user := os.Getenv("NEO4J_USER")
	if user == "" {
		user = "neo4j"
	}
	password := os.Getenv("NEO4J_PASSWORD")
	if password == "" {
		password = "password"
	}
	return neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
}

func cleanupNodes(ctx context.Context, driver neo4j.DriverWithContext, ids ...string) {
	session := driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)
	_, _ = session.Run(ctx, "MATCH (n) WHERE n.mongo_id IN $ids DETACH DELETE n", map[string]any{"ids": ids})
}

func countEdges(ctx context.Context, t *testing.T, driver neo4j.DriverWithContext, projectID, relType string) int64 {
	t.Helper()
	session := driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	query := fmt.Sprintf("MATCH (:Project {mongo_id: $id})-[r:%s]->() RETURN count(r) AS n", relType)
	result, err := session.Run(ctx, query, map[string]any{"id": projectID})
	if err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	record, err := result.Single(ctx)
	if err != nil {
		t.Fatalf("count read failed: %v", err)
	}
	return getInt64FromRecord(record, "n")
}

func TestRepository_SyncProjectRebuildsEdges(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	driver, err := createTestDriver()
	if err != nil {
		t.Fatalf("Failed to create driver: %v", err)
	}
	defer driver.Close(ctx)

	repo := NewRepository(driver)
	suffix := time.Now().Format("20060102150405")
	projectID := "test-project-" + suffix
	techA := "test-tech-a-" + suffix
	techB := "test-tech-b-" + suffix
	defer cleanupNodes(ctx, driver, projectID, techA, techB)

	project := &models.Project{Nom: "Test Project", Status: "en cours"}

	// First sync declares both technologies.
	both := []string{techA, techB}
	if err := repo.SyncProject(ctx, projectID, project, ProjectRelations{TechnologyIDs: &both}); err != nil {
		t.Fatalf("SyncProject failed: %v", err)
	}
	if n := countEdges(ctx, t, driver, projectID, RelUsesTech); n != 2 {
		t.Errorf("Expected 2 USES_TECH edges, got %d", n)
	}

	// Shrinking the list drops the removed edge, not just adds.
	onlyA := []string{techA}
	if err := repo.SyncProject(ctx, projectID, project, ProjectRelations{TechnologyIDs: &onlyA}); err != nil {
		t.Fatalf("SyncProject failed: %v", err)
	}
	if n := countEdges(ctx, t, driver, projectID, RelUsesTech); n != 1 {
		t.Errorf("Expected 1 USES_TECH edge after rebuild, got %d", n)
	}

	// A nil list leaves the relation untouched.
	if err := repo.SyncProject(ctx, projectID, project, ProjectRelations{}); err != nil {
		t.Fatalf("SyncProject failed: %v", err)
	}
	if n := countEdges(ctx, t, driver, projectID, RelUsesTech); n != 1 {
		t.Errorf("Expected nil list to leave 1 edge, got %d", n)
	}

	// An empty list clears the relation.
	empty := []string{}
	if err := repo.SyncProject(ctx, projectID, project, ProjectRelations{TechnologyIDs: &empty}); err != nil {
		t.Fatalf("SyncProject failed: %v", err)
	}
	if n := countEdges(ctx, t, driver, projectID, RelUsesTech); n != 0 {
		t.Errorf("Expected empty list to clear edges, got %d", n)
	}
}

func TestRepository_DeleteNodeDetaches(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	driver, err := createTestDriver()
	if err != nil {
		t.Fatalf("Failed to create driver: %v", err)
	}
	defer driver.Close(ctx)

	repo := NewRepository(driver)
	suffix := time.Now().Format("20060102150405")
	projectID := "test-project-" + suffix
	techID := "test-tech-" + suffix
	defer cleanupNodes(ctx, driver, projectID, techID)

	ids := []string{techID}
	project := &models.Project{Nom: "Doomed Project"}
	if err := repo.SyncProject(ctx, projectID, project, ProjectRelations{TechnologyIDs: &ids}); err != nil {
		t.Fatalf("SyncProject failed: %v", err)
	}

	if err := repo.DeleteNode(ctx, LabelProject, projectID); err != nil {
		t.Fatalf("DeleteNode failed: %v", err)
	}

	session := driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)
	result, err := session.Run(ctx, "MATCH (p:Project {mongo_id: $id}) RETURN count(p) AS n", map[string]any{"id": projectID})
	if err != nil {
		t.Fatalf("verify query failed: %v", err)
	}
	record, err := result.Single(ctx)
	if err != nil {
		t.Fatalf("verify read failed: %v", err)
	}
	if n := getInt64FromRecord(record, "n"); n != 0 {
		t.Errorf("Expected project node gone, found %d", n)
	}

	// Deleting again is not an error.
	if err := repo.DeleteNode(ctx, LabelProject, projectID); err != nil {
		t.Errorf("DeleteNode on missing node failed: %v", err)
	}
}

func TestRepository_ProjectIDsBySkillNameCaseInsensitive(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	ctx := context.Background()
	driver, err := createTestDriver()
	if err != nil {
		t.Fatalf("Failed to create driver: %v", err)
	}
	defer driver.Close(ctx)

	repo := NewRepository(driver)
	suffix := time.Now().Format("20060102150405")
	projectID := "test-project-" + suffix
	skillID := "test-skill-" + suffix
	skillName := "TestSkill" + suffix
	defer cleanupNodes(ctx, driver, projectID, skillID)

	if err := repo.SyncSkill(ctx, skillID, &models.Skill{Nom: skillName}); err != nil {
		t.Fatalf("SyncSkill failed: %v", err)
	}
	ids := []string{skillID}
	if err := repo.SyncProject(ctx, projectID, &models.Project{Nom: "Test"}, ProjectRelations{SkillIDs: &ids}); err != nil {
		t.Fatalf("SyncProject failed: %v", err)
	}

	found, err := repo.ProjectIDsBySkillName(ctx, "tEsTsKiLl"+suffix)
	if err != nil {
		t.Fatalf("ProjectIDsBySkillName failed: %v", err)
	}
	if len(found) != 1 || found[0] != projectID {
		t.Errorf("Expected [%s], got %v", projectID, found)
	}

	found, err = repo.ProjectIDsBySkillName(ctx, "no-such-skill-"+suffix)
	if err != nil {
		t.Fatalf("ProjectIDsBySkillName failed: %v", err)
	}
	if len(found) != 0 {
		t.Errorf("Expected no projects for unknown skill, got %v", found)
	}
}
