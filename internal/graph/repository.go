// Package graph mirrors document-store entities as Neo4j nodes and keeps
// their relationship edges consistent. The graph never owns entity content,
// only topology; nodes are keyed by the Mongo id string (mongo_id).
package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"portfolio-backend/pkg/logger"
)

// Node labels, one per entity type.
const (
	LabelPerson        = "Person"
	LabelProject       = "Project"
	LabelExperience    = "Experience"
	LabelEducation     = "Education"
	LabelCertification = "Certification"
	LabelSkill         = "Skill"
	LabelTechnology    = "Technology"
	LabelHobby         = "Hobby"
	LabelContact       = "Contact"
	LabelCategory      = "Category"
)

// Canonical relationship types. The source data went through several naming
// generations (USES vs USES_TECH, OBTAINED vs CERTIFIED_IN); sync, seed and
// the read views all use this one set.
const (
	RelUsesTech         = "USES_TECH"
	RelRequiresSkill    = "REQUIRES_SKILL"
	RelWorkedOn         = "WORKED_ON"
	RelGainedSkill      = "GAINED_SKILL"
	RelRelatedToProject = "RELATED_TO_PROJECT"
	RelValidates        = "VALIDATES"
	RelBelongsTo        = "BELONGS_TO"
)

// Hub relationship types, one per target label, rooted at the single Person.
var HubRelations = map[string]string{
	LabelProject:       "CREATED",
	LabelExperience:    "WORKED_AT",
	LabelEducation:     "STUDIED_AT",
	LabelCertification: "OBTAINED",
	LabelSkill:         "MASTER",
	LabelHobby:         "PRACTICES",
	LabelTechnology:    "KNOWS",
}

// Edge is a directed, typed relationship between two mirrored nodes.
type Edge struct {
	FromLabel string
	FromID    string
	Type      string
	ToLabel   string
	ToID      string
}

// Repository handles all Neo4j operations.
type Repository struct {
	driver neo4j.DriverWithContext
	logger *zap.Logger
}

// NewRepository creates a new graph repository.
func NewRepository(driver neo4j.DriverWithContext) *Repository {
	return &Repository{
		driver: driver,
		logger: logger.Get(),
	}
}

func (r *Repository) writeSession(ctx context.Context) neo4j.SessionWithContext {
	return r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
}

func (r *Repository) readSession(ctx context.Context) neo4j.SessionWithContext {
	return r.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
}

// DeleteNode detach-deletes the mirrored node and every edge touching it,
// regardless of direction or type. A missing node is not an error.
func (r *Repository) DeleteNode(ctx context.Context, label, id string) error {
	session := r.writeSession(ctx)
	defer session.Close(ctx)

	query := fmt.Sprintf("MATCH (n:%s {mongo_id: $id}) DETACH DELETE n", label)
	if _, err := session.Run(ctx, query, map[string]any{"id": id}); err != nil {
		return fmt.Errorf("failed to delete %s node: %w", label, err)
	}

	r.logger.Debug("Graph node deleted", zap.String("label", label), zap.String("mongo_id", id))
	return nil
}

// PurgeAll removes every node and relationship. Global side effect, used only
// by the seed pipeline.
func (r *Repository) PurgeAll(ctx context.Context) error {
	session := r.writeSession(ctx)
	defer session.Close(ctx)

	if _, err := session.Run(ctx, "MATCH (n) DETACH DELETE n", nil); err != nil {
		return fmt.Errorf("failed to purge graph: %w", err)
	}
	return nil
}

// EnsureConstraints creates a unique constraint on mongo_id for each mirrored
// label. Safe to re-run.
func (r *Repository) EnsureConstraints(ctx context.Context) error {
	session := r.writeSession(ctx)
	defer session.Close(ctx)

	labels := []string{
		LabelPerson, LabelProject, LabelExperience, LabelEducation,
		LabelCertification, LabelSkill, LabelTechnology, LabelHobby, LabelContact,
	}

	for _, label := range labels {
		query := fmt.Sprintf(
			"CREATE CONSTRAINT %s_mongo_id_unique IF NOT EXISTS FOR (n:%s) REQUIRE n.mongo_id IS UNIQUE",
			lowerLabel(label), label,
		)
		if _, err := session.Run(ctx, query, nil); err != nil {
			r.logger.Warn("Failed to create constraint (may already exist)",
				zap.String("label", label),
				zap.Error(err),
			)
		}
	}
	return nil
}

// CreateNodes batch-creates one node per record under the given label. Each
// props map must carry a mongo_id key; records keep only primitive fields.
func (r *Repository) CreateNodes(ctx context.Context, label string, batch []map[string]any) error {
	if len(batch) == 0 {
		return nil
	}

	session := r.writeSession(ctx)
	defer session.Close(ctx)

	query := fmt.Sprintf(`
		UNWIND $batch AS row
		MERGE (n:%s {mongo_id: row.mongo_id})
		SET n += row
	`, label)

	if _, err := session.Run(ctx, query, map[string]any{"batch": batch}); err != nil {
		return fmt.Errorf("failed to create %s nodes: %w", label, err)
	}

	r.logger.Info("Graph nodes created", zap.String("label", label), zap.Int("count", len(batch)))
	return nil
}

// CreateHubEdges links the single Person node to every node of each other
// label, one relation type per label.
func (r *Repository) CreateHubEdges(ctx context.Context, personID string) error {
	session := r.writeSession(ctx)
	defer session.Close(ctx)

	for label, relType := range HubRelations {
		query := fmt.Sprintf(`
			MATCH (p:Person {mongo_id: $pid}), (t:%s)
			MERGE (p)-[:%s]->(t)
		`, label, relType)
		if _, err := session.Run(ctx, query, map[string]any{"pid": personID}); err != nil {
			return fmt.Errorf("failed to create %s hub edges: %w", relType, err)
		}
	}
	return nil
}

// CreateEdges merges a batch of inferred edges. Endpoints are matched, not
// merged: an edge referencing a node that does not exist is silently skipped.
func (r *Repository) CreateEdges(ctx context.Context, edges []Edge) error {
	if len(edges) == 0 {
		return nil
	}

	session := r.writeSession(ctx)
	defer session.Close(ctx)

	for _, e := range edges {
		query := fmt.Sprintf(`
			MATCH (a:%s {mongo_id: $from})
			MATCH (b:%s {mongo_id: $to})
			MERGE (a)-[:%s]->(b)
		`, e.FromLabel, e.ToLabel, e.Type)
		if _, err := session.Run(ctx, query, map[string]any{"from": e.FromID, "to": e.ToID}); err != nil {
			return fmt.Errorf("failed to create %s edge: %w", e.Type, err)
		}
	}
	return nil
}

// GroupSkillsByCategory creates one Category node per distinct skill category
// and a BELONGS_TO edge from each skill.
func (r *Repository) GroupSkillsByCategory(ctx context.Context) error {
	session := r.writeSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (s:Skill)
		WHERE s.category IS NOT NULL AND s.category <> ""
		MERGE (c:Category {name: s.category})
		MERGE (s)-[:BELONGS_TO]->(c)
	`
	if _, err := session.Run(ctx, query, nil); err != nil {
		return fmt.Errorf("failed to group skills by category: %w", err)
	}
	return nil
}

// CountNodesAndEdges returns graph totals, used by the seed summary.
func (r *Repository) CountNodesAndEdges(ctx context.Context) (nodes int64, edges int64, err error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	result, err := session.Run(ctx, "MATCH (n) RETURN count(n) AS nodes", nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count nodes: %w", err)
	}
	record, err := result.Single(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read node count: %w", err)
	}
	nodes = getInt64FromRecord(record, "nodes")

	result, err = session.Run(ctx, "MATCH ()-[r]->() RETURN count(r) AS edges", nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count edges: %w", err)
	}
	record, err = result.Single(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read edge count: %w", err)
	}
	edges = getInt64FromRecord(record, "edges")

	return nodes, edges, nil
}
