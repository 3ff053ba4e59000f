package graph

import (
	"context"
	"fmt"
)

// Relationship-derived read views. These return mongo_id lists only; callers
// re-fetch the full records from the document store, which stays the single
// source of truth for entity content.

// ProjectIDsBySkillName returns the ids of projects requiring the named
// skill, matched case-insensitively.
func (r *Repository) ProjectIDsBySkillName(ctx context.Context, name string) ([]string, error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	query := `
		MATCH (s:Skill)
		WHERE toLower(s.nom) = toLower($name)
		MATCH (s)<-[:REQUIRES_SKILL]-(p:Project)
		RETURN DISTINCT p.mongo_id AS mongo_id
	`
	result, err := session.Run(ctx, query, map[string]any{"name": name})
	if err != nil {
		return nil, fmt.Errorf("failed to query projects by skill: %w", err)
	}

	ids := []string{}
	for result.Next(ctx) {
		if id := getStringFromRecord(result.Record(), "mongo_id"); id != "" {
			ids = append(ids, id)
		}
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read project ids: %w", err)
	}
	return ids, nil
}

// ProjectTechnologyIDs returns, for every project node, the ids of the
// technologies it uses.
func (r *Repository) ProjectTechnologyIDs(ctx context.Context) (map[string][]string, error) {
	return r.collectOutgoing(ctx, LabelProject, RelUsesTech, LabelTechnology)
}

// ProjectSkillIDs returns, for every project node, the ids of the skills it
// requires.
func (r *Repository) ProjectSkillIDs(ctx context.Context) (map[string][]string, error) {
	return r.collectOutgoing(ctx, LabelProject, RelRequiresSkill, LabelSkill)
}

// collectOutgoing groups the target ids of one relation type by source id.
func (r *Repository) collectOutgoing(ctx context.Context, fromLabel, relType, toLabel string) (map[string][]string, error) {
	session := r.readSession(ctx)
	defer session.Close(ctx)

	query := fmt.Sprintf(`
		MATCH (a:%s)-[:%s]->(b:%s)
		RETURN a.mongo_id AS source_id, collect(b.mongo_id) AS target_ids
	`, fromLabel, relType, toLabel)

	result, err := session.Run(ctx, query, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s edges: %w", relType, err)
	}

	out := map[string][]string{}
	for result.Next(ctx) {
		record := result.Record()
		sourceID := getStringFromRecord(record, "source_id")
		if sourceID == "" {
			continue
		}
		out[sourceID] = getStringSliceFromRecord(record, "target_ids")
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s edges: %w", relType, err)
	}
	return out, nil
}
