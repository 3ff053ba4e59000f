package graph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"portfolio-backend/internal/models"
)

// Entity sync: after a document-store create or update, the mirrored node is
// MERGEd by mongo_id with its scalar fields SET, then each supplied relation
// list is rebuilt: every existing edge of that type is deleted and the new
// list is recreated against stub target nodes. A nil list leaves that
// relation untouched; an empty list clears it.
//
// The two phases are not atomic. If the graph write fails after the Mongo
// write succeeded the stores are left inconsistent and the error propagates
// to the caller as a server error; there is no compensation step.

// ProjectRelations carries the relation-id lists declared on a project.
type ProjectRelations struct {
	PersonIDs     *[]string
	TechnologyIDs *[]string
	SkillIDs      *[]string
}

// ExperienceRelations carries the relation-id lists declared on an experience.
type ExperienceRelations struct {
	SkillIDs   *[]string
	ProjectIDs *[]string
}

// CertificationRelations carries the relation-id lists declared on a certification.
type CertificationRelations struct {
	SkillIDs      *[]string
	TechnologyIDs *[]string
}

// relation describes one declared relation field of an entity. Incoming
// relations point target -> owner (a person WORKED_ON a project).
type relation struct {
	relType     string
	targetLabel string
	incoming    bool
}

// SyncPerson mirrors a personal-info document as the Person node.
func (r *Repository) SyncPerson(ctx context.Context, id string, info *models.PersonalInfo) error {
	session := r.writeSession(ctx)
	defer session.Close(ctx)

	query := `
		MERGE (p:Person {mongo_id: $mongo_id})
		SET p.nom = $nom,
		    p.prenom = $prenom,
		    p.description = $description,
		    p.linkedin = $linkedin,
		    p.tel = $tel,
		    p.mail = $mail
	`
	_, err := session.Run(ctx, query, map[string]any{
		"mongo_id":    id,
		"nom":         info.Nom,
		"prenom":      info.Prenom,
		"description": info.Description,
		"linkedin":    info.Contact.Linkedin,
		"tel":         info.Contact.Tel,
		"mail":        info.Contact.Mail,
	})
	if err != nil {
		return fmt.Errorf("failed to sync person node: %w", err)
	}
	return nil
}

// SyncProject mirrors a project document and rebuilds its edges.
func (r *Repository) SyncProject(ctx context.Context, id string, p *models.Project, rel ProjectRelations) error {
	session := r.writeSession(ctx)
	defer session.Close(ctx)

	query := `
		MERGE (p:Project {mongo_id: $mongo_id})
		SET p.nom = $nom,
		    p.description = $description,
		    p.status = $status,
		    p.entreprise = $entreprise,
		    p.date_debut = $date_debut,
		    p.date_fin = $date_fin,
		    p.lien_github = $lien_github
	`
	_, err := session.Run(ctx, query, map[string]any{
		"mongo_id":    id,
		"nom":         p.Nom,
		"description": p.Description,
		"status":      p.Status,
		"entreprise":  p.Entreprise,
		"date_debut":  strOrNil(p.DateDebut),
		"date_fin":    strOrNil(p.DateFin),
		"lien_github": p.LienGithub,
	})
	if err != nil {
		return fmt.Errorf("failed to sync project node: %w", err)
	}

	rebuilds := []struct {
		rel relation
		ids *[]string
	}{
		{relation{RelWorkedOn, LabelPerson, true}, rel.PersonIDs},
		{relation{RelUsesTech, LabelTechnology, false}, rel.TechnologyIDs},
		{relation{RelRequiresSkill, LabelSkill, false}, rel.SkillIDs},
	}
	for _, rb := range rebuilds {
		if rb.ids == nil {
			continue
		}
		if err := r.rebuildRelation(ctx, session, LabelProject, id, rb.rel, *rb.ids); err != nil {
			return err
		}
	}

	r.logger.Debug("Project synced to graph", zap.String("mongo_id", id))
	return nil
}

// SyncExperience mirrors an experience document and rebuilds its edges.
func (r *Repository) SyncExperience(ctx context.Context, id string, e *models.Experience, rel ExperienceRelations) error {
	session := r.writeSession(ctx)
	defer session.Close(ctx)

	query := `
		MERGE (e:Experience {mongo_id: $mongo_id})
		SET e.nom = $nom,
		    e.description = $description,
		    e.company = $company,
		    e.type_de_poste = $type_de_poste,
		    e.role = $role,
		    e.date_debut = $date_debut,
		    e.date_fin = $date_fin
	`
	_, err := session.Run(ctx, query, map[string]any{
		"mongo_id":      id,
		"nom":           e.Nom,
		"description":   e.Description,
		"company":       e.Company,
		"type_de_poste": e.TypeDePoste,
		"role":          e.Role,
		"date_debut":    strOrNil(e.DateDebut),
		"date_fin":      strOrNil(e.DateFin),
	})
	if err != nil {
		return fmt.Errorf("failed to sync experience node: %w", err)
	}

	rebuilds := []struct {
		rel relation
		ids *[]string
	}{
		{relation{RelGainedSkill, LabelSkill, false}, rel.SkillIDs},
		{relation{RelRelatedToProject, LabelProject, false}, rel.ProjectIDs},
	}
	for _, rb := range rebuilds {
		if rb.ids == nil {
			continue
		}
		if err := r.rebuildRelation(ctx, session, LabelExperience, id, rb.rel, *rb.ids); err != nil {
			return err
		}
	}

	r.logger.Debug("Experience synced to graph", zap.String("mongo_id", id))
	return nil
}

// SyncSkill mirrors a skill document.
func (r *Repository) SyncSkill(ctx context.Context, id string, s *models.Skill) error {
	session := r.writeSession(ctx)
	defer session.Close(ctx)

	query := `
		MERGE (s:Skill {mongo_id: $mongo_id})
		SET s.nom = $nom,
		    s.category = $category,
		    s.description = $description
	`
	_, err := session.Run(ctx, query, map[string]any{
		"mongo_id":    id,
		"nom":         s.Nom,
		"category":    s.Category,
		"description": s.Description,
	})
	if err != nil {
		return fmt.Errorf("failed to sync skill node: %w", err)
	}
	return nil
}

// SyncTechnology mirrors a technology document.
func (r *Repository) SyncTechnology(ctx context.Context, id string, t *models.Technology) error {
	session := r.writeSession(ctx)
	defer session.Close(ctx)

	query := `
		MERGE (t:Technology {mongo_id: $mongo_id})
		SET t.nom = $nom,
		    t.image = $image
	`
	_, err := session.Run(ctx, query, map[string]any{
		"mongo_id": id,
		"nom":      t.Nom,
		"image":    t.Image,
	})
	if err != nil {
		return fmt.Errorf("failed to sync technology node: %w", err)
	}
	return nil
}

// SyncCertification mirrors a certification document and rebuilds its
// VALIDATES edges.
func (r *Repository) SyncCertification(ctx context.Context, id string, c *models.Certification, rel CertificationRelations) error {
	session := r.writeSession(ctx)
	defer session.Close(ctx)

	query := `
		MERGE (c:Certification {mongo_id: $mongo_id})
		SET c.nom = $nom,
		    c.image = $image,
		    c.description = $description,
		    c.obtention_date = $obtention_date
	`
	_, err := session.Run(ctx, query, map[string]any{
		"mongo_id":       id,
		"nom":            c.Nom,
		"image":          c.Image,
		"description":    c.Description,
		"obtention_date": strOrNil(c.ObtentionDate),
	})
	if err != nil {
		return fmt.Errorf("failed to sync certification node: %w", err)
	}

	// Both VALIDATES relations share a type but not a target label, so each
	// rebuild only touches edges toward its own label.
	rebuilds := []struct {
		rel relation
		ids *[]string
	}{
		{relation{RelValidates, LabelSkill, false}, rel.SkillIDs},
		{relation{RelValidates, LabelTechnology, false}, rel.TechnologyIDs},
	}
	for _, rb := range rebuilds {
		if rb.ids == nil {
			continue
		}
		if err := r.rebuildRelation(ctx, session, LabelCertification, id, rb.rel, *rb.ids); err != nil {
			return err
		}
	}

	r.logger.Debug("Certification synced to graph", zap.String("mongo_id", id))
	return nil
}

// rebuildRelation drops every edge of one relation type on the owner node,
// then recreates one edge per target id, merging a stub target node when the
// target has not been synced yet. Delete-all-then-recreate is a deliberate
// non-atomic two-phase operation: there is a brief window with zero edges of
// the type, acceptable with a single writer per entity id.
func (r *Repository) rebuildRelation(ctx context.Context, session neo4j.SessionWithContext, ownerLabel, ownerID string, rel relation, targetIDs []string) error {
	var deleteQuery string
	if rel.incoming {
		deleteQuery = fmt.Sprintf(`
			MATCH (o:%s {mongo_id: $owner_id})
			OPTIONAL MATCH (o)<-[rel:%s]-(:%s)
			DELETE rel
		`, ownerLabel, rel.relType, rel.targetLabel)
	} else {
		deleteQuery = fmt.Sprintf(`
			MATCH (o:%s {mongo_id: $owner_id})
			OPTIONAL MATCH (o)-[rel:%s]->(:%s)
			DELETE rel
		`, ownerLabel, rel.relType, rel.targetLabel)
	}
	if _, err := session.Run(ctx, deleteQuery, map[string]any{"owner_id": ownerID}); err != nil {
		return fmt.Errorf("failed to clear %s edges: %w", rel.relType, err)
	}

	for _, targetID := range targetIDs {
		var createQuery string
		if rel.incoming {
			createQuery = fmt.Sprintf(`
				MATCH (o:%s {mongo_id: $owner_id})
				MERGE (t:%s {mongo_id: $target_id})
				MERGE (o)<-[:%s]-(t)
			`, ownerLabel, rel.targetLabel, rel.relType)
		} else {
			createQuery = fmt.Sprintf(`
				MATCH (o:%s {mongo_id: $owner_id})
				MERGE (t:%s {mongo_id: $target_id})
				MERGE (o)-[:%s]->(t)
			`, ownerLabel, rel.targetLabel, rel.relType)
		}
		params := map[string]any{"owner_id": ownerID, "target_id": targetID}
		if _, err := session.Run(ctx, createQuery, params); err != nil {
			return fmt.Errorf("failed to create %s edge: %w", rel.relType, err)
		}
	}

	return nil
}
