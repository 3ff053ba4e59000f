package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/models"
)

// Read-only portfolio views consumed by the public site. List views answer
// 404 with an explicit message when the underlying collection is empty, so
// the client can distinguish "not seeded yet" from an empty result.

func (s *Server) portfolioSkills(c *gin.Context) {
	docs, err := s.skills.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	if len(docs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "aucun skill trouvé"})
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (s *Server) portfolioProjets(c *gin.Context) {
	docs, err := s.projects.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	if len(docs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "aucun projet trouvé"})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// portfolioProjetDetails enriches every project with the technology and skill
// names reachable through the graph. The graph holds ids only; names are
// resolved from the document store in two batch lookups.
func (s *Server) portfolioProjetDetails(c *gin.Context) {
	ctx := c.Request.Context()

	projects, err := s.projects.List(ctx)
	if err != nil {
		s.respondError(c, err)
		return
	}
	if len(projects) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "aucun projet trouvé"})
		return
	}

	techIDsByProject, err := s.graph.ProjectTechnologyIDs(ctx)
	if err != nil {
		s.respondError(c, err)
		return
	}
	skillIDsByProject, err := s.graph.ProjectSkillIDs(ctx)
	if err != nil {
		s.respondError(c, err)
		return
	}

	techNames, err := s.technologyNamesByID(ctx, techIDsByProject)
	if err != nil {
		s.respondError(c, err)
		return
	}
	skillNames, err := s.skillNamesByID(ctx, skillIDsByProject)
	if err != nil {
		s.respondError(c, err)
		return
	}

	details := make([]models.ProjectDetail, 0, len(projects))
	for _, p := range projects {
		id := p.ID.Hex()
		detail := models.ProjectDetail{
			Project:      p,
			Technologies: resolveNames(techIDsByProject[id], techNames),
			Skills:       resolveNames(skillIDsByProject[id], skillNames),
		}
		details = append(details, detail)
	}
	c.JSON(http.StatusOK, details)
}

func (s *Server) portfolioTechnologies(c *gin.Context) {
	docs, err := s.technologies.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	if len(docs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "aucune technologie trouvée"})
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (s *Server) portfolioHobbies(c *gin.Context) {
	docs, err := s.hobbies.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	if len(docs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "aucun hobby trouvé"})
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (s *Server) portfolioExperiences(c *gin.Context) {
	docs, err := s.experiences.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	if len(docs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "aucune expérience trouvée"})
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (s *Server) portfolioParcoursScolaire(c *gin.Context) {
	docs, err := s.educations.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	if len(docs) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "aucun parcours scolaire trouvé"})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// technologyNamesByID fetches the names for every technology id referenced by
// any project in one lookup.
func (s *Server) technologyNamesByID(c context.Context, idsByProject map[string][]string) (map[string]string, error) {
	docs, err := s.technologies.FindByIDs(c, flattenIDs(idsByProject))
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(docs))
	for _, t := range docs {
		names[t.ID.Hex()] = t.Nom
	}
	return names, nil
}

func (s *Server) skillNamesByID(c context.Context, idsByProject map[string][]string) (map[string]string, error) {
	docs, err := s.skills.FindByIDs(c, flattenIDs(idsByProject))
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(docs))
	for _, sk := range docs {
		names[sk.ID.Hex()] = sk.Nom
	}
	return names, nil
}

func flattenIDs(idsByProject map[string][]string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, ids := range idsByProject {
		for _, id := range ids {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

// resolveNames maps ids to names, dropping ids whose record no longer exists.
func resolveNames(ids []string, names map[string]string) []string {
	out := []string{}
	for _, id := range ids {
		if name, ok := names[id]; ok {
			out = append(out, name)
		}
	}
	return out
}
