package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/graph"
	"portfolio-backend/internal/models"
)

func (s *Server) listExperiences(c *gin.Context) {
	docs, err := s.experiences.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (s *Server) getExperience(c *gin.Context) {
	doc, err := s.experiences.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (s *Server) createExperience(c *gin.Context) {
	var req models.ExperienceCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	id, err := s.experiences.Insert(ctx, req.Document())
	if err != nil {
		s.respondError(c, err)
		return
	}

	created, err := s.experiences.Get(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	rel := graph.ExperienceRelations{
		SkillIDs:   &req.SkillIDs,
		ProjectIDs: &req.ProjectIDs,
	}
	if err := s.graph.SyncExperience(ctx, id, created, rel); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateExperience(c *gin.Context) {
	var req models.ExperienceUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	id := c.Param("id")

	if _, err := s.experiences.Get(ctx, id); err != nil {
		s.respondError(c, err)
		return
	}

	if err := s.experiences.Update(ctx, id, req.SetFields()); err != nil {
		s.respondError(c, err)
		return
	}

	updated, err := s.experiences.Get(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	rel := graph.ExperienceRelations{
		SkillIDs:   req.SkillIDs,
		ProjectIDs: req.ProjectIDs,
	}
	if err := s.graph.SyncExperience(ctx, id, updated, rel); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteExperience(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := s.experiences.Delete(ctx, id); err != nil {
		s.respondError(c, err)
		return
	}

	if err := s.graph.DeleteNode(ctx, graph.LabelExperience, id); err != nil {
		s.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
