package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/graph"
	"portfolio-backend/internal/models"
)

func (s *Server) listProjects(c *gin.Context) {
	docs, err := s.projects.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (s *Server) getProject(c *gin.Context) {
	doc, err := s.projects.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (s *Server) createProject(c *gin.Context) {
	var req models.ProjectCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	id, err := s.projects.Insert(ctx, req.Document())
	if err != nil {
		s.respondError(c, err)
		return
	}

	created, err := s.projects.Get(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	// The Mongo write is already committed; a graph failure here leaves the
	// stores inconsistent and surfaces as a server error.
	rel := graph.ProjectRelations{
		PersonIDs:     &req.PersonIDs,
		TechnologyIDs: &req.TechnologyIDs,
		SkillIDs:      &req.SkillIDs,
	}
	if err := s.graph.SyncProject(ctx, id, created, rel); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateProject(c *gin.Context) {
	var req models.ProjectUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	id := c.Param("id")

	if _, err := s.projects.Get(ctx, id); err != nil {
		s.respondError(c, err)
		return
	}

	if err := s.projects.Update(ctx, id, req.SetFields()); err != nil {
		s.respondError(c, err)
		return
	}

	updated, err := s.projects.Get(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	rel := graph.ProjectRelations{
		PersonIDs:     req.PersonIDs,
		TechnologyIDs: req.TechnologyIDs,
		SkillIDs:      req.SkillIDs,
	}
	if err := s.graph.SyncProject(ctx, id, updated, rel); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteProject(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := s.projects.Delete(ctx, id); err != nil {
		s.respondError(c, err)
		return
	}

	if err := s.graph.DeleteNode(ctx, graph.LabelProject, id); err != nil {
		s.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
