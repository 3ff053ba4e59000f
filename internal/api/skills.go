package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/graph"
	"portfolio-backend/internal/models"
)

func (s *Server) listSkills(c *gin.Context) {
	docs, err := s.skills.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (s *Server) createSkill(c *gin.Context) {
	var req models.SkillCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	id, err := s.skills.Insert(ctx, req.Document())
	if err != nil {
		s.respondError(c, err)
		return
	}

	created, err := s.skills.Get(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	if err := s.graph.SyncSkill(ctx, id, created); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateSkill(c *gin.Context) {
	var req models.SkillUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := s.skills.Update(ctx, id, req.SetFields()); err != nil {
		s.respondError(c, err)
		return
	}

	updated, err := s.skills.Get(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	if err := s.graph.SyncSkill(ctx, id, updated); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteSkill(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := s.skills.Delete(ctx, id); err != nil {
		s.respondError(c, err)
		return
	}

	if err := s.graph.DeleteNode(ctx, graph.LabelSkill, id); err != nil {
		s.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// projectsBySkillName resolves the skill by name in the graph, collects the
// ids of projects requiring it, then re-fetches the full records from the
// document store.
func (s *Server) projectsBySkillName(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("id")

	ids, err := s.graph.ProjectIDsBySkillName(ctx, name)
	if err != nil {
		s.respondError(c, err)
		return
	}

	docs, err := s.projects.FindByIDs(ctx, ids)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}
