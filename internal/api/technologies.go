package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/graph"
	"portfolio-backend/internal/models"
)

func (s *Server) listTechnologies(c *gin.Context) {
	docs, err := s.technologies.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (s *Server) createTechnology(c *gin.Context) {
	var req models.TechnologyCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	id, err := s.technologies.Insert(ctx, req.Document())
	if err != nil {
		s.respondError(c, err)
		return
	}

	created, err := s.technologies.Get(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	if err := s.graph.SyncTechnology(ctx, id, created); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateTechnology(c *gin.Context) {
	var req models.TechnologyUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := s.technologies.Update(ctx, id, req.SetFields()); err != nil {
		s.respondError(c, err)
		return
	}

	updated, err := s.technologies.Get(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	if err := s.graph.SyncTechnology(ctx, id, updated); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteTechnology(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := s.technologies.Delete(ctx, id); err != nil {
		s.respondError(c, err)
		return
	}

	if err := s.graph.DeleteNode(ctx, graph.LabelTechnology, id); err != nil {
		s.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
