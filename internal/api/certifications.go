package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/graph"
	"portfolio-backend/internal/models"
)

func (s *Server) listCertifications(c *gin.Context) {
	docs, err := s.certifications.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (s *Server) createCertification(c *gin.Context) {
	var req models.CertificationCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	id, err := s.certifications.Insert(ctx, req.Document())
	if err != nil {
		s.respondError(c, err)
		return
	}

	created, err := s.certifications.Get(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	rel := graph.CertificationRelations{
		SkillIDs:      &req.ValidatesSkillIDs,
		TechnologyIDs: &req.ValidatesTechnologyIDs,
	}
	if err := s.graph.SyncCertification(ctx, id, created, rel); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateCertification(c *gin.Context) {
	var req models.CertificationUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := s.certifications.Update(ctx, id, req.SetFields()); err != nil {
		s.respondError(c, err)
		return
	}

	updated, err := s.certifications.Get(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	rel := graph.CertificationRelations{
		SkillIDs:      req.ValidatesSkillIDs,
		TechnologyIDs: req.ValidatesTechnologyIDs,
	}
	if err := s.graph.SyncCertification(ctx, id, updated, rel); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteCertification(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := s.certifications.Delete(ctx, id); err != nil {
		s.respondError(c, err)
		return
	}

	if err := s.graph.DeleteNode(ctx, graph.LabelCertification, id); err != nil {
		s.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
