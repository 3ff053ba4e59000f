package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/graph"
	"portfolio-backend/internal/models"
)

// Personal infos: the single profile document, mirrored as the Person node.

func (s *Server) listInfos(c *gin.Context) {
	docs, err := s.infos.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (s *Server) createInfos(c *gin.Context) {
	var req models.PersonalInfoCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	id, err := s.infos.Insert(ctx, req.Document())
	if err != nil {
		s.respondError(c, err)
		return
	}

	created, err := s.infos.Get(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	if err := s.graph.SyncPerson(ctx, id, created); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateInfos(c *gin.Context) {
	var req models.PersonalInfoUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := s.infos.Update(ctx, id, req.SetFields()); err != nil {
		s.respondError(c, err)
		return
	}

	updated, err := s.infos.Get(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}

	if err := s.graph.SyncPerson(ctx, id, updated); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteInfos(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := s.infos.Delete(ctx, id); err != nil {
		s.respondError(c, err)
		return
	}

	if err := s.graph.DeleteNode(ctx, graph.LabelPerson, id); err != nil {
		s.respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// Education entries live only in the document store; they are mirrored to
// the graph by the seed pipeline, not by the write path.

func (s *Server) listEducation(c *gin.Context) {
	docs, err := s.educations.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (s *Server) createEducation(c *gin.Context) {
	var req models.EducationCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	id, err := s.educations.Insert(ctx, req.Document())
	if err != nil {
		s.respondError(c, err)
		return
	}

	created, err := s.educations.Get(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateEducation(c *gin.Context) {
	var req models.EducationUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := s.educations.Update(ctx, id, req.SetFields()); err != nil {
		s.respondError(c, err)
		return
	}

	updated, err := s.educations.Get(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteEducation(c *gin.Context) {
	if err := s.educations.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Hobbies: document store only, same as education.

func (s *Server) listHobbies(c *gin.Context) {
	docs, err := s.hobbies.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (s *Server) createHobby(c *gin.Context) {
	var req models.HobbyCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	id, err := s.hobbies.Insert(ctx, req.Document())
	if err != nil {
		s.respondError(c, err)
		return
	}

	created, err := s.hobbies.Get(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s *Server) updateHobby(c *gin.Context) {
	var req models.HobbyUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := s.hobbies.Update(ctx, id, req.SetFields()); err != nil {
		s.respondError(c, err)
		return
	}

	updated, err := s.hobbies.Get(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (s *Server) deleteHobby(c *gin.Context) {
	if err := s.hobbies.Delete(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// globalPortfolio aggregates every collection into one payload for the
// presentation client, which polls it to render the book view.
func (s *Server) globalPortfolio(c *gin.Context) {
	ctx := c.Request.Context()

	out := models.GlobalPortfolio{}
	var err error

	if out.InfosPersonnels, err = s.infos.List(ctx); err != nil {
		s.respondError(c, err)
		return
	}
	if out.Projets, err = s.projects.List(ctx); err != nil {
		s.respondError(c, err)
		return
	}
	if out.Experiences, err = s.experiences.List(ctx); err != nil {
		s.respondError(c, err)
		return
	}
	if out.ParcoursScolaire, err = s.educations.List(ctx); err != nil {
		s.respondError(c, err)
		return
	}
	if out.Certifications, err = s.certifications.List(ctx); err != nil {
		s.respondError(c, err)
		return
	}
	if out.Skills, err = s.skills.List(ctx); err != nil {
		s.respondError(c, err)
		return
	}
	if out.Technologies, err = s.technologies.List(ctx); err != nil {
		s.respondError(c, err)
		return
	}
	if out.Hobbies, err = s.hobbies.List(ctx); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, out)
}
