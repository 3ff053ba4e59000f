package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/models"
)

// submitContact records a contact form submission. Messages are append-only;
// there is no read or delete surface.
func (s *Server) submitContact(c *gin.Context) {
	var req models.ContactMessageCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()

	msg := models.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.contacts.Insert(ctx, msg)
	if err != nil {
		s.respondError(c, err)
		return
	}

	created, err := s.contacts.Get(ctx, id)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
