// Package api exposes the portfolio entities and their relationship-derived
// views over HTTP.
package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-backend/internal/graph"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repository"
	"portfolio-backend/internal/store"
	"portfolio-backend/pkg/config"
	apperrors "portfolio-backend/pkg/errors"
	"portfolio-backend/pkg/logger"
)

// Server holds the injected store handles and the per-entity repositories.
type Server struct {
	cfg   *config.Config
	log   *zap.Logger
	graph *graph.Repository

	infos          *repository.Repository[models.PersonalInfo]
	projects       *repository.Repository[models.Project]
	experiences    *repository.Repository[models.Experience]
	educations     *repository.Repository[models.Education]
	certifications *repository.Repository[models.Certification]
	skills         *repository.Repository[models.Skill]
	technologies   *repository.Repository[models.Technology]
	hobbies        *repository.Repository[models.Hobby]
	contacts       *repository.Repository[models.ContactMessage]
}

// NewServer wires the repositories over the injected store handles.
func NewServer(cfg *config.Config, mongo *store.Mongo, graphRepo *graph.Repository) *Server {
	db := mongo.Database()
	return &Server{
		cfg:   cfg,
		log:   logger.Get(),
		graph: graphRepo,

		infos:          repository.New[models.PersonalInfo](db, store.CollectionPersonalInfos, "profil"),
		projects:       repository.New[models.Project](db, store.CollectionProjects, "projet"),
		experiences:    repository.New[models.Experience](db, store.CollectionExperiences, "expérience"),
		educations:     repository.New[models.Education](db, store.CollectionEducations, "parcours"),
		certifications: repository.New[models.Certification](db, store.CollectionCertifications, "certification"),
		skills:         repository.New[models.Skill](db, store.CollectionSkills, "skill"),
		technologies:   repository.New[models.Technology](db, store.CollectionTechnologies, "technologie"),
		hobbies:        repository.New[models.Hobby](db, store.CollectionHobbies, "hobby"),
		contacts:       repository.New[models.ContactMessage](db, store.CollectionContacts, "contact"),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	if s.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(requestLogger(s.log))
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Cache-Control"},
		AllowCredentials: false,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "version": s.cfg.AppVersion})
	})

	projects := router.Group("/projects")
	{
		projects.GET("", s.listProjects)
		projects.GET("/:id", s.getProject)
		projects.POST("", s.createProject)
		projects.PUT("/:id", s.updateProject)
		projects.DELETE("/:id", s.deleteProject)
	}

	experiences := router.Group("/experiences")
	{
		experiences.GET("", s.listExperiences)
		experiences.GET("/:id", s.getExperience)
		experiences.POST("", s.createExperience)
		experiences.PUT("/:id", s.updateExperience)
		experiences.DELETE("/:id", s.deleteExperience)
	}

	skills := router.Group("/skills")
	{
		skills.GET("", s.listSkills)
		skills.POST("", s.createSkill)
		skills.PUT("/:id", s.updateSkill)
		skills.DELETE("/:id", s.deleteSkill)
		// The wildcard segment carries a skill name here, not an id.
		skills.GET("/:id/projects", s.projectsBySkillName)
	}

	technologies := router.Group("/technologies")
	{
		technologies.GET("", s.listTechnologies)
		technologies.POST("", s.createTechnology)
		technologies.PUT("/:id", s.updateTechnology)
		technologies.DELETE("/:id", s.deleteTechnology)
	}

	certifications := router.Group("/certifications")
	{
		certifications.GET("", s.listCertifications)
		certifications.POST("", s.createCertification)
		certifications.PUT("/:id", s.updateCertification)
		certifications.DELETE("/:id", s.deleteCertification)
	}

	profile := router.Group("/profile")
	{
		profile.GET("/infos", s.listInfos)
		profile.POST("/infos", s.createInfos)
		profile.PUT("/infos/:id", s.updateInfos)
		profile.DELETE("/infos/:id", s.deleteInfos)

		profile.GET("/education", s.listEducation)
		profile.POST("/education", s.createEducation)
		profile.PUT("/education/:id", s.updateEducation)
		profile.DELETE("/education/:id", s.deleteEducation)

		profile.GET("/hobbies", s.listHobbies)
		profile.POST("/hobbies", s.createHobby)
		profile.PUT("/hobbies/:id", s.updateHobby)
		profile.DELETE("/hobbies/:id", s.deleteHobby)

		profile.GET("/global", s.globalPortfolio)
	}

	router.POST("/contact", s.submitContact)

	portfolio := router.Group("/portfolio")
	{
		portfolio.GET("/skills", s.portfolioSkills)
		portfolio.GET("/projets", s.portfolioProjets)
		portfolio.GET("/projets/details", s.portfolioProjetDetails)
		portfolio.GET("/technologies", s.portfolioTechnologies)
		portfolio.GET("/hobbies", s.portfolioHobbies)
		portfolio.GET("/experiences", s.portfolioExperiences)
		portfolio.GET("/parcours-scolaire", s.portfolioParcoursScolaire)
	}

	return router
}

// respondError maps domain errors to HTTP statuses: not-found to 404, bad
// ids to 400, everything else to a logged 500 whose cause never reaches the
// client.
func (s *Server) respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsInvalidID(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		s.log.Error("Request failed",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
