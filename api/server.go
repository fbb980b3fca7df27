package api

import (
	"github.com/gin-gonic/gin"

	"github.com/avikram24/skillscan/config"
	"github.com/avikram24/skillscan/skills"
)

// Server serves HTTP requests for skill extraction.
type Server struct {
	config    config.Config
	processor skills.Processor
	router    *gin.Engine
}

// NewServer creates the server and registers all routes.
func NewServer(cfg config.Config, processor skills.Processor) (*Server, error) {
	server := &Server{
		config:    cfg,
		processor: processor,
	}

	router := gin.Default()

	router.GET("/", server.welcome)
	router.POST("/extract-skills", server.extractSkills)
	router.POST("/extract-skills-batch", server.extractSkillsBatch)

	server.router = router
	return server, nil
}

// Start runs the HTTP server on the given address.
func (server *Server) Start(address string) error {
	return server.router.Run(address)
}

// errorResponse shapes an error into the JSON body every error reply uses.
func errorResponse(err error) gin.H {
	return gin.H{"error": err.Error()}
}
