package api

import (
	"errors"
	"net/http"

	"github.com/gbasileGP/profgetter/internal/command"
	"github.com/gbasileGP/profgetter/internal/format"
	"github.com/gbasileGP/profgetter/internal/model"
	"github.com/gbasileGP/profgetter/internal/resolver"
	"github.com/gbasileGP/profgetter/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Server represents the server configuration with a router, the command registry, a logger, and the profession service.
type Server struct {
	router            *gin.Engine
	registry          *command.Registry
	professionService *service.ProfessionService
	logger            *logrus.Logger
}

// NewServer initializes a new server with the profession service, command registry, and logger passed from main.
func NewServer(registry *command.Registry, professionService *service.ProfessionService, logger *logrus.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	server := &Server{
		router:            router,
		registry:          registry,
		professionService: professionService,
		logger:            logger,
	}
	server.setupRoutes()

	return server
}

// setupRoutes defines all the routes for the server.
func (s *Server) setupRoutes() {
	s.router.GET("/ping", s.handlePing)
	s.router.GET("/suggestions", s.handleGetSuggestions)
	s.router.GET("/players/:player/professions", s.handleGetProfessions)
}

// handlePing is a handler for the API health check route.
func (s *Server) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// handleGetSuggestions returns the player name suggestions of checkProfLevels.
func (s *Server) handleGetSuggestions(c *gin.Context) {
	suggestions := s.registry.Suggest(service.CheckProfLevelsCommand, c.Query("prefix"))
	if suggestions == nil {
		suggestions = []string{}
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// handleGetProfessions renders the profession levels of one character. The
// first character is used unless ?character= names one.
func (s *Server) handleGetProfessions(c *gin.Context) {
	player := c.Param("player")

	var policy resolver.Policy = resolver.AutoSelect{}
	if id := c.Query("character"); id != "" {
		policy = resolver.DirectSelect{CharacterID: id}
	}

	report, err := s.professionService.Lookup(c.Request.Context(), player, policy)
	if err != nil {
		s.writeError(c, player, err)
		return
	}

	selected := report.Selected
	if c.Query("format") == "json" {
		c.JSON(http.StatusOK, gin.H{
			"player":      player,
			"character":   selected.ID,
			"label":       selected.Label,
			"type":        selected.Character.Type,
			"professions": selected.Character.Professions,
		})
		return
	}

	c.String(http.StatusOK, "%s", format.Professions(player, selected.ID, selected.Character, format.Plain{}))
}

func (s *Server) writeError(c *gin.Context, player string, err error) {
	var (
		notFound *model.NotFoundError
		netErr   *model.NetworkError
		parseErr *model.ParseError
	)
	switch {
	case errors.As(err, &notFound):
		c.String(http.StatusNotFound, "%s\n", format.NotFound(notFound, format.Plain{}))
	case errors.As(err, &netErr), errors.As(err, &parseErr):
		s.logger.WithError(err).WithField("player", player).Error("api: Failed to fetch player stats")
		c.String(http.StatusBadGateway, "%s\n", format.Failure(player, model.Cause(err), format.Plain{}))
	case errors.Is(err, model.ErrInvalidData):
		s.logger.WithError(err).WithField("player", player).Warn("api: Invalid player stats")
		c.String(http.StatusUnprocessableEntity, "%s\n", format.Failure(player, model.Cause(err), format.Plain{}))
	default:
		s.logger.WithError(err).WithField("player", player).Error("api: Unexpected error")
		c.String(http.StatusInternalServerError, "%s\n", format.Failure(player, err, format.Plain{}))
	}
}

// Handler exposes the router for tests and custom http.Servers.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server on a specific address.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}
