// Package web provides the HTTP server for the todo list
package web

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo-list/internal/api"
	"todo-list/internal/config"
	"todo-list/internal/logging"
)

// Server represents the web server
type Server struct {
	API    api.API
	Router *gin.Engine
	Config *config.Config

	httpServer *http.Server
	log        *log.Logger
}

// NewServer creates a new web server instance with all middleware and routes installed
func NewServer(taskAPI api.API, cfg *config.Config) *Server {
	gin.SetMode(cfg.Server.Mode)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(RequestIDMiddleware())
	router.Use(SecureHeadersMiddleware())
	router.Use(CORSMiddleware())

	s := &Server{
		API:    taskAPI,
		Router: router,
		Config: cfg,
		httpServer: &http.Server{
			Addr:    cfg.GetListenAddr(),
			Handler: router,
		},
		log: logging.Component("WEB"),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.mountStatic()

	s.Router.GET("/", s.index)

	todos := s.Router.Group("/todos")
	{
		todos.GET("", s.listTodos)
		todos.POST("", s.createTodo)
		todos.PUT("/:id", s.updateTodo)
		todos.POST("/bulk-delete", s.bulkDeleteTodos)
	}
}

// Start listens on the configured address and blocks until the server stops.
// It returns http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	s.log.Printf("Starting HTTP server on %s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting connections and waits for in-flight requests until ctx expires
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
