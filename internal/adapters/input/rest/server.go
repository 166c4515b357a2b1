package rest

import (
	"net/http"
	"time"

	"tasklist/internal/core/ports"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	tasks  ports.TaskUseCases
	auth   ports.AuthUseCases
	tokens ports.TokenManager
	log    *zap.Logger
	router *gin.Engine
}

func NewServer(tasks ports.TaskUseCases, auth ports.AuthUseCases, tokens ports.TokenManager, log *zap.Logger) *Server {
	if tasks == nil {
		log.Fatal("task usecases is nil")
	}
	if auth == nil {
		log.Fatal("auth usecases is nil")
	}
	if tokens == nil {
		log.Fatal("token manager is nil")
	}
	if log == nil {
		panic("logger is nil")
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))

	s := &Server{
		tasks:  tasks,
		auth:   auth,
		tokens: tokens,
		log:    log,
		router: router,
	}

	api := router.Group("/api")
	{
		api.POST("/auth/register", s.handleRegister)
		api.POST("/auth/login", s.handleLogin)
		api.GET("/stats/cache", s.handleCacheStats)

		authed := api.Group("")
		authed.Use(Authenticate(tokens))
		{
			authed.POST("/tasks", s.handleCreateTask)
			authed.GET("/tasks", s.handleListTasks)
			authed.PATCH("/tasks/:id/status", s.handleUpdateStatus)
			authed.PATCH("/tasks/:id/title", s.handleEditTitle)
			authed.DELETE("/tasks/:id", s.handleDeleteTask)
			authed.GET("/activity", s.handleRecentActivity)
		}
	}

	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("rest: request handled",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
