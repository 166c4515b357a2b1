package rest

import (
	"net/http"

	"tasklist/internal/core/domain/entities"
	"tasklist/internal/core/domain/exceptions"
	"tasklist/internal/mapper"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type createTaskRequest struct {
	Title string `json:"title"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

type editTitleRequest struct {
	Title string `json:"title"`
}

func (s *Server) handleCreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, exceptions.ErrEmptyTitle)
		return
	}

	task, err := s.tasks.CreateTask(c.Request.Context(), currentUserID(c), req.Title)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":         task.ID,
		"user_id":    task.UserID,
		"title":      task.Title,
		"status":     task.Status,
		"created_at": task.CreatedAt,
	})
}

func (s *Server) handleListTasks(c *gin.Context) {
	list, err := s.tasks.ListTasks(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

func (s *Server) handleUpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, exceptions.ErrInvalidStatus)
		return
	}

	task, err := s.tasks.UpdateStatus(c.Request.Context(), currentUserID(c), c.Param("id"), entities.TaskStatus(req.Status))
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":     task.ID,
		"status": task.Status,
	})
}

func (s *Server) handleEditTitle(c *gin.Context) {
	var req editTitleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, exceptions.ErrEmptyTitle)
		return
	}

	task, err := s.tasks.EditTitle(c.Request.Context(), currentUserID(c), c.Param("id"), req.Title)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    task.ID,
		"title": task.Title,
	})
}

func (s *Server) handleDeleteTask(c *gin.Context) {
	if err := s.tasks.DeleteTask(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) handleRecentActivity(c *gin.Context) {
	records, err := s.tasks.RecentActivity(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": records})
}

func (s *Server) handleCacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.tasks.CacheStats())
}

func (s *Server) fail(c *gin.Context, err error) {
	status, body := mapper.Error(err)
	if status == http.StatusInternalServerError {
		s.log.Error("rest: request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
	}
	c.JSON(status, body)
}
