package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"smartsave/internal/middleware"
	"smartsave/internal/models"
	"smartsave/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SavingsGoalHandler struct {
	goalRepo *repository.SavingsGoalRepository
}

func NewSavingsGoalHandler(goalRepo *repository.SavingsGoalRepository) *SavingsGoalHandler {
	return &SavingsGoalHandler{goalRepo: goalRepo}
}

type SavingsGoalRequest struct {
	Name     string  `json:"name" binding:"required"`
	Target   float64 `json:"target" binding:"required,gt=0"`
	Progress float64 `json:"progress"`
	Deadline string  `json:"deadline" binding:"required"` // YYYY-MM-DD
}

func (h *SavingsGoalHandler) Create(c *gin.Context) {
	var req SavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	deadline, err := time.Parse("2006-01-02", req.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid deadline format (use YYYY-MM-DD)"})
		return
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if deadline.Before(today) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deadline cannot be in the past"})
		return
	}
	if req.Progress < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "progress must be non-negative"})
		return
	}
	goal := &models.SavingsGoal{
		Name:     req.Name,
		Target:   req.Target,
		Progress: req.Progress,
		Deadline: deadline,
		UserID:   middleware.GetUserID(c),
	}
	if err := h.goalRepo.Create(goal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add savings goal"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "savings goal added", "goal": goal})
}

func (h *SavingsGoalHandler) List(c *gin.Context) {
	goals, err := h.goalRepo.ListByUser(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch savings goals"})
		return
	}
	c.JSON(http.StatusOK, goals)
}

type UpdateSavingsGoalRequest struct {
	Name     *string  `json:"name"`
	Target   *float64 `json:"target"`
	Progress *float64 `json:"progress"`
	Deadline *string  `json:"deadline"`
}

func (h *SavingsGoalHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}
	var req UpdateSavingsGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	goal, err := h.goalRepo.GetByID(uint(id), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "savings goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch savings goal"})
		return
	}
	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.Target != nil {
		if *req.Target <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "target must be positive"})
			return
		}
		goal.Target = *req.Target
	}
	if req.Progress != nil {
		if *req.Progress < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "progress must be non-negative"})
			return
		}
		goal.Progress = *req.Progress
	}
	if req.Deadline != nil {
		deadline, err := time.Parse("2006-01-02", *req.Deadline)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid deadline format (use YYYY-MM-DD)"})
			return
		}
		goal.Deadline = deadline
	}
	if err := h.goalRepo.Update(goal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update savings goal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "savings goal updated", "goal": goal})
}

func (h *SavingsGoalHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid goal id"})
		return
	}
	if err := h.goalRepo.Delete(uint(id), middleware.GetUserID(c)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "savings goal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete savings goal"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "savings goal deleted"})
}
