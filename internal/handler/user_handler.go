package handler

import (
	"errors"
	"net/http"

	"smartsave/internal/middleware"
	"smartsave/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserHandler struct {
	userRepo *repository.UserRepository
}

func NewUserHandler(userRepo *repository.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := middleware.GetUserID(c)
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

type UpdateProfileRequest struct {
	Name       *string `json:"name"`
	Profession *string `json:"profession"`
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := middleware.GetUserID(c)
	u, err := h.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user"})
		return
	}
	if req.Name != nil {
		if *req.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name cannot be empty"})
			return
		}
		u.Name = *req.Name
	}
	if req.Profession != nil {
		u.Profession = *req.Profession
	}
	if err := h.userRepo.Update(u); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

// Search finds candidate split participants by email, id or name fragment.
// The requesting user is filtered out of the results.
func (h *UserHandler) Search(c *gin.Context) {
	userID := middleware.GetUserID(c)
	query := c.Query("q")
	users, err := h.userRepo.Search(query, 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search users"})
		return
	}
	results := make([]gin.H, 0, len(users))
	for _, u := range users {
		if u.ID == userID {
			continue
		}
		results = append(results, gin.H{
			"id":    u.ID,
			"name":  u.Name,
			"email": u.Email,
		})
	}
	c.JSON(http.StatusOK, gin.H{"users": results})
}
