package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"smartsave/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminHandler struct {
	userRepo *repository.UserRepository
}

func NewAdminHandler(userRepo *repository.UserRepository) *AdminHandler {
	return &AdminHandler{userRepo: userRepo}
}

func (h *AdminHandler) UserCount(c *gin.Context) {
	count, err := h.userRepo.CountRegistered()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user count"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *AdminHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	u, err := h.userRepo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"isAdmin":    u.IsAdmin,
		"isBanned":   u.IsBanned,
		"joinedDate": u.CreatedAt.Format("2006-01-02"),
		"last_login": u.LastLogin,
		"isActive":   u.IsActive(time.Now().UTC()),
	})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.userRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users"})
		return
	}
	now := time.Now().UTC()
	var active, inactive, banned int
	rows := make([]gin.H, 0, len(users))
	for _, u := range users {
		isActive := u.IsActive(now)
		if isActive {
			active++
		} else {
			inactive++
		}
		if u.IsBanned {
			banned++
		}
		rows = append(rows, gin.H{
			"id":         u.ID,
			"name":       u.Name,
			"email":      u.Email,
			"isAdmin":    u.IsAdmin,
			"isBanned":   u.IsBanned,
			"joinedDate": u.CreatedAt.Format("2006-01-02"),
			"last_login": u.LastLogin,
			"isActive":   isActive,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"users":              rows,
		"totalActiveUsers":   active,
		"totalInactiveUsers": inactive,
		"totalBannedUsers":   banned,
	})
}

func (h *AdminHandler) setBanned(c *gin.Context, banned bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}
	if err := h.userRepo.SetBanned(uint(id), banned); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}
	msg := "user unbanned"
	if banned {
		msg = "user banned"
	}
	c.JSON(http.StatusOK, gin.H{"message": msg})
}

func (h *AdminHandler) BanUser(c *gin.Context)   { h.setBanned(c, true) }
func (h *AdminHandler) UnbanUser(c *gin.Context) { h.setBanned(c, false) }
