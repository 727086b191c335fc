package handler

import (
	"net/http"
	"strconv"

	"smartsave/internal/middleware"
	"smartsave/internal/models"
	"smartsave/internal/service"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	svc *service.GroupService
}

func NewGroupHandler(svc *service.GroupService) *GroupHandler {
	return &GroupHandler{svc: svc}
}

type CreateGroupRequest struct {
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type"`
	Currency string `json:"currency"`
	IconURL  string `json:"icon_url"`
	Members  []uint `json:"members"`
}

type UpdateGroupRequest struct {
	Name    string `json:"name" binding:"required"`
	Type    string `json:"type"`
	Members []uint `json:"members"`
}

func groupResponse(g *models.Group, memberIDs []uint) gin.H {
	return gin.H{
		"id":         g.ID,
		"name":       g.Name,
		"creator_id": g.CreatorID,
		"type":       g.Type,
		"currency":   g.Currency,
		"icon_url":   g.IconURL,
		"created_at": g.CreatedAt,
		"members":    memberIDs,
	}
}

func (h *GroupHandler) Create(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actorID := middleware.GetUserID(c)
	g, memberIDs, err := h.svc.CreateGroup(actorID, service.CreateGroupInput{
		Name:     req.Name,
		Type:     req.Type,
		Currency: req.Currency,
		IconURL:  req.IconURL,
		Members:  req.Members,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "group created", "group": groupResponse(g, memberIDs)})
}

func (h *GroupHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	groups, err := h.svc.ListGroups(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch groups"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

func (h *GroupHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group id"})
		return
	}
	actorID := middleware.GetUserID(c)
	g, memberIDs, err := h.svc.GetGroup(actorID, uint(id))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"group": groupResponse(g, memberIDs)})
}

func (h *GroupHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group id"})
		return
	}
	var req UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actorID := middleware.GetUserID(c)
	g, memberIDs, err := h.svc.UpdateGroup(actorID, uint(id), service.UpdateGroupInput{
		Name:    req.Name,
		Type:    req.Type,
		Members: req.Members,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "group updated", "group": groupResponse(g, memberIDs)})
}

func (h *GroupHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid group id"})
		return
	}
	actorID := middleware.GetUserID(c)
	if err := h.svc.DeleteGroup(actorID, uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "group deleted"})
}
