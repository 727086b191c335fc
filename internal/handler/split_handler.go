package handler

import (
	"net/http"
	"strconv"

	"smartsave/internal/middleware"
	"smartsave/internal/models"
	"smartsave/internal/repository"
	"smartsave/internal/service"

	"github.com/gin-gonic/gin"
)

type SplitHandler struct {
	svc       *service.SplitService
	userRepo  *repository.UserRepository
	groupRepo *repository.GroupRepository
}

func NewSplitHandler(svc *service.SplitService, userRepo *repository.UserRepository, groupRepo *repository.GroupRepository) *SplitHandler {
	return &SplitHandler{svc: svc, userRepo: userRepo, groupRepo: groupRepo}
}

type SplitParticipantRequest struct {
	UserID      uint     `json:"user_id" binding:"required"`
	PaidAmount  *float64 `json:"paid_amount"`
	ShareAmount *float64 `json:"share_amount"`
	SplitMethod string   `json:"split_method"`
	SplitValue  *float64 `json:"split_value"`
}

type CreateSplitRequest struct {
	Name         string                    `json:"name" binding:"required"`
	TotalAmount  float64                   `json:"total_amount" binding:"required"`
	GroupID      *uint                     `json:"group_id"`
	Category     string                    `json:"category"`
	Currency     string                    `json:"currency"`
	Status       string                    `json:"status"`
	PhotoURL     string                    `json:"photo_url"`
	Notes        string                    `json:"notes"`
	IsRecurring  bool                      `json:"is_recurring"`
	Participants []SplitParticipantRequest `json:"participants" binding:"required"`
}

func (h *SplitHandler) Create(c *gin.Context) {
	var req CreateSplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actorID := middleware.GetUserID(c)

	in := service.CreateSplitInput{
		Name:        req.Name,
		TotalAmount: req.TotalAmount,
		GroupID:     req.GroupID,
		Category:    req.Category,
		Currency:    req.Currency,
		Status:      req.Status,
		PhotoURL:    req.PhotoURL,
		Notes:       req.Notes,
		IsRecurring: req.IsRecurring,
	}
	for _, p := range req.Participants {
		in.Participants = append(in.Participants, service.ParticipantInput{
			UserID:      p.UserID,
			PaidAmount:  p.PaidAmount,
			ShareAmount: p.ShareAmount,
			SplitMethod: p.SplitMethod,
			SplitValue:  p.SplitValue,
		})
	}

	bs, err := h.svc.CreateSplit(actorID, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "bill split created",
		"bill_split": h.enrich(bs),
	})
}

// enrich joins in display names the engine itself does not resolve.
func (h *SplitHandler) enrich(bs *models.BillSplit) gin.H {
	out := gin.H{
		"id":           bs.ID,
		"name":         bs.Name,
		"total_amount": bs.TotalAmount,
		"creator_id":   bs.CreatorID,
		"group_id":     bs.GroupID,
		"category":     bs.Category,
		"currency":     bs.Currency,
		"status":       bs.Status,
		"photo_url":    bs.PhotoURL,
		"notes":        bs.Notes,
		"is_recurring": bs.IsRecurring,
		"flagged":      bs.Flagged,
		"created_at":   bs.CreatedAt,
	}
	if creator, err := h.userRepo.GetByID(bs.CreatorID); err == nil {
		out["creator_name"] = creator.Name
	}
	if bs.GroupID != nil {
		if g, err := h.groupRepo.GetByID(*bs.GroupID); err == nil {
			out["group_name"] = g.Name
		}
	}
	participants := make([]gin.H, 0, len(bs.Participants))
	for _, p := range bs.Participants {
		row := gin.H{
			"user_id":      p.UserID,
			"paid_amount":  p.PaidAmount,
			"share_amount": p.ShareAmount,
			"split_method": p.SplitMethod,
			"split_value":  p.SplitValue,
			"status":       p.Status,
		}
		if u, err := h.userRepo.GetByID(p.UserID); err == nil {
			row["name"] = u.Name
		}
		participants = append(participants, row)
	}
	out["participants"] = participants
	return out
}

func (h *SplitHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	splits, err := h.svc.ListSplits(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch bill splits"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bill_splits": splits})
}

type UpdateSplitParticipantRequest struct {
	UserID      uint     `json:"user_id" binding:"required"`
	PaidAmount  *float64 `json:"paid_amount"`
	ShareAmount *float64 `json:"share_amount"`
	Status      *string  `json:"status"`
}

type UpdateSplitRequest struct {
	Name         *string                         `json:"name"`
	TotalAmount  *float64                        `json:"total_amount"`
	GroupID      *uint                           `json:"group_id"`
	Category     *string                         `json:"category"`
	Currency     *string                         `json:"currency"`
	Status       *string                         `json:"status"`
	PhotoURL     *string                         `json:"photo_url"`
	Notes        *string                         `json:"notes"`
	IsRecurring  *bool                           `json:"is_recurring"`
	Participants []UpdateSplitParticipantRequest `json:"participants" binding:"required"`
}

func (h *SplitHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bill split id"})
		return
	}
	var req UpdateSplitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actorID := middleware.GetUserID(c)

	in := service.UpdateSplitInput{
		Name:        req.Name,
		TotalAmount: req.TotalAmount,
		GroupID:     req.GroupID,
		Category:    req.Category,
		Currency:    req.Currency,
		Status:      req.Status,
		PhotoURL:    req.PhotoURL,
		Notes:       req.Notes,
		IsRecurring: req.IsRecurring,
	}
	for _, p := range req.Participants {
		in.Participants = append(in.Participants, service.ParticipantPatch{
			UserID:      p.UserID,
			PaidAmount:  p.PaidAmount,
			ShareAmount: p.ShareAmount,
			Status:      p.Status,
		})
	}

	bs, err := h.svc.UpdateSplit(actorID, uint(id), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bill split updated", "bill_split": bs})
}

func (h *SplitHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bill split id"})
		return
	}
	actorID := middleware.GetUserID(c)
	if err := h.svc.DeleteSplit(actorID, uint(id)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "bill split deleted"})
}
