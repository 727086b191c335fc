package handler

import (
	"net/http"

	"smartsave/internal/middleware"
	"smartsave/internal/service"

	"github.com/gin-gonic/gin"
)

type SettlementHandler struct {
	svc *service.SettlementService
}

func NewSettlementHandler(svc *service.SettlementService) *SettlementHandler {
	return &SettlementHandler{svc: svc}
}

type CreateSettlementRequest struct {
	PayerID uint    `json:"payer_id" binding:"required"`
	PayeeID uint    `json:"payee_id" binding:"required"`
	Amount  float64 `json:"amount" binding:"required"`
	SplitID *uint   `json:"split_id"`
	Method  string  `json:"method"`
	Notes   string  `json:"notes"`
}

func (h *SettlementHandler) Create(c *gin.Context) {
	var req CreateSettlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	actorID := middleware.GetUserID(c)
	settlement, err := h.svc.RecordSettlement(actorID, service.RecordSettlementInput{
		PayerID:     req.PayerID,
		PayeeID:     req.PayeeID,
		Amount:      req.Amount,
		BillSplitID: req.SplitID,
		Method:      req.Method,
		Notes:       req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "settlement created", "settlement": settlement})
}

func (h *SettlementHandler) List(c *gin.Context) {
	userID := middleware.GetUserID(c)
	settlements, err := h.svc.ListSettlements(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch settlements"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"settlements": settlements})
}
