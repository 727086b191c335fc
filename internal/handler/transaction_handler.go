package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"smartsave/internal/domain"
	"smartsave/internal/middleware"
	"smartsave/internal/models"
	"smartsave/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TransactionHandler struct {
	txnRepo *repository.TransactionRepository
}

func NewTransactionHandler(txnRepo *repository.TransactionRepository) *TransactionHandler {
	return &TransactionHandler{txnRepo: txnRepo}
}

type TransactionRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Category string  `json:"category" binding:"required"`
	Account  string  `json:"account" binding:"required"`
	Note     string  `json:"note"`
	Date     string  `json:"date" binding:"required"` // YYYY-MM-DD
	Flagged  bool    `json:"flagged"`
}

func (h *TransactionHandler) add(c *gin.Context, txnType string) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format (use YYYY-MM-DD)"})
		return
	}
	txn := &models.Transaction{
		Amount:   req.Amount,
		Category: req.Category,
		Account:  req.Account,
		Note:     req.Note,
		Date:     date,
		Type:     txnType,
		UserID:   middleware.GetUserID(c),
		Flagged:  req.Flagged,
	}
	if err := h.txnRepo.Create(txn); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to add transaction"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": txnType + " transaction added", "transaction": txn})
}

func (h *TransactionHandler) AddIncome(c *gin.Context) {
	h.add(c, domain.TransactionTypeIncome)
}

func (h *TransactionHandler) AddExpense(c *gin.Context) {
	h.add(c, domain.TransactionTypeExpense)
}

func (h *TransactionHandler) List(c *gin.Context) {
	txns, err := h.txnRepo.ListByUser(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch transactions"})
		return
	}
	c.JSON(http.StatusOK, txns)
}

func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction id"})
		return
	}
	txn, err := h.txnRepo.GetByID(uint(id), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch transaction"})
		return
	}
	c.JSON(http.StatusOK, txn)
}

type UpdateTransactionRequest struct {
	Amount   *float64 `json:"amount"`
	Category *string  `json:"category"`
	Account  *string  `json:"account"`
	Note     *string  `json:"note"`
	Date     *string  `json:"date"`
	Flagged  *bool    `json:"flagged"`
}

func (h *TransactionHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction id"})
		return
	}
	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	txn, err := h.txnRepo.GetByID(uint(id), middleware.GetUserID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch transaction"})
		return
	}
	if req.Amount != nil {
		if *req.Amount <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be positive"})
			return
		}
		txn.Amount = *req.Amount
	}
	if req.Category != nil {
		txn.Category = *req.Category
	}
	if req.Account != nil {
		txn.Account = *req.Account
	}
	if req.Note != nil {
		txn.Note = *req.Note
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format (use YYYY-MM-DD)"})
			return
		}
		txn.Date = date
	}
	if req.Flagged != nil {
		txn.Flagged = *req.Flagged
	}
	if err := h.txnRepo.Update(txn); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update transaction"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "transaction updated", "transaction": txn})
}

func (h *TransactionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction id"})
		return
	}
	if err := h.txnRepo.Delete(uint(id), middleware.GetUserID(c)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "transaction not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete transaction"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
}

func (h *TransactionHandler) Summary(c *gin.Context) {
	summary, err := h.txnRepo.SummaryByUser(middleware.GetUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch summary"})
		return
	}
	c.JSON(http.StatusOK, summary)
}
