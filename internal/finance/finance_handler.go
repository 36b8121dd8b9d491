package finance

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mEdHaT33/Arkan/internal/httpapi"
	"github.com/mEdHaT33/Arkan/internal/remote"
	"github.com/mEdHaT33/Arkan/pkg/auditlog"
	"github.com/mEdHaT33/Arkan/pkg/ledger"
	"github.com/mEdHaT33/Arkan/pkg/models"
	"github.com/mEdHaT33/Arkan/pkg/roles"
	"github.com/mEdHaT33/Arkan/pkg/security"
)

type FinanceGateway interface {
	Summary(ctx context.Context) (models.FinanceSummary, error)
	Transactions(ctx context.Context, filter remote.TransactionFilter) ([]models.FinanceTransaction, error)
	AddTransaction(ctx context.Context, input remote.TransactionInput) error
}

type FinanceHandler struct {
	Gateway  FinanceGateway
	AuditLog *auditlog.AuditLog
}

func NewHandler(gateway FinanceGateway, auditLog *auditlog.AuditLog) *FinanceHandler {
	return &FinanceHandler{
		Gateway:  gateway,
		AuditLog: auditLog,
	}
}

func (h *FinanceHandler) RegisterRoutes(router *gin.RouterGroup) {
	guard := security.Authorize(roles.Admin, roles.Finance)
	router.GET("/api/finance/summary", guard, h.Summary)
	router.GET("/api/finance/transactions", guard, h.Transactions)
	router.POST("/api/finance/transactions", guard, h.PostTransaction)
}

// Summary passes the backend's balance sheet through untouched. Anything
// computed locally is presentation only and never overrides these numbers.
func (h *FinanceHandler) Summary(c *gin.Context) {
	summary, err := h.Gateway.Summary(c.Request.Context())
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Transactions returns the ledger annotated with per-account running
// balances, newest first, plus IN/OUT totals for the footer row.
func (h *FinanceHandler) Transactions(c *gin.Context) {
	filter := remote.TransactionFilter{
		Account:  c.Query("account"),
		Category: c.Query("category"),
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
	}
	if filter.Account != "" && filter.Account != models.AccountCash && filter.Account != models.AccountBank {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Account must be cash or bank"})
		return
	}

	txns, err := h.Gateway.Transactions(c.Request.Context(), filter)
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	annotated := ledger.WithRunningBalances(txns)
	totalIn, totalOut := ledger.Totals(annotated, filter.Account)

	c.JSON(http.StatusOK, gin.H{
		"transactions": annotated,
		"totals": gin.H{
			"in":  totalIn,
			"out": totalOut,
			"net": totalIn.Sub(totalOut),
		},
	})
}

func (h *FinanceHandler) PostTransaction(c *gin.Context) {
	var req remote.TransactionInput
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	// Local screening keeps obviously bad entries off the wire; the
	// backend still has the final say.
	if req.Account != models.AccountCash && req.Account != models.AccountBank {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Account must be cash or bank"})
		return
	}
	if req.Direction != models.DirectionIn && req.Direction != models.DirectionOut {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Direction must be in or out"})
		return
	}
	if !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be greater than zero"})
		return
	}
	if req.CategoryID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A category is required"})
		return
	}
	if req.TxnDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A transaction date is required"})
		return
	}

	session, _ := security.CurrentSession(c)
	req.CreatedBy = session.Username

	if err := h.Gateway.AddTransaction(c.Request.Context(), req); err != nil {
		httpapi.Error(c, err)
		return
	}

	go h.AuditLog.Log("finance.post", session.Username,
		zap.String("account", req.Account),
		zap.String("direction", req.Direction),
		zap.String("amount", req.Amount.String()),
	)

	c.JSON(http.StatusOK, gin.H{"message": "Transaction recorded"})
}
