package receipts

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mEdHaT33/Arkan/internal/httpapi"
	"github.com/mEdHaT33/Arkan/internal/remote"
	"github.com/mEdHaT33/Arkan/pkg/auditlog"
	"github.com/mEdHaT33/Arkan/pkg/models"
	"github.com/mEdHaT33/Arkan/pkg/roles"
	"github.com/mEdHaT33/Arkan/pkg/security"
)

type ReceiptsGateway interface {
	List(ctx context.Context, filter remote.ReceiptFilter) ([]models.PartyReceipt, error)
	Create(ctx context.Context, input remote.ReceiptInput) (*models.Party, error)
	SubmitPurchase(ctx context.Context, input remote.PurchaseInput) (int, error)
}

type ReceiptsHandler struct {
	Gateway  ReceiptsGateway
	AuditLog *auditlog.AuditLog
}

func NewHandler(gateway ReceiptsGateway, auditLog *auditlog.AuditLog) *ReceiptsHandler {
	return &ReceiptsHandler{
		Gateway:  gateway,
		AuditLog: auditLog,
	}
}

func (h *ReceiptsHandler) RegisterRoutes(router *gin.RouterGroup) {
	guard := security.Authorize(roles.Admin, roles.Finance)
	router.GET("/api/receipts", guard, h.ListReceipts)
	router.POST("/api/receipts", guard, h.CreateReceipt)
	router.POST("/api/purchase-receipts", guard, h.SubmitPurchase)
}

func (h *ReceiptsHandler) ListReceipts(c *gin.Context) {
	filter := remote.ReceiptFilter{PartyType: c.Query("party_type")}
	if raw := c.Query("party_id"); raw != "" {
		partyID, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid party ID", "details": raw})
			return
		}
		filter.PartyID = partyID
	}

	receipts, err := h.Gateway.List(c.Request.Context(), filter)
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"receipts": receipts})
}

func (h *ReceiptsHandler) CreateReceipt(c *gin.Context) {
	var req remote.ReceiptInput
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if req.PartyID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A party must be selected"})
		return
	}
	if req.PartyType != models.PartyTypeClient && req.PartyType != models.PartyTypeVendor {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Party type must be client or vendor"})
		return
	}
	if req.Direction != models.DirectionIn && req.Direction != models.DirectionOut {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Direction must be in or out"})
		return
	}
	if req.Account != models.AccountCash && req.Account != models.AccountBank {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Account must be cash or bank"})
		return
	}
	if !req.Amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be greater than zero"})
		return
	}

	// Operators rarely fill the reference; give every receipt one anyway
	// so it stays findable later.
	if req.Reference == "" {
		req.Reference = "RCPT-" + uuid.NewString()[:8]
	}

	session, _ := security.CurrentSession(c)
	req.CreatedBy = session.Username

	party, err := h.Gateway.Create(c.Request.Context(), req)
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	go h.AuditLog.Log("receipt.create", session.Username,
		zap.Int("party_id", req.PartyID),
		zap.String("amount", req.Amount.String()),
		zap.String("reference", req.Reference),
	)

	c.JSON(http.StatusOK, gin.H{
		"message":   "Receipt recorded",
		"reference": req.Reference,
		"party":     party,
	})
}

func (h *ReceiptsHandler) SubmitPurchase(c *gin.Context) {
	var req remote.PurchaseInput
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	if req.VendorID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A vendor must be selected"})
		return
	}
	if req.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A receipt date is required"})
		return
	}
	if len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one line item is required"})
		return
	}
	for _, item := range req.Items {
		if item.ItemName == "" || !item.Qty.IsPositive() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Each line needs an item name and a positive quantity"})
			return
		}
	}

	session, _ := security.CurrentSession(c)
	req.CreatedBy = session.Username

	receiptID, err := h.Gateway.SubmitPurchase(c.Request.Context(), req)
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	go h.AuditLog.Log("receipt.purchase", session.Username,
		zap.Int("vendor_id", req.VendorID),
		zap.Int("receipt_id", receiptID),
		zap.Int("lines", len(req.Items)),
	)

	c.JSON(http.StatusOK, gin.H{"message": "Purchase receipt submitted", "receipt_id": receiptID})
}
