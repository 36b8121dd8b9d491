package warehouse

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/mEdHaT33/Arkan/internal/httpapi"
	"github.com/mEdHaT33/Arkan/internal/remote"
	"github.com/mEdHaT33/Arkan/pkg/auditlog"
	"github.com/mEdHaT33/Arkan/pkg/models"
	"github.com/mEdHaT33/Arkan/pkg/roles"
	"github.com/mEdHaT33/Arkan/pkg/security"
)

type WarehouseGateway interface {
	Items(ctx context.Context) ([]models.WarehouseItem, error)
	AddItem(ctx context.Context, input remote.ItemInput) error
	AddIn(ctx context.Context, input remote.MovementInInput) error
	AddOut(ctx context.Context, input remote.MovementOutInput) error
	MovementsIn(ctx context.Context, filter remote.MovementFilter) ([]models.StockMovementIn, error)
	MovementsOut(ctx context.Context, filter remote.MovementFilter) ([]models.StockMovementOut, error)
}

type WarehouseHandler struct {
	Gateway  WarehouseGateway
	AuditLog *auditlog.AuditLog
}

func NewHandler(gateway WarehouseGateway, auditLog *auditlog.AuditLog) *WarehouseHandler {
	return &WarehouseHandler{
		Gateway:  gateway,
		AuditLog: auditLog,
	}
}

func (h *WarehouseHandler) RegisterRoutes(router *gin.RouterGroup) {
	guard := security.Authorize(roles.Admin, roles.Finance)
	router.GET("/api/warehouse/items", guard, h.ListItems)
	router.POST("/api/warehouse/items", guard, h.AddItem)
	router.POST("/api/warehouse/items/:id/adjust", guard, h.QuickAdjust)
	router.POST("/api/warehouse/in", guard, h.StockIn)
	router.POST("/api/warehouse/out", guard, h.StockOut)
	router.GET("/api/warehouse/movements/in", guard, h.MovementsIn)
	router.GET("/api/warehouse/movements/out", guard, h.MovementsOut)
	router.GET("/api/warehouse/export.csv", guard, h.ExportCSV)
	router.GET("/api/warehouse/export.xlsx", guard, h.ExportXLSX)
}

func (h *WarehouseHandler) ListItems(c *gin.Context) {
	items, err := h.Gateway.Items(c.Request.Context())
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	// Optional ?low_stock=1 keeps the reorder screen to one request.
	if c.Query("low_stock") == "1" {
		low := make([]models.WarehouseItem, 0, len(items))
		for _, item := range items {
			if item.LowStock {
				low = append(low, item)
			}
		}
		items = low
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *WarehouseHandler) AddItem(c *gin.Context) {
	var req remote.ItemInput
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	if req.ItemName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An item name is required"})
		return
	}
	if req.Unit == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A unit is required"})
		return
	}
	if req.PurchasePrice.IsNegative() || req.SellingPrice.IsNegative() || req.OpeningQty.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Prices and quantities cannot be negative"})
		return
	}

	if err := h.Gateway.AddItem(c.Request.Context(), req); err != nil {
		httpapi.Error(c, err)
		return
	}

	session, _ := security.CurrentSession(c)
	go h.AuditLog.Log("warehouse.item.create", session.Username, zap.String("item", req.ItemName))

	c.JSON(http.StatusOK, gin.H{"message": "Item created"})
}

func (h *WarehouseHandler) StockIn(c *gin.Context) {
	var req remote.MovementInInput
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	if req.ItemID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An item must be selected"})
		return
	}
	if !req.Qty.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be greater than zero"})
		return
	}
	if req.UnitCost.Valid && req.UnitCost.Decimal.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unit cost cannot be negative"})
		return
	}

	session, _ := security.CurrentSession(c)
	req.ReceivedBy = session.Username

	if err := h.Gateway.AddIn(c.Request.Context(), req); err != nil {
		httpapi.Error(c, err)
		return
	}

	go h.AuditLog.Log("warehouse.in", session.Username,
		zap.Int("item_id", req.ItemID), zap.String("qty", req.Qty.String()))

	c.JSON(http.StatusOK, gin.H{"message": "Stock received"})
}

func (h *WarehouseHandler) StockOut(c *gin.Context) {
	var req remote.MovementOutInput
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	if req.ItemID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An item must be selected"})
		return
	}
	if !req.Qty.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be greater than zero"})
		return
	}
	if !models.ValidOutReason(req.Reason) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown reason", "details": req.Reason})
		return
	}

	session, _ := security.CurrentSession(c)
	req.IssuedBy = session.Username

	// Stock sufficiency is the backend's call, it owns the quantity.
	if err := h.Gateway.AddOut(c.Request.Context(), req); err != nil {
		httpapi.Error(c, err)
		return
	}

	go h.AuditLog.Log("warehouse.out", session.Username,
		zap.Int("item_id", req.ItemID),
		zap.String("qty", req.Qty.String()),
		zap.String("reason", req.Reason),
	)

	c.JSON(http.StatusOK, gin.H{"message": "Stock issued"})
}

// QuickAdjust is the +/- control on the items list. A positive delta books
// an IN, a negative one an OUT with reason "adjustment".
func (h *WarehouseHandler) QuickAdjust(c *gin.Context) {
	itemID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	var req struct {
		Delta decimal.Decimal `json:"delta"`
		Note  string          `json:"note"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	if req.Delta.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Delta cannot be zero"})
		return
	}

	session, _ := security.CurrentSession(c)

	if req.Delta.IsPositive() {
		err = h.Gateway.AddIn(c.Request.Context(), remote.MovementInInput{
			ItemID:     itemID,
			Qty:        req.Delta,
			Note:       req.Note,
			ReceivedBy: session.Username,
		})
	} else {
		err = h.Gateway.AddOut(c.Request.Context(), remote.MovementOutInput{
			ItemID:   itemID,
			Qty:      req.Delta.Neg(),
			Reason:   "adjustment",
			Note:     req.Note,
			IssuedBy: session.Username,
		})
	}
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	go h.AuditLog.Log("warehouse.adjust", session.Username,
		zap.Int("item_id", itemID), zap.String("delta", req.Delta.String()))

	c.JSON(http.StatusOK, gin.H{"message": "Stock adjusted"})
}

func (h *WarehouseHandler) MovementsIn(c *gin.Context) {
	filter, ok := movementFilter(c)
	if !ok {
		return
	}

	movements, err := h.Gateway.MovementsIn(c.Request.Context(), filter)
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": movements})
}

func (h *WarehouseHandler) MovementsOut(c *gin.Context) {
	filter, ok := movementFilter(c)
	if !ok {
		return
	}

	movements, err := h.Gateway.MovementsOut(c.Request.Context(), filter)
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": movements})
}

func movementFilter(c *gin.Context) (remote.MovementFilter, bool) {
	filter := remote.MovementFilter{
		DateFrom: c.Query("date_from"),
		DateTo:   c.Query("date_to"),
	}
	if raw := c.Query("item_id"); raw != "" {
		itemID, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID", "details": raw})
			return filter, false
		}
		filter.ItemID = itemID
	}
	return filter, true
}

var exportHeader = []string{
	"item_code", "item_name", "category", "quantity", "unit",
	"purchase_price", "selling_price", "stock_value", "reorder_level",
	"low_stock", "location",
}

func exportRow(item models.WarehouseItem) []string {
	lowStock := "no"
	if item.LowStock {
		lowStock = "yes"
	}
	return []string{
		item.ItemCode,
		item.ItemName,
		item.Category,
		item.Quantity.String(),
		item.Unit,
		item.PurchasePrice.String(),
		item.SellingPrice.String(),
		item.StockValue.String(),
		item.ReorderLevel.String(),
		lowStock,
		item.Location,
	}
}

func exportFilename(ext string) string {
	return fmt.Sprintf("warehouse-%s.%s", time.Now().Format("2006-01-02"), ext)
}

// exportItems narrows the listing with the same ?search= and ?category=
// parameters the stock screen uses, so an export matches what is on screen.
func exportItems(c *gin.Context, items []models.WarehouseItem) []models.WarehouseItem {
	search := strings.ToLower(strings.TrimSpace(c.Query("search")))
	category := c.Query("category")
	if search == "" && category == "" {
		return items
	}

	filtered := make([]models.WarehouseItem, 0, len(items))
	for _, item := range items {
		if category != "" && item.Category != category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.ItemName), search) &&
			!strings.Contains(strings.ToLower(item.ItemCode), search) {
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered
}

func (h *WarehouseHandler) ExportCSV(c *gin.Context) {
	items, err := h.Gateway.Items(c.Request.Context())
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	items = exportItems(c, items)

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+exportFilename("csv")+`"`)

	writer := csv.NewWriter(c.Writer)
	writer.Write(exportHeader)
	for _, item := range items {
		writer.Write(exportRow(item))
	}
	writer.Flush()
}

func (h *WarehouseHandler) ExportXLSX(c *gin.Context) {
	items, err := h.Gateway.Items(c.Request.Context())
	if err != nil {
		httpapi.Error(c, err)
		return
	}
	items = exportItems(c, items)

	file := excelize.NewFile()
	defer file.Close()

	const sheet = "Stock"
	file.SetSheetName("Sheet1", sheet)

	for col, name := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		file.SetCellValue(sheet, cell, name)
	}
	for row, item := range items {
		for col, value := range exportRow(item) {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			file.SetCellValue(sheet, cell, value)
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", `attachment; filename="`+exportFilename("xlsx")+`"`)

	if err := file.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build workbook", "details": err.Error()})
	}
}
