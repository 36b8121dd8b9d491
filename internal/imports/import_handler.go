package imports

import (
	"context"
	"encoding/csv"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mEdHaT33/Arkan/internal/httpapi"
	"github.com/mEdHaT33/Arkan/internal/remote"
	"github.com/mEdHaT33/Arkan/pkg/auditlog"
	"github.com/mEdHaT33/Arkan/pkg/roles"
	"github.com/mEdHaT33/Arkan/pkg/security"
)

type ImportsGateway interface {
	Templates(ctx context.Context) (map[string]remote.ImportTemplate, error)
	Import(ctx context.Context, importType string, skipDuplicates bool, file remote.FileUpload) (remote.ImportResult, error)
}

type ImportsHandler struct {
	Gateway  ImportsGateway
	AuditLog *auditlog.AuditLog
}

func NewHandler(gateway ImportsGateway, auditLog *auditlog.AuditLog) *ImportsHandler {
	return &ImportsHandler{
		Gateway:  gateway,
		AuditLog: auditLog,
	}
}

func (h *ImportsHandler) RegisterRoutes(router *gin.RouterGroup) {
	guard := security.Authorize(roles.Admin, roles.Finance)
	router.GET("/api/imports/templates", guard, h.Templates)
	router.GET("/api/imports/template.csv", guard, h.TemplateCSV)
	router.POST("/api/imports", guard, h.Import)
}

func (h *ImportsHandler) Templates(c *gin.Context) {
	templates, err := h.Gateway.Templates(c.Request.Context())
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// sampleValue fills a template row so operators see the expected format
// for each column before they start typing.
func sampleValue(header string) string {
	switch header {
	case "item_code":
		return "ITEM001"
	case "item_name":
		return "Sample Item"
	case "type", "party_type":
		return "client"
	case "direction":
		return "in"
	case "txn_date":
		return "2024-01-01"
	case "amount":
		return "100.00"
	case "quantity":
		return "10"
	case "balance":
		return "0.00"
	case "username":
		return "john_doe"
	case "password":
		return "password123"
	case "role":
		return "user"
	case "email":
		return "john@example.com"
	case "phone":
		return "+1234567890"
	case "status":
		return "active"
	case "unit":
		return "pcs"
	case "purchase_price":
		return "50.00"
	case "selling_price":
		return "75.00"
	case "category":
		return "General"
	case "category_kind":
		return "income"
	case "account_type":
		return "bank"
	case "method":
		return "cash"
	case "reference":
		return "REF001"
	case "note":
		return "Sample note"
	case "created_by":
		return "admin"
	case "party_id", "supplier_id":
		return "1"
	case "reorder_level":
		return "5"
	case "location":
		return "Warehouse A"
	case "address":
		return "123 Main St"
	default:
		return "sample"
	}
}

// TemplateCSV builds a starter spreadsheet for one import type: the
// header row plus a single sample line.
func (h *ImportsHandler) TemplateCSV(c *gin.Context) {
	importType := c.Query("type")
	if importType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An import type is required"})
		return
	}

	templates, err := h.Gateway.Templates(c.Request.Context())
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	template, ok := templates[importType]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown import type", "details": importType})
		return
	}

	sample := make([]string, len(template.Headers))
	for i, header := range template.Headers {
		sample[i] = sampleValue(header)
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+importType+`-template.csv"`)

	writer := csv.NewWriter(c.Writer)
	writer.Write(template.Headers)
	writer.Write(sample)
	writer.Flush()
}

func (h *ImportsHandler) Import(c *gin.Context) {
	importType := c.PostForm("type")
	if importType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "An import type is required"})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A spreadsheet file is required"})
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read upload", "details": err.Error()})
		return
	}
	defer file.Close()

	skipDuplicates := c.PostForm("skip_duplicates") == "1" || c.PostForm("skip_duplicates") == "true"

	result, err := h.Gateway.Import(c.Request.Context(), importType, skipDuplicates,
		remote.FileUpload{Filename: header.Filename, Reader: file})
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	session, _ := security.CurrentSession(c)
	go h.AuditLog.Log("import.run", session.Username,
		zap.String("type", importType),
		zap.Int("imported", result.Imported),
		zap.Int("skipped", result.Skipped),
	)

	c.JSON(http.StatusOK, gin.H{"message": "Import finished", "data": result})
}
