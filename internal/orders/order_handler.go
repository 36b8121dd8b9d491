package orders

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mEdHaT33/Arkan/internal/httpapi"
	"github.com/mEdHaT33/Arkan/internal/remote"
	"github.com/mEdHaT33/Arkan/pkg/auditlog"
	"github.com/mEdHaT33/Arkan/pkg/models"
	"github.com/mEdHaT33/Arkan/pkg/pipeline"
	"github.com/mEdHaT33/Arkan/pkg/roles"
	"github.com/mEdHaT33/Arkan/pkg/security"
)

// OrdersGateway is the slice of the backend the order screens need.
type OrdersGateway interface {
	ListByStatus(ctx context.Context, status pipeline.Status) ([]models.Order, error)
	DesignerTeamOrders(ctx context.Context, username string) ([]models.Order, error)
	DesignerQueue(ctx context.Context, status pipeline.Status) ([]models.Order, error)
	Designers(ctx context.Context) ([]models.Designer, error)
	AssignDesigner(ctx context.Context, orderID int, designer string) error
	Create(ctx context.Context, input remote.CreateOrderInput) (string, error)
	UploadFile(ctx context.Context, orderID int, field pipeline.FileField, uploadedBy string, file remote.FileUpload) (string, error)
	Review(ctx context.Context, orderID int, action pipeline.Action) error
	ApproveProva(ctx context.Context, orderID int, approvedBy string) error
}

type OrdersHandler struct {
	Gateway  OrdersGateway
	AuditLog *auditlog.AuditLog
}

func NewHandler(gateway OrdersGateway, auditLog *auditlog.AuditLog) *OrdersHandler {
	return &OrdersHandler{
		Gateway:  gateway,
		AuditLog: auditLog,
	}
}

func (h *OrdersHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/api/orders", security.Authorize(roles.Admin, roles.AccountManager), h.ListOrders)
	router.POST("/api/orders", security.Authorize(roles.Admin, roles.AccountManager), h.CreateOrder)
	router.GET("/api/orders/designer-team", security.Authorize(roles.Admin, roles.Designer, roles.DesignerManager), h.DesignerTeam)
	router.GET("/api/orders/designer-queue", security.Authorize(roles.Admin, roles.DesignerManager), h.DesignerQueue)
	router.GET("/api/designers", security.Authorize(roles.Admin, roles.DesignerManager), h.Designers)
	router.POST("/api/orders/:id/assign", security.Authorize(roles.Admin, roles.DesignerManager), h.AssignDesigner)
	router.POST("/api/orders/:id/files", h.UploadFile)
	router.POST("/api/orders/:id/review", security.Authorize(roles.Admin, roles.DesignerManager), h.Review)
	router.POST("/api/orders/:id/approve-prova", h.ApproveProva)
}

// orderView is an order plus what the caller may do with it. The hints
// come from the local pipeline rules so list screens never guess.
type orderView struct {
	models.Order
	NextField       pipeline.FileField `json:"next_field,omitempty"`
	ReviewActions   []pipeline.Action  `json:"review_actions,omitempty"`
	CanApproveProva bool               `json:"can_approve_prova"`
}

func annotate(orders []models.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		status := pipeline.Parse(order.Status)

		view := orderView{Order: order}
		if field, ok := pipeline.ExpectedField(status); ok {
			view.NextField = field
		}
		view.ReviewActions = pipeline.ReviewActions(status)
		view.CanApproveProva = pipeline.CanApproveProva(status)
		views = append(views, view)
	}
	return views
}

func (h *OrdersHandler) ListOrders(c *gin.Context) {
	status := pipeline.Parse(c.Query("status"))
	if raw := c.Query("status"); raw != "" && status == pipeline.StatusUnknown {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status filter", "details": raw})
		return
	}

	orders, err := h.Gateway.ListByStatus(c.Request.Context(), status)
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": annotate(orders)})
}

func (h *OrdersHandler) CreateOrder(c *gin.Context) {
	session, _ := security.CurrentSession(c)

	clientID, err := strconv.Atoi(c.PostForm("client_id"))
	if err != nil || clientID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A client must be selected"})
		return
	}

	input := remote.CreateOrderInput{
		ClientID:  clientID,
		Has3D:     c.PostForm("has_3d") == "1" || c.PostForm("has_3d") == "true",
		CreatedBy: session.Username,
		Files:     map[pipeline.FileField]remote.FileUpload{},
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart payload", "details": err.Error()})
		return
	}
	for name, headers := range form.File {
		field, ok := pipeline.ParseField(name)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown file field", "details": name})
			return
		}
		if len(headers) == 0 {
			continue
		}
		file, err := headers[0].Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read upload", "details": err.Error()})
			return
		}
		defer file.Close()
		input.Files[field] = remote.FileUpload{Filename: headers[0].Filename, Reader: file}
	}
	if len(input.Files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "At least one file is required"})
		return
	}

	status, err := h.Gateway.Create(c.Request.Context(), input)
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	go h.AuditLog.Log("order.create", session.Username, zap.Int("client_id", clientID))

	c.JSON(http.StatusOK, gin.H{"message": "Order created", "status": status})
}

// DesignerTeam is the designer's own queue across the four editable
// stages. Admins and the design manager may look at any designer's queue.
func (h *OrdersHandler) DesignerTeam(c *gin.Context) {
	session, _ := security.CurrentSession(c)

	username := session.Username
	if requested := c.Query("username"); requested != "" && session.Role != roles.Designer {
		username = requested
	}

	var tab pipeline.Status
	if raw := c.Query("tab"); raw != "" {
		tab = pipeline.Parse(raw)
		if _, ok := pipeline.ExpectedField(tab); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown stage tab", "details": raw})
			return
		}
	}

	orders, err := h.Gateway.DesignerTeamOrders(c.Request.Context(), username)
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	if tab != pipeline.StatusUnknown {
		selected := make([]models.Order, 0, len(orders))
		for _, order := range orders {
			if pipeline.Parse(order.Status) == tab {
				selected = append(selected, order)
			}
		}
		orders = selected
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": annotate(orders),
		"stages": pipeline.DesignerStages(),
	})
}

func (h *OrdersHandler) DesignerQueue(c *gin.Context) {
	status := pipeline.Parse(c.Query("status"))
	if status == pipeline.StatusUnknown {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A valid status filter is required"})
		return
	}

	orders, err := h.Gateway.DesignerQueue(c.Request.Context(), status)
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": annotate(orders)})
}

func (h *OrdersHandler) Designers(c *gin.Context) {
	designers, err := h.Gateway.Designers(c.Request.Context())
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": designers})
}

func (h *OrdersHandler) AssignDesigner(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var req struct {
		AssignedTo string `json:"assigned_to"`
	}
	if err := c.BindJSON(&req); err != nil || req.AssignedTo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A designer username is required"})
		return
	}

	if err := h.Gateway.AssignDesigner(c.Request.Context(), orderID, req.AssignedTo); err != nil {
		httpapi.Error(c, err)
		return
	}

	session, _ := security.CurrentSession(c)
	go h.AuditLog.Log("order.assign", session.Username,
		zap.Int("order_id", orderID), zap.String("assigned_to", req.AssignedTo))

	c.JSON(http.StatusOK, gin.H{"message": "Designer assigned"})
}

func (h *OrdersHandler) UploadFile(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	field, ok := pipeline.ParseField(c.PostForm("field"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown file field", "details": c.PostForm("field")})
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A file is required"})
		return
	}
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read upload", "details": err.Error()})
		return
	}
	defer file.Close()

	session, _ := security.CurrentSession(c)

	newStatus, err := h.Gateway.UploadFile(c.Request.Context(), orderID, field, session.Username,
		remote.FileUpload{Filename: header.Filename, Reader: file})
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	go h.AuditLog.Log("order.upload", session.Username,
		zap.Int("order_id", orderID), zap.String("field", field.String()))

	c.JSON(http.StatusOK, gin.H{"message": "File uploaded", "new_status": newStatus})
}

func (h *OrdersHandler) Review(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	var req struct {
		Action string `json:"action"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	action := pipeline.Action(req.Action)
	if action != pipeline.ActionApprove && action != pipeline.ActionNeedsEdit {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown review action", "details": req.Action})
		return
	}

	if err := h.Gateway.Review(c.Request.Context(), orderID, action); err != nil {
		httpapi.Error(c, err)
		return
	}

	session, _ := security.CurrentSession(c)
	go h.AuditLog.Log("order.review", session.Username,
		zap.Int("order_id", orderID), zap.String("decision", string(action)))

	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}

// ApproveProva is open to any authenticated operator; client approval of
// the prova arrives over the phone and whoever takes the call records it.
func (h *OrdersHandler) ApproveProva(c *gin.Context) {
	orderID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	session, _ := security.CurrentSession(c)

	if err := h.Gateway.ApproveProva(c.Request.Context(), orderID, session.Username); err != nil {
		httpapi.Error(c, err)
		return
	}

	go h.AuditLog.Log("order.approve_prova", session.Username, zap.Int("order_id", orderID))

	c.JSON(http.StatusOK, gin.H{"message": "Prova approved"})
}
