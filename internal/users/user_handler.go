package users

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
	"github.com/mEdHaT33/Arkan/pkg/roles"
	"github.com/mEdHaT33/Arkan/pkg/security"
)

// UsersGateway is the backend's user administration surface. Passwords
// travel through as given; hashing happens on the backend.
type UsersGateway interface {
	List(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, input remote.UserInput) error
	Update(ctx context.Context, input remote.UserInput) error
	Delete(ctx context.Context, id int) error
}

type UsersHandler struct {
	Gateway  UsersGateway
	AuditLog *auditlog.AuditLog
}

func NewHandler(gateway UsersGateway, auditLog *auditlog.AuditLog) *UsersHandler {
	return &UsersHandler{
		Gateway:  gateway,
		AuditLog: auditLog,
	}
}

func (h *UsersHandler) RegisterRoutes(router *gin.RouterGroup) {
	guard := security.Authorize(roles.Admin)
	router.GET("/api/users", guard, h.ListUsers)
	router.POST("/api/users", guard, h.CreateUser)
	router.PATCH("/api/users/:id", guard, h.UpdateUser)
	router.DELETE("/api/users/:id", guard, h.DeleteUser)
}

func (h *UsersHandler) ListUsers(c *gin.Context) {
	users, err := h.Gateway.List(c.Request.Context())
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (h *UsersHandler) CreateUser(c *gin.Context) {
	var req remote.UserInput
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	if req.Username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A username is required"})
		return
	}
	if len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters long"})
		return
	}
	if !roles.Parse(req.Role).IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role", "details": req.Role})
		return
	}

	if err := h.Gateway.Create(c.Request.Context(), req); err != nil {
		httpapi.Error(c, err)
		return
	}

	session, _ := security.CurrentSession(c)
	go h.AuditLog.Log("user.create", session.Username,
		zap.String("new_user", req.Username), zap.String("new_role", req.Role))

	c.JSON(http.StatusOK, gin.H{"message": "User created"})
}

func (h *UsersHandler) UpdateUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	var req remote.UserInput
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	req.ID = userID

	if req.Password != "" && len(req.Password) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters long"})
		return
	}
	if req.Role != "" && !roles.Parse(req.Role).IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown role", "details": req.Role})
		return
	}

	if err := h.Gateway.Update(c.Request.Context(), req); err != nil {
		httpapi.Error(c, err)
		return
	}

	session, _ := security.CurrentSession(c)
	go h.AuditLog.Log("user.update", session.Username, zap.Int("user_id", userID))

	c.JSON(http.StatusOK, gin.H{"message": "User updated"})
}

func (h *UsersHandler) DeleteUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if err := h.Gateway.Delete(c.Request.Context(), userID); err != nil {
		httpapi.Error(c, err)
		return
	}

	session, _ := security.CurrentSession(c)
	go h.AuditLog.Log("user.delete", session.Username, zap.Int("user_id", userID))

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
