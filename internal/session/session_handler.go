package session

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mEdHaT33/Arkan/internal/httpapi"
	"github.com/mEdHaT33/Arkan/internal/rate_limiter"
	"github.com/mEdHaT33/Arkan/internal/remote"
	custom_error "github.com/mEdHaT33/Arkan/pkg/errors"
	"github.com/mEdHaT33/Arkan/pkg/roles"
	"github.com/mEdHaT33/Arkan/pkg/security"
)

// AuthGateway verifies credentials against the backend.
type AuthGateway interface {
	Login(ctx context.Context, username, password string) (remote.LoginResult, error)
}

type SessionHandler struct {
	Gateway AuthGateway
	Limiter *rate_limiter.RateLimiter
	Log     *zap.Logger
}

func NewHandler(gateway AuthGateway, log *zap.Logger) *SessionHandler {
	return &SessionHandler{
		Gateway: gateway,
		Limiter: rate_limiter.NewRateLimiter(5, time.Minute),
		Log:     log,
	}
}

func (h *SessionHandler) RegisterPublicRoutes(router *gin.RouterGroup) {
	router.POST("/api/auth/login", h.Login)
}

func (h *SessionHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/api/auth/logout", h.Logout)
	router.GET("/api/session", h.Session)
	router.GET("/api/navigation", h.Navigation)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *SessionHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and password are required"})
		return
	}

	if !h.Limiter.IsAllowed(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many login attempts, try again later"})
		return
	}

	result, err := h.Gateway.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		var remoteErr *custom_error.RemoteError
		if errors.As(err, &remoteErr) {
			// Rejected credentials come back with the backend's own words.
			message := remoteErr.Message
			if message == "" {
				message = "Invalid credentials"
			}
			h.Log.Info("login rejected", zap.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, gin.H{"error": message})
			return
		}
		httpapi.Error(c, err)
		return
	}

	role := roles.Parse(result.Role)
	token, err := security.GenerateToken(result.Username, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	h.Log.Info("login", zap.String("username", result.Username), zap.String("role", role.String()))

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"username": result.Username,
		"role":     role,
		"menu":     roles.MenuFor(role),
	})
}

// Logout is bookkeeping only. Tokens are stateless; the client drops its
// copy and the session is gone.
func (h *SessionHandler) Logout(c *gin.Context) {
	if session, ok := security.CurrentSession(c); ok {
		h.Log.Info("logout", zap.String("username", session.Username))
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *SessionHandler) Session(c *gin.Context) {
	session, ok := security.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": session.Username,
		"role":     session.Role,
		"menu":     roles.MenuFor(session.Role),
	})
}

// Navigation returns the menu for the caller's role. Unknown roles get an
// empty menu, never an error.
func (h *SessionHandler) Navigation(c *gin.Context) {
	session, ok := security.CurrentSession(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"menu": roles.MenuFor(session.Role)})
}
