package parties

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mEdHaT33/Arkan/internal/httpapi"
	"github.com/mEdHaT33/Arkan/internal/remote"
	"github.com/mEdHaT33/Arkan/pkg/auditlog"
	"github.com/mEdHaT33/Arkan/pkg/models"
	"github.com/mEdHaT33/Arkan/pkg/roles"
	"github.com/mEdHaT33/Arkan/pkg/security"
)

type PartiesGateway interface {
	List(ctx context.Context) ([]models.Party, error)
	Vendors(ctx context.Context) ([]models.Party, error)
	Add(ctx context.Context, input remote.PartyInput) error
	Update(ctx context.Context, input remote.PartyInput) error
}

type PartiesHandler struct {
	Gateway  PartiesGateway
	AuditLog *auditlog.AuditLog
}

func NewHandler(gateway PartiesGateway, auditLog *auditlog.AuditLog) *PartiesHandler {
	return &PartiesHandler{
		Gateway:  gateway,
		AuditLog: auditLog,
	}
}

func (h *PartiesHandler) RegisterRoutes(router *gin.RouterGroup) {
	guard := security.Authorize(roles.Admin, roles.AccountManager, roles.Finance)
	router.GET("/api/parties", guard, h.ListParties)
	router.POST("/api/parties", guard, h.AddParty)
	router.PATCH("/api/parties/:id", guard, h.UpdateParty)
	router.GET("/api/vendors", guard, h.ListVendors)
}

// ListParties returns every party, optionally narrowed with ?type=client
// or ?type=vendor and a ?search= term matched against name, phone and
// email. Filtering happens here because the backend only has the combined
// listing.
func (h *PartiesHandler) ListParties(c *gin.Context) {
	partyType := c.Query("type")
	if partyType != "" && partyType != models.PartyTypeClient && partyType != models.PartyTypeVendor {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown party type", "details": partyType})
		return
	}

	parties, err := h.Gateway.List(c.Request.Context())
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	search := strings.ToLower(strings.TrimSpace(c.Query("search")))
	if partyType != "" || search != "" {
		filtered := make([]models.Party, 0, len(parties))
		for _, party := range parties {
			if partyType != "" && party.Type != partyType {
				continue
			}
			if search != "" && !partyMatches(party, search) {
				continue
			}
			filtered = append(filtered, party)
		}
		parties = filtered
	}

	c.JSON(http.StatusOK, gin.H{"parties": parties})
}

func partyMatches(party models.Party, search string) bool {
	return strings.Contains(strings.ToLower(party.Name), search) ||
		strings.Contains(strings.ToLower(party.Phone), search) ||
		strings.Contains(strings.ToLower(party.Email), search)
}

func (h *PartiesHandler) ListVendors(c *gin.Context) {
	vendors, err := h.Gateway.Vendors(c.Request.Context())
	if err != nil {
		httpapi.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vendors": vendors})
}

func (h *PartiesHandler) AddParty(c *gin.Context) {
	var req remote.PartyInput
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A party name is required"})
		return
	}
	if req.Type != models.PartyTypeClient && req.Type != models.PartyTypeVendor {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Party type must be client or vendor"})
		return
	}

	if err := h.Gateway.Add(c.Request.Context(), req); err != nil {
		httpapi.Error(c, err)
		return
	}

	session, _ := security.CurrentSession(c)
	go h.AuditLog.Log("party.create", session.Username,
		zap.String("name", req.Name), zap.String("type", req.Type))

	c.JSON(http.StatusOK, gin.H{"message": "Party created"})
}

func (h *PartiesHandler) UpdateParty(c *gin.Context) {
	partyID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid party ID"})
		return
	}

	var req remote.PartyInput
	if err := c.BindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}
	req.ID = partyID

	if err := h.Gateway.Update(c.Request.Context(), req); err != nil {
		httpapi.Error(c, err)
		return
	}

	session, _ := security.CurrentSession(c)
	go h.AuditLog.Log("party.update", session.Username, zap.Int("party_id", partyID))

	c.JSON(http.StatusOK, gin.H{"message": "Party updated"})
}
