package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/plats-network/sponsor-ledger/internal/api/middleware"
	"github.com/plats-network/sponsor-ledger/internal/api/shared/dto"
	"github.com/plats-network/sponsor-ledger/internal/api/shared/executor"
	"github.com/plats-network/sponsor-ledger/internal/domain"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreateEvent registers a funding event owned by the caller
	// POST /api/v1/events
	CreateEvent(c *gin.Context)

	// GetEvent retrieves a single event with its per-asset totals
	// GET /api/v1/events/:id
	GetEvent(c *gin.Context)

	// ListEvents retrieves events, optionally filtered on status
	// GET /api/v1/events?status=<active|inactive>
	ListEvents(c *gin.Context)

	// ListClientEvents retrieves the events created by a client account
	// GET /api/v1/clients/:account/events
	ListClientEvents(c *gin.Context)

	// ListEventSponsors retrieves the ordered sponsor list of an event
	// GET /api/v1/events/:id/sponsors
	ListEventSponsors(c *gin.Context)

	// ListEventTransfers retrieves the settlement transfers of an event
	// GET /api/v1/events/:id/transfers?pending=<bool>
	ListEventTransfers(c *gin.Context)

	// FinishEvent marks the caller's event finished
	// POST /api/v1/events/:id/finish
	FinishEvent(c *gin.Context)

	// CancelEvent cancels the caller's event, opening it for claims
	// POST /api/v1/events/:id/cancel
	CancelEvent(c *gin.Context)

	// Sponse records the caller's first deposit into an event
	// POST /api/v1/events/:id/sponse
	Sponse(c *gin.Context)

	// TopUp adds to the caller's existing deposit
	// POST /api/v1/events/:id/topup
	TopUp(c *gin.Context)

	// Claim starts the settlement returning the caller's recorded balance
	// POST /api/v1/events/:id/claim
	Claim(c *gin.Context)

	// ListSponsorships retrieves everything the caller has funded
	// GET /api/v1/sponsors/me/sponsorships
	ListSponsorships(c *gin.Context)

	// RegisterAccount creates a zero token balance for the caller
	// POST /api/v1/accounts/register
	RegisterAccount(c *gin.Context)

	// GetBalance retrieves an account's token balance
	// GET /api/v1/accounts/:account/balance
	GetBalance(c *gin.Context)

	// GetTotalSupply retrieves the recorded token total supply
	// GET /api/v1/token/supply
	GetTotalSupply(c *gin.Context)

	// TransferToken moves token balance from the caller to a receiver
	// POST /api/v1/token/transfer
	TransferToken(c *gin.Context)

	// ActivateTokenStorage publishes the one-time storage registration
	// (requires API key authentication)
	// POST /api/v1/admin/storage/activate
	ActivateTokenStorage(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// caller returns the authenticated account or aborts with 401
func caller(c *gin.Context) (string, bool) {
	account := middleware.Subject(c)
	if account == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"error": "authenticated account required",
		})
		return "", false
	}
	return account, true
}

// CreateEvent registers a funding event owned by the caller
func (h *handler) CreateEvent(c *gin.Context) {
	owner, ok := caller(c)
	if !ok {
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.CreateEvent(c.Request.Context(), owner, req.EventID, req.Name)
	if err != nil {
		respondError(c, err, "Failed to create event")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// GetEvent retrieves a single event with its per-asset totals
func (h *handler) GetEvent(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		respondBadRequest(c, "Event ID is required")
		return
	}

	response, err := h.executor.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, err, "Failed to get event")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListEvents retrieves events with an optional status filter
func (h *handler) ListEvents(c *gin.Context) {
	var active *bool
	switch c.Query("status") {
	case "":
	case "active":
		v := true
		active = &v
	case "inactive":
		v := false
		active = &v
	default:
		respondBadRequest(c, "status must be active or inactive")
		return
	}

	response, err := h.executor.ListEvents(c.Request.Context(), active)
	if err != nil {
		respondError(c, err, "Failed to list events")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListClientEvents retrieves the events created by a client account
func (h *handler) ListClientEvents(c *gin.Context) {
	account := c.Param("account")
	if account == "" {
		respondBadRequest(c, "Account is required")
		return
	}

	response, err := h.executor.ListClientEvents(c.Request.Context(), account)
	if err != nil {
		respondError(c, err, "Failed to list client events")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListEventSponsors retrieves the ordered sponsor list of an event
func (h *handler) ListEventSponsors(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		respondBadRequest(c, "Event ID is required")
		return
	}

	response, err := h.executor.ListEventSponsors(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, err, "Failed to list sponsors")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListEventTransfers retrieves the settlement transfers of an event
func (h *handler) ListEventTransfers(c *gin.Context) {
	eventID := c.Param("id")
	if eventID == "" {
		respondBadRequest(c, "Event ID is required")
		return
	}

	pendingOnly := c.Query("pending") == "true"

	response, err := h.executor.ListEventTransfers(c.Request.Context(), eventID, pendingOnly)
	if err != nil {
		respondError(c, err, "Failed to list transfers")
		return
	}

	c.JSON(http.StatusOK, response)
}

// FinishEvent marks the caller's event finished
func (h *handler) FinishEvent(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}

	eventID := c.Param("id")
	if eventID == "" {
		respondBadRequest(c, "Event ID is required")
		return
	}

	if err := h.executor.FinishEvent(c.Request.Context(), account, eventID); err != nil {
		respondError(c, err, "Failed to finish event")
		return
	}

	c.Status(http.StatusNoContent)
}

// CancelEvent cancels the caller's event, opening it for claims
func (h *handler) CancelEvent(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}

	eventID := c.Param("id")
	if eventID == "" {
		respondBadRequest(c, "Event ID is required")
		return
	}

	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := h.executor.CancelEvent(c.Request.Context(), account, eventID, req.Payment); err != nil {
		respondError(c, err, "Failed to cancel event")
		return
	}

	c.Status(http.StatusNoContent)
}

// Sponse records the caller's first deposit into an event
func (h *handler) Sponse(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}

	eventID := c.Param("id")
	if eventID == "" {
		respondBadRequest(c, "Event ID is required")
		return
	}

	req, ok := bindDepositRequest(c)
	if !ok {
		return
	}

	if err := h.executor.Sponse(c.Request.Context(), account, eventID, req.Amount, req.Asset, req.Payment); err != nil {
		respondError(c, err, "Failed to record sponsorship")
		return
	}

	c.Status(http.StatusNoContent)
}

// TopUp adds to the caller's existing deposit
func (h *handler) TopUp(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}

	eventID := c.Param("id")
	if eventID == "" {
		respondBadRequest(c, "Event ID is required")
		return
	}

	req, ok := bindDepositRequest(c)
	if !ok {
		return
	}

	if err := h.executor.TopUp(c.Request.Context(), account, eventID, req.Amount, req.Asset, req.Payment); err != nil {
		respondError(c, err, "Failed to top up sponsorship")
		return
	}

	c.Status(http.StatusNoContent)
}

// bindDepositRequest parses a deposit body shared by sponse and top-up
func bindDepositRequest(c *gin.Context) (*dto.SponseRequest, bool) {
	var req dto.SponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return nil, false
	}

	if req.Asset == "" {
		req.Asset = domain.AssetNative
	}
	if !domain.IsValidAssetKind(req.Asset) {
		respondValidationError(c, fmt.Sprintf("unknown asset kind: %s", req.Asset))
		return nil, false
	}

	return &req, true
}

// Claim starts the settlement returning the caller's recorded balance
func (h *handler) Claim(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}

	eventID := c.Param("id")
	if eventID == "" {
		respondBadRequest(c, "Event ID is required")
		return
	}

	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.Claim(c.Request.Context(), account, eventID, req.Payment)
	if err != nil {
		respondError(c, err, "Failed to start claim settlement")
		return
	}

	c.JSON(http.StatusAccepted, response)
}

// ListSponsorships retrieves everything the caller has funded
func (h *handler) ListSponsorships(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}

	response, err := h.executor.ListSponsorships(c.Request.Context(), account)
	if err != nil {
		respondError(c, err, "Failed to list sponsorships")
		return
	}

	c.JSON(http.StatusOK, response)
}

// RegisterAccount creates a zero token balance for the caller
func (h *handler) RegisterAccount(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}

	if err := h.executor.RegisterAccount(c.Request.Context(), account); err != nil {
		respondError(c, err, "Failed to register account")
		return
	}

	c.Status(http.StatusCreated)
}

// GetBalance retrieves an account's token balance
func (h *handler) GetBalance(c *gin.Context) {
	account := c.Param("account")
	if account == "" {
		respondBadRequest(c, "Account is required")
		return
	}

	response, err := h.executor.GetBalance(c.Request.Context(), account)
	if err != nil {
		respondError(c, err, "Failed to get balance")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetTotalSupply retrieves the recorded token total supply
func (h *handler) GetTotalSupply(c *gin.Context) {
	response, err := h.executor.GetTotalSupply(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get total supply")
		return
	}

	c.JSON(http.StatusOK, response)
}

// TransferToken moves token balance from the caller to a receiver
func (h *handler) TransferToken(c *gin.Context) {
	account, ok := caller(c)
	if !ok {
		return
	}

	var req dto.TransferTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := h.executor.TransferToken(c.Request.Context(), account, req.Receiver, req.Amount); err != nil {
		respondError(c, err, "Failed to transfer balance")
		return
	}

	c.Status(http.StatusNoContent)
}

// ActivateTokenStorage publishes the one-time storage registration
func (h *handler) ActivateTokenStorage(c *gin.Context) {
	var req dto.StorageActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	if err := h.executor.ActivateTokenStorage(c.Request.Context(), req.Account, req.Payment); err != nil {
		respondError(c, err, "Failed to activate token storage")
		return
	}

	c.Status(http.StatusNoContent)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":  "ok",
		"service": "sponsor-ledger-api",
	})
}
