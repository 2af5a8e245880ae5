package rest_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plats-network/sponsor-ledger/internal/api/middleware"
	"github.com/plats-network/sponsor-ledger/internal/api/rest"
	"github.com/plats-network/sponsor-ledger/internal/api/shared/dto"
	"github.com/plats-network/sponsor-ledger/internal/domain"
	"github.com/plats-network/sponsor-ledger/internal/logger"
	"github.com/plats-network/sponsor-ledger/internal/mocks"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// setupTestRouter wires the handler against a mocked executor, with the
// authenticated subject injected instead of real JWT validation
func setupTestRouter(t *testing.T, subject string) (*gin.Engine, *mocks.MockAPIExecutor) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	exec := mocks.NewMockAPIExecutor(ctrl)
	handler := rest.NewHandler(exec)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if subject != "" {
			c.Set(middleware.AUTH_SUBJECT_KEY, subject)
		}
		c.Next()
	})

	router.POST("/events", handler.CreateEvent)
	router.GET("/events", handler.ListEvents)
	router.GET("/events/:id", handler.GetEvent)
	router.POST("/events/:id/finish", handler.FinishEvent)
	router.POST("/events/:id/cancel", handler.CancelEvent)
	router.POST("/events/:id/sponse", handler.Sponse)
	router.POST("/events/:id/topup", handler.TopUp)
	router.POST("/events/:id/claim", handler.Claim)
	router.GET("/events/:id/sponsors", handler.ListEventSponsors)
	router.GET("/sponsors/me/sponsorships", handler.ListSponsorships)
	router.POST("/accounts/register", handler.RegisterAccount)
	router.GET("/accounts/:account/balance", handler.GetBalance)
	router.GET("/token/supply", handler.GetTotalSupply)
	router.POST("/token/transfer", handler.TransferToken)
	router.POST("/admin/storage/activate", handler.ActivateTokenStorage)
	router.GET("/health", handler.HealthCheck)

	return router, exec
}

func performRequest(router *gin.Engine, method string, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_CreateEvent(t *testing.T) {
	router, exec := setupTestRouter(t, "client.near")

	exec.
		EXPECT().
		CreateEvent(gomock.Any(), "client.near", "ev-1", "Launch party").
		Return(&dto.EventResponse{
			EventID: "ev-1",
			Owner:   "client.near",
			Name:    "Launch party",
			Status:  "active",
		}, nil)

	w := performRequest(router, http.MethodPost, "/events", dto.CreateEventRequest{
		EventID: "ev-1",
		Name:    "Launch party",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ev-1", resp.EventID)
}

func TestHandler_CreateEvent_NoSubject(t *testing.T) {
	router, _ := setupTestRouter(t, "")

	w := performRequest(router, http.MethodPost, "/events", dto.CreateEventRequest{
		EventID: "ev-1",
		Name:    "Launch party",
	})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_CreateEvent_MissingName(t *testing.T) {
	router, _ := setupTestRouter(t, "client.near")

	w := performRequest(router, http.MethodPost, "/events", map[string]string{
		"event_id": "ev-1",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	router, exec := setupTestRouter(t, "client.near")

	exec.
		EXPECT().
		GetEvent(gomock.Any(), "ev-missing").
		Return(nil, domain.ErrEventNotFound)

	w := performRequest(router, http.MethodGet, "/events/ev-missing", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetEvent_OpaqueError(t *testing.T) {
	router, exec := setupTestRouter(t, "client.near")

	exec.
		EXPECT().
		GetEvent(gomock.Any(), "ev-1").
		Return(nil, errors.New("connection reset"))

	w := performRequest(router, http.MethodGet, "/events/ev-1", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_ListEvents_StatusFilter(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantActive *bool
		wantCode   int
	}{
		{name: "no filter", query: "", wantActive: nil, wantCode: http.StatusOK},
		{name: "active filter", query: "?status=active", wantActive: boolPtr(true), wantCode: http.StatusOK},
		{name: "inactive filter", query: "?status=inactive", wantActive: boolPtr(false), wantCode: http.StatusOK},
		{name: "unknown filter", query: "?status=done", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, exec := setupTestRouter(t, "client.near")

			if tt.wantCode == http.StatusOK {
				exec.
					EXPECT().
					ListEvents(gomock.Any(), gomock.Eq(tt.wantActive)).
					Return(&dto.EventListResponse{}, nil)
			}

			w := performRequest(router, http.MethodGet, "/events"+tt.query, nil)

			assert.Equal(t, tt.wantCode, w.Code)
		})
	}
}

func TestHandler_FinishEvent(t *testing.T) {
	router, exec := setupTestRouter(t, "client.near")

	exec.
		EXPECT().
		FinishEvent(gomock.Any(), "client.near", "ev-1").
		Return(nil)

	w := performRequest(router, http.MethodPost, "/events/ev-1/finish", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_CancelEvent_InsufficientPayment(t *testing.T) {
	router, exec := setupTestRouter(t, "client.near")

	exec.
		EXPECT().
		CancelEvent(gomock.Any(), "client.near", "ev-1", uint64(0)).
		Return(domain.ErrInsufficientPayment)

	w := performRequest(router, http.MethodPost, "/events/ev-1/cancel", dto.PaymentRequest{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Sponse(t *testing.T) {
	router, exec := setupTestRouter(t, "s1.near")

	exec.
		EXPECT().
		Sponse(gomock.Any(), "s1.near", "ev-1", uint64(5000), domain.AssetNative, uint64(5000)).
		Return(nil)

	w := performRequest(router, http.MethodPost, "/events/ev-1/sponse", dto.SponseRequest{
		Amount:  5000,
		Payment: 5000,
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_Sponse_UnknownAsset(t *testing.T) {
	router, _ := setupTestRouter(t, "s1.near")

	w := performRequest(router, http.MethodPost, "/events/ev-1/sponse", map[string]interface{}{
		"amount":  5000,
		"asset":   "doge",
		"payment": 5000,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestHandler_Sponse_AlreadySponsored(t *testing.T) {
	router, exec := setupTestRouter(t, "s1.near")

	exec.
		EXPECT().
		Sponse(gomock.Any(), "s1.near", "ev-1", uint64(5000), domain.AssetNative, uint64(5000)).
		Return(domain.ErrAlreadySponsored)

	w := performRequest(router, http.MethodPost, "/events/ev-1/sponse", dto.SponseRequest{
		Amount:  5000,
		Payment: 5000,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_TopUp_TokenAsset(t *testing.T) {
	router, exec := setupTestRouter(t, "s1.near")

	exec.
		EXPECT().
		TopUp(gomock.Any(), "s1.near", "ev-1", uint64(100), domain.AssetToken, uint64(100)).
		Return(nil)

	w := performRequest(router, http.MethodPost, "/events/ev-1/topup", dto.SponseRequest{
		Amount:  100,
		Asset:   domain.AssetToken,
		Payment: 100,
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_Claim_Accepted(t *testing.T) {
	router, exec := setupTestRouter(t, "s1.near")

	exec.
		EXPECT().
		Claim(gomock.Any(), "s1.near", "ev-1", uint64(1)).
		Return(&dto.ClaimResponse{
			WorkflowID: "claim:ev-1:s1.near",
			RunID:      "run-1",
		}, nil)

	w := performRequest(router, http.MethodPost, "/events/ev-1/claim", dto.PaymentRequest{Payment: 1})

	assert.Equal(t, http.StatusAccepted, w.Code)

	var resp dto.ClaimResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "claim:ev-1:s1.near", resp.WorkflowID)
}

func TestHandler_Claim_AlreadyPending(t *testing.T) {
	router, exec := setupTestRouter(t, "s1.near")

	exec.
		EXPECT().
		Claim(gomock.Any(), "s1.near", "ev-1", uint64(1)).
		Return(nil, domain.ErrClaimPending)

	w := performRequest(router, http.MethodPost, "/events/ev-1/claim", dto.PaymentRequest{Payment: 1})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Claim_WrongEventState(t *testing.T) {
	router, exec := setupTestRouter(t, "s1.near")

	exec.
		EXPECT().
		Claim(gomock.Any(), "s1.near", "ev-1", uint64(1)).
		Return(nil, domain.ErrInvalidEventState)

	w := performRequest(router, http.MethodPost, "/events/ev-1/claim", dto.PaymentRequest{Payment: 1})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_FinishEvent_Unauthorized(t *testing.T) {
	router, exec := setupTestRouter(t, "stranger.near")

	exec.
		EXPECT().
		FinishEvent(gomock.Any(), "stranger.near", "ev-1").
		Return(domain.ErrUnauthorized)

	w := performRequest(router, http.MethodPost, "/events/ev-1/finish", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ListSponsorships(t *testing.T) {
	router, exec := setupTestRouter(t, "s1.near")

	exec.
		EXPECT().
		ListSponsorships(gomock.Any(), "s1.near").
		Return(&dto.SponsorshipListResponse{
			Sponsor: "s1.near",
			Sponsorships: []dto.SponsorshipResponse{
				{EventID: "ev-1", EventName: "Launch party", NativeAmount: 5000},
			},
		}, nil)

	w := performRequest(router, http.MethodGet, "/sponsors/me/sponsorships", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SponsorshipListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Sponsorships, 1)
	assert.Equal(t, "Launch party", resp.Sponsorships[0].EventName)
}

func TestHandler_RegisterAccount_Duplicate(t *testing.T) {
	router, exec := setupTestRouter(t, "a.near")

	exec.
		EXPECT().
		RegisterAccount(gomock.Any(), "a.near").
		Return(domain.ErrAccountRegistered)

	w := performRequest(router, http.MethodPost, "/accounts/register", nil)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetBalance_NotRegistered(t *testing.T) {
	router, exec := setupTestRouter(t, "a.near")

	exec.
		EXPECT().
		GetBalance(gomock.Any(), "ghost.near").
		Return(nil, domain.ErrAccountNotRegistered)

	w := performRequest(router, http.MethodGet, "/accounts/ghost.near/balance", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetTotalSupply(t *testing.T) {
	router, exec := setupTestRouter(t, "a.near")

	exec.
		EXPECT().
		GetTotalSupply(gomock.Any()).
		Return(&dto.SupplyResponse{TotalSupply: 1_000_000_000}, nil)

	w := performRequest(router, http.MethodGet, "/token/supply", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SupplyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(1_000_000_000), resp.TotalSupply)
}

func TestHandler_TransferToken_InsufficientBalance(t *testing.T) {
	router, exec := setupTestRouter(t, "a.near")

	exec.
		EXPECT().
		TransferToken(gomock.Any(), "a.near", "b.near", uint64(100)).
		Return(domain.ErrInsufficientBalance)

	w := performRequest(router, http.MethodPost, "/token/transfer", dto.TransferTokenRequest{
		Receiver: "b.near",
		Amount:   100,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ActivateTokenStorage(t *testing.T) {
	router, exec := setupTestRouter(t, "")

	exec.
		EXPECT().
		ActivateTokenStorage(gomock.Any(), "plats.near", uint64(1)).
		Return(nil)

	w := performRequest(router, http.MethodPost, "/admin/storage/activate", dto.StorageActivateRequest{
		Account: "plats.near",
		Payment: 1,
	})

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_HealthCheck(t *testing.T) {
	router, _ := setupTestRouter(t, "")

	w := performRequest(router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}

func boolPtr(v bool) *bool {
	return &v
}
