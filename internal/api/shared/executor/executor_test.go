package executor_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.temporal.io/api/enums/v1"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	"github.com/plats-network/sponsor-ledger/internal/api/shared/executor"
	apierrors "github.com/plats-network/sponsor-ledger/internal/api/shared/errors"
	"github.com/plats-network/sponsor-ledger/internal/domain"
	"github.com/plats-network/sponsor-ledger/internal/mocks"
	"github.com/plats-network/sponsor-ledger/internal/store"
	"github.com/plats-network/sponsor-ledger/internal/store/schema"
)

// stubWorkflowRun satisfies client.WorkflowRun for the claim tests
type stubWorkflowRun struct {
	id    string
	runID string
}

func (s stubWorkflowRun) GetID() string    { return s.id }
func (s stubWorkflowRun) GetRunID() string { return s.runID }
func (s stubWorkflowRun) Get(ctx context.Context, valuePtr interface{}) error {
	return nil
}
func (s stubWorkflowRun) GetWithOptions(ctx context.Context, valuePtr interface{}, options client.WorkflowRunGetOptions) error {
	return nil
}

type testExecutorMocks struct {
	ctrl         *gomock.Controller
	store        *mocks.MockStore
	orchestrator *mocks.MockTemporalOrchestrator
	publisher    *mocks.MockTransferPublisher
}

func setupTestExecutor(t *testing.T, cfg executor.Config) (executor.Executor, *testExecutorMocks) {
	ctrl := gomock.NewController(t)

	tm := &testExecutorMocks{
		ctrl:         ctrl,
		store:        mocks.NewMockStore(ctrl),
		orchestrator: mocks.NewMockTemporalOrchestrator(ctrl),
		publisher:    mocks.NewMockTransferPublisher(ctrl),
	}

	t.Cleanup(ctrl.Finish)

	return executor.NewExecutor(cfg, tm.store, tm.orchestrator, tm.publisher), tm
}

func defaultConfig() executor.Config {
	return executor.Config{
		TaskQueue:         "claim-settlement",
		OwnerAccount:      "plats.near",
		MinStoragePayment: 1,
	}
}

func TestExecutor_GetEvent_NotFound(t *testing.T) {
	exec, tm := setupTestExecutor(t, defaultConfig())

	tm.store.
		EXPECT().
		GetEvent(gomock.Any(), "ev-missing").
		Return(nil, nil)

	resp, err := exec.GetEvent(context.Background(), "ev-missing")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestExecutor_CreateEvent(t *testing.T) {
	exec, tm := setupTestExecutor(t, defaultConfig())

	tm.store.
		EXPECT().
		CreateEvent(gomock.Any(), "ev-1", "client.near", "Launch party").
		Return(&schema.Event{
			ID:     "ev-1",
			Owner:  "client.near",
			Name:   "Launch party",
			Status: schema.EventStatusActive,
		}, nil)

	resp, err := exec.CreateEvent(context.Background(), "client.near", "ev-1", "Launch party")

	require.NoError(t, err)
	assert.Equal(t, "ev-1", resp.EventID)
	assert.Equal(t, "client.near", resp.Owner)
	assert.Equal(t, string(schema.EventStatusActive), resp.Status)
}

func TestExecutor_FinishEvent(t *testing.T) {
	tests := []struct {
		name         string
		caller       string
		strictAuth   bool
		expectUpdate bool
		wantErr      error
	}{
		{
			name:         "owner finishes event",
			caller:       "client.near",
			expectUpdate: true,
		},
		{
			name:   "non-owner is silently ignored",
			caller: "stranger.near",
		},
		{
			name:       "non-owner rejected under strict auth",
			caller:     "stranger.near",
			strictAuth: true,
			wantErr:    domain.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.StrictFinishAuth = tt.strictAuth
			exec, tm := setupTestExecutor(t, cfg)

			tm.store.
				EXPECT().
				GetEvent(gomock.Any(), "ev-1").
				Return(&schema.Event{
					ID:     "ev-1",
					Owner:  "client.near",
					Status: schema.EventStatusActive,
				}, nil)
			if tt.expectUpdate {
				tm.store.
					EXPECT().
					UpdateEventStatus(gomock.Any(), "ev-1", schema.EventStatusFinish).
					Return(nil)
			}

			err := exec.FinishEvent(context.Background(), tt.caller, "ev-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExecutor_CancelEvent_RequiresPayment(t *testing.T) {
	exec, _ := setupTestExecutor(t, defaultConfig())

	err := exec.CancelEvent(context.Background(), "client.near", "ev-1", 0)

	assert.ErrorIs(t, err, domain.ErrInsufficientPayment)
}

func TestExecutor_CancelEvent_NonOwnerRejected(t *testing.T) {
	exec, tm := setupTestExecutor(t, defaultConfig())

	tm.store.
		EXPECT().
		GetEvent(gomock.Any(), "ev-1").
		Return(&schema.Event{ID: "ev-1", Owner: "client.near"}, nil)

	err := exec.CancelEvent(context.Background(), "stranger.near", "ev-1", 1)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestExecutor_CancelEvent_Success(t *testing.T) {
	exec, tm := setupTestExecutor(t, defaultConfig())

	tm.store.
		EXPECT().
		GetEvent(gomock.Any(), "ev-1").
		Return(&schema.Event{ID: "ev-1", Owner: "client.near", Status: schema.EventStatusActive}, nil)
	tm.store.
		EXPECT().
		UpdateEventStatus(gomock.Any(), "ev-1", schema.EventStatusCancel).
		Return(nil)

	err := exec.CancelEvent(context.Background(), "client.near", "ev-1", 1)

	assert.NoError(t, err)
}

func TestExecutor_Sponse_PaymentMustEqualAmount(t *testing.T) {
	exec, _ := setupTestExecutor(t, defaultConfig())

	err := exec.Sponse(context.Background(), "s1.near", "ev-1", 5000, domain.AssetNative, 4999)

	assert.ErrorIs(t, err, domain.ErrPaymentMismatch)
}

func TestExecutor_Sponse_ZeroAmountRejected(t *testing.T) {
	exec, _ := setupTestExecutor(t, defaultConfig())

	err := exec.Sponse(context.Background(), "s1.near", "ev-1", 0, domain.AssetNative, 0)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apierrors.ErrCodeValidationFailed, apiErr.Code)
}

func TestExecutor_Sponse_Success(t *testing.T) {
	exec, tm := setupTestExecutor(t, defaultConfig())

	tm.store.
		EXPECT().
		CreateSponsorship(gomock.Any(), "s1.near", "ev-1", uint64(5000), domain.AssetNative).
		Return(nil)

	err := exec.Sponse(context.Background(), "s1.near", "ev-1", 5000, domain.AssetNative, 5000)

	assert.NoError(t, err)
}

func TestExecutor_Sponse_DuplicatePassedThrough(t *testing.T) {
	exec, tm := setupTestExecutor(t, defaultConfig())

	tm.store.
		EXPECT().
		CreateSponsorship(gomock.Any(), "s1.near", "ev-1", uint64(5000), domain.AssetNative).
		Return(domain.ErrAlreadySponsored)

	err := exec.Sponse(context.Background(), "s1.near", "ev-1", 5000, domain.AssetNative, 5000)

	assert.ErrorIs(t, err, domain.ErrAlreadySponsored)
}

func TestExecutor_TopUp_Success(t *testing.T) {
	exec, tm := setupTestExecutor(t, defaultConfig())

	tm.store.
		EXPECT().
		TopUpSponsorship(gomock.Any(), "s1.near", "ev-1", uint64(100), domain.AssetToken).
		Return(nil)

	err := exec.TopUp(context.Background(), "s1.near", "ev-1", 100, domain.AssetToken, 100)

	assert.NoError(t, err)
}

func TestExecutor_Claim_RequiresPayment(t *testing.T) {
	exec, _ := setupTestExecutor(t, defaultConfig())

	resp, err := exec.Claim(context.Background(), "s1.near", "ev-1", 0)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrInsufficientPayment)
}

func TestExecutor_Claim_EventMustBeCanceled(t *testing.T) {
	exec, tm := setupTestExecutor(t, defaultConfig())

	tm.store.
		EXPECT().
		GetEvent(gomock.Any(), "ev-1").
		Return(&schema.Event{ID: "ev-1", Status: schema.EventStatusActive}, nil)

	resp, err := exec.Claim(context.Background(), "s1.near", "ev-1", 1)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrInvalidEventState)
}

func TestExecutor_Claim_NotSponsored(t *testing.T) {
	exec, tm := setupTestExecutor(t, defaultConfig())

	tm.store.
		EXPECT().
		GetEvent(gomock.Any(), "ev-1").
		Return(&schema.Event{ID: "ev-1", Status: schema.EventStatusCancel}, nil)
	tm.store.
		EXPECT().
		GetSponsorship(gomock.Any(), "s1.near", "ev-1").
		Return(nil, nil)

	resp, err := exec.Claim(context.Background(), "s1.near", "ev-1", 1)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrNotSponsored)
}

func TestExecutor_Claim_ZeroBalancesNotSponsored(t *testing.T) {
	exec, tm := setupTestExecutor(t, defaultConfig())

	tm.store.
		EXPECT().
		GetEvent(gomock.Any(), "ev-1").
		Return(&schema.Event{ID: "ev-1", Status: schema.EventStatusCancel}, nil)
	tm.store.
		EXPECT().
		GetSponsorship(gomock.Any(), "s1.near", "ev-1").
		Return(&schema.Sponsorship{Sponsor: "s1.near", EventID: "ev-1"}, nil)

	resp, err := exec.Claim(context.Background(), "s1.near", "ev-1", 1)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrNotSponsored)
}

func TestExecutor_Claim_StartsSettlement(t *testing.T) {
	exec, tm := setupTestExecutor(t, defaultConfig())

	tm.store.
		EXPECT().
		GetEvent(gomock.Any(), "ev-1").
		Return(&schema.Event{ID: "ev-1", Status: schema.EventStatusCancel}, nil)
	tm.store.
		EXPECT().
		GetSponsorship(gomock.Any(), "s1.near", "ev-1").
		Return(&schema.Sponsorship{
			Sponsor:      "s1.near",
			EventID:      "ev-1",
			NativeAmount: 5000,
			TokenAmount:  100,
		}, nil)
	tm.orchestrator.
		EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, options client.StartWorkflowOptions, _ interface{}, _ ...interface{}) (client.WorkflowRun, error) {
			assert.Equal(t, "claim:ev-1:s1.near", options.ID)
			assert.Equal(t, "claim-settlement", options.TaskQueue)
			assert.Equal(t, enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY, options.WorkflowIDReusePolicy)
			return stubWorkflowRun{id: options.ID, runID: "run-1"}, nil
		})

	resp, err := exec.Claim(context.Background(), "s1.near", "ev-1", 1)

	require.NoError(t, err)
	assert.Equal(t, "claim:ev-1:s1.near", resp.WorkflowID)
	assert.Equal(t, "run-1", resp.RunID)
}

func TestExecutor_Claim_AlreadyStarted(t *testing.T) {
	exec, tm := setupTestExecutor(t, defaultConfig())

	tm.store.
		EXPECT().
		GetEvent(gomock.Any(), "ev-1").
		Return(&schema.Event{ID: "ev-1", Status: schema.EventStatusCancel}, nil)
	tm.store.
		EXPECT().
		GetSponsorship(gomock.Any(), "s1.near", "ev-1").
		Return(&schema.Sponsorship{Sponsor: "s1.near", EventID: "ev-1", NativeAmount: 5000}, nil)
	tm.orchestrator.
		EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, serviceerror.NewWorkflowExecutionAlreadyStarted("already started", "claim:ev-1:s1.near", "run-0"))

	resp, err := exec.Claim(context.Background(), "s1.near", "ev-1", 1)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrClaimPending)
}

func TestExecutor_Claim_RetriesAfterFailedSettlement(t *testing.T) {
	exec, tm := setupTestExecutor(t, defaultConfig())

	tm.store.
		EXPECT().
		GetEvent(gomock.Any(), "ev-1").
		Return(&schema.Event{ID: "ev-1", Status: schema.EventStatusCancel}, nil).
		Times(2)
	tm.store.
		EXPECT().
		GetSponsorship(gomock.Any(), "s1.near", "ev-1").
		Return(&schema.Sponsorship{Sponsor: "s1.near", EventID: "ev-1", NativeAmount: 5000}, nil).
		Times(2)

	// first claim starts the settlement, which later fails on transfer
	run := 0
	tm.orchestrator.
		EXPECT().
		ExecuteWorkflow(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, options client.StartWorkflowOptions, _ interface{}, _ ...interface{}) (client.WorkflowRun, error) {
			// failed-only reuse lets the sponsor claim again after the
			// collaborator rejects the transfer
			assert.Equal(t, enums.WORKFLOW_ID_REUSE_POLICY_ALLOW_DUPLICATE_FAILED_ONLY, options.WorkflowIDReusePolicy)
			run++
			return stubWorkflowRun{id: options.ID, runID: fmt.Sprintf("run-%d", run)}, nil
		}).
		Times(2)

	first, err := exec.Claim(context.Background(), "s1.near", "ev-1", 1)
	require.NoError(t, err)
	assert.Equal(t, "run-1", first.RunID)

	second, err := exec.Claim(context.Background(), "s1.near", "ev-1", 1)
	require.NoError(t, err)
	assert.Equal(t, "run-2", second.RunID)
}

func TestExecutor_ActivateTokenStorage(t *testing.T) {
	t.Run("non-owner rejected", func(t *testing.T) {
		exec, _ := setupTestExecutor(t, defaultConfig())

		err := exec.ActivateTokenStorage(context.Background(), "stranger.near", 1)

		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("payment below minimum rejected", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.MinStoragePayment = 10
		exec, _ := setupTestExecutor(t, cfg)

		err := exec.ActivateTokenStorage(context.Background(), "plats.near", 9)

		assert.ErrorIs(t, err, domain.ErrInsufficientPayment)
	})

	t.Run("second activation rejected", func(t *testing.T) {
		exec, tm := setupTestExecutor(t, defaultConfig())

		tm.store.
			EXPECT().
			GetValue(gomock.Any(), store.KeyStorageRegistered).
			Return("true", nil)

		err := exec.ActivateTokenStorage(context.Background(), "plats.near", 1)

		assert.ErrorIs(t, err, domain.ErrAccountRegistered)
	})

	t.Run("publishes registration and records it", func(t *testing.T) {
		exec, tm := setupTestExecutor(t, defaultConfig())

		tm.store.
			EXPECT().
			GetValue(gomock.Any(), store.KeyStorageRegistered).
			Return("", nil)
		tm.publisher.
			EXPECT().
			PublishStorageRegistration(gomock.Any(), &domain.StorageRegistration{
				Account: "plats.near",
			}).
			Return(nil)
		tm.store.
			EXPECT().
			SetValue(gomock.Any(), store.KeyStorageRegistered, "true").
			Return(nil)

		err := exec.ActivateTokenStorage(context.Background(), "plats.near", 1)

		assert.NoError(t, err)
	})
}

func TestExecutor_TransferToken_InsufficientBalance(t *testing.T) {
	exec, tm := setupTestExecutor(t, defaultConfig())

	tm.store.
		EXPECT().
		TransferBalance(gomock.Any(), "a.near", "b.near", uint64(100)).
		Return(domain.ErrInsufficientBalance)

	err := exec.TransferToken(context.Background(), "a.near", "b.near", 100)

	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
}

func TestExecutor_ListSponsorships_JoinsEventNames(t *testing.T) {
	exec, tm := setupTestExecutor(t, defaultConfig())

	tm.store.
		EXPECT().
		ListSponsorshipsBySponsor(gomock.Any(), "s1.near").
		Return([]schema.Sponsorship{
			{Sponsor: "s1.near", EventID: "ev-1", NativeAmount: 5000},
			{Sponsor: "s1.near", EventID: "ev-2", TokenAmount: 100},
		}, nil)
	tm.store.
		EXPECT().
		GetEvent(gomock.Any(), "ev-1").
		Return(&schema.Event{ID: "ev-1", Name: "Launch party"}, nil)
	tm.store.
		EXPECT().
		GetEvent(gomock.Any(), "ev-2").
		Return(&schema.Event{ID: "ev-2", Name: "Hackathon"}, nil)

	resp, err := exec.ListSponsorships(context.Background(), "s1.near")

	require.NoError(t, err)
	assert.Equal(t, "s1.near", resp.Sponsor)
	require.Len(t, resp.Sponsorships, 2)
	assert.Equal(t, "Launch party", resp.Sponsorships[0].EventName)
	assert.Equal(t, "Hackathon", resp.Sponsorships[1].EventName)
}
