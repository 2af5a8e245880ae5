package workflows

import (
	"fmt"
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/plats-network/sponsor-ledger/internal/domain"
	"github.com/plats-network/sponsor-ledger/internal/logger"
)

// ClaimSettlement runs one claim from transfer initiation through
// confirmation and ledger settlement.
//
// One transfer request is issued per non-zero asset. The workflow then blocks
// on the transfer-resolved signal channel until every issued transfer has a
// result. A transfer that never resolves keeps the workflow open, which also
// keeps the claim marker alive so a second claim for the same (event,
// sponsor) pair is rejected at the API.
func (s *settlementCore) ClaimSettlement(ctx workflow.Context, input ClaimSettlementInput) error {
	logger.InfoWf(ctx, "Starting claim settlement",
		zap.String("eventID", input.EventID),
		zap.String("sponsor", input.Sponsor),
		zap.Uint64("nativeAmount", input.NativeAmount),
		zap.Uint64("tokenAmount", input.TokenAmount),
	)

	activityOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 1 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumAttempts:    5,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, activityOptions)

	workflowID := workflow.GetInfo(ctx).WorkflowExecution.ID

	assets := make(map[domain.AssetKind]uint64)
	if input.NativeAmount > 0 {
		assets[domain.AssetNative] = input.NativeAmount
	}
	if input.TokenAmount > 0 {
		assets[domain.AssetToken] = input.TokenAmount
	}
	if len(assets) == 0 {
		logger.WarnWf(ctx, "Nothing to settle",
			zap.String("eventID", input.EventID),
			zap.String("sponsor", input.Sponsor),
		)
		return nil
	}

	// Step 1: issue one transfer per non-zero asset
	pending := make(map[string]domain.AssetKind)
	for _, asset := range []domain.AssetKind{domain.AssetNative, domain.AssetToken} {
		amount, ok := assets[asset]
		if !ok {
			continue
		}

		var correlationID string
		err := workflow.ExecuteActivity(ctx, s.executor.IssueTransfer, IssueTransferInput{
			EventID:    input.EventID,
			Sponsor:    input.Sponsor,
			Asset:      asset,
			Amount:     amount,
			WorkflowID: workflowID,
		}).Get(ctx, &correlationID)
		if err != nil {
			logger.ErrorWf(ctx,
				fmt.Errorf("failed to issue transfer"),
				zap.Error(err),
				zap.String("eventID", input.EventID),
				zap.String("asset", string(asset)),
			)
			return err
		}

		pending[correlationID] = asset
	}

	// Step 2: legacy eager cleanup, before any confirmation arrives
	if s.config.EagerIndexRemoval {
		err := workflow.ExecuteActivity(ctx, s.executor.RemoveSponsorRecord, input.EventID, input.Sponsor).Get(ctx, nil)
		if err != nil {
			logger.ErrorWf(ctx,
				fmt.Errorf("failed to remove sponsor record"),
				zap.Error(err),
				zap.String("eventID", input.EventID),
				zap.String("sponsor", input.Sponsor),
			)
			return err
		}
	}

	// Step 3: wait for every transfer to resolve
	signalChan := workflow.GetSignalChannel(ctx, domain.TransferResolvedSignal)

	var failures []string
	for len(pending) > 0 {
		var result domain.TransferResult
		signalChan.Receive(ctx, &result)

		asset, ok := pending[result.CorrelationID]
		if !ok {
			logger.WarnWf(ctx, "Ignoring result for unknown transfer",
				zap.String("correlationID", result.CorrelationID),
			)
			continue
		}
		delete(pending, result.CorrelationID)

		if result.Success {
			err := workflow.ExecuteActivity(ctx, s.executor.ApplySettlement, result.CorrelationID).Get(ctx, nil)
			if err != nil {
				logger.ErrorWf(ctx,
					fmt.Errorf("failed to apply settlement"),
					zap.Error(err),
					zap.String("correlationID", result.CorrelationID),
					zap.String("asset", string(asset)),
				)
				return err
			}

			logger.InfoWf(ctx, "Transfer settled",
				zap.String("correlationID", result.CorrelationID),
				zap.String("asset", string(asset)),
			)
			continue
		}

		err := workflow.ExecuteActivity(ctx, s.executor.MarkTransferFailed, result.CorrelationID, result.Reason).Get(ctx, nil)
		if err != nil {
			logger.ErrorWf(ctx,
				fmt.Errorf("failed to mark transfer failed"),
				zap.Error(err),
				zap.String("correlationID", result.CorrelationID),
			)
			return err
		}

		failures = append(failures, fmt.Sprintf("%s: %s", asset, result.Reason))
	}

	if len(failures) > 0 {
		return fmt.Errorf("%w: %v", domain.ErrTransferFailed, failures)
	}

	logger.InfoWf(ctx, "Claim settlement complete",
		zap.String("eventID", input.EventID),
		zap.String("sponsor", input.Sponsor),
	)

	return nil
}
